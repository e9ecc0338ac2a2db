package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Palette. Tier colors follow the in-game border frames.
var (
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")

	colorBronze    = lipgloss.Color("#d65d0e")
	colorSilver    = lipgloss.Color("#bdae93")
	colorGold      = lipgloss.Color("#fabd2f")
	colorDiamond   = lipgloss.Color("#83a598")
	colorLegendary = lipgloss.Color("#d3869b")
	colorFire      = lipgloss.Color("#fb4934")
	colorOK        = lipgloss.Color("#8ec07c")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(colorOK)
	StyleYellow = lipgloss.NewStyle().Foreground(colorGold)
	StyleRed    = lipgloss.NewStyle().Foreground(colorFire)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)

	styleBold = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)

	tierStyles = map[domain.BorderTier]lipgloss.Style{
		domain.TierBronze:    lipgloss.NewStyle().Foreground(colorBronze),
		domain.TierSilver:    lipgloss.NewStyle().Foreground(colorSilver),
		domain.TierGold:      lipgloss.NewStyle().Foreground(colorGold),
		domain.TierDiamond:   lipgloss.NewStyle().Foreground(colorDiamond),
		domain.TierLegendary: lipgloss.NewStyle().Foreground(colorLegendary).Bold(true),
	}
	markerStyles = map[domain.MarkerType]lipgloss.Style{
		domain.MarkerFire: lipgloss.NewStyle().Foreground(colorFire),
		domain.MarkerIce:  lipgloss.NewStyle().Foreground(colorDiamond),
	}
)

// TierStyle colors a border tier.
func TierStyle(t domain.BorderTier) lipgloss.Style {
	if s, ok := tierStyles[t]; ok {
		return s
	}
	return StyleDim
}

// MarkerStyle colors an elemental marker.
func MarkerStyle(m domain.MarkerType) lipgloss.Style {
	if s, ok := markerStyles[m]; ok {
		return s
	}
	return StyleDim
}

// Header renders an upper-cased section title over a rule of the same width.
func Header(text string) string {
	title := strings.ToUpper(text)
	rule := strings.Repeat("─", lipgloss.Width(title))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(title), StyleDim.Render(rule))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return styleBold.Render(text)
}
