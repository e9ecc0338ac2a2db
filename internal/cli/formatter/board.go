package formatter

import (
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/lineup/internal/board"
	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// BoardView is one build drawn on the slot grid.
type BoardView struct {
	Build domain.CardBuild
	// Cards replaces Build.Cards when non-nil, as during a drag preview.
	Cards   []domain.Placement
	Mask    board.Mask
	Markers []domain.SpecialSlot
	// Cursor is the slot under the cursor, -1 for none.
	Cursor int
	// Lifted is the placement being dragged.
	Lifted string
	Scale  float64
}

// CellWidth is the number of columns one slot takes at the given scale.
func CellWidth(scale float64) int {
	if scale <= 0 {
		scale = 1
	}
	return max(3, int(math.Round(5*scale)))
}

var roleGlyph = map[domain.CardRole]string{
	domain.RoleCore:      "★",
	domain.RoleSecondary: "◆",
	domain.RoleSupport:   "+",
}

// RenderBoard draws markers, cards, slot numbers and the cursor, one row
// each.
func RenderBoard(v BoardView) string {
	cw := CellWidth(v.Scale)
	cards := v.Cards
	if cards == nil {
		cards = v.Build.Cards
	}
	var at [board.Units]*domain.Placement
	for i := range cards {
		c := &cards[i]
		for s := c.Start; s < c.End() && s < board.Units; s++ {
			if s >= 0 {
				at[s] = c
			}
		}
	}

	var markers, row, numbers, cursor strings.Builder
	for s := 0; s < board.Units; s++ {
		markers.WriteString(markerCell(v.Markers, s, cw))
		numbers.WriteString(StyleDim.Render(center(strconv.Itoa(s), cw)))
		if s == v.Cursor {
			cursor.WriteString(StyleHeader.Render(center("▲", cw)))
		} else {
			cursor.WriteString(strings.Repeat(" ", cw))
		}

		c := at[s]
		switch {
		case c != nil && c.Start == s:
			row.WriteString(cardCell(*c, v.Build.RoleOf(c.PlacementID), c.PlacementID == v.Lifted, cw))
		case c != nil:
			// Covered by a card drawn at its start slot.
		case !v.Mask.Allows(s):
			row.WriteString(StyleDim.Render(strings.Repeat("░", cw)))
		default:
			row.WriteString(StyleDim.Render(center("·", cw)))
		}
	}

	lines := []string{markers.String(), row.String(), numbers.String()}
	if v.Cursor >= 0 {
		lines = append(lines, cursor.String())
	}
	return strings.Join(lines, "\n")
}

func markerCell(markers []domain.SpecialSlot, slot, cw int) string {
	for _, m := range markers {
		if m.Slot == slot {
			glyph := "F"
			if m.Type == domain.MarkerIce {
				glyph = "I"
			}
			return MarkerStyle(m.Type).Render(center(glyph, cw))
		}
	}
	return strings.Repeat(" ", cw)
}

func cardCell(c domain.Placement, role domain.CardRole, lifted bool, cw int) string {
	span := max(c.Width, 1) * cw
	label := roleGlyph[role] + c.Card.DisplayName()
	label = Truncate(label, span-2)
	label += strings.Repeat(" ", max(span-2-lipgloss.Width(label), 0))
	style := TierStyle(c.BorderTier)
	if lifted {
		style = StyleYellow.Bold(true)
	}
	return style.Render("[" + label + "]")
}

func center(s string, w int) string {
	gap := w - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
