package catalog

import (
	"regexp"
	"sort"
	"strings"

	"github.com/alexanderramin/lineup/internal/domain"
)

// Card is one entry of the card wiki as shipped in catalog files.
type Card struct {
	ID             string          `json:"id" toml:"id"`
	NameCN         string          `json:"name_cn,omitempty" toml:"name_cn"`
	NameEN         string          `json:"name_en,omitempty" toml:"name_en"`
	Size           string          `json:"size,omitempty" toml:"size"`
	Tier           string          `json:"tier,omitempty" toml:"tier"`
	StartingTier   string          `json:"starting_tier,omitempty" toml:"starting_tier"`
	AvailableTiers string          `json:"available_tiers,omitempty" toml:"available_tiers"`
	Heroes         []string        `json:"heroes,omitempty" toml:"heroes"`
	Kind           domain.CardKind `json:"-" toml:"-"`
}

var tierPattern = regexp.MustCompile(`(?i)bronze|silver|gold|diamond|legendary`)

// Ref returns the card as embedded into placements and skill entries.
func (c Card) Ref() domain.CardRef {
	return domain.CardRef{
		ID:             c.ID,
		NameCN:         c.NameCN,
		NameEN:         c.NameEN,
		Size:           c.Size,
		StartingTier:   domain.CoalesceStr(c.StartingTier, c.Tier),
		AvailableTiers: c.AvailableTiers,
		Kind:           c.Kind,
	}
}

// DisplayName prefers the Chinese name.
func (c Card) DisplayName() string {
	return domain.CoalesceStr(c.NameCN, c.NameEN, c.ID)
}

// Width maps a size category to board slots: small 1, large 3, anything
// else 2. Only the first "/"-separated token counts.
func Width(size string) int {
	s := strings.ToLower(strings.TrimSpace(strings.Split(domain.CoalesceStr(size, "Medium"), "/")[0]))
	switch {
	case strings.Contains(s, "small"), strings.Contains(s, "小"):
		return 1
	case strings.Contains(s, "large"), strings.Contains(s, "大"):
		return 3
	}
	return 2
}

// ParseTier returns the first tier name found in s, bronze when none.
func ParseTier(s string) domain.BorderTier {
	if m := tierPattern.FindString(s); m != "" {
		return domain.BorderTier(strings.ToLower(m))
	}
	return domain.TierBronze
}

func parseTiers(s string) []domain.BorderTier {
	seen := map[domain.BorderTier]bool{}
	var out []domain.BorderTier
	for _, m := range tierPattern.FindAllString(s, -1) {
		t := domain.BorderTier(strings.ToLower(m))
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// DefaultBorderTier is the border a freshly placed card gets.
func DefaultBorderTier(ref domain.CardRef) domain.BorderTier {
	return ParseTier(ref.StartingTier)
}

// BorderTierOptions lists the borders a placed card may take. Diamond and
// legendary starters are fixed. Otherwise the declared tiers from the start
// tier up are offered, or start through diamond when none are declared.
func BorderTierOptions(ref domain.CardRef) (options []domain.BorderTier, editable bool) {
	start := ParseTier(ref.StartingTier)
	if start == domain.TierDiamond || start == domain.TierLegendary {
		return []domain.BorderTier{start}, false
	}

	var declared []domain.BorderTier
	for _, t := range parseTiers(ref.AvailableTiers) {
		if t.Rank() >= start.Rank() {
			declared = append(declared, t)
		}
	}
	if len(declared) > 0 {
		sort.SliceStable(declared, func(i, j int) bool { return declared[i].Rank() < declared[j].Rank() })
		return declared, true
	}
	return append([]domain.BorderTier(nil), domain.TierOrder[start.Rank():domain.TierDiamond.Rank()+1]...), true
}

// AllowsBorder reports whether tier is one of the card's options.
func AllowsBorder(ref domain.CardRef, tier domain.BorderTier) bool {
	options, _ := BorderTierOptions(ref)
	for _, o := range options {
		if o == tier {
			return true
		}
	}
	return false
}
