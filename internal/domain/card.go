package domain

// CardKind separates board items from skills.
type CardKind string

const (
	KindItem  CardKind = "item"
	KindSkill CardKind = "skill"
)

// CardRef is the card definition embedded in placements and skill entries.
// Placements carry a copy so shared snapshots stay self-contained.
type CardRef struct {
	ID             string
	NameCN         string
	NameEN         string
	Size           string
	StartingTier   string
	AvailableTiers string
	Kind           CardKind
}

// DisplayName prefers the Chinese name, then English, then the id.
func (c CardRef) DisplayName() string {
	return CoalesceStr(c.NameCN, c.NameEN, c.ID)
}
