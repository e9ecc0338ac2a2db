package domain

// Placement is one card occupying [Start, Start+Width) on the board.
type Placement struct {
	PlacementID string
	Card        CardRef
	Start       int
	Width       int
	BorderTier  BorderTier
}

// End returns the first slot after the placement.
func (p Placement) End() int {
	return p.Start + p.Width
}

// Overlaps reports whether two placements share a slot.
func (p Placement) Overlaps(o Placement) bool {
	return p.Start < o.End() && o.Start < p.End()
}

// CardBuild is one alternative card layout ("plan") of a segment.
type CardBuild struct {
	ID                    string
	Name                  string
	Cards                 []Placement
	CorePlacementIDs      []string
	SecondaryPlacementIDs []string
	SupportPlacementIDs   []string
}

// Clone returns a deep copy.
func (b CardBuild) Clone() CardBuild {
	b.Cards = append([]Placement(nil), b.Cards...)
	b.CorePlacementIDs = append([]string(nil), b.CorePlacementIDs...)
	b.SecondaryPlacementIDs = append([]string(nil), b.SecondaryPlacementIDs...)
	b.SupportPlacementIDs = append([]string(nil), b.SupportPlacementIDs...)
	return b
}

// HasContent reports whether deleting the build would lose user work.
func (b CardBuild) HasContent() bool {
	return len(b.Cards) > 0 || len(b.CorePlacementIDs) > 0 ||
		len(b.SecondaryPlacementIDs) > 0 || len(b.SupportPlacementIDs) > 0
}

// Card returns the placement with the given id.
func (b CardBuild) Card(placementID string) (Placement, bool) {
	for _, c := range b.Cards {
		if c.PlacementID == placementID {
			return c, true
		}
	}
	return Placement{}, false
}

// RoleOf returns the role tag of a placement, or "" when untagged.
func (b CardBuild) RoleOf(placementID string) CardRole {
	switch {
	case containsID(b.CorePlacementIDs, placementID):
		return RoleCore
	case containsID(b.SecondaryPlacementIDs, placementID):
		return RoleSecondary
	case containsID(b.SupportPlacementIDs, placementID):
		return RoleSupport
	}
	return ""
}

// PruneRoles drops role references to placements that are no longer on the
// board.
func (b CardBuild) PruneRoles() CardBuild {
	live := make(map[string]bool, len(b.Cards))
	for _, c := range b.Cards {
		live[c.PlacementID] = true
	}
	b.CorePlacementIDs = keepIDs(b.CorePlacementIDs, live)
	b.SecondaryPlacementIDs = keepIDs(b.SecondaryPlacementIDs, live)
	b.SupportPlacementIDs = keepIDs(b.SupportPlacementIDs, live)
	return b
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func keepIDs(ids []string, live map[string]bool) []string {
	var out []string
	for _, id := range ids {
		if live[id] {
			out = append(out, id)
		}
	}
	return out
}

// ToggleID adds id when absent and removes it when present.
func ToggleID(ids []string, id string) []string {
	if containsID(ids, id) {
		return WithoutID(ids, id)
	}
	return append(append([]string(nil), ids...), id)
}

// WithoutID returns ids minus every occurrence of id.
func WithoutID(ids []string, id string) []string {
	var out []string
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
