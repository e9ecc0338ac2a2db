package planner

import (
	"fmt"

	"github.com/alexanderramin/lineup/internal/board"
	"github.com/alexanderramin/lineup/internal/catalog"
	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/timeline"
)

// PreviewID marks the card being dragged onto the board in a preview
// layout before it has a placement id.
const PreviewID = "__preview__"

// DragSource is what is being dropped: an existing placement of the active
// build, or a new card from the catalog.
type DragSource struct {
	PlacementID string
	Card        domain.CardRef
}

// ActiveMask returns the board open for the active segment.
func ActiveMask(p domain.Plan) board.Mask {
	segs := p.Timeline.Segments
	if len(segs) == 0 {
		return board.AllowMask(p.Timeline.DayStart)
	}
	return board.AllowMask(segs[p.ActiveIndex()].DayFrom)
}

// ActiveBuild returns the build currently being edited.
func ActiveBuild(p domain.Plan) (domain.CardBuild, bool) {
	segs := p.Timeline.Segments
	if len(segs) == 0 {
		return domain.CardBuild{}, false
	}
	seg := segs[p.ActiveIndex()]
	bi := p.ActiveBuildIndex(p.ActiveIndex())
	if bi >= len(seg.Builds) {
		return domain.CardBuild{}, false
	}
	return seg.Builds[bi], true
}

// PreviewDrop computes the layout of the active build if src were dropped
// on slot. The plan is not modified.
func PreviewDrop(p domain.Plan, src DragSource, slot int) ([]domain.Placement, error) {
	b, ok := ActiveBuild(p)
	if !ok {
		return nil, domain.NewHint(domain.HintUnknownBuild, "no active build")
	}

	var moving domain.Placement
	others := b.Cards
	if src.PlacementID != "" {
		cur, found := b.Card(src.PlacementID)
		if !found {
			return nil, unknownCard(src.PlacementID)
		}
		moving = cur
		others = nil
		for _, c := range b.Cards {
			if c.PlacementID != src.PlacementID {
				others = append(others, c)
			}
		}
	} else {
		if src.Card.Kind == domain.KindSkill {
			return nil, domain.NewHint(domain.HintSkillOnBoard, "skills go to the skill bar, not the board")
		}
		moving = domain.Placement{
			PlacementID: PreviewID,
			Card:        src.Card,
			Width:       catalog.Width(src.Card.Size),
			BorderTier:  catalog.DefaultBorderTier(src.Card),
		}
	}
	moving.Start = slot

	layout, ok := board.TryPack(others, moving, slot, ActiveMask(p))
	if !ok {
		return nil, domain.NewHint(domain.HintCapacity, "not enough room on the board here")
	}
	return layout, nil
}

// CommitDrop applies a drop to the active build and returns the id of the
// dropped placement. New cards get a fresh placement id.
func CommitDrop(p domain.Plan, src DragSource, slot int) (domain.Plan, string, error) {
	layout, err := PreviewDrop(p, src, slot)
	if err != nil {
		return p, "", err
	}
	return commitLayout(p, src, layout)
}

func commitLayout(p domain.Plan, src DragSource, layout []domain.Placement) (domain.Plan, string, error) {
	id := src.PlacementID
	if id == "" {
		id = timeline.NewID(domain.CoalesceStr(src.Card.ID, "card"))
	}
	out, err := updateActiveBuild(p, func(b domain.CardBuild, _ domain.Segment) (domain.CardBuild, error) {
		cards := append([]domain.Placement(nil), layout...)
		for i := range cards {
			if cards[i].PlacementID == PreviewID {
				cards[i].PlacementID = id
			}
		}
		b.Cards = cards
		return b, nil
	})
	if err != nil {
		return p, "", err
	}
	return out, id, nil
}

// RemoveCard removes a placement and its role tags from the active build.
func RemoveCard(p domain.Plan, placementID string) (domain.Plan, error) {
	return updateActiveBuild(p, func(b domain.CardBuild, _ domain.Segment) (domain.CardBuild, error) {
		if _, ok := b.Card(placementID); !ok {
			return b, unknownCard(placementID)
		}
		var kept []domain.Placement
		for _, c := range b.Cards {
			if c.PlacementID != placementID {
				kept = append(kept, c)
			}
		}
		b.Cards = kept
		return b.PruneRoles(), nil
	})
}

// SetCardBorder changes a placement's border tier. The tier must be one of
// the card's options and fixed-tier cards cannot change.
func SetCardBorder(p domain.Plan, placementID string, tier domain.BorderTier) (domain.Plan, error) {
	return updateActiveBuild(p, func(b domain.CardBuild, _ domain.Segment) (domain.CardBuild, error) {
		for i, c := range b.Cards {
			if c.PlacementID != placementID {
				continue
			}
			options, editable := catalog.BorderTierOptions(c.Card)
			if !editable && tier != c.BorderTier {
				return b, domain.NewHint(domain.HintBorderLocked,
					fmt.Sprintf("%s always has a %s border", c.Card.DisplayName(), options[0]))
			}
			if !catalog.AllowsBorder(c.Card, tier) {
				return b, domain.NewHint(domain.HintBorderLocked,
					fmt.Sprintf("%s cannot have a %s border", c.Card.DisplayName(), tier))
			}
			b.Cards[i].BorderTier = tier
			return b, nil
		}
		return b, unknownCard(placementID)
	})
}

// ToggleCardRole toggles role on a placement. Roles are exclusive, so
// setting one clears the others.
func ToggleCardRole(p domain.Plan, placementID string, role domain.CardRole) (domain.Plan, error) {
	return updateActiveBuild(p, func(b domain.CardBuild, _ domain.Segment) (domain.CardBuild, error) {
		if _, ok := b.Card(placementID); !ok {
			return b, unknownCard(placementID)
		}
		core := domain.WithoutID(b.CorePlacementIDs, placementID)
		secondary := domain.WithoutID(b.SecondaryPlacementIDs, placementID)
		support := domain.WithoutID(b.SupportPlacementIDs, placementID)
		switch role {
		case domain.RoleCore:
			core = domain.ToggleID(b.CorePlacementIDs, placementID)
		case domain.RoleSecondary:
			secondary = domain.ToggleID(b.SecondaryPlacementIDs, placementID)
		case domain.RoleSupport:
			support = domain.ToggleID(b.SupportPlacementIDs, placementID)
		default:
			return b, domain.NewHint(domain.HintUnknownTag, fmt.Sprintf("unknown card role %q", role))
		}
		b.CorePlacementIDs, b.SecondaryPlacementIDs, b.SupportPlacementIDs = core, secondary, support
		return b, nil
	})
}

func unknownCard(id string) error {
	return domain.NewHint(domain.HintUnknownCard, fmt.Sprintf("no card %q on the active build", id))
}
