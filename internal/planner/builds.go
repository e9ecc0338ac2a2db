package planner

import (
	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/timeline"
)

// AddBuild appends an empty build to the active segment and selects it.
func AddBuild(p domain.Plan) (domain.Plan, string, error) {
	var id string
	out, err := updateActiveSegment(p, func(seg domain.Segment) (domain.Segment, error) {
		b := timeline.NewBuild(len(seg.Builds) + 1)
		id = b.ID
		seg.Builds = append(seg.Builds, b)
		return seg, nil
	})
	if err != nil {
		return p, "", err
	}
	out.ActiveBuild = setActive(out.ActiveBuild, out.Timeline.Segments[out.ActiveIndex()].ID, id)
	return out, id, nil
}

// DeleteBuild removes a build from the active segment. The last build of a
// segment cannot be deleted. Deleting the selected build selects the first
// remaining one.
func DeleteBuild(p domain.Plan, buildID string) (domain.Plan, error) {
	out, err := updateActiveSegment(p, func(seg domain.Segment) (domain.Segment, error) {
		if seg.BuildIndex(buildID) < 0 {
			return seg, unknownBuild(buildID)
		}
		if len(seg.Builds) <= 1 {
			return seg, domain.NewHint(domain.HintLastBuild, "a segment needs at least one build")
		}
		var kept []domain.CardBuild
		for _, b := range seg.Builds {
			if b.ID != buildID {
				kept = append(kept, b)
			}
		}
		seg.Builds = kept
		return seg, nil
	})
	if err != nil {
		return p, err
	}
	seg := out.Timeline.Segments[out.ActiveIndex()]
	if cur, ok := out.ActiveBuild[seg.ID]; !ok || cur == buildID {
		out.ActiveBuild = setActive(out.ActiveBuild, seg.ID, seg.Builds[0].ID)
	}
	return out, nil
}

// BuildHasContent reports whether deleting the build would lose work.
func BuildHasContent(p domain.Plan, buildID string) bool {
	segs := p.Timeline.Segments
	if len(segs) == 0 {
		return false
	}
	seg := segs[p.ActiveIndex()]
	if i := seg.BuildIndex(buildID); i >= 0 {
		return seg.Builds[i].HasContent()
	}
	return false
}

// InheritPreviousBuild copies the first build of the previous segment into
// the first build of the active one. Copies get fresh placement ids, are
// re-packed into the active day's board and keep their role tags.
func InheritPreviousBuild(p domain.Plan) (domain.Plan, error) {
	si := p.ActiveIndex()
	if si <= 0 || si >= len(p.Timeline.Segments) {
		return p, domain.NewHint(domain.HintNoPrevious, "there is no previous segment")
	}
	prev := p.Timeline.Segments[si-1]
	if len(prev.Builds) == 0 {
		return p, domain.NewHint(domain.HintNoPrevious, "the previous segment has no build")
	}
	src := prev.Builds[0]

	return updateActiveSegment(p, func(seg domain.Segment) (domain.Segment, error) {
		if len(seg.Builds) == 0 {
			seg.Builds = []domain.CardBuild{timeline.NewBuild(1)}
		}
		ids := make(map[string]string, len(src.Cards))
		var cards []domain.Placement
		for _, c := range src.Cards {
			ids[c.PlacementID] = timeline.NewID(domain.CoalesceStr(c.Card.ID, "card"))
			c.PlacementID = ids[c.PlacementID]
			cards = append(cards, c)
		}
		target := seg.Builds[0]
		target.Cards = cards
		target.CorePlacementIDs = remapIDs(src.CorePlacementIDs, ids)
		target.SecondaryPlacementIDs = remapIDs(src.SecondaryPlacementIDs, ids)
		target.SupportPlacementIDs = remapIDs(src.SupportPlacementIDs, ids)
		seg.Builds[0] = timeline.NormalizeBuild(target, seg.DayFrom)
		return seg, nil
	})
}

func remapIDs(ids []string, m map[string]string) []string {
	var out []string
	for _, id := range ids {
		if n, ok := m[id]; ok {
			out = append(out, n)
		}
	}
	return out
}
