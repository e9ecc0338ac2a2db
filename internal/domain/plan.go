package domain

import "fmt"

const (
	MaxLineupNameRunes = 40
	MaxStrategyRunes   = 300
)

// Plan is the complete editor document: the timeline plus lineup metadata
// and the current selection.
type Plan struct {
	LineupName    string
	DayPlanTag    DayPlanTag
	StrengthTag   StrengthTag
	DifficultyTag DifficultyTag
	Timeline      Timeline
	ActiveSegment int
	// ActiveBuild maps segment id to the id of the build shown for editing.
	ActiveBuild map[string]string
}

// Clone returns a deep copy.
func (p Plan) Clone() Plan {
	p.Timeline = p.Timeline.Clone()
	if p.ActiveBuild != nil {
		m := make(map[string]string, len(p.ActiveBuild))
		for k, v := range p.ActiveBuild {
			m[k] = v
		}
		p.ActiveBuild = m
	}
	return p
}

// Hero returns the lineup hero.
func (p Plan) Hero() Hero {
	return p.Timeline.Hero()
}

// DisplayName returns the lineup name, or "<hero> Day<start>-Day<end>".
func (p Plan) DisplayName() string {
	if p.LineupName != "" {
		return p.LineupName
	}
	return fmt.Sprintf("%s Day%d-Day%d", p.Hero(), p.Timeline.DayStart, p.Timeline.DayEnd)
}

// ActiveIndex returns the clamped index of the active segment.
func (p Plan) ActiveIndex() int {
	return p.Timeline.ClampIndex(p.ActiveSegment)
}

// ActiveBuildIndex returns the index of the active build within segment i.
// Unknown or missing selections fall back to the first build.
func (p Plan) ActiveBuildIndex(i int) int {
	if i < 0 || i >= len(p.Timeline.Segments) {
		return 0
	}
	seg := p.Timeline.Segments[i]
	if idx := seg.BuildIndex(p.ActiveBuild[seg.ID]); idx >= 0 {
		return idx
	}
	return 0
}
