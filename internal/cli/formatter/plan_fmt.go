package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lineup/internal/board"
	"github.com/alexanderramin/lineup/internal/domain"
)

// RenderTimeline lists the segments with the active one bracketed.
func RenderTimeline(p domain.Plan) string {
	active := p.ActiveIndex()
	parts := make([]string, 0, len(p.Timeline.Segments))
	for i, seg := range p.Timeline.Segments {
		label := seg.Label()
		if n := len(seg.SpecialSlots); n > 0 {
			label += fmt.Sprintf(" (%d◆)", n)
		}
		if i == active {
			parts = append(parts, StyleHeader.Render("["+label+"]"))
		} else {
			parts = append(parts, StyleFg.Render(label))
		}
	}
	return strings.Join(parts, StyleDim.Render(" │ "))
}

// FormatPlan renders the whole plan with the active segment's board.
func FormatPlan(p domain.Plan, scale float64) string {
	var b strings.Builder
	b.WriteString(Header(p.DisplayName()))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s   %s Day%d-Day%d\n",
		Dim("Hero"), Bold(string(p.Hero())),
		Dim("Days"), p.Timeline.DayStart, p.Timeline.DayEnd)
	fmt.Fprintf(&b, "%s %s\n", Dim("Tags"), strings.Join([]string{
		domain.TagSlug(string(p.DayPlanTag)),
		domain.TagSlug(string(p.StrengthTag)),
		domain.TagSlug(string(p.DifficultyTag)),
	}, " · "))
	b.WriteString(RenderTimeline(p))
	b.WriteString("\n\n")

	segs := p.Timeline.Segments
	if len(segs) == 0 {
		return b.String()
	}
	si := p.ActiveIndex()
	seg := segs[si]
	bi := p.ActiveBuildIndex(si)

	var builds []string
	for i, build := range seg.Builds {
		if i == bi {
			builds = append(builds, StyleGreen.Render("▸ "+build.Name))
		} else {
			builds = append(builds, Dim(build.Name))
		}
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("Builds"), strings.Join(builds, "  "))

	if bi < len(seg.Builds) {
		build := seg.Builds[bi]
		b.WriteString(RenderBoard(BoardView{
			Build:   build,
			Mask:    board.AllowMask(seg.DayFrom),
			Markers: seg.SpecialSlots,
			Cursor:  -1,
			Scale:   scale,
		}))
		b.WriteString("\n\n")
		if len(build.Cards) > 0 {
			b.WriteString(formatCards(build))
		}
	}

	if len(seg.Skills) > 0 {
		var skills []string
		for _, sk := range seg.Skills {
			s := sk.Card.DisplayName()
			if role := seg.SkillRoleOf(sk.SkillID); role != "" {
				s += Dim(" (" + string(role) + ")")
			}
			skills = append(skills, s)
		}
		fmt.Fprintf(&b, "%s %s\n", Dim("Skills"), strings.Join(skills, ", "))
	}
	if seg.StrategyText != "" {
		b.WriteString(RenderBox("Strategy", seg.StrategyText))
		b.WriteString("\n")
	}
	return b.String()
}

func formatCards(build domain.CardBuild) string {
	rows := make([][]string, 0, len(build.Cards))
	for _, c := range build.Cards {
		role := string(build.RoleOf(c.PlacementID))
		if role == "" {
			role = Dim("--")
		}
		rows = append(rows, []string{
			c.PlacementID,
			c.Card.DisplayName(),
			fmt.Sprintf("%d-%d", c.Start, c.End()-1),
			TierStyle(c.BorderTier).Render(string(c.BorderTier)),
			role,
		})
	}
	return RenderTable([]string{"PLACEMENT", "CARD", "SLOTS", "BORDER", "ROLE"}, rows)
}

// FormatMarkers lists the active segment's markers.
func FormatMarkers(seg domain.Segment) string {
	if len(seg.SpecialSlots) == 0 {
		return Dim("No markers on " + seg.Label())
	}
	rows := make([][]string, 0, len(seg.SpecialSlots))
	for _, m := range seg.SpecialSlots {
		rows = append(rows, []string{m.ID, fmt.Sprint(m.Slot), MarkerStyle(m.Type).Render(string(m.Type))})
	}
	return RenderTable([]string{"ID", "SLOT", "TYPE"}, rows)
}

// FormatBuilds lists the builds of the active segment.
func FormatBuilds(p domain.Plan) string {
	segs := p.Timeline.Segments
	if len(segs) == 0 {
		return Dim("No segments")
	}
	si := p.ActiveIndex()
	seg := segs[si]
	bi := p.ActiveBuildIndex(si)
	rows := make([][]string, 0, len(seg.Builds))
	for i, build := range seg.Builds {
		marker := " "
		if i == bi {
			marker = StyleGreen.Render("▸")
		}
		rows = append(rows, []string{marker, fmt.Sprint(i + 1), build.ID, build.Name, fmt.Sprint(len(build.Cards))})
	}
	return RenderTable([]string{"", "#", "ID", "NAME", "CARDS"}, rows)
}
