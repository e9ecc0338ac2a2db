package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lineup/internal/catalog"
	"github.com/alexanderramin/lineup/internal/domain"
)

// FormatDraftList renders saved drafts, newest first as given.
func FormatDraftList(drafts []*domain.Draft, now time.Time) string {
	if len(drafts) == 0 {
		return Dim("No drafts saved.")
	}
	rows := make([][]string, 0, len(drafts))
	for _, d := range drafts {
		rows = append(rows, []string{
			TruncID(d.ID),
			Bold(d.Name),
			d.ContextLabel,
			HumanTimestampFrom(d.UpdatedAt, now),
		})
	}
	return RenderTable([]string{"ID", "NAME", "HERO", "SAVED"}, rows)
}

// FormatCommunityList renders the community feed.
func FormatCommunityList(lineups []*domain.CommunityLineup, now time.Time) string {
	if len(lineups) == 0 {
		return Dim("No community lineups yet.")
	}
	rows := make([][]string, 0, len(lineups))
	for _, l := range lineups {
		rows = append(rows, []string{
			TruncID(l.UUID),
			Bold(Truncate(l.Name, 40)),
			string(l.Hero),
			fmt.Sprintf("%d-%d", l.DayFrom, l.DayTo),
			StyleRed.Render(fmt.Sprintf("♥ %d", l.Likes)),
			StyleYellow.Render(fmt.Sprintf("★ %d", l.Favorites)),
			l.AuthorName,
			HumanTimestampFrom(l.CreatedAt, now),
		})
	}
	return RenderTable([]string{"ID", "NAME", "HERO", "DAYS", "LIKES", "FAVS", "AUTHOR", "SHARED"}, rows)
}

// FormatCommunityLineup renders one lineup with its card summary.
func FormatCommunityLineup(l *domain.CommunityLineup, cat *catalog.Catalog) string {
	var b strings.Builder
	b.WriteString(Header(l.Name))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s   %s Day%d-Day%d   %s %s\n",
		Dim("Hero"), Bold(string(l.Hero)),
		Dim("Days"), l.DayFrom, l.DayTo,
		Dim("By"), l.AuthorName)
	var tags []string
	for _, t := range []string{string(l.DayPlanTag), string(l.StrengthTag), string(l.DifficultyTag)} {
		if t != "" {
			tags = append(tags, domain.TagSlug(t))
		}
	}
	if len(tags) > 0 {
		fmt.Fprintf(&b, "%s %s\n", Dim("Tags"), strings.Join(tags, " · "))
	}
	fmt.Fprintf(&b, "%s %s  %s\n",
		StyleRed.Render(fmt.Sprintf("♥ %d", l.Likes)),
		StyleYellow.Render(fmt.Sprintf("★ %d", l.Favorites)),
		TruncID(l.UUID))
	if l.VideoBV != "" {
		fmt.Fprintf(&b, "%s %s %s\n", Dim("Video"), l.VideoBV, l.VideoTitle)
	}

	if len(l.Cards) > 0 {
		b.WriteString("\n")
		rows := make([][]string, 0, len(l.Cards))
		for _, c := range l.Cards {
			name := c.ID
			if cat != nil {
				if card, ok := cat.Get(c.ID); ok {
					name = card.DisplayName()
				}
			}
			rows = append(rows, []string{fmt.Sprint(c.Pos), name, string(c.Role)})
		}
		b.WriteString(RenderTable([]string{"POS", "CARD", "ROLE"}, rows))
	}
	if len(l.SpecialSlots) > 0 {
		var ms []string
		for _, m := range l.SpecialSlots {
			ms = append(ms, MarkerStyle(m.Type).Render(fmt.Sprintf("%s@%d", m.Type, m.Slot)))
		}
		fmt.Fprintf(&b, "%s %s\n", Dim("Markers"), strings.Join(ms, " "))
	}
	return b.String()
}

// FormatCatalog renders catalog search results.
func FormatCatalog(cards []catalog.Card) string {
	if len(cards) == 0 {
		return Dim("No matching cards.")
	}
	rows := make([][]string, 0, len(cards))
	for _, c := range cards {
		size := c.Size
		if c.Kind == domain.KindSkill {
			size = Dim("--")
		}
		tier := catalog.DefaultBorderTier(c.Ref())
		rows = append(rows, []string{
			c.ID,
			Bold(c.DisplayName()),
			string(c.Kind),
			size,
			TierStyle(tier).Render(string(tier)),
		})
	}
	return RenderTable([]string{"ID", "NAME", "KIND", "SIZE", "TIER"}, rows)
}

// FormatCard renders one catalog card with its border options.
func FormatCard(c catalog.Card) string {
	var b strings.Builder
	b.WriteString(Header(c.DisplayName()))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", Dim("ID"), c.ID)
	if c.NameEN != "" && c.NameEN != c.DisplayName() {
		fmt.Fprintf(&b, "%s %s\n", Dim("English"), c.NameEN)
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("Kind"), c.Kind)
	if c.Kind == domain.KindItem {
		fmt.Fprintf(&b, "%s %s (%d slots)\n", Dim("Size"), c.Size, catalog.Width(c.Size))
		options, editable := catalog.BorderTierOptions(c.Ref())
		var names []string
		for _, o := range options {
			names = append(names, TierStyle(o).Render(string(o)))
		}
		lock := ""
		if !editable {
			lock = Dim(" (fixed)")
		}
		fmt.Fprintf(&b, "%s %s%s\n", Dim("Borders"), strings.Join(names, " "), lock)
	}
	if len(c.Heroes) > 0 {
		fmt.Fprintf(&b, "%s %s\n", Dim("Heroes"), strings.Join(c.Heroes, ", "))
	}
	return b.String()
}
