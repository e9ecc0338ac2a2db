package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/lineup/internal/catalog"
	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/planner"
)

// resolveCard finds a catalog card of kind by exact id, then by a unique
// id or name match.
func resolveCard(app *App, query string, kind domain.CardKind) (catalog.Card, error) {
	cat, err := requireCatalog(app)
	if err != nil {
		return catalog.Card{}, err
	}
	if c, ok := cat.Get(query); ok && c.Kind == kind {
		return c, nil
	}
	matches := cat.Search(query, kind)
	for _, c := range matches {
		if strings.EqualFold(c.NameEN, query) || c.NameCN == query {
			return c, nil
		}
	}
	switch len(matches) {
	case 0:
		return catalog.Card{}, fmt.Errorf("no %s matches %q", kind, query)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, 0, min(len(matches), 5))
		for _, c := range matches[:min(len(matches), 5)] {
			names = append(names, c.ID)
		}
		return catalog.Card{}, fmt.Errorf("%q matches %d cards (%s...)", query, len(matches), strings.Join(names, ", "))
	}
}

// resolvePlacement finds a placement of the active build by id, unique id
// prefix or a slot it covers.
func resolvePlacement(p domain.Plan, input string) (string, error) {
	b, ok := planner.ActiveBuild(p)
	if !ok {
		return "", fmt.Errorf("no active build")
	}
	if slot, err := strconv.Atoi(input); err == nil {
		for _, c := range b.Cards {
			if slot >= c.Start && slot < c.End() {
				return c.PlacementID, nil
			}
		}
		return "", fmt.Errorf("no card on slot %d", slot)
	}
	var matches []string
	for _, c := range b.Cards {
		if c.PlacementID == input {
			return c.PlacementID, nil
		}
		if strings.HasPrefix(c.PlacementID, input) {
			matches = append(matches, c.PlacementID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("card not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("card prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveBuild finds a build of the active segment by 1-based position,
// id, unique id prefix or name.
func resolveBuild(p domain.Plan, input string) (string, error) {
	segs := p.Timeline.Segments
	if len(segs) == 0 {
		return "", fmt.Errorf("plan has no segments")
	}
	seg := segs[p.ActiveIndex()]
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(seg.Builds) {
			return "", fmt.Errorf("build %d out of range 1-%d", n, len(seg.Builds))
		}
		return seg.Builds[n-1].ID, nil
	}
	var matches []string
	for _, b := range seg.Builds {
		if b.ID == input || strings.EqualFold(b.Name, input) {
			return b.ID, nil
		}
		if strings.HasPrefix(b.ID, input) {
			matches = append(matches, b.ID)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	return "", fmt.Errorf("build not found: %q", input)
}

// resolveMarker finds a marker of the active segment by id or slot.
func resolveMarker(p domain.Plan, input string) (string, error) {
	if slot, err := strconv.Atoi(input); err == nil {
		m, ok := planner.MarkerAt(p, slot)
		if !ok {
			return "", fmt.Errorf("no marker on slot %d", slot)
		}
		return m.ID, nil
	}
	return input, nil
}

// resolveSkill finds an attached skill by id or catalog name.
func resolveSkill(app *App, p domain.Plan, input string) (string, error) {
	segs := p.Timeline.Segments
	if len(segs) == 0 {
		return "", fmt.Errorf("plan has no segments")
	}
	seg := segs[p.ActiveIndex()]
	for _, sk := range seg.Skills {
		if sk.SkillID == input || strings.EqualFold(sk.Card.NameEN, input) || sk.Card.NameCN == input {
			return sk.SkillID, nil
		}
	}
	if app.Catalog != nil {
		if c, err := resolveCard(app, input, domain.KindSkill); err == nil && seg.HasSkill(c.ID) {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("skill %q is not attached to %s", input, seg.Label())
}

func parseSlot(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid slot %q", s)
	}
	return n, nil
}

func parseTag[T ~string](input string, slugs map[string]T, valid map[T]bool) (T, error) {
	if input == "" {
		return "", nil
	}
	if v, ok := slugs[strings.ToLower(input)]; ok {
		return v, nil
	}
	if valid[T(input)] {
		return T(input), nil
	}
	return "", fmt.Errorf("unknown tag %q", input)
}

// resolveID matches input against ids exactly, then as a unique prefix.
func resolveID(kind, input string, ids []string) (string, error) {
	var matches []string
	for _, id := range ids {
		if id == input {
			return id, nil
		}
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}
