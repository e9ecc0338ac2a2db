package domain

import "time"

// CommunityRole is the role shown for a card in a shared lineup summary.
type CommunityRole string

const (
	CommunityCore CommunityRole = "core"
	CommunitySub  CommunityRole = "sub"
	CommunityTech CommunityRole = "tech"
)

type InteractionType string

const (
	InteractionLike     InteractionType = "like"
	InteractionFavorite InteractionType = "favorite"
)

// ValidInteractions is the set of accepted interaction types.
var ValidInteractions = map[InteractionType]bool{InteractionLike: true, InteractionFavorite: true}

// CommunityCard summarises one card of a shared lineup. Pos is 1-based.
type CommunityCard struct {
	ID   string
	Role CommunityRole
	Pos  int
}

// CommunityMarker is a marker of a shared lineup's final segment.
type CommunityMarker struct {
	Slot int
	Type MarkerType
}

// CommunityLineup is a published plan with its list summary and counters.
type CommunityLineup struct {
	UUID          string
	Name          string
	Hero          Hero
	DayFrom       int
	DayTo         int
	DayPlanTag    DayPlanTag
	StrengthTag   StrengthTag
	DifficultyTag DifficultyTag
	Cards         []CommunityCard
	SpecialSlots  []CommunityMarker
	Payload       []byte
	Version       string
	Likes         int
	Favorites     int
	AuthorName    string
	VideoBV       string
	VideoTitle    string
	CreatedAt     time.Time
}

// SummarizeLineup derives the list summary of p: the cards of the first
// build of the latest-ending segment with their role and 1-based position,
// and that segment's markers.
func SummarizeLineup(p Plan) ([]CommunityCard, []CommunityMarker) {
	segs := p.Timeline.Segments
	if len(segs) == 0 {
		return nil, nil
	}
	last := segs[0]
	for _, seg := range segs[1:] {
		if seg.DayTo > last.DayTo {
			last = seg
		}
	}

	var cards []CommunityCard
	if len(last.Builds) > 0 {
		b := last.Builds[0]
		for _, c := range b.Cards {
			if c.Card.ID == "" {
				continue
			}
			role := CommunityTech
			switch b.RoleOf(c.PlacementID) {
			case RoleCore:
				role = CommunityCore
			case RoleSecondary:
				role = CommunitySub
			}
			cards = append(cards, CommunityCard{ID: c.Card.ID, Role: role, Pos: c.Start + 1})
		}
	}

	var markers []CommunityMarker
	for _, m := range last.SpecialSlots {
		markers = append(markers, CommunityMarker{Slot: m.Slot, Type: m.Type})
	}
	return cards, markers
}
