package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// Snapshot versions. Version 1 stored one core and one secondary card per
// build, version 2 added multi-role lists, version 3 added lineup tags.
const (
	MinVersion     = 1
	CurrentVersion = 3
)

// Snapshot is the JSON document shared between players. Field names match
// the web planner so blobs copied from either side import cleanly.
type Snapshot struct {
	Version              int               `json:"version"`
	DayStart             int               `json:"dayStart"`
	DayEnd               int               `json:"dayEnd"`
	Hero                 string            `json:"hero,omitempty"`
	LineupName           string            `json:"lineupName,omitempty"`
	DayPlanTag           string            `json:"dayPlanTag,omitempty"`
	StrengthTag          string            `json:"strengthTag,omitempty"`
	DifficultyTag        string            `json:"difficultyTag,omitempty"`
	Segments             []SegmentSnapshot `json:"segments"`
	ActiveSegmentIndex   int               `json:"activeSegmentIndex"`
	ActiveBuildBySegment map[string]string `json:"activeBuildBySegment"`
}

// SegmentSnapshot is one day range of the timeline.
type SegmentSnapshot struct {
	ID                string           `json:"id"`
	DayFrom           int              `json:"dayFrom"`
	DayTo             int              `json:"dayTo"`
	Hero              string           `json:"hero,omitempty"`
	StrategyText      string           `json:"strategyText"`
	SpecialSlots      []MarkerSnapshot `json:"specialSlots"`
	Builds            []BuildSnapshot  `json:"builds"`
	Skills            []SkillSnapshot  `json:"skills"`
	CoreSkillIDs      []string         `json:"coreSkillIds"`
	ImportantSkillIDs []string         `json:"importantSkillIds"`
	OptionalSkillIDs  []string         `json:"optionalSkillIds"`
	CoreSkillID       string           `json:"coreSkillId,omitempty"`
}

// MarkerSnapshot is an elemental marker.
type MarkerSnapshot struct {
	ID   string `json:"id"`
	Slot int    `json:"slot"`
	Type string `json:"type"`
}

// BuildSnapshot is one card layout. CorePlacementID and
// SecondaryPlacementID are the version 1 single-role fields.
type BuildSnapshot struct {
	ID                    string         `json:"id"`
	Name                  string         `json:"name"`
	Cards                 []CardSnapshot `json:"cards"`
	CorePlacementIDs      []string       `json:"corePlacementIds"`
	SecondaryPlacementIDs []string       `json:"secondaryPlacementIds"`
	SupportPlacementIDs   []string       `json:"supportPlacementIds"`
	CorePlacementID       string         `json:"corePlacementId,omitempty"`
	SecondaryPlacementID  string         `json:"secondaryPlacementId,omitempty"`
}

// CardSnapshot is a placed card with its definition inlined.
type CardSnapshot struct {
	PlacementID string       `json:"placementId"`
	Item        ItemSnapshot `json:"item"`
	Start       int          `json:"start"`
	Width       int          `json:"width"`
	BorderTier  string       `json:"borderTier"`
}

// SkillSnapshot is a skill attached to a segment.
type SkillSnapshot struct {
	SkillID string       `json:"skillId"`
	Item    ItemSnapshot `json:"item"`
}

// ItemSnapshot is a card definition as embedded in snapshots. Tier is an
// older spelling of StartingTier.
type ItemSnapshot struct {
	ID             string `json:"id"`
	NameCN         string `json:"name_cn,omitempty"`
	NameEN         string `json:"name_en,omitempty"`
	Size           string `json:"size,omitempty"`
	StartingTier   string `json:"starting_tier,omitempty"`
	AvailableTiers string `json:"available_tiers,omitempty"`
	Tier           string `json:"tier,omitempty"`
}

// Parse decodes a snapshot. Malformed JSON is reported as a
// *ValidationError so callers handle every rejection the same way.
func Parse(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, &ValidationError{Code: CodeMalformed, Detail: err.Error()}
	}
	return &s, nil
}

// LoadSnapshot reads and parses a snapshot file.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return Parse(data)
}
