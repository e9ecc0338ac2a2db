package domain

import "fmt"

// SpecialSlot is an elemental marker on one board slot.
type SpecialSlot struct {
	ID   string
	Slot int
	Type MarkerType
}

// SkillEntry is a skill attached to a segment.
type SkillEntry struct {
	SkillID string
	Card    CardRef
}

// Segment owns the builds and skills for the days [DayFrom, DayTo].
type Segment struct {
	ID                string
	DayFrom           int
	DayTo             int
	Hero              Hero
	StrategyText      string
	SpecialSlots      []SpecialSlot
	Builds            []CardBuild
	Skills            []SkillEntry
	CoreSkillIDs      []string
	ImportantSkillIDs []string
	OptionalSkillIDs  []string
}

// Label renders the day range as "Day3" or "Day3-Day7".
func (s Segment) Label() string {
	if s.DayFrom == s.DayTo {
		return fmt.Sprintf("Day%d", s.DayFrom)
	}
	return fmt.Sprintf("Day%d-Day%d", s.DayFrom, s.DayTo)
}

// Days returns the number of days covered.
func (s Segment) Days() int {
	return s.DayTo - s.DayFrom + 1
}

// Clone returns a deep copy.
func (s Segment) Clone() Segment {
	s.SpecialSlots = append([]SpecialSlot(nil), s.SpecialSlots...)
	var builds []CardBuild
	for _, b := range s.Builds {
		builds = append(builds, b.Clone())
	}
	s.Builds = builds
	s.Skills = append([]SkillEntry(nil), s.Skills...)
	s.CoreSkillIDs = append([]string(nil), s.CoreSkillIDs...)
	s.ImportantSkillIDs = append([]string(nil), s.ImportantSkillIDs...)
	s.OptionalSkillIDs = append([]string(nil), s.OptionalSkillIDs...)
	return s
}

// BuildIndex returns the index of the build with the given id, or -1.
func (s Segment) BuildIndex(buildID string) int {
	for i, b := range s.Builds {
		if b.ID == buildID {
			return i
		}
	}
	return -1
}

// HasSkill reports whether the skill is attached.
func (s Segment) HasSkill(skillID string) bool {
	for _, sk := range s.Skills {
		if sk.SkillID == skillID {
			return true
		}
	}
	return false
}

// SkillRoleOf returns the role tag of a skill, or "" when untagged.
func (s Segment) SkillRoleOf(skillID string) SkillRole {
	switch {
	case containsID(s.CoreSkillIDs, skillID):
		return SkillCore
	case containsID(s.ImportantSkillIDs, skillID):
		return SkillImportant
	case containsID(s.OptionalSkillIDs, skillID):
		return SkillOptional
	}
	return ""
}

// HasCards reports whether any build of the segment has a placed card.
func (s Segment) HasCards() bool {
	for _, b := range s.Builds {
		if len(b.Cards) > 0 {
			return true
		}
	}
	return false
}

// SameMarkers reports whether two marker lists are identical in order, id,
// slot and type.
func SameMarkers(a, b []SpecialSlot) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
