package planner

import (
	"fmt"

	"github.com/alexanderramin/lineup/internal/domain"
)

// AddSkill attaches a skill to the active segment. Adding a skill that is
// already attached is a no-op.
func AddSkill(p domain.Plan, card domain.CardRef) (domain.Plan, error) {
	if card.Kind != domain.KindSkill {
		return p, domain.NewHint(domain.HintNotASkill, fmt.Sprintf("%s is not a skill", card.DisplayName()))
	}
	return updateActiveSegment(p, func(seg domain.Segment) (domain.Segment, error) {
		if !seg.HasSkill(card.ID) {
			seg.Skills = append(seg.Skills, domain.SkillEntry{SkillID: card.ID, Card: card})
		}
		return seg, nil
	})
}

// RemoveSkill detaches a skill and its role tag.
func RemoveSkill(p domain.Plan, skillID string) (domain.Plan, error) {
	return updateActiveSegment(p, func(seg domain.Segment) (domain.Segment, error) {
		if !seg.HasSkill(skillID) {
			return seg, unknownSkill(skillID)
		}
		var kept []domain.SkillEntry
		for _, s := range seg.Skills {
			if s.SkillID != skillID {
				kept = append(kept, s)
			}
		}
		seg.Skills = kept
		seg.CoreSkillIDs = domain.WithoutID(seg.CoreSkillIDs, skillID)
		seg.ImportantSkillIDs = domain.WithoutID(seg.ImportantSkillIDs, skillID)
		seg.OptionalSkillIDs = domain.WithoutID(seg.OptionalSkillIDs, skillID)
		return seg, nil
	})
}

// ToggleSkillRole toggles role on a skill; roles are exclusive.
func ToggleSkillRole(p domain.Plan, skillID string, role domain.SkillRole) (domain.Plan, error) {
	return updateActiveSegment(p, func(seg domain.Segment) (domain.Segment, error) {
		if !seg.HasSkill(skillID) {
			return seg, unknownSkill(skillID)
		}
		core := domain.WithoutID(seg.CoreSkillIDs, skillID)
		important := domain.WithoutID(seg.ImportantSkillIDs, skillID)
		optional := domain.WithoutID(seg.OptionalSkillIDs, skillID)
		switch role {
		case domain.SkillCore:
			core = domain.ToggleID(seg.CoreSkillIDs, skillID)
		case domain.SkillImportant:
			important = domain.ToggleID(seg.ImportantSkillIDs, skillID)
		case domain.SkillOptional:
			optional = domain.ToggleID(seg.OptionalSkillIDs, skillID)
		default:
			return seg, domain.NewHint(domain.HintUnknownTag, fmt.Sprintf("unknown skill role %q", role))
		}
		seg.CoreSkillIDs, seg.ImportantSkillIDs, seg.OptionalSkillIDs = core, important, optional
		return seg, nil
	})
}

func unknownSkill(id string) error {
	return domain.NewHint(domain.HintUnknownSkill, fmt.Sprintf("no skill %q in this segment", id))
}
