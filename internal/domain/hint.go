package domain

import "errors"

// HintCode classifies a recoverable, user-facing failure. Operations that
// return a Hint leave their input untouched.
type HintCode string

const (
	HintCapacity         HintCode = "CAPACITY"
	HintSingleDay        HintCode = "SINGLE_DAY"
	HintNoNeighbour      HintCode = "NO_NEIGHBOUR"
	HintUnknownSegment   HintCode = "UNKNOWN_SEGMENT"
	HintNoPrevious       HintCode = "NO_PREVIOUS"
	HintInvalidRange     HintCode = "INVALID_RANGE"
	HintLastBuild        HintCode = "LAST_BUILD"
	HintUnknownBuild     HintCode = "UNKNOWN_BUILD"
	HintUnknownCard      HintCode = "UNKNOWN_CARD"
	HintUnknownSkill     HintCode = "UNKNOWN_SKILL"
	HintSkillOnBoard     HintCode = "SKILL_ON_BOARD"
	HintNotASkill        HintCode = "NOT_A_SKILL"
	HintBorderLocked     HintCode = "BORDER_LOCKED"
	HintMarkerHero       HintCode = "MARKER_HERO"
	HintMarkerDisallowed HintCode = "MARKER_DISALLOWED"
	HintMarkerDayOne     HintCode = "MARKER_DAY_ONE"
	HintMarkerOccupied   HintCode = "MARKER_OCCUPIED"
	HintMarkerLimit      HintCode = "MARKER_LIMIT"
	HintMarkerFireOnly   HintCode = "MARKER_FIRE_ONLY"
	HintUnknownMarker    HintCode = "UNKNOWN_MARKER"
	HintUnknownHero      HintCode = "UNKNOWN_HERO"
	HintUnknownTag       HintCode = "UNKNOWN_TAG"
)

// Hint is returned instead of a new value when an edit cannot be applied.
type Hint struct {
	Code    HintCode
	Message string
}

func (h *Hint) Error() string {
	return h.Message
}

// NewHint builds a Hint.
func NewHint(code HintCode, message string) *Hint {
	return &Hint{Code: code, Message: message}
}

// HintCodeOf returns the code of the Hint wrapped in err, or "" when err is
// not a hint.
func HintCodeOf(err error) HintCode {
	var h *Hint
	if errors.As(err, &h) {
		return h.Code
	}
	return ""
}
