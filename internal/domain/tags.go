package domain

// ASCII slugs accepted on the command line for the lineup tags.
var (
	DayPlanSlugs = map[string]DayPlanTag{
		"win-streak-early": DayPlanEarlyExit,
		"northern-push":    DayPlanNorthernRun,
	}
	StrengthSlugs = map[string]StrengthTag{
		"meta":     StrengthMeta,
		"balanced": StrengthBalanced,
		"off-meta": StrengthOffMeta,
	}
	DifficultySlugs = map[string]DifficultyTag{
		"easy":      DifficultyEasy,
		"hard":      DifficultyHard,
		"very-hard": DifficultyVeryHard,
	}
)

// TagSlug returns the slug of a tag wire value, or the value itself when it
// has none.
func TagSlug(value string) string {
	for slug, v := range DayPlanSlugs {
		if string(v) == value {
			return slug
		}
	}
	for slug, v := range StrengthSlugs {
		if string(v) == value {
			return slug
		}
	}
	for slug, v := range DifficultySlugs {
		if string(v) == value {
			return slug
		}
	}
	return value
}
