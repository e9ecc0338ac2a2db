package cli

import (
	"github.com/spf13/pflag"
)

func addConfirmFlag(fs *pflag.FlagSet, yes *bool) {
	fs.BoolVarP(yes, "yes", "y", false, "Skip confirmation prompts")
}

// tagFlags holds the lineup tag flags shared by commands that set them.
type tagFlags struct {
	dayPlan    string
	strength   string
	difficulty string
}

func (t *tagFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&t.dayPlan, "day-plan", "", "Day plan tag (win-streak-early, northern-push)")
	fs.StringVar(&t.strength, "strength", "", "Strength tag (meta, balanced, off-meta)")
	fs.StringVar(&t.difficulty, "difficulty", "", "Difficulty tag (easy, hard, very-hard)")
}

func (t *tagFlags) changed(fs *pflag.FlagSet) bool {
	return fs.Changed("day-plan") || fs.Changed("strength") || fs.Changed("difficulty")
}
