package domain

type Hero string

const (
	HeroPygmalien Hero = "Pygmalien"
	HeroJules     Hero = "Jules"
	HeroVanessa   Hero = "Vanessa"
	HeroMak       Hero = "Mak"
	HeroDooley    Hero = "Dooley"
	HeroStelle    Hero = "Stelle"
)

// DefaultHero is used when a plan or snapshot names no hero.
const DefaultHero = HeroPygmalien

// ValidHeroes is the canonical set of accepted hero names.
var ValidHeroes = map[Hero]bool{
	HeroPygmalien: true, HeroJules: true, HeroVanessa: true,
	HeroMak: true, HeroDooley: true, HeroStelle: true,
}

// Heroes lists heroes in display order.
var Heroes = []Hero{HeroPygmalien, HeroJules, HeroVanessa, HeroMak, HeroDooley, HeroStelle}

// BearsMarkers reports whether segments played with this hero carry
// elemental special slots.
func (h Hero) BearsMarkers() bool {
	return h == HeroJules
}

type MarkerType string

const (
	MarkerFire MarkerType = "fire"
	MarkerIce  MarkerType = "ice"
)

// Flip returns the other marker type.
func (m MarkerType) Flip() MarkerType {
	if m == MarkerFire {
		return MarkerIce
	}
	return MarkerFire
}

type BorderTier string

const (
	TierBronze    BorderTier = "bronze"
	TierSilver    BorderTier = "silver"
	TierGold      BorderTier = "gold"
	TierDiamond   BorderTier = "diamond"
	TierLegendary BorderTier = "legendary"
)

// TierOrder lists border tiers from lowest to highest.
var TierOrder = []BorderTier{TierBronze, TierSilver, TierGold, TierDiamond, TierLegendary}

// Rank returns the position of t in TierOrder, or -1 when unknown.
func (t BorderTier) Rank() int {
	for i, v := range TierOrder {
		if v == t {
			return i
		}
	}
	return -1
}

type CardRole string

const (
	RoleCore      CardRole = "core"
	RoleSecondary CardRole = "secondary"
	RoleSupport   CardRole = "support"
)

type SkillRole string

const (
	SkillCore      SkillRole = "core"
	SkillImportant SkillRole = "important"
	SkillOptional  SkillRole = "optional"
)

// Lineup tags keep the wire values used by shared snapshots.

type DayPlanTag string

const (
	DayPlanEarlyExit   DayPlanTag = "连胜早走"
	DayPlanNorthernRun DayPlanTag = "北伐阵容"
)

type StrengthTag string

const (
	StrengthMeta     StrengthTag = "版本强势"
	StrengthBalanced StrengthTag = "中规中矩"
	StrengthOffMeta  StrengthTag = "地沟油"
)

type DifficultyTag string

const (
	DifficultyEasy     DifficultyTag = "容易成型"
	DifficultyHard     DifficultyTag = "比较困难"
	DifficultyVeryHard DifficultyTag = "极难成型"
)

var (
	ValidDayPlanTags    = map[DayPlanTag]bool{DayPlanEarlyExit: true, DayPlanNorthernRun: true}
	ValidStrengthTags   = map[StrengthTag]bool{StrengthMeta: true, StrengthBalanced: true, StrengthOffMeta: true}
	ValidDifficultyTags = map[DifficultyTag]bool{DifficultyEasy: true, DifficultyHard: true, DifficultyVeryHard: true}
)

const (
	DefaultDayPlanTag    = DayPlanEarlyExit
	DefaultStrengthTag   = StrengthBalanced
	DefaultDifficultyTag = DifficultyHard
)
