package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/alexanderramin/lineup/internal/catalog"
	"github.com/alexanderramin/lineup/internal/config"
	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/planner"
	"github.com/alexanderramin/lineup/internal/repository"
	"github.com/alexanderramin/lineup/internal/service"
	"github.com/alexanderramin/lineup/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	text string
}

func (c *fakeClipboard) ReadAll() (string, error) { return c.text, nil }

func (c *fakeClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

func testApp(t *testing.T) *App {
	t.Helper()
	ConfigureColor("never", false)

	db := testutil.NewTestDB(t)
	settings := repository.NewSQLiteSettingsRepo(db)
	drafts := repository.NewSQLiteDraftRepo(db)
	lineups := repository.NewSQLiteCommunityRepo(db)

	cat, err := catalog.Default()
	require.NoError(t, err)

	return &App{
		Planner:       service.NewPlannerService(settings, testutil.NewRand()),
		Drafts:        service.NewDraftService(drafts),
		Import:        service.NewImportService(drafts),
		Community:     service.NewCommunityService(lineups, testutil.NewTestUoW(db)),
		Settings:      service.NewSettingsService(settings, 1.0),
		Catalog:       cat,
		Config:        config.Default(),
		ConfigPath:    filepath.Join(t.TempDir(), "config.toml"),
		Nickname:      "tester",
		Clipboard:     &fakeClipboard{},
		IsInteractive: func() bool { return false },
	}
}

func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func current(t *testing.T, app *App) domain.Plan {
	t.Helper()
	p, err := app.Planner.Current(context.Background())
	require.NoError(t, err)
	return p
}

func activeCards(t *testing.T, app *App) []domain.Placement {
	t.Helper()
	b, ok := planner.ActiveBuild(current(t, app))
	require.True(t, ok)
	return b.Cards
}

// --- Root and plan ---

func TestRootCmd_ShowsDefaultPlan(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "Day1-Day13")
	assert.Contains(t, out, string(domain.DefaultHero))
}

func TestPlanNew_RangeAndHero(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "plan", "new", "--from", "2", "--to", "6", "--hero", "Mak")
	require.NoError(t, err)

	p := current(t, app)
	assert.Equal(t, 2, p.Timeline.DayStart)
	assert.Equal(t, 6, p.Timeline.DayEnd)
	assert.Equal(t, domain.HeroMak, p.Hero())
}

func TestPlanNew_RequiresConfirmationWhenCardsPlaced(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "card", "place", "oven", "3")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "plan", "new")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
	assert.Len(t, activeCards(t, app), 1, "plan untouched without confirmation")

	_, err = executeCmd(t, app, "plan", "new", "--yes")
	require.NoError(t, err)
	assert.Empty(t, activeCards(t, app))
}

func TestPlanNew_InvalidRangeIsHint(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "plan", "new", "--from", "9", "--to", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "INVALID_RANGE")
}

func TestPlanSplit_SingleDayHint(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "plan", "split")
	require.NoError(t, err)
	assert.Contains(t, out, "SINGLE_DAY")
	assert.Len(t, current(t, app).Timeline.Segments, 4)
}

func TestPlanSelectAndSplit(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "plan", "select", "3")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "plan", "split")
	require.NoError(t, err)

	p := current(t, app)
	require.Len(t, p.Timeline.Segments, 5)
	assert.Equal(t, 3, p.Timeline.Segments[2].DayFrom)
	assert.Equal(t, 5, p.Timeline.Segments[2].DayTo)
	assert.Equal(t, 6, p.Timeline.Segments[3].DayFrom)
}

func TestPlanMerge(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "plan", "select", "2")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "plan", "merge", "--right")
	require.NoError(t, err)

	p := current(t, app)
	require.Len(t, p.Timeline.Segments, 3)
	assert.Equal(t, 2, p.Timeline.Segments[1].DayFrom)
	assert.Equal(t, 7, p.Timeline.Segments[1].DayTo)
}

func TestPlanBoundary(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "plan", "boundary", "3", "9")
	require.NoError(t, err)

	segs := current(t, app).Timeline.Segments
	assert.Equal(t, 9, segs[2].DayTo)
	assert.Equal(t, 10, segs[3].DayFrom)
}

func TestPlanHero_ConfirmsWhenWorkWouldBeLost(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "card", "place", "oven", "3")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "plan", "hero", "jules")
	require.Error(t, err)
	assert.Equal(t, domain.DefaultHero, current(t, app).Hero())

	_, err = executeCmd(t, app, "plan", "hero", "jules", "--yes")
	require.NoError(t, err)
	assert.Equal(t, domain.HeroJules, current(t, app).Hero())
	assert.Empty(t, activeCards(t, app))
}

func TestPlanHero_UnknownIsHint(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "plan", "hero", "nobody")
	require.NoError(t, err)
	assert.Contains(t, out, "UNKNOWN_HERO")
}

func TestPlanRenameTagsStrategy(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "plan", "rename", "Oven rush")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "plan", "tags", "--strength", "off-meta", "--difficulty", "easy")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "plan", "strategy", "sell", "early")
	require.NoError(t, err)

	p := current(t, app)
	assert.Equal(t, "Oven rush", p.LineupName)
	assert.Equal(t, domain.StrengthOffMeta, p.StrengthTag)
	assert.Equal(t, domain.DifficultyEasy, p.DifficultyTag)
	assert.Equal(t, domain.DefaultDayPlanTag, p.DayPlanTag)
	assert.Equal(t, "sell early", p.Timeline.Segments[0].StrategyText)
}

func TestPlanTags_Errors(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "plan", "tags")
	assert.Error(t, err)

	_, err = executeCmd(t, app, "plan", "tags", "--strength", "mighty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tag")
}

// --- Cards ---

func TestCardPlaceMoveRemove(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "card", "place", "frying-pan", "3")
	require.NoError(t, err)
	cards := activeCards(t, app)
	require.Len(t, cards, 1)
	assert.Equal(t, 3, cards[0].Start)
	assert.Equal(t, domain.TierBronze, cards[0].BorderTier)

	_, err = executeCmd(t, app, "card", "move", "3", "6")
	require.NoError(t, err)
	cards = activeCards(t, app)
	require.Len(t, cards, 1)
	assert.Equal(t, 6, cards[0].Start)

	_, err = executeCmd(t, app, "card", "remove", cards[0].PlacementID)
	require.NoError(t, err)
	assert.Empty(t, activeCards(t, app))
}

func TestCardPlace_ByName(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "card", "place", "Spice Rack", "4")
	require.NoError(t, err)
	cards := activeCards(t, app)
	require.Len(t, cards, 1)
	assert.Equal(t, "spice-rack", cards[0].Card.ID)
	assert.Equal(t, 2, cards[0].Width)
}

func TestCardPlace_CapacityHint(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "card", "place", "oven", "2")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "card", "place", "atlas-stone", "5")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "card", "place", "lighthouse", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "CAPACITY")
	assert.Len(t, activeCards(t, app), 2)
}

func TestCardPlace_SkillIsRejected(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "card", "place", "hot-stove", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no item matches")
}

func TestCardBorderAndRole(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "card", "place", "frying-pan", "3")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "card", "place", "atlas-stone", "5")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "card", "border", "3", "gold")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "card", "border", "5", "gold")
	require.NoError(t, err)
	assert.Contains(t, out, "BORDER_LOCKED")

	_, err = executeCmd(t, app, "card", "role", "3", "core")
	require.NoError(t, err)

	p := current(t, app)
	b, _ := planner.ActiveBuild(p)
	var pan domain.Placement
	for _, c := range b.Cards {
		if c.Card.ID == "frying-pan" {
			pan = c
		}
	}
	assert.Equal(t, domain.TierGold, pan.BorderTier)
	assert.Equal(t, []string{pan.PlacementID}, b.CorePlacementIDs)
}

func TestCardMove_NoCardOnSlot(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "card", "move", "4", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no card on slot 4")
}

// --- Builds ---

func TestBuildAddListUseDelete(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "build", "add")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "build", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "2")

	p := current(t, app)
	seg := p.Timeline.Segments[0]
	require.Len(t, seg.Builds, 2)
	assert.Equal(t, 1, p.ActiveBuildIndex(0))

	_, err = executeCmd(t, app, "build", "use", "1")
	require.NoError(t, err)
	assert.Equal(t, 0, current(t, app).ActiveBuildIndex(0))

	_, err = executeCmd(t, app, "build", "delete", "2")
	require.NoError(t, err)
	assert.Len(t, current(t, app).Timeline.Segments[0].Builds, 1)

	out, err = executeCmd(t, app, "build", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "LAST_BUILD")
}

func TestBuildDelete_AsksWhenBuildHasCards(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "build", "add")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "card", "place", "oven", "3")
	require.NoError(t, err)

	var asked string
	app.IsInteractive = func() bool { return true }
	app.Confirm = func(title string) (bool, error) {
		asked = title
		return false, nil
	}

	_, err = executeCmd(t, app, "build", "delete", "2")
	require.NoError(t, err)
	assert.NotEmpty(t, asked)
	assert.Len(t, current(t, app).Timeline.Segments[0].Builds, 2, "declined")

	app.Confirm = func(string) (bool, error) { return true, nil }
	_, err = executeCmd(t, app, "build", "delete", "2")
	require.NoError(t, err)
	assert.Len(t, current(t, app).Timeline.Segments[0].Builds, 1)
}

func TestBuildInherit(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "card", "place", "frying-pan", "2")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "build", "inherit")
	require.NoError(t, err)
	assert.Contains(t, out, "NO_PREVIOUS")

	_, err = executeCmd(t, app, "plan", "select", "2")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "build", "inherit")
	require.NoError(t, err)

	cards := activeCards(t, app)
	require.Len(t, cards, 1)
	assert.Equal(t, "frying-pan", cards[0].Card.ID)
}

// --- Skills and markers ---

func TestSkillAddRoleRemove(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "skill", "add", "hot-stove")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "skill", "role", "Hot Stove", "core")
	require.NoError(t, err)

	seg := current(t, app).Timeline.Segments[0]
	require.Len(t, seg.Skills, 1)
	assert.Equal(t, domain.SkillCore, seg.SkillRoleOf("hot-stove"))

	_, err = executeCmd(t, app, "skill", "remove", "hot-stove")
	require.NoError(t, err)
	assert.Empty(t, current(t, app).Timeline.Segments[0].Skills)
}

func TestSkillAdd_ItemIsRejected(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "skill", "add", "oven")
	require.Error(t, err)
}

func TestMarkerAdd_HeroWithoutMarkers(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "marker", "add", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "MARKER_HERO")
}

func TestMarkerToggleAndRemove(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "plan", "hero", "jules")
	require.NoError(t, err)

	first := current(t, app).Timeline.Segments[0].SpecialSlots
	require.Len(t, first, 1, "jules starts with a seeded day-1 marker")

	out, err := executeCmd(t, app, "marker", "toggle", first[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "MARKER_FIRE_ONLY")

	_, err = executeCmd(t, app, "plan", "select", "2")
	require.NoError(t, err)
	day2 := current(t, app).Timeline.Segments[1].SpecialSlots
	require.Len(t, day2, 2)

	_, err = executeCmd(t, app, "marker", "toggle", strconv.Itoa(day2[1].Slot))
	require.NoError(t, err)
	flipped := current(t, app).Timeline.Segments[1].SpecialSlots
	require.Len(t, flipped, 2)
	assert.Equal(t, day2[1].Type.Flip(), flipped[1].Type)

	out, err = executeCmd(t, app, "marker", "list")
	require.NoError(t, err)
	assert.Contains(t, out, flipped[1].ID)

	before := current(t, app)
	want, err := planner.RemoveMarker(before, flipped[1].ID)
	require.NoError(t, err)
	_, err = executeCmd(t, app, "marker", "remove", flipped[1].ID)
	require.NoError(t, err)
	assert.Equal(t, want, current(t, app))
}

// --- Export and import ---

func TestExportImport_ClipboardRoundTrip(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "plan", "rename", "Shared")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "card", "place", "oven", "3")
	require.NoError(t, err)
	want := current(t, app)

	out, err := executeCmd(t, app, "export", "--clipboard")
	require.NoError(t, err)
	assert.Contains(t, out, "Copied")

	_, err = executeCmd(t, app, "plan", "new", "--yes", "--hero", "Mak")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "import", "--clipboard", "--yes")
	require.NoError(t, err)
	assert.Equal(t, want, current(t, app))
}

func TestExport_ToStdout(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "export")
	require.NoError(t, err)
	assert.Contains(t, out, `"segments"`)
}

func TestImport_AsDraft(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "export", "--clipboard")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "import", "--clipboard", "--draft", "From a friend")
	require.NoError(t, err)
	assert.Contains(t, out, "From a friend")

	out, err = executeCmd(t, app, "draft", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "From a friend")
}

func TestImport_InvalidSnapshot(t *testing.T) {
	app := testApp(t)
	app.Clipboard = &fakeClipboard{text: "not json"}

	_, err := executeCmd(t, app, "import", "--clipboard")
	assert.Error(t, err)
}

// --- Drafts ---

func TestDraftSaveLoadDelete(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "card", "place", "oven", "3")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "draft", "save", "Oven", "line")
	require.NoError(t, err)
	assert.Contains(t, out, "Oven line")

	drafts, err := app.Drafts.List(context.Background())
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	id := drafts[0].ID

	_, err = executeCmd(t, app, "plan", "new", "--yes")
	require.NoError(t, err)
	require.Empty(t, activeCards(t, app))

	_, err = executeCmd(t, app, "draft", "load", id[:8])
	require.NoError(t, err)
	assert.Len(t, activeCards(t, app), 1)

	_, err = executeCmd(t, app, "draft", "delete", id, "--yes")
	require.NoError(t, err)
	drafts, err = app.Drafts.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestDraftLoad_Unknown(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "draft", "load", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "draft not found")
}

// --- Community ---

func TestCommunityPublishLikeFavorite(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "plan", "rename", "Feed me")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "community", "publish", "--video", "BV1xx411c7mD")
	require.NoError(t, err)
	assert.Contains(t, out, "Feed me")

	lineups, err := app.Community.List(context.Background())
	require.NoError(t, err)
	require.Len(t, lineups, 1)
	id := lineups[0].UUID
	assert.Equal(t, "tester", lineups[0].AuthorName)

	out, err = executeCmd(t, app, "community", "like", id[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "like added (1 total)")

	out, err = executeCmd(t, app, "community", "like", id)
	require.NoError(t, err)
	assert.Contains(t, out, "like removed (0 total)")

	out, err = executeCmd(t, app, "community", "favorite", id)
	require.NoError(t, err)
	assert.Contains(t, out, "favorite added (1 total)")

	out, err = executeCmd(t, app, "community", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Feed me")

	out, err = executeCmd(t, app, "community", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "tester")
}

func TestCommunityOpen(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "plan", "new", "--hero", "Vanessa", "--from", "3", "--to", "9")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "community", "publish")
	require.NoError(t, err)
	lineups, err := app.Community.List(context.Background())
	require.NoError(t, err)
	require.Len(t, lineups, 1)

	_, err = executeCmd(t, app, "plan", "new")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "community", "open", lineups[0].UUID)
	require.NoError(t, err)
	p := current(t, app)
	assert.Equal(t, domain.HeroVanessa, p.Hero())
	assert.Equal(t, 3, p.Timeline.DayStart)
}

func TestCommunityPublish_NeedsNickname(t *testing.T) {
	app := testApp(t)
	app.Nickname = ""

	_, err := executeCmd(t, app, "community", "publish")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "author")
}

// --- Catalog, scale, board ---

func TestCatalogSearchAndShow(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "catalog", "search", "oven")
	require.NoError(t, err)
	assert.Contains(t, out, "oven")

	out, err = executeCmd(t, app, "catalog", "search", "--kind", "skill")
	require.NoError(t, err)
	assert.Contains(t, out, "hot-stove")
	assert.NotContains(t, out, "frying-pan")

	out, err = executeCmd(t, app, "catalog", "show", "Bargain")
	require.NoError(t, err)
	assert.Contains(t, out, "bargain")

	_, err = executeCmd(t, app, "catalog", "search", "--kind", "weapon")
	assert.Error(t, err)
}

func TestScale(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "scale")
	require.NoError(t, err)
	assert.Equal(t, "1.0\n", out)

	out, err = executeCmd(t, app, "scale", "1.34")
	require.NoError(t, err)
	assert.Contains(t, out, "1.3")

	out, err = executeCmd(t, app, "scale", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "1.6")

	_, err = executeCmd(t, app, "scale", "big")
	assert.Error(t, err)
}

func TestBoard_RequiresTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "board")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestConfigSetAndShow(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "config", "set", "community.nickname", "pilot")
	require.NoError(t, err)
	assert.Contains(t, out, "community.nickname saved")
	assert.Equal(t, "pilot", app.Nickname)

	loaded, err := config.LoadFrom(app.ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, "pilot", loaded.Community.Nickname)

	out, err = executeCmd(t, app, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, app.ConfigPath)
	assert.Contains(t, out, "[community]")
	assert.Contains(t, out, "pilot")
}

func TestConfigSetRejectsBadValue(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "config", "set", "ui.color", "sometimes")
	assert.ErrorContains(t, err, "invalid ui color mode")

	_, err = executeCmd(t, app, "config", "set", "nope", "1")
	assert.ErrorContains(t, err, "unknown config key")
	assert.NoFileExists(t, app.ConfigPath)
}
