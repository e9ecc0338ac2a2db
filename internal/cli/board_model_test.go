package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/lineup/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoardDriver(t *testing.T, app *App) (*teatest.Driver, *boardModel) {
	t.Helper()
	m, err := newBoardModel(context.Background(), app)
	require.NoError(t, err)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()
	return d, m
}

func TestBoardModel_StartsOnFirstOpenSlot(t *testing.T) {
	app := testApp(t)
	_, m := newBoardDriver(t, app)

	assert.Equal(t, 2, m.cursor, "day 1 opens slots 2-7")
}

func TestBoardModel_CursorStaysOnBoard(t *testing.T) {
	app := testApp(t)
	d, m := newBoardDriver(t, app)

	for range 5 {
		d.PressLeft()
	}
	assert.Equal(t, 0, m.cursor)

	d.PressRightN(20)
	assert.Equal(t, 9, m.cursor)
}

func TestBoardModel_AddCardFromSearch(t *testing.T) {
	app := testApp(t)
	d, m := newBoardDriver(t, app)

	d.PressKey('/')
	require.True(t, m.searching)
	d.Type("oven")
	d.PressEnter()
	require.NotNil(t, m.drag, "search result is picked up")
	assert.Len(t, m.drag.Preview(), 1)
	assert.Empty(t, activeCards(t, app), "nothing is stored while dragging")

	d.PressEnter()
	assert.Nil(t, m.drag)
	cards := activeCards(t, app)
	require.Len(t, cards, 1)
	assert.Equal(t, "oven", cards[0].Card.ID)
	assert.Equal(t, 2, cards[0].Start)
}

func TestBoardModel_SearchEscapeCancels(t *testing.T) {
	app := testApp(t)
	d, m := newBoardDriver(t, app)

	d.PressKey('/')
	d.Type("oven")
	d.PressEsc()
	assert.False(t, m.searching)
	assert.Nil(t, m.drag)
}

func TestBoardModel_SearchUnknownCard(t *testing.T) {
	app := testApp(t)
	d, m := newBoardDriver(t, app)

	d.PressKey('/')
	d.Type("zzz")
	d.PressEnter()
	assert.Nil(t, m.drag)
	assert.Contains(t, d.View(), "no item matches")
}

func TestBoardModel_PickUpAndMove(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "card", "place", "oven", "2")
	require.NoError(t, err)
	d, m := newBoardDriver(t, app)

	d.PressRight()
	d.PressSpace()
	require.NotNil(t, m.drag)
	assert.NotEmpty(t, m.lifted)

	d.PressRightN(2)
	preview := m.drag.Preview()
	require.Len(t, preview, 1)
	assert.Equal(t, 5, preview[0].Start)

	d.PressEnter()
	cards := activeCards(t, app)
	require.Len(t, cards, 1)
	assert.Equal(t, 5, cards[0].Start)
}

func TestBoardModel_EscapeLeavesPlan(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "card", "place", "oven", "2")
	require.NoError(t, err)
	d, m := newBoardDriver(t, app)

	d.PressSpace()
	d.PressRightN(3)
	d.PressEsc()
	assert.Nil(t, m.drag)

	cards := activeCards(t, app)
	require.Len(t, cards, 1)
	assert.Equal(t, 2, cards[0].Start)
}

func TestBoardModel_DropWithoutRoomKeepsDrag(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "card", "place", "oven", "2")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "card", "place", "atlas-stone", "5")
	require.NoError(t, err)
	d, m := newBoardDriver(t, app)

	d.PressKey('/')
	d.Type("lighthouse")
	d.PressEnter()
	require.NotNil(t, m.drag)
	assert.Nil(t, m.drag.Preview())

	d.PressEnter()
	assert.NotNil(t, m.drag, "a failed drop keeps the drag")
	assert.Contains(t, d.View(), "not enough room")
	assert.Len(t, activeCards(t, app), 2)
}

func TestBoardModel_RemoveUnderCursor(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "card", "place", "frying-pan", "2")
	require.NoError(t, err)
	d, _ := newBoardDriver(t, app)

	d.PressKey('x')
	assert.Empty(t, activeCards(t, app))
}

func TestBoardModel_TabCyclesSegments(t *testing.T) {
	app := testApp(t)
	d, _ := newBoardDriver(t, app)

	d.PressTab()
	assert.Equal(t, 1, current(t, app).ActiveSegment)

	for range 3 {
		d.PressTab()
	}
	assert.Equal(t, 0, current(t, app).ActiveSegment, "wraps after the last segment")
}

func TestBoardModel_Scale(t *testing.T) {
	app := testApp(t)
	d, m := newBoardDriver(t, app)

	d.PressKey('+')
	assert.InDelta(t, 1.1, m.scale, 1e-9)

	stored, err := app.Settings.BoardScale(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 1.1, stored, 1e-9)
}

func TestBoardModel_Quit(t *testing.T) {
	app := testApp(t)
	d, _ := newBoardDriver(t, app)

	d.PressKey('q')
	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}
