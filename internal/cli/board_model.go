package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/lineup/internal/board"
	"github.com/alexanderramin/lineup/internal/cli/formatter"
	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/planner"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// scaleStep is how much +/- change the board scale.
const scaleStep = 0.1

type boardKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Pick    key.Binding
	Drop    key.Binding
	Cancel  key.Binding
	Remove  key.Binding
	Add     key.Binding
	NextSeg key.Binding
	PrevSeg key.Binding
	Bigger  key.Binding
	Smaller key.Binding
	Quit    key.Binding
}

func defaultBoardKeys() boardKeyMap {
	return boardKeyMap{
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Pick:    key.NewBinding(key.WithKeys(" ", "space", "m"), key.WithHelp("space", "pick up")),
		Drop:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Remove:  key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		Add:     key.NewBinding(key.WithKeys("/", "a"), key.WithHelp("/", "add card")),
		NextSeg: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next segment")),
		PrevSeg: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev segment")),
		Bigger:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "scale")),
		Smaller: key.NewBinding(key.WithKeys("-")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Pick, k.Drop, k.Cancel, k.Add, k.Remove, k.NextSeg, k.Bigger, k.Quit}
}

func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.PrevSeg, k.Smaller}}
}

// boardModel edits the active build with a keyboard cursor. A lifted card
// follows the cursor as a drag preview and is only committed on drop.
type boardModel struct {
	ctx  context.Context
	app  *App
	keys boardKeyMap
	help help.Model

	plan   domain.Plan
	scale  float64
	cursor int

	drag   *planner.Drag
	lifted string

	search    textinput.Model
	searching bool

	status   string
	err      error
	quitting bool
}

func newBoardModel(ctx context.Context, app *App) (*boardModel, error) {
	p, err := app.Planner.Current(ctx)
	if err != nil {
		return nil, err
	}
	scale := 1.0
	if app.Settings != nil {
		if s, err := app.Settings.BoardScale(ctx); err == nil {
			scale = s
		}
	}

	ti := textinput.New()
	ti.Placeholder = "card name or id"
	ti.Prompt = "add › "
	ti.CharLimit = 64

	m := &boardModel{
		ctx:    ctx,
		app:    app,
		keys:   defaultBoardKeys(),
		help:   help.New(),
		plan:   p,
		scale:  scale,
		search: ti,
	}
	m.cursor = m.firstOpenSlot()
	return m, nil
}

func (m *boardModel) Init() tea.Cmd {
	return nil
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status, m.err = "", nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Pick):
		m.pickUp()

	case key.Matches(msg, m.keys.Drop):
		m.drop()

	case key.Matches(msg, m.keys.Cancel):
		m.cancelDrag()

	case key.Matches(msg, m.keys.Remove):
		if m.drag != nil {
			return m, nil
		}
		if c, ok := m.cardAtCursor(); ok {
			m.apply(planner.RemoveCard(m.plan, c.PlacementID))
		}

	case key.Matches(msg, m.keys.Add):
		m.cancelDrag()
		m.searching = true
		m.search.SetValue("")
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.NextSeg):
		m.selectSegment(m.plan.ActiveIndex() + 1)
	case key.Matches(msg, m.keys.PrevSeg):
		m.selectSegment(m.plan.ActiveIndex() - 1)

	case key.Matches(msg, m.keys.Bigger):
		m.setScale(m.scale + scaleStep)
	case key.Matches(msg, m.keys.Smaller):
		m.setScale(m.scale - scaleStep)
	}
	return m, nil
}

func (m *boardModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		return m, nil
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		query := strings.TrimSpace(m.search.Value())
		if query == "" {
			return m, nil
		}
		card, err := resolveCard(m.app, query, domain.KindItem)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.drag = planner.StartDrag(m.plan, planner.DragSource{Card: card.Ref()})
		m.lifted = ""
		m.hover()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *boardModel) moveCursor(delta int) {
	m.cursor = min(max(m.cursor+delta, 0), board.Units-1)
	m.hover()
}

func (m *boardModel) hover() {
	if m.drag == nil {
		return
	}
	if err := m.drag.Hover(m.cursor); err != nil {
		m.showHint(err)
	}
}

func (m *boardModel) pickUp() {
	if m.drag != nil {
		return
	}
	c, ok := m.cardAtCursor()
	if !ok {
		m.status = "no card under the cursor"
		return
	}
	m.drag = planner.StartDrag(m.plan, planner.DragSource{PlacementID: c.PlacementID})
	m.lifted = c.PlacementID
	m.hover()
}

func (m *boardModel) drop() {
	if m.drag == nil {
		return
	}
	p, _, err := m.drag.Drop(m.cursor)
	if err != nil {
		// The drag stays live so the user can move on and retry.
		m.showHint(err)
		return
	}
	m.drag, m.lifted = nil, ""
	m.commit(p)
}

func (m *boardModel) cancelDrag() {
	if m.drag == nil {
		return
	}
	m.drag.Leave()
	m.drag, m.lifted = nil, ""
}

func (m *boardModel) selectSegment(i int) {
	if m.drag != nil {
		return
	}
	n := len(m.plan.Timeline.Segments)
	if n == 0 {
		return
	}
	m.apply(planner.SelectSegment(m.plan, (i+n)%n))
}

func (m *boardModel) setScale(v float64) {
	if m.app.Settings == nil {
		m.scale = v
		return
	}
	stored, err := m.app.Settings.SetBoardScale(m.ctx, v)
	if err != nil {
		m.err = err
		return
	}
	m.scale = stored
}

// apply commits the result of a planner edit, or shows its hint.
func (m *boardModel) apply(p domain.Plan, err error) {
	if err != nil {
		m.showHint(err)
		return
	}
	m.commit(p)
}

func (m *boardModel) commit(p domain.Plan) {
	if err := m.app.Planner.Save(m.ctx, p); err != nil {
		m.err = err
		return
	}
	m.plan = p
}

func (m *boardModel) showHint(err error) {
	var h *domain.Hint
	if errors.As(err, &h) {
		m.status = h.Message
		return
	}
	m.err = err
}

func (m *boardModel) cardAtCursor() (domain.Placement, bool) {
	b, ok := planner.ActiveBuild(m.plan)
	if !ok {
		return domain.Placement{}, false
	}
	for _, c := range b.Cards {
		if m.cursor >= c.Start && m.cursor < c.End() {
			return c, true
		}
	}
	return domain.Placement{}, false
}

func (m *boardModel) firstOpenSlot() int {
	if slots := planner.ActiveMask(m.plan).Slots(); len(slots) > 0 {
		return slots[0]
	}
	return 0
}

func (m *boardModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(formatter.Header(m.plan.DisplayName()))
	b.WriteString("\n")
	b.WriteString(formatter.RenderTimeline(m.plan))
	b.WriteString("\n\n")

	segs := m.plan.Timeline.Segments
	if len(segs) > 0 {
		seg := segs[m.plan.ActiveIndex()]
		build, _ := planner.ActiveBuild(m.plan)
		view := formatter.BoardView{
			Build:   build,
			Mask:    planner.ActiveMask(m.plan),
			Markers: seg.SpecialSlots,
			Cursor:  m.cursor,
			Lifted:  m.lifted,
			Scale:   m.scale,
		}
		if m.drag != nil {
			view.Cards = m.drag.Cards()
		}
		fmt.Fprintf(&b, "%s %s\n", formatter.Dim(seg.Label()), build.Name)
		b.WriteString(formatter.RenderBoard(view))
		b.WriteString("\n\n")
	}

	switch {
	case m.searching:
		b.WriteString(m.search.View())
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("error: " + m.err.Error()))
	case m.status != "":
		b.WriteString(formatter.StyleYellow.Render("! " + m.status))
	case m.drag != nil:
		b.WriteString(formatter.Dim("dragging: enter to drop, esc to cancel"))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
