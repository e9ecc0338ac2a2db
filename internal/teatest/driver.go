// Package teatest drives bubbletea models in tests without a tea.Program.
//
// Messages go straight to Update and the returned commands are run inline,
// so a test sees the model exactly as a key press leaves it. Commands that
// block, such as text input cursor blinks, are abandoned after a short wait.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many chained commands one Send may run.
const MaxDrainDepth = 100

// cmdTimeout separates immediate commands from timer-driven ones.
const cmdTimeout = 10 * time.Millisecond

// Driver feeds messages to a tea.Model synchronously.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a tea.QuitMsg has been produced.
	Quitting bool
}

// Option configures a Driver.
type Option func(*Driver)

// New wraps model. Call DrainInit to run its Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize sends a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// DrainInit runs the model's Init command.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send passes msg to Update and drains the commands it returns. Nothing is
// sent after the model quit.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.drain(cmd, 0)
}

// PressKey sends a single rune key.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Press sends a special key such as tea.KeyEnter or tea.KeyLeft.
func (d *Driver) Press(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

// PressSpace sends the space bar.
func (d *Driver) PressSpace() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
}

// PressLeft and PressRight move a board cursor.
func (d *Driver) PressLeft() {
	d.T.Helper()
	d.Press(tea.KeyLeft)
}

func (d *Driver) PressRight() {
	d.T.Helper()
	d.Press(tea.KeyRight)
}

// PressRightN presses the right arrow n times.
func (d *Driver) PressRightN(n int) {
	d.T.Helper()
	for range n {
		d.PressRight()
	}
}

// PressEnter sends Enter.
func (d *Driver) PressEnter() {
	d.T.Helper()
	d.Press(tea.KeyEnter)
}

// PressEsc sends Escape.
func (d *Driver) PressEsc() {
	d.T.Helper()
	d.Press(tea.KeyEsc)
}

// PressTab sends Tab.
func (d *Driver) PressTab() {
	d.T.Helper()
	d.Press(tea.KeyTab)
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// View renders the model.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: stopped draining at depth %d", depth)
		return
	}

	msg := runWithTimeout(cmd)
	if msg == nil || isBlink(msg) {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
	default:
		var next tea.Cmd
		d.Model, next = d.Model.Update(msg)
		d.drain(next, depth+1)
	}
}

func runWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isBlink matches the unexported cursor blink messages of bubbles.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
