package planner

import (
	"github.com/alexanderramin/lineup/internal/domain"
)

// Drag is a drag in progress over the board. Hovering computes a preview
// layout without touching the plan; only Drop produces a new plan.
type Drag struct {
	plan    domain.Plan
	src     DragSource
	slot    int
	preview []domain.Placement
	hint    error
}

// StartDrag begins dragging src over the active build of p.
func StartDrag(p domain.Plan, src DragSource) *Drag {
	return &Drag{plan: p, src: src, slot: -1}
}

// Hover recomputes the preview for slot. The returned hint is also kept
// for Hint.
func (d *Drag) Hover(slot int) error {
	d.slot = slot
	d.preview, d.hint = PreviewDrop(d.plan, d.src, slot)
	return d.hint
}

// Leave discards the preview, as when the pointer leaves the board.
func (d *Drag) Leave() {
	d.slot = -1
	d.preview = nil
	d.hint = nil
}

// Slot returns the hovered slot, or -1 when off the board.
func (d *Drag) Slot() int {
	return d.slot
}

// Preview returns the candidate layout, or nil when there is none.
func (d *Drag) Preview() []domain.Placement {
	return d.preview
}

// Hint returns why the last hover has no layout.
func (d *Drag) Hint() error {
	return d.hint
}

// Cards returns what the board should show: the preview while one exists,
// otherwise the committed cards.
func (d *Drag) Cards() []domain.Placement {
	if d.preview != nil {
		return d.preview
	}
	b, _ := ActiveBuild(d.plan)
	return b.Cards
}

// Drop commits the drag at slot and returns the new plan and the id of the
// dropped placement.
func (d *Drag) Drop(slot int) (domain.Plan, string, error) {
	if err := d.Hover(slot); err != nil {
		return d.plan, "", err
	}
	out, id, err := commitLayout(d.plan, d.src, d.preview)
	d.Leave()
	return out, id, err
}
