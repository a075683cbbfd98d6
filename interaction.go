package main

import "log/slog"

type gestureState int

const (
	gestureIdle gestureState = iota
	gestureDrawing
	gestureDragging
)

func (g gestureState) String() string {
	switch g {
	case gestureDrawing:
		return "drawing"
	case gestureDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// Controller turns pointer events and the active tool into store mutations.
// Per-gesture bookkeeping lives here, never in the store.
type Controller struct {
	store  *ElementStore
	commit func()
	change func()
	newID  idGenerator
	logger *slog.Logger

	tool    Tool
	state   gestureState
	anchor  point
	current point

	dragID     string
	dragOffset point
	moved      bool

	resizeID       string
	originalWidth  float64
	originalHeight float64
}

// NewController wires a controller to store. commit is called whenever a
// mutation should become one undo step; change after every mutation.
func NewController(store *ElementStore, newID idGenerator, commit, change func(), logger *slog.Logger) *Controller {
	if commit == nil {
		commit = func() {}
	}
	if change == nil {
		change = func() {}
	}
	return &Controller{
		store:  store,
		commit: commit,
		change: change,
		newID:  newID,
		logger: logger,
		tool:   ToolSelect,
	}
}

func (c *Controller) Tool() Tool {
	return c.tool
}

func (c *Controller) SetTool(t Tool) {
	c.tool = t
}

func (c *Controller) State() gestureState {
	return c.state
}

func (c *Controller) PointerDown(p point) {
	if c.state != gestureIdle {
		return
	}
	if _, ok := c.tool.Kind(); ok {
		c.state = gestureDrawing
		c.anchor = p
		c.current = p
		return
	}
	if c.tool != ToolSelect {
		return
	}
	hit, ok := hitTest(p, c.store.All())
	if !ok {
		c.store.SetSelection("")
		c.change()
		return
	}
	c.store.SetSelection(hit.ID)
	c.state = gestureDragging
	c.dragID = hit.ID
	c.dragOffset = point{X: p.X - hit.X, Y: p.Y - hit.Y}
	c.moved = false
	c.change()
}

func (c *Controller) PointerMove(p point) {
	switch c.state {
	case gestureDrawing:
		c.current = p
	case gestureDragging:
		x, y := p.X-c.dragOffset.X, p.Y-c.dragOffset.Y
		if e, ok := c.store.Get(c.dragID); ok && (e.X != x || e.Y != y) {
			c.store.Update(c.dragID, moveTo(x, y))
			c.moved = true
			c.change()
		}
	}
}

func (c *Controller) PointerUp(p point) {
	switch c.state {
	case gestureDrawing:
		c.current = p
		kind, _ := c.tool.Kind()
		r := normalizeRect(c.anchor, p)
		if meetsMinimumSize(r) {
			e := newElement(c.newID(), kind, r)
			c.store.Insert(e)
			c.logger.Debug("element created", "id", e.ID, "kind", kind, "x", r.X, "y", r.Y, "w", r.Width, "h", r.Height)
			c.change()
			c.commit()
		}
	case gestureDragging:
		c.PointerMove(p)
		if c.moved {
			c.commit()
		}
	}
	c.reset()
}

// Finish completes a gesture whose release never arrived, at the last
// pointer position seen. A drawn shape is kept if it is big enough and a
// moved element is committed where it is.
func (c *Controller) Finish() {
	switch c.state {
	case gestureDrawing:
		c.PointerUp(c.current)
	case gestureDragging:
		if c.moved {
			c.commit()
		}
		c.reset()
	}
}

// Abort drops gesture bookkeeping without committing anything.
func (c *Controller) Abort() {
	c.reset()
}

func (c *Controller) reset() {
	c.state = gestureIdle
	c.anchor = point{}
	c.current = point{}
	c.dragID = ""
	c.dragOffset = point{}
	c.moved = false
}

// Preview is the rubber band of a draw gesture in progress.
func (c *Controller) Preview() (Rect, bool) {
	if c.state != gestureDrawing {
		return Rect{}, false
	}
	return normalizeRect(c.anchor, c.current), true
}

// Select is the entry point for selection outside the canvas, such as the
// layers panel.
func (c *Controller) Select(id string) {
	if _, ok := c.store.Get(id); !ok {
		return
	}
	c.store.SetSelection(id)
	c.change()
}

func (c *Controller) ClearSelection() {
	c.store.SetSelection("")
	c.change()
}

// DuplicateSelected inserts a copy of the selection offset by +20/+20.
// Nothing ends up selected afterwards.
func (c *Controller) DuplicateSelected() bool {
	sel, ok := c.store.Selected()
	if !ok {
		return false
	}
	dup := sel
	dup.ID = c.newID()
	dup.X += duplicateOffset
	dup.Y += duplicateOffset
	dup.Selected = false
	c.store.Insert(dup)
	c.store.SetSelection("")
	c.logger.Debug("element duplicated", "from", sel.ID, "id", dup.ID)
	c.change()
	c.commit()
	return true
}

func (c *Controller) DeleteSelected() bool {
	sel, ok := c.store.Selected()
	if !ok {
		return false
	}
	if sel.ID == c.dragID {
		c.reset()
	}
	c.store.Remove(sel.ID)
	c.store.SetSelection("")
	c.logger.Debug("element deleted", "id", sel.ID)
	c.change()
	c.commit()
	return true
}

// ToggleVisibility flips visible. It is not an undo step.
func (c *Controller) ToggleVisibility(id string) {
	e, ok := c.store.Get(id)
	if !ok {
		return
	}
	c.store.Update(id, visibility(!e.Visible))
	c.change()
}

func (c *Controller) SetLabel(id, label string) bool {
	e, ok := c.store.Get(id)
	if !ok || e.Label == label {
		return false
	}
	c.store.Update(id, relabel(label))
	c.change()
	c.commit()
	return true
}

// Nudge moves the selected element by dx, dy as one undo step.
func (c *Controller) Nudge(dx, dy float64) bool {
	sel, ok := c.store.Selected()
	if !ok || (dx == 0 && dy == 0) {
		return false
	}
	c.store.Update(sel.ID, moveTo(sel.X+dx, sel.Y+dy))
	c.change()
	c.commit()
	return true
}

func (c *Controller) Raise(id string) bool {
	return c.reorder(id, 1)
}

func (c *Controller) Lower(id string) bool {
	return c.reorder(id, -1)
}

func (c *Controller) reorder(id string, delta int) bool {
	if !c.store.Reorder(id, delta) {
		return false
	}
	c.change()
	c.commit()
	return true
}

// BeginResize starts a keyboard resize of the selected element.
func (c *Controller) BeginResize() bool {
	sel, ok := c.store.Selected()
	if !ok {
		return false
	}
	c.resizeID = sel.ID
	c.originalWidth = sel.Width
	c.originalHeight = sel.Height
	return true
}

// ResizeBy changes the size live. The result never drops to the minimum
// size or below on either axis.
func (c *Controller) ResizeBy(dw, dh float64) {
	e, ok := c.store.Get(c.resizeID)
	if !ok {
		return
	}
	w, h := e.Width+dw, e.Height+dh
	if w <= minElementSize {
		w = e.Width
	}
	if h <= minElementSize {
		h = e.Height
	}
	if w == e.Width && h == e.Height {
		return
	}
	c.store.Update(c.resizeID, resizeTo(w, h))
	c.change()
}

// CommitResize ends the resize; it is one undo step if the size changed.
func (c *Controller) CommitResize() bool {
	e, ok := c.store.Get(c.resizeID)
	c.resizeID = ""
	if !ok || (e.Width == c.originalWidth && e.Height == c.originalHeight) {
		return false
	}
	c.commit()
	return true
}

func (c *Controller) CancelResize() {
	if _, ok := c.store.Get(c.resizeID); ok {
		c.store.Update(c.resizeID, resizeTo(c.originalWidth, c.originalHeight))
		c.change()
	}
	c.resizeID = ""
}
