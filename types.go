package main

import (
	"strings"
	"time"
)

type model struct {
	width          int
	height         int
	session        *Session
	frame          *frameCache
	mode           Mode
	help           bool
	helpScroll     int
	showLayers     bool
	editText       string
	editCursorPos  int
	editID         string
	filename       string
	fileOp         FileOperation
	confirmAction  ConfirmAction
	panning        bool
	panAnchorX     int
	panAnchorY     int
	errorMessage   string
	successMessage string
	config         *Config
}

type point struct {
	X, Y float64
}

// Rect is an axis-aligned box in logical canvas units.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Style is presentation only. Colors are hex strings.
type Style struct {
	Fill     string
	Border   string
	FontSize float64
	Align    string
	Opacity  float64
}

// Element is one placed wireframe primitive. Position and size are in
// logical units and do not depend on zoom.
type Element struct {
	ID       string
	Kind     Kind
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Label    string
	Visible  bool
	Selected bool
	Style    Style
}

func (e Element) Bounds() Rect {
	return Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// Patch is a partial update. Nil fields are left as they are.
type Patch struct {
	X       *float64
	Y       *float64
	Width   *float64
	Height  *float64
	Label   *string
	Visible *bool
	Style   *Style
}

func (p Patch) apply(e *Element) {
	if p.X != nil {
		e.X = *p.X
	}
	if p.Y != nil {
		e.Y = *p.Y
	}
	if p.Width != nil {
		e.Width = *p.Width
	}
	if p.Height != nil {
		e.Height = *p.Height
	}
	if p.Label != nil {
		e.Label = *p.Label
	}
	if p.Visible != nil {
		e.Visible = *p.Visible
	}
	if p.Style != nil {
		e.Style = *p.Style
	}
}

func moveTo(x, y float64) Patch {
	return Patch{X: &x, Y: &y}
}

func resizeTo(width, height float64) Patch {
	return Patch{Width: &width, Height: &height}
}

func relabel(label string) Patch {
	return Patch{Label: &label}
}

func visibility(visible bool) Patch {
	return Patch{Visible: &visible}
}

// HistoryEntry is an immutable copy of the element sequence.
type HistoryEntry struct {
	Elements  []Element
	Timestamp time.Time
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

func parseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return 0, false
}

func allKinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}
	return kinds
}

func toolForKind(k Kind) Tool {
	return toolFirstKind + Tool(k)
}

// Kind returns the element kind a creation tool draws.
func (t Tool) Kind() (Kind, bool) {
	if t < toolFirstKind || int(t-toolFirstKind) >= len(kindNames) {
		return 0, false
	}
	return Kind(t - toolFirstKind), true
}

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolPan:
		return "pan"
	}
	if k, ok := t.Kind(); ok {
		return k.String()
	}
	return "unknown"
}

func parseTool(s string) (Tool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "select", "":
		return ToolSelect, true
	case "pan":
		return ToolPan, true
	}
	if k, ok := parseKind(s); ok {
		return toolForKind(k), true
	}
	return ToolSelect, false
}
