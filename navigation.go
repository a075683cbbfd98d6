package main

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"
)

type DeviceFrame struct {
	Name   string
	Width  float64
	Height float64
}

var deviceFrames = []DeviceFrame{
	{Name: "none"},
	{Name: "desktop", Width: 1440, Height: 900},
	{Name: "laptop", Width: 1280, Height: 800},
	{Name: "tablet", Width: 768, Height: 1024},
	{Name: "mobile", Width: 375, Height: 812},
}

// Viewport maps terminal cells to logical canvas units. Nothing here
// touches the element store.
type Viewport struct {
	Zoom     int // percent
	PanX     int // cells
	PanY     int // cells
	ShowGrid bool
	frame    int
}

func NewViewport() *Viewport {
	return &Viewport{
		Zoom:     defaultZoom,
		ShowGrid: true,
	}
}

func (v *Viewport) scale() float64 {
	return float64(v.Zoom) / 100
}

// ToLogical maps the top-left corner of a cell to canvas coordinates.
func (v *Viewport) ToLogical(col, row int) point {
	s := v.scale()
	return point{
		X: float64(col+v.PanX) * cellWidth / s,
		Y: float64(row+v.PanY) * cellHeight / s,
	}
}

// ToCell maps a canvas point to the cell containing it.
func (v *Viewport) ToCell(p point) (int, int) {
	s := v.scale()
	col := int(math.Floor(p.X*s/cellWidth+1e-9)) - v.PanX
	row := int(math.Floor(p.Y*s/cellHeight+1e-9)) - v.PanY
	return col, row
}

// CellSize is the logical size of one cell at the current zoom.
func (v *Viewport) CellSize() (float64, float64) {
	s := v.scale()
	return cellWidth / s, cellHeight / s
}

func (v *Viewport) ZoomIn() bool {
	return v.SetZoom(v.Zoom + zoomStep)
}

func (v *Viewport) ZoomOut() bool {
	return v.SetZoom(v.Zoom - zoomStep)
}

// SetZoom clamps to the supported range and snaps to a zoom step. It
// reports whether the zoom changed.
func (v *Viewport) SetZoom(zoom int) bool {
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	zoom = zoom / zoomStep * zoomStep
	if zoom == v.Zoom {
		return false
	}
	v.Zoom = zoom
	return true
}

func (v *Viewport) Pan(dx, dy int) {
	v.PanX += dx
	v.PanY += dy
}

func (v *Viewport) ToggleGrid() {
	v.ShowGrid = !v.ShowGrid
}

func (v *Viewport) Frame() DeviceFrame {
	return deviceFrames[v.frame]
}

func (v *Viewport) NextFrame() DeviceFrame {
	v.frame = (v.frame + 1) % len(deviceFrames)
	return v.Frame()
}

// SetFrame selects a preset by name and reports whether it exists.
func (v *Viewport) SetFrame(name string) bool {
	for i, f := range deviceFrames {
		if f.Name == name {
			v.frame = i
			return true
		}
	}
	return false
}

func (m *model) handlePan(key string, speed int) tea.Model {
	view := m.session.Viewport()
	switch key {
	case "left", "shift+left":
		view.Pan(-speed, 0)
	case "right", "shift+right":
		view.Pan(speed, 0)
	case "up", "shift+up":
		view.Pan(0, -speed)
	case "down", "shift+down":
		view.Pan(0, speed)
	}
	return m
}

// handleNudge moves the selected element one cell per step, or pans when
// nothing is selected.
func (m *model) handleNudge(key string, speed int) tea.Model {
	if _, ok := m.session.Selected(); !ok {
		return m.handlePan(key, speed)
	}
	cw, ch := m.session.Viewport().CellSize()
	var dx, dy float64
	switch key {
	case "left", "shift+left":
		dx = -cw
	case "right", "shift+right":
		dx = cw
	case "up", "shift+up":
		dy = -ch
	case "down", "shift+down":
		dy = ch
	}
	m.session.Controller().Nudge(dx*float64(speed), dy*float64(speed))
	return m
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}
