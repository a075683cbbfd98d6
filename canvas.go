package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type borderRunes struct {
	h, v, tl, tr, bl, br rune
}

var (
	squareBorder   = borderRunes{'─', '│', '┌', '┐', '└', '┘'}
	roundBorder    = borderRunes{'─', '│', '╭', '╮', '╰', '╯'}
	selectedBorder = borderRunes{'#', '#', '#', '#', '#', '#'}
	previewBorder  = borderRunes{'┄', '┆', '+', '+', '+', '+'}
	frameBorder    = borderRunes{'·', ':', '+', '+', '+', '+'}
)

var (
	layersStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			PaddingLeft(1)
	layersHeaderStyle   = lipgloss.NewStyle().Bold(true)
	layersSelectedStyle = lipgloss.NewStyle().Reverse(true)
	layersHiddenStyle   = lipgloss.NewStyle().Faint(true)
	statusStyle         = lipgloss.NewStyle().Reverse(true)
	errorStyle          = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// cellRect is an element's footprint on the terminal grid, inclusive.
type cellRect struct {
	x0, y0, x1, y1 int
}

func toCellRect(view *Viewport, r Rect) cellRect {
	x0, y0 := view.ToCell(point{X: r.X, Y: r.Y})
	x1, y1 := view.ToCell(point{X: r.X + r.Width, Y: r.Y + r.Height})
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return cellRect{x0, y0, x1, y1}
}

// Render rasterizes the visible elements in z-order into width x height
// lines. preview, when non-nil, is drawn as the rubber band of a draw
// gesture.
func Render(elements []Element, view *Viewport, width, height int, preview *Rect) []string {
	if width < 1 || height < 1 {
		return nil
	}
	canvas := make([][]rune, height)
	for y := range canvas {
		canvas[y] = []rune(strings.Repeat(" ", width))
	}

	if view.ShowGrid {
		drawGrid(canvas, view)
	}
	if f := view.Frame(); f.Width > 0 {
		drawOutline(canvas, toCellRect(view, Rect{Width: f.Width, Height: f.Height}), frameBorder)
		label := fmt.Sprintf(" %s %gx%g ", f.Name, f.Width, f.Height)
		x, y := view.ToCell(point{})
		drawString(canvas, x+2, y, label, len(label))
	}

	for _, e := range elements {
		if !e.Visible {
			continue
		}
		drawElement(canvas, view, e)
	}

	if preview != nil {
		drawOutline(canvas, toCellRect(view, *preview), previewBorder)
	}

	lines := make([]string, height)
	for y, row := range canvas {
		lines[y] = string(row)
	}
	return lines
}

func drawGrid(canvas [][]rune, view *Viewport) {
	cw, ch := view.CellSize()
	for y := range canvas {
		for x := range canvas[y] {
			p := view.ToLogical(x, y)
			if hasMultiple(p.X, cw) && hasMultiple(p.Y, ch) {
				canvas[y][x] = '·'
			}
		}
	}
}

// hasMultiple reports whether [start, start+span) contains a grid line.
func hasMultiple(start, span float64) bool {
	k := math.Ceil(start/gridSpacing - 1e-9)
	return k*gridSpacing < start+span
}

func drawElement(canvas [][]rune, view *Viewport, e Element) {
	cr := toCellRect(view, e.Bounds())
	clearRect(canvas, cr)

	border := squareBorder
	switch e.Kind {
	case KindCircle:
		border = roundBorder
	case KindLine:
		drawLine(canvas, cr, e.Selected)
		return
	}
	if e.Selected {
		border = selectedBorder
	}
	hasBorder := e.Selected
	switch e.Kind {
	case KindText, KindCheckbox, KindRadio, KindToggle:
	default:
		hasBorder = true
	}
	if hasBorder {
		drawOutline(canvas, cr, border)
	}

	text := labelPrefix(e.Kind) + e.Label
	row := (cr.y0 + cr.y1) / 2
	if e.Kind == KindSidebar && cr.y1-cr.y0 > 2 {
		row = cr.y0 + 1
	}
	left, right := cr.x0, cr.x1
	if hasBorder {
		left, right = cr.x0+1, cr.x1-1
	}
	avail := right - left + 1
	if avail <= 0 {
		return
	}
	runes := []rune(text)
	if len(runes) > avail {
		runes = runes[:avail]
	}
	x := left
	switch e.Style.Align {
	case "center":
		x = left + (avail-len(runes))/2
	case "right":
		x = left + avail - len(runes)
	}
	drawString(canvas, x, row, string(runes), avail)
}

func labelPrefix(k Kind) string {
	switch k {
	case KindCheckbox:
		return "[ ] "
	case KindRadio:
		return "( ) "
	case KindToggle:
		return "(o-) "
	case KindImage:
		return "[img] "
	case KindNavbar:
		return "≡ "
	case KindInput:
		return "▏"
	}
	return ""
}

func drawLine(canvas [][]rune, cr cellRect, selected bool) {
	ch := '─'
	if selected {
		ch = '#'
	}
	if cr.y1-cr.y0 > cr.x1-cr.x0 {
		if !selected {
			ch = '│'
		}
		x := (cr.x0 + cr.x1) / 2
		for y := cr.y0; y <= cr.y1; y++ {
			setRune(canvas, x, y, ch)
		}
		return
	}
	y := (cr.y0 + cr.y1) / 2
	for x := cr.x0; x <= cr.x1; x++ {
		setRune(canvas, x, y, ch)
	}
}

func clearRect(canvas [][]rune, cr cellRect) {
	for y := cr.y0; y <= cr.y1; y++ {
		for x := cr.x0; x <= cr.x1; x++ {
			setRune(canvas, x, y, ' ')
		}
	}
}

func drawOutline(canvas [][]rune, cr cellRect, b borderRunes) {
	for x := cr.x0 + 1; x < cr.x1; x++ {
		setRune(canvas, x, cr.y0, b.h)
		setRune(canvas, x, cr.y1, b.h)
	}
	for y := cr.y0 + 1; y < cr.y1; y++ {
		setRune(canvas, cr.x0, y, b.v)
		setRune(canvas, cr.x1, y, b.v)
	}
	setRune(canvas, cr.x0, cr.y0, b.tl)
	setRune(canvas, cr.x1, cr.y0, b.tr)
	setRune(canvas, cr.x0, cr.y1, b.bl)
	setRune(canvas, cr.x1, cr.y1, b.br)
}

func drawString(canvas [][]rune, x, y int, s string, limit int) {
	i := 0
	for _, r := range s {
		if i >= limit {
			return
		}
		setRune(canvas, x+i, y, r)
		i++
	}
}

func setRune(canvas [][]rune, x, y int, r rune) {
	if isValidPos(canvas, x, y) {
		canvas[y][x] = r
	}
}

func isValidPos(canvas [][]rune, x, y int) bool {
	return y >= 0 && y < len(canvas) && x >= 0 && x < len(canvas[y])
}

// renderLayers lists elements topmost first. Row i+1 of the panel holds
// layerAt(elements, i).
func renderLayers(elements []Element, height int) string {
	lines := []string{layersHeaderStyle.Render("Layers")}
	for i := len(elements) - 1; i >= 0 && len(lines) < height; i-- {
		e := elements[i]
		eye := "●"
		if !e.Visible {
			eye = "○"
		}
		label := e.Label
		if label == "" {
			label = e.Kind.String()
		}
		line := truncate(fmt.Sprintf("%s %-8s %s", eye, e.Kind, label), layersPanelWidth-3)
		switch {
		case e.Selected:
			line = layersSelectedStyle.Render(line)
		case !e.Visible:
			line = layersHiddenStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return layersStyle.
		Width(layersPanelWidth - 1).
		Height(height).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}

// layerAt maps a panel row to an element, topmost first. row 0 is the header.
func layerAt(elements []Element, row int) (Element, bool) {
	i := len(elements) - row
	if row < 1 || i < 0 || i >= len(elements) {
		return Element{}, false
	}
	return elements[i], true
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
