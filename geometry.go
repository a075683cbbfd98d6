package main

import "math"

// hitTest returns the topmost visible element whose box contains p.
func hitTest(p point, elements []Element) (Element, bool) {
	for i := len(elements) - 1; i >= 0; i-- {
		e := elements[i]
		if !e.Visible {
			continue
		}
		if e.Bounds().Contains(p) {
			return e, true
		}
	}
	return Element{}, false
}

// normalizeRect turns two arbitrary drag corners into a rect with
// non-negative size.
func normalizeRect(p0, p1 point) Rect {
	return Rect{
		X:      math.Min(p0.X, p1.X),
		Y:      math.Min(p0.Y, p1.Y),
		Width:  math.Abs(p1.X - p0.X),
		Height: math.Abs(p1.Y - p0.Y),
	}
}

// meetsMinimumSize filters out accidental clicks: both sides must exceed
// minElementSize.
func meetsMinimumSize(r Rect) bool {
	return r.Width > minElementSize && r.Height > minElementSize
}

// boundsOf returns the union of the visible elements' boxes.
func boundsOf(elements []Element) (Rect, bool) {
	var minX, minY, maxX, maxY float64
	found := false
	for _, e := range elements {
		if !e.Visible {
			continue
		}
		if !found {
			minX, minY = e.X, e.Y
			maxX, maxY = e.X+e.Width, e.Y+e.Height
			found = true
			continue
		}
		minX = math.Min(minX, e.X)
		minY = math.Min(minY, e.Y)
		maxX = math.Max(maxX, e.X+e.Width)
		maxY = math.Max(maxY, e.Y+e.Height)
	}
	if !found {
		return Rect{}, false
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}
