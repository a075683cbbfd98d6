package main

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	exportPadding = 20.0
	// maxExportSide bounds each PNG dimension; a full RGBA image at this
	// size is already 1 GiB.
	maxExportSide = 16384
)

var (
	errNothingToExport = errors.New("nothing to export")
	errExportTooLarge  = errors.New("export too large")
)

// exportPNG draws the visible elements at one pixel per logical unit,
// cropped to their bounds plus padding.
func exportPNG(elements []Element, filename string) error {
	bounds, ok := boundsOf(elements)
	if !ok {
		return errNothingToExport
	}
	minX := bounds.X - exportPadding
	minY := bounds.Y - exportPadding
	imageWidth := int(bounds.Width + 2*exportPadding)
	imageHeight := int(bounds.Height + 2*exportPadding)
	if imageWidth > maxExportSide || imageHeight > maxExportSide {
		return fmt.Errorf("%dx%d px, limit is %d per side: %w", imageWidth, imageHeight, maxExportSide, errExportTooLarge)
	}

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	faces := map[float64]font.Face{}
	faceFor := func(size float64) font.Face {
		if size <= 0 {
			size = 14
		}
		if f, ok := faces[size]; ok {
			return f
		}
		f := truetype.NewFace(ttfFont, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		faces[size] = f
		return f
	}

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()

	for _, e := range elements {
		if !e.Visible {
			continue
		}
		e.X -= minX
		e.Y -= minY
		dc.SetFontFace(faceFor(e.Style.FontSize))
		drawElementPNG(dc, e)
	}

	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}

func drawElementPNG(dc *gg.Context, e Element) {
	opacity := e.Style.Opacity
	if opacity <= 0 || opacity > 1 {
		opacity = 1
	}
	shape := func() {
		switch e.Kind {
		case KindCircle:
			dc.DrawEllipse(e.X+e.Width/2, e.Y+e.Height/2, e.Width/2, e.Height/2)
		default:
			dc.DrawRoundedRectangle(e.X, e.Y, e.Width, e.Height, 4)
		}
	}

	switch e.Kind {
	case KindLine:
		setColor(dc, e.Style.Border, opacity)
		dc.SetLineWidth(2)
		if e.Height > e.Width {
			dc.DrawLine(e.X+e.Width/2, e.Y, e.X+e.Width/2, e.Y+e.Height)
		} else {
			dc.DrawLine(e.X, e.Y+e.Height/2, e.X+e.Width, e.Y+e.Height/2)
		}
		dc.Stroke()
		return
	case KindCheckbox, KindRadio, KindToggle:
		drawControlPNG(dc, e, opacity)
		return
	}

	if e.Style.Fill != "" {
		shape()
		setColor(dc, e.Style.Fill, opacity)
		dc.Fill()
	}
	if e.Style.Border != "" {
		shape()
		setColor(dc, e.Style.Border, opacity)
		dc.SetLineWidth(2)
		dc.SetDash(6, 4)
		dc.Stroke()
		dc.SetDash()
	}
	if e.Kind == KindImage {
		setColor(dc, e.Style.Border, opacity)
		dc.SetLineWidth(1)
		dc.DrawLine(e.X, e.Y, e.X+e.Width, e.Y+e.Height)
		dc.DrawLine(e.X+e.Width, e.Y, e.X, e.Y+e.Height)
		dc.Stroke()
	}
	drawLabelPNG(dc, e, e.X, e.Width, opacity)
}

func drawControlPNG(dc *gg.Context, e Element, opacity float64) {
	size := e.Height * 0.6
	if size > 16 {
		size = 16
	}
	cx := e.X + 4
	cy := e.Y + e.Height/2
	setColor(dc, "#374151", opacity)
	dc.SetLineWidth(1.5)
	switch e.Kind {
	case KindCheckbox:
		dc.DrawRectangle(cx, cy-size/2, size, size)
	case KindRadio:
		dc.DrawCircle(cx+size/2, cy, size/2)
	case KindToggle:
		dc.DrawRoundedRectangle(cx, cy-size/2, size*1.8, size, size/2)
		dc.Stroke()
		dc.DrawCircle(cx+size/2, cy, size/2-2)
		dc.Fill()
		size *= 1.8
	}
	dc.Stroke()
	offset := size + 12
	drawLabelPNG(dc, e, e.X+offset, e.Width-offset, opacity)
}

func drawLabelPNG(dc *gg.Context, e Element, x, width, opacity float64) {
	if e.Label == "" {
		return
	}
	setColor(dc, "#374151", opacity)
	y := e.Y + e.Height/2
	switch e.Style.Align {
	case "left":
		dc.DrawStringAnchored(e.Label, x+8, y, 0, 0.35)
	case "right":
		dc.DrawStringAnchored(e.Label, x+width-8, y, 1, 0.35)
	default:
		dc.DrawStringAnchored(e.Label, x+width/2, y, 0.5, 0.35)
	}
}

func setColor(dc *gg.Context, hex string, opacity float64) {
	c, err := colorful.Hex(hex)
	if err != nil {
		c = colorful.Color{R: 0.216, G: 0.255, B: 0.318}
	}
	dc.SetRGBA(c.R, c.G, c.B, opacity)
}

// exportVisualTXT writes the canvas as it appears on screen, without the
// selection highlight or the grid.
func exportVisualTXT(elements []Element, view *Viewport, width, height int, filename string) error {
	if _, ok := boundsOf(elements); !ok {
		return errNothingToExport
	}
	plain := make([]Element, len(elements))
	for i, e := range elements {
		e.Selected = false
		plain[i] = e
	}
	v := *view
	v.ShowGrid = false
	if width < 1 {
		width = 80
	}
	if height < 1 {
		height = 24
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, line := range Render(plain, &v, width, height, nil) {
		fmt.Fprintln(w, line)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

func (m *model) export(op FileOperation, name string) (string, error) {
	ext := ".png"
	if op == FileOpExportTXT {
		ext = ".txt"
	}
	path, err := m.config.GetExportPath(name + ext)
	if err != nil {
		return "", err
	}
	elements := m.session.Elements()
	switch op {
	case FileOpExportTXT:
		width, height := m.canvasSize()
		err = exportVisualTXT(elements, m.session.Viewport(), width, height, path)
	default:
		err = exportPNG(elements, path)
	}
	if err != nil {
		return "", err
	}
	return path, nil
}
