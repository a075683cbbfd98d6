package main

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleElements() []Element {
	box := newElement("a", KindRectangle, Rect{X: 10, Y: 10, Width: 100, Height: 50})
	button := newElement("b", KindButton, Rect{X: 40, Y: 80, Width: 120, Height: 40})
	toggle := newElement("c", KindToggle, Rect{X: 10, Y: 140, Width: 120, Height: 30})
	circle := newElement("d", KindCircle, Rect{X: 200, Y: 10, Width: 60, Height: 60})
	line := newElement("e", KindLine, Rect{X: 10, Y: 190, Width: 250, Height: 12})
	return []Element{box, button, toggle, circle, line}
}

func TestExportPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := exportPNG(sampleElements(), path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	// bounds 10..260 x 10..202 plus padding on every side
	b := img.Bounds()
	if b.Dx() != 290 || b.Dy() != 232 {
		t.Fatalf("image is %dx%d, want 290x232", b.Dx(), b.Dy())
	}
}

func TestExportPNG_NothingVisible(t *testing.T) {
	elements := sampleElements()[:1]
	elements[0].Visible = false
	err := exportPNG(elements, filepath.Join(t.TempDir(), "x.png"))
	if !errors.Is(err, errNothingToExport) {
		t.Fatalf("err = %v", err)
	}
	if err := exportPNG(nil, filepath.Join(t.TempDir(), "x.png")); !errors.Is(err, errNothingToExport) {
		t.Fatalf("err = %v", err)
	}
}

func TestExportVisualTXT(t *testing.T) {
	elements := sampleElements()
	elements[0].Selected = true
	path := filepath.Join(t.TempDir(), "out.txt")
	view := NewViewport()
	if err := exportVisualTXT(elements, view, 40, 14, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if got := strings.Count(out, "\n"); got != 14 {
		t.Fatalf("%d lines, want 14", got)
	}
	if !strings.Contains(out, "Box") || !strings.Contains(out, "Button") {
		t.Fatalf("labels missing:\n%s", out)
	}
	if strings.Contains(out, "#") || strings.Contains(out, "·") {
		t.Fatalf("selection or grid leaked into export:\n%s", out)
	}
	if !view.ShowGrid {
		t.Fatal("export changed the live viewport")
	}
}

func TestModelExportUsesExportDirectory(t *testing.T) {
	m := newTestModel(t)
	m.config.ExportDirectory = t.TempDir()
	m.session.Store().Insert(sampleElements()[0])
	path, err := m.export(FileOpExportTXT, "shot")
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(m.config.ExportDirectory, "shot.txt") {
		t.Fatalf("path = %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}

func TestExportPNG_TooLarge(t *testing.T) {
	near := newElement("a", KindRectangle, Rect{X: 0, Y: 0, Width: 50, Height: 50})
	far := newElement("b", KindRectangle, Rect{X: 200000, Y: 200000, Width: 50, Height: 50})
	path := filepath.Join(t.TempDir(), "big.png")
	err := exportPNG([]Element{near, far}, path)
	if !errors.Is(err, errExportTooLarge) {
		t.Fatalf("err = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("no file should be written")
	}
}
