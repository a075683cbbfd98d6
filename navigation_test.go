package main

import "testing"

func TestViewport_RoundTripAtEveryZoom(t *testing.T) {
	v := NewViewport()
	v.Pan(3, -2)
	for zoom := minZoom; zoom <= maxZoom; zoom += zoomStep {
		v.SetZoom(zoom)
		for _, c := range [][2]int{{0, 0}, {5, 7}, {40, 12}, {-3, 9}} {
			p := v.ToLogical(c[0], c[1])
			col, row := v.ToCell(p)
			if col != c[0] || row != c[1] {
				t.Fatalf("zoom %d: cell %v -> %v -> (%d,%d)", zoom, c, p, col, row)
			}
		}
	}
}

func TestViewport_ToLogicalScalesWithZoom(t *testing.T) {
	v := NewViewport()
	if p := v.ToLogical(10, 10); p != (point{80, 160}) {
		t.Fatalf("100%%: %v", p)
	}
	v.SetZoom(200)
	if p := v.ToLogical(10, 10); p != (point{40, 80}) {
		t.Fatalf("200%%: %v", p)
	}
	v.SetZoom(50)
	if p := v.ToLogical(10, 10); p != (point{160, 320}) {
		t.Fatalf("50%%: %v", p)
	}
}

func TestViewport_ZoomClampsAndSnaps(t *testing.T) {
	v := NewViewport()
	for i := 0; i < 10; i++ {
		v.ZoomIn()
	}
	if v.Zoom != maxZoom {
		t.Fatalf("zoom = %d, want %d", v.Zoom, maxZoom)
	}
	if v.ZoomIn() {
		t.Fatal("ZoomIn at max should report no change")
	}
	for i := 0; i < 10; i++ {
		v.ZoomOut()
	}
	if v.Zoom != minZoom {
		t.Fatalf("zoom = %d, want %d", v.Zoom, minZoom)
	}
	v.SetZoom(110)
	if v.Zoom != 100 {
		t.Fatalf("zoom = %d, want 100", v.Zoom)
	}
}

func TestViewport_Frames(t *testing.T) {
	v := NewViewport()
	if v.Frame().Name != "none" {
		t.Fatalf("default frame %q", v.Frame().Name)
	}
	seen := map[string]bool{}
	for range deviceFrames {
		seen[v.NextFrame().Name] = true
	}
	if len(seen) != len(deviceFrames) || v.Frame().Name != "none" {
		t.Fatalf("cycling frames visited %v", seen)
	}
	if !v.SetFrame("mobile") || v.Frame().Width != 375 {
		t.Fatal("SetFrame mobile failed")
	}
	if v.SetFrame("watch") {
		t.Fatal("unknown frame accepted")
	}
}
