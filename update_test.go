package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	m := initialModel(defaultConfig(), discardLogger(), sequential())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(model)
}

func press(m model, msgs ...tea.Msg) (model, tea.Cmd) {
	var cmd tea.Cmd
	var next tea.Model = m
	for _, msg := range msgs {
		next, cmd = next.Update(msg)
	}
	return next.(model), cmd
}

func keys(s string) []tea.Msg {
	var msgs []tea.Msg
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func mouseDrag(x0, y0, x1, y1 int) []tea.Msg {
	return []tea.Msg{
		mouse(tea.MouseActionPress, x0, y0),
		mouse(tea.MouseActionMotion, x1, y1),
		mouse(tea.MouseActionRelease, x1, y1),
	}
}

func TestModel_DrawWithMouseThenUndo(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, keys("n")...)
	if m.session.Controller().Tool() != toolForKind(KindButton) {
		t.Fatalf("tool = %s", m.session.Controller().Tool())
	}
	m, _ = press(m, mouseDrag(1, 1, 11, 4)...)
	elements := m.session.Elements()
	if len(elements) != 1 {
		t.Fatalf("got %d elements", len(elements))
	}
	want := Rect{X: 8, Y: 16, Width: 80, Height: 48}
	if elements[0].Bounds() != want || elements[0].Kind != KindButton {
		t.Fatalf("element = %+v", elements[0])
	}
	if !strings.Contains(m.View(), "Button") {
		t.Fatal("view does not show the new element")
	}

	m, _ = press(m, keys("u")...)
	if m.session.Store().Len() != 0 {
		t.Fatal("undo should remove the drawn element")
	}
	m, _ = press(m, keys("U")...)
	if m.session.Store().Len() != 1 {
		t.Fatal("redo should bring it back")
	}
	m, _ = press(m, keys("u")...)
	m, _ = press(m, keys("u")...)
	if m.successMessage != "Nothing to undo" {
		t.Fatalf("message = %q", m.successMessage)
	}
}

func TestModel_SelectMoveDuplicateDelete(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, keys("b")...)
	m, _ = press(m, mouseDrag(1, 1, 11, 4)...)
	m, _ = press(m, keys("s")...)

	m, _ = press(m, mouseDrag(3, 2, 5, 3)...)
	sel, ok := m.session.Selected()
	if !ok {
		t.Fatal("click should select the element")
	}
	if sel.X != 24 || sel.Y != 32 {
		t.Fatalf("dragged to (%g,%g), want (24,32)", sel.X, sel.Y)
	}

	m, _ = press(m, keys("D")...)
	if m.session.Store().Len() != 2 {
		t.Fatal("duplicate failed")
	}
	if _, ok := m.session.Selected(); ok {
		t.Fatal("duplicate should leave nothing selected")
	}

	m, _ = press(m, mouseDrag(3, 2, 3, 2)...)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDelete})
	if m.session.Store().Len() != 1 {
		t.Fatal("delete failed")
	}
	if m.session.Commits() != 4 {
		t.Fatalf("commits = %d, want draw+move+duplicate+delete", m.session.Commits())
	}
}

func TestModel_EditLabel(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, keys("b")...)
	m, _ = press(m, mouseDrag(1, 1, 11, 4)...)
	m, _ = press(m, keys("s")...)
	m, _ = press(m, mouseDrag(2, 2, 2, 2)...)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != ModeEditing {
		t.Fatalf("mode = %v", m.mode)
	}
	msgs := []tea.Msg{
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyBackspace},
	}
	msgs = append(msgs, keys("Log")...)
	msgs = append(msgs, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	msgs = append(msgs, keys("in")...)
	msgs = append(msgs, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = press(m, msgs...)
	if m.mode != ModeNormal {
		t.Fatalf("mode = %v", m.mode)
	}
	sel, _ := m.session.Selected()
	if sel.Label != "Log in" {
		t.Fatalf("label = %q", sel.Label)
	}
	m, _ = press(m, keys("u")...)
	sel, _ = m.session.Store().Get(sel.ID)
	if sel.Label != "Box" {
		t.Fatalf("undo label = %q", sel.Label)
	}
}

func TestModel_EscapeDuringEditKeepsLabel(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, keys("b")...)
	m, _ = press(m, mouseDrag(1, 1, 11, 4)...)
	m, _ = press(m, keys("s")...)
	m, _ = press(m, mouseDrag(2, 2, 2, 2)...)
	m, _ = press(m, keys("exyz")...)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	sel, _ := m.session.Selected()
	if sel.Label != "Box" || m.mode != ModeNormal {
		t.Fatalf("label = %q mode = %v", sel.Label, m.mode)
	}
}

func TestModel_ResizeMode(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, keys("b")...)
	m, _ = press(m, mouseDrag(1, 1, 11, 4)...)
	m, _ = press(m, keys("s")...)
	m, _ = press(m, mouseDrag(2, 2, 2, 2)...)
	m, _ = press(m, keys("R")...)
	if m.mode != ModeResize {
		t.Fatalf("mode = %v", m.mode)
	}
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	sel, _ := m.session.Selected()
	if sel.Width != 88 || sel.Height != 64 {
		t.Fatalf("size = %gx%g", sel.Width, sel.Height)
	}
	if m.mode != ModeNormal {
		t.Fatalf("mode = %v", m.mode)
	}
}

func TestModel_QuitNeedsConfirmation(t *testing.T) {
	m := newTestModel(t)
	m, cmd := press(m, keys("q")...)
	if cmd != nil || m.mode != ModeConfirm {
		t.Fatalf("mode = %v", m.mode)
	}
	m, cmd = press(m, keys("n")...)
	if cmd != nil || m.mode != ModeNormal {
		t.Fatal("declining should return to normal mode")
	}
	_, cmd = press(m, keys("qy")...)
	if cmd == nil {
		t.Fatal("confirming should quit")
	}
}

func TestModel_ClearCanvasIsUndoable(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, keys("b")...)
	m, _ = press(m, mouseDrag(1, 1, 11, 4)...)
	m, _ = press(m, mouseDrag(15, 1, 25, 4)...)
	m, _ = press(m, keys("Xy")...)
	if m.session.Store().Len() != 0 {
		t.Fatal("canvas not cleared")
	}
	m, _ = press(m, keys("u")...)
	if m.session.Store().Len() != 2 {
		t.Fatal("clear should be a single undo step")
	}
}

func TestModel_LayersPanelClick(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, keys("b")...)
	m, _ = press(m, mouseDrag(1, 1, 11, 4)...)
	canvasWidth, _ := m.canvasSize()

	m, _ = press(m, mouse(tea.MouseActionPress, canvasWidth+6, 1))
	if sel, ok := m.session.Selected(); !ok || sel.Kind != KindRectangle {
		t.Fatal("clicking a layer row should select it")
	}
	commits := m.session.Commits()
	m, _ = press(m, mouse(tea.MouseActionPress, canvasWidth+2, 1))
	if m.session.Elements()[0].Visible {
		t.Fatal("clicking the eye should hide the element")
	}
	if m.session.Commits() != commits {
		t.Fatal("visibility toggle must not commit")
	}
}

func TestModel_ViewKeys(t *testing.T) {
	m := newTestModel(t)
	view := m.session.Viewport()
	m, _ = press(m, keys("++")...)
	if view.Zoom != 150 {
		t.Fatalf("zoom = %d", view.Zoom)
	}
	m, _ = press(m, keys("0g")...)
	if view.Zoom != defaultZoom || view.ShowGrid {
		t.Fatalf("viewport = %+v", view)
	}
	m, _ = press(m, keys("f")...)
	if view.Frame().Name != "desktop" || m.successMessage != "Frame: desktop" {
		t.Fatalf("frame = %s", view.Frame().Name)
	}
	m, _ = press(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if view.Zoom != 75 {
		t.Fatalf("wheel zoom = %d", view.Zoom)
	}
	m, _ = press(m, keys("L")...)
	if m.showLayers {
		t.Fatal("layers panel still shown")
	}
	if w, _ := m.canvasSize(); w != 100 {
		t.Fatalf("canvas width = %d", w)
	}
}

func TestModel_HelpAndExportPrompt(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, keys("?")...)
	if !strings.Contains(m.View(), "wirem help") {
		t.Fatal("help not shown")
	}
	m, _ = press(m, keys("?")...)
	if m.help {
		t.Fatal("help still open")
	}

	m, _ = press(m, keys("S")...)
	if m.mode != ModeNormal || m.errorMessage != errNothingToExport.Error() {
		t.Fatalf("exporting an empty canvas: mode=%v err=%q", m.mode, m.errorMessage)
	}
	m, _ = press(m, keys("b")...)
	m, _ = press(m, mouseDrag(1, 1, 11, 4)...)
	m, _ = press(m, keys("T")...)
	if m.mode != ModeFileInput || m.filename != "wireframe" {
		t.Fatalf("mode=%v filename=%q", m.mode, m.filename)
	}
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != ModeNormal {
		t.Fatal("esc should cancel the prompt")
	}
}

func TestModel_PopupSettlesGestureInProgress(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, keys("b")...)
	m, _ = press(m, mouseDrag(1, 1, 11, 4)...)
	m, _ = press(m, mouseDrag(30, 1, 40, 4)...)
	m, _ = press(m, keys("s")...)
	a, b := m.session.Elements()[0], m.session.Elements()[1]

	// press on A, open help, release while help swallows the mouse
	m, _ = press(m, mouse(tea.MouseActionPress, 3, 2))
	m, _ = press(m, keys("?")...)
	m, _ = press(m, mouse(tea.MouseActionRelease, 3, 2))
	m, _ = press(m, keys("?")...)
	if st := m.session.Controller().State(); st != gestureIdle {
		t.Fatalf("state after closing help = %s", st)
	}

	m, _ = press(m, mouseDrag(32, 2, 35, 3)...)
	gotA, _ := m.session.Store().Get(a.ID)
	gotB, _ := m.session.Store().Get(b.ID)
	if gotA.X != a.X || gotA.Y != a.Y {
		t.Fatalf("A moved to (%g,%g)", gotA.X, gotA.Y)
	}
	if gotB.X != b.X+24 || gotB.Y != b.Y+16 {
		t.Fatalf("B at (%g,%g), want (%g,%g)", gotB.X, gotB.Y, b.X+24, b.Y+16)
	}
}

func TestModel_PopupKeepsDrawInProgress(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"quit prompt", "q"},
		{"export prompt", "T"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m, _ = press(m, keys("b")...)
			m, _ = press(m, mouseDrag(1, 1, 11, 4)...)
			m, _ = press(m,
				mouse(tea.MouseActionPress, 20, 1),
				mouse(tea.MouseActionMotion, 30, 5),
			)
			m, _ = press(m, keys(tt.key)...)
			m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
			if st := m.session.Controller().State(); st != gestureIdle {
				t.Fatalf("state = %s", st)
			}
			if n := m.session.Store().Len(); n != 2 {
				t.Fatalf("got %d elements, want the interrupted draw kept", n)
			}
		})
	}
}

func TestModel_StatusRowClickUnderLayersPanel(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, keys("b")...)
	for i := 0; i < 3; i++ {
		m, _ = press(m, mouseDrag(1, 1, 11, 4)...)
	}
	m.height = 3
	canvasWidth, canvasHeight := m.canvasSize()
	m, _ = press(m, mouse(tea.MouseActionPress, canvasWidth+6, canvasHeight))
	if _, ok := m.session.Selected(); ok {
		t.Fatal("a click on the status row selected a layer")
	}
}

func TestModel_LayersClickEndsResize(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, keys("b")...)
	m, _ = press(m, mouseDrag(1, 1, 11, 4)...)
	m, _ = press(m, mouseDrag(30, 1, 40, 4)...)
	m, _ = press(m, keys("s")...)
	m, _ = press(m, mouseDrag(2, 2, 2, 2)...)
	first, _ := m.session.Selected()
	commits := m.session.Commits()

	m, _ = press(m, keys("R")...)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	canvasWidth, _ := m.canvasSize()
	m, _ = press(m, mouse(tea.MouseActionPress, canvasWidth+6, 1))

	if m.mode != ModeNormal {
		t.Fatalf("mode = %v", m.mode)
	}
	if m.session.Commits() != commits+1 {
		t.Fatalf("commits = %d, want the resize committed", m.session.Commits())
	}
	if e, _ := m.session.Store().Get(first.ID); e.Width != first.Width+8 {
		t.Fatalf("width = %g", e.Width)
	}
	if sel, ok := m.session.Selected(); !ok || sel.ID == first.ID {
		t.Fatal("layers click should select the topmost element")
	}
}
