package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

var toolKeys = map[string]Tool{
	"s": ToolSelect,
	"h": ToolPan,
	"b": toolForKind(KindRectangle),
	"o": toolForKind(KindCircle),
	"t": toolForKind(KindText),
	"i": toolForKind(KindImage),
	"n": toolForKind(KindButton),
	"I": toolForKind(KindInput),
	"x": toolForKind(KindCheckbox),
	"a": toolForKind(KindRadio),
	"w": toolForKind(KindToggle),
	"N": toolForKind(KindNavbar),
	"B": toolForKind(KindSidebar),
	"l": toolForKind(KindLine),
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		if m.help || m.mode == ModeFileInput || m.mode == ModeConfirm {
			return m, nil
		}
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if m.help {
			return m.handleHelpKey(msg.String()), nil
		}
		switch m.mode {
		case ModeEditing:
			return m.handleEditKey(msg), nil
		case ModeResize:
			return m.handleResizeKey(msg.String()), nil
		case ModeFileInput:
			return m.handleFileInputKey(msg)
		case ModeConfirm:
			return m.handleConfirmKey(msg.String())
		default:
			return m.handleNormalKey(msg.String())
		}
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	canvasWidth, canvasHeight := m.canvasSize()
	view := m.session.Viewport()

	if tea.MouseEvent(msg).IsWheel() {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			view.ZoomIn()
		case tea.MouseButtonWheelDown:
			view.ZoomOut()
		}
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if msg.Y >= canvasHeight {
			return
		}
		if m.mode == ModeResize {
			m.session.Controller().CommitResize()
			m.mode = ModeNormal
		}
		if m.showLayers && msg.X >= canvasWidth {
			m.handleLayersClick(msg.X-canvasWidth, msg.Y)
			return
		}
		m.clearMessages()
		if m.session.Controller().Tool() == ToolPan {
			m.panning = true
			m.panAnchorX, m.panAnchorY = msg.X, msg.Y
			return
		}
		m.session.PointerDown(msg.X, msg.Y)

	case tea.MouseActionMotion:
		if m.panning {
			view.Pan(m.panAnchorX-msg.X, m.panAnchorY-msg.Y)
			m.panAnchorX, m.panAnchorY = msg.X, msg.Y
			return
		}
		m.session.PointerMove(msg.X, msg.Y)

	case tea.MouseActionRelease:
		if m.panning {
			m.panning = false
			return
		}
		m.session.PointerUp(msg.X, msg.Y)
	}
}

// handleLayersClick selects the clicked layer; a click on the eye column
// toggles its visibility instead.
func (m *model) handleLayersClick(col, row int) {
	e, ok := layerAt(m.session.Elements(), row)
	if !ok {
		return
	}
	// border + padding puts the eye glyph in column 2
	if col == 2 {
		m.session.Controller().ToggleVisibility(e.ID)
		return
	}
	m.session.Controller().Select(e.ID)
}

func (m model) handleNormalKey(key string) (tea.Model, tea.Cmd) {
	ctrl := m.session.Controller()
	view := m.session.Viewport()

	if tool, ok := toolKeys[key]; ok {
		ctrl.SetTool(tool)
		m.clearMessages()
		return m, nil
	}

	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		if *m.config.Confirmations {
			m.settleGesture()
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.settleGesture()
		m.help = true
		m.helpScroll = 0
	case "esc":
		m.session.ClearSelection()
		m.clearMessages()
	case "u", "ctrl+z":
		if !m.session.Undo() {
			m.setSuccess("Nothing to undo")
		} else {
			m.clearMessages()
		}
	case "U", "ctrl+y":
		if !m.session.Redo() {
			m.setSuccess("Nothing to redo")
		} else {
			m.clearMessages()
		}
	case "D":
		if m.session.DuplicateSelected() {
			m.setSuccess("Duplicated")
		}
	case "d", "delete", "backspace":
		if m.session.DeleteSelected() {
			m.setSuccess("Deleted")
		}
	case "v":
		if sel, ok := m.session.Selected(); ok {
			ctrl.ToggleVisibility(sel.ID)
		}
	case "e", "enter":
		if sel, ok := m.session.Selected(); ok {
			m.mode = ModeEditing
			m.editID = sel.ID
			m.editText = sel.Label
			m.editCursorPos = len([]rune(sel.Label))
		}
	case "R":
		if ctrl.BeginResize() {
			m.mode = ModeResize
		}
	case "[":
		if sel, ok := m.session.Selected(); ok {
			ctrl.Lower(sel.ID)
		}
	case "]":
		if sel, ok := m.session.Selected(); ok {
			ctrl.Raise(sel.ID)
		}
	case "left", "right", "up", "down", "shift+left", "shift+right", "shift+up", "shift+down":
		m.handleNudge(key, m.getMoveSpeed(key))
	case "ctrl+left", "ctrl+right", "ctrl+up", "ctrl+down":
		m.handlePan(strings.TrimPrefix(key, "ctrl+"), 4)
	case "+", "=":
		view.ZoomIn()
	case "-":
		view.ZoomOut()
	case "0":
		view.SetZoom(defaultZoom)
	case "g":
		view.ToggleGrid()
	case "f":
		f := view.NextFrame()
		m.setSuccess("Frame: " + f.Name)
	case "L":
		m.showLayers = !m.showLayers
	case "y":
		if sel, ok := m.session.Selected(); ok {
			if err := writeClipboardText(describeElement(sel)); err != nil {
				m.setError(err)
			} else {
				m.setSuccess("Copied to clipboard")
			}
		}
	case "P":
		m.pasteLabel()
	case "S":
		m.startExport(FileOpExportPNG)
	case "T":
		m.startExport(FileOpExportTXT)
	case "X":
		if m.session.Store().Len() == 0 {
			return m, nil
		}
		if *m.config.Confirmations {
			m.settleGesture()
			m.mode = ModeConfirm
			m.confirmAction = ConfirmClearCanvas
			return m, nil
		}
		m.session.Clear()
	}
	return m, nil
}

// settleGesture finishes any draw, drag or pan before a screen that
// swallows mouse events opens, since its release would never arrive.
func (m *model) settleGesture() {
	m.session.Controller().Finish()
	m.panning = false
}

func (m *model) pasteLabel() {
	sel, ok := m.session.Selected()
	if !ok {
		return
	}
	text, err := readClipboardText()
	if err != nil {
		m.setError(err)
		return
	}
	label := clipboardLabel(text)
	if label == "" {
		m.setSuccess("Clipboard is empty")
		return
	}
	m.session.Controller().SetLabel(sel.ID, label)
	m.clearMessages()
}

func (m *model) startExport(op FileOperation) {
	if _, ok := boundsOf(m.session.Elements()); !ok {
		m.setError(errNothingToExport)
		return
	}
	m.settleGesture()
	m.mode = ModeFileInput
	m.fileOp = op
	m.filename = "wireframe"
	m.clearMessages()
}

func (m model) handleEditKey(msg tea.KeyMsg) tea.Model {
	runes := []rune(m.editText)
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeNormal
		m.editID = ""
	case tea.KeyEnter:
		m.session.Controller().SetLabel(m.editID, string(runes))
		m.mode = ModeNormal
		m.editID = ""
	case tea.KeyLeft:
		if m.editCursorPos > 0 {
			m.editCursorPos--
		}
	case tea.KeyRight:
		if m.editCursorPos < len(runes) {
			m.editCursorPos++
		}
	case tea.KeyHome, tea.KeyCtrlA:
		m.editCursorPos = 0
	case tea.KeyEnd, tea.KeyCtrlE:
		m.editCursorPos = len(runes)
	case tea.KeyBackspace:
		if m.editCursorPos > 0 {
			runes = append(runes[:m.editCursorPos-1], runes[m.editCursorPos:]...)
			m.editCursorPos--
			m.editText = string(runes)
		}
	case tea.KeyDelete:
		if m.editCursorPos < len(runes) {
			runes = append(runes[:m.editCursorPos], runes[m.editCursorPos+1:]...)
			m.editText = string(runes)
		}
	case tea.KeyRunes, tea.KeySpace:
		if len(runes)+len(msg.Runes) > maxLabelLength {
			return m
		}
		tail := append([]rune{}, runes[m.editCursorPos:]...)
		runes = append(append(runes[:m.editCursorPos], msg.Runes...), tail...)
		m.editCursorPos += len(msg.Runes)
		m.editText = string(runes)
	}
	return m
}

func (m model) handleResizeKey(key string) tea.Model {
	ctrl := m.session.Controller()
	cw, ch := m.session.Viewport().CellSize()
	speed := float64(m.getMoveSpeed(key))
	switch key {
	case "left", "shift+left":
		ctrl.ResizeBy(-cw*speed, 0)
	case "right", "shift+right":
		ctrl.ResizeBy(cw*speed, 0)
	case "up", "shift+up":
		ctrl.ResizeBy(0, -ch*speed)
	case "down", "shift+down":
		ctrl.ResizeBy(0, ch*speed)
	case "enter":
		ctrl.CommitResize()
		m.mode = ModeNormal
	case "esc":
		ctrl.CancelResize()
		m.mode = ModeNormal
	}
	return m
}

func (m model) handleFileInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeNormal
		m.clearMessages()
	case tea.KeyEnter:
		name := strings.TrimSpace(m.filename)
		if name == "" {
			m.errorMessage = "filename required"
			return m, nil
		}
		path, err := m.export(m.fileOp, name)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.session.logger.Info("exported", "path", path)
		m.mode = ModeNormal
		m.setSuccess(fmt.Sprintf("Exported %s", path))
	case tea.KeyBackspace:
		if r := []rune(m.filename); len(r) > 0 {
			m.filename = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.filename += string(msg.Runes)
	}
	return m, nil
}

func (m model) handleConfirmKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmClearCanvas:
			m.session.Clear()
			m.setSuccess("Canvas cleared")
		}
	case "n", "N", "esc":
		m.mode = ModeNormal
	}
	return m, nil
}

func (m model) handleHelpKey(key string) tea.Model {
	switch key {
	case "esc", "q", "?":
		m.help = false
		m.helpScroll = 0
	case "j", "down":
		if m.helpScroll < m.maxHelpScroll() {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	}
	return m
}
