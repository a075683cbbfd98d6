package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var helpLines = []string{
	"wirem help",
	"==========",
	"",
	"Tools:",
	"------",
	"  s                Select / move (drag an element)",
	"  h                Pan (drag the canvas)",
	"  b o t i          Rectangle, circle, text, image",
	"  n I              Button, input",
	"  x a w            Checkbox, radio, toggle",
	"  N B l            Navbar, sidebar, line",
	"                   Drag on the canvas to draw; tiny drags are ignored",
	"",
	"Selection:",
	"----------",
	"  Esc              Clear selection",
	"  e/Enter          Edit label",
	"  R                Resize with arrows, Enter to finish, Esc to cancel",
	"  arrows           Nudge selected (Shift for 2x); pan when nothing selected",
	"  [ ]              Send backward / bring forward",
	"  D                Duplicate",
	"  d/Delete         Delete",
	"  v                Toggle visibility (not an undo step)",
	"  y                Copy properties to clipboard",
	"  P                Paste clipboard text as label",
	"",
	"View:",
	"-----",
	"  + - 0 / wheel    Zoom in, out, reset",
	"  Ctrl+arrows      Pan",
	"  g                Toggle grid",
	"  f                Cycle device frame",
	"  L                Toggle layers panel (click to select, click eye to hide)",
	"",
	"General:",
	"--------",
	"  u/Ctrl+Z         Undo",
	"  U/Ctrl+Y         Redo",
	"  S                Export PNG",
	"  T                Export visual TXT",
	"  X                Clear canvas",
	"  ?                Toggle this help screen",
	"  q/Ctrl+C         Quit",
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	canvasWidth, canvasHeight := m.canvasSize()
	lines := m.frame.render(m.session, canvasWidth, canvasHeight)
	body := strings.Join(lines, "\n")

	if m.showLayers {
		panel := renderLayers(m.session.Elements(), canvasHeight)
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, panel)
	}

	status := m.statusLine()
	if m.width > 0 {
		status = truncate(status, m.width)
	}
	if m.errorMessage != "" {
		status = errorStyle.Render(status)
	} else {
		status = statusStyle.Width(m.width).Render(status)
	}
	return body + "\n" + status
}

func (m model) statusLine() string {
	switch m.mode {
	case ModeEditing:
		runes := []rune(m.editText)
		pos := m.editCursorPos
		if pos > len(runes) {
			pos = len(runes)
		}
		display := string(runes[:pos]) + "█" + string(runes[pos:])
		return fmt.Sprintf("Mode: EDIT | Label: %s | Enter=save, Esc=cancel", display)
	case ModeResize:
		sel, _ := m.session.Selected()
		return fmt.Sprintf("Mode: RESIZE | %s %gx%g | arrows=resize, Enter=finish, Esc=cancel", sel.Kind, sel.Width, sel.Height)
	case ModeFileInput:
		op := "Export PNG"
		if m.fileOp == FileOpExportTXT {
			op = "Export TXT"
		}
		s := fmt.Sprintf("Mode: FILE | %s filename: %s█ | Enter=confirm, Esc=cancel", op, m.filename)
		if m.errorMessage != "" {
			s = fmt.Sprintf("Mode: FILE | ERROR: %s | %s filename: %s█", m.errorMessage, op, m.filename)
		}
		return s
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmQuit:
			message = "Quit wirem? (y/n)"
		case ConfirmClearCanvas:
			message = "Remove every element? (y/n)"
		}
		return "Mode: CONFIRM | " + message
	}

	view := m.session.Viewport()
	tool := m.session.Controller().Tool()
	status := fmt.Sprintf("Mode: %s | Tool: %s | Zoom: %d%%", m.modeString(), tool, view.Zoom)
	if f := view.Frame(); f.Width > 0 {
		status += " | Frame: " + f.Name
	}
	status += fmt.Sprintf(" | Elements: %d", m.session.Store().Len())
	if sel, ok := m.session.Selected(); ok {
		status += fmt.Sprintf(" | Selected: %s (%g,%g %gx%g)", sel.Kind, sel.X, sel.Y, sel.Width, sel.Height)
	}
	if m.session.Dirty() {
		status += " *"
	}
	if m.successMessage != "" {
		status += " | " + m.successMessage
	}
	if m.errorMessage != "" {
		status += " | ERROR: " + m.errorMessage
	} else if m.successMessage == "" {
		status += " | ? for help | q to quit"
	}
	return status
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		return "NORMAL"
	case ModeEditing:
		return "EDIT"
	case ModeResize:
		return "RESIZE"
	case ModeFileInput:
		return "FILE"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

func (m model) maxHelpScroll() int {
	visible := m.height - 1
	if visible < 1 {
		visible = 1
	}
	if n := len(helpLines) - visible; n > 0 {
		return n
	}
	return 0
}

func (m model) helpView() string {
	visibleHeight := m.height - 1
	if visibleHeight < 1 {
		visibleHeight = 1
	}
	start := m.helpScroll
	if start > m.maxHelpScroll() {
		start = m.maxHelpScroll()
	}
	end := start + visibleHeight
	if end > len(helpLines) {
		end = len(helpLines)
	}
	result := strings.Join(helpLines[start:end], "\n")
	return result + "\n" + fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		start+1, end, len(helpLines))
}
