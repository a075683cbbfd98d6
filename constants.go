package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeEditing
	ModeResize
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpExportPNG FileOperation = iota
	FileOpExportTXT
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmClearCanvas
)

type Kind int

const (
	KindRectangle Kind = iota
	KindCircle
	KindText
	KindImage
	KindButton
	KindInput
	KindCheckbox
	KindRadio
	KindToggle
	KindNavbar
	KindSidebar
	KindLine
)

var kindNames = [...]string{
	KindRectangle: "rectangle",
	KindCircle:    "circle",
	KindText:      "text",
	KindImage:     "image",
	KindButton:    "button",
	KindInput:     "input",
	KindCheckbox:  "checkbox",
	KindRadio:     "radio",
	KindToggle:    "toggle",
	KindNavbar:    "navbar",
	KindSidebar:   "sidebar",
	KindLine:      "line",
}

type Tool int

const (
	ToolSelect Tool = iota
	ToolPan
	// Creation tools follow, one per Kind, in Kind order.
	toolFirstKind
)

const (
	minElementSize   = 10.0 // logical units, exclusive
	duplicateOffset  = 20.0
	historyCapacity  = 50
	cellWidth        = 8.0  // logical units per terminal column at 100% zoom
	cellHeight       = 16.0 // logical units per terminal row at 100% zoom
	gridSpacing      = 20.0
	minZoom          = 25
	maxZoom          = 200
	zoomStep         = 25
	defaultZoom      = 100
	layersPanelWidth = 28
)
