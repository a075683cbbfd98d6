package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	config, cfgErr := loadConfig()
	logger, closer, logErr := openLogger(config.LogFile)
	defer closer.Close()
	if logErr != nil {
		fmt.Fprintln(os.Stderr, logErr)
	}
	if cfgErr != nil {
		logger.Warn("using default config", "err", cfgErr)
	}

	p := tea.NewProgram(
		initialModel(config, logger, newElementID),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func initialModel(config *Config, logger *slog.Logger, newID idGenerator) model {
	session := NewSession(newID, logger)
	config.apply(session, logger)
	frame := &frameCache{stale: true}
	session.OnChange = frame.invalidate
	return model{
		session:    session,
		frame:      frame,
		mode:       ModeNormal,
		showLayers: *config.ShowLayers,
		config:     config,
	}
}

// frameCache keeps the last rasterized canvas. The session marks it stale
// on every store mutation; view changes are caught by comparing the key.
type frameCache struct {
	stale bool
	key   frameKey
	lines []string
}

type frameKey struct {
	width, height int
	view          Viewport
	preview       Rect
	drawing       bool
}

func (f *frameCache) invalidate() {
	f.stale = true
}

func (f *frameCache) render(s *Session, width, height int) []string {
	preview, drawing := s.Controller().Preview()
	key := frameKey{width: width, height: height, view: *s.Viewport(), preview: preview, drawing: drawing}
	if !f.stale && key == f.key {
		return f.lines
	}
	var p *Rect
	if drawing {
		p = &preview
	}
	f.lines = Render(s.Elements(), s.Viewport(), width, height, p)
	f.key = key
	f.stale = false
	return f.lines
}

func (m model) Init() tea.Cmd {
	return nil
}

// canvasSize is the drawing area in cells: the window minus the layers
// panel and the status line.
func (m *model) canvasSize() (int, int) {
	width := m.width
	if m.showLayers {
		width -= layersPanelWidth
	}
	height := m.height - 1
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}

func (m *model) setError(err error) {
	m.errorMessage = err.Error()
	m.successMessage = ""
	m.session.logger.Warn("operation failed", "err", err)
}

func (m *model) setSuccess(msg string) {
	m.successMessage = msg
	m.errorMessage = ""
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}
