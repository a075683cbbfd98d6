package main

import "log/slog"

// Session owns the one element store and history pair of an editing
// session, plus the controller that mutates them and the viewport.
type Session struct {
	store      *ElementStore
	history    *History
	controller *Controller
	view       *Viewport
	logger     *slog.Logger
	commits    int

	// OnChange runs after every mutation of the store, committed or not.
	OnChange func()
}

func NewSession(newID idGenerator, logger *slog.Logger) *Session {
	if logger == nil {
		logger = discardLogger()
	}
	s := &Session{
		store:   NewElementStore(),
		history: NewHistory(historyCapacity),
		view:    NewViewport(),
		logger:  logger,
	}
	s.controller = NewController(s.store, newID, s.commit, s.notify, logger)
	// The empty canvas is the oldest state undo can return to.
	s.history.Commit(s.store.Snapshot())
	return s
}

func (s *Session) Store() *ElementStore {
	return s.store
}

func (s *Session) History() *History {
	return s.history
}

func (s *Session) Controller() *Controller {
	return s.controller
}

func (s *Session) Viewport() *Viewport {
	return s.view
}

func (s *Session) Elements() []Element {
	return s.store.All()
}

func (s *Session) Selected() (Element, bool) {
	return s.store.Selected()
}

// Commits counts the snapshots taken since the session started, not
// counting the initial empty one.
func (s *Session) Commits() int {
	return s.commits
}

func (s *Session) commit() {
	s.history.Commit(s.store.Snapshot())
	s.commits++
	s.logger.Debug("history commit", "commits", s.commits, "entries", s.history.Len(), "cursor", s.history.Cursor())
}

func (s *Session) notify() {
	if s.OnChange != nil {
		s.OnChange()
	}
}

// Undo aborts any gesture in progress, then restores the previous snapshot.
func (s *Session) Undo() bool {
	snapshot, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.controller.Abort()
	s.store.Restore(snapshot)
	s.logger.Debug("undo", "cursor", s.history.Cursor())
	s.notify()
	return true
}

func (s *Session) Redo() bool {
	snapshot, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.controller.Abort()
	s.store.Restore(snapshot)
	s.logger.Debug("redo", "cursor", s.history.Cursor())
	s.notify()
	return true
}

// ClearSelection is the cancel key. A draw or drag in progress keeps going.
func (s *Session) ClearSelection() {
	s.controller.ClearSelection()
}

func (s *Session) DuplicateSelected() bool {
	return s.controller.DuplicateSelected()
}

func (s *Session) DeleteSelected() bool {
	return s.controller.DeleteSelected()
}

// Dirty reports whether the store differs from the active history entry,
// for example after a visibility toggle.
func (s *Session) Dirty() bool {
	cur, ok := s.history.Current()
	if !ok {
		return s.store.Len() > 0
	}
	return !sameElements(cur.Elements, s.store.All())
}

// Clear removes every element as a single undo step.
func (s *Session) Clear() bool {
	if s.store.Len() == 0 {
		return false
	}
	s.controller.Abort()
	s.store.Restore(nil)
	s.notify()
	s.commit()
	return true
}

// PointerDown and friends take terminal cell coordinates and map them
// through the viewport.
func (s *Session) PointerDown(col, row int) {
	s.controller.PointerDown(s.view.ToLogical(col, row))
}

func (s *Session) PointerMove(col, row int) {
	s.controller.PointerMove(s.view.ToLogical(col, row))
}

func (s *Session) PointerUp(col, row int) {
	s.controller.PointerUp(s.view.ToLogical(col, row))
}
