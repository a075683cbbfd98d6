package main

import "time"

// History is a bounded linear undo/redo buffer of full-store snapshots.
// cursor indexes the active entry. Once more than capacity entries exist
// the oldest is dropped, so the earliest undoable state is lost for good.
type History struct {
	entries  []HistoryEntry
	cursor   int
	capacity int
	now      func() time.Time
}

func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{
		entries:  make([]HistoryEntry, 0, capacity),
		cursor:   -1,
		capacity: capacity,
		now:      time.Now,
	}
}

// Commit discards any redo future, appends a copy of elements and makes it
// the active entry.
func (h *History) Commit(elements []Element) {
	if h.cursor < len(h.entries)-1 {
		h.entries = h.entries[:h.cursor+1]
	}
	h.entries = append(h.entries, HistoryEntry{
		Elements:  cloneElements(elements),
		Timestamp: h.now(),
	})
	if len(h.entries) > h.capacity {
		h.entries = append(h.entries[:0], h.entries[1:]...)
	}
	h.cursor = len(h.entries) - 1
}

func (h *History) Undo() ([]Element, bool) {
	if h.cursor <= 0 {
		return nil, false
	}
	h.cursor--
	return cloneElements(h.entries[h.cursor].Elements), true
}

func (h *History) Redo() ([]Element, bool) {
	if h.cursor >= len(h.entries)-1 {
		return nil, false
	}
	h.cursor++
	return cloneElements(h.entries[h.cursor].Elements), true
}

func (h *History) CanUndo() bool {
	return h.cursor > 0
}

func (h *History) CanRedo() bool {
	return h.cursor < len(h.entries)-1
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) Cursor() int {
	return h.cursor
}

// Current returns the active entry.
func (h *History) Current() (HistoryEntry, bool) {
	if h.cursor < 0 {
		return HistoryEntry{}, false
	}
	return h.entries[h.cursor], true
}

func cloneElements(elements []Element) []Element {
	out := make([]Element, len(elements))
	copy(out, elements)
	return out
}

// sameElements compares two sequences ignoring the selection flag.
func sameElements(a, b []Element) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		x, y := a[i], b[i]
		x.Selected, y.Selected = false, false
		if x != y {
			return false
		}
	}
	return true
}
