package main

// ElementStore holds the ordered element sequence. Sequence order is z-order:
// later elements draw above earlier ones.
type ElementStore struct {
	elements []Element
}

func NewElementStore() *ElementStore {
	return &ElementStore{
		elements: make([]Element, 0),
	}
}

// Insert appends e on top. The caller guarantees e.ID is unique.
func (s *ElementStore) Insert(e Element) {
	s.elements = append(s.elements, e)
}

func (s *ElementStore) Remove(id string) {
	if i := s.index(id); i >= 0 {
		s.elements = append(s.elements[:i], s.elements[i+1:]...)
	}
}

func (s *ElementStore) Update(id string, p Patch) {
	if i := s.index(id); i >= 0 {
		p.apply(&s.elements[i])
	}
}

// SetSelection clears every selection flag, then selects id if present.
// An empty id only clears.
func (s *ElementStore) SetSelection(id string) {
	for i := range s.elements {
		s.elements[i].Selected = id != "" && s.elements[i].ID == id
	}
}

// All returns a copy of the sequence, bottom to top.
func (s *ElementStore) All() []Element {
	out := make([]Element, len(s.elements))
	copy(out, s.elements)
	return out
}

func (s *ElementStore) Get(id string) (Element, bool) {
	if i := s.index(id); i >= 0 {
		return s.elements[i], true
	}
	return Element{}, false
}

func (s *ElementStore) Selected() (Element, bool) {
	for _, e := range s.elements {
		if e.Selected {
			return e, true
		}
	}
	return Element{}, false
}

func (s *ElementStore) Len() int {
	return len(s.elements)
}

// Snapshot returns a deep copy suitable for history. Element has no
// reference fields, so a slice copy is deep.
func (s *ElementStore) Snapshot() []Element {
	return s.All()
}

// Restore replaces the sequence with a copy of snapshot.
func (s *ElementStore) Restore(snapshot []Element) {
	s.elements = make([]Element, len(snapshot))
	copy(s.elements, snapshot)
}

// Reorder moves id by delta places in z-order, clamped to the ends.
// It reports whether the element actually moved.
func (s *ElementStore) Reorder(id string, delta int) bool {
	from := s.index(id)
	if from < 0 {
		return false
	}
	to := from + delta
	if to < 0 {
		to = 0
	}
	if to > len(s.elements)-1 {
		to = len(s.elements) - 1
	}
	if to == from {
		return false
	}
	e := s.elements[from]
	if to > from {
		copy(s.elements[from:to], s.elements[from+1:to+1])
	} else {
		copy(s.elements[to+1:from+1], s.elements[to:from])
	}
	s.elements[to] = e
	return true
}

func (s *ElementStore) index(id string) int {
	for i, e := range s.elements {
		if e.ID == id {
			return i
		}
	}
	return -1
}
