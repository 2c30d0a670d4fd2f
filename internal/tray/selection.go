package tray

import "sort"

// Selection is the set of selected well ids. The zero value is empty and ready to use.
// Counts and select-all state are derived from trays on demand, never stored.
type Selection struct {
	ids map[string]struct{}
}

// NewSelection returns a selection holding ids.
func NewSelection(ids ...string) Selection {
	s := Selection{}
	for _, id := range ids {
		s.add(id)
	}
	return s
}

func (s *Selection) add(id string) {
	if s.ids == nil {
		s.ids = make(map[string]struct{})
	}
	s.ids[id] = struct{}{}
}

// Toggle flips membership of id. Ids that match no well are accepted.
func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.add(id)
}

// SelectAll replaces the selection with every non-empty well of trays.
func (s *Selection) SelectAll(trays []Tray) {
	s.ids = nil
	for _, id := range SelectableIDs(trays) {
		s.add(id)
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = nil
}

// SetSelectAll handles the select-all checkbox: checked selects every selectable
// well, unchecked clears.
func (s *Selection) SetSelectAll(checked bool, trays []Tray) {
	if checked {
		s.SelectAll(trays)
		return
	}
	s.Clear()
}

// IsSelected reports whether id is selected.
func (s Selection) IsSelected(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected ids.
func (s Selection) Len() int {
	return len(s.ids)
}

// IDs returns the selected ids sorted.
func (s Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy.
func (s Selection) Clone() Selection {
	return NewSelection(s.IDs()...)
}

// IsSelectAllChecked reports whether the selection is exactly the set of non-empty
// wells. With no selectable wells the checkbox is unchecked.
func (s Selection) IsSelectAllChecked(trays []Tray) bool {
	selectable := SelectableIDs(trays)
	if len(selectable) == 0 {
		return false
	}
	want := make(map[string]struct{}, len(selectable))
	for _, id := range selectable {
		want[id] = struct{}{}
	}
	if len(want) != len(s.ids) {
		return false
	}
	for id := range want {
		if _, ok := s.ids[id]; !ok {
			return false
		}
	}
	return true
}
