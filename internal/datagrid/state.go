package datagrid

import (
	"maps"
	"slices"
	"sort"
)

// Direction is the order applied to the active sort column.
type Direction string

const (
	SortNone Direction = ""
	SortAsc  Direction = "asc"
	SortDesc Direction = "desc"
)

// next cycles none → asc → desc → none.
func (d Direction) next() Direction {
	switch d {
	case SortNone:
		return SortAsc
	case SortAsc:
		return SortDesc
	default:
		return SortNone
	}
}

// Sort names the single active sort column.
type Sort struct {
	Column    string    `json:"column,omitempty"`
	Direction Direction `json:"direction,omitempty"`
}

// Active reports whether a sort is in effect.
func (s Sort) Active() bool {
	return s.Column != "" && s.Direction != SortNone
}

// Page is the requested page window. Index is zero-based.
type Page struct {
	Index int `json:"index"`
	Size  int `json:"size"`
}

// State captures everything the engine needs to derive a view from its rows.
// It is plain data: engines never keep derived results in it.
type State struct {
	Search    string              `json:"search,omitempty"`
	Filters   map[string][]string `json:"filters,omitempty"`
	Sort      Sort                `json:"sort"`
	Hidden    map[string]bool     `json:"hidden,omitempty"`
	Selection map[string]bool     `json:"selection,omitempty"`
	Page      Page                `json:"page"`
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := s
	if s.Filters != nil {
		out.Filters = make(map[string][]string, len(s.Filters))
		for k, v := range s.Filters {
			out.Filters[k] = append([]string(nil), v...)
		}
	}
	if s.Hidden != nil {
		out.Hidden = maps.Clone(s.Hidden)
	}
	if s.Selection != nil {
		out.Selection = maps.Clone(s.Selection)
	}
	return out
}

// Equal reports whether two states are identical. Nil and empty maps compare equal.
func (s State) Equal(other State) bool {
	if s.Search != other.Search || s.Sort != other.Sort || s.Page != other.Page {
		return false
	}
	if !maps.EqualFunc(s.Filters, other.Filters, slices.Equal[[]string]) {
		return false
	}
	return maps.Equal(s.Hidden, other.Hidden) && maps.Equal(s.Selection, other.Selection)
}

// IsSelected reports whether the row key is part of the selection.
func (s State) IsSelected(key string) bool {
	return s.Selection[key]
}

// SelectedKeys returns the selection in sorted order.
func (s State) SelectedKeys() []string {
	keys := make([]string, 0, len(s.Selection))
	for k, ok := range s.Selection {
		if ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
