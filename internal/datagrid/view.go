package datagrid

import (
	"maps"
	"slices"
)

// View is the derived page window.
type View[T any] struct {
	Rows          []T
	Keys          []string
	TotalFiltered int
	PageCount     int
	PageIndex     int
}

// Empty reports whether nothing passed search and filters.
func (v View[T]) Empty() bool {
	return v.TotalFiltered == 0
}

// VisibleRows derives rows → search → filters → sort → paginate from the current state.
func (e *Engine[T]) VisibleRows() View[T] {
	return e.ViewOf(e.state)
}

// ViewOf derives the page window for an arbitrary state without adopting it.
func (e *Engine[T]) ViewOf(s State) View[T] {
	rows, keys := e.filtered(s)
	v := View[T]{Rows: []T{}, Keys: []string{}, TotalFiltered: len(rows)}
	if len(rows) == 0 {
		return v
	}
	if e.opts.DisablePagination {
		v.Rows = append(v.Rows, rows...)
		v.Keys = append(v.Keys, keys...)
		v.PageCount = 1
		return v
	}
	size := e.pageSize(s)
	v.PageCount = pageCount(len(rows), size)
	v.PageIndex = clampPage(s.Page.Index, v.PageCount)
	start := v.PageIndex * size
	end := min(start+size, len(rows))
	v.Rows = append(v.Rows, rows[start:end]...)
	v.Keys = append(v.Keys, keys[start:end]...)
	return v
}

func (e *Engine[T]) pageSize(s State) int {
	if s.Page.Size > 0 {
		return s.Page.Size
	}
	return e.opts.PageSize
}

func (e *Engine[T]) pageCount(s State) int {
	rows, _ := e.filtered(s)
	if e.opts.DisablePagination {
		if len(rows) == 0 {
			return 0
		}
		return 1
	}
	return pageCount(len(rows), e.pageSize(s))
}

func pageCount(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

func clampPage(index, count int) int {
	if count <= 0 || index < 0 {
		return 0
	}
	if index >= count {
		return count - 1
	}
	return index
}

type memo[T any] struct {
	valid   bool
	version int
	search  string
	filters map[string][]string
	sort    Sort
	rows    []T
	keys    []string
}

func (m *memo[T]) hit(version int, search string, filters map[string][]string, s Sort) bool {
	return m.valid && m.version == version && m.search == search && m.sort == s &&
		maps.EqualFunc(m.filters, filters, slices.Equal[[]string])
}

// filtered returns the searched, filtered and sorted rows with their keys. Results
// are cached on the inputs that affect them; callers must not modify the slices.
func (e *Engine[T]) filtered(s State) ([]T, []string) {
	active := activeFilters(s.Filters)
	if e.cache.hit(e.version, s.Search, active, s.Sort) {
		return e.cache.rows, e.cache.keys
	}

	type entry struct {
		row T
		key string
	}
	search, searchable := e.Column(e.opts.SearchColumn)
	entries := make([]entry, 0, len(e.rows))
	for i, row := range e.rows {
		if s.Search != "" && searchable && !e.opts.SearchMode.match(valueString(search.value(row)), s.Search) {
			continue
		}
		if !e.passesFilters(row, s.Filters) {
			continue
		}
		entries = append(entries, entry{row: row, key: e.keys[i]})
	}
	if col, ok := e.Column(s.Sort.Column); ok && s.Sort.Active() {
		desc := s.Sort.Direction == SortDesc
		slices.SortStableFunc(entries, func(a, b entry) int {
			c := col.compare(a.row, b.row)
			if desc {
				return -c
			}
			return c
		})
	}

	rows := make([]T, len(entries))
	keys := make([]string, len(entries))
	for i, ent := range entries {
		rows[i] = ent.row
		keys[i] = ent.key
	}
	e.cache = memo[T]{
		valid:   true,
		version: e.version,
		search:  s.Search,
		filters: active,
		sort:    s.Sort,
		rows:    rows,
		keys:    keys,
	}
	return rows, keys
}

func (e *Engine[T]) passesFilters(row T, filters map[string][]string) bool {
	for key, accepted := range filters {
		if len(accepted) == 0 {
			continue
		}
		col, ok := e.Column(key)
		if !ok {
			continue
		}
		if !col.matches(row, accepted) {
			return false
		}
	}
	return true
}

// activeFilters copies the non-empty filter values so the cache never aliases
// state the caller may still mutate.
func activeFilters(filters map[string][]string) map[string][]string {
	out := make(map[string][]string, len(filters))
	for k, v := range filters {
		if len(v) > 0 {
			out[k] = slices.Clone(v)
		}
	}
	return out
}
