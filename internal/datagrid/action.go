package datagrid

// Action is a state transition understood by Engine.Next.
type Action interface {
	isAction()
}

type (
	SetSearch           struct{ Text string }
	SetFilter           struct {
		Key    string
		Values []string
	}
	ToggleSort          struct{ Column string }
	SetColumnVisibility struct {
		Key     string
		Visible bool
	}
	ToggleRow      struct{ Key string }
	TogglePage     struct{ Keys []string }
	ClearSelection struct{}
	SetPage        struct{ Index int }
	SetPageSize    struct{ Size int }
)

func (SetSearch) isAction()           {}
func (SetFilter) isAction()           {}
func (ToggleSort) isAction()          {}
func (SetColumnVisibility) isAction() {}
func (ToggleRow) isAction()           {}
func (TogglePage) isAction()          {}
func (ClearSelection) isAction()      {}
func (SetPage) isAction()             {}
func (SetPageSize) isAction()         {}

// Next returns the state produced by applying action to s. The input state is
// never modified. Actions referring to unknown columns leave the state unchanged.
func (e *Engine[T]) Next(s State, action Action) State {
	next := s.Clone()
	switch a := action.(type) {
	case SetSearch:
		if next.Search == a.Text {
			return next
		}
		next.Search = a.Text
		next.Page.Index = 0
		e.pruneSelection(&next)
	case SetFilter:
		if _, ok := e.index[a.Key]; !ok {
			return next
		}
		values := normaliseFilter(a.Values)
		if len(values) == 0 {
			delete(next.Filters, a.Key)
		} else {
			if next.Filters == nil {
				next.Filters = make(map[string][]string)
			}
			next.Filters[a.Key] = values
		}
		next.Page.Index = 0
		e.pruneSelection(&next)
	case ToggleSort:
		col, ok := e.Column(a.Column)
		if !ok || !col.Sortable {
			return next
		}
		if next.Sort.Column != a.Column {
			next.Sort = Sort{Column: a.Column, Direction: SortAsc}
			break
		}
		if dir := next.Sort.Direction.next(); dir == SortNone {
			next.Sort = Sort{}
		} else {
			next.Sort.Direction = dir
		}
	case SetColumnVisibility:
		col, ok := e.Column(a.Key)
		if !ok || !col.Hideable {
			return next
		}
		if a.Visible {
			delete(next.Hidden, a.Key)
		} else {
			if next.Hidden == nil {
				next.Hidden = make(map[string]bool)
			}
			next.Hidden[a.Key] = true
		}
	case ToggleRow:
		if a.Key == "" {
			return next
		}
		if next.Selection[a.Key] {
			delete(next.Selection, a.Key)
		} else {
			if next.Selection == nil {
				next.Selection = make(map[string]bool)
			}
			next.Selection[a.Key] = true
		}
	case TogglePage:
		if len(a.Keys) == 0 {
			return next
		}
		all := true
		for _, key := range a.Keys {
			if !next.Selection[key] {
				all = false
				break
			}
		}
		if next.Selection == nil {
			next.Selection = make(map[string]bool, len(a.Keys))
		}
		for _, key := range a.Keys {
			if all {
				delete(next.Selection, key)
			} else {
				next.Selection[key] = true
			}
		}
	case ClearSelection:
		next.Selection = nil
	case SetPage:
		next.Page.Index = clampPage(a.Index, e.pageCount(next))
	case SetPageSize:
		if a.Size <= 0 {
			return next
		}
		next.Page.Size = a.Size
		next.Page.Index = 0
	}
	return next
}

func (e *Engine[T]) pruneSelection(s *State) {
	if !e.opts.PruneSelectionOnFilter || len(s.Selection) == 0 {
		return
	}
	_, keys := e.filtered(*s)
	visible := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		visible[key] = struct{}{}
	}
	for key := range s.Selection {
		if _, ok := visible[key]; !ok {
			delete(s.Selection, key)
		}
	}
}
