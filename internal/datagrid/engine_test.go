package datagrid

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"testing"
)

type person struct {
	ID     string
	Name   string
	Status string
	Role   string
	Score  int
}

func (p person) RowID() string { return p.ID }

func testColumns() []Column[person] {
	return []Column[person]{
		{Key: "name", Title: "Name", Value: func(p person) any { return p.Name }, Sortable: true},
		{Key: "status", Title: "Status", Value: func(p person) any { return p.Status }, Hideable: true},
		{Key: "role", Title: "Role", Value: func(p person) any { return p.Role }, Hideable: true},
		{Key: "score", Title: "Score", Value: func(p person) any { return p.Score }, Sortable: true, Hideable: true},
	}
}

// tenPeople has six active rows, four of which contain "al" in their name.
func tenPeople() []person {
	return []person{
		{ID: "1", Name: "alice", Status: "active", Role: "Admin", Score: 40},
		{ID: "2", Name: "bob", Status: "active", Role: "User", Score: 10},
		{ID: "3", Name: "alicia", Status: "active", Role: "User", Score: 90},
		{ID: "4", Name: "albert", Status: "inactive", Role: "Viewer", Score: 20},
		{ID: "5", Name: "alina", Status: "active", Role: "Admin", Score: 70},
		{ID: "6", Name: "carl", Status: "active", Role: "Viewer", Score: 30},
		{ID: "7", Name: "alfred", Status: "pending", Role: "User", Score: 50},
		{ID: "8", Name: "alma", Status: "active", Role: "User", Score: 60},
		{ID: "9", Name: "dave", Status: "inactive", Role: "Admin", Score: 80},
		{ID: "10", Name: "eve", Status: "pending", Role: "Viewer", Score: 0},
	}
}

func newTestEngine(rows []person, opts Options[person]) *Engine[person] {
	return New(rows, testColumns(), opts)
}

func allPageKeys(e *Engine[person]) []string {
	var keys []string
	count := e.VisibleRows().PageCount
	for i := 0; i < count; i++ {
		e.SetPage(i)
		keys = append(keys, e.VisibleRows().Keys...)
	}
	return keys
}

func TestEndToEndFilterSearchPaginate(t *testing.T) {
	e := newTestEngine(tenPeople(), Options[person]{PageSize: 2})
	e.SetFilter("status", "active")
	e.SetSearchText("al")

	view := e.VisibleRows()
	if len(view.Rows) != 2 {
		t.Fatalf("expected 2 rows on first page, got %d", len(view.Rows))
	}
	if view.TotalFiltered != 4 {
		t.Fatalf("expected 4 filtered rows, got %d", view.TotalFiltered)
	}
	if view.PageCount != 2 {
		t.Fatalf("expected 2 pages, got %d", view.PageCount)
	}
	if !reflect.DeepEqual(view.Keys, []string{"1", "3"}) {
		t.Fatalf("expected first page keys [1 3], got %v", view.Keys)
	}
}

func TestFilterCompositionAcrossKeys(t *testing.T) {
	rows := tenPeople()
	both := newTestEngine(rows, Options[person]{DisablePagination: true})
	both.SetFilter("status", "active", "pending")
	both.SetFilter("role", "User")
	want := both.VisibleRows().Keys

	for _, order := range [][2]string{{"status", "role"}, {"role", "status"}} {
		values := map[string][]string{"status": {"active", "pending"}, "role": {"User"}}
		first := newTestEngine(rows, Options[person]{DisablePagination: true})
		first.SetFilter(order[0], values[order[0]]...)
		second := newTestEngine(first.VisibleRows().Rows, Options[person]{DisablePagination: true})
		second.SetFilter(order[1], values[order[1]]...)
		got := second.VisibleRows().Keys
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("order %v: expected %v, got %v", order, want, got)
		}
	}
	if !reflect.DeepEqual(want, []string{"2", "3", "7", "8"}) {
		t.Fatalf("unexpected composed keys %v", want)
	}
}

func TestPaginationCoversFilteredSet(t *testing.T) {
	for size := 1; size <= 11; size++ {
		e := newTestEngine(tenPeople(), Options[person]{PageSize: size})
		e.SetSearchText("a")
		total := e.VisibleRows().TotalFiltered
		wantPages := (total + size - 1) / size
		if got := e.VisibleRows().PageCount; got != wantPages {
			t.Fatalf("size %d: expected %d pages, got %d", size, wantPages, got)
		}
		keys := allPageKeys(e)
		if len(keys) != total {
			t.Fatalf("size %d: expected %d keys across pages, got %d", size, total, len(keys))
		}
		seen := map[string]bool{}
		for _, k := range keys {
			if seen[k] {
				t.Fatalf("size %d: duplicate key %s", size, k)
			}
			seen[k] = true
		}
	}

	empty := newTestEngine(nil, Options[person]{PageSize: 3})
	view := empty.VisibleRows()
	if view.PageCount != 0 || view.TotalFiltered != 0 {
		t.Fatalf("expected empty view with zero pages, got %+v", view)
	}
	if view.Rows == nil || view.Keys == nil {
		t.Fatal("expected non-nil collections for empty view")
	}
}

func TestToggleSortCycles(t *testing.T) {
	e := newTestEngine(tenPeople(), Options[person]{DisablePagination: true})

	e.ToggleSort("score")
	if got := e.State().Sort; got != (Sort{Column: "score", Direction: SortAsc}) {
		t.Fatalf("expected asc sort, got %+v", got)
	}
	if first := e.VisibleRows().Rows[0].Name; first != "eve" {
		t.Fatalf("expected lowest score first, got %s", first)
	}
	e.ToggleSort("score")
	if first := e.VisibleRows().Rows[0].Name; first != "alicia" {
		t.Fatalf("expected highest score first, got %s", first)
	}
	e.ToggleSort("score")
	if e.State().Sort.Active() {
		t.Fatalf("expected sort cleared after three toggles, got %+v", e.State().Sort)
	}
	if keys := e.VisibleRows().Keys; keys[0] != "1" || keys[9] != "10" {
		t.Fatalf("expected source order restored, got %v", keys)
	}

	e.ToggleSort("score")
	e.ToggleSort("name")
	if got := e.State().Sort; got != (Sort{Column: "name", Direction: SortAsc}) {
		t.Fatalf("expected switching column to start ascending, got %+v", got)
	}
	if e.ToggleSort("status") {
		t.Fatal("expected non-sortable column to be ignored")
	}
	if e.ToggleSort("missing") {
		t.Fatal("expected unknown column to be ignored")
	}
}

func TestSortIsStableForTies(t *testing.T) {
	rows := []person{
		{ID: "a", Name: "x", Score: 1},
		{ID: "b", Name: "y", Score: 1},
		{ID: "c", Name: "z", Score: 0},
	}
	e := newTestEngine(rows, Options[person]{})
	e.ToggleSort("score")
	if got := e.VisibleRows().Keys; !reflect.DeepEqual(got, []string{"c", "a", "b"}) {
		t.Fatalf("expected stable ascending order, got %v", got)
	}
}

func TestSelectionPersistsThroughFiltering(t *testing.T) {
	e := newTestEngine(tenPeople(), Options[person]{})
	e.ToggleRowSelection("4")
	e.SetFilter("status", "active")
	for _, key := range e.VisibleRows().Keys {
		if key == "4" {
			t.Fatal("expected row 4 to be filtered out")
		}
	}
	e.SetFilter("status")
	if !e.State().IsSelected("4") {
		t.Fatal("expected row 4 to stay selected after the filter cleared")
	}
	selected := e.SelectedRows()
	if len(selected) != 1 || selected[0].Name != "albert" {
		t.Fatalf("expected albert selected, got %#v", selected)
	}
}

func TestPruneSelectionOnFilter(t *testing.T) {
	e := newTestEngine(tenPeople(), Options[person]{PruneSelectionOnFilter: true})
	e.ToggleRowSelection("4")
	e.ToggleRowSelection("1")
	e.SetFilter("status", "active")
	e.SetFilter("status", AllValue)
	if e.State().IsSelected("4") {
		t.Fatal("expected filtered-out selection to be pruned")
	}
	if !e.State().IsSelected("1") {
		t.Fatal("expected visible selection to survive")
	}
}

func TestSelectAllOnPageOnlyTouchesCurrentPage(t *testing.T) {
	e := newTestEngine(tenPeople(), Options[person]{PageSize: 3})
	e.SetPage(1)
	page := e.VisibleRows().Keys
	if !e.SelectAllOnPage() {
		t.Fatal("expected selection to change")
	}
	got := e.State().SelectedKeys()
	want := slices.Clone(page)
	slices.Sort(want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected selection %v, got %v", want, got)
	}
	if all, some := e.PageSelection(); !all || some {
		t.Fatalf("expected page fully selected, got all=%v some=%v", all, some)
	}
	selected, filtered := e.SelectionSummary()
	if selected != 3 || filtered != 10 {
		t.Fatalf("expected 3 of 10 selected, got %d of %d", selected, filtered)
	}

	e.SelectAllOnPage()
	if len(e.State().Selection) != 0 {
		t.Fatalf("expected second toggle to clear the page, got %v", e.State().SelectedKeys())
	}

	e.ToggleRowSelection(page[0])
	if all, some := e.PageSelection(); all || !some {
		t.Fatalf("expected indeterminate page, got all=%v some=%v", all, some)
	}
	e.SelectAllOnPage()
	if all, _ := e.PageSelection(); !all {
		t.Fatal("expected partial page to become fully selected")
	}
}

func TestSetPageClampsAndPageSizeResets(t *testing.T) {
	e := newTestEngine(tenPeople(), Options[person]{PageSize: 3})
	e.SetPage(99)
	if idx := e.State().Page.Index; idx != 3 {
		t.Fatalf("expected clamp to last page 3, got %d", idx)
	}
	e.SetPage(-4)
	if idx := e.State().Page.Index; idx != 0 {
		t.Fatalf("expected clamp to 0, got %d", idx)
	}
	e.SetPage(2)
	e.SetPageSize(5)
	if got := e.State().Page; got != (Page{Index: 0, Size: 5}) {
		t.Fatalf("expected page size change to reset index, got %+v", got)
	}
	if e.SetPageSize(0) {
		t.Fatal("expected non-positive page size to be ignored")
	}
	if !e.NextPage() || e.NextPage() {
		t.Fatal("expected exactly one next page with size 5")
	}
	if !e.CanPreviousPage() || !e.PreviousPage() {
		t.Fatal("expected to move back to the first page")
	}
	if got := e.NextPageSize(); got != 10 {
		t.Fatalf("expected unknown size to restart options, got %d", got)
	}
}

func TestFilterAndSearchResetPageIndex(t *testing.T) {
	e := newTestEngine(tenPeople(), Options[person]{PageSize: 2})
	e.SetPage(3)
	e.SetSearchText("a")
	if idx := e.State().Page.Index; idx != 0 {
		t.Fatalf("expected search to reset page, got %d", idx)
	}
	e.SetPage(2)
	e.SetFilter("role", "User")
	if idx := e.State().Page.Index; idx != 0 {
		t.Fatalf("expected filter to reset page, got %d", idx)
	}
}

func TestUnknownFilterKeyIsNoop(t *testing.T) {
	e := newTestEngine(tenPeople(), Options[person]{})
	if e.SetFilter("department", "sales") {
		t.Fatal("expected unknown filter key to leave state unchanged")
	}
	if got := e.VisibleRows().TotalFiltered; got != 10 {
		t.Fatalf("expected all rows, got %d", got)
	}
	if got := e.FilterValue("department"); got != AllValue {
		t.Fatalf("expected sentinel for unknown key, got %q", got)
	}
}

func TestAllSentinelClearsFilter(t *testing.T) {
	e := newTestEngine(tenPeople(), Options[person]{})
	e.SetFilter("role", "Admin")
	if got := e.FilterValue("role"); got != "Admin" {
		t.Fatalf("expected Admin filter, got %q", got)
	}
	e.SetFilter("role", AllValue)
	if _, ok := e.State().Filters["role"]; ok {
		t.Fatal("expected sentinel to remove the constraint")
	}
}

func TestSearchModes(t *testing.T) {
	rows := []person{{ID: "1", Name: "Alice"}, {ID: "2", Name: "malice"}, {ID: "3", Name: "Bob"}}
	cases := []struct {
		mode  SearchMode
		query string
		want  []string
	}{
		{SearchSubstring, "Ali", []string{"1"}},
		{SearchSubstring, "ali", []string{"2"}},
		{SearchFold, "ALI", []string{"1", "2"}},
		{SearchFuzzy, "ae", []string{"1", "2"}},
		{SearchFuzzy, "bb", []string{"3"}},
	}
	for _, tc := range cases {
		e := newTestEngine(rows, Options[person]{SearchMode: tc.mode})
		e.SetSearchText(tc.query)
		if got := e.VisibleRows().Keys; !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s %q: expected %v, got %v", tc.mode, tc.query, tc.want, got)
		}
	}
}

func TestParseSearchMode(t *testing.T) {
	if mode, err := ParseSearchMode(""); err != nil || mode != SearchSubstring {
		t.Fatalf("expected default substring, got %q (%v)", mode, err)
	}
	if mode, err := ParseSearchMode(" Fuzzy "); err != nil || mode != SearchFuzzy {
		t.Fatalf("expected fuzzy, got %q (%v)", mode, err)
	}
	if _, err := ParseSearchMode("regex"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestSearchColumnSelection(t *testing.T) {
	e := newTestEngine(tenPeople(), Options[person]{SearchColumn: "role"})
	e.SetSearchText("Adm")
	if got := e.VisibleRows().TotalFiltered; got != 3 {
		t.Fatalf("expected 3 admins, got %d", got)
	}
	missing := newTestEngine(tenPeople(), Options[person]{SearchColumn: "nope"})
	missing.SetSearchText("zzz")
	if got := missing.VisibleRows().TotalFiltered; got != 10 {
		t.Fatalf("expected search on unknown column to be ignored, got %d", got)
	}
}

func TestColumnVisibility(t *testing.T) {
	e := newTestEngine(tenPeople(), Options[person]{})
	if e.SetColumnVisibility("name", false) {
		t.Fatal("expected non-hideable column to stay visible")
	}
	e.SetColumnVisibility("score", false)
	if e.ColumnVisible("score") {
		t.Fatal("expected score hidden")
	}
	var keys []string
	for _, col := range e.VisibleColumns() {
		keys = append(keys, col.Key)
	}
	if !reflect.DeepEqual(keys, []string{"name", "status", "role"}) {
		t.Fatalf("unexpected visible columns %v", keys)
	}
	e.ToggleSort("score")
	if first := e.VisibleRows().Rows[0].Name; first != "eve" {
		t.Fatalf("expected hidden column to keep sorting, got %s", first)
	}
	e.SetColumnVisibility("score", true)
	if !e.ColumnVisible("score") {
		t.Fatal("expected score visible again")
	}
}

func TestNextDoesNotMutateInput(t *testing.T) {
	e := newTestEngine(tenPeople(), Options[person]{})
	before := e.State()
	snapshot := before.Clone()
	after := e.Next(before, ToggleRow{Key: "1"})
	after = e.Next(after, SetFilter{Key: "role", Values: []string{"User"}})
	if !before.Equal(snapshot) {
		t.Fatalf("expected input state untouched, got %+v", before)
	}
	if !after.IsSelected("1") || len(after.Filters["role"]) != 1 {
		t.Fatalf("expected transitions applied to result, got %+v", after)
	}
	if e.State().IsSelected("1") {
		t.Fatal("expected Next to leave engine state alone")
	}
}

func TestRowKeyResolution(t *testing.T) {
	type plain struct{ Name string }
	cols := []Column[plain]{{Key: "name", Value: func(p plain) any { return p.Name }}}

	positional := New([]plain{{"a"}, {"b"}}, cols, Options[plain]{})
	if got := positional.VisibleRows().Keys; !reflect.DeepEqual(got, []string{"0", "1"}) {
		t.Fatalf("expected positional keys, got %v", got)
	}

	explicit := New([]plain{{"a"}, {"b"}}, cols, Options[plain]{Key: func(p plain) string { return "k-" + p.Name }})
	if got := explicit.VisibleRows().Keys; !reflect.DeepEqual(got, []string{"k-a", "k-b"}) {
		t.Fatalf("expected explicit keys, got %v", got)
	}

	identified := newTestEngine(tenPeople()[:2], Options[person]{})
	if got := identified.VisibleRows().Keys; !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Fatalf("expected RowID keys, got %v", got)
	}
}

func TestCustomMatchFunc(t *testing.T) {
	cols := testColumns()
	cols[3].Match = func(value any, accepted []string) bool {
		score, _ := value.(int)
		for _, a := range accepted {
			if a == "high" && score >= 60 {
				return true
			}
		}
		return false
	}
	e := New(tenPeople(), cols, Options[person]{})
	e.SetFilter("score", "high")
	if got := e.VisibleRows().TotalFiltered; got != 4 {
		t.Fatalf("expected 4 high scores, got %d", got)
	}
}

func TestSetRowsKeepsStateAndClampsPage(t *testing.T) {
	e := newTestEngine(tenPeople(), Options[person]{PageSize: 2})
	e.ToggleRowSelection("9")
	e.SetPage(4)
	e.SetRows(tenPeople()[:3])
	if idx := e.State().Page.Index; idx != 1 {
		t.Fatalf("expected page clamped to 1, got %d", idx)
	}
	if !e.State().IsSelected("9") {
		t.Fatal("expected selection to survive a row refresh")
	}
	if got := len(e.SelectedRows()); got != 0 {
		t.Fatalf("expected no materialised rows for a missing key, got %d", got)
	}
}

func TestDisablePagination(t *testing.T) {
	e := newTestEngine(tenPeople(), Options[person]{PageSize: 2, DisablePagination: true})
	view := e.VisibleRows()
	if len(view.Rows) != 10 || view.PageCount != 1 {
		t.Fatalf("expected a single page of 10 rows, got %d rows over %d pages", len(view.Rows), view.PageCount)
	}
}

func TestSetStateNormalisesPage(t *testing.T) {
	e := newTestEngine(tenPeople(), Options[person]{PageSize: 4})
	e.SetState(State{Page: Page{Index: 9}})
	if got := e.State().Page; got != (Page{Index: 2, Size: 4}) {
		t.Fatalf("expected normalised page, got %+v", got)
	}
}

func TestCompareValues(t *testing.T) {
	cases := []struct {
		a, b any
		want int
	}{
		{"a", "b", -1},
		{2, 10, -1},
		{int64(5), 2.5, 1},
		{true, false, 1},
		{nil, "x", -1},
		{"10", 9, strings.Compare("10", "9")},
	}
	for _, tc := range cases {
		if got := CompareValues(tc.a, tc.b); got != tc.want {
			t.Fatalf("CompareValues(%v, %v): expected %d, got %d", tc.a, tc.b, tc.want, got)
		}
	}
}

func TestFilterSpecChoices(t *testing.T) {
	spec := FilterSpec{
		Key:   "status",
		Label: "Status",
		Options: []FilterOption{
			{Value: "active", Label: "Active"},
			{Value: "pending", Label: "Pending"},
		},
	}
	choices := spec.Choices()
	if len(choices) != 3 || choices[0].Value != AllValue || choices[0].Label != "All Status" {
		t.Fatalf("unexpected choices %#v", choices)
	}
	if next := spec.NextValue(AllValue); next != "active" {
		t.Fatalf("expected active after all, got %s", next)
	}
	if next := spec.NextValue("pending"); next != AllValue {
		t.Fatalf("expected wrap to all, got %s", next)
	}
	if label := spec.LabelFor("pending"); label != "Pending" {
		t.Fatalf("expected Pending label, got %s", label)
	}
	spec.Placeholder = "Status"
	if label := spec.LabelFor(AllValue); label != "Status" {
		t.Fatalf("expected placeholder for sentinel, got %s", label)
	}
}

func BenchmarkVisibleRowsMemoised(b *testing.B) {
	rows := make([]person, 5000)
	for i := range rows {
		rows[i] = person{ID: fmt.Sprint(i), Name: fmt.Sprintf("row-%d", i), Score: i % 97}
	}
	e := newTestEngine(rows, Options[person]{})
	e.ToggleSort("score")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.VisibleRows()
	}
}

func TestFilterCacheDistinguishesJoinedValues(t *testing.T) {
	rows := []person{
		{ID: "1", Name: "joined", Status: "x\x1ey"},
		{ID: "2", Name: "split", Status: "x"},
	}
	e := newTestEngine(rows, Options[person]{DisablePagination: true})
	steps := []struct {
		values []string
		want   []string
	}{
		{[]string{"x\x1ey"}, []string{"1"}},
		{[]string{"x", "y"}, []string{"2"}},
		{[]string{"x\x1ey"}, []string{"1"}},
	}
	for _, step := range steps {
		e.SetFilter("status", step.values...)
		fresh := newTestEngine(rows, Options[person]{DisablePagination: true})
		fresh.SetFilter("status", step.values...)
		got := e.VisibleRows().Keys
		if !slices.Equal(got, step.want) || !slices.Equal(got, fresh.VisibleRows().Keys) {
			t.Fatalf("filter %q: expected %v, got %v (fresh engine %v)", step.values, step.want, got, fresh.VisibleRows().Keys)
		}
	}
}
