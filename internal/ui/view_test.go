package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/gridkit/internal/catalog"
	"github.com/charmbracelet/lipgloss"
)

// lineWith returns the first line of view containing prefix.
func lineWith(view, prefix string) string {
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, prefix) {
			return line
		}
	}
	return ""
}

func TestCatalogViewListsPages(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{ShowFooter: true}))
	view := plainView(h)
	for _, want := range []string{"Home", "Customer Management", "Trays", "esc quit", "type to filter pages"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
	h.Type("zzz")
	if view := plainView(h); !strings.Contains(view, `No matches for "zzz"`) {
		t.Fatalf("expected no match message, got:\n%s", view)
	}
}

func TestTableViewHeaderAndSummary(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{Page: catalog.TableID, PageSize: 5}))
	press(h, "ctrl+o", "tab")
	view := plainView(h)
	for _, want := range []string{
		"Home › Table",
		"Customer Management",
		"Name ↑",
		"Revenue",
		"David Kim",
		"$156,000",
		"4/30/2024",
		"1 of 10 row(s) selected.",
		"Rows per page: 5",
		"Page 1 of 2",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Thomas Anderson") {
		t.Fatalf("expected second page rows hidden, got:\n%s", view)
	}
	if !strings.Contains(view, "[-]  Name") {
		t.Fatalf("expected indeterminate page checkbox, got:\n%s", view)
	}
	if bar := lineWith(view, "Filters:"); !strings.Contains(bar, "Status") || !strings.Contains(bar, "Role") {
		t.Fatalf("expected filter placeholders, got %q", bar)
	}
}

func TestTableViewNoResults(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{Page: catalog.TableID}))
	h.Type("zzz")
	view := plainView(h)
	if !strings.Contains(view, "No results.") {
		t.Fatalf("expected empty message, got:\n%s", view)
	}
	if !strings.Contains(view, "0 of 0 row(s) selected.") || !strings.Contains(view, "Page 1 of 1") {
		t.Fatalf("expected empty summary, got:\n%s", view)
	}
}

func TestTableViewFilterBadges(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{Page: catalog.TableID}))
	press(h, "ctrl+f", "ctrl+g", "ctrl+f", "ctrl+f")
	bar := lineWith(plainView(h), "Filters:")
	if strings.Fields(bar)[1] != "Active" || strings.Fields(bar)[2] != "User" {
		t.Fatalf("expected filter badges, got %q", bar)
	}
}

func TestTraysViewShowsCountsAndCards(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{Page: catalog.TraysID}))
	press(h, " ")
	view := plainView(h)
	for _, want := range []string{
		"Home › Trays",
		"Total 4  Request sent 0  Unassigned 3  Unassigned urgent 1  Requested urgent 1  Assigned 0",
		"Filters: none",
		"[-] Select all  1 selected",
		"2/50",
		"0/48",
		"5 columns × 10 rows",
		"4 columns × 12 rows",
		"MLG_TRAY_1 A1: Unassigned  SAMPLE-A1  (selected)",
		"1 well(s) selected",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
	press(h, "s", "a")
	view = plainView(h)
	if !strings.Contains(lineWith(view, "Filters:"), "Status: unassigned") || !strings.Contains(view, "[x] Select all  4 selected") {
		t.Fatalf("expected filter badge and checked select-all, got:\n%s", view)
	}
}

func TestTrayCardsWrapToWidth(t *testing.T) {
	m := newTestModel(t, Options{Page: catalog.TraysID})
	card := m.renderTrayCard(m.trays.trays[0], false)
	w := lipgloss.Width(card)
	m.width = w*2 + 1
	cards := m.renderTrayCards()
	if got := lipgloss.Width(strings.Split(cards, "\n")[0]); got > m.width {
		t.Fatalf("expected card rows within %d columns, got %d", m.width, got)
	}
	if got := strings.Count(cards, "MLG_TRAY_"); got != 4 {
		t.Fatalf("expected 4 cards, got %d", got)
	}
	if lines := strings.Count(cards, "\n") + 1; lines <= lipgloss.Height(card) {
		t.Fatalf("expected cards to wrap onto a second row, got %d lines", lines)
	}
}

func TestViewRespectsHeight(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{Page: catalog.TraysID, Width: 60, Height: 12}))
	view := plainView(h)
	if lines := strings.Count(view, "\n") + 1; lines > 12 {
		t.Fatalf("expected at most 12 lines, got %d:\n%s", lines, view)
	}
	for _, line := range strings.Split(view, "\n") {
		if w := lipgloss.Width(line); w > 60 {
			t.Fatalf("expected lines within 60 columns, got %d: %q", w, line)
		}
	}
}

func TestBreadcrumbFollowsMode(t *testing.T) {
	m := newTestModel(t, Options{})
	m.openPage(catalog.TraysID)
	if got := m.breadcrumb(); got != "Home › Trays" {
		t.Fatalf("expected trays breadcrumb, got %q", got)
	}
	m.closePage()
	if got := m.breadcrumb(); got != "Home" {
		t.Fatalf("expected home breadcrumb, got %q", got)
	}
}
