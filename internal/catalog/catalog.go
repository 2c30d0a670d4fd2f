// Package catalog lists the page templates reachable from the root menu.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

const (
	RootID  = "root"
	TableID = "table"
	TraysID = "trays"
)

// Page describes one catalog entry.
type Page struct {
	ID          string
	Title       string
	Description string
}

// Label is the menu text for the page.
func (p Page) Label() string {
	if p.Description == "" {
		return p.Title
	}
	return fmt.Sprintf("%s: %s", p.Title, p.Description)
}

// Registry exposes lookup utilities for page definitions.
type Registry struct {
	pages []Page
	byID  map[string]int
}

// NewRegistry builds a registry from pages in menu order. Later duplicates replace
// earlier entries in place.
func NewRegistry(pages ...Page) *Registry {
	r := &Registry{byID: make(map[string]int, len(pages))}
	for _, p := range pages {
		if i, ok := r.byID[p.ID]; ok {
			r.pages[i] = p
			continue
		}
		r.byID[p.ID] = len(r.pages)
		r.pages = append(r.pages, p)
	}
	return r
}

// Default returns the built-in catalog.
func Default() *Registry {
	return NewRegistry(
		Page{ID: TableID, Title: "Customer Management", Description: "Manage your customers, their accounts, and revenue"},
		Page{ID: TraysID, Title: "Trays", Description: "Select wells and review sample status"},
	)
}

// Pages returns the entries in menu order.
func (r *Registry) Pages() []Page {
	return append([]Page(nil), r.pages...)
}

// Find locates a page by ID.
func (r *Registry) Find(id string) (Page, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Page{}, false
	}
	return r.pages[i], true
}

// IDs returns the known page identifiers sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.pages))
	for _, p := range r.pages {
		ids = append(ids, p.ID)
	}
	sort.Strings(ids)
	return ids
}

// Validate reports an error for ids that are neither empty, the root, nor a page.
func (r *Registry) Validate(id string) error {
	if id == "" || id == RootID {
		return nil
	}
	if _, ok := r.Find(id); !ok {
		return fmt.Errorf("unknown page %q (available: %s)", id, strings.Join(r.IDs(), ", "))
	}
	return nil
}

// Crumb is one breadcrumb segment. The final crumb has no Path.
type Crumb struct {
	Label string
	Path  string
}

// FormatSegment turns a path segment such as "patient-details" into "Patient Details".
func FormatSegment(segment string) string {
	words := strings.Split(segment, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Breadcrumbs derives the trail for a slash separated path, led by Home.
func Breadcrumbs(path string) []Crumb {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 {
		return []Crumb{{Label: "Home"}}
	}
	crumbs := []Crumb{{Label: "Home", Path: "/"}}
	current := ""
	for i, s := range segments {
		current += "/" + s
		crumb := Crumb{Label: FormatSegment(s)}
		if i < len(segments)-1 {
			crumb.Path = current
		}
		crumbs = append(crumbs, crumb)
	}
	return crumbs
}

// Trail joins crumb labels for display.
func Trail(crumbs []Crumb) string {
	labels := make([]string, len(crumbs))
	for i, c := range crumbs {
		labels[i] = c.Label
	}
	return strings.Join(labels, " › ")
}
