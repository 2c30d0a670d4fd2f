package catalog

import (
	"reflect"
	"testing"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	if got := r.IDs(); !reflect.DeepEqual(got, []string{TableID, TraysID}) {
		t.Fatalf("unexpected ids %v", got)
	}
	p, ok := r.Find(TraysID)
	if !ok || p.Title != "Trays" {
		t.Fatalf("expected trays page, got %+v", p)
	}
	if _, ok := r.Find("charts"); ok {
		t.Fatal("expected unknown page to be missing")
	}
	for _, id := range []string{"", RootID, TableID} {
		if err := r.Validate(id); err != nil {
			t.Fatalf("expected %q valid, got %v", id, err)
		}
	}
	if err := r.Validate("charts"); err == nil {
		t.Fatal("expected error for unknown page")
	}
}

func TestRegistryReplacesDuplicates(t *testing.T) {
	r := NewRegistry(Page{ID: "a", Title: "A"}, Page{ID: "b", Title: "B"}, Page{ID: "a", Title: "A2"})
	pages := r.Pages()
	if len(pages) != 2 || pages[0].Title != "A2" {
		t.Fatalf("unexpected pages %+v", pages)
	}
	if got := (Page{Title: "X"}).Label(); got != "X" {
		t.Fatalf("expected bare title, got %q", got)
	}
}

func TestBreadcrumbs(t *testing.T) {
	if got := Breadcrumbs("/"); !reflect.DeepEqual(got, []Crumb{{Label: "Home"}}) {
		t.Fatalf("unexpected root crumbs %v", got)
	}
	got := Breadcrumbs("/dashboard/patient-details")
	want := []Crumb{
		{Label: "Home", Path: "/"},
		{Label: "Dashboard", Path: "/dashboard"},
		{Label: "Patient Details"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if trail := Trail(got); trail != "Home › Dashboard › Patient Details" {
		t.Fatalf("unexpected trail %q", trail)
	}
}
