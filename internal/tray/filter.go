package tray

import "github.com/atomicstack/gridkit/internal/datagrid"

// Filter panel keys.
const (
	FilterSampleType  = "sampleType"
	FilterTest        = "test"
	FilterStatus      = "status"
	FilterSource      = "source"
	FilterDestination = "destination"
)

// ActiveFilter is one badge of the active filter row.
type ActiveFilter struct {
	Key   string
	Label string
}

// FilterPanel holds the tray page's filter inputs. Empty fields are inactive.
// The panel only records choices; wells are not filtered by it.
type FilterPanel struct {
	SampleType  string `json:"sampleType,omitempty"`
	Test        string `json:"test,omitempty"`
	Status      string `json:"status,omitempty"`
	Source      string `json:"source,omitempty"`
	Destination string `json:"destination,omitempty"`
}

var labs = []datagrid.FilterOption{
	{Value: "lab1", Label: "Lab 1"},
	{Value: "lab2", Label: "Lab 2"},
	{Value: "lab3", Label: "Lab 3"},
}

// FilterSpecs returns the select-style panel fields with their options.
func FilterSpecs() []datagrid.FilterSpec {
	statuses := make([]datagrid.FilterOption, 0, len(Statuses)-1)
	for _, s := range Statuses {
		if s == StatusEmpty {
			continue
		}
		statuses = append(statuses, datagrid.FilterOption{Value: string(s), Label: s.Label()})
	}
	return []datagrid.FilterSpec{
		{Key: FilterStatus, Label: "Status", Options: statuses, Placeholder: "Select status"},
		{Key: FilterSource, Label: "Source", Options: labs, Placeholder: "Select source"},
		{Key: FilterDestination, Label: "Destination", Options: labs, Placeholder: "Select destination"},
	}
}

func (p *FilterPanel) field(key string) *string {
	switch key {
	case FilterSampleType:
		return &p.SampleType
	case FilterTest:
		return &p.Test
	case FilterStatus:
		return &p.Status
	case FilterSource:
		return &p.Source
	case FilterDestination:
		return &p.Destination
	}
	return nil
}

// Get returns the value of key, empty when inactive or unknown.
func (p FilterPanel) Get(key string) string {
	if f := p.field(key); f != nil {
		return *f
	}
	return ""
}

// Set assigns key. The "all" sentinel clears the field. Unknown keys report false.
func (p *FilterPanel) Set(key, value string) bool {
	f := p.field(key)
	if f == nil {
		return false
	}
	if value == datagrid.AllValue {
		value = ""
	}
	*f = value
	return true
}

// Remove clears a single field.
func (p *FilterPanel) Remove(key string) bool {
	return p.Set(key, "")
}

// Clear resets every field.
func (p *FilterPanel) Clear() {
	*p = FilterPanel{}
}

// Active returns the badges for non-empty fields in panel order.
func (p FilterPanel) Active() []ActiveFilter {
	var out []ActiveFilter
	add := func(key, prefix, value string) {
		if value != "" {
			out = append(out, ActiveFilter{Key: key, Label: prefix + ": " + value})
		}
	}
	add(FilterSampleType, "Type", p.SampleType)
	add(FilterTest, "Test", p.Test)
	add(FilterStatus, "Status", p.Status)
	add(FilterSource, "Source", p.Source)
	add(FilterDestination, "Destination", p.Destination)
	return out
}

// Cycle advances a select-style field to its next option, wrapping through "all".
func (p *FilterPanel) Cycle(key string) (string, bool) {
	for _, spec := range FilterSpecs() {
		if spec.Key != key {
			continue
		}
		current := p.Get(key)
		if current == "" {
			current = datagrid.AllValue
		}
		next := spec.NextValue(current)
		p.Set(key, next)
		return p.Get(key), true
	}
	return "", false
}
