package datagrid

import (
	"cmp"
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/gridkit/internal/format/table"
)

// AllValue is the filter value meaning "no constraint".
const AllValue = "all"

// MatchFunc decides whether a column value passes a filter holding the accepted values.
type MatchFunc func(value any, accepted []string) bool

// MatchAny is the default MatchFunc: set membership on the value's string form.
func MatchAny(value any, accepted []string) bool {
	text := valueString(value)
	for _, v := range accepted {
		if v == text {
			return true
		}
	}
	return false
}

// Column declares how the engine reads, filters, sorts and displays one field of T.
type Column[T any] struct {
	Key   string
	Title string
	// Value is the accessor used for search, filtering and default sorting.
	Value func(T) any
	// Format renders the display text. Defaults to the string form of Value.
	Format func(T) string
	// Compare overrides the default typed comparison of Value.
	Compare  func(a, b T) int
	Match    MatchFunc
	Sortable bool
	Hideable bool
	Align    table.Alignment
}

func (c Column[T]) value(row T) any {
	if c.Value == nil {
		return nil
	}
	return c.Value(row)
}

// Text returns the display text for row.
func (c Column[T]) Text(row T) string {
	if c.Format != nil {
		return c.Format(row)
	}
	return valueString(c.value(row))
}

func (c Column[T]) compare(a, b T) int {
	if c.Compare != nil {
		return c.Compare(a, b)
	}
	return CompareValues(c.value(a), c.value(b))
}

func (c Column[T]) matches(row T, accepted []string) bool {
	match := c.Match
	if match == nil {
		match = MatchAny
	}
	return match(c.value(row), accepted)
}

// CompareValues orders two accessor values. Values of the same kind compare
// natively (strings, bools, times, numbers); anything else compares by string form.
func CompareValues(a, b any) int {
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	}
	if x, ok := toFloat(a); ok {
		if y, ok := toFloat(b); ok {
			return cmp.Compare(x, y)
		}
	}
	return strings.Compare(valueString(a), valueString(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func valueString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// FilterOption is one selectable value of a FilterSpec.
type FilterOption struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// FilterSpec declares a filterable dimension keyed by column.
type FilterSpec struct {
	Key         string         `json:"key" yaml:"key"`
	Label       string         `json:"label" yaml:"label"`
	Options     []FilterOption `json:"options" yaml:"options"`
	Placeholder string         `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// Choices returns the selectable options led by the "all" sentinel.
func (f FilterSpec) Choices() []FilterOption {
	out := make([]FilterOption, 0, len(f.Options)+1)
	out = append(out, FilterOption{Value: AllValue, Label: "All " + f.Label})
	for _, opt := range f.Options {
		if opt.Value == AllValue {
			continue
		}
		out = append(out, opt)
	}
	return out
}

// LabelFor returns the display label for value, falling back to the placeholder
// for the sentinel.
func (f FilterSpec) LabelFor(value string) string {
	for _, opt := range f.Choices() {
		if opt.Value == value {
			if value == AllValue && f.Placeholder != "" {
				return f.Placeholder
			}
			return opt.Label
		}
	}
	return value
}

// NextValue returns the option after current in Choices order, wrapping around.
func (f FilterSpec) NextValue(current string) string {
	choices := f.Choices()
	for i, opt := range choices {
		if opt.Value == current {
			return choices[(i+1)%len(choices)].Value
		}
	}
	return AllValue
}

func normaliseFilter(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == AllValue {
			return nil
		}
		out = append(out, v)
	}
	return out
}
