// Package tray models sample trays as grids of wells and the selection made over them.
package tray

import (
	"fmt"
	"slices"
	"strings"
)

// WellStatus is the assignment state of a single well.
type WellStatus string

const (
	StatusEmpty            WellStatus = "empty"
	StatusUnassigned       WellStatus = "unassigned"
	StatusUnassignedUrgent WellStatus = "unassigned-urgent"
	StatusRequestSent      WellStatus = "request-sent"
	StatusAssigned         WellStatus = "assigned"
)

// Statuses lists every status in display order.
var Statuses = []WellStatus{
	StatusEmpty,
	StatusUnassigned,
	StatusUnassignedUrgent,
	StatusRequestSent,
	StatusAssigned,
}

var statusLabels = map[WellStatus]string{
	StatusEmpty:            "Empty",
	StatusUnassigned:       "Unassigned",
	StatusUnassignedUrgent: "Unassigned Urgent",
	StatusRequestSent:      "Request Sent",
	StatusAssigned:         "Assigned",
}

// ParseStatus validates a status string. Empty input is treated as StatusEmpty.
func ParseStatus(value string) (WellStatus, error) {
	status := WellStatus(strings.ToLower(strings.TrimSpace(value)))
	if status == "" {
		return StatusEmpty, nil
	}
	if _, ok := statusLabels[status]; !ok {
		return "", fmt.Errorf("unknown well status %q", value)
	}
	return status, nil
}

// Label returns the human readable status name.
func (s WellStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Selectable reports whether a well in this status can join a selection.
func (s WellStatus) Selectable() bool {
	return s != StatusEmpty
}

// Well is one position of a tray.
type Well struct {
	ID       string     `json:"id" yaml:"id"`
	Row      int        `json:"row" yaml:"row"`
	Col      string     `json:"col" yaml:"col"`
	Status   WellStatus `json:"status" yaml:"status"`
	SampleID string     `json:"sampleId,omitempty" yaml:"sampleId,omitempty"`
}

// Position renders the well coordinate, e.g. "A1".
func (w Well) Position() string {
	return fmt.Sprintf("%s%d", w.Col, w.Row)
}

// Tray is a rows × columns grid of wells. Rows are numbered from 1.
type Tray struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Columns []string `json:"columns" yaml:"columns"`
	Rows    int      `json:"rows" yaml:"rows"`
	Wells   []Well   `json:"wells" yaml:"wells"`
}

// Cell returns the well at (row, col). When several wells share a position the
// last one listed wins.
func (t Tray) Cell(row int, col string) (Well, bool) {
	for i := len(t.Wells) - 1; i >= 0; i-- {
		if w := t.Wells[i]; w.Row == row && w.Col == col {
			return w, true
		}
	}
	return Well{}, false
}

// Filled counts the wells that hold a sample.
func (t Tray) Filled() int {
	n := 0
	for _, w := range t.Wells {
		if w.Status.Selectable() {
			n++
		}
	}
	return n
}

// Dimensions describes the grid size for card footers.
func (t Tray) Dimensions() string {
	return fmt.Sprintf("%d columns × %d rows", len(t.Columns), t.Rows)
}

// OrderedWells returns the wells by row ascending and then by declared column order.
// Wells in undeclared columns sort after declared ones, keeping their listed order.
func (t Tray) OrderedWells() []Well {
	rank := make(map[string]int, len(t.Columns))
	for i, col := range t.Columns {
		rank[col] = i
	}
	colRank := func(col string) int {
		if r, ok := rank[col]; ok {
			return r
		}
		return len(t.Columns)
	}
	out := slices.Clone(t.Wells)
	slices.SortStableFunc(out, func(a, b Well) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return colRank(a.Col) - colRank(b.Col)
	})
	return out
}

// Grid builds an all-empty tray with wells keyed "<prefix>-<col><row>".
func Grid(id, name, prefix string, columns []string, rows int) Tray {
	t := Tray{ID: id, Name: name, Columns: slices.Clone(columns), Rows: rows}
	t.Wells = make([]Well, 0, len(columns)*rows)
	for row := 1; row <= rows; row++ {
		for _, col := range columns {
			t.Wells = append(t.Wells, Well{
				ID:     fmt.Sprintf("%s-%s%d", prefix, col, row),
				Row:    row,
				Col:    col,
				Status: StatusEmpty,
			})
		}
	}
	return t
}

// Occupy sets the status and sample of the well at (row, col), returning false
// when no such well exists.
func (t *Tray) Occupy(row int, col string, status WellStatus, sampleID string) bool {
	for i := len(t.Wells) - 1; i >= 0; i-- {
		if t.Wells[i].Row == row && t.Wells[i].Col == col {
			t.Wells[i].Status = status
			t.Wells[i].SampleID = sampleID
			return true
		}
	}
	return false
}

// SelectableIDs returns every non-empty well id across trays in deterministic order.
func SelectableIDs(trays []Tray) []string {
	var ids []string
	for _, t := range trays {
		for _, w := range t.OrderedWells() {
			if w.Status.Selectable() {
				ids = append(ids, w.ID)
			}
		}
	}
	return ids
}

// Find locates a well by id.
func Find(trays []Tray, id string) (Well, bool) {
	for _, t := range trays {
		for _, w := range t.Wells {
			if w.ID == id {
				return w, true
			}
		}
	}
	return Well{}, false
}
