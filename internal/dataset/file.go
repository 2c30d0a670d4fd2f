package dataset

import (
	"fmt"
	"os"

	"github.com/atomicstack/gridkit/internal/tray"
	"gopkg.in/yaml.v3"
)

type fileDocument struct {
	Customers []Customer   `yaml:"customers"`
	Trays     []trayRecord `yaml:"trays"`
}

type trayRecord struct {
	ID       string       `yaml:"id"`
	Name     string       `yaml:"name"`
	Columns  []string     `yaml:"columns"`
	Rows     int          `yaml:"rows"`
	Wells    []wellRecord `yaml:"wells"`
	Occupied []wellRecord `yaml:"occupied"`
}

type wellRecord struct {
	ID       string `yaml:"id"`
	Row      int    `yaml:"row"`
	Col      string `yaml:"col"`
	Status   string `yaml:"status"`
	SampleID string `yaml:"sampleId"`
}

// LoadFile reads customers and trays from a YAML document. Trays without an explicit
// wells list are generated from columns × rows, then patched by occupied entries.
func LoadFile(path string) (Provider, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	var doc fileDocument
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}

	trays := make([]tray.Tray, 0, len(doc.Trays))
	for _, rec := range doc.Trays {
		t, err := rec.build()
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", path, err)
		}
		trays = append(trays, t)
	}
	for i, c := range doc.Customers {
		if c.ID == "" {
			return nil, fmt.Errorf("dataset %s: customer %d has no id", path, i)
		}
	}
	return static{customers: doc.Customers, trays: trays}, nil
}

func (r trayRecord) build() (tray.Tray, error) {
	if r.ID == "" {
		return tray.Tray{}, fmt.Errorf("tray %q has no id", r.Name)
	}
	if r.Rows > 0 && len(r.Columns) == 0 {
		return tray.Tray{}, fmt.Errorf("tray %s: rows without columns", r.ID)
	}
	name := r.Name
	if name == "" {
		name = r.ID
	}
	var t tray.Tray
	if len(r.Wells) > 0 {
		t = tray.Tray{ID: r.ID, Name: name, Columns: r.Columns, Rows: r.Rows}
		for _, w := range r.Wells {
			well, err := w.well(r.ID)
			if err != nil {
				return tray.Tray{}, err
			}
			t.Wells = append(t.Wells, well)
		}
	} else {
		t = tray.Grid(r.ID, name, r.ID, r.Columns, r.Rows)
	}
	for _, w := range r.Occupied {
		well, err := w.well(r.ID)
		if err != nil {
			return tray.Tray{}, err
		}
		if !t.Occupy(well.Row, well.Col, well.Status, well.SampleID) {
			return tray.Tray{}, fmt.Errorf("tray %s: no well at %s", r.ID, well.Position())
		}
	}
	return t, nil
}

func (w wellRecord) well(trayID string) (tray.Well, error) {
	status, err := tray.ParseStatus(w.Status)
	if err != nil {
		return tray.Well{}, fmt.Errorf("tray %s: %w", trayID, err)
	}
	id := w.ID
	if id == "" {
		id = fmt.Sprintf("%s-%s%d", trayID, w.Col, w.Row)
	}
	sample := w.SampleID
	if sample == "" && status.Selectable() {
		sample = fmt.Sprintf("SAMPLE-%s%d", w.Col, w.Row)
	}
	return tray.Well{ID: id, Row: w.Row, Col: w.Col, Status: status, SampleID: sample}, nil
}

// Watch returns a provider that rereads path on every call, so a poller sees edits
// to the file without restarting.
func Watch(path string) Provider {
	return watchedFile(path)
}

type watchedFile string

func (p watchedFile) Customers() ([]Customer, error) {
	data, err := LoadFile(string(p))
	if err != nil {
		return nil, err
	}
	return data.Customers()
}

func (p watchedFile) Trays() ([]tray.Tray, error) {
	data, err := LoadFile(string(p))
	if err != nil {
		return nil, err
	}
	return data.Trays()
}
