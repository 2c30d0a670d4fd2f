package state

import "github.com/atomicstack/gridkit/internal/tray"

// TrayStore holds the trays most recently read from the data source.
type TrayStore interface {
	Entries() []tray.Tray
	SetEntries([]tray.Tray)
	Version() int
}

type trayStore struct {
	entries []tray.Tray
	version int
}

func NewTrayStore(initial []tray.Tray) TrayStore {
	return &trayStore{entries: cloneTrays(initial)}
}

func (s *trayStore) Entries() []tray.Tray {
	return cloneTrays(s.entries)
}

func (s *trayStore) SetEntries(entries []tray.Tray) {
	s.entries = cloneTrays(entries)
	s.version++
}

func (s *trayStore) Version() int {
	return s.version
}

// cloneTrays copies the well slices too so callers cannot reach into the store.
func cloneTrays(trays []tray.Tray) []tray.Tray {
	if len(trays) == 0 {
		return nil
	}
	dup := make([]tray.Tray, len(trays))
	for i, t := range trays {
		t.Columns = append([]string(nil), t.Columns...)
		t.Wells = append([]tray.Well(nil), t.Wells...)
		dup[i] = t
	}
	return dup
}
