// Package dispatcher applies backend poll results to the page stores.
package dispatcher

import (
	"reflect"
	"slices"

	"github.com/atomicstack/gridkit/internal/backend"
	"github.com/atomicstack/gridkit/internal/dataset"
	"github.com/atomicstack/gridkit/internal/state"
	"github.com/atomicstack/gridkit/internal/tray"
)

// Result reports which stores changed. Polls that return identical data leave
// the stores untouched and report nothing.
type Result struct {
	CustomersUpdated bool
	TraysUpdated     bool
}

type Dispatcher struct {
	customers state.CustomerStore
	trays     state.TrayStore
}

func New(c state.CustomerStore, t state.TrayStore) *Dispatcher {
	return &Dispatcher{customers: c, trays: t}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case backend.KindCustomers:
		if rows, ok := evt.Data.([]dataset.Customer); ok && !slices.Equal(rows, d.customers.Entries()) {
			d.customers.SetEntries(rows)
			res.CustomersUpdated = true
		}
	case backend.KindTrays:
		if trays, ok := evt.Data.([]tray.Tray); ok && !sameTrays(trays, d.trays.Entries()) {
			d.trays.SetEntries(trays)
			res.TraysUpdated = true
		}
	}
	return res
}

func sameTrays(a, b []tray.Tray) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}
