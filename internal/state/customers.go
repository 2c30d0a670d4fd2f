package state

import (
	"slices"

	"github.com/atomicstack/gridkit/internal/dataset"
)

// CustomerStore holds the customer rows most recently read from the data source.
type CustomerStore interface {
	Entries() []dataset.Customer
	SetEntries([]dataset.Customer)
	Version() int
}

type customerStore struct {
	entries []dataset.Customer
	version int
}

func NewCustomerStore(initial []dataset.Customer) CustomerStore {
	return &customerStore{entries: slices.Clone(initial)}
}

func (s *customerStore) Entries() []dataset.Customer {
	return slices.Clone(s.entries)
}

func (s *customerStore) SetEntries(entries []dataset.Customer) {
	s.entries = slices.Clone(entries)
	s.version++
}

func (s *customerStore) Version() int {
	return s.version
}
