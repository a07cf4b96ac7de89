package store

import (
	"iter"
	"sync"

	"go-property-analyzer/internal/apperr"
	"go-property-analyzer/internal/model"
)

// Datasets is the session registry of loaded datasets, keyed by name.
// Iteration follows first-registration order; re-registering a name
// replaces the dataset in its original slot.
type Datasets struct {
	mu    sync.RWMutex
	order []string
	byKey map[string]*model.Dataset
}

// NewDatasets returns an empty registry.
func NewDatasets() *Datasets {
	return &Datasets{byKey: make(map[string]*model.Dataset)}
}

// Register inserts ds, or replaces the dataset already held under ds.Name.
func (s *Datasets) Register(ds *model.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byKey[ds.Name]; !exists {
		s.order = append(s.order, ds.Name)
	}
	s.byKey[ds.Name] = ds
}

// Remove drops the named dataset. It reports whether anything was removed.
func (s *Datasets) Remove(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byKey[name]; !exists {
		return false
	}
	delete(s.byKey, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the named dataset or an error wrapping apperr.ErrNotFound.
func (s *Datasets) Get(name string) (*model.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ds, ok := s.byKey[name]
	if !ok {
		return nil, apperr.NotFoundf("dataset %q", name)
	}
	return ds, nil
}

// All yields (name, dataset) pairs in registration order. Each call
// iterates a snapshot taken when iteration starts, so the sequence can be
// ranged over any number of times.
func (s *Datasets) All() iter.Seq2[string, *model.Dataset] {
	return func(yield func(string, *model.Dataset) bool) {
		names, sets := s.snapshot()
		for i, name := range names {
			if !yield(name, sets[i]) {
				return
			}
		}
	}
}

// Names returns the registered names in registration order.
func (s *Datasets) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}

// Len returns the number of registered datasets.
func (s *Datasets) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func (s *Datasets) snapshot() ([]string, []*model.Dataset) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := append([]string(nil), s.order...)
	sets := make([]*model.Dataset, len(names))
	for i, n := range names {
		sets[i] = s.byKey[n]
	}
	return names, sets
}
