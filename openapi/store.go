package openapi

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jakenesler/mailschema/internal"
)

// Store holds the index of the built-in catalog next to the indices of any
// OpenAPI documents loaded from disk, e.g. a published version of the API to
// compare against.
type Store struct {
	sources map[string]string
	indices map[string]*Index
	mu      sync.RWMutex
}

// NewStore creates a store serving the catalog under BuiltinSpec and the
// documents in sources (name -> file path) once loaded.
func NewStore(c *Catalog, sources map[string]string) *Store {
	return &Store{
		sources: sources,
		indices: map[string]*Index{BuiltinSpec: c.Index()},
	}
}

// LoadAll reads and parses every configured document. Failures are logged
// and leave the other documents loaded.
func (s *Store) LoadAll(ctx context.Context) {
	for name, path := range s.sources {
		if err := s.load(ctx, name, path); err != nil {
			internal.Errorf("loading document %s: %v", name, err)
			continue
		}
		if idx := s.GetIndex(name); idx != nil {
			internal.Logf("loaded %s: %d endpoints", name, idx.Count())
		}
	}
}

func (s *Store) load(ctx context.Context, name, path string) error {
	if name == BuiltinSpec {
		return fmt.Errorf("document name %q is reserved", name)
	}

	data, err := ReadDocument(ctx, path)
	if err != nil {
		return err
	}

	idx, err := Parse(ctx, name, data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.indices[name] = idx
	s.mu.Unlock()

	return nil
}

// GetIndex returns the index of a document, or nil.
func (s *Store) GetIndex(name string) *Index {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indices[name]
}

// Names returns the loaded document names, sorted.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.indices))
	for name := range s.indices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Search searches one document, or all of them when spec is empty.
func (s *Store) Search(query, spec string) []EndpointSummary {
	var results []EndpointSummary
	for _, name := range s.Names() {
		if spec != "" && name != spec {
			continue
		}
		if idx := s.GetIndex(name); idx != nil {
			results = append(results, idx.Search(query)...)
		}
	}
	return results
}

// Refresh re-reads a configured document.
func (s *Store) Refresh(ctx context.Context, name string) error {
	if name == BuiltinSpec {
		return fmt.Errorf("%s is compiled in and cannot be refreshed", name)
	}
	path, ok := s.sources[name]
	if !ok {
		return fmt.Errorf("document %q not configured", name)
	}
	return s.load(ctx, name, path)
}

// RefreshAll re-reads every configured document and returns the failures.
func (s *Store) RefreshAll(ctx context.Context) map[string]error {
	errs := make(map[string]error)
	for name, path := range s.sources {
		if err := s.load(ctx, name, path); err != nil {
			errs[name] = err
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
