package directory

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/octobees/roofcompare/internal/entity"
)

// Store exposes read-only queries over the company dataset. Queries operate
// on an immutable snapshot; Replace swaps the snapshot wholesale when an
// admin uploads a fresh dataset.
type Store struct {
	mu        sync.RWMutex
	companies []entity.Company
}

// NewStore wraps an already-loaded dataset.
func NewStore(companies []entity.Company) *Store {
	return &Store{companies: companies}
}

// Replace swaps the dataset snapshot. In-flight queries finish against the
// old snapshot.
func (s *Store) Replace(companies []entity.Company) {
	s.mu.Lock()
	s.companies = companies
	s.mu.Unlock()
}

func (s *Store) snapshot() []entity.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.companies
}

// Load reads the dataset file and builds a store. Any read or decode error is
// returned to the caller, which treats it as fatal: the dataset is a
// deployment-time artifact and a broken file means nothing can be served.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	var companies []entity.Company
	if err := json.Unmarshal(data, &companies); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}

	return NewStore(companies), nil
}

// All returns every company in dataset file order.
func (s *Store) All() []entity.Company {
	return s.snapshot()
}

// Len reports the number of companies in the dataset.
func (s *Store) Len() int {
	return len(s.snapshot())
}

// BySlug returns the first company whose slug matches exactly. The match is
// case-sensitive and duplicate slugs resolve to the earliest dataset entry.
func (s *Store) BySlug(slug string) (entity.Company, bool) {
	for _, c := range s.snapshot() {
		if c.Slug == slug {
			return c, true
		}
	}
	return entity.Company{}, false
}

// ByCity returns all companies matching both slugs, in dataset file order.
// An unknown city yields an empty slice, not an error.
func (s *Store) ByCity(stateSlug, citySlug string) []entity.Company {
	var out []entity.Company
	for _, c := range s.snapshot() {
		if c.StateSlug == stateSlug && c.CitySlug == citySlug {
			out = append(out, c)
		}
	}
	return out
}

// ByServiceTier returns companies offering at least one service with the
// given tier value.
func (s *Store) ByServiceTier(value int) []entity.Company {
	var out []entity.Company
	for _, c := range s.snapshot() {
		if c.HasService(value) {
			out = append(out, c)
		}
	}
	return out
}

// Cities derives the city index in first-seen order, counting the companies
// grouped under each (state_slug, city_slug) pair.
func (s *Store) Cities() []entity.City {
	index := make(map[string]int)
	var cities []entity.City
	for _, c := range s.snapshot() {
		key := c.StateSlug + "/" + c.CitySlug
		if i, ok := index[key]; ok {
			cities[i].Count++
			continue
		}
		index[key] = len(cities)
		cities = append(cities, entity.City{
			City:      c.City,
			CitySlug:  c.CitySlug,
			State:     c.State,
			StateSlug: c.StateSlug,
			Count:     1,
		})
	}
	return cities
}

// States returns the distinct state display names sorted lexicographically.
func (s *Store) States() []string {
	seen := make(map[string]struct{})
	var states []string
	for _, c := range s.snapshot() {
		if _, ok := seen[c.State]; ok {
			continue
		}
		seen[c.State] = struct{}{}
		states = append(states, c.State)
	}
	sort.Strings(states)
	return states
}
