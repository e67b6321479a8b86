// Package search holds the storefront's shared search query: one mutable
// string written by the navigation search box and read by the product
// listing. The matching predicate lives with the listing, not here.
package search

import "sync"

type State struct {
	mu    sync.RWMutex
	query string
}

func NewState() *State {
	return &State{}
}

func (s *State) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

func (s *State) Set(q string) {
	s.mu.Lock()
	s.query = q
	s.mu.Unlock()
}

// Clear resets the query; an empty query means no filter is active.
func (s *State) Clear() {
	s.Set("")
}
