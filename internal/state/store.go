// Package state holds the navigable page state: a small key-value store
// backed by the page URL query, readable synchronously and observable.
package state

import (
	"fmt"
	"net/url"
	"sync"
)

// Listener is called after a key changes. value is empty when the key was removed.
type Listener func(key, value string)

// Store is the externalized state a selection is kept in.
type Store interface {
	Get(key string) string
	Set(key, value string, push bool)
	Delete(key string, push bool)
	Subscribe(fn Listener) (unsubscribe func())
}

// URLStore keeps state in the query of a page location.
type URLStore struct {
	mu        sync.Mutex
	loc       *url.URL
	pushes    int
	nextID    int
	listeners map[int]Listener
}

// NewURLStore parses a page location (absolute or path-only).
func NewURLStore(location string) (*URLStore, error) {
	if location == "" {
		location = "/"
	}

	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("parse location: %w", err)
	}
	if u.Path == "" {
		u.Path = "/"
	}

	return &URLStore{
		loc:       u,
		listeners: make(map[int]Listener),
	}, nil
}

func (s *URLStore) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loc.Query().Get(key)
}

// Set writes key=value. Writing the current value is a no-op.
func (s *URLStore) Set(key, value string, push bool) {
	s.write(key, value, push)
}

// Delete removes key. Removing a missing key is a no-op.
func (s *URLStore) Delete(key string, push bool) {
	s.write(key, "", push)
}

func (s *URLStore) write(key, value string, push bool) {
	s.mu.Lock()

	q := s.loc.Query()
	_, present := q[key]
	if (value == "" && !present) || (value != "" && present && q.Get(key) == value) {
		s.mu.Unlock()
		return
	}

	if value == "" {
		q.Del(key)
	} else {
		q.Set(key, value)
	}
	s.loc.RawQuery = q.Encode()
	if push {
		s.pushes++
	}

	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(key, value)
	}
}

func (s *URLStore) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// URL returns the current location, path and fragment preserved.
func (s *URLStore) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loc.String()
}

// Pushes is the number of history entries written so far.
func (s *URLStore) Pushes() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pushes
}
