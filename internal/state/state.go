// Package state holds the single in-memory source of truth: settings, the
// checklist document and the UI selection. All mutation funnels through
// Update with a reducer-style function returning the full next state; there
// is no partial-patch input form.
package state

import (
	"reflect"
	"sync"

	"packlist/internal/model"
)

// Selection is the renderer's active category filter ("" = all).
type Selection struct {
	Cat string
}

type State struct {
	Settings  model.Settings
	Data      *model.Document
	Selection Selection
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	out := *s
	out.Data = s.Data.Clone()
	return &out
}

type subscriber struct {
	id int
	fn func(prev, next *State)
}

// Store is the synchronization point for all state mutation. Snapshots
// handed out by Get are treated as immutable: reducers build a fresh next
// state instead of editing the previous one in place.
type Store struct {
	mu     sync.Mutex
	cur    *State
	subs   []subscriber
	nextID int
}

// New deep-copies initial so later external mutation of the passed object
// cannot silently corrupt store state.
func New(initial *State) *Store {
	if initial == nil {
		initial = &State{Settings: model.DefaultSettings()}
	}
	return &Store{cur: initial.Clone()}
}

// Get returns the current snapshot reference.
func (s *Store) Get() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Update applies fn to the current state and commits its result. A nil fn,
// a nil result, or a result reference-identical to the previous state
// short-circuits without notifying subscribers. On a genuine change every
// subscriber runs synchronously, in subscription order, with (prev, next);
// a panicking subscriber is swallowed so one failing observer cannot block
// the others.
func (s *Store) Update(fn func(prev *State) *State) *State {
	if fn == nil {
		return s.Get()
	}
	s.mu.Lock()
	prev := s.cur
	next := fn(prev)
	if next == nil || next == prev {
		s.mu.Unlock()
		return prev
	}
	s.cur = next
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		notify(sub.fn, prev, next)
	}
	return next
}

func notify(fn func(prev, next *State), prev, next *State) {
	defer func() { _ = recover() }()
	fn(prev, next)
}

// Subscribe registers fn and returns its unsubscribe function.
func (s *Store) Subscribe(fn func(prev, next *State)) func() {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.subs {
			if s.subs[i].id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Select layers fine-grained change notification on Subscribe: it recomputes
// the selected slice on every store change and forwards to onChange only
// when the slice differs under eq (default: reflect.DeepEqual). Lets a
// consumer react to just settings or just data changing without re-deriving
// unrelated state.
func Select[T any](s *Store, selector func(*State) T, onChange func(T), eq func(a, b T) bool) func() {
	if selector == nil || onChange == nil {
		return func() {}
	}
	if eq == nil {
		eq = func(a, b T) bool { return reflect.DeepEqual(a, b) }
	}
	last := selector(s.Get())
	return s.Subscribe(func(_, next *State) {
		cur := selector(next)
		if eq(last, cur) {
			return
		}
		last = cur
		onChange(cur)
	})
}
