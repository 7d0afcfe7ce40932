package state

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/Makepad-fr/itemdeck/internal/logs"
	"github.com/Makepad-fr/itemdeck/internal/store"
)

// Slice is one named piece of state mirrored to a Store.
//
// The stored value is read once in Open. Every Set writes the serialized
// value back; storage errors are logged and dropped so the in-memory value
// stays authoritative for the session.
type Slice[T any] struct {
	mu       sync.Mutex
	key      string
	st       store.Store
	value    T
	revision uint64
	nextSub  int
	subs     map[int]func(T)
}

// Open loads key from st, falling back to initial when the key is missing,
// unreadable or does not parse.
func Open[T any](st store.Store, key string, initial T) *Slice[T] {
	s := &Slice[T]{key: key, st: st, value: initial, subs: map[int]func(T){}}
	if st == nil {
		return s
	}
	raw, err := st.Get(key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logs.Logger.Printf("state %s: read failed, using initial value: %v", key, err)
		}
		return s
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logs.Logger.Printf("state %s: stored value unparsable, using initial value: %v", key, err)
		return s
	}
	s.value = v
	return s
}

func (s *Slice[T]) Key() string { return s.key }

func (s *Slice[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Revision increases on every Set; derived views use it as a cache key.
func (s *Slice[T]) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// Set replaces the value, persists it and notifies subscribers.
func (s *Slice[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	s.revision++
	subs := make([]func(T), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	s.persist(v)
	for _, fn := range subs {
		fn(v)
	}
}

// Update applies fn to the current value and stores the result.
func (s *Slice[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}

// Subscribe registers fn to run after every change. The returned func
// removes it again.
func (s *Slice[T]) Subscribe(fn func(T)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Slice[T]) persist(v T) {
	if s.st == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		logs.Logger.Printf("state %s: marshal failed: %v", s.key, err)
		return
	}
	if err := s.st.Set(s.key, b); err != nil {
		logs.Logger.Printf("state %s: write failed: %v", s.key, err)
	}
}
