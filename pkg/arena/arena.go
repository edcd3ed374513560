package arena

import (
	"fmt"
	"iter"
)

// Key identifies a value stored in an [Arena]. It pairs a slot index with
// the generation the slot had when the value was inserted, so a Key from
// a removed value never resolves against a later occupant of the slot.
//
// Keys are cheap to copy, comparable, and usable as map keys. The zero
// Key never resolves in any arena.
type Key struct {
	idx uint32
	gen uint32
}

// IsZero reports whether k is the zero Key, which no arena ever issues.
func (k Key) IsZero() bool { return k.gen == 0 }

// String returns the debug form of the key, "<slot>v<generation>"
// (e.g., "3v1"). The form is a diagnostic aid only and is not stable
// across arena implementations.
func (k Key) String() string {
	return fmt.Sprintf("%dv%d", k.idx, k.gen)
}

type slot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// Arena is a generational-key store of values of type T. It is the sole
// owner of the values it holds; [Arena.Get] returns copies (or shared
// pointers, if T is a pointer type).
//
// The zero value is an empty arena ready for use. Arena is not safe for
// concurrent mutation without external synchronization.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

// New creates an empty arena. Equivalent to new(Arena[T]); provided for
// symmetry with the rest of the module's constructors.
func New[T any]() *Arena[T] { return &Arena[T]{} }

// Insert stores v and returns a fresh Key for it. Freed slots are
// recycled under a new generation, so previously issued Keys for the
// slot stay invalid.
func (a *Arena[T]) Insert(v T) Key {
	a.count++
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.value = v
		s.live = true
		return Key{idx: idx, gen: s.gen}
	}
	a.slots = append(a.slots, slot[T]{value: v, gen: 1, live: true})
	return Key{idx: uint32(len(a.slots) - 1), gen: 1}
}

// Get returns the value for k and true, or the zero value and false if k
// does not resolve (unknown slot, stale generation, or removed value).
func (a *Arena[T]) Get(k Key) (T, bool) {
	if s := a.lookup(k); s != nil {
		return s.value, true
	}
	var zero T
	return zero, false
}

// Set replaces the value for k in place, keeping the key valid.
// It reports whether k resolved; a stale key leaves the arena untouched.
func (a *Arena[T]) Set(k Key, v T) bool {
	if s := a.lookup(k); s != nil {
		s.value = v
		return true
	}
	return false
}

// Remove deletes the value for k and returns it. The slot's generation
// is bumped immediately, so k (and any copy of it) stops resolving even
// after the slot is recycled by a later Insert.
func (a *Arena[T]) Remove(k Key) (T, bool) {
	var zero T
	s := a.lookup(k)
	if s == nil {
		return zero, false
	}
	v := s.value
	s.value = zero
	s.live = false
	s.gen++
	a.free = append(a.free, k.idx)
	a.count--
	return v, true
}

// Len returns the number of live values in the arena.
func (a *Arena[T]) Len() int { return a.count }

// All iterates over (Key, value) pairs in slot order. The order is
// unspecified but stable for a given arena state. The arena must not be
// mutated during iteration.
func (a *Arena[T]) All() iter.Seq2[Key, T] {
	return func(yield func(Key, T) bool) {
		for i := range a.slots {
			s := &a.slots[i]
			if !s.live {
				continue
			}
			if !yield(Key{idx: uint32(i), gen: s.gen}, s.value) {
				return
			}
		}
	}
}

// Keys returns the keys of all live values in iteration order.
func (a *Arena[T]) Keys() []Key {
	keys := make([]Key, 0, a.count)
	for k := range a.All() {
		keys = append(keys, k)
	}
	return keys
}

// lookup resolves k to its slot, or nil if the key is stale or unknown.
func (a *Arena[T]) lookup(k Key) *slot[T] {
	if int(k.idx) >= len(a.slots) {
		return nil
	}
	s := &a.slots[k.idx]
	if !s.live || s.gen != k.gen {
		return nil
	}
	return s
}
