// Package arena provides a generational-key arena: an owning store that
// hands out stable, copyable keys for its values.
//
// # Overview
//
// An [Arena] stores values in slots and returns a [Key] for each
// insertion. A Key stays valid for exactly as long as its value lives in
// the arena: removing a value bumps the slot's generation, so a stale Key
// can never alias a newer occupant of the same slot. This makes Keys safe
// to embed in other values (for example, as edge lists in a graph)
// without any risk of dangling references silently resolving to the
// wrong value.
//
// # Basic Usage
//
// Insert values with [Arena.Insert], look them up with [Arena.Get], and
// iterate with [Arena.All]:
//
//	var a arena.Arena[string]
//	k := a.Insert("hello")
//	v, ok := a.Get(k) // "hello", true
//	a.Remove(k)
//	_, ok = a.Get(k) // false: the generation no longer matches
//
// The zero value of Arena is ready to use.
//
// # Keys
//
// Keys are small comparable structs and work as map keys, which is how
// callers attach transient per-key bookkeeping (visited sets, counters)
// without touching the stored values themselves. A Key minted by one
// arena carries no meaning in any other arena; the generation check only
// guards against slot reuse within a single arena.
//
// Iteration order is the underlying slot order: unspecified, but stable
// for a given arena state.
package arena
