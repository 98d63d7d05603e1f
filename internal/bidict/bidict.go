// Package bidict provides a map with an automatically maintained reverse
// index. Unlike a one-to-one bidirectional map, several keys may share a
// value; the reverse index lists them in the order they were set.
package bidict

import "slices"

// Bidict maps keys to values and values back to the keys holding them.
// It is not safe for concurrent use.
type Bidict[K, V comparable] struct {
	forward map[K]V
	inverse map[V][]K
}

// New creates an empty Bidict.
func New[K, V comparable]() *Bidict[K, V] {
	return &Bidict[K, V]{
		forward: make(map[K]V),
		inverse: make(map[V][]K),
	}
}

// Set maps key to value. If key was already mapped, it is first removed from
// the reverse entry of its old value, then appended to the entry of value.
func (b *Bidict[K, V]) Set(key K, value V) {
	if old, ok := b.forward[key]; ok {
		b.unlink(key, old)
	}
	b.forward[key] = value
	b.inverse[value] = append(b.inverse[value], key)
}

// Get returns the value mapped to key.
func (b *Bidict[K, V]) Get(key K) (V, bool) {
	v, ok := b.forward[key]
	return v, ok
}

// Has reports whether key is mapped.
func (b *Bidict[K, V]) Has(key K) bool {
	_, ok := b.forward[key]
	return ok
}

// Delete removes key. It reports whether the key was present.
func (b *Bidict[K, V]) Delete(key K) bool {
	old, ok := b.forward[key]
	if !ok {
		return false
	}
	delete(b.forward, key)
	b.unlink(key, old)
	return true
}

// Inverse returns the keys currently mapped to value, in the order they were
// last set. It returns nil when no key maps to value.
func (b *Bidict[K, V]) Inverse(value V) []K {
	return slices.Clone(b.inverse[value])
}

// Len returns the number of keys.
func (b *Bidict[K, V]) Len() int {
	return len(b.forward)
}

// unlink removes key from the reverse entry of value. Entries that become
// empty are dropped so the reverse index only holds live values.
func (b *Bidict[K, V]) unlink(key K, value V) {
	keys := b.inverse[value]
	if i := slices.Index(keys, key); i >= 0 {
		keys = slices.Delete(keys, i, i+1)
	}
	if len(keys) == 0 {
		delete(b.inverse, value)
		return
	}
	b.inverse[value] = keys
}
