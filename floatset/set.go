// Package floatset provides a hash-bucketed set for value types that carry
// their own hash/equality contract. Go's built-in map hashes keys bit-exactly
// and cannot be handed a caller-supplied hash function, so types like
// approxfloat.Float, whose equality is wider than bit identity, need their
// own container.
package floatset

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Item is the contract a stored value must satisfy. The set calls Equals only
// on pairs with equal HashCode; any two values the caller considers equal
// must therefore hash identically, or the set will hold both.
type Item[T any] interface {
	HashCode() uint64
	Equals(T) bool
}

// Set is a hash set over T. The zero value is ready to use. Not safe for
// concurrent mutation.
type Set[T Item[T]] struct {
	// buckets are keyed by the full hash code; collisions within a bucket are
	// resolved by a linear Equals scan.
	buckets map[uint64][]T
	size    int
}

// New returns an empty set.
func New[T Item[T]]() *Set[T] {
	return &Set[T]{buckets: make(map[uint64][]T)}
}

// Add inserts val and reports whether it was inserted, false meaning an equal
// value with the same hash code was already present.
func (s *Set[T]) Add(val T) bool {
	if s.buckets == nil {
		s.buckets = make(map[uint64][]T)
	}
	code := val.HashCode()
	for _, member := range s.buckets[code] {
		if member.Equals(val) {
			return false
		}
	}
	s.buckets[code] = append(s.buckets[code], val)
	s.size++
	return true
}

// Contains reports whether a value equal to val, under val's hash code, is in
// the set.
func (s *Set[T]) Contains(val T) bool {
	for _, member := range s.buckets[val.HashCode()] {
		if member.Equals(val) {
			return true
		}
	}
	return false
}

// Remove deletes the value equal to val from val's bucket and reports whether
// anything was removed.
func (s *Set[T]) Remove(val T) bool {
	code := val.HashCode()
	bucket := s.buckets[code]
	for i, member := range bucket {
		if !member.Equals(val) {
			continue
		}
		bucket[i] = bucket[len(bucket)-1]
		bucket = bucket[:len(bucket)-1]
		if len(bucket) == 0 {
			delete(s.buckets, code)
		} else {
			s.buckets[code] = bucket
		}
		s.size--
		return true
	}
	return false
}

// Len returns the number of stored values.
func (s *Set[T]) Len() int {
	return s.size
}

// Clear removes all values, keeping the allocated buckets.
func (s *Set[T]) Clear() {
	maps.Clear(s.buckets)
	s.size = 0
}

// Values returns the stored values, buckets visited in ascending hash order
// so the result is deterministic for a given content.
func (s *Set[T]) Values() []T {
	codes := maps.Keys(s.buckets)
	slices.Sort(codes)
	vals := make([]T, 0, s.size)
	for _, code := range codes {
		vals = append(vals, s.buckets[code]...)
	}
	return vals
}
