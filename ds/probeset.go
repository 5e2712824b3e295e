package ds

import (
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// maxLoadFactor bounds occupied slots (tombstones included) against capacity.
// Capacities are odd primes, so the quadratic offsets k^2 mod capacity reach
// (capacity+1)/2 distinct buckets; keeping the table at most half full means
// every probe path has an empty bucket to stop at.
const maxLoadFactor = 0.5

const initialCapacity = 17

type bucketState uint8

const (
	bucketEmpty bucketState = iota
	bucketOccupied
	bucketTombstone
)

// bucket is a three-state slot: never occupied, holding a live value, or
// tombstoned after a removal.
type bucket[T comparable] struct {
	state bucketState
	value T
}

// ProbingSet is a hash set built on open addressing: every element lives
// directly in the bucket array and collisions walk the quadratic sequence
// (hash + k^2) mod capacity for k = 1, 2, 3, ... Removal leaves a tombstone
// rather than an empty bucket so that probe paths running through the slot
// stay intact. The table grows by reallocating at the next prime capacity
// and rehashing every live element; it never shrinks.
type ProbingSet[T comparable] struct {
	buckets []bucket[T]
	size    int // live elements
	loaded  int // live + tombstoned slots
}

// NewProbingSet returns an empty set. Nothing is allocated until the first Add.
func NewProbingSet[T comparable]() *ProbingSet[T] {
	return &ProbingSet[T]{}
}

// Len returns the number of live elements.
func (s *ProbingSet[T]) Len() int {
	return s.size
}

// IsEmpty reports whether the set holds no elements.
func (s *ProbingSet[T]) IsEmpty() bool {
	return s.size == 0
}

// Clear drops the table entirely; the set behaves as freshly constructed.
func (s *ProbingSet[T]) Clear() {
	s.buckets = nil
	s.size = 0
	s.loaded = 0
}

func (s *ProbingSet[T]) hash(item T) uint64 {
	return xxhash.Sum64String(fmt.Sprintf("%v", item))
}

// Add inserts item and reports whether it was absent. The table grows first
// whenever the insert would push the occupied slot count past the load
// factor, so the probe loop always has an empty bucket to terminate at.
func (s *ProbingSet[T]) Add(item T) bool {
	if float64(s.loaded+1) > maxLoadFactor*float64(len(s.buckets)) {
		s.grow()
	}

	h := s.hash(item)
	capacity := uint64(len(s.buckets))
	for k := uint64(1); ; k++ {
		b := &s.buckets[(h+k*k)%capacity]
		switch b.state {
		case bucketEmpty:
			b.state = bucketOccupied
			b.value = item
			s.size++
			s.loaded++
			return true
		case bucketOccupied:
			if b.value == item {
				return false
			}
		}
	}
}

// Contains reports membership. Tombstones never stop the probe; only an
// empty bucket or a match does.
func (s *ProbingSet[T]) Contains(item T) bool {
	if s.size == 0 {
		return false
	}

	h := s.hash(item)
	capacity := uint64(len(s.buckets))
	for k := uint64(1); ; k++ {
		b := &s.buckets[(h+k*k)%capacity]
		switch b.state {
		case bucketEmpty:
			return false
		case bucketOccupied:
			if b.value == item {
				return true
			}
		}
	}
}

// Remove tombstones the item's bucket if present. The slot stays counted in
// loaded: probes for other values sharing this probe path must keep walking
// past it, and only a resize turns tombstones back into empty buckets.
func (s *ProbingSet[T]) Remove(item T) bool {
	if s.size == 0 {
		return false
	}

	h := s.hash(item)
	capacity := uint64(len(s.buckets))
	for k := uint64(1); ; k++ {
		b := &s.buckets[(h+k*k)%capacity]
		switch b.state {
		case bucketEmpty:
			return false
		case bucketOccupied:
			if b.value == item {
				var zero T
				b.state = bucketTombstone
				b.value = zero
				s.size--
				return true
			}
		}
	}
}

// grow swaps in a fresh table at the next capacity, resets the counters and
// replays every live value through Add. Tombstones are dropped, not migrated.
func (s *ProbingSet[T]) grow() {
	old := s.buckets
	s.buckets = make([]bucket[T], s.nextCapacity())
	s.size = 0
	s.loaded = 0

	for i := range old {
		if old[i].state == bucketOccupied {
			s.Add(old[i].value)
		}
	}
}

func (s *ProbingSet[T]) nextCapacity() int {
	capacity := len(s.buckets)
	if capacity == 0 {
		return initialCapacity
	}
	if capacity > math.MaxInt/2 {
		panic("ds: probing set capacity overflow")
	}
	return nextPrime(2*capacity + 1)
}

// nextPrime returns the smallest prime >= n, for odd n.
func nextPrime(n int) int {
	for !isPrime(n) {
		n += 2
	}
	return n
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
