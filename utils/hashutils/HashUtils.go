// Package hashutils provides utilities for hashing trait values and
// for folding many hashes into one
package hashutils

import (
	"fmt"
	"hash/fnv"
)

// mix is the 64-bit golden ratio constant used when combining hashes
const mix uint64 = 0x9e3779b97f4a7c15

// foldSeed is the initial seed for every hash fold. Folds always start
// from this constant so that the same inputs produce the same hash.
const foldSeed uint64 = 0

// Combine folds the hash h into seed, returning the new seed. Combine
// is a pure function: it keeps no state between calls.
func Combine(seed, h uint64) uint64 {
	return seed ^ (h + mix + (seed << 6) + (seed >> 2))
}

// Fold combines the given hashes in order, starting from a fixed seed
func Fold(hashes ...uint64) uint64 {
	seed := foldSeed
	for _, h := range hashes {
		seed = Combine(seed, h)
	}
	return seed
}

// Sum returns a hash of a comparable trait value. Within a single
// process, values that compare equal hash equally: the hash is computed
// over the value's %#v rendering, which is identical for equal
// comparable values.
func Sum[T comparable](trait T) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%#v", trait)
	return h.Sum64()
}
