package geowords

import "fmt"

// Triple addressing.
//
// For a vocabulary of n words an address selects a first word, then an
// ordered pair of two further distinct words from the n-1 that remain:
//
//	num    = first*(n-2)(n-1) + offset
//	offset = a*(n-2) + b
//
// where a indexes the vocabulary with the first word removed and b indexes it
// with both the first and second words removed. The removals are applied as
// index shifts against the original order, so nothing proportional to n is
// allocated per call.

// perPrimary is the number of ordered pairs behind each first word.
func perPrimary(n uint64) uint64 {
	return (n - 2) * (n - 1)
}

// unrankTriple maps an address to three distinct vocabulary positions.
func unrankTriple(num uint64, n int) (i, j, k int, err error) {
	un := uint64(n)
	per := perPrimary(un)
	first := num / per
	if first >= un {
		return 0, 0, 0, fmt.Errorf("%w: %d >= %d", ErrAddressOutOfRange, num, un*per)
	}
	offset := num % per
	a := offset / (un - 2)
	b := offset % (un - 2)

	i = int(first)
	j = skip(int(a), i)
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	k = skip(skip(int(b), lo), hi)
	return i, j, k, nil
}

// rankTriple is the inverse of unrankTriple. Positions must be distinct and
// inside [0, n).
func rankTriple(i, j, k, n int) uint64 {
	a := shift(j, i)
	b := k
	if k > i {
		b--
	}
	if k > j {
		b--
	}
	un := uint64(n)
	return uint64(i)*perPrimary(un) + uint64(a)*(un-2) + uint64(b)
}

// skip maps an index in a sequence with position removed dropped back to an
// index in the full sequence.
func skip(idx, removed int) int {
	if idx >= removed {
		return idx + 1
	}
	return idx
}

// shift maps an index in the full sequence to its index once removed has
// been dropped. idx must not equal removed.
func shift(idx, removed int) int {
	if idx > removed {
		return idx - 1
	}
	return idx
}
