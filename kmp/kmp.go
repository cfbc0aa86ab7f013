package kmp

import "fmt"

// BuildFunc computes the KMP failure table of an arbitrary comparable sequence.
//
// Description:
//
//	t[i] is the length of the longest proper prefix of seq[0..i] that
//	is also a suffix of seq[0..i].
//
// Algorithm Outline:
//  1. t[0] = 0; cursor j = 0 (length of the current candidate border).
//  2. For i = 1..n-1:
//     while j > 0 and seq[i] != seq[j]: j = t[j-1]
//     if seq[i] == seq[j]: j++
//     t[i] = j
//
// The cursor stays unsigned: the j > 0 guard stops the fallback at the
// empty border, and the match test that follows decides whether the
// border restarts at length 1 or stays at 0.
//
// Complexity:
//
//	Time   = O(n) amortized (j grows by at most 1 per step, each fallback shrinks it)
//	Memory = O(n)
//
// An empty seq yields an empty, non-nil table.
func BuildFunc[T comparable](seq []T) Table {
	n := len(seq)
	t := make(Table, n)
	if n == 0 {
		return t
	}

	j := 0
	for i := 1; i < n; i++ {
		for j > 0 && seq[i] != seq[j] {
			j = t[j-1]
		}
		if seq[i] == seq[j] {
			j++
		}
		t[i] = j
	}

	return t
}

// Build returns the failure table of s, treating s as a sequence of
// code points. Invalid UTF-8 bytes each count as one U+FFFD element.
//
// Example:
//
//	kmp.Build("abcabcabc") // [0, 0, 0, 1, 2, 3, 4, 5, 6]
func Build(s string) Table {
	return BuildFunc([]rune(s))
}

// Validate reports whether some input sequence has t as its failure table.
// It returns nil for any table produced by Build or BuildFunc, and an
// error wrapping ErrInvalidTable naming the first offending index otherwise.
//
// Algorithm Outline:
//  1. Structural pass: 0 <= t[i] <= i and t[i] <= t[i-1]+1.
//  2. Canonical reconstruction: seq[i] = seq[t[i]-1] when t[i] > 0, else a
//     fresh symbol. Every equality this introduces is forced by t, so if any
//     sequence realizes t, this one does.
//  3. Rebuild the table of the reconstruction and compare entry by entry.
//
// Complexity: O(n) time, O(n) memory.
func (t Table) Validate() error {
	for i, v := range t {
		switch {
		case v < 0:
			return fmt.Errorf("%w: t[%d]=%d is negative", ErrInvalidTable, i, v)
		case v > i:
			return fmt.Errorf("%w: t[%d]=%d exceeds proper prefix length %d", ErrInvalidTable, i, v, i)
		case i > 0 && v > t[i-1]+1:
			return fmt.Errorf("%w: t[%d]=%d grows by more than one from t[%d]=%d", ErrInvalidTable, i, v, i-1, t[i-1])
		}
	}

	seq := make([]int, len(t))
	fresh := 0
	for i, v := range t {
		if v == 0 {
			seq[i] = fresh
			fresh++
			continue
		}
		seq[i] = seq[v-1]
	}
	for i, v := range BuildFunc(seq) {
		if v != t[i] {
			return fmt.Errorf("%w: t[%d]=%d is not realizable, the forced prefix has border %d", ErrInvalidTable, i, t[i], v)
		}
	}

	return nil
}
