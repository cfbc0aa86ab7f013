package kmp

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for table validation.
var (
	// ErrInvalidTable indicates a table that no input sequence produces.
	ErrInvalidTable = errors.New("kmp: invalid failure table")
)

// Table is a KMP failure table, index-aligned with its input:
// t[i] is the border length of the prefix of length i+1.
//
// Invariants of every table returned by Build/BuildFunc:
//   - len(t) == len(input)
//   - t[0] == 0 when the input is non-empty
//   - 0 <= t[i] <= i
//   - t[i] <= t[i-1]+1
type Table []int

// Period describes how a cyclic sequence decomposes:
// the prefix of Length elements repeated Repeats times (Repeats >= 2).
type Period struct {
	Length  int
	Repeats int
}

// Analysis bundles the full pipeline result for one input.
type Analysis struct {
	// Table is the failure table of the input.
	Table Table

	// Cyclic reports whether the input is a repetition of a shorter period.
	Cyclic bool

	// Period is the minimal period; zero value unless Cyclic.
	Period Period
}

// Len returns the number of entries, equal to the input length.
func (t Table) Len() int { return len(t) }

// String renders the table as a debug list, e.g. "[0, 0, 1, 2]".
// An empty table renders as "[]".
func (t Table) String() string {
	var sb strings.Builder
	sb.Grow(2 + 3*len(t))
	sb.WriteByte('[')
	for i, v := range t {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(']')

	return sb.String()
}
