package kmp

// Border returns the failure value at the last position, i.e. the length
// of the longest proper border of the whole input. An empty table has 0.
func (t Table) Border() int {
	if len(t) == 0 {
		return 0
	}

	return t[len(t)-1]
}

// IsCyclic reports whether the input behind t is two or more repetitions
// of a shorter period.
//
// Decision rule, with n = len(t) and k = t[n-1]:
//  1. n > 1:          empty and single-element inputs are never cyclic
//  2. k > 0:          some non-trivial border exists
//  3. n % (n-k) == 0: the minimal period n-k tiles the input exactly
//
// Complexity: O(1).
func (t Table) IsCyclic() bool {
	n := len(t)
	if n <= 1 {
		return false
	}
	k := t[n-1]

	return k > 0 && n%(n-k) == 0
}

// Period returns the minimal period of a cyclic input and how many times
// it repeats. For non-cyclic inputs it returns the zero Period and false.
func (t Table) Period() (Period, bool) {
	if !t.IsCyclic() {
		return Period{}, false
	}
	n := len(t)
	length := n - t[n-1]

	return Period{Length: length, Repeats: n / length}, true
}

// IsCyclic reports whether s, as a sequence of code points, is a
// repetition of a shorter substring.
//
// Example:
//
//	kmp.IsCyclic("abcabc") // true
//	kmp.IsCyclic("abcab")  // false
func IsCyclic(s string) bool {
	return Build(s).IsCyclic()
}

// Analyze builds the failure table of s once and derives the verdict
// and period from it.
func Analyze(s string) Analysis {
	t := Build(s)
	p, ok := t.Period()

	return Analysis{Table: t, Cyclic: ok, Period: p}
}
