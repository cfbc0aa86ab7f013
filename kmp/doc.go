// Package kmp builds Knuth–Morris–Pratt failure tables and uses them to
// detect whether a string is cyclic, i.e. a repetition of a shorter period.
//
// 🚀 What is a failure table?
//
//	For every prefix s[0..i] the table stores the length of the longest
//	proper prefix that is also a suffix of it (its "border"):
//
//	  s = a b c a b c a b c
//	  t = 0 0 0 1 2 3 4 5 6
//
//	KMP search uses it to skip re-comparisons. Here it is used for one
//	identity: if k = t[n-1], the minimal period of s is n-k, and s is a
//	perfect repetition iff (n-k) divides n.
//
// ✨ Key features:
//   - linear-time construction over code points (Build) or any comparable
//     element type (BuildFunc)
//   - cyclicity verdict and period recovery straight from the table
//   - invariant checker (Validate) for tables coming from elsewhere
//   - debug rendering "[0, 0, 1, 2]" via Table.String
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/kmpcycle/kmp"
//
//	t := kmp.Build("ababab")
//	fmt.Println(t)             // [0, 0, 1, 2, 3, 4]
//	fmt.Println(t.IsCyclic())  // true
//	p, _ := t.Period()         // {Length:2 Repeats:3}
//
// Performance:
//
//   - Time:   O(n), the cursor falls back at most as often as it advances
//   - Memory: O(n) for the decoded input plus O(n) for the table
//
// All functions are pure and safe for concurrent use.
package kmp
