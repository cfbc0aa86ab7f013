// Package kmpcycle detects cyclic strings, i.e. strings that are two or more
// repetitions of a shorter substring, using the KMP failure function.
//
// 🚀 What is kmpcycle?
//
//	A small, pure-Go library and CLI built around one identity: if the
//	longest proper border of an n-element string has length k, the string
//	is a perfect repetition iff n-k divides n.
//		• Failure table: linear-time KMP prefix function (kmp.Build)
//		• Generic tables over any comparable elements (kmp.BuildFunc)
//		• Verdict and period recovery (Table.IsCyclic, Table.Period)
//
// Layout:
//
//	kmp/           failure tables, cyclicity test, period analysis
//	cmd/kmpcycle/  command-line front end: kmpcycle STR
//
// Quick example:
//
//	s = a b a b a b
//	t = 0 0 1 2 3 4     k = 4, n-k = 2, 6 % 2 == 0 → cyclic ("ab" × 3)
//
//	go install github.com/katalvlaran/kmpcycle/cmd/kmpcycle@latest
package kmpcycle
