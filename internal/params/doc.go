// Package params renders the argument report: the invocation vector, the
// parameter count and one entry per parameter, in invocation order.
//
// # Report layout
//
//	Params: ["prog" "a" "b c"]
//	Total params: 3
//	Listing parameters…
//		- Param #0: prog
//		- Param #1: a
//		- Param #2: b c
//	Finishing execution…
//
// Element 0 is the program name as invoked. Nothing is parsed or validated:
// values that look like flags are printed like any other value.
package params
