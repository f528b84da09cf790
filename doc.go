// Package pcomb implements the core of a parser-combinator library: a
// composable framework for building top-down, recursive-descent
// recognizers that produce arbitrary result values.
//
// A parser is assembled from primitive recognizers (Char, Range, Digit,
// Letter, ...) and combinators (Seq, Choice, Repeat, Optional, lookahead,
// end-of-input, Forward references for recursive grammars), then run
// against an input string with Parse to obtain a Result, with Accept to
// obtain a bool, or with Matches to scan it for Match values.
//
// Unlike a plain closure-based combinator library, every parser here is
// also a node in a directed, possibly cyclic graph: Children, Replace,
// Copy, and Match (structural equality) let a caller inspect, rewrite, and
// compare parser graphs as data, which a grammar-rewriting or optimization
// pass needs and a bare `func(input) Result` cannot offer.
//
// The package is strict PEG: ordered choice, unlimited backtracking on
// character position only. It does not memoize (no Packrat), does not
// handle left recursion, and does not enumerate ambiguity — callers needing
// those build them on top.
package pcomb
