package pcomb

import "iter"

// Parser is a node in the parser graph. Every parser exposes both the
// recognition operation and the uniform structural operations needed to
// treat the graph itself as data.
//
// Concrete node types (charNode, sequenceNode, repeatNode, Forward, ...)
// implement the five methods that vary per variant: Recognize, ChildNodes,
// ReplaceChild, CopyNode, equalNode. Everything else — Parse/Accept/Matches
// and the chainable combinator builders (Seq, Or, Star, ...) — is provided
// uniformly by the embedded parserBase, in terms of those five.
type Parser interface {
	// Recognize is the pure recognition operation: given a context, it
	// returns a Success or Failure Result. It never panics on ordinary
	// mismatched input; it panics only on a programmer error such as a
	// user action function receiving a value of the wrong shape.
	Recognize(ctx *Context) Result

	// ChildNodes lists the direct substructure of this node, in a
	// deterministic order. A leaf node returns nil. The list may contain
	// duplicates and may reference this node itself (a cycle).
	ChildNodes() []Parser

	// ReplaceChild mutates in place: every direct child slot holding old
	// (by identity) is rewritten to new. A no-op if old is not present.
	ReplaceChild(old, new Parser)

	// CopyNode returns a shallow copy of this node: same variant, same
	// configuration, but sharing the very same child references as the
	// original. It is the primitive DeepCopy and Transform build on.
	CopyNode() Parser

	equalNode(other Parser) bool
	self() Parser
	setSelf(p Parser)

	// Parse runs recognition from position 0 and returns the Result.
	Parse(input string) Result
	// Accept reports whether Parse(input) succeeds; the match need not
	// reach the end of input.
	Accept(input string) bool
	// Matches scans every position of input left to right and yields each
	// non-overlapping success as a Match, skipping past a success's span
	// before resuming the scan.
	Matches(input string) iter.Seq[Match]

	// Seq builds the ordered concatenation of this parser then p. If this
	// parser is itself a sequence, the result is a new sequence holding a
	// copy of its list with p appended, rather than a 2-element sequence
	// nested around it; this parser itself is left unchanged.
	Seq(p Parser) Parser
	// Or builds the ordered alternative of this parser, then p. If this
	// parser is itself a choice, the result is a new choice holding a copy
	// of its list with p appended, rather than a 2-element choice nested
	// around it; this parser itself is left unchanged.
	Or(p Parser) Parser
	// Star is greedy repetition, 0 or more times.
	Star() Parser
	// Plus is greedy repetition, 1 or more times.
	Plus() Parser
	// Times is exactly n repetitions.
	Times(n int) Parser
	// Repeat is bounded greedy repetition: min to max times, inclusive.
	// Pass Unbounded for max to mean "no upper bound".
	Repeat(min, max int) Parser
	// Optional tries this parser; on failure, it succeeds without
	// consuming input, producing fallback (nil if omitted) as its value.
	Optional(fallback ...interface{}) Parser
	// And is positive lookahead: succeeds iff this parser succeeds, but
	// consumes no input.
	And() Parser
	// Not is negative lookahead: succeeds iff this parser fails, but
	// consumes no input; its value is always nil.
	Not(message string) Parser
	// End succeeds iff this parser succeeds and its match reaches the end
	// of input; otherwise it fails with message at the reached position.
	End(message string) Parser
	// Map applies f to this parser's success value.
	Map(f func(interface{}) interface{}) Parser
	// Flatten replaces the success value with the substring of input this
	// parser covered.
	Flatten() Parser
	// Token wraps the success value in a Token recording its source span.
	Token() Parser
	// Trim skips whitespace (or the given parser) before and after this
	// parser.
	Trim(ws ...Parser) Parser
	// Pick selects element i from this parser's sequence value.
	Pick(i int) Parser
	// Permute reorders elements from this parser's sequence value
	// according to order.
	Permute(order []int) Parser

	// Children is the direct substructure of this node.
	Children() []Parser
	// Replace rewrites every direct child slot holding old to new.
	Replace(old, new Parser)
	// Copy returns a shallow copy of this node.
	Copy() Parser
	// Match is cycle-safe structural equality: same variant, same
	// configuration, and children equal pairwise.
	Match(other Parser) bool
}

// Unbounded is the sentinel value for Repeat's max meaning "no upper
// bound". Times takes an exact count, so Times(Unbounded) panics.
const Unbounded = -1

// parserBase is embedded by every concrete parser node. It provides the
// combinator builder methods and the graph-level Children/Replace/Copy/Match
// helpers uniformly, dispatching to whatever concrete node embeds it via
// self/setSelf.
type parserBase struct {
	this Parser
}

func (b *parserBase) self() Parser     { return b.this }
func (b *parserBase) setSelf(p Parser) { b.this = p }

// attach wires a freshly constructed node's embedded parserBase back to
// itself, so combinator methods called on it build combinators referencing
// the real node rather than the bare embedded base.
func attach(p Parser) Parser {
	p.setSelf(p)
	return p
}

func (b *parserBase) Parse(input string) Result {
	return b.this.Recognize(NewContext(input))
}

func (b *parserBase) Accept(input string) bool {
	return b.Parse(input).IsSuccess()
}

func (b *parserBase) Matches(input string) iter.Seq[Match] {
	p := b.this
	buf := []rune(input)
	return func(yield func(Match) bool) {
		pos := 0
		for pos <= len(buf) {
			res := p.Recognize(&Context{buffer: buf, position: pos})
			if res.IsSuccess() {
				end := res.Position()
				if !yield(Match{Value: res.Value(), Start: pos, End: end}) {
					return
				}
				if end > pos {
					pos = end
				} else {
					pos++
				}
				continue
			}
			pos++
		}
	}
}

func (b *parserBase) Seq(p Parser) Parser {
	if s, ok := b.this.(*sequenceNode); ok {
		ps := make([]Parser, len(s.ps), len(s.ps)+1)
		copy(ps, s.ps)
		ps = append(ps, p)
		return attach(&sequenceNode{ps: ps})
	}
	return Seq(b.this, p)
}

func (b *parserBase) Or(p Parser) Parser {
	if c, ok := b.this.(*choiceNode); ok {
		ps := make([]Parser, len(c.ps), len(c.ps)+1)
		copy(ps, c.ps)
		ps = append(ps, p)
		return attach(&choiceNode{ps: ps})
	}
	return Choice(b.this, p)
}

func (b *parserBase) Star() Parser               { return Repeat(b.this, 0, Unbounded) }
func (b *parserBase) Plus() Parser               { return Repeat(b.this, 1, Unbounded) }
func (b *parserBase) Times(n int) Parser         { return Repeat(b.this, n, n) }
func (b *parserBase) Repeat(min, max int) Parser { return Repeat(b.this, min, max) }

func (b *parserBase) Optional(fallback ...interface{}) Parser {
	var fb interface{}
	if len(fallback) > 0 {
		fb = fallback[0]
	}
	return newOptional(b.this, fb)
}

func (b *parserBase) And() Parser                                { return newAndPredicate(b.this) }
func (b *parserBase) Not(message string) Parser                  { return newNotPredicate(b.this, message) }
func (b *parserBase) End(message string) Parser                  { return newEndOfInput(b.this, message) }
func (b *parserBase) Map(f func(interface{}) interface{}) Parser { return newAction(b.this, f) }
func (b *parserBase) Flatten() Parser                            { return newFlatten(b.this) }
func (b *parserBase) Token() Parser                              { return newToken(b.this) }

func (b *parserBase) Trim(ws ...Parser) Parser {
	var skip Parser
	if len(ws) > 0 {
		skip = ws[0]
	} else {
		skip = Whitespace().Star()
	}
	return newTrim(b.this, skip)
}

func (b *parserBase) Pick(i int) Parser {
	return newAction(b.this, func(v interface{}) interface{} {
		return v.([]interface{})[i]
	})
}

func (b *parserBase) Permute(order []int) Parser {
	return newAction(b.this, func(v interface{}) interface{} {
		xs := v.([]interface{})
		out := make([]interface{}, len(order))
		for i, idx := range order {
			out[i] = xs[idx]
		}
		return out
	})
}

func (b *parserBase) Children() []Parser          { return b.this.ChildNodes() }
func (b *parserBase) Replace(old, new Parser)     { b.this.ReplaceChild(old, new) }
func (b *parserBase) Copy() Parser                { return b.this.CopyNode() }
func (b *parserBase) Match(other Parser) bool     { return structEqual(b.this, other, make(map[pairKey]bool)) }
