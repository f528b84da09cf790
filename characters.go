package pcomb

import "fmt"

// charLike is implemented by every character-matching node: the fixed-kind
// charNode, and the alternatives/negated combinators built on top of it. It
// lets Alternatives and Negate test a candidate rune without re-running the
// full Recognize machinery, and lets them reject a non-character-class
// argument at construction time.
type charLike interface {
	Parser
	acceptsRune(r rune) bool
}

// toRune converts a user-supplied character argument — a rune, a byte code,
// or a single-unit string — into a rune. Any other value is a construction
// error.
func toRune(c interface{}) rune {
	switch v := c.(type) {
	case rune:
		return v
	case byte:
		return rune(v)
	case string:
		rs := []rune(v)
		if len(rs) != 1 {
			panicConstruction("character argument %q must be exactly one unit long", v)
		}
		return rs[0]
	default:
		panicConstruction("invalid character argument %v (%T): expected a rune, a byte, or a single-unit string", c, c)
		return 0
	}
}

type charKind int

const (
	kindLiteral charKind = iota
	kindRange
	kindDigit
	kindLetter
	kindLower
	kindUpper
	kindWord
	kindWhitespace
	kindAny
)

// charNode matches a single input unit satisfying a fixed predicate kind: a
// literal rune, an inclusive code range, or one of the built-in classes
// (digit, letter, lower, upper, word, whitespace, any).
type charNode struct {
	parserBase
	kind    charKind
	lo, hi  rune
	message string
}

func newCharNode(kind charKind, lo, hi rune, message string) Parser {
	return attach(&charNode{kind: kind, lo: lo, hi: hi, message: message})
}

// Char matches a single literal character, given as either a rune/byte code
// or a single-unit string.
func Char(c interface{}) Parser {
	r := toRune(c)
	return newCharNode(kindLiteral, r, r, fmt.Sprintf("'%c'", r))
}

// Range matches a single character whose code lies in [a, b], inclusive.
// a and b accept the same argument shapes as Char.
func Range(a, b interface{}) Parser {
	lo, hi := toRune(a), toRune(b)
	return newCharNode(kindRange, lo, hi, fmt.Sprintf("range(%c..%c)", lo, hi))
}

// Digit matches a single decimal digit: 0-9.
func Digit() Parser { return newCharNode(kindDigit, 0, 0, "digit") }

// Letter matches a single ASCII letter: a-z or A-Z.
func Letter() Parser { return newCharNode(kindLetter, 0, 0, "letter") }

// Lower matches a single lowercase ASCII letter: a-z.
func Lower() Parser { return newCharNode(kindLower, 0, 0, "lowercase letter") }

// Upper matches a single uppercase ASCII letter: A-Z.
func Upper() Parser { return newCharNode(kindUpper, 0, 0, "uppercase letter") }

// Word matches a single letter, digit, or underscore.
func Word() Parser { return newCharNode(kindWord, 0, 0, "word character") }

// Whitespace matches a single space, tab, line feed, form feed, or carriage
// return character. Trim uses Whitespace().Star() as its default skip
// parser.
func Whitespace() Parser { return newCharNode(kindWhitespace, 0, 0, "whitespace") }

// Any matches any single character, failing only at end of input.
func Any() Parser { return newCharNode(kindAny, 0, 0, "any character") }

// stringNode matches a fixed literal string as a single leaf, consuming
// its whole span in one step rather than one character at a time.
type stringNode struct {
	parserBase
	literal []rune
}

// String matches the given literal exactly, consuming it in one step: an
// exact-match probe against the input, failing as soon as any rune differs
// or the input runs out.
func String(literal string) Parser {
	return attach(&stringNode{literal: []rune(literal)})
}

func (n *stringNode) Recognize(ctx *Context) Result {
	start := ctx.Position()
	end := start + len(n.literal)
	if end > ctx.Len() {
		return ctx.Failure(n.quoted())
	}
	for i, want := range n.literal {
		if ctx.buffer[start+i] != want {
			return ctx.Failure(n.quoted())
		}
	}
	return ctx.Success(string(n.literal), end)
}

func (n *stringNode) quoted() string {
	return fmt.Sprintf("%q", string(n.literal))
}

func (n *stringNode) ChildNodes() []Parser         { return nil }
func (n *stringNode) ReplaceChild(old, new Parser) {}
func (n *stringNode) CopyNode() Parser {
	lit := make([]rune, len(n.literal))
	copy(lit, n.literal)
	return attach(&stringNode{literal: lit})
}
func (n *stringNode) equalNode(other Parser) bool {
	o, ok := other.(*stringNode)
	return ok && string(o.literal) == string(n.literal)
}

func (n *charNode) acceptsRune(r rune) bool {
	switch n.kind {
	case kindLiteral:
		return r == n.lo
	case kindRange:
		return n.lo <= r && r <= n.hi
	case kindDigit:
		return r >= '0' && r <= '9'
	case kindLetter:
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	case kindLower:
		return r >= 'a' && r <= 'z'
	case kindUpper:
		return r >= 'A' && r <= 'Z'
	case kindWord:
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
	case kindWhitespace:
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
	case kindAny:
		return true
	}
	return false
}

func (n *charNode) Recognize(ctx *Context) Result {
	r, ok := ctx.Peek()
	if !ok || !n.acceptsRune(r) {
		return ctx.Failure(n.message)
	}
	return ctx.Success(r, ctx.Position()+1)
}

func (n *charNode) ChildNodes() []Parser         { return nil }
func (n *charNode) ReplaceChild(old, new Parser) {}
func (n *charNode) CopyNode() Parser {
	return attach(&charNode{kind: n.kind, lo: n.lo, hi: n.hi, message: n.message})
}
func (n *charNode) equalNode(other Parser) bool {
	o, ok := other.(*charNode)
	return ok && o.kind == n.kind && o.lo == n.lo && o.hi == n.hi
}

// altCharNode matches a single unit if any of its alternative
// character-class children accepts it.
type altCharNode struct {
	parserBase
	alts []Parser
}

// Alternatives matches a single unit accepted by any of the given
// character-class parsers (Digit, Letter, Range, Char, ...).
func Alternatives(chars ...Parser) Parser {
	alts := make([]Parser, len(chars))
	for i, c := range chars {
		if _, ok := c.(charLike); !ok {
			panicConstruction("Alternatives argument %d is not a character-class parser", i)
		}
		alts[i] = c
	}
	return attach(&altCharNode{alts: alts})
}

func (n *altCharNode) acceptsRune(r rune) bool {
	for _, a := range n.alts {
		if a.(charLike).acceptsRune(r) {
			return true
		}
	}
	return false
}

func (n *altCharNode) Recognize(ctx *Context) Result {
	r, ok := ctx.Peek()
	if !ok || !n.acceptsRune(r) {
		return ctx.Failure("one of alternatives")
	}
	return ctx.Success(r, ctx.Position()+1)
}

func (n *altCharNode) ChildNodes() []Parser {
	out := make([]Parser, len(n.alts))
	copy(out, n.alts)
	return out
}

func (n *altCharNode) ReplaceChild(old, new Parser) {
	for i, p := range n.alts {
		if p == old {
			n.alts[i] = new
		}
	}
}

func (n *altCharNode) CopyNode() Parser {
	alts := make([]Parser, len(n.alts))
	copy(alts, n.alts)
	return attach(&altCharNode{alts: alts})
}

func (n *altCharNode) equalNode(other Parser) bool {
	o, ok := other.(*altCharNode)
	return ok && len(o.alts) == len(n.alts)
}

// negCharNode matches a single unit iff its wrapped character-class child
// does not accept it.
type negCharNode struct {
	parserBase
	inner Parser
}

// Negate inverts a character-class parser: it matches whatever c doesn't.
// Negating an already-negated parser returns the original parser rather
// than double-wrapping it.
func Negate(c Parser) Parser {
	if n, ok := c.(*negCharNode); ok {
		return n.inner
	}
	if _, ok := c.(charLike); !ok {
		panicConstruction("Negate argument is not a character-class parser")
	}
	return attach(&negCharNode{inner: c})
}

func (n *negCharNode) acceptsRune(r rune) bool {
	return !n.inner.(charLike).acceptsRune(r)
}

func (n *negCharNode) Recognize(ctx *Context) Result {
	r, ok := ctx.Peek()
	if !ok || !n.acceptsRune(r) {
		return ctx.Failure("negated character class")
	}
	return ctx.Success(r, ctx.Position()+1)
}

func (n *negCharNode) ChildNodes() []Parser { return []Parser{n.inner} }

func (n *negCharNode) ReplaceChild(old, new Parser) {
	if n.inner == old {
		n.inner = new
	}
}

func (n *negCharNode) CopyNode() Parser {
	return attach(&negCharNode{inner: n.inner})
}

func (n *negCharNode) equalNode(other Parser) bool {
	_, ok := other.(*negCharNode)
	return ok
}
