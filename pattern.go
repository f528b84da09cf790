package pcomb

import "sync"

// rangeSpec is one compiled item of a character-class pattern: either a
// single character (lo == hi) or an inclusive range.
type rangeSpec struct {
	lo, hi rune
}

var (
	patternGrammar     Parser
	patternGrammarOnce sync.Once
)

// compiledPatternGrammar lazily builds, once per process, the parser that
// recognizes the character-class mini-grammar:
//
//	pattern := '^'? item+
//	item    := any '-' any   // range
//	         | any           // single
//
// It is itself built entirely from the core combinators (self-hosting).
// Concurrent first use converges on a single value via sync.Once
// (construct-then-publish).
func compiledPatternGrammar() Parser {
	patternGrammarOnce.Do(func() {
		unit := Any()
		hyphen := Char('-')

		rangeItem := unit.Seq(hyphen).Seq(unit).Map(func(v interface{}) interface{} {
			xs := v.([]interface{})
			return rangeSpec{lo: xs[0].(rune), hi: xs[2].(rune)}
		})
		singleItem := unit.Map(func(v interface{}) interface{} {
			r := v.(rune)
			return rangeSpec{lo: r, hi: r}
		})
		item := rangeItem.Or(singleItem)
		items := item.Plus()
		caret := Char('^').Optional()

		patternGrammar = caret.Seq(items).End("end of character-class pattern").Map(func(v interface{}) interface{} {
			xs := v.([]interface{})
			negate := xs[0] != nil
			specs := xs[1].([]interface{})

			parsers := make([]Parser, len(specs))
			for i, s := range specs {
				rs := s.(rangeSpec)
				if rs.lo == rs.hi {
					parsers[i] = Char(rs.lo)
				} else {
					parsers[i] = Range(rs.lo, rs.hi)
				}
			}

			var node Parser
			if len(parsers) == 1 {
				node = parsers[0]
			} else {
				node = Alternatives(parsers...)
			}
			if negate {
				node = Negate(node)
			}
			return node
		})
	})
	return patternGrammar
}

// Pattern compiles a bracket-expression-style character class, such as
// "a-zA-Z0-9_" or "^0-9", into a single character-matching Parser. The
// grammar parser compiling it is built once, lazily, and reused across
// calls.
func Pattern(expr string) Parser {
	res := compiledPatternGrammar().Parse(expr)
	if res.IsFailure() {
		panicConstruction("invalid character-class pattern %q: %s", expr, res.Message())
	}
	return res.Value().(Parser)
}
