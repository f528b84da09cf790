package pcomb

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// randomWellFoundedParser builds a parser from a small fixed set of
// character-consuming leaves combined with seq/or/repeat, biased so that
// every repeat wraps a leaf (never another repeat), which keeps it
// well-founded: no branch can match zero-width inside a repetition.
func randomWellFoundedParser(rng *rand.Rand, depth int) Parser {
	leaf := func() Parser {
		switch rng.Intn(4) {
		case 0:
			return Digit()
		case 1:
			return Letter()
		case 2:
			return Char('-')
		default:
			return Whitespace()
		}
	}

	if depth <= 0 {
		return leaf()
	}

	switch rng.Intn(3) {
	case 0:
		return randomWellFoundedParser(rng, depth-1).Seq(randomWellFoundedParser(rng, depth-1))
	case 1:
		return randomWellFoundedParser(rng, depth-1).Or(randomWellFoundedParser(rng, depth-1))
	default:
		min := rng.Intn(2)
		max := min + rng.Intn(3)
		return leaf().Repeat(min, max)
	}
}

func randomInput(rng *rand.Rand, n int) string {
	alphabet := "abcXYZ012 -"
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(buf)
}

func TestPropertyDeterminism(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		p := randomWellFoundedParser(rng, 3)
		input := randomInput(rng, rng.Intn(8))

		first := p.Parse(input)
		second := p.Parse(input)
		assert.Equal(t, first.IsSuccess(), second.IsSuccess())
		assert.Equal(t, first.Position(), second.Position())
		assert.Equal(t, first.Value(), second.Value())
	}
}

func TestPropertyPositionBounds(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		p := randomWellFoundedParser(rng, 3)
		input := randomInput(rng, rng.Intn(8))

		res := p.Parse(input)
		assert.GreaterOrEqual(t, res.Position(), 0)
		assert.LessOrEqual(t, res.Position(), len([]rune(input)))
	}
}

func TestPropertyRepetitionBounds(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		min := rng.Intn(3)
		max := min + rng.Intn(4)
		p := Digit().Repeat(min, max)
		input := randomInput(rng, rng.Intn(10))

		res := p.Parse(input)
		if res.IsSuccess() {
			values := res.Value().([]interface{})
			assert.GreaterOrEqual(t, len(values), min)
			assert.LessOrEqual(t, len(values), max)
		}
	}
}

func TestPropertyLookaheadNonConsumption(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 200; i++ {
		leaf := randomWellFoundedParser(rng, 2)
		input := randomInput(rng, rng.Intn(6))

		andRes := leaf.And().Parse(input)
		assert.Equal(t, 0, andRes.Position())

		notRes := leaf.Not("unexpected match").Parse(input)
		assert.Equal(t, 0, notRes.Position())
	}
}
