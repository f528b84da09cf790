package pcomb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChildrenReplaceCopyMatch(t *testing.T) {
	t.Parallel()

	digit := Digit()
	letter := Letter()
	p := digit.Seq(letter)

	kids := p.Children()
	assert.Len(t, kids, 2)
	assert.Same(t, digit, kids[0])
	assert.Same(t, letter, kids[1])

	cp := p.Copy()
	assert.NotSame(t, p, cp)
	assert.True(t, p.Match(cp))

	space := Whitespace()
	p.Replace(letter, space)
	assert.True(t, p.Parse("1 ").IsSuccess())
	assert.False(t, p.Match(cp))
}

func TestTransitiveChildrenVisitsEachNodeOnce(t *testing.T) {
	t.Parallel()

	shared := Digit()
	p := shared.Seq(shared).Or(shared)

	nodes := TransitiveChildren(p)
	count := 0
	for _, n := range nodes {
		if n == shared {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestDeepCopyProducesIsomorphicDistinctGraph(t *testing.T) {
	t.Parallel()

	p := Digit().Seq(Letter()).Star()
	cp := DeepCopy(p)

	assert.NotSame(t, p, cp)
	assert.True(t, GraphEqual(p, cp))

	for _, orig := range TransitiveChildren(p) {
		for _, copied := range TransitiveChildren(cp) {
			assert.NotSame(t, orig, copied)
		}
	}
}

func TestDeepCopyPreservesCycles(t *testing.T) {
	t.Parallel()

	fwd := NewForward()
	fwd.Set(Digit().Or(Char('(').Seq(fwd).Seq(Char(')'))))

	cp := DeepCopy(fwd)
	assert.True(t, GraphEqual(fwd, cp))
	assert.True(t, cp.Accept("((1))"))
}

func TestTransformRemapsMatchingNodes(t *testing.T) {
	t.Parallel()

	p := Digit().Seq(Letter())
	replacement := Whitespace()

	out := Transform(p, func(n Parser) (Parser, bool) {
		if _, ok := n.(*charNode); ok {
			if n.Match(Letter()) {
				return replacement, true
			}
		}
		return nil, false
	})

	assert.True(t, out.Parse("1 ").IsSuccess())
}

func TestReplaceAllIsIdempotent(t *testing.T) {
	t.Parallel()

	letter := Letter()
	space := Whitespace()
	p := letter.Seq(letter).Or(letter)

	ReplaceAll(p, letter, space)
	assert.True(t, p.Parse("  ").IsSuccess())

	// second call finds nothing left to replace
	ReplaceAll(p, letter, Digit())
	assert.True(t, p.Parse("  ").IsSuccess())
}

func TestGraphEqualDiffersOnConfiguration(t *testing.T) {
	t.Parallel()

	a := Range('a', 'z')
	b := Range('a', 'y')
	assert.False(t, GraphEqual(a, b))
}
