package pcomb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextPeekAndEOF(t *testing.T) {
	t.Parallel()

	ctx := NewContext("ab")
	r, ok := ctx.Peek()
	assert.True(t, ok)
	assert.Equal(t, 'a', r)
	assert.False(t, ctx.AtEOF())

	end := ctx.At(2)
	assert.True(t, end.AtEOF())
	_, ok = end.Peek()
	assert.False(t, ok)
}

func TestContextSliceAndLen(t *testing.T) {
	t.Parallel()

	ctx := NewContext("hello")
	assert.Equal(t, 5, ctx.Len())
	assert.Equal(t, "ell", ctx.Slice(1, 4))
}

func TestResultSuccessAndFailure(t *testing.T) {
	t.Parallel()

	ctx := NewContext("abc")
	ok := ctx.Success("value", 1)
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, "value", ok.Value())
	assert.Equal(t, 1, ok.Position())

	fail := ctx.Failure("digit")
	assert.True(t, fail.IsFailure())
	assert.Equal(t, "expected digit", fail.Message())
	assert.NotNil(t, fail.Error())
}

func TestParseErrorFormatting(t *testing.T) {
	t.Parallel()

	none := NewParseError(0)
	assert.Equal(t, "parse failure", none.Error())

	one := NewParseError(0, "digit")
	assert.Equal(t, "expected digit", one.Error())

	many := NewParseError(0, "digit", "letter")
	assert.Equal(t, "expected one of digit, letter", many.Error())
}

func TestParseErrorFatalAndAdd(t *testing.T) {
	t.Parallel()

	passive := NewParseError(2, "a")
	assert.False(t, passive.IsFatal())

	fatal := NewFatalParseError(2, assertErr{}, "b")
	assert.True(t, fatal.IsFatal())
	assert.Equal(t, assertErr{}, fatal.Unwrap())

	passive.Add(fatal)
	assert.Equal(t, []string{"a", "b"}, passive.expected)
	assert.True(t, passive.IsFatal())
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }
