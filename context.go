package pcomb

// Context is the immutable pair of input buffer and current position that
// every parser recognizes against. A Context is never mutated in place;
// combinators thread a new Context forward on success and fall back to the
// original one on failure.
type Context struct {
	buffer   []rune
	position int
}

// NewContext creates a Context positioned at the start of input.
func NewContext(input string) *Context {
	return &Context{buffer: []rune(input)}
}

// At returns a Context over the same buffer repositioned to pos.
func (c *Context) At(pos int) *Context {
	return &Context{buffer: c.buffer, position: pos}
}

// Len reports the length of the input buffer, in runes.
func (c *Context) Len() int {
	return len(c.buffer)
}

// Position is the current offset into the buffer.
func (c *Context) Position() int {
	return c.position
}

// AtEOF reports whether the context has been advanced through the whole
// buffer.
func (c *Context) AtEOF() bool {
	return c.position >= len(c.buffer)
}

// Peek returns the rune at the current position and whether one was
// available. It never advances the position.
func (c *Context) Peek() (rune, bool) {
	if c.position >= len(c.buffer) {
		return 0, false
	}
	return c.buffer[c.position], true
}

// Slice returns the substring of the buffer covering [from, to).
func (c *Context) Slice(from, to int) string {
	return string(c.buffer[from:to])
}

// Success produces a Success Result from this context. If newPosition is
// omitted, the context's own current position is reused.
func (c *Context) Success(value interface{}, newPosition ...int) Result {
	pos := c.position
	if len(newPosition) > 0 {
		pos = newPosition[0]
	}
	return Result{buffer: c.buffer, position: pos, ok: true, value: value}
}

// Failure produces a Failure Result from this context. If atPosition is
// omitted, the context's own current position is reused.
func (c *Context) Failure(message string, atPosition ...int) Result {
	pos := c.position
	if len(atPosition) > 0 {
		pos = atPosition[0]
	}
	return Result{buffer: c.buffer, position: pos, ok: false, err: NewParseError(pos, message)}
}

// FailWith wraps an already-built ParseError into a Failure Result at the
// position the error itself carries.
func (c *Context) FailWith(err *ParseError) Result {
	return Result{buffer: c.buffer, position: err.position, ok: false, err: err}
}

// Result is the outcome of running a parser: either a Success carrying a
// value and the position reached, or a Failure carrying a message and the
// position at which the mismatch was detected. Results are immutable values,
// never pointers, so copying one is always safe.
type Result struct {
	buffer   []rune
	position int
	ok       bool
	value    interface{}
	err      *ParseError
}

// IsSuccess reports whether the result is a Success.
func (r Result) IsSuccess() bool { return r.ok }

// IsFailure reports whether the result is a Failure.
func (r Result) IsFailure() bool { return !r.ok }

// Position is the position carried by the result: the position reached on
// success, or the position at which matching gave up on failure.
func (r Result) Position() int { return r.position }

// Buffer exposes the shared, read-only input buffer the result was produced
// against.
func (r Result) Buffer() string { return string(r.buffer) }

// Value returns the success value. It is undefined (zero value) on a
// Failure result.
func (r Result) Value() interface{} { return r.value }

// Message returns the failure message. It is the empty string on a Success
// result.
func (r Result) Message() string {
	if r.err == nil {
		return ""
	}
	return r.err.Error()
}

// Error returns the underlying *ParseError of a Failure result, or nil on
// Success.
func (r Result) Error() *ParseError { return r.err }

// context rebuilds the *Context this result leaves matching free to resume
// from: same buffer, result's own position.
func (r Result) context() *Context {
	return &Context{buffer: r.buffer, position: r.position}
}

// Match is one non-overlapping hit yielded by Parser.Matches: the value
// produced together with the half-open span [Start, End) of input it
// covers.
type Match struct {
	Value interface{}
	Start int
	End   int
}
