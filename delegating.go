package pcomb

import (
	"reflect"
	"unsafe"
)

// oneChild is embedded by every delegating (one-child) combinator. It holds
// the wrapped parser and implements the graph plumbing (ChildNodes,
// ReplaceChild) shared by all of them; each wrapper still implements its
// own Recognize, CopyNode, and equalNode.
type oneChild struct {
	parserBase
	delegate Parser
}

func (o *oneChild) ChildNodes() []Parser {
	if o.delegate == nil {
		return nil
	}
	return []Parser{o.delegate}
}

func (o *oneChild) ReplaceChild(old, new Parser) {
	if o.delegate == old {
		o.delegate = new
	}
}

// delegateNode forwards recognition to its child unchanged.
type delegateNode struct{ oneChild }

// Delegate wraps p without changing its recognition behavior.
func Delegate(p Parser) Parser {
	return attach(&delegateNode{oneChild{delegate: p}})
}

func (n *delegateNode) Recognize(ctx *Context) Result { return n.delegate.Recognize(ctx) }
func (n *delegateNode) CopyNode() Parser {
	return attach(&delegateNode{oneChild{delegate: n.delegate}})
}
func (n *delegateNode) equalNode(other Parser) bool {
	_, ok := other.(*delegateNode)
	return ok
}

// endOfInputNode runs its child; on success, it succeeds iff the resulting
// position reaches the end of input.
type endOfInputNode struct {
	oneChild
	message string
}

func newEndOfInput(p Parser, message string) Parser {
	return attach(&endOfInputNode{oneChild{delegate: p}, message})
}

func (n *endOfInputNode) Recognize(ctx *Context) Result {
	res := n.delegate.Recognize(ctx)
	if res.IsFailure() {
		return res
	}
	c := res.context()
	if !c.AtEOF() {
		return c.Failure(n.message)
	}
	return res
}

func (n *endOfInputNode) CopyNode() Parser {
	return attach(&endOfInputNode{oneChild{delegate: n.delegate}, n.message})
}
func (n *endOfInputNode) equalNode(other Parser) bool {
	o, ok := other.(*endOfInputNode)
	return ok && o.message == n.message
}

// andPredicateNode is positive lookahead: it succeeds iff its child
// succeeds, consuming no input.
type andPredicateNode struct{ oneChild }

func newAndPredicate(p Parser) Parser {
	return attach(&andPredicateNode{oneChild{delegate: p}})
}

func (n *andPredicateNode) Recognize(ctx *Context) Result {
	res := n.delegate.Recognize(ctx)
	if res.IsFailure() {
		// Lookahead never consumes, even on failure: the reported position
		// is always where the lookahead itself started, not wherever the
		// wrapped parser gave up internally.
		return ctx.Failure(res.Message())
	}
	return ctx.Success(res.Value())
}

func (n *andPredicateNode) CopyNode() Parser {
	return attach(&andPredicateNode{oneChild{delegate: n.delegate}})
}
func (n *andPredicateNode) equalNode(other Parser) bool {
	_, ok := other.(*andPredicateNode)
	return ok
}

// notPredicateNode is negative lookahead: it succeeds iff its child fails,
// consuming no input.
type notPredicateNode struct {
	oneChild
	message string
}

func newNotPredicate(p Parser, message string) Parser {
	return attach(&notPredicateNode{oneChild{delegate: p}, message})
}

func (n *notPredicateNode) Recognize(ctx *Context) Result {
	res := n.delegate.Recognize(ctx)
	if res.IsSuccess() {
		return ctx.Failure(n.message)
	}
	return ctx.Success(nil)
}

func (n *notPredicateNode) CopyNode() Parser {
	return attach(&notPredicateNode{oneChild{delegate: n.delegate}, n.message})
}
func (n *notPredicateNode) equalNode(other Parser) bool {
	o, ok := other.(*notPredicateNode)
	return ok && o.message == n.message
}

// optionalNode tries its child; on failure, it succeeds without consuming
// input, producing otherwise as its value.
type optionalNode struct {
	oneChild
	otherwise interface{}
}

func newOptional(p Parser, otherwise interface{}) Parser {
	return attach(&optionalNode{oneChild{delegate: p}, otherwise})
}

func (n *optionalNode) Recognize(ctx *Context) Result {
	res := n.delegate.Recognize(ctx)
	if res.IsSuccess() {
		return res
	}
	return ctx.Success(n.otherwise)
}

func (n *optionalNode) CopyNode() Parser {
	return attach(&optionalNode{oneChild{delegate: n.delegate}, n.otherwise})
}
func (n *optionalNode) equalNode(other Parser) bool {
	o, ok := other.(*optionalNode)
	return ok && reflect.DeepEqual(n.otherwise, o.otherwise)
}

// repeatNode is bounded greedy repetition: it matches its child exactly min
// times (propagating any failure), then continues matching while it
// succeeds and the count stays below max. max may be Unbounded.
type repeatNode struct {
	oneChild
	min, max int
}

// Repeat builds bounded greedy repetition of p: min to max times inclusive.
// max may be Unbounded. Panics (a construction error) if min is negative or
// max is less than min.
func Repeat(p Parser, min, max int) Parser {
	if min < 0 || (max != Unbounded && max < min) {
		panicConstruction("invalid repeat bounds [%d, %d]", min, max)
	}
	return attach(&repeatNode{oneChild{delegate: p}, min, max})
}

func (n *repeatNode) Recognize(ctx *Context) Result {
	values := make([]interface{}, 0, n.min)
	cur := ctx
	for i := 0; i < n.min; i++ {
		res := n.delegate.Recognize(cur)
		if res.IsFailure() {
			return res
		}
		values = append(values, res.Value())
		cur = res.context()
	}
	for n.max == Unbounded || len(values) < n.max {
		res := n.delegate.Recognize(cur)
		if res.IsFailure() {
			break
		}
		values = append(values, res.Value())
		cur = res.context()
	}
	return cur.Success(values)
}

func (n *repeatNode) CopyNode() Parser {
	return attach(&repeatNode{oneChild{delegate: n.delegate}, n.min, n.max})
}
func (n *repeatNode) equalNode(other Parser) bool {
	o, ok := other.(*repeatNode)
	return ok && o.min == n.min && o.max == n.max
}

// actionNode runs its child; on success, it replaces the value with
// action(value). action must be pure: it must not inspect position or
// buffer, and a panic inside it is fatal to the caller of Parse.
type actionNode struct {
	oneChild
	action func(interface{}) interface{}
}

func newAction(p Parser, f func(interface{}) interface{}) Parser {
	return attach(&actionNode{oneChild{delegate: p}, f})
}

func (n *actionNode) Recognize(ctx *Context) Result {
	res := n.delegate.Recognize(ctx)
	if res.IsFailure() {
		return res
	}
	return res.context().Success(n.action(res.Value()))
}

func (n *actionNode) CopyNode() Parser {
	return attach(&actionNode{oneChild{delegate: n.delegate}, n.action})
}

// equalNode compares action functions by reference identity: two
// semantically equivalent parsers built from distinct action closures are
// NOT equal (the source's behavior here is ambiguous; this module picks
// identity equality, see DESIGN.md). A func value points at its closure
// object, so comparing those pointers tells apart closures that share code
// but capture different values (Pick(1) vs Pick(2)), which a comparison of
// code addresses would not.
func (n *actionNode) equalNode(other Parser) bool {
	o, ok := other.(*actionNode)
	if !ok {
		return false
	}
	return *(*unsafe.Pointer)(unsafe.Pointer(&n.action)) == *(*unsafe.Pointer)(unsafe.Pointer(&o.action))
}

// flattenNode runs its child; on success, it replaces the value with the
// literal substring of input the child covered.
type flattenNode struct{ oneChild }

func newFlatten(p Parser) Parser {
	return attach(&flattenNode{oneChild{delegate: p}})
}

func (n *flattenNode) Recognize(ctx *Context) Result {
	res := n.delegate.Recognize(ctx)
	if res.IsFailure() {
		return res
	}
	text := ctx.Slice(ctx.Position(), res.Position())
	return res.context().Success(text)
}

func (n *flattenNode) CopyNode() Parser {
	return attach(&flattenNode{oneChild{delegate: n.delegate}})
}
func (n *flattenNode) equalNode(other Parser) bool {
	_, ok := other.(*flattenNode)
	return ok
}

// Token is the value produced by Parser.Token(): a record of a matched
// value together with the source span it was read from.
type Token struct {
	Buffer string
	Start  int
	End    int
	Value  interface{}
}

// tokenNode runs its child; on success, it wraps the value in a Token
// recording the span the child covered.
type tokenNode struct{ oneChild }

func newToken(p Parser) Parser {
	return attach(&tokenNode{oneChild{delegate: p}})
}

func (n *tokenNode) Recognize(ctx *Context) Result {
	res := n.delegate.Recognize(ctx)
	if res.IsFailure() {
		return res
	}
	start, end := ctx.Position(), res.Position()
	tok := Token{Buffer: ctx.Slice(start, end), Start: start, End: end, Value: res.Value()}
	return res.context().Success(tok)
}

func (n *tokenNode) CopyNode() Parser {
	return attach(&tokenNode{oneChild{delegate: n.delegate}})
}
func (n *tokenNode) equalNode(other Parser) bool {
	_, ok := other.(*tokenNode)
	return ok
}

// trimNode skips ws before and after running its child, on both sides
// tolerating ws's failure as "nothing to skip" rather than propagating it.
type trimNode struct {
	oneChild
	ws Parser
}

func newTrim(p, ws Parser) Parser {
	return attach(&trimNode{oneChild{delegate: p}, ws})
}

func (n *trimNode) Recognize(ctx *Context) Result {
	startCtx := ctx
	if pre := n.ws.Recognize(ctx); pre.IsSuccess() {
		startCtx = pre.context()
	}

	res := n.delegate.Recognize(startCtx)
	if res.IsFailure() {
		return res
	}

	afterCtx := res.context()
	endCtx := afterCtx
	if post := n.ws.Recognize(afterCtx); post.IsSuccess() {
		endCtx = post.context()
	}
	return endCtx.Success(res.Value())
}

func (n *trimNode) ChildNodes() []Parser          { return []Parser{n.delegate, n.ws} }
func (n *trimNode) ReplaceChild(old, new Parser) {
	if n.delegate == old {
		n.delegate = new
	}
	if n.ws == old {
		n.ws = new
	}
}
func (n *trimNode) CopyNode() Parser {
	return attach(&trimNode{oneChild{delegate: n.delegate}, n.ws})
}
func (n *trimNode) equalNode(other Parser) bool {
	_, ok := other.(*trimNode)
	return ok
}

// failNode always fails with a fixed message, consuming no input. It backs
// Fail and the initial, unassigned state of a Forward reference.
type failNode struct {
	parserBase
	message string
}

// Fail builds a parser that always fails with message.
func Fail(message string) Parser {
	return attach(&failNode{message: message})
}

func (n *failNode) Recognize(ctx *Context) Result   { return ctx.Failure(n.message) }
func (n *failNode) ChildNodes() []Parser            { return nil }
func (n *failNode) ReplaceChild(old, new Parser)    {}
func (n *failNode) CopyNode() Parser                { return attach(&failNode{message: n.message}) }
func (n *failNode) equalNode(other Parser) bool {
	o, ok := other.(*failNode)
	return ok && o.message == n.message
}
