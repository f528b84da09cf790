package pcomb

// sequenceNode matches an ordered list of child parsers one after another
// against the position left by the previous one, producing the ordered
// list of their values.
type sequenceNode struct {
	parserBase
	ps []Parser
}

// Seq builds the ordered concatenation of the given parsers: each must
// match in turn, threading position forward. On success its value is the
// ordered list of each child's value, of length len(parsers).
func Seq(parsers ...Parser) Parser {
	ps := make([]Parser, len(parsers))
	copy(ps, parsers)
	return attach(&sequenceNode{ps: ps})
}

func (n *sequenceNode) Recognize(ctx *Context) Result {
	values := make([]interface{}, len(n.ps))
	cur := ctx
	for i, p := range n.ps {
		res := p.Recognize(cur)
		if res.IsFailure() {
			return res
		}
		values[i] = res.Value()
		cur = res.context()
	}
	return cur.Success(values)
}

func (n *sequenceNode) ChildNodes() []Parser {
	out := make([]Parser, len(n.ps))
	copy(out, n.ps)
	return out
}

func (n *sequenceNode) ReplaceChild(old, new Parser) {
	for i, p := range n.ps {
		if p == old {
			n.ps[i] = new
		}
	}
}

func (n *sequenceNode) CopyNode() Parser {
	ps := make([]Parser, len(n.ps))
	copy(ps, n.ps)
	return attach(&sequenceNode{ps: ps})
}

func (n *sequenceNode) equalNode(other Parser) bool {
	o, ok := other.(*sequenceNode)
	return ok && len(o.ps) == len(n.ps)
}

// choiceNode tries each child parser in order against the same starting
// context, returning the first success. If every child fails, it returns
// the last failure observed — except a fatal error (one wrapping a cause
// via NewFatalParseError) is returned immediately, aborting the remaining
// alternatives.
type choiceNode struct {
	parserBase
	ps []Parser
}

// Choice builds the ordered alternative of the given parsers: the first one
// to succeed against a given position wins. Fails if every alternative
// fails, or as soon as one fails with a fatal error (NewFatalParseError),
// without trying the rest.
func Choice(parsers ...Parser) Parser {
	ps := make([]Parser, len(parsers))
	copy(ps, parsers)
	return attach(&choiceNode{ps: ps})
}

func (n *choiceNode) Recognize(ctx *Context) Result {
	var last Result
	haveLast := false
	for _, p := range n.ps {
		res := p.Recognize(ctx)
		if res.IsSuccess() {
			return res
		}
		last = res
		haveLast = true
		if res.Error() != nil && res.Error().IsFatal() {
			return res
		}
	}
	if !haveLast {
		return ctx.Failure("no alternatives")
	}
	return last
}

func (n *choiceNode) ChildNodes() []Parser {
	out := make([]Parser, len(n.ps))
	copy(out, n.ps)
	return out
}

func (n *choiceNode) ReplaceChild(old, new Parser) {
	for i, p := range n.ps {
		if p == old {
			n.ps[i] = new
		}
	}
}

func (n *choiceNode) CopyNode() Parser {
	ps := make([]Parser, len(n.ps))
	copy(ps, n.ps)
	return attach(&choiceNode{ps: ps})
}

func (n *choiceNode) equalNode(other Parser) bool {
	o, ok := other.(*choiceNode)
	return ok && len(o.ps) == len(n.ps)
}
