package pcomb

// Forward is a settable parser used to tie recursive grammars together. It
// initially delegates to a parser that always fails ("undefined forward
// reference"), and its real delegate is assigned once via Set, closing the
// cycle. Parsing before Set has been called fails with that error.
type Forward struct {
	oneChild
}

// NewForward creates an unassigned forward reference.
func NewForward() *Forward {
	f := &Forward{oneChild{delegate: Fail("undefined forward reference")}}
	attach(f)
	return f
}

// Set assigns the parser this forward reference delegates to. Call it
// exactly once per Forward, after referencing the Forward itself from
// within the grammar being tied together.
func (f *Forward) Set(p Parser) {
	f.delegate = p
}

func (f *Forward) Recognize(ctx *Context) Result {
	return f.delegate.Recognize(ctx)
}

func (f *Forward) CopyNode() Parser {
	cp := &Forward{oneChild{delegate: f.delegate}}
	attach(cp)
	return cp
}

func (f *Forward) equalNode(other Parser) bool {
	_, ok := other.(*Forward)
	return ok
}
