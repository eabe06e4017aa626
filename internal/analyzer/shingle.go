package analyzer

// shingleIterator yields every contiguous window of windowSize tokens.
type shingleIterator struct {
	tokens     []string
	windowSize int
	position   int
}

func newShingleIterator(tokens []string, windowSize int) *shingleIterator {
	return &shingleIterator{tokens: tokens, windowSize: windowSize}
}

// next returns the window starting at the current position, or nil when the
// remaining tokens no longer fill a window.
func (it *shingleIterator) next() []string {
	if len(it.tokens) < it.position+it.windowSize {
		return nil
	}
	window := it.tokens[it.position : it.position+it.windowSize]
	it.position++
	return window
}
