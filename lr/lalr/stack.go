package lalr

import "github.com/bqlite/lemonade/lr"

// StackEntry is an entry of the parse stack: a state, the grammar symbol which
// led to it, and the semantic value of that symbol.
type StackEntry struct {
	State int
	Major lr.Symbol
	Minor interface{}
}

// stack is the parse stack. Its bottom entry is (0, $, nil) while a parse is
// active.
type stack struct {
	entries  []StackEntry
	maxDepth int
}

func newStack() stack {
	return stack{entries: make([]StackEntry, 0, 64)}
}

func (s *stack) push(e StackEntry) {
	s.entries = append(s.entries, e)
	if len(s.entries) > s.maxDepth {
		s.maxDepth = len(s.entries)
	}
}

// popOne removes the top entry and returns its symbol. An empty stack yields
// lr.EOF.
func (s *stack) popOne() lr.Symbol {
	n := len(s.entries)
	if n == 0 {
		return lr.EOF
	}
	major := s.entries[n-1].Major
	s.entries[n-1] = StackEntry{} // release semantic value
	s.entries = s.entries[:n-1]
	return major
}

func (s *stack) popN(n int) {
	for ; n > 0; n-- {
		s.popOne()
	}
}

func (s *stack) top() StackEntry {
	return s.entries[len(s.entries)-1]
}

// tail returns the top n entries, bottom-most first.
func (s *stack) tail(n int) []StackEntry {
	return s.entries[len(s.entries)-n:]
}

func (s *stack) empty() bool {
	return len(s.entries) == 0
}

func (s *stack) depth() int {
	return len(s.entries)
}
