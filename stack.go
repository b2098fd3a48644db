package mvp

import (
	"github.com/akeil/mvp/internal/logging"
)

// Stack holds the chain of coordinate frames for one rendering pass.
//
// The first pushed function is the outermost frame (e.g. the projection),
// the last pushed one is the innermost frame, closest to model space.
// Current composes them in push order, so the innermost function is
// applied first.
//
// A Stack is not safe for concurrent use. Independent passes need their own
// Stack.
type Stack[V Vector[V]] struct {
	fns []Function[V]
}

// NewStack creates an empty stack.
func NewStack[V Vector[V]]() *Stack[V] {
	return &Stack[V]{fns: make([]Function[V], 0)}
}

// Push adds a function on top of the stack.
func (s *Stack[V]) Push(f Function[V]) {
	s.fns = append(s.fns, f)
	logging.Debug("push %v, depth %d", f, len(s.fns))
}

// Pop removes and returns the most recently pushed function.
//
// Popping an empty stack returns an "empty stack" error.
func (s *Stack[V]) Pop() (Function[V], error) {
	n := len(s.fns)
	if n == 0 {
		return Function[V]{}, NewEmptyStack()
	}

	f := s.fns[n-1]
	s.fns[n-1] = Function[V]{}
	s.fns = s.fns[:n-1]
	logging.Debug("pop %v, depth %d", f, len(s.fns))
	return f, nil
}

// Len is the number of pushed functions.
func (s *Stack[V]) Len() int {
	return len(s.fns)
}

// IsEmpty tells whether nothing is pushed.
func (s *Stack[V]) IsEmpty() bool {
	return len(s.fns) == 0
}

// Clear removes all functions.
// Call this once a frame is finished.
func (s *Stack[V]) Clear() {
	for i := range s.fns {
		s.fns[i] = Function[V]{}
	}
	s.fns = s.fns[:0]
}

// Current returns the composition of all pushed functions, i.e. the
// mapping from the innermost frame (model space) to the outermost one.
//
// The result does not change when the stack is modified later.
func (s *Stack[V]) Current() Function[V] {
	return Compose(s.fns...)
}

// With pushes f, calls body and pops f again.
//
// The pop happens on every exit path, also when body returns an error or
// panics. The stack is restored to the depth it had before f was pushed.
// The error from body is returned.
func (s *Stack[V]) With(f Function[V], body func(*Stack[V]) error) error {
	depth := len(s.fns)
	s.Push(f)
	defer s.restore(depth)

	return body(s)
}

func (s *Stack[V]) restore(depth int) {
	n := len(s.fns)
	if n != depth+1 {
		logging.Warning("unbalanced push/pop inside scope: depth %d, expected %d", n, depth+1)
	}
	if n <= depth {
		return
	}
	for i := depth; i < n; i++ {
		s.fns[i] = Function[V]{}
	}
	s.fns = s.fns[:depth]
}
