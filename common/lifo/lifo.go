// Package lifo implements lifo stack backed by a singly linked list
package lifo

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/samber/mo"
)

// DefaultSeparator is placed between values by Stack.String.
const DefaultSeparator = " -> "

var (
	// ErrStackEmpty is returned by Pop, Peek and Top on an empty stack.
	ErrStackEmpty = errors.New("stack is empty")
	// ErrAbsentLink is returned by Node.MustNext on the bottom node.
	ErrAbsentLink = errors.New("node has no next link")
)

// Node holds a single value and the link to the node below it.
type Node[T any] struct {
	value T
	next  *Node[T]
}

// NewNode creates a node with no next link
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Value returns the held value
func (n *Node[T]) Value() T {
	return n.value
}

// SetNext replaces the next link. Passing nil makes n the bottom node.
func (n *Node[T]) SetNext(next *Node[T]) {
	n.next = next
}

// Next returns the node below n, or None if n is the bottom node
func (n *Node[T]) Next() mo.Option[*Node[T]] {
	if n.next == nil {
		return mo.None[*Node[T]]()
	}
	return mo.Some(n.next)
}

// MustNext returns the node below n or ErrAbsentLink
func (n *Node[T]) MustNext() (*Node[T], error) {
	next, ok := n.Next().Get()
	if !ok {
		return nil, ErrAbsentLink
	}
	return next, nil
}

// Stack is a last-in-first-out container. The zero value is an empty stack.
//
// A Stack is not safe for concurrent use; guard it with a mutex when it is
// shared between goroutines.
type Stack[T any] struct {
	head  *Node[T]
	count int
}

// New returns an empty stack
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push adds an item to the top of the stack
func (s *Stack[T]) Push(value T) {
	node := NewNode(value)
	node.SetNext(s.head)
	s.head = node
	s.count++
}

// Pop removes and returns the top item of the stack
func (s *Stack[T]) Pop() (T, error) {
	if s.count == 0 {
		var zero T
		return zero, ErrStackEmpty
	}
	node := s.head
	// The popped node keeps its link so iterators positioned on it can
	// still reach the rest of the chain.
	s.head = node.Next().OrEmpty()
	s.count--
	return node.Value(), nil
}

// Peek returns the top item without removing it
func (s *Stack[T]) Peek() (T, error) {
	if s.count == 0 {
		var zero T
		return zero, ErrStackEmpty
	}
	return s.head.Value(), nil
}

// Top is an alias for Peek
func (s *Stack[T]) Top() (T, error) {
	return s.Peek()
}

// Len returns the number of items in the stack
func (s *Stack[T]) Len() int {
	return s.count
}

// IsEmpty checks if the stack is empty
func (s *Stack[T]) IsEmpty() bool {
	return s.count == 0
}

// Iter returns an iterator over the values from top to bottom.
//
// The iterator sees the stack as it was when Iter was called. Nodes are
// never relinked once they are below the head, so later pushes and pops do
// not affect an iterator that is already running.
func (s *Stack[T]) Iter() *Iterator[T] {
	return &Iterator[T]{node: s.head}
}

// All returns the values from top to bottom as a range-over-func sequence.
// Each call to the returned function starts a fresh walk from the head
// captured by All.
func (s *Stack[T]) All() iter.Seq[T] {
	head := s.head
	return func(yield func(T) bool) {
		it := &Iterator[T]{node: head}
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Join renders the values from top to bottom separated by sep
func (s *Stack[T]) Join(sep string) string {
	var b strings.Builder
	it := s.Iter()
	for i := 0; ; i++ {
		v, ok := it.Next()
		if !ok {
			break
		}
		if i > 0 {
			b.WriteString(sep)
		}
		fmt.Fprintf(&b, "%v", v)
	}
	return b.String()
}

// String renders the stack using DefaultSeparator
func (s *Stack[T]) String() string {
	return s.Join(DefaultSeparator)
}

// Iterator walks a stack from top to bottom. It is single use.
type Iterator[T any] struct {
	node *Node[T]
}

// Next returns the next value, or false once the bottom has been passed
func (it *Iterator[T]) Next() (T, bool) {
	if it.node == nil {
		var zero T
		return zero, false
	}
	v := it.node.Value()
	it.node = it.node.Next().OrEmpty()
	return v, true
}
