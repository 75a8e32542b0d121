// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package list

import (
	"iter"
	"sync/atomic"
	"unsafe"

	"github.com/EchoBoy/TinySTL/allocator"
	"github.com/EchoBoy/TinySTL/construct"
	"github.com/EchoBoy/TinySTL/internal/debug"
	"github.com/EchoBoy/TinySTL/iterator"
	"github.com/EchoBoy/TinySTL/memory"
)

type node[T any] struct {
	prev, next *node[T]
	val        T
}

type config struct {
	mem memory.Allocator
}

// Option configures a new List.
type Option func(*config)

// WithAllocator sets the byte allocator the node allocator is built on.
func WithAllocator(mem memory.Allocator) Option {
	return func(c *config) { c.mem = mem }
}

// List is a doubly linked list of T. The zero value is not usable; create
// lists with New or one of the other constructors.
type List[T any] struct {
	refCount int64
	nodes    allocator.Allocator[node[T]]
	head     *node[T] // sentinel: head.next is the front, head.prev the back
	size     int
}

func newList[T any](nodes allocator.Allocator[node[T]]) *List[T] {
	l := &List[T]{refCount: 1, nodes: nodes}
	l.head = &nodes.Allocate(1)[0]
	l.head.prev, l.head.next = l.head, l.head
	return l
}

// New returns an empty list.
func New[T any](opts ...Option) *List[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return newList(allocator.New[node[T]](cfg.mem))
}

// NewFilled returns a list of n copies of x.
func NewFilled[T any](n int, x T, opts ...Option) *List[T] {
	l := New[T](opts...)
	l.InsertN(l.End(), n, x)
	return l
}

// FromSlice returns a list holding copies of vals.
func FromSlice[T any](vals []T, opts ...Option) *List[T] {
	l := New[T](opts...)
	l.InsertSlice(l.End(), vals)
	return l
}

// FromRange returns a list holding copies of [first, last).
func FromRange[T any, It iterator.Reader[T, It]](first, last It, opts ...Option) *List[T] {
	l := New[T](opts...)
	InsertRange(l, l.End(), first, last)
	return l
}

// Clone returns a copy of l sharing its allocator.
func (l *List[T]) Clone() *List[T] {
	out := newList(l.nodes)
	InsertRange[T](out, out.End(), l.Begin(), l.End())
	return out
}

// Retain increases the reference count by 1.
func (l *List[T]) Retain() {
	atomic.AddInt64(&l.refCount, 1)
}

// Release decreases the reference count by 1. When the reference count goes
// to zero, every element is destroyed and every node freed.
func (l *List[T]) Release() {
	debug.Assert(atomic.LoadInt64(&l.refCount) > 0, "too many releases")

	if atomic.AddInt64(&l.refCount, -1) == 0 {
		l.Clear()
		l.nodes.Deallocate(unsafe.Slice(l.head, 1))
		l.head = nil
	}
}

func (l *List[T]) Len() int    { return l.size }
func (l *List[T]) Empty() bool { return l.head.next == l.head }

func (l *List[T]) Begin() Iterator[T] { return Iterator[T]{l.head.next} }
func (l *List[T]) End() Iterator[T]   { return Iterator[T]{l.head} }

func (l *List[T]) Front() T {
	debug.Assert(!l.Empty(), "list: front of empty list")
	return l.head.next.val
}

func (l *List[T]) Back() T {
	debug.Assert(!l.Empty(), "list: back of empty list")
	return l.head.prev.val
}

// All yields the elements with their indexes, front to back.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head.next; n != l.head; n = n.next {
			if !yield(i, n.val) {
				return
			}
			i++
		}
	}
}

// Backward yields the elements with their indexes, back to front.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := l.size - 1
		for n := l.head.prev; n != l.head; n = n.prev {
			if !yield(i, n.val) {
				return
			}
			i--
		}
	}
}

// Values returns a copy of the elements in order.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for n := l.head.next; n != l.head; n = n.next {
		out = append(out, n.val)
	}
	return out
}

func (l *List[T]) PushFront(x T) { l.insert(l.head.next, x) }
func (l *List[T]) PushBack(x T)  { l.insert(l.head, x) }

func (l *List[T]) PopFront() {
	debug.Assert(!l.Empty(), "list: pop from empty list")
	l.erase(l.head.next)
}

func (l *List[T]) PopBack() {
	debug.Assert(!l.Empty(), "list: pop from empty list")
	l.erase(l.head.prev)
}

// Insert inserts x before pos and returns an iterator at the new element.
func (l *List[T]) Insert(pos Iterator[T], x T) Iterator[T] {
	return Iterator[T]{l.insert(pos.n, x)}
}

// InsertN inserts n copies of x before pos.
func (l *List[T]) InsertN(pos Iterator[T], n int, x T) {
	for ; n > 0; n-- {
		l.insert(pos.n, x)
	}
}

// InsertSlice inserts copies of vals before pos.
func (l *List[T]) InsertSlice(pos Iterator[T], vals []T) {
	for _, x := range vals {
		l.insert(pos.n, x)
	}
}

// InsertRange inserts copies of [first, last) before pos.
func InsertRange[T any, It iterator.Reader[T, It]](l *List[T], pos Iterator[T], first, last It) {
	for ; !first.Equal(last); first = first.Next() {
		l.insert(pos.n, first.Value())
	}
}

// Erase removes the element at pos and returns an iterator at the element
// that followed it.
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	return Iterator[T]{l.erase(pos.n)}
}

// EraseRange removes [first, last) and returns last.
func (l *List[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	for first != last {
		first = l.Erase(first)
	}
	return last
}

// Clear removes every element.
func (l *List[T]) Clear() { l.EraseRange(l.Begin(), l.End()) }

// RemoveIf erases every element for which pred returns true and reports how
// many were erased.
func (l *List[T]) RemoveIf(pred func(T) bool) int {
	removed := 0
	for it, end := l.Begin(), l.End(); it != end; {
		if pred(it.n.val) {
			it = l.Erase(it)
			removed++
			continue
		}
		it = it.Next()
	}
	return removed
}

// Remove erases every element equal to x and reports how many were erased.
func Remove[T comparable](l *List[T], x T) int {
	return l.RemoveIf(func(v T) bool { return v == x })
}

// Swap exchanges the contents of l and o in O(1).
func (l *List[T]) Swap(o *List[T]) {
	l.nodes, o.nodes = o.nodes, l.nodes
	l.head, o.head = o.head, l.head
	l.size, o.size = o.size, l.size
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	if a.size != b.size {
		return false
	}
	for x, y := a.head.next, b.head.next; x != a.head; x, y = x.next, y.next {
		if x.val != y.val {
			return false
		}
	}
	return true
}

func (l *List[T]) insert(pos *node[T], x T) *node[T] {
	n := &l.nodes.Allocate(1)[0]
	construct.Construct(&n.val, x)
	n.prev, n.next = pos.prev, pos
	pos.prev.next = n
	pos.prev = n
	l.size++
	return n
}

func (l *List[T]) erase(pos *node[T]) *node[T] {
	debug.Assert(pos != l.head, "list: erase of end iterator")
	next := pos.next
	pos.prev.next = next
	next.prev = pos.prev

	construct.Destroy(&pos.val)
	pos.prev, pos.next = nil, nil
	l.nodes.Deallocate(unsafe.Slice(pos, 1))
	l.size--
	return next
}
