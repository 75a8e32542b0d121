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

package vector

import (
	"iter"
	"sync/atomic"

	"github.com/EchoBoy/TinySTL/algorithm"
	"github.com/EchoBoy/TinySTL/allocator"
	"github.com/EchoBoy/TinySTL/construct"
	"github.com/EchoBoy/TinySTL/internal/debug"
	"github.com/EchoBoy/TinySTL/iterator"
	"github.com/EchoBoy/TinySTL/memory"
)

type config struct {
	mem memory.Allocator
}

// Option configures a new Vector.
type Option func(*config)

// WithAllocator draws the vector's storage from mem instead of
// memory.DefaultPool.
func WithAllocator(mem memory.Allocator) Option {
	return func(c *config) { c.mem = mem }
}

// Vector is a growable array of T. The zero value is not usable; create
// vectors with New or one of the other constructors.
type Vector[T any] struct {
	refCount int64
	alloc    allocator.Allocator[T]

	// len(buf) == cap(buf) is the capacity; buf[:finish] is live.
	buf    []T
	finish int
}

// New returns an empty vector.
func New[T any](opts ...Option) *Vector[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Vector[T]{refCount: 1, alloc: allocator.New[T](cfg.mem)}
}

// NewSized returns a vector of n zero values.
func NewSized[T any](n int, opts ...Option) *Vector[T] {
	var zero T
	return NewFilled(n, zero, opts...)
}

// NewFilled returns a vector of n copies of x.
func NewFilled[T any](n int, x T, opts ...Option) *Vector[T] {
	v := New[T](opts...)
	v.InsertN(0, n, x)
	return v
}

// FromSlice returns a vector holding copies of vals.
func FromSlice[T any](vals []T, opts ...Option) *Vector[T] {
	v := New[T](opts...)
	v.InsertSlice(0, vals)
	return v
}

// FromRange returns a vector holding copies of [first, last).
func FromRange[T any, It iterator.Reader[T, It]](first, last It, opts ...Option) *Vector[T] {
	v := New[T](opts...)
	InsertRange(v, 0, first, last)
	return v
}

// Clone returns a copy of v with capacity Len, using the same allocator.
func (v *Vector[T]) Clone() *Vector[T] {
	return FromSlice(v.Values(), WithAllocator(v.alloc.Mem()))
}

// Move transfers the storage of v to a new vector and leaves v empty.
func Move[T any](v *Vector[T]) *Vector[T] {
	out := &Vector[T]{refCount: 1, alloc: v.alloc, buf: v.buf, finish: v.finish}
	v.buf, v.finish = nil, 0
	return out
}

// Retain increases the reference count by 1.
func (v *Vector[T]) Retain() {
	atomic.AddInt64(&v.refCount, 1)
}

// Release decreases the reference count by 1. When the reference count goes
// to zero, every element is destroyed and the storage is freed.
func (v *Vector[T]) Release() {
	debug.Assert(atomic.LoadInt64(&v.refCount) > 0, "too many releases")

	if atomic.AddInt64(&v.refCount, -1) == 0 {
		v.Clear()
		v.alloc.Deallocate(v.buf)
		v.buf = nil
	}
}

func (v *Vector[T]) Len() int    { return v.finish }
func (v *Vector[T]) Cap() int    { return len(v.buf) }
func (v *Vector[T]) Empty() bool { return v.finish == 0 }

// At returns the element at i.
func (v *Vector[T]) At(i int) T {
	debug.Assert(i >= 0 && i < v.finish, "vector: index out of range")
	return v.buf[i]
}

// Ref returns a pointer to the element at i. It is invalidated by any
// operation that reallocates.
func (v *Vector[T]) Ref(i int) *T {
	debug.Assert(i >= 0 && i < v.finish, "vector: index out of range")
	return &v.buf[i]
}

// Set assigns x to the element at i.
func (v *Vector[T]) Set(i int, x T) {
	debug.Assert(i >= 0 && i < v.finish, "vector: index out of range")
	construct.Assign(&v.buf[i], x)
}

func (v *Vector[T]) Front() T {
	debug.Assert(v.finish > 0, "vector: front of empty vector")
	return v.buf[0]
}

func (v *Vector[T]) Back() T {
	debug.Assert(v.finish > 0, "vector: back of empty vector")
	return v.buf[v.finish-1]
}

// Values returns the live elements. The slice aliases the vector's storage
// and is invalidated by any operation that reallocates.
func (v *Vector[T]) Values() []T { return v.buf[:v.finish:v.finish] }

// Begin returns a random-access iterator at the first element.
func (v *Vector[T]) Begin() iterator.Slice[T] { return iterator.Begin(v.buf[:v.finish]) }

// End returns the past-the-end iterator.
func (v *Vector[T]) End() iterator.Slice[T] { return iterator.End(v.buf[:v.finish]) }

// All yields the elements with their indexes, front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.finish; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Backward yields the elements with their indexes, back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.finish - 1; i >= 0; i-- {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

func (v *Vector[T]) PushBack(x T) {
	if v.finish < len(v.buf) {
		construct.Construct(&v.buf[v.finish], x)
		v.finish++
		return
	}
	v.insertAux(v.finish, 1, fillSource[T]{x})
}

func (v *Vector[T]) PopBack() {
	debug.Assert(v.finish > 0, "vector: pop from empty vector")
	v.finish--
	construct.Destroy(&v.buf[v.finish])
}

// Clear destroys every element. The capacity is kept.
func (v *Vector[T]) Clear() {
	construct.DestroyRange(v.buf[:v.finish])
	v.finish = 0
}

// Swap exchanges the contents of v and o, allocators included.
func (v *Vector[T]) Swap(o *Vector[T]) {
	v.alloc, o.alloc = o.alloc, v.alloc
	v.buf, o.buf = o.buf, v.buf
	v.finish, o.finish = o.finish, v.finish
}

// Reserve makes the capacity at least n. The elements are moved to a new
// buffer if the capacity grows.
func (v *Vector[T]) Reserve(n int) {
	if n <= len(v.buf) {
		return
	}
	nb := v.alloc.Allocate(n)
	algorithm.UninitializedCopy(nb, v.buf[:v.finish])
	v.replace(nb)
}

// Resize makes the length n, appending zero values or erasing from the back.
func (v *Vector[T]) Resize(n int) {
	var zero T
	v.ResizeFill(n, zero)
}

// ResizeFill makes the length n, appending copies of x or erasing from the
// back.
func (v *Vector[T]) ResizeFill(n int, x T) {
	if n < v.finish {
		v.EraseRange(n, v.finish)
		return
	}
	v.InsertN(v.finish, n-v.finish, x)
}

// Insert inserts x before pos and returns pos.
func (v *Vector[T]) Insert(pos int, x T) int {
	v.insertAux(pos, 1, fillSource[T]{x})
	return pos
}

// InsertN inserts n copies of x before pos.
func (v *Vector[T]) InsertN(pos, n int, x T) {
	v.insertAux(pos, n, fillSource[T]{x})
}

// InsertSlice inserts copies of vals before pos. vals must not alias the
// vector's storage.
func (v *Vector[T]) InsertSlice(pos int, vals []T) {
	v.insertAux(pos, len(vals), sliceSource[T](vals))
}

// InsertRange inserts copies of [first, last) before pos and returns the
// position just past the inserted elements. The range must not be drawn from
// v itself.
func InsertRange[T any, It iterator.Reader[T, It]](v *Vector[T], pos int, first, last It) int {
	if !first.Category().Satisfies(iterator.Forward) {
		// single pass: the length is unknown until the range is consumed
		for ; !first.Equal(last); first = first.Next() {
			v.Insert(pos, first.Value())
			pos++
		}
		return pos
	}
	n := iterator.Distance(first, last)
	v.insertAux(pos, n, rangeSource[T, It]{first})
	return pos + n
}

// Erase removes the element at pos and returns pos.
func (v *Vector[T]) Erase(pos int) int {
	return v.EraseRange(pos, pos+1)
}

// EraseRange removes the elements in [first, last) and returns first. The
// tail is shifted down by assignment and the stale slots at the back are
// destroyed; the capacity does not change.
func (v *Vector[T]) EraseRange(first, last int) int {
	debug.Assert(0 <= first && first <= last && last <= v.finish, "vector: erase range out of bounds")
	if first == last {
		return first
	}
	algorithm.Copy(v.buf[first:], v.buf[last:v.finish])
	newFinish := v.finish - (last - first)
	construct.DestroyRange(v.buf[newFinish:v.finish])
	v.finish = newFinish
	return first
}

// insertAux makes room for n elements before pos and has src fill them.
func (v *Vector[T]) insertAux(pos, n int, src source[T]) {
	debug.Assert(0 <= pos && pos <= v.finish, "vector: insert position out of bounds")
	if n <= 0 {
		return
	}

	if len(v.buf)-v.finish >= n {
		elemsAfter := v.finish - pos
		oldFinish := v.finish
		if elemsAfter > n {
			// The last n elements move into raw slots, the rest of the tail
			// shifts up by assignment, and the gap is overwritten.
			algorithm.UninitializedCopy(v.buf[oldFinish:], v.buf[oldFinish-n:oldFinish])
			v.finish += n
			algorithm.CopyBackward(v.buf[pos:oldFinish], v.buf[pos:oldFinish-n])
			src.assign(v.buf[pos:pos+n], 0, n)
		} else {
			// The part of the new elements that lands past the old end is
			// constructed first, then the whole tail moves behind it.
			src.construct(v.buf[oldFinish:], elemsAfter, n)
			v.finish += n - elemsAfter
			algorithm.UninitializedCopy(v.buf[v.finish:], v.buf[pos:oldFinish])
			v.finish += elemsAfter
			src.assign(v.buf[pos:oldFinish], 0, elemsAfter)
		}
		return
	}

	old := len(v.buf)
	nb := v.alloc.Allocate(old + max(old, n))
	algorithm.UninitializedCopy(nb, v.buf[:pos])
	src.construct(nb[pos:], 0, n)
	algorithm.UninitializedCopy(nb[pos+n:], v.buf[pos:v.finish])
	finish := v.finish + n
	v.replace(nb)
	v.finish = finish
}

// replace destroys and frees the current buffer and installs nb, which
// already holds copies of the live elements.
func (v *Vector[T]) replace(nb []T) {
	construct.DestroyRange(v.buf[:v.finish])
	v.alloc.Deallocate(v.buf)
	v.buf = nb
}

// source produces the elements of an insertion. construct writes elements
// [from, to) of the source into raw slots, assign over live ones.
type source[T any] interface {
	construct(dst []T, from, to int)
	assign(dst []T, from, to int)
}

type fillSource[T any] struct{ x T }

func (s fillSource[T]) construct(dst []T, from, to int) {
	algorithm.UninitializedFillN(dst, to-from, s.x)
}

func (s fillSource[T]) assign(dst []T, from, to int) {
	algorithm.FillN(dst, to-from, s.x)
}

type sliceSource[T any] []T

func (s sliceSource[T]) construct(dst []T, from, to int) {
	algorithm.UninitializedCopy(dst, s[from:to])
}

func (s sliceSource[T]) assign(dst []T, from, to int) {
	algorithm.Copy(dst, s[from:to])
}

type rangeSource[T any, It iterator.Reader[T, It]] struct{ first It }

func (s rangeSource[T, It]) bounds(from, to int) (It, It) {
	begin := iterator.Advance(s.first, from)
	return begin, iterator.Advance(begin, to-from)
}

func (s rangeSource[T, It]) construct(dst []T, from, to int) {
	first, last := s.bounds(from, to)
	algorithm.UninitializedCopyRange[T](first, last, dst)
}

func (s rangeSource[T, It]) assign(dst []T, from, to int) {
	first, last := s.bounds(from, to)
	algorithm.CopyRange[T](first, last, assigner[T]{iterator.Begin(dst)})
}

// assigner writes through a slice iterator with assignment semantics.
type assigner[T any] struct{ iterator.Slice[T] }

func (a assigner[T]) Set(x T) { construct.Assign(a.Ref(), x) }

func (a assigner[T]) Next() assigner[T] { return assigner[T]{a.Slice.Next()} }
