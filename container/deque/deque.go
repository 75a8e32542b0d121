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

package deque

import (
	"iter"
	"sync/atomic"

	"github.com/EchoBoy/TinySTL/algorithm"
	"github.com/EchoBoy/TinySTL/allocator"
	"github.com/EchoBoy/TinySTL/construct"
	"github.com/EchoBoy/TinySTL/internal/debug"
	"github.com/EchoBoy/TinySTL/iterator"
	"github.com/EchoBoy/TinySTL/memory"
	"github.com/EchoBoy/TinySTL/traits"
)

const (
	bucketBytes = 1024
	minMapSize  = 8
)

// BucketCap returns how many elements of size bytes share one bucket.
func BucketCap(size int) int {
	switch {
	case size == 0:
		return bucketBytes
	case size < bucketBytes:
		return bucketBytes / size
	default:
		return 1
	}
}

type config struct {
	mem memory.Allocator
}

// Option configures a new Deque.
type Option func(*config)

// WithAllocator draws the deque's buckets from mem instead of
// memory.DefaultPool.
func WithAllocator(mem memory.Allocator) Option {
	return func(c *config) { c.mem = mem }
}

// Deque is a double-ended queue of T. The zero value is not usable; create
// deques with New or one of the other constructors.
type Deque[T any] struct {
	refCount int64

	nodes allocator.Allocator[T]
	maps  allocator.Allocator[[]T]

	// Every bucket in m[start.node:finish.node+1] is allocated. finish.cur
	// always addresses a slot inside its bucket.
	m         [][]T
	bucketCap int
	start     position
	finish    position
}

func newDeque[T any](n int, opts []Option) *Deque[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	nodes := allocator.New[T](cfg.mem)
	d := &Deque[T]{
		refCount:  1,
		nodes:     nodes,
		maps:      allocator.Rebind[[]T](nodes),
		bucketCap: BucketCap(traits.Of[T]().Size),
	}
	d.initMap(n)
	return d
}

// New returns an empty deque. It owns one bucket from the start.
func New[T any](opts ...Option) *Deque[T] {
	return newDeque[T](0, opts)
}

// NewSized returns a deque of n zero values.
func NewSized[T any](n int, opts ...Option) *Deque[T] {
	var zero T
	return NewFilled(n, zero, opts...)
}

// NewFilled returns a deque of n copies of x.
func NewFilled[T any](n int, x T, opts ...Option) *Deque[T] {
	d := newDeque[T](n, opts)
	for node := d.start.node; node < d.finish.node; node++ {
		algorithm.UninitializedFill(d.m[node], x)
	}
	algorithm.UninitializedFill(d.m[d.finish.node][:d.finish.cur], x)
	return d
}

// FromSlice returns a deque holding copies of vals.
func FromSlice[T any](vals []T, opts ...Option) *Deque[T] {
	d := newDeque[T](len(vals), opts)
	for node := d.start.node; node <= d.finish.node; node++ {
		vals = vals[algorithm.UninitializedCopy(d.m[node], vals[:min(len(vals), d.bucketCap)]):]
	}
	return d
}

// FromRange returns a deque holding copies of [first, last).
func FromRange[T any, It iterator.Reader[T, It]](first, last It, opts ...Option) *Deque[T] {
	if !first.Category().Satisfies(iterator.Forward) {
		d := New[T](opts...)
		for ; !first.Equal(last); first = first.Next() {
			d.PushBack(first.Value())
		}
		return d
	}
	d := newDeque[T](iterator.Distance(first, last), opts)
	for p := d.start; !first.Equal(last); first = first.Next() {
		construct.Construct(&d.m[p.node][p.cur], first.Value())
		p = p.next(d.bucketCap)
	}
	return d
}

// Clone returns a copy of d using the same allocator.
func (d *Deque[T]) Clone() *Deque[T] {
	return FromRange[T](d.Begin(), d.End(), WithAllocator(d.nodes.Mem()))
}

// Move transfers the contents of d to a new deque and leaves d empty.
func Move[T any](d *Deque[T]) *Deque[T] {
	out := &Deque[T]{
		refCount:  1,
		nodes:     d.nodes,
		maps:      d.maps,
		m:         d.m,
		bucketCap: d.bucketCap,
		start:     d.start,
		finish:    d.finish,
	}
	d.m = nil
	d.initMap(0)
	return out
}

// Retain increases the reference count by 1.
func (d *Deque[T]) Retain() {
	atomic.AddInt64(&d.refCount, 1)
}

// Release decreases the reference count by 1. When the reference count goes
// to zero, every element is destroyed and all buckets and the map are freed.
func (d *Deque[T]) Release() {
	debug.Assert(atomic.LoadInt64(&d.refCount) > 0, "too many releases")

	if atomic.AddInt64(&d.refCount, -1) == 0 {
		d.Clear()
		d.freeNode(d.start.node)
		d.maps.Deallocate(d.m)
		d.m = nil
	}
}

func (d *Deque[T]) Len() int    { return d.finish.diff(d.start, d.bucketCap) }
func (d *Deque[T]) Empty() bool { return d.start == d.finish }

func (d *Deque[T]) Begin() Iterator[T] { return Iterator[T]{d: d, pos: d.start} }
func (d *Deque[T]) End() Iterator[T]   { return Iterator[T]{d: d, pos: d.finish} }

// At returns the element at index i.
func (d *Deque[T]) At(i int) T { return *d.Ref(i) }

// Ref returns a pointer to the element at index i.
func (d *Deque[T]) Ref(i int) *T {
	debug.Assert(i >= 0 && i < d.Len(), "deque: index out of range")
	p := d.start.add(i, d.bucketCap)
	return &d.m[p.node][p.cur]
}

// Set assigns x to the element at index i.
func (d *Deque[T]) Set(i int, x T) { construct.Assign(d.Ref(i), x) }

func (d *Deque[T]) Front() T {
	debug.Assert(!d.Empty(), "deque: front of empty deque")
	return d.m[d.start.node][d.start.cur]
}

func (d *Deque[T]) Back() T {
	debug.Assert(!d.Empty(), "deque: back of empty deque")
	p := d.finish.prev(d.bucketCap)
	return d.m[p.node][p.cur]
}

// All yields the elements with their indexes, front to back.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for p := d.start; p != d.finish; p = p.next(d.bucketCap) {
			if !yield(i, d.m[p.node][p.cur]) {
				return
			}
			i++
		}
	}
}

// Backward yields the elements with their indexes, back to front.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := d.Len()
		for p := d.finish; p != d.start; {
			p = p.prev(d.bucketCap)
			i--
			if !yield(i, d.m[p.node][p.cur]) {
				return
			}
		}
	}
}

// Values returns a copy of the elements in order.
func (d *Deque[T]) Values() []T {
	out := make([]T, 0, d.Len())
	for _, x := range d.All() {
		out = append(out, x)
	}
	return out
}

func (d *Deque[T]) PushBack(x T) {
	if d.finish.cur != d.bucketCap-1 {
		construct.Construct(&d.m[d.finish.node][d.finish.cur], x)
		d.finish.cur++
		return
	}
	d.reserveMapAtBack(1)
	d.m[d.finish.node+1] = d.nodes.Allocate(d.bucketCap)
	construct.Construct(&d.m[d.finish.node][d.finish.cur], x)
	d.finish = position{node: d.finish.node + 1}
}

func (d *Deque[T]) PushFront(x T) {
	if d.start.cur != 0 {
		d.start.cur--
		construct.Construct(&d.m[d.start.node][d.start.cur], x)
		return
	}
	d.reserveMapAtFront(1)
	d.m[d.start.node-1] = d.nodes.Allocate(d.bucketCap)
	d.start = position{node: d.start.node - 1, cur: d.bucketCap - 1}
	construct.Construct(&d.m[d.start.node][d.start.cur], x)
}

func (d *Deque[T]) PopBack() {
	debug.Assert(!d.Empty(), "deque: pop from empty deque")
	if d.finish.cur == 0 {
		d.freeNode(d.finish.node)
		d.finish = position{node: d.finish.node - 1, cur: d.bucketCap}
	}
	d.finish.cur--
	construct.Destroy(&d.m[d.finish.node][d.finish.cur])
}

func (d *Deque[T]) PopFront() {
	debug.Assert(!d.Empty(), "deque: pop from empty deque")
	construct.Destroy(&d.m[d.start.node][d.start.cur])
	d.start.cur++
	if d.start.cur == d.bucketCap {
		d.freeNode(d.start.node)
		d.start = position{node: d.start.node + 1}
	}
}

// Clear destroys every element and frees every bucket but the first.
func (d *Deque[T]) Clear() {
	for node := d.start.node + 1; node < d.finish.node; node++ {
		construct.DestroyRange(d.m[node])
		d.freeNode(node)
	}
	if d.start.node != d.finish.node {
		construct.DestroyRange(d.m[d.start.node][d.start.cur:])
		construct.DestroyRange(d.m[d.finish.node][:d.finish.cur])
		d.freeNode(d.finish.node)
	} else {
		construct.DestroyRange(d.m[d.start.node][d.start.cur:d.finish.cur])
	}
	d.finish = d.start
}

// Swap exchanges the contents of d and o, allocators included.
func (d *Deque[T]) Swap(o *Deque[T]) {
	d.nodes, o.nodes = o.nodes, d.nodes
	d.maps, o.maps = o.maps, d.maps
	d.m, o.m = o.m, d.m
	d.bucketCap, o.bucketCap = o.bucketCap, d.bucketCap
	d.start, o.start = o.start, d.start
	d.finish, o.finish = o.finish, d.finish
}

// Insert inserts x before index pos and returns pos. Elements on the shorter
// side of pos are shifted by one.
func (d *Deque[T]) Insert(pos int, x T) int {
	n := d.Len()
	debug.Assert(pos >= 0 && pos <= n, "deque: insert position out of range")
	switch {
	case pos == 0:
		d.PushFront(x)
		return 0
	case pos == n:
		d.PushBack(x)
		return pos
	case pos < n/2:
		d.PushFront(d.Front())
		// shift [1, pos] down over [2, pos+1)
		first := d.Begin().Next()
		algorithm.CopyRange[T](first.Next(), first.Add(pos), first)
	default:
		d.PushBack(d.Back())
		// shift [pos, n-1) up by one, ending at the old last element
		last := d.End().Prev()
		copyBackward(d.Begin().Add(pos), last.Prev(), last)
	}
	d.Set(pos, x)
	return pos
}

// Erase removes the element at index pos and returns pos. Elements on the
// shorter side of pos are shifted by one.
func (d *Deque[T]) Erase(pos int) int {
	n := d.Len()
	debug.Assert(pos >= 0 && pos < n, "deque: erase position out of range")
	it := d.Begin().Add(pos)
	if pos < n/2 {
		copyBackward(d.Begin(), it, it.Next())
		d.PopFront()
	} else {
		algorithm.CopyRange[T](it.Next(), d.End(), it)
		d.PopBack()
	}
	return pos
}

// copyBackward assigns [first, last) to the slots ending just before
// dstEnd, last element first.
func copyBackward[T any](first, last, dstEnd Iterator[T]) {
	for !last.Equal(first) {
		last = last.Prev()
		dstEnd = dstEnd.Prev()
		dstEnd.Set(last.Value())
	}
}

// initMap allocates a map and the buckets for n elements, centered.
func (d *Deque[T]) initMap(n int) {
	numNodes := n/d.bucketCap + 1
	d.m = d.maps.Allocate(max(minMapSize, numNodes+2))

	first := (len(d.m) - numNodes) / 2
	last := first + numNodes - 1
	for node := first; node <= last; node++ {
		d.m[node] = d.nodes.Allocate(d.bucketCap)
	}
	d.start = position{node: first}
	d.finish = position{node: last, cur: n % d.bucketCap}
}

func (d *Deque[T]) freeNode(node int) {
	d.nodes.Deallocate(d.m[node])
	d.m[node] = nil
}

func (d *Deque[T]) reserveMapAtBack(nodesToAdd int) {
	if nodesToAdd > len(d.m)-d.finish.node-1 {
		d.reallocateMap(nodesToAdd, false)
	}
}

func (d *Deque[T]) reserveMapAtFront(nodesToAdd int) {
	if nodesToAdd > d.start.node {
		d.reallocateMap(nodesToAdd, true)
	}
}

// reallocateMap makes room for nodesToAdd more buckets on one side. A map
// more than twice the size needed is recentered in place; otherwise a larger
// map is allocated. Only bucket handles move.
func (d *Deque[T]) reallocateMap(nodesToAdd int, atFront bool) {
	oldNumNodes := d.finish.node - d.start.node + 1
	newNumNodes := oldNumNodes + nodesToAdd
	live := d.m[d.start.node : d.finish.node+1]

	var newStart int
	if len(d.m) > 2*newNumNodes {
		newStart = (len(d.m) - newNumNodes) / 2
		if atFront {
			newStart += nodesToAdd
		}
		if newStart < d.start.node {
			algorithm.Copy(d.m[newStart:], live)
		} else {
			algorithm.CopyBackward(d.m[:newStart+oldNumNodes], live)
		}
		// drop the handles left behind outside the new window
		for node := d.start.node; node <= d.finish.node; node++ {
			if node < newStart || node >= newStart+oldNumNodes {
				d.m[node] = nil
			}
		}
	} else {
		newMapSize := len(d.m) + max(len(d.m), nodesToAdd) + 2
		nm := d.maps.Allocate(newMapSize)
		newStart = (newMapSize - newNumNodes) / 2
		if atFront {
			newStart += nodesToAdd
		}
		algorithm.Copy(nm[newStart:], live)
		d.maps.Deallocate(d.m)
		d.m = nm
	}
	d.start.node = newStart
	d.finish.node = newStart + oldNumNodes - 1
}
