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
	"github.com/EchoBoy/TinySTL/construct"
	"github.com/EchoBoy/TinySTL/iterator"
)

// position addresses a slot as a map index and an offset into that bucket.
type position struct {
	node, cur int
}

func (p position) next(bucketCap int) position {
	p.cur++
	if p.cur == bucketCap {
		p.node++
		p.cur = 0
	}
	return p
}

func (p position) prev(bucketCap int) position {
	if p.cur == 0 {
		p.node--
		p.cur = bucketCap
	}
	p.cur--
	return p
}

func (p position) add(n, bucketCap int) position {
	offset := n + p.cur
	if offset >= 0 && offset < bucketCap {
		p.cur = offset
		return p
	}
	var nodeOffset int
	if offset > 0 {
		nodeOffset = offset / bucketCap
	} else {
		nodeOffset = -((-offset - 1) / bucketCap) - 1
	}
	p.node += nodeOffset
	p.cur = offset - nodeOffset*bucketCap
	return p
}

// diff returns the number of steps from o to p.
func (p position) diff(o position, bucketCap int) int {
	return bucketCap*(p.node-o.node-1) + p.cur + (bucketCap - o.cur)
}

func (p position) less(o position) bool {
	if p.node == o.node {
		return p.cur < o.cur
	}
	return p.node < o.node
}

// Iterator is a random-access iterator over a Deque. It is invalidated by
// any operation that adds or removes elements.
type Iterator[T any] struct {
	d   *Deque[T]
	pos position
}

func (it Iterator[T]) Category() iterator.Category { return iterator.RandomAccess }

func (it Iterator[T]) Value() T { return it.d.m[it.pos.node][it.pos.cur] }

func (it Iterator[T]) Ref() *T { return &it.d.m[it.pos.node][it.pos.cur] }

// Set assigns x to the element under the iterator.
func (it Iterator[T]) Set(x T) { construct.Assign(it.Ref(), x) }

func (it Iterator[T]) Next() Iterator[T] {
	it.pos = it.pos.next(it.d.bucketCap)
	return it
}

func (it Iterator[T]) Prev() Iterator[T] {
	it.pos = it.pos.prev(it.d.bucketCap)
	return it
}

func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos = it.pos.add(n, it.d.bucketCap)
	return it
}

// Diff returns the number of steps from other to it.
func (it Iterator[T]) Diff(other Iterator[T]) int {
	return it.pos.diff(other.pos, it.d.bucketCap)
}

func (it Iterator[T]) Less(other Iterator[T]) bool { return it.pos.less(other.pos) }

func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.d == other.d && it.pos == other.pos
}

var _ iterator.RandomAccessIterator[int, Iterator[int]] = Iterator[int]{}
