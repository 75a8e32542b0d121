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

package adapter

import (
	"github.com/EchoBoy/TinySTL/algorithm"
	"github.com/EchoBoy/TinySTL/container/vector"
	"golang.org/x/exp/constraints"
)

// PriorityQueue yields its elements largest first under less. Elements that
// compare equal come out in an unspecified order.
type PriorityQueue[T any] struct {
	c    *vector.Vector[T]
	less func(a, b T) bool
}

// NewPriorityQueue returns an empty max-queue ordered by <.
func NewPriorityQueue[T constraints.Ordered](opts ...vector.Option) *PriorityQueue[T] {
	return NewPriorityQueueFunc(algorithm.Less[T], opts...)
}

// NewPriorityQueueFunc returns an empty queue ordered by less.
func NewPriorityQueueFunc[T any](less func(a, b T) bool, opts ...vector.Option) *PriorityQueue[T] {
	return &PriorityQueue[T]{c: vector.New[T](opts...), less: less}
}

// PriorityQueueFromSlice returns a queue holding copies of vals, heapified
// in O(n).
func PriorityQueueFromSlice[T any](vals []T, less func(a, b T) bool, opts ...vector.Option) *PriorityQueue[T] {
	pq := &PriorityQueue[T]{c: vector.FromSlice(vals, opts...), less: less}
	algorithm.MakeHeap(pq.c.Values(), less)
	return pq
}

func (pq *PriorityQueue[T]) Len() int    { return pq.c.Len() }
func (pq *PriorityQueue[T]) Empty() bool { return pq.c.Empty() }

// Top returns the largest element.
func (pq *PriorityQueue[T]) Top() T { return pq.c.Front() }

func (pq *PriorityQueue[T]) Push(x T) {
	pq.c.PushBack(x)
	algorithm.PushHeap(pq.c.Values(), pq.less)
}

// Pop removes the largest element.
func (pq *PriorityQueue[T]) Pop() {
	algorithm.PopHeap(pq.c.Values(), pq.less)
	pq.c.PopBack()
}

// Swap exchanges the elements and orderings of pq and o.
func (pq *PriorityQueue[T]) Swap(o *PriorityQueue[T]) {
	pq.c, o.c = o.c, pq.c
	pq.less, o.less = o.less, pq.less
}

// Release releases the underlying vector.
func (pq *PriorityQueue[T]) Release() { pq.c.Release() }
