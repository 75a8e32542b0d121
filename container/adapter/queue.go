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
	"github.com/EchoBoy/TinySTL/container/deque"
)

// FrontBackSequence is a container that grows at its back and shrinks at its
// front. *deque.Deque and *list.List satisfy it.
type FrontBackSequence[T any] interface {
	BackSequence[T]
	Front() T
	PopFront()
}

// Queue is a first-in first-out adapter.
type Queue[T any] struct {
	c FrontBackSequence[T]
}

// NewQueue returns an empty queue on a deque.
func NewQueue[T any](opts ...deque.Option) *Queue[T] {
	return &Queue[T]{c: deque.New[T](opts...)}
}

// NewQueueOn returns a queue on c. The queue takes ownership of c.
func NewQueueOn[T any](c FrontBackSequence[T]) *Queue[T] {
	return &Queue[T]{c: c}
}

func (q *Queue[T]) Len() int    { return q.c.Len() }
func (q *Queue[T]) Empty() bool { return q.c.Empty() }

// Front returns the oldest element, the next to be popped.
func (q *Queue[T]) Front() T { return q.c.Front() }

// Back returns the newest element.
func (q *Queue[T]) Back() T { return q.c.Back() }

func (q *Queue[T]) Push(x T) { q.c.PushBack(x) }
func (q *Queue[T]) Pop()     { q.c.PopFront() }

func (q *Queue[T]) Swap(o *Queue[T]) { q.c, o.c = o.c, q.c }

// Release releases the underlying container.
func (q *Queue[T]) Release() { q.c.Release() }

// QueueEqual reports whether a and b hold equal elements in the same order.
func QueueEqual[T comparable](a, b *Queue[T]) bool {
	return a.Len() == b.Len() && algorithm.Equal(a.c.Values(), b.c.Values())
}
