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

// BackSequence is a container that grows and shrinks at its back.
// *vector.Vector, *deque.Deque and *list.List satisfy it.
type BackSequence[T any] interface {
	Len() int
	Empty() bool
	Back() T
	PushBack(x T)
	PopBack()
	Values() []T
	Release()
}

// Stack is a last-in first-out adapter.
type Stack[T any] struct {
	c BackSequence[T]
}

// NewStack returns an empty stack on a deque.
func NewStack[T any](opts ...deque.Option) *Stack[T] {
	return &Stack[T]{c: deque.New[T](opts...)}
}

// NewStackOn returns a stack on c, whose back is the top. The stack takes
// ownership of c.
func NewStackOn[T any](c BackSequence[T]) *Stack[T] {
	return &Stack[T]{c: c}
}

func (s *Stack[T]) Len() int    { return s.c.Len() }
func (s *Stack[T]) Empty() bool { return s.c.Empty() }

// Top returns the most recently pushed element.
func (s *Stack[T]) Top() T { return s.c.Back() }

func (s *Stack[T]) Push(x T) { s.c.PushBack(x) }
func (s *Stack[T]) Pop()     { s.c.PopBack() }

func (s *Stack[T]) Swap(o *Stack[T]) { s.c, o.c = o.c, s.c }

// Release releases the underlying container.
func (s *Stack[T]) Release() { s.c.Release() }

// StackEqual reports whether a and b hold equal elements in the same order.
func StackEqual[T comparable](a, b *Stack[T]) bool {
	return a.Len() == b.Len() && algorithm.Equal(a.c.Values(), b.c.Values())
}
