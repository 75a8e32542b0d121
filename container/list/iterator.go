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
	"github.com/EchoBoy/TinySTL/construct"
	"github.com/EchoBoy/TinySTL/iterator"
)

// Iterator is a bidirectional iterator over a List. Iterators stay valid
// until the element they address is erased, including across splices.
type Iterator[T any] struct {
	n *node[T]
}

func (it Iterator[T]) Category() iterator.Category { return iterator.Bidirectional }

func (it Iterator[T]) Value() T { return it.n.val }

func (it Iterator[T]) Ref() *T { return &it.n.val }

// Set assigns x to the element under the iterator.
func (it Iterator[T]) Set(x T) { construct.Assign(&it.n.val, x) }

func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{it.n.next} }

func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{it.n.prev} }

func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.n == other.n }

var _ iterator.BidirectionalIterator[int, Iterator[int]] = Iterator[int]{}
