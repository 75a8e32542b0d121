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

package iterator

// Slice is a random-access iterator over a Go slice.
type Slice[T any] struct {
	s []T
	i int
}

// Begin returns an iterator at the first element of s.
func Begin[T any](s []T) Slice[T] { return Slice[T]{s: s} }

// End returns the past-the-end iterator of s.
func End[T any](s []T) Slice[T] { return Slice[T]{s: s, i: len(s)} }

func (it Slice[T]) Category() Category { return RandomAccess }

// Index returns the position of it within its slice.
func (it Slice[T]) Index() int { return it.i }

func (it Slice[T]) Value() T { return it.s[it.i] }

func (it Slice[T]) Ref() *T { return &it.s[it.i] }

func (it Slice[T]) Set(v T) { it.s[it.i] = v }

func (it Slice[T]) Next() Slice[T] { it.i++; return it }

func (it Slice[T]) Prev() Slice[T] { it.i--; return it }

func (it Slice[T]) Add(n int) Slice[T] { it.i += n; return it }

func (it Slice[T]) Diff(other Slice[T]) int { return it.i - other.i }

func (it Slice[T]) Less(other Slice[T]) bool { return it.i < other.i }

// Equal reports whether both iterators address the same position. Iterators
// over different slices are never equal.
func (it Slice[T]) Equal(other Slice[T]) bool {
	return it.i == other.i && sameBase(it.s, other.s)
}

func sameBase[T any](a, b []T) bool {
	if cap(a) == 0 || cap(b) == 0 {
		return cap(a) == cap(b)
	}
	return &a[:1][0] == &b[:1][0]
}

var _ RandomAccessIterator[int, Slice[int]] = Slice[int]{}
