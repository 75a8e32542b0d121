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

import (
	"fmt"

	"github.com/EchoBoy/TinySTL/internal/debug"
)

// Category is the traversal capability of an iterator.
type Category int8

const (
	Input Category = iota
	Forward
	Bidirectional
	RandomAccess
)

var categoryNames = [...]string{"input", "forward", "bidirectional", "random-access"}

func (c Category) String() string {
	if c < Input || c > RandomAccess {
		return fmt.Sprintf("Category(%d)", int8(c))
	}
	return categoryNames[c]
}

// Satisfies reports whether an iterator of category c may be used where req
// is required.
func (c Category) Satisfies(req Category) bool { return c >= req }

// Iterator is the capability every iterator has: it can be compared with
// another iterator over the same sequence and stepped forward.
type Iterator[It any] interface {
	Category() Category
	Next() It
	Equal(It) bool
}

// Reader is an iterator whose element can be read.
type Reader[T, It any] interface {
	Iterator[It]
	Value() T
}

// Writer is an iterator whose element can be overwritten.
type Writer[T, It any] interface {
	Set(T)
	Next() It
}

// BidirectionalIterator can also step backward.
type BidirectionalIterator[T, It any] interface {
	Reader[T, It]
	Prev() It
}

// RandomAccessIterator jumps in constant time and measures the distance to
// another iterator of the same sequence.
type RandomAccessIterator[T, It any] interface {
	BidirectionalIterator[T, It]
	Add(n int) It
	Diff(other It) int
	Less(other It) bool
}

type backward[It any] interface {
	Prev() It
}

type jumper[It any] interface {
	Add(n int) It
	Diff(other It) int
}

// Distance returns the number of steps from first to last. It is O(1) for
// random-access iterators and O(n) otherwise. last must be reachable from
// first.
func Distance[It Iterator[It]](first, last It) int {
	if first.Category() == RandomAccess {
		if j, ok := any(last).(jumper[It]); ok {
			return j.Diff(first)
		}
	}
	n := 0
	for ; !first.Equal(last); first = first.Next() {
		n++
	}
	return n
}

// Advance returns it moved n steps. Negative n requires a bidirectional
// iterator; Advance panics when it is given a weaker one.
func Advance[It Iterator[It]](it It, n int) It {
	switch cat := it.Category(); {
	case cat == RandomAccess:
		if j, ok := any(it).(jumper[It]); ok {
			return j.Add(n)
		}
		fallthrough
	case cat == Bidirectional && n < 0:
		b, ok := any(it).(backward[It])
		debug.Assert(ok, "iterator: bidirectional iterator without Prev")
		for ; n < 0; n++ {
			it = b.Prev()
			b = any(it).(backward[It])
		}
	case n < 0:
		panic(fmt.Sprintf("iterator: cannot advance %s iterator by %d", cat, n))
	}
	for ; n > 0; n-- {
		it = it.Next()
	}
	return it
}
