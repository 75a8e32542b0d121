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

// transfer moves [first, last) in front of pos. The range may come from
// another list but must not contain pos.
func transfer[T any](pos, first, last *node[T]) {
	if pos == last {
		return
	}
	last.prev.next = pos
	first.prev.next = last
	pos.prev.next = first
	tmp := pos.prev
	pos.prev = last.prev
	last.prev = first.prev
	first.prev = tmp
}

// Splice moves every element of x in front of pos, leaving x empty.
func (l *List[T]) Splice(pos Iterator[T], x *List[T]) {
	l.SpliceRange(pos, x, x.Begin(), x.End())
}

// SpliceOne moves the element at it, which belongs to x, in front of pos.
func (l *List[T]) SpliceOne(pos Iterator[T], x *List[T], it Iterator[T]) {
	l.SpliceRange(pos, x, it, it.Next())
}

// SpliceRange moves [first, last), which belongs to x, in front of pos. No
// element is copied; iterators into the moved range stay valid. When x is l,
// pos must not lie inside (first, last).
func (l *List[T]) SpliceRange(pos Iterator[T], x *List[T], first, last Iterator[T]) {
	if first == last || pos == first || pos == last {
		return
	}
	if x != l {
		n := 0
		for it := first; it != last; it = it.Next() {
			n++
		}
		x.size -= n
		l.size += n
	}
	transfer(pos.n, first.n, last.n)
}

// Merge moves the elements of x into l. Both lists must be sorted under
// less; the result is sorted and stable, with elements of l ahead of equal
// elements of x.
func (l *List[T]) Merge(x *List[T], less func(a, b T) bool) {
	if x == l {
		return
	}
	it1, end1 := l.head.next, l.head
	it2, end2 := x.head.next, x.head
	for it1 != end1 && it2 != end2 {
		if less(it2.val, it1.val) {
			next := it2.next
			transfer(it1, it2, next)
			it2 = next
			continue
		}
		it1 = it1.next
	}
	if it2 != end2 {
		transfer(end1, it2, end2)
	}
	l.size += x.size
	x.size = 0
}

// Reverse reverses the order of the elements in place.
func (l *List[T]) Reverse() {
	if l.size < 2 {
		return
	}
	for n := l.head.next.next; n != l.head; {
		next := n.next
		transfer(l.head.next, n, next)
		n = next
	}
}

// Sort sorts the list stably under less. It is a bottom-up merge sort that
// keeps up to 64 partial runs, where run i holds 2^i elements.
func (l *List[T]) Sort(less func(a, b T) bool) {
	if l.size < 2 {
		return
	}
	carry := newList(l.nodes)
	var counter [64]*List[T]
	for i := range counter {
		counter[i] = newList(l.nodes)
	}
	fill := 0
	for !l.Empty() {
		carry.SpliceOne(carry.Begin(), l, l.Begin())
		i := 0
		for i < fill && !counter[i].Empty() {
			counter[i].Merge(carry, less)
			carry.Swap(counter[i])
			i++
		}
		carry.Swap(counter[i])
		if i == fill {
			fill++
		}
	}
	for i := 1; i < fill; i++ {
		counter[i].Merge(counter[i-1], less)
	}
	sorted := counter[fill-1]
	transfer(l.head, sorted.head.next, sorted.head)
	l.size, sorted.size = sorted.size, 0
}
