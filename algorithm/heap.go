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

package algorithm

// The heap algorithms maintain a max-heap under less: s[0] is an element for
// which no other element e satisfies less(s[0], e).

// PushHeap moves the last element of s into place. s[:len(s)-1] must already
// be a heap.
func PushHeap[T any](s []T, less func(a, b T) bool) {
	if len(s) < 2 {
		return
	}
	pushHeap(s, len(s)-1, 0, s[len(s)-1], less)
}

// PopHeap swaps the top of the heap with the last element of s and restores
// the heap property on s[:len(s)-1].
func PopHeap[T any](s []T, less func(a, b T) bool) {
	n := len(s)
	if n < 2 {
		return
	}
	v := s[n-1]
	s[n-1] = s[0]
	adjustHeap(s[:n-1], 0, v, less)
}

// MakeHeap rearranges s into a heap.
func MakeHeap[T any](s []T, less func(a, b T) bool) {
	n := len(s)
	if n < 2 {
		return
	}
	for parent := (n - 2) / 2; parent >= 0; parent-- {
		adjustHeap(s, parent, s[parent], less)
	}
}

// SortHeap turns the heap s into a slice sorted ascending under less.
func SortHeap[T any](s []T, less func(a, b T) bool) {
	for n := len(s); n > 1; n-- {
		PopHeap(s[:n], less)
	}
}

// IsHeap reports whether s is a heap.
func IsHeap[T any](s []T, less func(a, b T) bool) bool {
	for child := 1; child < len(s); child++ {
		if less(s[(child-1)/2], s[child]) {
			return false
		}
	}
	return true
}

// pushHeap sifts v up from hole towards top.
func pushHeap[T any](s []T, hole, top int, v T, less func(a, b T) bool) {
	parent := (hole - 1) / 2
	for hole > top && less(s[parent], v) {
		s[hole] = s[parent]
		hole = parent
		parent = (hole - 1) / 2
	}
	s[hole] = v
}

// adjustHeap sinks the hole at hole to a leaf, always following the larger
// child, then sifts v back up from there.
func adjustHeap[T any](s []T, hole int, v T, less func(a, b T) bool) {
	top, n := hole, len(s)
	child := 2*hole + 2
	for child < n {
		if less(s[child], s[child-1]) {
			child--
		}
		s[hole] = s[child]
		hole = child
		child = 2*child + 2
	}
	if child == n {
		s[hole] = s[child-1]
		hole = child - 1
	}
	pushHeap(s, hole, top, v, less)
}
