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

import (
	"github.com/EchoBoy/TinySTL/construct"
	"github.com/EchoBoy/TinySTL/internal/debug"
	"github.com/EchoBoy/TinySTL/iterator"
	"github.com/EchoBoy/TinySTL/memory"
	"github.com/EchoBoy/TinySTL/traits"
)

// Copy assigns src to the front of dst in ascending order and returns
// len(src). dst may overlap src only if it starts at or before src.
func Copy[T any](dst, src []T) int {
	debug.Assert(len(dst) >= len(src), "algorithm: copy destination too short")
	if traits.Of[T]().IsPOD() {
		return copy(dst, src)
	}
	for i := range src {
		construct.Assign(&dst[i], src[i])
	}
	return len(src)
}

// CopyBackward assigns src to the last len(src) slots of dst, starting with
// the last element, and returns the index in dst of the first slot written.
// dst may overlap src only if it ends at or after src.
func CopyBackward[T any](dst, src []T) int {
	debug.Assert(len(dst) >= len(src), "algorithm: copy_backward destination too short")
	start := len(dst) - len(src)
	if traits.Of[T]().IsPOD() {
		copy(dst[start:], src)
		return start
	}
	for i := len(src) - 1; i >= 0; i-- {
		construct.Assign(&dst[start+i], src[i])
	}
	return start
}

// Fill assigns v to every element of s.
func Fill[T any](s []T, v T) {
	if len(s) == 0 {
		return
	}
	tr := traits.Of[T]()
	if !tr.IsPOD() || tr.Size == 0 {
		for i := range s {
			construct.Assign(&s[i], v)
		}
		return
	}
	s[0] = v
	fillBytes(traits.CastToBytes(s), tr.Size)
}

// FillN assigns v to the first n elements of s and returns the rest of s.
func FillN[T any](s []T, n int, v T) []T {
	if n <= 0 {
		return s
	}
	Fill(s[:n], v)
	return s[n:]
}

// fillBytes replicates the first unit bytes of b over all of b.
func fillBytes(b []byte, unit int) {
	if unit == 1 {
		memory.Set(b, b[0])
		return
	}
	for filled := unit; filled < len(b); filled *= 2 {
		copy(b[filled:], b[:filled])
	}
}

// UninitializedCopy constructs copies of src into the front of dst and
// returns len(src).
func UninitializedCopy[T any](dst, src []T) int {
	if traits.Of[T]().IsPOD() {
		return Copy(dst, src)
	}
	debug.Assert(len(dst) >= len(src), "algorithm: uninitialized_copy destination too short")
	for i := range src {
		construct.Construct(&dst[i], src[i])
	}
	return len(src)
}

// UninitializedFill constructs a copy of v into every slot of s.
func UninitializedFill[T any](s []T, v T) {
	if traits.Of[T]().IsPOD() {
		Fill(s, v)
		return
	}
	for i := range s {
		construct.Construct(&s[i], v)
	}
}

// UninitializedFillN constructs copies of v into the first n slots of s and
// returns the rest of s.
func UninitializedFillN[T any](s []T, n int, v T) []T {
	if n <= 0 {
		return s
	}
	UninitializedFill(s[:n], v)
	return s[n:]
}

// CopyRange assigns every element of [first, last) through out, advancing it
// once per element, and returns the advanced out.
func CopyRange[T any, In iterator.Reader[T, In], Out iterator.Writer[T, Out]](first, last In, out Out) Out {
	for ; !first.Equal(last); first = first.Next() {
		out.Set(first.Value())
		out = out.Next()
	}
	return out
}

// UninitializedCopyRange constructs copies of [first, last) into the front of
// dst and returns how many were constructed. dst must have room for
// iterator.Distance(first, last) elements.
func UninitializedCopyRange[T any, In iterator.Reader[T, In]](first, last In, dst []T) int {
	i := 0
	for ; !first.Equal(last); first = first.Next() {
		construct.Construct(&dst[i], first.Value())
		i++
	}
	return i
}
