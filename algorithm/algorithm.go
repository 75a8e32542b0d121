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

import "golang.org/x/exp/constraints"

// Max returns the larger of a and b, or a when they are equivalent.
func Max[T constraints.Ordered](a, b T) T {
	if a < b {
		return b
	}
	return a
}

// MaxFunc is Max under the ordering less.
func MaxFunc[T any](a, b T, less func(a, b T) bool) T {
	if less(a, b) {
		return b
	}
	return a
}

// Swap exchanges the values a and b point to.
func Swap[T any](a, b *T) { *a, *b = *b, *a }

// Less is the natural ordering of T, for use with the heap algorithms.
func Less[T constraints.Ordered](a, b T) bool { return a < b }

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b []T) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal under the equivalence eq.
func EqualFunc[T any](a, b []T, eq func(x, y T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}
