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

package vector

import (
	"github.com/EchoBoy/TinySTL/algorithm"
	"golang.org/x/exp/constraints"
)

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return algorithm.Equal(a.Values(), b.Values())
}

// Less reports whether a orders before b lexicographically.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	av, bv := a.Values(), b.Values()
	for i := 0; i < len(av) && i < len(bv); i++ {
		switch {
		case av[i] < bv[i]:
			return true
		case bv[i] < av[i]:
			return false
		}
	}
	return len(av) < len(bv)
}
