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

package algorithm_test

import (
	"strings"
	"testing"

	"github.com/EchoBoy/TinySTL/algorithm"
	"github.com/stretchr/testify/assert"
)

func TestMax(t *testing.T) {
	assert.Equal(t, 3, algorithm.Max(3, 2))
	assert.Equal(t, "b", algorithm.Max("a", "b"))
	assert.Equal(t, 2.5, algorithm.Max(2.5, 2.5))

	byLen := func(a, b string) bool { return len(a) < len(b) }
	assert.Equal(t, "abc", algorithm.MaxFunc("abc", "xyz", byLen), "ties keep the first argument")
	assert.Equal(t, "long", algorithm.MaxFunc("ab", "long", byLen))
}

func TestSwap(t *testing.T) {
	a, b := "left", "right"
	algorithm.Swap(&a, &b)
	assert.Equal(t, "right", a)
	assert.Equal(t, "left", b)
}

func TestEqual(t *testing.T) {
	assert.True(t, algorithm.Equal([]int{1, 2}, []int{1, 2}))
	assert.True(t, algorithm.Equal[int](nil, []int{}))
	assert.False(t, algorithm.Equal([]int{1, 2}, []int{1}))
	assert.False(t, algorithm.Equal([]int{1, 2}, []int{1, 3}))
	assert.True(t, algorithm.EqualFunc([]string{"A"}, []string{"a"}, strings.EqualFold))
}
