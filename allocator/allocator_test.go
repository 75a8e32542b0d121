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

package allocator_test

import (
	"testing"

	"github.com/EchoBoy/TinySTL/allocator"
	"github.com/EchoBoy/TinySTL/internal/testutil"
	"github.com/EchoBoy/TinySTL/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vec3 struct {
	X, Y, Z float32
}

func TestAllocateZero(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	a := allocator.New[int64](mem)

	assert.Nil(t, a.Allocate(0))
	assert.Zero(t, mem.CurrentAlloc(), "n == 0 must not reach the byte allocator")
	a.Deallocate(nil)
	mem.AssertSize(t, 0)
}

func TestAllocatePointerFree(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewPool(memory.NewGoAllocator()))
	defer mem.AssertSize(t, 0)
	a := allocator.New[vec3](mem)

	for _, n := range []int{1, 3, 10, 11, 100} {
		p := a.Allocate(n)
		require.Len(t, p, n)
		require.Equal(t, n, cap(p))
		assert.Equal(t, n*12, mem.CurrentAlloc())
		for i := range p {
			a.Construct(&p[i], vec3{float32(i), 1, 2})
		}
		assert.Equal(t, float32(n-1), p[n-1].X)
		a.DestroyRange(p)
		a.Deallocate(p)
	}
}

func TestAllocateWithPointers(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	a := allocator.New[string](mem)

	p := a.Allocate(8)
	assert.Len(t, p, 8)
	assert.Zero(t, mem.CurrentAlloc(), "pointer-bearing elements live on the Go heap")
	for i := range p {
		assert.Empty(t, p[i])
	}
	a.Deallocate(p)
	mem.AssertSize(t, 0)
}

func TestAllocateZeroSizedElements(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	a := allocator.New[struct{}](mem)
	p := a.Allocate(1000)
	assert.Len(t, p, 1000)
	assert.Zero(t, mem.CurrentAlloc())
	a.Deallocate(p)
}

func TestConstructDestroy(t *testing.T) {
	tr := &testutil.Tracker{}
	a := allocator.Default[testutil.Tracked]()

	p := a.Allocate(4)
	for i := range p {
		a.Construct(&p[i], testutil.NewTracked(tr, i))
	}
	assert.Equal(t, 4, tr.Live())
	a.Destroy(&p[0])
	assert.Equal(t, 3, tr.Live())
	a.DestroyRange(p[1:])
	assert.Zero(t, tr.Live())
	a.Deallocate(p)
}

func TestRebind(t *testing.T) {
	pool := memory.NewPool(nil)
	a := allocator.New[uint16](pool)
	b := allocator.Rebind[uint64](a)
	assert.Same(t, pool, b.Mem())

	p := b.Allocate(2)
	assert.EqualValues(t, 16, pool.AllocatedBytes())
	b.Deallocate(p)
	pool.AssertSize(t, 0)
}

func TestDefaultUsesDefaultPool(t *testing.T) {
	assert.Same(t, memory.DefaultPool, allocator.Default[int]().Mem())
}
