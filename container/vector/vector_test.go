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

package vector_test

import (
	"fmt"
	"testing"

	"github.com/EchoBoy/TinySTL/container/vector"
	"github.com/EchoBoy/TinySTL/internal/testutil"
	"github.com/EchoBoy/TinySTL/iterator"
	"github.com/EchoBoy/TinySTL/memory"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// checkedPool returns a pool wrapped in a leak checker that is verified when
// the test ends.
func checkedPool(t *testing.T) *memory.CheckedAllocator {
	mem := memory.NewCheckedAllocator(memory.NewPool(memory.NewGoAllocator()))
	t.Cleanup(func() { mem.AssertSize(t, 0) })
	return mem
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func repeat[T any](x T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = x
	}
	return out
}

// input is a single-pass iterator over a slice.
type input struct {
	s []int
	i int
}

func (it input) Category() iterator.Category { return iterator.Input }
func (it input) Next() input                 { it.i++; return it }
func (it input) Equal(o input) bool          { return it.i == o.i }
func (it input) Value() int                  { return it.s[it.i] }

func TestPushBackThenErase(t *testing.T) {
	v := vector.New[int](vector.WithAllocator(checkedPool(t)))
	defer v.Release()

	for i := 0; i < 100; i++ {
		v.PushBack(i)
		require.Equal(t, i+1, v.Len())
	}
	var got []int
	for i, x := range v.All() {
		assert.Equal(t, i, x)
		got = append(got, x)
	}
	assert.Equal(t, seq(100), got)

	assert.Equal(t, 5, v.Erase(5))
	want := append(seq(5), seq(100)[6:]...)
	assert.Equal(t, want, v.Values())
	assert.Equal(t, 99, v.Len())
	assert.Equal(t, 0, v.Front())
	assert.Equal(t, 99, v.Back())
}

func TestGrowthDoubles(t *testing.T) {
	v := vector.New[int32](vector.WithAllocator(checkedPool(t)))
	defer v.Release()

	var caps []int
	for i := 0; i < 100; i++ {
		v.PushBack(int32(i))
		if len(caps) == 0 || caps[len(caps)-1] != v.Cap() {
			caps = append(caps, v.Cap())
		}
	}
	assert.Equal(t, []int{1, 2, 4, 8, 16, 32, 64, 128}, caps)

	// a bulk insert larger than the current capacity sizes the buffer for it
	w := vector.FromSlice([]int32{1, 2, 3}, vector.WithAllocator(checkedPool(t)))
	defer w.Release()
	require.Equal(t, 3, w.Cap())
	w.InsertN(1, 5, 7)
	assert.Equal(t, 3+5, w.Cap())
	assert.Equal(t, []int32{1, 7, 7, 7, 7, 7, 2, 3}, w.Values())
}

func TestDefaultStringsReserveInsert(t *testing.T) {
	v := vector.NewSized[string](10)
	defer v.Release()

	v.Reserve(30)
	v.InsertN(0, 3, "tinystl")
	assert.Equal(t, 13, v.Len())
	assert.GreaterOrEqual(t, v.Cap(), 30)
	for i := 0; i < 3; i++ {
		assert.Equal(t, "tinystl", v.At(i))
	}
	for i := 3; i < 13; i++ {
		assert.Empty(t, v.At(i))
	}
}

func TestCapacityNeverShrinks(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	v := vector.New[uint64](vector.WithAllocator(checkedPool(t)))
	defer v.Release()

	prev := 0
	for i := 0; i < 500; i++ {
		switch op := rng.Intn(4); {
		case op == 0 && v.Len() > 0:
			v.Erase(rng.Intn(v.Len()))
		case op == 1:
			v.InsertN(rng.Intn(v.Len()+1), rng.Intn(5), uint64(i))
		default:
			v.Insert(rng.Intn(v.Len()+1), uint64(i))
		}
		require.GreaterOrEqual(t, v.Cap(), prev)
		prev = v.Cap()
	}
	v.Clear()
	assert.Equal(t, prev, v.Cap(), "clear keeps the capacity")
}

// The in-place cases cover both construction orders: more elements after the
// insertion point than inserted, and fewer.
func TestInsertInPlace(t *testing.T) {
	tests := []struct {
		pos, n int
	}{
		{0, 3}, {2, 3}, {7, 3}, {8, 5}, {9, 1}, {10, 4}, {0, 10}, {3, 7},
	}
	for _, test := range tests {
		extra := seq(test.n)
		for i := range extra {
			extra[i] += 100
		}
		want := slices.Insert(seq(10), test.pos, extra...)

		t.Run(fmt.Sprintf("fill/pos=%d,n=%d", test.pos, test.n), func(t *testing.T) {
			v := vector.FromSlice(seq(10), vector.WithAllocator(checkedPool(t)))
			defer v.Release()
			v.Reserve(20)
			v.InsertN(test.pos, test.n, -1)
			fill := slices.Insert(seq(10), test.pos, repeat(-1, test.n)...)
			assert.Equal(t, fill, v.Values())
			assert.Equal(t, 20, v.Cap(), "in-place insert must not reallocate")
		})

		t.Run(fmt.Sprintf("slice/pos=%d,n=%d", test.pos, test.n), func(t *testing.T) {
			v := vector.FromSlice(seq(10), vector.WithAllocator(checkedPool(t)))
			defer v.Release()
			v.Reserve(20)
			v.InsertSlice(test.pos, extra)
			assert.Equal(t, want, v.Values())
		})

		t.Run(fmt.Sprintf("range/pos=%d,n=%d", test.pos, test.n), func(t *testing.T) {
			v := vector.FromSlice(seq(10), vector.WithAllocator(checkedPool(t)))
			defer v.Release()
			v.Reserve(20)
			end := vector.InsertRange[int](v, test.pos, iterator.Begin(extra), iterator.End(extra))
			assert.Equal(t, test.pos+test.n, end)
			assert.Equal(t, want, v.Values())
		})

		t.Run(fmt.Sprintf("tracked/pos=%d,n=%d", test.pos, test.n), func(t *testing.T) {
			tr := &testutil.Tracker{}
			v := vector.New[testutil.Tracked]()
			for i := 0; i < 10; i++ {
				v.PushBack(testutil.NewTracked(tr, i))
			}
			v.Reserve(20)
			vals := make([]testutil.Tracked, test.n)
			for i := range vals {
				vals[i] = testutil.NewTracked(tr, 100+i)
			}
			v.InsertSlice(test.pos, vals)

			got := make([]int, 0, v.Len())
			for _, x := range v.All() {
				got = append(got, x.V)
			}
			assert.Equal(t, want, got)
			assert.Equal(t, 10+test.n, tr.Live())
			v.Release()
			assert.Zero(t, tr.Live(), "release must destroy every element")
		})
	}
}

func TestInsertRangeSinglePass(t *testing.T) {
	v := vector.FromSlice([]int{1, 2}, vector.WithAllocator(checkedPool(t)))
	defer v.Release()

	src := []int{7, 8, 9}
	end := vector.InsertRange[int](v, 1, input{s: src}, input{s: src, i: len(src)})
	assert.Equal(t, 4, end)
	assert.Equal(t, []int{1, 7, 8, 9, 2}, v.Values())
}

func TestInsertEraseInverse(t *testing.T) {
	orig := seq(17)
	v := vector.FromSlice(orig, vector.WithAllocator(checkedPool(t)))
	defer v.Release()

	for p := 0; p <= len(orig); p++ {
		assert.Equal(t, p, v.Insert(p, 99))
		assert.Equal(t, 99, v.At(p))
		v.Erase(p)
		require.Equal(t, orig, v.Values(), "position %d", p)
	}
}

func TestEraseRange(t *testing.T) {
	tr := &testutil.Tracker{}
	v := vector.New[testutil.Tracked]()
	defer v.Release()
	for i := 0; i < 10; i++ {
		v.PushBack(testutil.NewTracked(tr, i))
	}
	capBefore := v.Cap()

	assert.Equal(t, 2, v.EraseRange(2, 5))
	assert.Equal(t, 7, v.Len())
	assert.Equal(t, capBefore, v.Cap())
	assert.Equal(t, 7, tr.Live())
	assert.Equal(t, 5, v.At(2).V)

	v.EraseRange(3, 3)
	assert.Equal(t, 7, v.Len())
	v.EraseRange(0, v.Len())
	assert.True(t, v.Empty())
	assert.Zero(t, tr.Live())
}

func TestReserveFailureLeavesVectorUnchanged(t *testing.T) {
	mem := memory.NewLimitedAllocator(memory.NewGoAllocator(), 1024)
	v := vector.New[int64](vector.WithAllocator(mem))
	for i := 0; i < 10; i++ {
		v.PushBack(int64(i))
	}
	require.Equal(t, 16, v.Cap())

	testutil.AssertPanicsWith(t, memory.ErrOutOfMemory, func() { v.Reserve(1000) })
	assert.Equal(t, 10, v.Len())
	assert.Equal(t, 16, v.Cap())
	assert.Equal(t, []int64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, v.Values())

	testutil.AssertPanicsWith(t, memory.ErrOutOfMemory, func() { v.InsertN(3, 200, -1) })
	assert.Equal(t, []int64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, v.Values())

	v.Release()
	assert.Zero(t, mem.Used())
}

func TestClearTwice(t *testing.T) {
	v := vector.FromSlice([]string{"a", "b"})
	defer v.Release()
	v.Clear()
	assert.Zero(t, v.Len())
	v.Clear()
	assert.Zero(t, v.Len())
	assert.Equal(t, 2, v.Cap())
}

func TestResize(t *testing.T) {
	v := vector.NewFilled(3, 5, vector.WithAllocator(checkedPool(t)))
	defer v.Release()

	v.Resize(6)
	assert.Equal(t, []int{5, 5, 5, 0, 0, 0}, v.Values())
	v.ResizeFill(8, 9)
	assert.Equal(t, []int{5, 5, 5, 0, 0, 0, 9, 9}, v.Values())
	v.Resize(2)
	assert.Equal(t, []int{5, 5}, v.Values())
	v.Resize(2)
	assert.Equal(t, 2, v.Len())
}

func TestAccessors(t *testing.T) {
	v := vector.FromSlice([]int{1, 2, 3}, vector.WithAllocator(checkedPool(t)))
	defer v.Release()

	v.Set(1, 20)
	*v.Ref(2) = 30
	assert.Equal(t, []int{1, 20, 30}, v.Values())
	v.PopBack()
	assert.Equal(t, 20, v.Back())

	var back []int
	for _, x := range v.Backward() {
		back = append(back, x)
	}
	assert.Equal(t, []int{20, 1}, back)

	for i := range v.All() {
		if i == 0 {
			break
		}
		t.Fatal("All must stop when yield returns false")
	}

	assert.Equal(t, 2, iterator.Distance(v.Begin(), v.End()))
	assert.Equal(t, 20, v.Begin().Next().Value())
}

func TestCopyMoveSwap(t *testing.T) {
	mem := checkedPool(t)
	a := vector.FromSlice([]int{1, 2, 3}, vector.WithAllocator(mem))
	b := a.Clone()
	b.Set(0, 100)
	assert.Equal(t, []int{1, 2, 3}, a.Values(), "clone must not share storage")
	assert.Equal(t, 3, b.Cap())

	c := vector.Move(a)
	assert.True(t, a.Empty())
	assert.Zero(t, a.Cap())
	assert.Equal(t, []int{1, 2, 3}, c.Values())
	a.PushBack(4)
	assert.Equal(t, []int{4}, a.Values(), "a moved-from vector stays usable")

	b.Swap(c)
	assert.Equal(t, []int{1, 2, 3}, b.Values())
	assert.Equal(t, []int{100, 2, 3}, c.Values())

	a.Release()
	b.Release()
	c.Release()
}

func TestRetainRelease(t *testing.T) {
	mem := checkedPool(t)
	v := vector.FromSlice([]int{1, 2, 3}, vector.WithAllocator(mem))
	v.Retain()
	v.Release()
	assert.Equal(t, 3, v.Len(), "storage survives while references remain")
	assert.NotZero(t, mem.CurrentAlloc())
	v.Release()
	assert.Zero(t, mem.CurrentAlloc())
}

func TestFromRange(t *testing.T) {
	src := []string{"x", "y", "z"}
	v := vector.FromRange[string](iterator.Begin(src).Next(), iterator.End(src))
	defer v.Release()
	assert.Equal(t, []string{"y", "z"}, v.Values())
	assert.Equal(t, 2, v.Cap())
}

func TestCompare(t *testing.T) {
	a := vector.FromSlice([]int{1, 2, 3})
	b := vector.FromSlice([]int{1, 2, 4})
	c := vector.FromSlice([]int{1, 2})
	defer a.Release()
	defer b.Release()
	defer c.Release()

	ac := a.Clone()
	defer ac.Release()
	assert.True(t, vector.Equal(a, ac))
	assert.False(t, vector.Equal(a, b))
	assert.True(t, vector.Less(a, b))
	assert.False(t, vector.Less(b, a))
	assert.True(t, vector.Less(c, a))
	assert.False(t, vector.Less(a, a))
}

func TestMatchesSliceModel(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))
	v := vector.New[int16](vector.WithAllocator(checkedPool(t)))
	defer v.Release()
	var model []int16

	for step := 0; step < 2000; step++ {
		x := int16(rng.Intn(1000))
		switch rng.Intn(7) {
		case 0:
			v.PushBack(x)
			model = append(model, x)
		case 1:
			if len(model) > 0 {
				v.PopBack()
				model = model[:len(model)-1]
			}
		case 2:
			p := rng.Intn(len(model) + 1)
			v.Insert(p, x)
			model = slices.Insert(model, p, x)
		case 3:
			p, n := rng.Intn(len(model)+1), rng.Intn(6)
			v.InsertN(p, n, x)
			model = slices.Insert(model, p, repeat(x, n)...)
		case 4:
			if len(model) > 0 {
				first := rng.Intn(len(model))
				last := first + rng.Intn(len(model)-first+1)
				v.EraseRange(first, last)
				model = slices.Delete(model, first, last)
			}
		case 5:
			p := rng.Intn(len(model) + 1)
			vals := []int16{x, x + 1, x + 2}
			v.InsertSlice(p, vals)
			model = slices.Insert(model, p, vals...)
		case 6:
			n := rng.Intn(40)
			v.Resize(n)
			model = append(model, make([]int16, max(0, n-len(model)))...)[:n]
		}
		if diff := cmp.Diff(model, v.Values(), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("step %d: mismatch (-model +vector):\n%s", step, diff)
		}
	}
}
