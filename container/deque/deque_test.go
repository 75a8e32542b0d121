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

package deque_test

import (
	"fmt"
	"testing"

	"github.com/EchoBoy/TinySTL/container/deque"
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

func checkedPool(t *testing.T) *memory.CheckedAllocator {
	mem := memory.NewCheckedAllocator(memory.NewPool(memory.NewGoAllocator()))
	t.Cleanup(func() { mem.AssertSize(t, 0) })
	return mem
}

// wide has buckets of 73 elements, which keeps bucket crossings frequent.
type wide struct {
	A, B int16
	Pad  [10]byte
}

func TestPushFrontAndBack(t *testing.T) {
	d := deque.New[int](deque.WithAllocator(checkedPool(t)))
	defer d.Release()

	for i := 0; i < 10; i++ {
		d.PushBack(i)
	}
	for i := 10; i < 20; i++ {
		d.PushFront(i)
	}
	assert.Equal(t, 19, d.Front())
	assert.Equal(t, 9, d.Back())
	assert.Equal(t, 20, d.Len())

	for i := 0; i < 5; i++ {
		d.PopFront()
	}
	assert.Equal(t, 14, d.Front())
	assert.Equal(t, []int{14, 13, 12, 11, 10, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, d.Values())
}

func TestIndexingAcrossBuckets(t *testing.T) {
	require.Equal(t, 73, deque.BucketCap(14))
	d := deque.New[wide](deque.WithAllocator(checkedPool(t)))
	defer d.Release()

	const n = 1000
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			d.PushBack(wide{A: int16(i)})
		} else {
			d.PushFront(wide{A: int16(i)})
		}
	}
	model := make([]int16, 0, n)
	for i := n - 1; i >= 0; i-- {
		if i%2 == 1 {
			model = append(model, int16(i))
		}
	}
	for i := 0; i < n; i += 2 {
		model = append(model, int16(i))
	}

	require.Equal(t, n, d.Len())
	for i := range model {
		require.Equal(t, model[i], d.At(i).A, "index %d", i)
	}

	begin, end := d.Begin(), d.End()
	assert.Equal(t, n, end.Diff(begin))
	assert.Equal(t, n, iterator.Distance(begin, end))
	for _, k := range []int{0, 1, 72, 73, 74, 500, 999} {
		it := begin.Add(k)
		assert.Equal(t, model[k], it.Value().A)
		assert.Equal(t, k, it.Diff(begin))
		assert.True(t, it.Add(-k).Equal(begin))
		assert.True(t, it.Less(end))
	}

	i := 0
	for it := begin; !it.Equal(end); it = it.Next() {
		require.Equal(t, model[i], it.Value().A)
		i++
	}
	for it := end; !it.Equal(begin); {
		it = it.Prev()
		i--
		require.Equal(t, model[i], it.Value().A)
	}

	var back []int16
	for _, x := range d.Backward() {
		back = append(back, x.A)
	}
	slices.Reverse(back)
	assert.Equal(t, model, back)
}

func TestConstructors(t *testing.T) {
	mem := checkedPool(t)

	filled := deque.NewFilled(300, "s", deque.WithAllocator(mem))
	defer filled.Release()
	assert.Equal(t, 300, filled.Len())
	assert.Equal(t, "s", filled.At(299))

	sized := deque.NewSized[float64](129, deque.WithAllocator(mem))
	defer sized.Release()
	assert.Equal(t, 129, sized.Len())
	for _, x := range sized.All() {
		require.Zero(t, x, "pool memory must be initialized")
	}

	vals := make([]int, 1000)
	for i := range vals {
		vals[i] = i * 3
	}
	fs := deque.FromSlice(vals, deque.WithAllocator(mem))
	defer fs.Release()
	assert.Equal(t, vals, fs.Values())

	fr := deque.FromRange[int](iterator.Begin(vals).Add(10), iterator.End(vals), deque.WithAllocator(mem))
	defer fr.Release()
	assert.Equal(t, vals[10:], fr.Values())

	exact := deque.FromSlice(vals[:256], deque.WithAllocator(mem))
	defer exact.Release()
	assert.Equal(t, 256, exact.Len(), "a bucket-aligned length leaves the last bucket empty")
	exact.PushBack(-1)
	assert.Equal(t, -1, exact.Back())
}

func TestCloneMoveSwap(t *testing.T) {
	mem := checkedPool(t)
	a := deque.FromSlice([]int{1, 2, 3}, deque.WithAllocator(mem))
	b := a.Clone()
	b.Set(0, 100)
	assert.Equal(t, []int{1, 2, 3}, a.Values())
	assert.True(t, deque.Equal(a, a))
	assert.False(t, deque.Equal(a, b))

	c := deque.Move(a)
	assert.True(t, a.Empty())
	a.PushFront(7)
	assert.Equal(t, []int{7}, a.Values())
	assert.Equal(t, []int{1, 2, 3}, c.Values())

	b.Swap(c)
	assert.Equal(t, []int{1, 2, 3}, b.Values())
	assert.Equal(t, []int{100, 2, 3}, c.Values())

	a.Release()
	b.Release()
	c.Retain()
	c.Release()
	assert.Equal(t, 3, c.Len())
	c.Release()
}

func TestInsertEraseInverse(t *testing.T) {
	orig := make([]int, 300)
	for i := range orig {
		orig[i] = i
	}
	d := deque.FromSlice(orig, deque.WithAllocator(checkedPool(t)))
	defer d.Release()

	for p := 0; p <= len(orig); p += 7 {
		assert.Equal(t, p, d.Insert(p, -1))
		require.Equal(t, -1, d.At(p))
		require.Equal(t, len(orig)+1, d.Len())
		assert.Equal(t, p, d.Erase(p))
		require.Equal(t, orig, d.Values(), "position %d", p)
	}
	d.Insert(len(orig), -1)
	assert.Equal(t, -1, d.Back())
	d.Erase(len(orig))
	assert.Equal(t, orig, d.Values())
}

func TestInsertErase(t *testing.T) {
	tests := []struct {
		name string
		pos  int
	}{
		{"front", 0},
		{"near front", 2},
		{"middle", 5},
		{"near back", 8},
		{"back", 10},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := deque.FromSlice([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
			defer d.Release()
			d.Insert(test.pos, 42)
			want := slices.Insert([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, test.pos, 42)
			assert.Equal(t, want, d.Values())

			if test.pos < 10 {
				d.Erase(test.pos + 1)
				assert.Equal(t, slices.Delete(want, test.pos+1, test.pos+2), d.Values())
			}
		})
	}
}

func TestTrackedLifetimes(t *testing.T) {
	tr := &testutil.Tracker{}
	d := deque.New[testutil.Tracked]()
	for i := 0; i < 100; i++ {
		d.PushBack(testutil.NewTracked(tr, i))
		d.PushFront(testutil.NewTracked(tr, -i))
	}
	assert.Equal(t, 200, tr.Live())

	d.Insert(50, testutil.NewTracked(tr, 1000))
	d.Insert(150, testutil.NewTracked(tr, 2000))
	assert.Equal(t, 202, tr.Live())
	d.Erase(10)
	d.Erase(190)
	d.PopBack()
	d.PopFront()
	assert.Equal(t, 198, tr.Live())

	d.Clear()
	assert.Zero(t, tr.Live())
	d.PushBack(testutil.NewTracked(tr, 1))
	d.Release()
	assert.Zero(t, tr.Live())
}

func TestClearTwice(t *testing.T) {
	d := deque.FromSlice([]string{"a", "b", "c"})
	defer d.Release()
	d.Clear()
	assert.Zero(t, d.Len())
	d.Clear()
	assert.Zero(t, d.Len())
	d.PushBack("d")
	assert.Equal(t, []string{"d"}, d.Values())
}

func TestZeroSizedElements(t *testing.T) {
	d := deque.New[struct{}]()
	defer d.Release()
	for i := 0; i < 3000; i++ {
		d.PushFront(struct{}{})
	}
	assert.Equal(t, 3000, d.Len())
	d.PopBack()
	assert.Equal(t, 2999, d.Len())
}

func TestMatchesSliceModel(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3} {
		t.Run(fmt.Sprint(seed), func(t *testing.T) {
			rng := rand.New(rand.NewSource(seed))
			d := deque.New[wide](deque.WithAllocator(checkedPool(t)))
			defer d.Release()
			var model []wide

			for step := 0; step < 3000; step++ {
				x := wide{A: int16(step), B: int16(rng.Intn(100))}
				switch op := rng.Intn(8); {
				case op <= 1:
					d.PushBack(x)
					model = append(model, x)
				case op <= 3:
					d.PushFront(x)
					model = slices.Insert(model, 0, x)
				case op == 4 && len(model) > 0:
					d.PopBack()
					model = model[:len(model)-1]
				case op == 5 && len(model) > 0:
					d.PopFront()
					model = model[1:]
				case op == 6:
					p := rng.Intn(len(model) + 1)
					d.Insert(p, x)
					model = slices.Insert(model, p, x)
				case op == 7 && len(model) > 0:
					p := rng.Intn(len(model))
					d.Erase(p)
					model = slices.Delete(model, p, p+1)
				}
				require.Equal(t, len(model), d.Len())
			}
			if diff := cmp.Diff(model, d.Values(), cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("mismatch (-model +deque):\n%s", diff)
			}
			for i := range model {
				require.Equal(t, model[i], d.At(i))
			}
		})
	}
}
