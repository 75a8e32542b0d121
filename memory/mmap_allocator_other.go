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

//go:build !unix

package memory

// MmapAllocator falls back to the Go heap where anonymous mappings are not
// available.
type MmapAllocator struct {
	mem       GoAllocator
	allocated int64
}

func NewMmapAllocator() *MmapAllocator { return &MmapAllocator{} }

func (a *MmapAllocator) AllocatedBytes() int64 { return a.allocated }

func (a *MmapAllocator) TryAllocate(size int) ([]byte, error) {
	b := a.mem.Allocate(size)
	a.allocated += int64(size)
	return b, nil
}

func (a *MmapAllocator) Allocate(size int) []byte {
	b, _ := a.TryAllocate(size)
	return b
}

func (a *MmapAllocator) Reallocate(size int, b []byte) []byte {
	a.allocated += int64(size - len(b))
	return a.mem.Reallocate(size, b)
}

func (a *MmapAllocator) Free(b []byte) { a.allocated -= int64(cap(b)) }

func (a *MmapAllocator) AssertSize(t TestingT, sz int) {
	if int64(sz) != a.allocated {
		t.Helper()
		t.Errorf("invalid memory size exp=%d, got=%d", sz, a.allocated)
	}
}

var _ FallibleAllocator = (*MmapAllocator)(nil)
