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

//go:build unix

package memory

import (
	"golang.org/x/sys/unix"
	"golang.org/x/xerrors"
)

// MmapAllocator serves every block from its own anonymous private mapping.
// It is meant as the system allocator under a Pool, where few, large,
// long-lived requests are made; blocks are page-granular and zero-filled.
//
// Memory obtained this way is not scanned by the garbage collector, so it may
// only hold pointer-free data.
type MmapAllocator struct {
	allocated int64
}

func NewMmapAllocator() *MmapAllocator { return &MmapAllocator{} }

// AllocatedBytes returns the number of bytes currently mapped.
func (a *MmapAllocator) AllocatedBytes() int64 { return a.allocated }

func (a *MmapAllocator) TryAllocate(size int) ([]byte, error) {
	if size < 0 {
		panic(ErrNegativeSize)
	}
	if size == 0 {
		return []byte{}, nil
	}
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, xerrors.Errorf("memory: mmap of %d bytes: %v: %w", size, err, ErrOutOfMemory)
	}
	a.allocated += int64(size)
	return b, nil
}

func (a *MmapAllocator) Allocate(size int) []byte {
	b, err := a.TryAllocate(size)
	if err != nil {
		panic(err)
	}
	return b
}

func (a *MmapAllocator) Reallocate(size int, b []byte) []byte {
	if size == len(b) {
		return b
	}
	out := a.Allocate(size)
	copy(out, b)
	a.Free(b)
	return out
}

func (a *MmapAllocator) Free(b []byte) {
	if cap(b) == 0 {
		return
	}
	// unix.Munmap identifies the mapping by its full extent.
	if err := unix.Munmap(b[:cap(b)]); err != nil {
		panic(xerrors.Errorf("memory: munmap: %w", err))
	}
	a.allocated -= int64(cap(b))
}

func (a *MmapAllocator) AssertSize(t TestingT, sz int) {
	if int64(sz) != a.allocated {
		t.Helper()
		t.Errorf("invalid memory size exp=%d, got=%d", sz, a.allocated)
	}
}

var _ FallibleAllocator = (*MmapAllocator)(nil)
