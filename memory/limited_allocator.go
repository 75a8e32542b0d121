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

package memory

import "golang.org/x/xerrors"

// LimitedAllocator enforces a byte budget on top of another allocator.
// Requests that would exceed the budget fail with ErrOutOfMemory: TryAllocate
// returns the error, Allocate and Reallocate panic with it.
type LimitedAllocator struct {
	mem   Allocator
	limit int
	used  int
}

// NewLimitedAllocator returns an allocator that lets at most limit bytes be
// outstanding at any time. A nil mem uses DefaultAllocator.
func NewLimitedAllocator(mem Allocator, limit int) *LimitedAllocator {
	if mem == nil {
		mem = DefaultAllocator
	}
	return &LimitedAllocator{mem: mem, limit: limit}
}

// SetLimit changes the budget. Lowering it below Used does not reclaim
// anything; it only makes further requests fail.
func (a *LimitedAllocator) SetLimit(limit int) { a.limit = limit }

// Used returns the number of bytes currently outstanding.
func (a *LimitedAllocator) Used() int { return a.used }

func (a *LimitedAllocator) TryAllocate(size int) ([]byte, error) {
	if size < 0 {
		panic(ErrNegativeSize)
	}
	if a.used+size > a.limit {
		return nil, xerrors.Errorf("memory: %d bytes requested with %d of %d in use: %w",
			size, a.used, a.limit, ErrOutOfMemory)
	}
	a.used += size
	return a.mem.Allocate(size), nil
}

func (a *LimitedAllocator) Allocate(size int) []byte {
	b, err := a.TryAllocate(size)
	if err != nil {
		panic(err)
	}
	return b
}

func (a *LimitedAllocator) Reallocate(size int, b []byte) []byte {
	delta := size - len(b)
	if a.used+delta > a.limit {
		panic(xerrors.Errorf("memory: growing %d to %d bytes with %d of %d in use: %w",
			len(b), size, a.used, a.limit, ErrOutOfMemory))
	}
	a.used += delta
	return a.mem.Reallocate(size, b)
}

func (a *LimitedAllocator) Free(b []byte) {
	a.used -= len(b)
	a.mem.Free(b)
}

var _ FallibleAllocator = (*LimitedAllocator)(nil)
