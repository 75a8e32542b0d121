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

const (
	alignment = 64
)

// Allocator hands out and takes back byte blocks. The size of a block is
// carried by its length, so Free must be given the slice exactly as it was
// returned by Allocate or Reallocate.
type Allocator interface {
	Allocate(size int) []byte
	Reallocate(size int, b []byte) []byte
	Free(b []byte)
}

// FallibleAllocator is implemented by allocators that can report exhaustion
// as an error instead of panicking. Pool uses it to fall back on blocks
// already sitting in its free lists before giving up.
type FallibleAllocator interface {
	Allocator
	TryAllocate(size int) ([]byte, error)
}

// DefaultAllocator is the system allocator used when none is given.
var DefaultAllocator Allocator = NewGoAllocator()

// DefaultPool is the process-wide small-block pool. It holds no memory until
// the first small allocation and is never torn down.
//
// Setting TINYSTL_POOL_POISON=1 in the environment enables write-after-free
// poisoning on it.
var DefaultPool = NewPool(DefaultAllocator, WithPoison(envFlag("TINYSTL_POOL_POISON")))

func tryAllocate(mem Allocator, size int) ([]byte, error) {
	if fa, ok := mem.(FallibleAllocator); ok {
		return fa.TryAllocate(size)
	}
	return mem.Allocate(size), nil
}
