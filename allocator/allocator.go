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

// Package allocator adapts a byte-oriented memory.Allocator to typed element
// storage.
//
// Element types without Go pointers are carved from the byte allocator and
// reinterpreted in place. Types holding Go pointers are allocated by the
// runtime instead, because the garbage collector does not scan memory handed
// out as raw bytes and would free whatever such elements referenced.
package allocator

import (
	"github.com/EchoBoy/TinySTL/construct"
	"github.com/EchoBoy/TinySTL/internal/debug"
	"github.com/EchoBoy/TinySTL/memory"
	"github.com/EchoBoy/TinySTL/traits"
)

// Allocator hands out blocks of T. The zero value is not usable; see New and
// Default.
type Allocator[T any] struct {
	mem   memory.Allocator
	tr    traits.Traits
	bytes bool
}

// New returns an allocator drawing pointer-free blocks from mem. A nil mem
// uses memory.DefaultPool.
func New[T any](mem memory.Allocator) Allocator[T] {
	if mem == nil {
		mem = memory.DefaultPool
	}
	tr := traits.Of[T]()
	return Allocator[T]{
		mem:   mem,
		tr:    tr,
		bytes: tr.PointerFree && tr.Size > 0 && tr.Align <= memory.Align,
	}
}

// Default returns an allocator backed by memory.DefaultPool.
func Default[T any]() Allocator[T] { return New[T](nil) }

// Mem returns the byte allocator a is drawing from.
func (a Allocator[T]) Mem() memory.Allocator { return a.mem }

// Allocate returns storage for n elements with len and cap both n. The slots
// hold no live values; for byte-backed types their contents are arbitrary
// until constructed. Allocate(0) returns nil without touching the byte
// allocator.
func (a Allocator[T]) Allocate(n int) []T {
	debug.Assert(n >= 0, "allocator: negative element count")
	if n <= 0 {
		return nil
	}
	if !a.bytes {
		return make([]T, n)
	}
	return traits.CastFromBytesTo[T](a.mem.Allocate(n * a.tr.Size))
}

// Deallocate returns storage obtained from Allocate. p must be the whole
// block, with its original length. Live elements must have been destroyed.
func (a Allocator[T]) Deallocate(p []T) {
	if len(p) == 0 || !a.bytes {
		return
	}
	a.mem.Free(traits.CastToBytes(p[:len(p):len(p)]))
}

// Construct copy-constructs v into the slot p.
func (a Allocator[T]) Construct(p *T, v T) { construct.Construct(p, v) }

// Destroy ends the lifetime of the value in p.
func (a Allocator[T]) Destroy(p *T) { construct.Destroy(p) }

// DestroyRange destroys every element of s.
func (a Allocator[T]) DestroyRange(s []T) { construct.DestroyRange(s) }

// Rebind returns an allocator for U drawing from the same byte allocator.
func Rebind[U, T any](a Allocator[T]) Allocator[U] { return New[U](a.mem) }
