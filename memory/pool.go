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

import (
	"encoding/binary"
	"io"
	"log/slog"

	"github.com/EchoBoy/TinySTL/internal/debug"
	"golang.org/x/exp/slices"
	"golang.org/x/xerrors"
)

const (
	// Align is the granularity of the small size classes.
	Align = 8
	// MaxBytes is the largest request served from the free lists.
	MaxBytes = 128
	// NumFreeLists is the number of small size classes.
	NumFreeLists = MaxBytes / Align

	defaultRefillCount = 20
	poisonByte         = 0xDD
	nextSize           = 8
)

// blockRef names a block by chunk and offset. The zero value terminates a
// free list.
//
// A block on a free list stores the blockRef of its successor in its first
// nextSize bytes. Nothing else in a free block is meaningful, and client data
// is never read while the block is free; that is what lets the same bytes
// serve as list link and client memory.
type blockRef uint64

func makeRef(chunk, off int) blockRef {
	debug.Assert(off >= 0 && off <= 0xFFFFFFFF, "pool: chunk offset overflows a block reference")
	return blockRef(uint64(chunk+1)<<32 | uint64(uint32(off)))
}

func (r blockRef) chunk() int  { return int(r>>32) - 1 }
func (r blockRef) offset() int { return int(uint32(r)) }

type chunk struct {
	buf  []byte
	base uintptr
}

// Pool is a segregated free-list allocator. See the package documentation.
type Pool struct {
	mem      Allocator
	freeList [NumFreeLists]blockRef

	chunks []chunk
	byAddr []int // indexes into chunks, ordered by base address

	// The uncommitted region of the current arena is
	// chunks[arena].buf[startFree:endFree].
	arena     int
	startFree int
	endFree   int
	heapSize  int

	inUse int

	refillCount int
	poison      bool
	logger      *slog.Logger
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithRefillCount sets how many blocks an empty free list asks the arena for.
func WithRefillCount(n int) PoolOption {
	return func(p *Pool) {
		if n > 0 {
			p.refillCount = n
		}
	}
}

// WithPoison fills freed blocks with a marker byte and verifies the marker
// when a block is handed out again. A modified marker panics with
// ErrUseAfterFree.
func WithPoison(on bool) PoolOption {
	return func(p *Pool) { p.poison = on }
}

// WithLogger sets the logger that receives arena growth and scavenging events
// at debug level.
func WithLogger(logger *slog.Logger) PoolOption {
	return func(p *Pool) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPool returns an empty pool drawing arena chunks and large blocks from
// mem. A nil mem uses DefaultAllocator.
func NewPool(mem Allocator, opts ...PoolOption) *Pool {
	if mem == nil {
		mem = DefaultAllocator
	}
	p := &Pool{
		mem:         mem,
		arena:       -1,
		refillCount: defaultRefillCount,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func freeListIndex(bytes int) int { return (bytes+Align-1)/Align - 1 }

func indexToSize(index int) int { return (index + 1) * Align }

// Allocate returns a block of exactly size bytes. Requests above MaxBytes go
// to the system allocator. A zero size returns nil.
//
// Allocate panics with an error wrapping ErrOutOfMemory when the system
// allocator is exhausted and no larger free block can be repurposed.
func (p *Pool) Allocate(size int) []byte {
	switch {
	case size < 0:
		panic(ErrNegativeSize)
	case size == 0:
		return nil
	case size > MaxBytes:
		b := p.mem.Allocate(size)
		p.inUse += size
		return b
	}

	idx := freeListIndex(size)
	if p.freeList[idx] == 0 {
		p.refill(idx)
	}
	head := p.freeList[idx]
	blk := p.block(head, indexToSize(idx))
	p.freeList[idx] = readNext(blk)
	if p.poison {
		p.checkPoison(idx, blk)
	}
	p.inUse += size
	return blk[:size:size]
}

// Free returns b to the pool. Blocks of up to MaxBytes bytes go back onto
// their free list in O(1): there is no coalescing and no double-free
// detection. Larger blocks go back to the system allocator.
func (p *Pool) Free(b []byte) {
	n := len(b)
	if n == 0 {
		return
	}
	p.inUse -= n
	if n > MaxBytes {
		p.mem.Free(b)
		return
	}

	idx := freeListIndex(n)
	ref := p.refOf(b)
	p.push(idx, ref, p.block(ref, indexToSize(idx)))
}

// Exchange frees b and allocates a block of size bytes. The contents of b are
// not carried over; callers that need them must copy first.
func (p *Pool) Exchange(b []byte, size int) []byte {
	p.Free(b)
	return p.Allocate(size)
}

// Reallocate returns a block of size bytes holding the first min(len(b), size)
// bytes of b, and frees b.
func (p *Pool) Reallocate(size int, b []byte) []byte {
	if size == len(b) {
		return b
	}
	out := p.Allocate(size)
	copy(out, b)
	p.Free(b)
	return out
}

// AllocatedBytes returns the number of client bytes currently handed out.
func (p *Pool) AllocatedBytes() int64 { return int64(p.inUse) }

// AssertSize fails t if the number of client bytes handed out differs from sz.
func (p *Pool) AssertSize(t TestingT, sz int) {
	if p.inUse != sz {
		t.Helper()
		t.Errorf("invalid memory size exp=%d, got=%d", sz, p.inUse)
	}
}

// refill links refillCount blocks of class idx into its free list, or fewer
// if the arena can only supply fewer, and reports how many were linked.
func (p *Pool) refill(idx int) int {
	unit := indexToSize(idx)
	nobjs := p.refillCount
	first := p.chunkAlloc(unit, &nobjs)

	c, off := first.chunk(), first.offset()
	for i := nobjs - 1; i >= 0; i-- {
		ref := makeRef(c, off+i*unit)
		p.push(idx, ref, p.block(ref, unit))
	}
	debug.Log(func() string { return "pool: refilled class " + itoa(idx) + " with " + itoa(nobjs) + " blocks" })
	return nobjs
}

// chunkAlloc carves room for up to *nobjs blocks of size bytes from the
// arena, lowering *nobjs when only part of that fits. When not even one block
// fits, the leftover arena bytes are recycled into their free list and a new
// arena twice the request plus a sixteenth of the heap so far is drawn from
// the system allocator. If that fails, the first free block of a larger class
// becomes the arena instead.
func (p *Pool) chunkAlloc(size int, nobjs *int) blockRef {
	debug.Assert(p.startFree <= p.endFree, "pool: arena bounds inverted")

	total := size * *nobjs
	left := p.endFree - p.startFree

	switch {
	case left >= total:
		ref := makeRef(p.arena, p.startFree)
		p.startFree += total
		return ref
	case left >= size:
		*nobjs = left / size
		total = *nobjs * size
		ref := makeRef(p.arena, p.startFree)
		p.startFree += total
		return ref
	}

	toGet := 2*total + roundUp(p.heapSize>>4)
	if left > 0 {
		// left is a multiple of Align below size, so it is a valid class.
		idx := freeListIndex(left)
		ref := makeRef(p.arena, p.startFree)
		p.push(idx, ref, p.block(ref, left))
		p.logger.Debug("pool arena leftover recycled", "bytes", left, "class", idx)
	}
	p.arena, p.startFree, p.endFree = -1, 0, 0

	if err := p.grow(toGet); err != nil {
		for i := freeListIndex(size) + 1; i < NumFreeLists; i++ {
			head := p.freeList[i]
			if head == 0 {
				continue
			}
			unit := indexToSize(i)
			p.freeList[i] = readNext(p.block(head, unit))
			p.arena, p.startFree, p.endFree = head.chunk(), head.offset(), head.offset()+unit
			p.logger.Debug("pool scavenged free block as arena", "bytes", unit, "class", i, "error", err)
			return p.chunkAlloc(size, nobjs)
		}
		panic(xerrors.Errorf("memory: pool cannot supply %d-byte blocks: %w", size, err))
	}
	return p.chunkAlloc(size, nobjs)
}

// grow installs a fresh arena of n bytes.
func (p *Pool) grow(n int) error {
	buf, err := tryAllocate(p.mem, n)
	if err != nil {
		return err
	}

	c := chunk{buf: buf[:n:n], base: addressOf(buf)}
	p.chunks = append(p.chunks, c)
	pos, _ := slices.BinarySearchFunc(p.byAddr, c.base, p.cmpChunk)
	p.byAddr = slices.Insert(p.byAddr, pos, len(p.chunks)-1)

	p.arena, p.startFree, p.endFree = len(p.chunks)-1, 0, n
	p.heapSize += n
	p.logger.Debug("pool arena grown", "bytes", n, "heap_size", p.heapSize, "chunks", len(p.chunks))
	return nil
}

func (p *Pool) cmpChunk(ci int, addr uintptr) int {
	c := p.chunks[ci]
	switch {
	case addr < c.base:
		return 1
	case addr >= c.base+uintptr(len(c.buf)):
		return -1
	default:
		return 0
	}
}

// refOf finds the block reference of a block handed out by the pool.
func (p *Pool) refOf(b []byte) blockRef {
	addr := addressOf(b)
	pos, ok := slices.BinarySearchFunc(p.byAddr, addr, p.cmpChunk)
	if !ok {
		panic(xerrors.Errorf("memory: freeing %d bytes at %#x: %w", len(b), addr, ErrForeignBlock))
	}
	ci := p.byAddr[pos]
	return makeRef(ci, int(addr-p.chunks[ci].base))
}

func (p *Pool) block(ref blockRef, size int) []byte {
	off := ref.offset()
	return p.chunks[ref.chunk()].buf[off : off+size : off+size]
}

func (p *Pool) push(idx int, ref blockRef, blk []byte) {
	if p.poison {
		Set(blk[nextSize:], poisonByte)
	}
	writeNext(blk, p.freeList[idx])
	p.freeList[idx] = ref
}

func (p *Pool) checkPoison(idx int, blk []byte) {
	for i := nextSize; i < len(blk); i++ {
		if blk[i] != poisonByte {
			panic(xerrors.Errorf("memory: %d-byte block modified at byte %d after free: %w",
				indexToSize(idx), i, ErrUseAfterFree))
		}
	}
}

func readNext(blk []byte) blockRef { return blockRef(binary.LittleEndian.Uint64(blk)) }

func writeNext(blk []byte, next blockRef) { binary.LittleEndian.PutUint64(blk, uint64(next)) }

var _ Allocator = (*Pool)(nil)
