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

// PoolStats is a snapshot of a pool's bookkeeping.
type PoolStats struct {
	// HeapSize is the total number of bytes drawn from the system allocator
	// for arenas.
	HeapSize int `json:"heap_size"`
	// Chunks is the number of arenas drawn from the system allocator.
	Chunks int `json:"chunks"`
	// ArenaFree is the size of the uncommitted region of the current arena.
	ArenaFree int `json:"arena_free"`
	// InUse is the number of client bytes handed out and not yet freed,
	// including blocks passed through to the system allocator.
	InUse int `json:"in_use"`
	// FreeBlocks holds the length of each free list; entry i serves
	// (i+1)*Align bytes.
	FreeBlocks [NumFreeLists]int `json:"free_blocks"`
}

// FreeBytes returns the number of bytes sitting on free lists.
func (s PoolStats) FreeBytes() int {
	total := 0
	for i, n := range s.FreeBlocks {
		total += n * indexToSize(i)
	}
	return total
}

// Stats walks the free lists and returns a snapshot. It is O(free blocks).
func (p *Pool) Stats() PoolStats {
	st := PoolStats{
		HeapSize:  p.heapSize,
		Chunks:    len(p.chunks),
		ArenaFree: p.endFree - p.startFree,
		InUse:     p.inUse,
	}
	for i := range p.freeList {
		unit := indexToSize(i)
		for ref := p.freeList[i]; ref != 0; ref = readNext(p.block(ref, unit)) {
			st.FreeBlocks[i]++
		}
	}
	return st
}
