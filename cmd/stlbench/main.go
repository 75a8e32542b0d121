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

package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/EchoBoy/TinySTL/container/deque"
	"github.com/EchoBoy/TinySTL/container/vector"
	"github.com/EchoBoy/TinySTL/memory"
	"github.com/docopt/docopt-go"
	"github.com/goccy/go-json"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

const usage = `TinySTL pool benchmark.
Usage:
  stlbench -h | --help
  stlbench [--count=N] [--max-size=BYTES] [--mean=BYTES] [--seed=SEED] [--poison] [--mmap] [--json]
Options:
  -h --help          Show this screen.
  --count=N          Number of allocations to perform. [default: 100000]
  --max-size=BYTES   Largest request size; larger draws are clamped. [default: 256]
  --mean=BYTES       Mean of the exponential request-size distribution. [default: 48]
  --seed=SEED        Seed for the size distribution. [default: 1]
  --poison           Poison freed blocks and verify them on reuse.
  --mmap             Draw pool arenas from anonymous memory mappings.
  --json             Format output as JSON instead of text.`

type config struct {
	Count   int
	MaxSize int
	Mean    float64
	Seed    int
	Poison  bool
	Mmap    bool
	JSON    bool
}

func parseConfig(opts docopt.Opts) (cfg config, err error) {
	if cfg.Count, err = opts.Int("--count"); err != nil {
		return cfg, err
	}
	if cfg.MaxSize, err = opts.Int("--max-size"); err != nil {
		return cfg, err
	}
	if cfg.Mean, err = opts.Float64("--mean"); err != nil {
		return cfg, err
	}
	if cfg.Seed, err = opts.Int("--seed"); err != nil {
		return cfg, err
	}
	cfg.Poison, _ = opts.Bool("--poison")
	cfg.Mmap, _ = opts.Bool("--mmap")
	cfg.JSON, _ = opts.Bool("--json")
	return cfg, nil
}

type report struct {
	Allocations int              `json:"allocations"`
	Elapsed     time.Duration    `json:"elapsed_ns"`
	VectorLen   int              `json:"vector_len"`
	DequeLen    int              `json:"deque_len"`
	Peak        memory.PoolStats `json:"peak"`
	Final       memory.PoolStats `json:"final"`
	Mapped      int64            `json:"mapped_bytes,omitempty"`
}

func main() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	cfg, err := parseConfig(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if cfg.Count < 0 || cfg.MaxSize < 1 || cfg.Mean <= 0 {
		fmt.Fprintln(os.Stderr, "error: --count must be >= 0, --max-size >= 1 and --mean > 0")
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	var sys memory.Allocator = memory.NewGoAllocator()
	var mapped *memory.MmapAllocator
	if cfg.Mmap {
		mapped = memory.NewMmapAllocator()
		sys = mapped
	}
	pool := memory.NewPool(sys, memory.WithPoison(cfg.Poison), memory.WithLogger(logger))

	rep := run(pool, cfg)
	if mapped != nil {
		rep.Mapped = mapped.AllocatedBytes()
	}

	if cfg.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}
	printReport(rep)
}

// run allocates cfg.Count blocks with exponentially distributed sizes,
// frees every other one, then grows a vector and a deque on the same pool.
func run(pool *memory.Pool, cfg config) report {
	dist := distuv.Exponential{
		Rate: 1 / cfg.Mean,
		Src:  rand.NewSource(uint64(cfg.Seed)),
	}

	start := time.Now()
	blocks := make([][]byte, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		n := int(dist.Rand()) + 1
		blocks = append(blocks, pool.Allocate(min(n, cfg.MaxSize)))
	}
	for i := 0; i < len(blocks); i += 2 {
		pool.Free(blocks[i])
		blocks[i] = nil
	}

	v := vector.New[int64](vector.WithAllocator(pool))
	d := deque.New[int32](deque.WithAllocator(pool))
	for i := 0; i < cfg.Count; i++ {
		v.PushBack(int64(i))
		if i%2 == 0 {
			d.PushBack(int32(i))
		} else {
			d.PushFront(int32(i))
		}
	}

	rep := report{
		Allocations: cfg.Count,
		VectorLen:   v.Len(),
		DequeLen:    d.Len(),
		Peak:        pool.Stats(),
	}

	v.Release()
	d.Release()
	for _, b := range blocks {
		if b != nil {
			pool.Free(b)
		}
	}
	rep.Elapsed = time.Since(start)
	rep.Final = pool.Stats()
	return rep
}

func printReport(rep report) {
	fmt.Println("Allocations:", rep.Allocations)
	fmt.Println("Elapsed:", rep.Elapsed)
	fmt.Println("Vector Len:", rep.VectorLen)
	fmt.Println("Deque Len:", rep.DequeLen)
	if rep.Mapped > 0 {
		fmt.Println("Mapped Bytes:", rep.Mapped)
	}
	for _, s := range []struct {
		name string
		st   memory.PoolStats
	}{{"Peak", rep.Peak}, {"Final", rep.Final}} {
		fmt.Printf("%s: heap=%d chunks=%d in_use=%d arena_free=%d free_list_bytes=%d\n",
			s.name, s.st.HeapSize, s.st.Chunks, s.st.InUse, s.st.ArenaFree, s.st.FreeBytes())
		for i, n := range s.st.FreeBlocks {
			if n > 0 {
				fmt.Printf("  class %4d: %d blocks\n", (i+1)*memory.Align, n)
			}
		}
	}
}
