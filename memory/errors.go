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

import "errors"

var (
	// ErrOutOfMemory indicates that neither the system allocator nor the
	// pool's free lists could satisfy a request.
	ErrOutOfMemory = errors.New("memory: out of memory")

	// ErrUseAfterFree indicates that a block was written to while it sat on a
	// free list. Only detected when poisoning is enabled.
	ErrUseAfterFree = errors.New("memory: write after free")

	// ErrForeignBlock indicates that a block given to Pool.Free was not carved
	// from that pool.
	ErrForeignBlock = errors.New("memory: block not owned by pool")

	// ErrNegativeSize indicates a negative allocation size.
	ErrNegativeSize = errors.New("memory: negative size")
)
