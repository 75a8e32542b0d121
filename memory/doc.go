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

/*
Package memory provides the byte allocators the containers are built on.

System allocators hand out whole blocks obtained from the Go heap
(GoAllocator) or from anonymous memory mappings (MmapAllocator).
CheckedAllocator and LimitedAllocator wrap another allocator to track leaks or
to impose a byte budget.

Pool is a segregated free-list allocator for small blocks. Requests of up to
MaxBytes bytes are rounded up to a multiple of Align and served from one of
NumFreeLists free lists; the lists are refilled in bulk from an arena that
grows by drawing chunks from a system allocator. Larger requests pass straight
through to the system allocator.

Pool is not safe for concurrent use.
*/
package memory
