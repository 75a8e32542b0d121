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
Package vector provides Vector, a contiguous growable array whose storage is
drawn from a memory.Allocator.

Elements in [0, Len) are live. Slots in [Len, Cap) are allocated but hold no
value; they are only ever constructed into. Growth allocates a fresh buffer of
at least twice the old capacity, copies the prefix, the inserted elements and
the suffix into it, and only then destroys and frees the old buffer, so a
failed allocation leaves the vector as it was.

Vectors are reference counted. A new vector has a count of one, and the last
Release destroys every element and returns the buffer to its allocator:

	v := vector.New[int](vector.WithAllocator(pool))
	defer v.Release()

Positions are indexes. Preconditions such as indexing past Len or popping an
empty vector are not checked unless the package is built with the assert tag.
*/
package vector
