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
Package deque provides Deque, a double-ended queue stored as a map of
fixed-capacity buckets.

Each bucket holds max(1, 1024/size) elements of the element type; types of
size zero get 1024 per bucket. The map is a slice of bucket handles with spare
slots at both ends, so pushing at either end is amortized O(1) and never moves
an element: when the map runs out of slots on one side it is either recentered
in place or reallocated, and only the bucket handles are copied.

Positions inside the deque are (bucket, offset) pairs. Iterators step across
bucket boundaries transparently and support random access, so indexing and
iterator arithmetic behave as if the deque were one contiguous sequence.
*/
package deque
