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

// Package adapter provides restricted interfaces over the sequence
// containers: Stack (last in, first out), Queue (first in, first out) and
// PriorityQueue (largest element first under a comparison).
//
// Stack and Queue default to a deque.Deque but accept any container with the
// needed operations, so a vector or a list can be substituted. PriorityQueue
// keeps a vector.Vector arranged as a binary max-heap with the algorithm
// package's heap operations.
//
// An adapter owns its container; Release releases it.
package adapter
