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

// Package algorithm implements the bulk and uninitialized-range algorithms
// the containers move their elements with, together with the heap
// algorithms behind the priority queue.
//
// The slice forms pick, once per element type, between a raw memory path for
// trivially copyable types and an element-wise path that honors
// traits.Cloner and traits.Destroyer. "Uninitialized" destinations are slots
// that hold no live value yet: the element-wise path constructs into them
// instead of assigning.
package algorithm
