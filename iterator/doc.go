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
Package iterator defines the iterator categories shared by the containers and
the algorithms that dispatch on them.

Iterators are small values: stepping returns a new iterator rather than
mutating the receiver. A category is a capability tag, and the categories are
totally ordered so that an iterator of a stronger category can be passed
wherever a weaker one is asked for:

	Input < Forward < Bidirectional < RandomAccess

Functions taking iterator ranges are parameterized on the iterator type, so
the element type has to be named explicitly when it cannot be inferred:

	n := iterator.Distance(v.Begin(), v.End())
	vector.FromRange[int](l.Begin(), l.End())
*/
package iterator
