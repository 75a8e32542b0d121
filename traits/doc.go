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

// Package traits classifies element types once so that containers and
// algorithms can pick between raw byte operations and element-wise
// construction without re-inspecting the type on every call.
//
// A type is pointer-free when no Go pointer can live anywhere inside its
// representation. Only pointer-free types may be stored in untyped byte memory
// handed out by a memory.Allocator, since the garbage collector does not scan
// such memory.
package traits
