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

// Package construct initializes and tears down single elements and element
// ranges. Types opt into non-trivial copies and cleanup by implementing
// traits.Cloner and traits.Destroyer; every other type is copied by
// assignment and destroyed by zeroing.
package construct

import "github.com/EchoBoy/TinySTL/traits"

// Construct initializes the slot p with a copy of v. The slot is assumed to
// hold no live value.
func Construct[T any](p *T, v T) {
	if c, ok := any(&v).(traits.Cloner[T]); ok {
		*p = c.Clone()
		return
	}
	*p = v
}

// Assign replaces the live value in p with a copy of v. The copy is made
// before the old value is destroyed, so assigning a value to its own slot is
// safe.
func Assign[T any](p *T, v T) {
	c, cloner := any(&v).(traits.Cloner[T])
	if !cloner {
		if d, ok := any(p).(traits.Destroyer); ok {
			d.Destroy()
		}
		*p = v
		return
	}
	nv := c.Clone()
	if d, ok := any(p).(traits.Destroyer); ok {
		d.Destroy()
	}
	*p = nv
}

// Destroy ends the lifetime of the value in p: Destroy is called when the
// type implements traits.Destroyer, then the slot is zeroed so that the
// garbage collector can reclaim whatever it referenced.
func Destroy[T any](p *T) {
	if d, ok := any(p).(traits.Destroyer); ok {
		d.Destroy()
	}
	var zero T
	*p = zero
}

// DestroyRange destroys every element of s in order. It does nothing for
// trivially destructible element types.
func DestroyRange[T any](s []T) {
	if len(s) == 0 {
		return
	}
	tr := traits.Of[T]()
	switch {
	case tr.TrivialDestroy:
	case !tr.Destroyer:
		clear(s)
	default:
		for i := range s {
			Destroy(&s[i])
		}
	}
}
