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

package traits

import (
	"reflect"
	"sync"
	"unsafe"
)

// Destroyer is implemented by element types that need to run cleanup when an
// element is destroyed. A type implementing Destroyer is never trivially
// destructible.
type Destroyer interface {
	Destroy()
}

// Cloner is implemented by element types whose copy must not be a plain
// value copy. Copy construction calls Clone; a type implementing Cloner is
// never trivially copyable.
type Cloner[T any] interface {
	Clone() T
}

// Traits describes how values of a single element type may be moved,
// initialized and destroyed.
type Traits struct {
	// Size is unsafe.Sizeof of the element type.
	Size int
	// Align is the required alignment of the element type.
	Align int
	// PointerFree is true when the type holds no Go pointers.
	PointerFree bool
	// TrivialCopy is true when a copy is a byte copy.
	TrivialCopy bool
	// TrivialDestroy is true when destroying a value is a no-op.
	TrivialDestroy bool
	// Cloner and Destroyer record whether *T implements the hooks.
	Cloner    bool
	Destroyer bool
}

// IsPOD reports whether values can be copied, filled and discarded as raw bytes.
func (t Traits) IsPOD() bool { return t.TrivialCopy && t.TrivialDestroy }

var cache sync.Map // reflect.Type -> Traits

// Of returns the traits of T. The result is computed on first use for each
// type and cached.
func Of[T any]() Traits {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if v, ok := cache.Load(rt); ok {
		return v.(Traits)
	}

	var zero T
	pf := pointerFree(rt)
	_, cloner := any(&zero).(Cloner[T])
	_, destroyer := any(&zero).(Destroyer)
	tr := Traits{
		Size:           int(unsafe.Sizeof(zero)),
		Align:          int(unsafe.Alignof(zero)),
		PointerFree:    pf,
		TrivialCopy:    pf && !cloner,
		TrivialDestroy: pf && !destroyer,
		Cloner:         cloner,
		Destroyer:      destroyer,
	}
	cache.Store(rt, tr)
	return tr
}

func pointerFree(rt reflect.Type) bool {
	switch rt.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return rt.Len() == 0 || pointerFree(rt.Elem())
	case reflect.Struct:
		for i := 0; i < rt.NumField(); i++ {
			if !pointerFree(rt.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// string, slice, map, pointer, unsafe.Pointer, chan, func, interface
		return false
	}
}

// CastFromBytesTo reinterprets the slice b as a slice of T. The capacity of
// the result covers the whole capacity of b.
//
// NOTE: len(b) must be a multiple of T's size, b must be suitably aligned for
// T and T must be pointer-free and not zero-sized.
func CastFromBytesTo[T any](b []byte) []T {
	if cap(b) == 0 {
		return nil
	}
	ptr := (*T)(unsafe.Pointer(unsafe.SliceData(b)))
	size := int(unsafe.Sizeof(*ptr))
	return unsafe.Slice(ptr, cap(b)/size)[:len(b)/size]
}

// CastToBytes reinterprets the slice s as its underlying bytes, covering the
// whole capacity of s.
func CastToBytes[T any](s []T) []byte {
	if cap(s) == 0 {
		return nil
	}
	ptr := unsafe.SliceData(s)
	size := int(unsafe.Sizeof(*ptr))
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), cap(s)*size)[:len(s)*size]
}
