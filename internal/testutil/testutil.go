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

// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertPanicsWith fails t unless f panics with an error matching target.
func AssertPanicsWith(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.Truef(t, ok, "panic value %v is not an error", r)
		assert.ErrorIs(t, err, target)
	}()
	f()
}

// Tracker counts the lifecycle events of Tracked values.
type Tracker struct {
	Clones   int
	Destroys int
}

// Live returns how many copies are outstanding, counting every clone as
// constructed and every destroy as gone.
func (tr *Tracker) Live() int { return tr.Clones - tr.Destroys }

// Tracked is an element type with a non-trivial copy and destructor. Every
// Clone and Destroy is counted on the shared Tracker.
type Tracked struct {
	V  int
	tr *Tracker
}

// NewTracked returns a value bound to tr. Values made this way are not
// counted as clones.
func NewTracked(tr *Tracker, v int) Tracked { return Tracked{V: v, tr: tr} }

func (t Tracked) Clone() Tracked {
	if t.tr != nil {
		t.tr.Clones++
	}
	return t
}

func (t *Tracked) Destroy() {
	if t.tr != nil {
		t.tr.Destroys++
	}
}
