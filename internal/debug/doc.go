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
Package debug holds assertions and trace logging for the containers and the pool.

Both are compiled out of ordinary builds, so the unchecked fast paths cost
nothing.

Build with the assert tag to turn on precondition checks (empty pops,
out-of-range indexes, release underflow):

	go test -tags assert ./...

Build with the debug tag to trace arena growth, refills and map growth on stderr.
*/
package debug
