/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package future provides a minimal join primitive for caller-started
// asynchronous work.
//
// A Future[T] settles exactly once with a Result[T] — a value or an
// error. Futures are created with Go (which spawns the work immediately)
// or pre-settled with Resolved/Rejected, and joined with Wait. The
// mayfail wrappers build on this: independently started futures execute
// concurrently, and the wrappers only coordinate waiting for them.
package future
