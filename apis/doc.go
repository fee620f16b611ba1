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

// Package apis defines the public contracts between mayfail error values
// and their transport adapters.
//
// Adapters (HTTP, gRPC, loggers) should target these small interfaces
// and the View type rather than the concrete error implementation, so
// that the dependency points in one direction only: concrete error types
// implement the interfaces here, adapters consume them.
//
// This package must remain lightweight: interfaces and small view types
// only, no heavy dependencies.
package apis
