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

package apis

// CodedError represents an error classified by a machine-readable code.
//
// Codes are stable, enumerable identifiers drawn from the application's
// registry (e.g. "user_fetch_failed"). They are the primary value
// transport adapters use to identify the failure class.
//
// Implementations MUST return a non-empty, canonical code (see the
// dirpx.dev/mayfail/code package). Adapters should treat empty or
// unknown codes as internal errors at the boundary.
type CodedError interface {
	error

	// ErrorCode returns the machine-readable error code.
	ErrorCode() string
}

// StatusedError represents an error carrying a resolved numeric status
// suitable for an HTTP-style boundary.
//
// Implementations MUST return a concrete status — never zero. The
// mayfail resolver guarantees this by defaulting to 500 when neither the
// instance nor its registry definition specifies one.
type StatusedError interface {
	error

	// ErrorStatusCode returns the resolved numeric status.
	ErrorStatusCode() int
}

// MetaError represents an error exposing contextual key/value metadata,
// e.g. the failed/succeeded settlement partitions of a batch join.
//
// Implementations SHOULD return a map that callers can safely iterate
// without it being mutated underneath them. Returning nil means "no
// metadata".
type MetaError interface {
	error

	// ErrorMeta returns the error's contextual payload. May return nil.
	ErrorMeta() map[string]any
}
