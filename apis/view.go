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

// View is the minimal, serializable representation of a tagged error.
//
// It is the shape both the HTTP and gRPC adapters expose over the wire:
// everything here is considered safe to disclose to clients. No
// automatic redaction happens at this level — callers that attach
// sensitive metadata must filter before the boundary.
type View struct {
	// Code is the canonical error code, e.g. "user_fetch_failed".
	Code string `json:"code"`

	// Message is the resolved human-friendly message.
	Message string `json:"message"`

	// StatusCode is the resolved numeric status.
	StatusCode int `json:"status_code"`

	// Meta is the contextual payload attached to the error, if any.
	Meta map[string]any `json:"meta,omitempty"`
}
