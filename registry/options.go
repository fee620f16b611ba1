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

package registry

import "dirpx.dev/mayfail/code"

// Option configures the Registry at build time. All options are applied
// to an internal builder and then frozen into an immutable Registry by
// New.
type Option func(*builder)

type entry struct {
	code code.Code
	def  Definition
}

type builder struct {
	// entries keeps insertion order so duplicate-key errors are
	// deterministic and point at the second definition.
	entries []entry
}

func newBuilder() *builder {
	return &builder{}
}

// WithDefinition registers a full Definition for the given code.
func WithDefinition(c code.Code, def Definition) Option {
	return func(b *builder) {
		b.entries = append(b.entries, entry{code: c, def: def})
	}
}

// WithStatic registers a fixed message and status for the given code.
// Pass status 0 to defer to DefaultStatusCode.
func WithStatic(c code.Code, msg string, status int) Option {
	return WithDefinition(c, Definition{Message: Static(msg), StatusCode: status})
}

// WithDynamic registers a computed message and status for the given code.
// Pass status 0 to defer to DefaultStatusCode.
func WithDynamic(c code.Code, fn func(Args) string, status int) Option {
	return WithDefinition(c, Definition{Message: Dynamic(fn), StatusCode: status})
}
