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

import (
	"fmt"
	"sort"

	"dirpx.dev/mayfail/code"
)

// DefaultStatusCode is used when neither the error instance nor the
// registry definition supplies a status. It is deliberately the generic
// server-error status: an unclassified failure should never masquerade
// as a client error.
const DefaultStatusCode = 500

// Definition describes one failure class: how to produce its human
// message and which numeric status it maps to.
type Definition struct {
	// Message produces the human-readable message. May be nil, in which
	// case the code itself is used as the message.
	Message Message

	// StatusCode is the numeric status for this class. Zero means "not
	// specified" and defers to DefaultStatusCode.
	StatusCode int
}

// Registry is an immutable mapping from code to Definition.
//
// A Registry is built once at startup via New and is safe for unbounded
// concurrent use afterwards: all lookups are reads of a frozen map, and
// resolution never mutates shared state.
type Registry struct {
	defs map[code.Code]Definition
}

// New builds an immutable Registry snapshot from the provided options.
//
// Build process:
//
//  1. Apply the options to an internal builder (insertion order kept).
//  2. Normalize nothing — registry keys must already be canonical codes;
//     each key is validated via code.Validate.
//  3. Reject duplicate keys: two definitions for one code is a
//     configuration bug, not something to resolve silently.
//  4. Freeze the definitions into a registry-owned map.
//
// The returned Registry shares no references with the builder or the
// caller's option values, so it cannot be mutated after construction.
func New(opts ...Option) (*Registry, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	defs := make(map[code.Code]Definition, len(b.entries))
	for _, e := range b.entries {
		if err := code.Validate(e.code); err != nil {
			return nil, fmt.Errorf("registry: invalid code %q: %w", e.code, err)
		}
		if _, dup := defs[e.code]; dup {
			return nil, fmt.Errorf("registry: duplicate definition for code %q", e.code)
		}
		defs[e.code] = e.def
	}

	return &Registry{defs: defs}, nil
}

// MustNew is the panic-on-error variant of New, for package-level
// registry declarations where a bad definition is a programming error.
func MustNew(opts ...Option) *Registry {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Definition returns the definition registered for c, if any.
func (r *Registry) Definition(c code.Code) (Definition, bool) {
	d, ok := r.defs[c]
	return d, ok
}

// Has reports whether c is a registered code.
func (r *Registry) Has(c code.Code) bool {
	_, ok := r.defs[c]
	return ok
}

// Len returns the number of registered codes.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Codes returns all registered codes in sorted order. Intended for
// diagnostics and tests, not hot paths.
func (r *Registry) Codes() []code.Code {
	out := make([]code.Code, 0, len(r.defs))
	for c := range r.defs {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Request carries the per-instance overrides and context for a single
// resolution. Zero values mean "not provided": an empty Message defers to
// the registry, a zero StatusCode defers to the definition and then to
// DefaultStatusCode.
type Request struct {
	// Message, when non-empty, wins outright over any registry message.
	Message string

	// StatusCode, when non-zero, wins outright over any registry status.
	StatusCode int

	// Cause is the underlying failure, made available to dynamic messages.
	Cause error

	// Meta is the error's contextual payload, made available to dynamic
	// messages.
	Meta map[string]any
}

// Resolve computes the effective message and status for an error under
// code c.
//
// Message precedence (highest to lowest):
//
//  1. explicit per-instance override (req.Message);
//  2. the registered definition's Message (Static or Dynamic); a Dynamic
//     message that yields "" falls through;
//  3. the code itself, stringified.
//
// Status precedence, resolved independently of the message:
//
//  1. explicit per-instance override (req.StatusCode);
//  2. the registered definition's StatusCode;
//  3. DefaultStatusCode.
//
// Resolve never fails: unknown codes degrade to the code-as-message
// fallback rather than erroring, so error construction itself can never
// become a failure path.
func (r *Registry) Resolve(c code.Code, req Request) (message string, statusCode int) {
	def, known := r.defs[c]

	// Status first: dynamic messages receive the resolved status.
	statusCode = req.StatusCode
	if statusCode == 0 {
		if known && def.StatusCode != 0 {
			statusCode = def.StatusCode
		} else {
			statusCode = DefaultStatusCode
		}
	}

	message = req.Message
	if message == "" && known && def.Message != nil {
		if s, ok := def.Message.resolve(Args{
			Code:       c,
			Cause:      req.Cause,
			Meta:       req.Meta,
			StatusCode: statusCode,
		}); ok {
			message = s
		}
	}
	if message == "" {
		message = c.String()
	}
	return message, statusCode
}
