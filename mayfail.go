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

// Package mayfail implements a typed, non-throwing error-handling
// discipline: operations that can fail return a tagged *Error value next
// to their result instead of smuggling failures through panics or
// untyped error chains.
//
// Applications define their failure classes once in a registry
// (dirpx.dev/mayfail/registry), bind it with Bind, and use the bound
// wrappers (Do, Await, AwaitAll) at every fallible call site. The single
// sanctioned exit back into the plain error channel is ThrowIfError,
// typically right before a transport boundary (see httpx and grpcx).
package mayfail

import (
	"fmt"

	"dirpx.dev/mayfail/apis"
	"dirpx.dev/mayfail/code"
)

// Error is what the transport adapters consume through the apis
// contracts.
var (
	_ apis.CodedError    = (*Error)(nil)
	_ apis.StatusedError = (*Error)(nil)
	_ apis.MetaError     = (*Error)(nil)
)

// Error is the tagged failure value.
//
// It carries:
//   - Code: the failure class, always a key of the bound registry;
//   - Message: the resolved human-readable message (never empty);
//   - StatusCode: the resolved numeric status (never zero, 500 default);
//   - Meta: arbitrary contextual key/value payload (never nil once
//     constructed through a Binding);
//   - Cause: the underlying failure that triggered creation, if any.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared across goroutines and modified in a functional
// style.
type Error struct {
	// Code classifies the failure, e.g. "user_fetch_failed". It is
	// resolved against the registry the error was constructed under.
	Code code.Code

	// Message is the human-readable explanation, already resolved: an
	// explicit override, the registry message, or the code itself.
	Message string

	// StatusCode is the resolved numeric status, suitable for an
	// HTTP-style boundary.
	StatusCode int

	// Meta is a shallow map of extra context (ids, batch settlements,
	// limits). Treated as immutable: WithMeta/WithMetas always copy.
	Meta map[string]any

	// Cause holds the wrapped underlying error, if any. Used by
	// errors.Is / errors.As and for debugging in lower layers.
	Cause error
}

// Error implements the built-in error interface with the format
//
//	<code>: <message>
//
// which keeps the value scannable by both humans and machines when it
// eventually crosses into the plain error channel.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As
// chains.
func (e *Error) Unwrap() error { return e.Cause }

// ErrorCode returns the code as a string. Implements apis.CodedError.
func (e *Error) ErrorCode() string { return string(e.Code) }

// ErrorStatusCode returns the resolved status. Implements
// apis.StatusedError.
func (e *Error) ErrorStatusCode() int { return e.StatusCode }

// ErrorMeta returns the contextual payload. Implements apis.MetaError.
// The returned map must be treated as read-only.
func (e *Error) ErrorMeta() map[string]any { return e.Meta }

// WithMessage returns a shallow copy of e with a replaced message.
// Useful when the code/status should be kept but the message rephrased
// for a different audience.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithStatusCode returns a shallow copy of e with a replaced status.
func (e *Error) WithStatusCode(status int) *Error {
	cp := *e
	cp.StatusCode = status
	return &cp
}

// WithMeta returns a shallow copy of e with one extra key/value in Meta.
//
// The map is always copied to preserve immutability, preventing
// surprising mutations across goroutines sharing an error value.
func (e *Error) WithMeta(k string, v any) *Error {
	cp := *e
	if len(cp.Meta) == 0 {
		cp.Meta = map[string]any{k: v}
		return &cp
	}
	m := make(map[string]any, len(cp.Meta)+1)
	for k0, v0 := range cp.Meta {
		m[k0] = v0
	}
	m[k] = v
	cp.Meta = m
	return &cp
}

// WithMetas returns a shallow copy of e with all provided kv merged into
// Meta, kv taking precedence on key conflicts.
func (e *Error) WithMetas(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(cp.Meta)+len(kv))
	for k0, v0 := range cp.Meta {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	cp.Meta = m
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause
// attached. If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
