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

package mayfail

// Option is a functional option for constructing an Error through a
// Binding. It always takes an *Error and returns a (possibly new)
// *Error.
//
// Message and status set by options act as per-instance overrides: they
// win over the registry definition during resolution.
type Option func(*Error) *Error

// WithMessageOption overrides the resolved message for the error being
// constructed.
func WithMessageOption(msg string) Option {
	return func(e *Error) *Error {
		return e.WithMessage(msg)
	}
}

// WithStatusCodeOption overrides the resolved status for the error being
// constructed.
func WithStatusCodeOption(status int) Option {
	return func(e *Error) *Error {
		return e.WithStatusCode(status)
	}
}

// WithCauseOption attaches a cause on construction. The cause is visible
// to dynamic registry messages.
func WithCauseOption(err error) Option {
	return func(e *Error) *Error {
		return e.WithCause(err)
	}
}

// WithMetaOption adds a single meta key/value on construction.
func WithMetaOption(k string, v any) Option {
	return func(e *Error) *Error {
		return e.WithMeta(k, v)
	}
}

// WithMetasOption merges multiple meta key/values on construction.
func WithMetasOption(kv map[string]any) Option {
	return func(e *Error) *Error {
		return e.WithMetas(kv)
	}
}
