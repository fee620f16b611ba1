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

import (
	"errors"

	"dirpx.dev/mayfail/code"
	"dirpx.dev/mayfail/registry"
)

// Binding is the registry-bound facade. It closes over one immutable
// registry so that call sites never pass the registry explicitly again.
//
// A Binding is stateless beyond the registry reference and therefore
// safe for unbounded concurrent use. The generic wrappers (Do, Await,
// AwaitAll, ThrowIfError) are package-level functions taking the Binding
// first, because Go methods cannot carry their own type parameters.
type Binding struct {
	reg *registry.Registry
}

// Bind creates the facade for the given registry. Binding a nil registry
// is a programming error and panics immediately rather than at the first
// failure.
func Bind(reg *registry.Registry) *Binding {
	if reg == nil {
		panic("mayfail: Bind called with nil registry")
	}
	return &Binding{reg: reg}
}

// Registry returns the bound registry.
func (b *Binding) Registry() *registry.Registry { return b.reg }

// NewError constructs a tagged error under code c.
//
// Options are applied first; any message/status they set act as explicit
// overrides for resolution. Message and status are then resolved through
// the bound registry, and Meta defaults to an empty map. NewError never
// fails: unknown codes degrade per registry.Resolve.
func (b *Binding) NewError(c code.Code, opts ...Option) *Error {
	e := &Error{Code: c}
	for _, opt := range opts {
		e = opt(e)
	}

	msg, status := b.reg.Resolve(c, registry.Request{
		Message:    e.Message,
		StatusCode: e.StatusCode,
		Cause:      e.Cause,
		Meta:       e.Meta,
	})

	cp := *e
	cp.Message = msg
	cp.StatusCode = status
	if cp.Meta == nil {
		cp.Meta = map[string]any{}
	}
	return &cp
}

// Is reports whether err is (or wraps) a tagged *Error and, when codes
// are given, whether its code is among them. It is the discriminator
// callers use before treating a wrapper result as a success value.
func (b *Binding) Is(err error, codes ...code.Code) bool {
	e, ok := As(err)
	if !ok {
		return false
	}
	if len(codes) == 0 {
		return true
	}
	for _, c := range codes {
		if e.Code == c {
			return true
		}
	}
	return false
}

// As extracts the first tagged *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// wrap builds a new tagged error under c with cause attached, applying
// the caller's options first. Used by the wrappers; the fresh slice
// keeps the caller's opts untouched.
func (b *Binding) wrap(c code.Code, cause error, opts []Option) *Error {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithCauseOption(cause))
	return b.NewError(c, all...)
}
