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
	"fmt"

	"dirpx.dev/mayfail/code"
)

// Do runs fn and normalizes any failure into a tagged *Error under code
// c. A nil *Error result means success.
//
// Failure handling:
//
//   - fn returns a plain error: a new tagged error is built with c and
//     the error as cause.
//   - fn returns a tagged *Error: it bubbles through unchanged — the
//     caller sees the original failure's code/message/status, not c.
//   - fn panics: the panic is recovered and becomes the cause of a new
//     tagged error under c. A panicked *Error is treated like any other
//     panic value and wrapped, not bubbled: only a returned failure
//     propagates transparently.
//
// Do itself never panics and has no side effects beyond fn's own.
func Do[T any](b *Binding, c code.Code, fn func() (T, error), opts ...Option) (val T, ferr *Error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			val = zero
			ferr = b.wrap(c, panicCause(r), opts)
		}
	}()

	v, err := fn()
	if err != nil {
		var zero T
		if e, ok := As(err); ok {
			return zero, e
		}
		return zero, b.wrap(c, err, opts)
	}
	return v, nil
}

// panicCause turns a recovered panic value into an error suitable as a
// cause. Panic values that already are errors are kept as-is.
func panicCause(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
