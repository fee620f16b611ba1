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

// Args carries the context available to a dynamic message at resolution
// time. StatusCode is the already-resolved status for the error instance,
// so a dynamic message can embed it without re-deriving the precedence
// rules.
type Args struct {
	// Code is the code the error is being constructed under.
	Code code.Code

	// Cause is the underlying failure that triggered construction, if any.
	Cause error

	// Meta is the contextual key/value payload of the error instance.
	// Dynamic messages must treat it as read-only.
	Meta map[string]any

	// StatusCode is the resolved numeric status of the error instance.
	StatusCode int
}

// Message is the closed variant for a definition's message: either a
// Static string or a Dynamic function. The variant is sealed via the
// unexported resolve method so that resolution never needs ad hoc type
// inspection beyond this package.
//
// A nil Message in a Definition means "no message configured" — the code
// itself is used as the message.
type Message interface {
	// resolve computes the message for the given context. The second
	// return value reports whether a usable (non-empty) message was
	// produced; false tells the resolver to fall back to the code string.
	resolve(args Args) (string, bool)
}

// Static is a fixed message string.
type Static string

func (s Static) resolve(Args) (string, bool) {
	return string(s), s != ""
}

// Dynamic computes a message from the error's construction context.
// Returning "" signals "no message" and falls back to the code string,
// keeping the "message is always non-empty" invariant intact.
type Dynamic func(Args) string

func (d Dynamic) resolve(args Args) (string, bool) {
	if d == nil {
		return "", false
	}
	s := d(args)
	return s, s != ""
}
