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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is the canonical, validated identifier of a failure class.
//
// Codes are the keys under which a registry stores message/status
// definitions, so the same constraints apply to registry keys and to the
// codes carried by error values: lowercase, underscore-separated,
// 3..64 characters.
//
// Empty codes ("") are NOT allowed on error values. Every tagged error
// MUST carry a non-empty code.
type Code string

// MinLength and MaxLength bound the accepted length of a canonical code.
const (
	// MinLength is the minimum length for a valid code. Requiring at
	// least 3 characters keeps ambiguous identifiers like "a" or "x1"
	// out of registries.
	MinLength = 3

	// MaxLength is the maximum length for a valid code. 64 characters is
	// plenty for descriptive codes like "user_fetch_failed" while still
	// rejecting accidental unbounded strings.
	MaxLength = 64
)

// codeFmt is the canonical pattern a code must match:
//
//	^ [a-z] [a-z0-9_]{2,63} $
//
// The first character must be a lowercase ASCII letter; the rest may be
// lowercase letters, digits or underscore. The {2,63} quantifier is tied
// to MinLength/MaxLength above — adjust both together.
const codeFmt = `^[a-z][a-z0-9_]{2,63}$`

// codeRe is precompiled so that bind-time validation of whole registries
// does not pay regexp compilation per key.
var codeRe = regexp.MustCompile(codeFmt)

// ErrCodeInvalid is returned when a value cannot be parsed or validated
// as a mayfail code. It is a sentinel so callers and tests can detect
// "bad code format" apart from other failures.
var ErrCodeInvalid = errors.New("mayfail: invalid code")

var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero-value code. It is never a valid code for an error
// value or a registry key; it exists so that failed parses have an
// unambiguous result to return.
var Empty Code = ""

// Parse normalizes a user-provided string and validates it, returning a
// canonical Code on success.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// MustParse is the panic-on-error variant of Parse, intended for
// package-level const/var declarations of well-known codes.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize brings an arbitrary string closer to canonical form using
// only obvious, non-lossy transformations: trim surrounding spaces,
// lowercase, and replace '-' with '_'. The result is not guaranteed to
// be valid — call Parse or Validate afterwards.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate reports whether c is in canonical form. The empty code is
// invalid.
func Validate(c Code) error {
	return validate(string(c))
}

// String returns the canonical string representation of the code.
func (c Code) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler. Invalid codes refuse to
// marshal rather than leak a non-canonical value into a payload.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input is
// normalized and validated before assignment.
func (c *Code) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func validate(s string) error {
	if !codeRe.MatchString(s) {
		return ErrCodeInvalid
	}
	return nil
}
