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

package adapter

import (
	"dirpx.dev/mayfail"
	"dirpx.dev/mayfail/apis"
)

// ToView projects a tagged error into the public, serializable View.
//
// No redaction or filtering is performed: the view exposes exactly what
// the error instance contains. Boundaries that attach sensitive metadata
// must filter before converting.
func ToView(e *mayfail.Error) apis.View {
	if e == nil {
		return apis.View{}
	}
	return apis.View{
		Code:       string(e.Code),
		Message:    e.Message,
		StatusCode: e.StatusCode,
		Meta:       e.Meta,
	}
}

// FromError projects any error into a View. Tagged errors (anywhere in
// the chain) keep their resolved code/message/status; everything else
// degrades to an opaque internal view so untyped failures never leak
// their text with a misleading status.
func FromError(err error) apis.View {
	if err == nil {
		return apis.View{}
	}
	if e, ok := mayfail.As(err); ok {
		return ToView(e)
	}
	return apis.View{
		Code:       "internal",
		Message:    "internal error",
		StatusCode: 500,
	}
}
