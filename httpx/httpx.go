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

// Package httpx turns tagged errors into HTTP error responses.
//
// This is the HTTP side of the ThrowIfError boundary contract: a tagged
// error carries everything an HTTP handler needs (message + status), so
// the writer here is deliberately thin.
package httpx

import (
	"encoding/json"
	"net/http"

	"dirpx.dev/mayfail"
	"dirpx.dev/mayfail/adapter"
)

// Writer knows how to serialize a tagged error as an HTTP response.
// The zero value is ready to use.
type Writer struct{}

// Write serializes e as a JSON error body and writes it with the error's
// resolved status code.
//
// The body is the apis.View shape:
//
//	{"code": "...", "message": "...", "status_code": 503, "meta": {...}}
//
// Whatever is present in the error is exposed as-is; redaction policies
// belong to higher-level handlers.
func (w Writer) Write(rw http.ResponseWriter, e *mayfail.Error) {
	if e == nil {
		return
	}

	view := adapter.ToView(e)

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(view.StatusCode)

	b, err := json.Marshal(view)
	if err != nil {
		// Unserializable meta values must not turn a well-formed error
		// into an empty body; degrade to the minimal view.
		b, _ = json.Marshal(map[string]any{
			"code":        view.Code,
			"message":     view.Message,
			"status_code": view.StatusCode,
		})
	}
	_, _ = rw.Write(b)
}

// WriteError is a convenience for boundaries that hold a plain error
// (e.g. the return of ThrowIfError): tagged errors anywhere in the chain
// are written with their own code/message/status, everything else is
// written as an opaque 500.
func (w Writer) WriteError(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	if e, ok := mayfail.As(err); ok {
		w.Write(rw, e)
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(http.StatusInternalServerError)
	b, _ := json.Marshal(adapter.FromError(err))
	_, _ = rw.Write(b)
}
