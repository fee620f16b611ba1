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
	"fmt"
	"testing"

	"dirpx.dev/mayfail/registry"
)

func TestBind_NilRegistryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Bind(nil) should panic")
		}
	}()
	_ = Bind(nil)
}

func TestNewError_StaticDefinition(t *testing.T) {
	// Registry { boom_failed: {message: "boom", statusCode: 400} };
	// NewError yields {code, "boom", 400, empty meta}.
	b := testBinding(t)

	e := b.NewError("boom_failed")
	if e.Code != "boom_failed" || e.Message != "boom" || e.StatusCode != 400 {
		t.Fatalf("got %+v", e)
	}
	if e.Meta == nil || len(e.Meta) != 0 {
		t.Fatalf("Meta = %v, want empty non-nil map", e.Meta)
	}
	if e.Cause != nil {
		t.Fatal("Cause must be absent")
	}
}

func TestNewError_DynamicDefinition(t *testing.T) {
	b := testBinding(t)

	e := b.NewError("dyn_failed")
	if e.Message != "dyn:dyn_failed" {
		t.Fatalf("message = %q, want dyn:dyn_failed", e.Message)
	}
}

func TestNewError_DefaultStatus(t *testing.T) {
	// No statusCode anywhere resolves to 500.
	b := testBinding(t)

	e := b.NewError("bare_failed")
	if e.StatusCode != registry.DefaultStatusCode {
		t.Fatalf("status = %d, want %d", e.StatusCode, registry.DefaultStatusCode)
	}
	// Empty static message degrades to the code itself.
	if e.Message != "bare_failed" {
		t.Fatalf("message = %q, want code fallback", e.Message)
	}
}

func TestNewError_UnknownCodeDegrades(t *testing.T) {
	b := testBinding(t)

	e := b.NewError("never_registered")
	if e.Message != "never_registered" || e.StatusCode != 500 {
		t.Fatalf("got (%q, %d), want graceful fallback", e.Message, e.StatusCode)
	}
}

func TestNewError_Overrides(t *testing.T) {
	b := testBinding(t)

	e := b.NewError("boom_failed",
		WithMessageOption("custom"),
		WithStatusCodeOption(418),
		WithMetasOption(map[string]any{"a": 1, "b": 2}),
	)
	if e.Message != "custom" || e.StatusCode != 418 {
		t.Fatalf("got (%q, %d), want overrides", e.Message, e.StatusCode)
	}
	if e.Meta["a"] != 1 || e.Meta["b"] != 2 {
		t.Fatalf("meta = %v", e.Meta)
	}
}

func TestNewError_DynamicSeesContext(t *testing.T) {
	reg := registry.MustNew(registry.WithDynamic("ctx_failed", func(a registry.Args) string {
		return fmt.Sprintf("cause=%v id=%v status=%d", a.Cause, a.Meta["id"], a.StatusCode)
	}, 502))
	b := Bind(reg)

	root := errors.New("root")
	e := b.NewError("ctx_failed", WithCauseOption(root), WithMetaOption("id", 9))
	want := "cause=root id=9 status=502"
	if e.Message != want {
		t.Fatalf("message = %q, want %q", e.Message, want)
	}
}

func TestIs_Discriminates(t *testing.T) {
	b := testBinding(t)

	e := b.NewError("boom_failed")
	if !b.Is(e) {
		t.Fatal("Is(e) must be true")
	}
	if !b.Is(e, "boom_failed") {
		t.Fatal("Is(e, matching code) must be true")
	}
	if b.Is(e, "dyn_failed") {
		t.Fatal("Is(e, other code) must be false")
	}
	if !b.Is(e, "dyn_failed", "boom_failed") {
		t.Fatal("Is(e, any-of) must be true when one matches")
	}
	if b.Is(errors.New("plain")) {
		t.Fatal("Is(plain error) must be false")
	}
	if b.Is(nil) {
		t.Fatal("Is(nil) must be false")
	}
}

func TestIs_SeesThroughWrapping(t *testing.T) {
	b := testBinding(t)

	e := b.NewError("boom_failed")
	wrapped := fmt.Errorf("outer: %w", e)
	if !b.Is(wrapped, "boom_failed") {
		t.Fatal("Is must unwrap chains")
	}
}

func TestAs_Extracts(t *testing.T) {
	b := testBinding(t)

	e := b.NewError("boom_failed")
	got, ok := As(fmt.Errorf("outer: %w", e))
	if !ok || got != e {
		t.Fatalf("As = (%v, %v), want original error", got, ok)
	}
	if _, ok := As(errors.New("plain")); ok {
		t.Fatal("As(plain) must be false")
	}
}

func TestBinding_RegistryAccessor(t *testing.T) {
	reg := registry.MustNew()
	if Bind(reg).Registry() != reg {
		t.Fatal("Registry() must return the bound registry")
	}
}
