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

package grpcx

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/mayfail"
	"dirpx.dev/mayfail/registry"
)

func testBinding(t *testing.T) *mayfail.Binding {
	t.Helper()
	reg, err := registry.New(
		registry.WithStatic("user_fetch_failed", "could not load user", 404),
		registry.WithStatic("storage_down", "storage is down", 503),
	)
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return mayfail.Bind(reg)
}

func TestCodeFromHTTP(t *testing.T) {
	tests := []struct {
		status int
		want   gcodes.Code
	}{
		{400, gcodes.InvalidArgument},
		{401, gcodes.Unauthenticated},
		{403, gcodes.PermissionDenied},
		{404, gcodes.NotFound},
		{409, gcodes.Aborted},
		{429, gcodes.ResourceExhausted},
		{500, gcodes.Internal},
		{503, gcodes.Unavailable},
		{504, gcodes.DeadlineExceeded},
		{422, gcodes.InvalidArgument}, // unmapped 4xx
		{599, gcodes.Internal},        // unmapped 5xx
		{302, gcodes.Unknown},         // not an error class we map
	}
	for _, tt := range tests {
		if got := CodeFromHTTP(tt.status); got != tt.want {
			t.Fatalf("CodeFromHTTP(%d) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestStatusFromError(t *testing.T) {
	b := testBinding(t)
	e := b.NewError("user_fetch_failed", mayfail.WithMetaOption("user_id", "u-1"))

	st := StatusFromError(e)
	if st.Code() != gcodes.NotFound {
		t.Fatalf("code = %v, want NotFound", st.Code())
	}
	if st.Message() != "could not load user" {
		t.Fatalf("message = %q", st.Message())
	}

	info, ok := ErrorFromStatus(st.Err())
	if !ok {
		t.Fatal("ErrorInfo detail missing")
	}
	if info.GetReason() != "user_fetch_failed" {
		t.Fatalf("reason = %q", info.GetReason())
	}
	if info.GetDomain() != Domain {
		t.Fatalf("domain = %q", info.GetDomain())
	}
	if info.GetMetadata()["user_id"] != "u-1" {
		t.Fatalf("metadata = %v", info.GetMetadata())
	}
}

func TestStatusFromError_Nil(t *testing.T) {
	if st := StatusFromError(nil); st.Code() != gcodes.OK {
		t.Fatalf("code = %v, want OK", st.Code())
	}
}

func TestErrorFromStatus_NonStatusError(t *testing.T) {
	if _, ok := ErrorFromStatus(errors.New("plain")); ok {
		t.Fatal("plain error must not yield ErrorInfo")
	}
}

func TestUnaryServerInterceptor_ConvertsTaggedError(t *testing.T) {
	b := testBinding(t)
	intercept := UnaryServerInterceptor()

	handler := func(ctx context.Context, req any) (any, error) {
		return nil, b.NewError("storage_down")
	}

	_, err := intercept(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)
	if err == nil {
		t.Fatal("expected error")
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		t.Fatal("expected a gRPC status error")
	}
	if st.Code() != gcodes.Unavailable {
		t.Fatalf("code = %v, want Unavailable", st.Code())
	}
	if info, ok := ErrorFromStatus(err); !ok || info.GetReason() != "storage_down" {
		t.Fatalf("detail = %v, %v", info, ok)
	}
}

func TestUnaryServerInterceptor_PassesPlainErrors(t *testing.T) {
	intercept := UnaryServerInterceptor()

	plain := errors.New("not ours")
	handler := func(ctx context.Context, req any) (any, error) {
		return nil, plain
	}

	_, err := intercept(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)
	if err != plain {
		t.Fatalf("err = %v, want pass-through", err)
	}
}

func TestUnaryServerInterceptor_PassesSuccess(t *testing.T) {
	intercept := UnaryServerInterceptor()

	handler := func(ctx context.Context, req any) (any, error) {
		return "resp", nil
	}

	resp, err := intercept(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)
	if err != nil || resp != "resp" {
		t.Fatalf("got (%v, %v)", resp, err)
	}
}
