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

// Package grpcx turns tagged errors into gRPC status errors.
//
// This is the gRPC side of the ThrowIfError boundary contract: the
// error's resolved status code selects the gRPC code, the code and meta
// travel as a google.rpc.ErrorInfo detail, and richer typed metadata is
// attached best-effort as a google.protobuf.Struct.
package grpcx

import (
	"context"
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/mayfail"
)

// Domain is the value stamped into ErrorInfo.Domain for errors produced
// by this package.
const Domain = "mayfail.dirpx.dev"

// CodeFromHTTP maps a resolved HTTP-style status to the closest gRPC
// code, following the conventional google.rpc.Code correspondence.
// Unmapped 4xx statuses degrade to InvalidArgument, unmapped 5xx to
// Internal, anything else to Unknown.
func CodeFromHTTP(status int) gcodes.Code {
	switch status {
	case 400:
		return gcodes.InvalidArgument
	case 401:
		return gcodes.Unauthenticated
	case 403:
		return gcodes.PermissionDenied
	case 404:
		return gcodes.NotFound
	case 409:
		return gcodes.Aborted
	case 412:
		return gcodes.FailedPrecondition
	case 416:
		return gcodes.OutOfRange
	case 429:
		return gcodes.ResourceExhausted
	case 499:
		return gcodes.Canceled
	case 500:
		return gcodes.Internal
	case 501:
		return gcodes.Unimplemented
	case 503:
		return gcodes.Unavailable
	case 504:
		return gcodes.DeadlineExceeded
	}
	switch {
	case status >= 400 && status < 500:
		return gcodes.InvalidArgument
	case status >= 500 && status < 600:
		return gcodes.Internal
	}
	return gcodes.Unknown
}

// StatusFromError builds a gRPC status for a tagged error.
//
// The status message is the error's resolved message and its code is
// derived from the resolved HTTP-style status. Two details are attached:
//
//   - google.rpc.ErrorInfo, always: Reason carries the error code,
//     Metadata carries the meta stringified;
//   - google.protobuf.Struct with the typed meta, only when the meta is
//     representable as a Struct (complex payloads such as batch
//     settlement lists are skipped rather than failing the boundary).
func StatusFromError(e *mayfail.Error) *gstatus.Status {
	if e == nil {
		return gstatus.New(gcodes.OK, "")
	}

	base := gstatus.New(CodeFromHTTP(e.StatusCode), e.Message)

	info := &errdetails.ErrorInfo{
		Reason:   string(e.Code),
		Domain:   Domain,
		Metadata: metaStrings(e.Meta),
	}

	if st, err := structpb.NewStruct(e.Meta); err == nil && len(e.Meta) > 0 {
		if with, err := base.WithDetails(info, st); err == nil {
			return with
		}
	}
	if with, err := base.WithDetails(info); err == nil {
		return with
	}
	return base
}

// ErrorFromStatus is the client-side inverse used at boundaries that
// receive gRPC failures: it extracts the ErrorInfo detail, if present.
func ErrorFromStatus(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}

// UnaryServerInterceptor converts tagged errors returned by handlers
// into gRPC status errors via StatusFromError. Errors that are not (and
// do not wrap) a tagged *Error pass through untouched.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		e, ok := mayfail.As(err)
		if !ok {
			return nil, err
		}
		return nil, StatusFromError(e).Err()
	}
}

// metaStrings flattens meta into the string map ErrorInfo requires.
func metaStrings(meta map[string]any) map[string]string {
	if len(meta) == 0 {
		return nil
	}
	out := make(map[string]string, len(meta))
	for k, v := range meta {
		out[k] = fmt.Sprint(v)
	}
	return out
}
