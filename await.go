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
	"context"
	"fmt"

	"dirpx.dev/mayfail/code"
	"dirpx.dev/mayfail/future"
)

// Meta keys under which AwaitAll records the full settlement partitions
// of a failed batch.
const (
	// MetaFailed holds a []Settlement of the entries that settled with an
	// error.
	MetaFailed = "failed"

	// MetaSucceeded holds a []Settlement of the entries that fulfilled,
	// so partial-success information is never discarded.
	MetaSucceeded = "succeeded"
)

// Settlement records the outcome of one batch entry for the failure
// metadata. Exactly one of Value and Err is meaningful, depending on the
// partition the settlement landed in.
type Settlement struct {
	// Index is the entry's position in the input slice.
	Index int `json:"index"`

	// Value is the fulfilled value, for the succeeded partition.
	Value any `json:"value,omitempty"`

	// Err is the settlement error, for the failed partition.
	Err error `json:"error,omitempty"`
}

// Await joins a single caller-started future and normalizes any failure
// into a tagged *Error under code c, with the same bubbling rule as Do:
// a settled *Error passes through unchanged, any other settlement error
// becomes the cause of a new tagged error.
//
// Context expiry while waiting is an ordinary rejection (cause ctx.Err());
// the underlying work is neither cancelled nor suppressed. Await never
// panics — all failure is converted into the returned value.
func Await[T any](ctx context.Context, b *Binding, c code.Code, f *future.Future[T], opts ...Option) (T, *Error) {
	res := f.Wait(ctx)
	if res.Err != nil {
		var zero T
		if e, ok := As(res.Err); ok {
			return zero, e
		}
		return zero, b.wrap(c, res.Err, opts)
	}
	return res.Value, nil
}

// AwaitAll joins a batch of caller-started futures. All entries are
// waited for — a failing entry never short-circuits the join, so every
// settlement is observed.
//
// Partitioning rule: an entry is failed iff it settled with a non-nil
// error (tagged or not); otherwise it succeeded. If any entry failed,
// AwaitAll returns a single tagged error under c whose Meta additionally
// carries MetaFailed and MetaSucceeded with the full settlement lists
// covering all entries. Otherwise it returns the fulfilled values in
// input order.
func AwaitAll[T any](ctx context.Context, b *Binding, c code.Code, fs []*future.Future[T], opts ...Option) ([]T, *Error) {
	results := make([]future.Result[T], len(fs))
	for i, f := range fs {
		results[i] = f.Wait(ctx)
	}

	var failed, succeeded []Settlement
	for i, r := range results {
		if r.Err != nil {
			failed = append(failed, Settlement{Index: i, Err: r.Err})
		} else {
			succeeded = append(succeeded, Settlement{Index: i, Value: r.Value})
		}
	}

	if len(failed) == 0 {
		out := make([]T, len(results))
		for i, r := range results {
			out[i] = r.Value
		}
		return out, nil
	}

	all := make([]Option, 0, len(opts)+2)
	all = append(all, opts...)
	all = append(all,
		WithMetaOption(MetaFailed, failed),
		WithMetaOption(MetaSucceeded, succeeded),
	)
	return nil, b.NewError(c, all...)
}

// ThrowIfError is the single sanctioned exit from the non-throwing
// discipline: it joins f and surfaces any failure through the plain
// error channel, for top-level handlers that must hand the failure to a
// transport boundary (see httpx and grpcx).
//
// The optional codes declare which failure classes the boundary expects
// to convert. The filter never suppresses a failure — Go cannot carry a
// non-matching tagged error in the value position — but a tagged failure
// outside the filter is wrapped with an "unexpected failure code" note
// (its chain intact for errors.As) so the boundary can tell it apart. A
// fulfilled value is returned with a nil error, its type narrowed to
// exclude the failure variant.
func ThrowIfError[T any](ctx context.Context, b *Binding, f *future.Future[T], codes ...code.Code) (T, error) {
	res := f.Wait(ctx)
	if res.Err == nil {
		return res.Value, nil
	}
	var zero T
	if e, ok := As(res.Err); ok {
		if len(codes) > 0 && !b.Is(e, codes...) {
			return zero, fmt.Errorf("mayfail: unexpected failure code %q: %w", e.Code, e)
		}
		return zero, e
	}
	return zero, res.Err
}
