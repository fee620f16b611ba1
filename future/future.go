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

package future

import "context"

// Future is the handle to a value that will settle exactly once.
//
// The work behind a Future is started by the caller (via Go) and runs on
// its own goroutine; the Future itself only coordinates joining. It never
// schedules, throttles or cancels anything.
type Future[T any] struct {
	done chan struct{}
	res  Result[T]
}

// Go starts fn on a new goroutine immediately and returns a Future for
// its settlement. fn runs exactly once regardless of how often or
// whether the Future is waited on.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		v, err := fn()
		if err != nil {
			f.res = Fail[T](err)
		} else {
			f.res = OK(v)
		}
		close(f.done)
	}()
	return f
}

// Resolved returns an already-fulfilled Future carrying value.
func Resolved[T any](value T) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), res: OK(value)}
	close(f.done)
	return f
}

// Rejected returns an already-rejected Future carrying err.
func Rejected[T any](err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), res: Fail[T](err)}
	close(f.done)
	return f
}

// Wait blocks until the Future settles or ctx expires, whichever comes
// first. Context expiry yields a rejected Result carrying ctx.Err(); the
// underlying work is not cancelled and may still settle for other
// waiters.
//
// Wait is safe to call repeatedly and from multiple goroutines; every
// call observes the same settlement.
func (f *Future[T]) Wait(ctx context.Context) Result[T] {
	select {
	case <-f.done:
		return f.res
	case <-ctx.Done():
		return Fail[T](ctx.Err())
	}
}

// Settled reports whether the Future has already settled, without
// blocking.
func (f *Future[T]) Settled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
