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

// Result encapsulates the settlement of an operation that either
// succeeds with a value of type T or fails with an error. It is the
// single type that travels through channels and settlement lists.
type Result[T any] struct {
	Value T
	Err   error
}

// OK returns a fulfilled Result carrying value.
func OK[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

// Fail returns a rejected Result carrying err.
func Fail[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// Get returns the value and error contained in the Result.
func (r Result[T]) Get() (T, error) {
	return r.Value, r.Err
}

// Failed reports whether the Result is a rejection.
func (r Result[T]) Failed() bool {
	return r.Err != nil
}
