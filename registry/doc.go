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

// Package registry defines the application-supplied catalog of failure
// classes and the resolver that turns a code plus per-instance context
// into an effective message and status.
//
// A registry is pure configuration: a frozen mapping from canonical codes
// (see dirpx.dev/mayfail/code) to definitions. Each definition pairs a
// message — a fixed string or a function of the error's context — with an
// optional numeric status. Applications build exactly one registry at
// startup:
//
//	reg := registry.MustNew(
//	    registry.WithStatic("user_fetch_failed", "could not load user", 502),
//	    registry.WithDynamic("payment_declined", func(a registry.Args) string {
//	        return "payment declined for order " + fmt.Sprint(a.Meta["order_id"])
//	    }, 402),
//	)
//
// Code validity is enforced here, at build time: New rejects malformed
// and duplicate keys, so a constructed registry only ever contains
// canonical codes. Resolution, by contrast, never fails — unknown codes
// degrade to using the code itself as the message and 500 as the status.
package registry
