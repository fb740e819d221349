// Copyright 2023-2024 The Harmony Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package deferred

// Result is the tagged union carried by a Deferred: exactly one of a value
// or an error, with no shared "is this actually set" ambiguity — the two
// constructors below are the only way to build one, so a Result[T] is never
// in the tri-state "value present but nil vs. unset" shape spec.md flags as
// a bug class in the original optional-plus-flag design.
type Result[T any] struct {
	value   T
	err     error
	isError bool
}

// Value wraps a successful result.
func Value[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err wraps a failed result. Passing a nil error is a programming error.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("deferred: Err called with a nil error")
	}

	return Result[T]{err: err, isError: true}
}

// Value returns the held value, or the zero value if this Result is an
// error.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the held error, or nil if this Result is a value.
func (r Result[T]) Err() error {
	return r.err
}

// IsError reports whether this Result holds an error.
func (r Result[T]) IsError() bool {
	return r.isError
}

// V mirrors the Value()/Err() pair as a single (T, error) return, convenient
// at call sites that just want to unwrap like a normal Go function result.
func (r Result[T]) V() (T, error) {
	return r.value, r.err
}
