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

// Map transforms a successful value with f, propagating any error
// unchanged. It is a free function, not a method, because Go does not
// support additional type parameters on methods.
func Map[T, U any](d *Deferred[T], f func(T) U) *Deferred[U] {
	r, child := New[U]()
	child.parent = d

	d.register(func(res Result[T]) {
		if res.IsError() {
			r.Reject(res.Err())

			return
		}

		r.Resolve(f(res.Value()))
	})

	return child
}

// MapErr transforms a failed result's error payload with f, propagating any
// value unchanged.
func MapErr[T any](d *Deferred[T], f func(error) error) *Deferred[T] {
	r, child := New[T]()
	child.parent = d

	d.register(func(res Result[T]) {
		if res.IsError() {
			r.Reject(f(res.Err()))

			return
		}

		r.Resolve(res.Value())
	})

	return child
}

// FlatMap transforms a successful value into a new Deferred and adopts its
// eventual result, propagating any original error unchanged.
func FlatMap[T, U any](d *Deferred[T], f func(T) *Deferred[U]) *Deferred[U] {
	r, child := New[U]()
	child.parent = d

	d.register(func(res Result[T]) {
		if res.IsError() {
			r.Reject(res.Err())

			return
		}

		r.SetFrom(f(res.Value()))
	})

	return child
}

// Recover substitutes a failed result with the Deferred produced by f,
// propagating any original value unchanged.
func Recover[T any](d *Deferred[T], f func(error) *Deferred[T]) *Deferred[T] {
	r, child := New[T]()
	child.parent = d

	d.register(func(res Result[T]) {
		if !res.IsError() {
			r.Resolve(res.Value())

			return
		}

		r.SetFrom(f(res.Err()))
	})

	return child
}

// AndThen observes a successful value with onValue or a failure with
// onError, then passes the original result through unchanged. Either
// callback may be nil.
func AndThen[T any](d *Deferred[T], onValue func(T), onError func(error)) *Deferred[T] {
	r, child := New[T]()
	child.parent = d

	d.register(func(res Result[T]) {
		if res.IsError() {
			if onError != nil {
				onError(res.Err())
			}
		} else if onValue != nil {
			onValue(res.Value())
		}

		r.Set(res)
	})

	return child
}

// OnCompletion observes every result, value or error, with fn, then passes
// it through unchanged.
func OnCompletion[T any](d *Deferred[T], fn func(Result[T])) *Deferred[T] {
	r, child := New[T]()
	child.parent = d

	d.register(func(res Result[T]) {
		fn(res)
		r.Set(res)
	})

	return child
}

// Filter rejects a successful value with the error predicate returns, if
// any, otherwise passes it through unchanged. Any original error propagates
// unchanged.
func Filter[T any](d *Deferred[T], predicate func(T) error) *Deferred[T] {
	r, child := New[T]()
	child.parent = d

	d.register(func(res Result[T]) {
		if res.IsError() {
			r.Reject(res.Err())

			return
		}

		if err := predicate(res.Value()); err != nil {
			r.Reject(err)

			return
		}

		r.Resolve(res.Value())
	})

	return child
}
