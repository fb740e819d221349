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

// Resolver is a handle that can resolve a Deferred from outside the scope
// that constructed it, e.g. from within a goroutine or an external
// callback.
type Resolver[T any] struct {
	d *Deferred[T]
}

// Resolve settles the associated Deferred with a value.
func (r *Resolver[T]) Resolve(v T) {
	r.d.complete(Value(v))
}

// Reject settles the associated Deferred with an error.
func (r *Resolver[T]) Reject(err error) {
	r.d.complete(Err[T](err))
}

// Set settles the associated Deferred with an already-built Result.
func (r *Resolver[T]) Set(res Result[T]) {
	r.d.complete(res)
}

// SetFrom adopts another Deferred's eventual result: once other resolves,
// the associated Deferred resolves with the same value or error.
func (r *Resolver[T]) SetFrom(other *Deferred[T]) {
	other.register(func(res Result[T]) { r.Set(res) })
}
