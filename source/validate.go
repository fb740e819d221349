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

package source

import (
	"github.com/magicbell/harmony/deferred"
	"github.com/magicbell/harmony/herror"
	"github.com/magicbell/harmony/query"
)

// ObjectValidator is a stateless verdict strategy: it inspects a raw entity
// and reports whether it is acceptable. Put/PutAll/Delete/DeleteAll never
// consult it — ValidatingSource only checks what comes back from Get/GetAll.
type ObjectValidator[T any] interface {
	IsValid(entity T) bool
}

// ObjectValidatorFunc adapts a plain function to ObjectValidator.
type ObjectValidatorFunc[T any] func(entity T) bool

func (f ObjectValidatorFunc[T]) IsValid(entity T) bool { return f(entity) }

// ValidatingSource wraps an underlying DataSource and an ObjectValidator.
// Get/GetAll fail with herror.NotValid if the validator rejects any
// returned element; every other method is transparent.
type ValidatingSource[T any] struct {
	Source    DataSource[T]
	Validator ObjectValidator[T]
}

var _ DataSource[struct{}] = (*ValidatingSource[struct{}])(nil)

// Get validates the underlying Get's result.
func (v *ValidatingSource[T]) Get(q query.Query) *deferred.Deferred[T] {
	return deferred.Filter(v.Source.Get(q), func(entity T) error {
		if !v.Validator.IsValid(entity) {
			return herror.NotValid
		}

		return nil
	})
}

// GetAll validates every element of the underlying GetAll's result.
func (v *ValidatingSource[T]) GetAll(q query.Query) *deferred.Deferred[[]T] {
	return deferred.Filter(v.Source.GetAll(q), func(entities []T) error {
		for _, entity := range entities {
			if !v.Validator.IsValid(entity) {
				return herror.NotValid
			}
		}

		return nil
	})
}

// Put is transparent.
func (v *ValidatingSource[T]) Put(val *T, q query.Query) *deferred.Deferred[T] {
	return v.Source.Put(val, q)
}

// PutAll is transparent.
func (v *ValidatingSource[T]) PutAll(vals []T, q query.Query) *deferred.Deferred[[]T] {
	return v.Source.PutAll(vals, q)
}

// Delete is transparent.
func (v *ValidatingSource[T]) Delete(q query.Query) *deferred.Deferred[struct{}] {
	return v.Source.Delete(q)
}

// DeleteAll is transparent.
func (v *ValidatingSource[T]) DeleteAll(q query.Query) *deferred.Deferred[struct{}] {
	return v.Source.DeleteAll(q)
}
