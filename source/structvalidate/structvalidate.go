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

// Package structvalidate supplies a concrete source.ObjectValidator driven
// by `validate:"..."` struct tags, so ValidatingSource has a ready-to-use
// implementation beyond a hand-rolled predicate.
package structvalidate

import (
	"github.com/go-playground/validator/v10"

	"github.com/magicbell/harmony/source"
)

// Validator adapts go-playground/validator to source.ObjectValidator[T].
type Validator[T any] struct {
	validate *validator.Validate
}

var _ source.ObjectValidator[struct{}] = (*Validator[struct{}])(nil)

// New returns a Validator using the library's default tag configuration.
func New[T any]() *Validator[T] {
	return &Validator[T]{validate: validator.New()}
}

// IsValid reports whether entity satisfies every `validate:"..."` tag on its
// fields.
func (v *Validator[T]) IsValid(entity T) bool {
	return v.validate.Struct(entity) == nil
}
