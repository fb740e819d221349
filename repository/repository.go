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

// Package repository composes source.DataSource tiers into a repository
// that selects network-vs-storage behavior per call via Operation.
package repository

import (
	"github.com/magicbell/harmony/deferred"
	"github.com/magicbell/harmony/query"
)

// Repository is the read/write/delete surface exposed to callers, with an
// Operation steering each call's tiered behavior.
type Repository[T any] interface {
	Get(q query.Query, op Operation) *deferred.Deferred[T]
	GetAll(q query.Query, op Operation) *deferred.Deferred[[]T]
	Put(v *T, q query.Query, op Operation) *deferred.Deferred[T]
	PutAll(vs []T, q query.Query, op Operation) *deferred.Deferred[[]T]
	Delete(q query.Query, op Operation) *deferred.Deferred[struct{}]
	DeleteAll(q query.Query, op Operation) *deferred.Deferred[struct{}]
}
