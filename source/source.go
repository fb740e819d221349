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

// Package source defines the DataSource contract backends implement and a
// validating decorator over it. Concrete backends live in sibling packages
// (source/memsource, source/lrusource); this package only carries the
// contract and the one core decorator described in spec.md §4.2.
package source

import (
	"github.com/magicbell/harmony/deferred"
	"github.com/magicbell/harmony/herror"
	"github.com/magicbell/harmony/query"
)

var unimplementedErr = herror.Unimplemented

// Getter is the read half of a DataSource.
type Getter[T any] interface {
	Get(q query.Query) *deferred.Deferred[T]
	GetAll(q query.Query) *deferred.Deferred[[]T]
}

// Putter is the write half of a DataSource.
type Putter[T any] interface {
	Put(v *T, q query.Query) *deferred.Deferred[T]
	PutAll(vs []T, q query.Query) *deferred.Deferred[[]T]
}

// Deleter is the removal half of a DataSource.
type Deleter[T any] interface {
	Delete(q query.Query) *deferred.Deferred[struct{}]
	DeleteAll(q query.Query) *deferred.Deferred[struct{}]
}

// DataSource is the full capability triplet a backend may implement. A
// backend may satisfy any subset of Getter/Putter/Deleter directly; callers
// that need the combined surface depend on DataSource.
type DataSource[T any] interface {
	Getter[T]
	Putter[T]
	Deleter[T]
}

// Unimplemented is an embeddable base that answers every DataSource method
// with herror.Unimplemented, letting a backend implement only the
// sub-interfaces it actually supports.
type Unimplemented[T any] struct{}

func (Unimplemented[T]) Get(query.Query) *deferred.Deferred[T] {
	return deferred.Rejected[T](unimplementedErr)
}

func (Unimplemented[T]) GetAll(query.Query) *deferred.Deferred[[]T] {
	return deferred.Rejected[[]T](unimplementedErr)
}

func (Unimplemented[T]) Put(*T, query.Query) *deferred.Deferred[T] {
	return deferred.Rejected[T](unimplementedErr)
}

func (Unimplemented[T]) PutAll([]T, query.Query) *deferred.Deferred[[]T] {
	return deferred.Rejected[[]T](unimplementedErr)
}

func (Unimplemented[T]) Delete(query.Query) *deferred.Deferred[struct{}] {
	return deferred.Rejected[struct{}](unimplementedErr)
}

func (Unimplemented[T]) DeleteAll(query.Query) *deferred.Deferred[struct{}] {
	return deferred.Rejected[struct{}](unimplementedErr)
}
