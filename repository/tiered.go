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

package repository

import (
	"errors"

	"github.com/magicbell/harmony/deferred"
	"github.com/magicbell/harmony/herror"
	"github.com/magicbell/harmony/query"
	"github.com/magicbell/harmony/source"
)

// NetworkStorageRepository is the tiered engine: it composes an
// authoritative, typically-slower network DataSource with a fast,
// possibly-stale storage DataSource, picking behavior per call from
// Operation.
type NetworkStorageRepository[T any] struct {
	Network source.DataSource[T]
	Storage source.DataSource[T]
}

var _ Repository[struct{}] = (*NetworkStorageRepository[struct{}])(nil)

func resolveOp(op Operation, def Operation) Operation {
	if op == Default {
		return def
	}
	return op
}

func isMissOrInvalid(err error) bool {
	return errors.Is(err, herror.NotFound) || errors.Is(err, herror.NotValid)
}

// Get implements the read table: Network and Storage call their namesake
// tier directly; NetworkSync writes the network value through to storage
// before returning it; StorageSync reads storage first and falls back to
// NetworkSync only on a miss or a validation failure, propagating any other
// storage error untouched.
func (r *NetworkStorageRepository[T]) Get(q query.Query, op Operation) *deferred.Deferred[T] {
	switch resolveOp(op, StorageSync) {
	case Network:
		return r.Network.Get(q)
	case Storage:
		return r.Storage.Get(q)
	case NetworkSync:
		return r.networkSyncGet(q)
	case StorageSync:
		return r.storageSyncGet(q)
	default:
		return deferred.Rejected[T](herror.Unimplemented)
	}
}

func (r *NetworkStorageRepository[T]) networkSyncGet(q query.Query) *deferred.Deferred[T] {
	return deferred.FlatMap(r.Network.Get(q), func(v T) *deferred.Deferred[T] {
		return r.Storage.Put(&v, q)
	})
}

func (r *NetworkStorageRepository[T]) storageSyncGet(q query.Query) *deferred.Deferred[T] {
	return deferred.Recover(r.Storage.Get(q), func(err error) *deferred.Deferred[T] {
		if isMissOrInvalid(err) {
			return r.networkSyncGet(q)
		}
		return deferred.Rejected[T](err)
	})
}

// GetAll is the bulk-valued sibling of Get, following the same table.
func (r *NetworkStorageRepository[T]) GetAll(q query.Query, op Operation) *deferred.Deferred[[]T] {
	switch resolveOp(op, StorageSync) {
	case Network:
		return r.Network.GetAll(q)
	case Storage:
		return r.Storage.GetAll(q)
	case NetworkSync:
		return r.networkSyncGetAll(q)
	case StorageSync:
		return r.storageSyncGetAll(q)
	default:
		return deferred.Rejected[[]T](herror.Unimplemented)
	}
}

func (r *NetworkStorageRepository[T]) networkSyncGetAll(q query.Query) *deferred.Deferred[[]T] {
	return deferred.FlatMap(r.Network.GetAll(q), func(vs []T) *deferred.Deferred[[]T] {
		return r.Storage.PutAll(vs, q)
	})
}

func (r *NetworkStorageRepository[T]) storageSyncGetAll(q query.Query) *deferred.Deferred[[]T] {
	return deferred.Recover(r.Storage.GetAll(q), func(err error) *deferred.Deferred[[]T] {
		if isMissOrInvalid(err) {
			return r.networkSyncGetAll(q)
		}
		return deferred.Rejected[[]T](err)
	})
}

// Put implements the write table: NetworkSync writes to network first and
// write-throughs the server-confirmed value to storage; StorageSync writes
// to storage first, treating it as authoritative, and write-throughs the
// stored value to network. Either ordering aborts on the first step's
// failure without attempting the second.
func (r *NetworkStorageRepository[T]) Put(v *T, q query.Query, op Operation) *deferred.Deferred[T] {
	switch resolveOp(op, NetworkSync) {
	case Network:
		return r.Network.Put(v, q)
	case Storage:
		return r.Storage.Put(v, q)
	case NetworkSync:
		return r.networkSyncPut(v, q)
	case StorageSync:
		return r.storageSyncPut(v, q)
	default:
		return deferred.Rejected[T](herror.Unimplemented)
	}
}

func (r *NetworkStorageRepository[T]) networkSyncPut(v *T, q query.Query) *deferred.Deferred[T] {
	return deferred.FlatMap(r.Network.Put(v, q), func(confirmed T) *deferred.Deferred[T] {
		return r.Storage.Put(&confirmed, q)
	})
}

func (r *NetworkStorageRepository[T]) storageSyncPut(v *T, q query.Query) *deferred.Deferred[T] {
	return deferred.FlatMap(r.Storage.Put(v, q), func(stored T) *deferred.Deferred[T] {
		return deferred.Map(r.Network.Put(&stored, q), func(T) T { return stored })
	})
}

// PutAll is the bulk-valued sibling of Put, following the same table.
func (r *NetworkStorageRepository[T]) PutAll(vs []T, q query.Query, op Operation) *deferred.Deferred[[]T] {
	switch resolveOp(op, NetworkSync) {
	case Network:
		return r.Network.PutAll(vs, q)
	case Storage:
		return r.Storage.PutAll(vs, q)
	case NetworkSync:
		return deferred.FlatMap(r.Network.PutAll(vs, q), func(confirmed []T) *deferred.Deferred[[]T] {
			return r.Storage.PutAll(confirmed, q)
		})
	case StorageSync:
		return deferred.FlatMap(r.Storage.PutAll(vs, q), func(stored []T) *deferred.Deferred[[]T] {
			return deferred.Map(r.Network.PutAll(stored, q), func([]T) []T { return stored })
		})
	default:
		return deferred.Rejected[[]T](herror.Unimplemented)
	}
}

// Delete implements the delete table: NetworkSync deletes from network
// then storage; StorageSync deletes from storage then network. Either
// ordering aborts on the first step's failure.
func (r *NetworkStorageRepository[T]) Delete(q query.Query, op Operation) *deferred.Deferred[struct{}] {
	switch resolveOp(op, NetworkSync) {
	case Network:
		return r.Network.Delete(q)
	case Storage:
		return r.Storage.Delete(q)
	case NetworkSync:
		return deferred.FlatMap(r.Network.Delete(q), func(struct{}) *deferred.Deferred[struct{}] {
			return r.Storage.Delete(q)
		})
	case StorageSync:
		return deferred.FlatMap(r.Storage.Delete(q), func(struct{}) *deferred.Deferred[struct{}] {
			return r.Network.Delete(q)
		})
	default:
		return deferred.Rejected[struct{}](herror.Unimplemented)
	}
}

// DeleteAll is the bulk-valued sibling of Delete, following the same table.
func (r *NetworkStorageRepository[T]) DeleteAll(q query.Query, op Operation) *deferred.Deferred[struct{}] {
	switch resolveOp(op, NetworkSync) {
	case Network:
		return r.Network.DeleteAll(q)
	case Storage:
		return r.Storage.DeleteAll(q)
	case NetworkSync:
		return deferred.FlatMap(r.Network.DeleteAll(q), func(struct{}) *deferred.Deferred[struct{}] {
			return r.Storage.DeleteAll(q)
		})
	case StorageSync:
		return deferred.FlatMap(r.Storage.DeleteAll(q), func(struct{}) *deferred.Deferred[struct{}] {
			return r.Network.DeleteAll(q)
		})
	default:
		return deferred.Rejected[struct{}](herror.Unimplemented)
	}
}
