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
	"go.uber.org/atomic"

	"github.com/magicbell/harmony/deferred"
	"github.com/magicbell/harmony/query"
)

// Counters tallies how often each Operation was requested through a
// WithCounters repository. All fields are safe for concurrent use.
type Counters struct {
	Network     atomic.Int64
	Storage     atomic.Int64
	NetworkSync atomic.Int64
	StorageSync atomic.Int64
}

func (c *Counters) record(op Operation) {
	switch op {
	case Network:
		c.Network.Inc()
	case Storage:
		c.Storage.Inc()
	case NetworkSync:
		c.NetworkSync.Inc()
	case StorageSync:
		c.StorageSync.Inc()
	}
}

// WithCounters wraps a Repository[T], recording which Operation each call
// resolved to before delegating. Default is resolved the same way the
// tiered engine resolves it (reads to StorageSync, writes/deletes to
// NetworkSync) so counts reflect the effective tier even when callers rely
// on the default.
type WithCounters[T any] struct {
	Inner    Repository[T]
	Counters *Counters
}

var _ Repository[struct{}] = (*WithCounters[struct{}])(nil)

func (w *WithCounters[T]) Get(q query.Query, op Operation) *deferred.Deferred[T] {
	w.Counters.record(resolveOp(op, StorageSync))
	return w.Inner.Get(q, op)
}

func (w *WithCounters[T]) GetAll(q query.Query, op Operation) *deferred.Deferred[[]T] {
	w.Counters.record(resolveOp(op, StorageSync))
	return w.Inner.GetAll(q, op)
}

func (w *WithCounters[T]) Put(v *T, q query.Query, op Operation) *deferred.Deferred[T] {
	w.Counters.record(resolveOp(op, NetworkSync))
	return w.Inner.Put(v, q, op)
}

func (w *WithCounters[T]) PutAll(vs []T, q query.Query, op Operation) *deferred.Deferred[[]T] {
	w.Counters.record(resolveOp(op, NetworkSync))
	return w.Inner.PutAll(vs, q, op)
}

func (w *WithCounters[T]) Delete(q query.Query, op Operation) *deferred.Deferred[struct{}] {
	w.Counters.record(resolveOp(op, NetworkSync))
	return w.Inner.Delete(q, op)
}

func (w *WithCounters[T]) DeleteAll(q query.Query, op Operation) *deferred.Deferred[struct{}] {
	w.Counters.record(resolveOp(op, NetworkSync))
	return w.Inner.DeleteAll(q, op)
}
