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
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/magicbell/harmony/deferred"
	"github.com/magicbell/harmony/query"
)

// Coalesced wraps a Repository[T] and collapses concurrent, identical Get
// and GetAll calls into a single underlying call, fanning the one result
// out to every waiter. Put, PutAll, Delete, and DeleteAll are side-effecting
// and always pass straight through uncoalesced.
//
// Because singleflight.Group.Do blocks its caller until the shared call
// completes, Get/GetAll here synchronously drain the inner Deferred before
// re-wrapping the result; a caller already inside a delivery callback
// should not call these directly from that callback.
type Coalesced[T any] struct {
	Inner Repository[T]
	group singleflight.Group
}

var _ Repository[struct{}] = (*Coalesced[struct{}])(nil)

func coalesceKey(q query.Query, op Operation) string {
	return fmt.Sprintf("%T:%+v:%d", q, q, op)
}

func (c *Coalesced[T]) Get(q query.Query, op Operation) *deferred.Deferred[T] {
	v, err, _ := c.group.Do(coalesceKey(q, op), func() (interface{}, error) {
		return c.Inner.Get(q, op).Result()
	})
	if err != nil {
		return deferred.Rejected[T](err)
	}
	return deferred.Resolved(v.(T))
}

func (c *Coalesced[T]) GetAll(q query.Query, op Operation) *deferred.Deferred[[]T] {
	v, err, _ := c.group.Do("all:"+coalesceKey(q, op), func() (interface{}, error) {
		return c.Inner.GetAll(q, op).Result()
	})
	if err != nil {
		return deferred.Rejected[[]T](err)
	}
	return deferred.Resolved(v.([]T))
}

func (c *Coalesced[T]) Put(v *T, q query.Query, op Operation) *deferred.Deferred[T] {
	return c.Inner.Put(v, q, op)
}

func (c *Coalesced[T]) PutAll(vs []T, q query.Query, op Operation) *deferred.Deferred[[]T] {
	return c.Inner.PutAll(vs, q, op)
}

func (c *Coalesced[T]) Delete(q query.Query, op Operation) *deferred.Deferred[struct{}] {
	return c.Inner.Delete(q, op)
}

func (c *Coalesced[T]) DeleteAll(q query.Query, op Operation) *deferred.Deferred[struct{}] {
	return c.Inner.DeleteAll(q, op)
}
