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
	"github.com/magicbell/harmony/deferred"
	"github.com/magicbell/harmony/query"
	"github.com/magicbell/harmony/source"
)

// GetOnly exposes a single source.Getter as a Repository. Its write and
// delete methods ignore Operation entirely and are programming errors to
// call; they panic rather than return an error, since invoking an absent
// capability is a caller bug, not a data condition.
type GetOnly[T any] struct {
	Source source.Getter[T]
}

var _ Repository[struct{}] = (*GetOnly[struct{}])(nil)

func (g *GetOnly[T]) Get(q query.Query, _ Operation) *deferred.Deferred[T] {
	return g.Source.Get(q)
}

func (g *GetOnly[T]) GetAll(q query.Query, _ Operation) *deferred.Deferred[[]T] {
	return g.Source.GetAll(q)
}

func (g *GetOnly[T]) Put(*T, query.Query, Operation) *deferred.Deferred[T] {
	panic("repository: Put not supported by GetOnly")
}

func (g *GetOnly[T]) PutAll([]T, query.Query, Operation) *deferred.Deferred[[]T] {
	panic("repository: PutAll not supported by GetOnly")
}

func (g *GetOnly[T]) Delete(query.Query, Operation) *deferred.Deferred[struct{}] {
	panic("repository: Delete not supported by GetOnly")
}

func (g *GetOnly[T]) DeleteAll(query.Query, Operation) *deferred.Deferred[struct{}] {
	panic("repository: DeleteAll not supported by GetOnly")
}

// PutOnly exposes a single source.Putter as a Repository. Its read and
// delete methods panic; see GetOnly for the rationale.
type PutOnly[T any] struct {
	Source source.Putter[T]
}

var _ Repository[struct{}] = (*PutOnly[struct{}])(nil)

func (p *PutOnly[T]) Get(query.Query, Operation) *deferred.Deferred[T] {
	panic("repository: Get not supported by PutOnly")
}

func (p *PutOnly[T]) GetAll(query.Query, Operation) *deferred.Deferred[[]T] {
	panic("repository: GetAll not supported by PutOnly")
}

func (p *PutOnly[T]) Put(v *T, q query.Query, _ Operation) *deferred.Deferred[T] {
	return p.Source.Put(v, q)
}

func (p *PutOnly[T]) PutAll(vs []T, q query.Query, _ Operation) *deferred.Deferred[[]T] {
	return p.Source.PutAll(vs, q)
}

func (p *PutOnly[T]) Delete(query.Query, Operation) *deferred.Deferred[struct{}] {
	panic("repository: Delete not supported by PutOnly")
}

func (p *PutOnly[T]) DeleteAll(query.Query, Operation) *deferred.Deferred[struct{}] {
	panic("repository: DeleteAll not supported by PutOnly")
}

// DeleteOnly exposes a single source.Deleter as a Repository. Its read and
// write methods panic; see GetOnly for the rationale.
type DeleteOnly[T any] struct {
	Source source.Deleter[T]
}

var _ Repository[struct{}] = (*DeleteOnly[struct{}])(nil)

func (d *DeleteOnly[T]) Get(query.Query, Operation) *deferred.Deferred[T] {
	panic("repository: Get not supported by DeleteOnly")
}

func (d *DeleteOnly[T]) GetAll(query.Query, Operation) *deferred.Deferred[[]T] {
	panic("repository: GetAll not supported by DeleteOnly")
}

func (d *DeleteOnly[T]) Put(*T, query.Query, Operation) *deferred.Deferred[T] {
	panic("repository: Put not supported by DeleteOnly")
}

func (d *DeleteOnly[T]) PutAll([]T, query.Query, Operation) *deferred.Deferred[[]T] {
	panic("repository: PutAll not supported by DeleteOnly")
}

func (d *DeleteOnly[T]) Delete(q query.Query, _ Operation) *deferred.Deferred[struct{}] {
	return d.Source.Delete(q)
}

func (d *DeleteOnly[T]) DeleteAll(q query.Query, _ Operation) *deferred.Deferred[struct{}] {
	return d.Source.DeleteAll(q)
}

// Multi composes independently-optional Getter/Putter/Deleter handles into
// a single Repository. Each handle may be nil; invoking a capability whose
// handle is nil panics rather than returning an error, for the same reason
// GetOnly/PutOnly/DeleteOnly panic on their unsupported methods.
type Multi[T any] struct {
	Getter  source.Getter[T]
	Putter  source.Putter[T]
	Deleter source.Deleter[T]
}

var _ Repository[struct{}] = (*Multi[struct{}])(nil)

func (m *Multi[T]) Get(q query.Query, _ Operation) *deferred.Deferred[T] {
	if m.Getter == nil {
		panic("repository: Multi has no Getter configured")
	}
	return m.Getter.Get(q)
}

func (m *Multi[T]) GetAll(q query.Query, _ Operation) *deferred.Deferred[[]T] {
	if m.Getter == nil {
		panic("repository: Multi has no Getter configured")
	}
	return m.Getter.GetAll(q)
}

func (m *Multi[T]) Put(v *T, q query.Query, _ Operation) *deferred.Deferred[T] {
	if m.Putter == nil {
		panic("repository: Multi has no Putter configured")
	}
	return m.Putter.Put(v, q)
}

func (m *Multi[T]) PutAll(vs []T, q query.Query, _ Operation) *deferred.Deferred[[]T] {
	if m.Putter == nil {
		panic("repository: Multi has no Putter configured")
	}
	return m.Putter.PutAll(vs, q)
}

func (m *Multi[T]) Delete(q query.Query, _ Operation) *deferred.Deferred[struct{}] {
	if m.Deleter == nil {
		panic("repository: Multi has no Deleter configured")
	}
	return m.Deleter.Delete(q)
}

func (m *Multi[T]) DeleteAll(q query.Query, _ Operation) *deferred.Deferred[struct{}] {
	if m.Deleter == nil {
		panic("repository: Multi has no Deleter configured")
	}
	return m.Deleter.DeleteAll(q)
}
