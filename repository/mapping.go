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
)

// Mapping adapts a Repository[T] to the Repository[U] surface via a pair of
// pure conversion functions, so callers can work in their own domain type U
// while storage continues to see T. Deletes carry no value and pass through
// unchanged.
type Mapping[T, U any] struct {
	Inner Repository[T]
	To    func(U) T
	From  func(T) U
}

var _ Repository[struct{}] = (*Mapping[struct{}, struct{}])(nil)

func (m *Mapping[T, U]) Get(q query.Query, op Operation) *deferred.Deferred[U] {
	return deferred.Map(m.Inner.Get(q, op), m.From)
}

func (m *Mapping[T, U]) GetAll(q query.Query, op Operation) *deferred.Deferred[[]U] {
	return deferred.Map(m.Inner.GetAll(q, op), func(vs []T) []U {
		out := make([]U, len(vs))
		for i, v := range vs {
			out[i] = m.From(v)
		}
		return out
	})
}

func (m *Mapping[T, U]) Put(v *U, q query.Query, op Operation) *deferred.Deferred[U] {
	var t *T
	if v != nil {
		converted := m.To(*v)
		t = &converted
	}
	return deferred.Map(m.Inner.Put(t, q, op), m.From)
}

func (m *Mapping[T, U]) PutAll(vs []U, q query.Query, op Operation) *deferred.Deferred[[]U] {
	ts := make([]T, len(vs))
	for i, v := range vs {
		ts[i] = m.To(v)
	}
	return deferred.Map(m.Inner.PutAll(ts, q, op), func(out []T) []U {
		us := make([]U, len(out))
		for i, t := range out {
			us[i] = m.From(t)
		}
		return us
	})
}

func (m *Mapping[T, U]) Delete(q query.Query, op Operation) *deferred.Deferred[struct{}] {
	return m.Inner.Delete(q, op)
}

func (m *Mapping[T, U]) DeleteAll(q query.Query, op Operation) *deferred.Deferred[struct{}] {
	return m.Inner.DeleteAll(q, op)
}
