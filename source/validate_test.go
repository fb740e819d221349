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

package source_test

import (
	"testing"

	"github.com/magicbell/harmony/deferred"
	"github.com/magicbell/harmony/herror"
	"github.com/magicbell/harmony/query"
	"github.com/magicbell/harmony/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type user struct {
	ID   string
	Name string
}

// memSource is a minimal in-package DataSource fake used only to exercise
// ValidatingSource; the real example backend lives in source/memsource.
type memSource struct {
	source.Unimplemented[user]
	values map[string]user
	all    []user
}

func (m *memSource) Get(q query.Query) *deferred.Deferred[user] {
	key, ok := q.(query.Key)
	if !ok {
		return deferred.Rejected[user](herror.QueryNotSupported)
	}

	u, ok := m.values[key.Key]
	if !ok {
		return deferred.Rejected[user](herror.NotFound)
	}

	return deferred.Resolved(u)
}

func (m *memSource) GetAll(query.Query) *deferred.Deferred[[]user] {
	return deferred.Resolved(m.all)
}

func (m *memSource) Put(v *user, q query.Query) *deferred.Deferred[user] {
	key, ok := q.(query.Key)
	if !ok {
		return deferred.Rejected[user](herror.QueryNotSupported)
	}

	if m.values == nil {
		m.values = map[string]user{}
	}

	m.values[key.Key] = *v

	return deferred.Resolved(*v)
}

func TestValidatingSourceGetPasses(t *testing.T) {
	t.Parallel()

	backend := &memSource{values: map[string]user{"1": {ID: "1", Name: "Ada"}}}
	vs := &source.ValidatingSource[user]{
		Source:    backend,
		Validator: source.ObjectValidatorFunc[user](func(u user) bool { return u.Name != "" }),
	}

	v, err := vs.Get(query.Key{Key: "1"}).Result()
	require.NoError(t, err)
	assert.Equal(t, "Ada", v.Name)
}

func TestValidatingSourceGetRejects(t *testing.T) {
	t.Parallel()

	backend := &memSource{values: map[string]user{"1": {ID: "1", Name: ""}}}
	vs := &source.ValidatingSource[user]{
		Source:    backend,
		Validator: source.ObjectValidatorFunc[user](func(u user) bool { return u.Name != "" }),
	}

	_, err := vs.Get(query.Key{Key: "1"}).Result()
	assert.ErrorIs(t, err, herror.NotValid)
}

func TestValidatingSourceGetAllRejectsAnyInvalid(t *testing.T) {
	t.Parallel()

	backend := &memSource{all: []user{{ID: "1", Name: "Ada"}, {ID: "2", Name: ""}}}
	vs := &source.ValidatingSource[user]{
		Source:    backend,
		Validator: source.ObjectValidatorFunc[user](func(u user) bool { return u.Name != "" }),
	}

	_, err := vs.GetAll(query.Blank{}).Result()
	assert.ErrorIs(t, err, herror.NotValid)
}

func TestValidatingSourcePutIsTransparent(t *testing.T) {
	t.Parallel()

	backend := &memSource{values: map[string]user{}}
	vs := &source.ValidatingSource[user]{
		Source:    backend,
		Validator: source.ObjectValidatorFunc[user](func(user) bool { return false }),
	}

	u := user{ID: "1", Name: "Ada"}
	v, err := vs.Put(&u, query.Key{Key: "1"}).Result()
	require.NoError(t, err)
	assert.Equal(t, "Ada", v.Name)
}
