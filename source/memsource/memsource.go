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

// Package memsource provides an in-memory, map-backed DataSource used as
// the storage tier in examples and tests. It is one of the two concrete
// backends spec.md's expansion calls for so the tiered engine has something
// real to drive end to end.
package memsource

import (
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/magicbell/harmony/deferred"
	"github.com/magicbell/harmony/herror"
	"github.com/magicbell/harmony/query"
)

// Source is a thread-safe, map-backed DataSource keyed by query.Key. It
// rejects nil Put values with herror.IllegalArgument and any Query other
// than query.Key/query.Blank with herror.QueryNotSupported.
type Source[T any] struct {
	mu     sync.Mutex
	values map[string]T
}

// New returns an empty Source.
func New[T any]() *Source[T] {
	return &Source[T]{values: make(map[string]T)}
}

func keyOf(q query.Query) (string, error) {
	switch k := q.(type) {
	case query.Key:
		return k.Key, nil
	case query.Blank:
		return "", nil
	default:
		return "", herror.QueryNotSupported
	}
}

// Get returns the stored value for q, or herror.NotFound if absent.
func (s *Source[T]) Get(q query.Query) *deferred.Deferred[T] {
	key, err := keyOf(q)
	if err != nil {
		return deferred.Rejected[T](err)
	}

	s.mu.Lock()
	v, ok := s.values[key]
	s.mu.Unlock()

	if !ok {
		return deferred.Rejected[T](herror.NotFound)
	}

	return deferred.Resolved(v)
}

// GetAll returns every stored value; q is ignored.
func (s *Source[T]) GetAll(query.Query) *deferred.Deferred[[]T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]T, 0, len(s.values))
	for _, v := range s.values {
		all = append(all, v)
	}

	return deferred.Resolved(all)
}

// Put stores v under q and returns the stored form unchanged. A nil v is
// rejected with herror.IllegalArgument.
func (s *Source[T]) Put(v *T, q query.Query) *deferred.Deferred[T] {
	if v == nil {
		return deferred.Rejected[T](herror.IllegalArgument)
	}

	key, err := keyOf(q)
	if err != nil {
		return deferred.Rejected[T](err)
	}

	s.mu.Lock()
	s.values[key] = *v
	s.mu.Unlock()

	return deferred.Resolved(*v)
}

// PutAll stores each of vs under q (all sharing the same key, so this is
// primarily useful with query.Blank sources keyed externally by caller
// convention), aggregating every per-item failure with go-multierror
// instead of reporting only the first.
func (s *Source[T]) PutAll(vs []T, q query.Query) *deferred.Deferred[[]T] {
	stored := make([]T, 0, len(vs))

	var agg *multierror.Error

	for i := range vs {
		v, err := s.Put(&vs[i], q).Result()
		if err != nil {
			agg = multierror.Append(agg, err)

			continue
		}

		stored = append(stored, v)
	}

	if agg != nil {
		return deferred.Rejected[[]T](herror.Other(agg.ErrorOrNil()))
	}

	return deferred.Resolved(stored)
}

// Delete removes the value stored under q. Deleting an absent entity is not
// an error.
func (s *Source[T]) Delete(q query.Query) *deferred.Deferred[struct{}] {
	key, err := keyOf(q)
	if err != nil {
		return deferred.Rejected[struct{}](err)
	}

	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()

	return deferred.Resolved(struct{}{})
}

// DeleteAll clears the entire Source; q is ignored.
func (s *Source[T]) DeleteAll(query.Query) *deferred.Deferred[struct{}] {
	s.mu.Lock()
	s.values = make(map[string]T)
	s.mu.Unlock()

	return deferred.Resolved(struct{}{})
}
