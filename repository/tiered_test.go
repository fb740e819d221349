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

package repository_test

import (
	"testing"

	"github.com/magicbell/harmony/deferred"
	"github.com/magicbell/harmony/herror"
	"github.com/magicbell/harmony/ids"
	"github.com/magicbell/harmony/query"
	"github.com/magicbell/harmony/repository"
	"github.com/magicbell/harmony/source"
	"github.com/magicbell/harmony/source/memsource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   string
	Name string
}

func newTiered() (*repository.NetworkStorageRepository[widget], *memsource.Source[widget], *memsource.Source[widget]) {
	network := memsource.New[widget]()
	storage := memsource.New[widget]()
	return &repository.NetworkStorageRepository[widget]{Network: network, Storage: storage}, network, storage
}

// assigningNetwork simulates a network tier of record that mints a
// server-assigned id for any incoming form that arrives without one,
// matching spec.md §8 scenario 3.
type assigningNetwork struct {
	backend *memsource.Source[widget]
}

var _ source.DataSource[widget] = (*assigningNetwork)(nil)

func newAssigningNetwork() *assigningNetwork {
	return &assigningNetwork{backend: memsource.New[widget]()}
}

func (a *assigningNetwork) Get(q query.Query) *deferred.Deferred[widget] {
	return a.backend.Get(q)
}

func (a *assigningNetwork) GetAll(q query.Query) *deferred.Deferred[[]widget] {
	return a.backend.GetAll(q)
}

func (a *assigningNetwork) Put(v *widget, q query.Query) *deferred.Deferred[widget] {
	assigned := *v
	if assigned.ID == "" {
		assigned.ID = ids.New()
	}

	return a.backend.Put(&assigned, query.Key{Key: assigned.ID})
}

func (a *assigningNetwork) PutAll(vs []widget, q query.Query) *deferred.Deferred[[]widget] {
	out := make([]widget, len(vs))
	for i, v := range vs {
		assigned, err := a.Put(&v, q).Result()
		if err != nil {
			return deferred.Rejected[[]widget](err)
		}
		out[i] = assigned
	}

	return deferred.Resolved(out)
}

func (a *assigningNetwork) Delete(q query.Query) *deferred.Deferred[struct{}] {
	return a.backend.Delete(q)
}

func (a *assigningNetwork) DeleteAll(q query.Query) *deferred.Deferred[struct{}] {
	return a.backend.DeleteAll(q)
}

func newAssigningTiered() (*repository.NetworkStorageRepository[widget], *assigningNetwork, *memsource.Source[widget]) {
	network := newAssigningNetwork()
	storage := memsource.New[widget]()
	return &repository.NetworkStorageRepository[widget]{Network: network, Storage: storage}, network, storage
}

func TestStorageSyncFallsThroughOnCacheMiss(t *testing.T) {
	t.Parallel()

	repo, network, _ := newTiered()
	seed := widget{ID: "42", Name: "Ada"}
	_, err := network.Put(&seed, query.Key{Key: "42"}).Result()
	require.NoError(t, err)

	got, err := repo.Get(query.Key{Key: "42"}, repository.StorageSync).Result()
	require.NoError(t, err)
	assert.Equal(t, seed, got)

	cached, err := repo.Storage.Get(query.Key{Key: "42"}).Result()
	require.NoError(t, err)
	assert.Equal(t, seed, cached)
}

func TestStorageSyncShortCircuitsOnCacheHit(t *testing.T) {
	t.Parallel()

	repo, network, storage := newTiered()
	cached := widget{ID: "42", Name: "Ada (cached)"}
	_, err := storage.Put(&cached, query.Key{Key: "42"}).Result()
	require.NoError(t, err)

	stale := widget{ID: "42", Name: "Ada (network)"}
	_, err = network.Put(&stale, query.Key{Key: "42"}).Result()
	require.NoError(t, err)

	got, err := repo.Get(query.Key{Key: "42"}, repository.StorageSync).Result()
	require.NoError(t, err)
	assert.Equal(t, cached, got, "a storage hit must short-circuit without consulting network")
}

func TestNetworkSyncPutWritesThroughServerValue(t *testing.T) {
	t.Parallel()

	repo, _, storage := newAssigningTiered()
	form := widget{ID: "", Name: "X"}

	got, err := repo.Put(&form, query.Blank{}, repository.NetworkSync).Result()
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID, "network must assign an id to an id-less form")

	// Storage is written under the caller's query, with the network's value.
	cached, err := storage.Get(query.Blank{}).Result()
	require.NoError(t, err)
	assert.Equal(t, got, cached, "storage must receive the network-assigned id, not the caller's blank one")
}

func TestNetworkSyncPutAbortsOnNetworkFailure(t *testing.T) {
	t.Parallel()

	network := memsource.New[widget]()
	storage := memsource.New[widget]()
	repo := &repository.NetworkStorageRepository[widget]{Network: network, Storage: storage}

	_, err := repo.Put(nil, query.Blank{}, repository.NetworkSync).Result()
	assert.ErrorIs(t, err, herror.IllegalArgument)

	_, err = storage.GetAll(query.Blank{}).Result()
	assert.NoError(t, err)
}

func TestStorageSyncGetPropagatesNonRecoverableError(t *testing.T) {
	t.Parallel()

	repo, _, _ := newTiered()

	_, err := repo.Get(struct{ query.Query }{}, repository.StorageSync).Result()
	assert.ErrorIs(t, err, herror.QueryNotSupported)
}

func TestDefaultOperationResolvesPerMethod(t *testing.T) {
	t.Parallel()

	repo, network, storage := newTiered()
	cached := widget{ID: "1", Name: "cached"}
	_, err := storage.Put(&cached, query.Key{Key: "1"}).Result()
	require.NoError(t, err)

	got, err := repo.Get(query.Key{Key: "1"}, repository.Default).Result()
	require.NoError(t, err)
	assert.Equal(t, cached, got, "reads default to StorageSync")

	form := widget{ID: "2", Name: "new"}
	_, err = repo.Put(&form, query.Key{Key: "2"}, repository.Default).Result()
	require.NoError(t, err)

	_, err = network.Get(query.Key{Key: "2"}).Result()
	require.NoError(t, err, "writes default to NetworkSync and must reach network")
}

func TestUnrecognizedOperationFails(t *testing.T) {
	t.Parallel()

	repo, _, _ := newTiered()

	_, err := repo.Get(query.Blank{}, repository.Blank).Result()
	assert.ErrorIs(t, err, herror.Unimplemented)
}

func TestNetworkSyncDeleteThenStorageDelete(t *testing.T) {
	t.Parallel()

	repo, network, storage := newTiered()
	v := widget{ID: "1", Name: "Ada"}
	_, _ = network.Put(&v, query.Key{Key: "1"}).Result()
	_, _ = storage.Put(&v, query.Key{Key: "1"}).Result()

	_, err := repo.Delete(query.Key{Key: "1"}, repository.NetworkSync).Result()
	require.NoError(t, err)

	_, err = network.Get(query.Key{Key: "1"}).Result()
	assert.ErrorIs(t, err, herror.NotFound)
	_, err = storage.Get(query.Key{Key: "1"}).Result()
	assert.ErrorIs(t, err, herror.NotFound)
}
