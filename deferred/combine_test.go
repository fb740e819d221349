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

package deferred_test

import (
	"context"
	"testing"
	"time"

	"github.com/magicbell/harmony/deferred"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitAll(t *testing.T) {
	t.Parallel()

	r1, d1 := deferred.New[int]()
	r2, d2 := deferred.New[int]()
	r3, d3 := deferred.New[int]()

	r1.Resolve(1)
	r2.Reject(errTest)
	r3.Resolve(3)

	results, err := deferred.WaitAll(context.Background(), d1, d2, d3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	v0, err0 := results[0].V()
	err1 := results[1].Err()
	v2, err2 := results[2].V()

	assert.NoError(t, err0)
	assert.Equal(t, 1, v0)
	assert.ErrorIs(t, err1, errTest)
	assert.NoError(t, err2)
	assert.Equal(t, 3, v2)
}

func TestWaitAllValues(t *testing.T) {
	t.Parallel()

	ds := make([]*deferred.Deferred[int], 3)
	for i := range ds {
		r, d := deferred.New[int]()
		r.Resolve(i + 1)
		ds[i] = d
	}

	values, err := deferred.WaitAllValues(context.Background(), ds...)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, values)
}

func TestWaitAllValuesError(t *testing.T) {
	t.Parallel()

	r1, d1 := deferred.New[int]()
	r2, d2 := deferred.New[int]()
	r1.Resolve(1)
	r2.Reject(errTest)

	_, err := deferred.WaitAllValues(context.Background(), d1, d2)
	assert.ErrorIs(t, err, errTest)
}

func TestWaitFirst(t *testing.T) {
	t.Parallel()

	_, d1 := deferred.New[int]()
	r2, d2 := deferred.New[int]()
	r2.Resolve(2)

	v, err := deferred.WaitFirst(context.Background(), d1, d2)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestWaitAllCancellation(t *testing.T) {
	t.Parallel()

	_, d1 := deferred.New[int]()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := deferred.WaitAll(ctx, d1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
