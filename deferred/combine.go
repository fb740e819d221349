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

package deferred

import (
	"context"
	"fmt"
	"reflect"
)

// toChannel exposes this cell's eventual result as a receive-only channel,
// built on the same single-consumer register slot Then/Fail use — so, like
// them, it may only be called once per cell.
func (d *Deferred[T]) toChannel() <-chan Result[T] {
	ch := make(chan Result[T], 1)
	d.register(func(r Result[T]) { ch <- r })

	return ch
}

// WaitAll blocks until every Deferred in ds has resolved, returning their
// results in the same order, or returns early if ctx is canceled first.
// Unlike Zip (capped at arity 4), WaitAll accepts any number of homogeneous
// Deferreds.
func WaitAll[T any](ctx context.Context, ds ...*Deferred[T]) ([]Result[T], error) {
	n := len(ds)
	results := make([]Result[T], n)
	cases := make([]reflect.SelectCase, n+1)

	for i, d := range ds {
		cases[i] = reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(d.toChannel())}
	}

	cases[n] = reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(ctx.Done())}

	for remaining := n; remaining > 0; remaining-- {
		chosen, recv, _ := reflect.Select(cases)
		if chosen == n {
			return nil, fmt.Errorf("deferred: wait all canceled: %w", ctx.Err())
		}

		cases[chosen].Chan = reflect.Value{}
		results[chosen] = recv.Interface().(Result[T])
	}

	return results, nil
}

// WaitAllValues is WaitAll, unwrapped: it fails with the first error found
// (by index, not arrival order) once every Deferred has resolved, or
// returns early if ctx is canceled.
func WaitAllValues[T any](ctx context.Context, ds ...*Deferred[T]) ([]T, error) {
	results, err := WaitAll(ctx, ds...)
	if err != nil {
		return nil, err
	}

	values := make([]T, len(results))

	for i, r := range results {
		if r.IsError() {
			return nil, fmt.Errorf("deferred: wait all values result %d: %w", i, r.Err())
		}

		values[i] = r.Value()
	}

	return values, nil
}

// WaitFirst returns the result of whichever Deferred in ds resolves first,
// or returns early if ctx is canceled first.
func WaitFirst[T any](ctx context.Context, ds ...*Deferred[T]) (T, error) {
	n := len(ds)
	cases := make([]reflect.SelectCase, n+1)

	for i, d := range ds {
		cases[i] = reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(d.toChannel())}
	}

	cases[n] = reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(ctx.Done())}

	chosen, recv, _ := reflect.Select(cases)
	if chosen == n {
		return *new(T), fmt.Errorf("deferred: wait first canceled: %w", ctx.Err())
	}

	return recv.Interface().(Result[T]).V()
}
