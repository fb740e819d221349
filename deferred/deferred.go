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

// Package deferred implements the async result primitive at the core of
// harmony: a single-shot, race-free carrier of either a value or an error,
// composable via Map/FlatMap/Recover, consumable by callback or by a
// blocking Result read.
package deferred

import "sync"

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

type cellState uint8

const (
	stateBlank cellState = iota
	stateWaitingThen
	stateWaitingContent
	stateSent
)

// Deferred is the single-shot async cell described in spec.md §3/§4.1. The
// zero value is not usable; construct one with New, Resolved, Rejected, or
// NewWith.
type Deferred[T any] struct {
	_ noCopy

	mu       sync.Mutex
	state    cellState
	result   Result[T]
	queue    Queue
	onSet    func(*Result[T])
	consumer func(Result[T])

	// parent keeps an upstream Deferred reachable for the lifetime of a
	// chained child, mirroring the explicit strong back-reference spec.md
	// describes for the ref-counted original implementation.
	parent any
}

// New returns a Blank Deferred and the Resolver used to settle it.
func New[T any]() (*Resolver[T], *Deferred[T]) {
	d := &Deferred[T]{}

	return &Resolver[T]{d: d}, d
}

// Resolved returns a Deferred pre-resolved with a value.
func Resolved[T any](v T) *Deferred[T] {
	_, d := New[T]()
	d.complete(Value(v))

	return d
}

// Rejected returns a Deferred pre-resolved with an error.
func Rejected[T any](err error) *Deferred[T] {
	_, d := New[T]()
	d.complete(Err[T](err))

	return d
}

// From returns a Deferred that adopts other's eventual result.
func From[T any](other *Deferred[T]) *Deferred[T] {
	r, d := New[T]()
	r.SetFrom(other)
	d.parent = other

	return d
}

// NewWith runs build synchronously, passing it a Resolver to settle the
// returned Deferred. It exists to let a constructor close over the Resolver
// without a separate variable, e.g. when kicking off a goroutine inline.
func NewWith[T any](build func(r *Resolver[T])) *Deferred[T] {
	r, d := New[T]()
	build(r)

	return d
}

// OnSet registers a synchronous interceptor invoked exactly once, at the
// moment this cell resolves, with mutable access to the pending Result. At
// most one interceptor is active; a second call replaces the first. It has
// no effect once the cell has already resolved.
func (d *Deferred[T]) OnSet(fn func(*Result[T])) *Deferred[T] {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == stateBlank || d.state == stateWaitingContent {
		d.onSet = fn
	}

	return d
}

// On binds the delivery queue that callbacks registered after this call run
// on. It must be called before Then/Fail/Result to take effect.
func (d *Deferred[T]) On(q Queue) *Deferred[T] {
	d.mu.Lock()
	d.queue = q
	d.mu.Unlock()

	return d
}

// Then installs the value half of this cell's callback pair and returns a
// new child Deferred carrying the same result, so Fail can be chained on it
// fluently. Installing a consumer on this cell twice, or after a blocking
// Result call, is a programming error and panics.
func (d *Deferred[T]) Then(onValue func(T)) *Deferred[T] {
	return AndThen(d, onValue, nil)
}

// Fail installs the error half of this cell's callback pair and returns a
// new child Deferred carrying the same result. See Then.
func (d *Deferred[T]) Fail(onError func(error)) *Deferred[T] {
	return AndThen(d, nil, onError)
}

// Result blocks until this cell resolves and returns its value or error. It
// is permitted only when no callback pair has been installed yet; calling
// it after Then/Fail, or calling it twice, is a programming error.
func (d *Deferred[T]) Result() (T, error) {
	ch := make(chan Result[T], 1)
	d.register(func(r Result[T]) { ch <- r })

	return (<-ch).V()
}

// register is the single low-level consumer-installation point shared by
// Then, Fail, Result, and every combinator in this package. A Deferred has
// exactly one consumer slot; installing a second is the "double
// then/fail" programming error from spec.md §7.
func (d *Deferred[T]) register(consumer func(Result[T])) {
	d.mu.Lock()

	switch d.state {
	case stateSent, stateWaitingContent:
		d.mu.Unlock()
		panic("deferred: then/fail already installed")

	case stateBlank:
		d.state = stateWaitingContent
		d.consumer = consumer
		d.mu.Unlock()

	case stateWaitingThen:
		res := d.result
		q := d.queue
		d.state = stateSent
		d.mu.Unlock()
		dispatch(q, func() { consumer(res) })
	}
}

// complete resolves the cell with res. Setting an already-resolved or
// already-sent cell is a silent no-op, per spec.md's forgiving contract.
func (d *Deferred[T]) complete(res Result[T]) {
	d.mu.Lock()

	switch d.state {
	case stateSent, stateWaitingThen:
		d.mu.Unlock()

	case stateBlank:
		if d.onSet != nil {
			d.onSet(&res)
			d.onSet = nil
		}

		d.result = res
		d.state = stateWaitingThen
		d.mu.Unlock()

	case stateWaitingContent:
		if d.onSet != nil {
			d.onSet(&res)
			d.onSet = nil
		}

		consumer := d.consumer
		q := d.queue
		d.state = stateSent
		d.mu.Unlock()
		dispatch(q, func() { consumer(res) })
	}
}

// clear returns the cell to Blank, releasing its stored result and
// callbacks. It exists solely to let Observable rearm a cell for reuse after
// delivery; it is not normally called on a plain Deferred.
func (d *Deferred[T]) clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.state = stateBlank
	d.result = Result[T]{}
	d.consumer = nil
	d.onSet = nil
}
