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

// Package query defines the opaque request descriptor dispatched by
// DataSource backends. The core only ever names Blank, Key, and ID; a
// backend may define additional variants and must reject unrecognized ones
// with herror.QueryNotSupported.
package query

// Query is a marker interface implemented by every concrete request
// descriptor. Its only method is the unexported isQuery marker, because
// dispatch happens via type switches at the backend, not virtual calls
// through the interface.
type Query interface {
	isQuery()
}

// Blank is the no-parameters query, used by single-source repositories and
// backends that address a single, well-known resource.
type Blank struct{}

func (Blank) isQuery() {}

// Key addresses an entity by an opaque string key.
type Key struct {
	Key string
}

func (Key) isQuery() {}

// ID addresses an entity by a strongly-typed identifier.
type ID[K comparable] struct {
	ID K
}

func (ID[K]) isQuery() {}
