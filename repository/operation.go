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

// Operation selects the tiered engine's behavior for a single call. The
// tiered engine recognizes exactly Network, Storage, NetworkSync, and
// StorageSync; Blank and Default are accepted by single-source repositories
// (which ignore the Operation entirely) and forwarded unchanged, but are
// not among the four the tiered engine dispatches on.
type Operation uint8

const (
	// Default resolves to the per-method default: StorageSync for reads,
	// NetworkSync for writes and deletes.
	Default Operation = iota

	// Blank carries no policy; only meaningful to single-source
	// repositories, which ignore it.
	Blank

	// Network routes the call to the network DataSource only.
	Network

	// Storage routes the call to the storage DataSource only.
	Storage

	// NetworkSync treats network as the source of truth: the network call
	// runs first, and on success its result is written through to storage.
	NetworkSync

	// StorageSync treats storage as the source of truth, with network
	// consulted second (for reads, only as a fallback on miss/staleness;
	// for writes and deletes, as a write-through target).
	StorageSync
)
