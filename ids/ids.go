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

// Package ids provides server-side id assignment for example backends that
// need to simulate a network tier minting an authoritative id on Put, the
// way scenario 3 in spec.md §8 describes ("server-assigned form").
package ids

import "github.com/google/uuid"

// New returns a freshly generated id suitable for assigning to an entity
// whose incoming form arrived without one.
func New() string {
	return uuid.NewString()
}
