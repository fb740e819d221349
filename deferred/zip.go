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

// Pair, Triple, and Quad are the tuple shapes produced by Zip2..Zip4, the
// arity-4 cap spec.md sets for zip aggregation.
type Pair[A, B any] struct {
	A A
	B B
}

type Triple[A, B, C any] struct {
	A A
	B B
	C C
}

type Quad[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

// Zip2 combines a and b into a Pair, evaluated strictly left to right via
// FlatMap: b is never consulted if a fails, and the aggregate fails with
// whichever error arrives first once a has resolved.
func Zip2[A, B any](a *Deferred[A], b *Deferred[B]) *Deferred[Pair[A, B]] {
	return FlatMap(a, func(va A) *Deferred[Pair[A, B]] {
		return Map(b, func(vb B) Pair[A, B] {
			return Pair[A, B]{A: va, B: vb}
		})
	})
}

// Zip3 combines a, b, and c into a Triple with the same left-to-right,
// fail-fast semantics as Zip2.
func Zip3[A, B, C any](a *Deferred[A], b *Deferred[B], c *Deferred[C]) *Deferred[Triple[A, B, C]] {
	return FlatMap(Zip2(a, b), func(ab Pair[A, B]) *Deferred[Triple[A, B, C]] {
		return Map(c, func(vc C) Triple[A, B, C] {
			return Triple[A, B, C]{A: ab.A, B: ab.B, C: vc}
		})
	})
}

// Zip4 combines a, b, c, and d into a Quad with the same left-to-right,
// fail-fast semantics as Zip2.
func Zip4[A, B, C, D any](
	a *Deferred[A], b *Deferred[B], c *Deferred[C], d *Deferred[D],
) *Deferred[Quad[A, B, C, D]] {
	return FlatMap(Zip3(a, b, c), func(abc Triple[A, B, C]) *Deferred[Quad[A, B, C, D]] {
		return Map(d, func(vd D) Quad[A, B, C, D] {
			return Quad[A, B, C, D]{A: abc.A, B: abc.B, C: abc.C, D: vd}
		})
	})
}
