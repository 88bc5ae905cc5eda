// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package transform

import "github.com/emberglade/mdast"

// Find returns the first node in blocks, in document order, for which
// match reports true, or the zero [Node] and false if none match.
//
// Grounded in the same stack-walk shape as the teacher's
// ReferenceMap.Extract (references.go), applied here to an arbitrary
// predicate instead of a fixed "is this a link reference definition" test.
func Find(blocks []mdast.Block, match func(Node) bool) (Node, bool) {
	var found Node
	ok := false
	Walk(blocks, &WalkOptions{
		Pre: func(c *Cursor) bool {
			if ok {
				return false
			}
			if match(c.Node()) {
				found, ok = c.Node(), true
				return false
			}
			return true
		},
	})
	return found, ok
}

// FindAll returns every node in blocks, in document order, for which match
// reports true.
func FindAll(blocks []mdast.Block, match func(Node) bool) []Node {
	var found []Node
	Walk(blocks, &WalkOptions{
		Pre: func(c *Cursor) bool {
			if match(c.Node()) {
				found = append(found, c.Node())
			}
			return true
		},
	})
	return found
}

// FindBlocks returns every [mdast.Block] of the given kind in blocks, in
// document order.
func FindBlocks[T mdast.Block](blocks []mdast.Block) []T {
	var found []T
	Walk(blocks, &WalkOptions{
		Pre: func(c *Cursor) bool {
			if b, ok := c.Node().Block.(T); ok {
				found = append(found, b)
			}
			return true
		},
	})
	return found
}

// FindInlines returns every [mdast.Inline] of the given kind in blocks, in
// document order.
func FindInlines[T mdast.Inline](blocks []mdast.Block) []T {
	var found []T
	Walk(blocks, &WalkOptions{
		Pre: func(c *Cursor) bool {
			if in, ok := c.Node().Inline.(T); ok {
				found = append(found, in)
			}
			return true
		},
	})
	return found
}
