// Copyright 2023 Ross Light
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

package mdast

// LinkDefinition is the destination and optional title recorded by a link
// reference definition.
type LinkDefinition struct {
	Destination string
	Title       *string
}

// ReferenceMap maps normalized link labels (see [NormalizeLabel]) to the
// definition that resolves them.
type ReferenceMap map[string]LinkDefinition

// MatchReference reports whether normalizedLabel has a definition.
func (m ReferenceMap) MatchReference(normalizedLabel string) bool {
	_, ok := m[normalizedLabel]
	return ok
}

// buildReferenceMap walks every block in a parsed document's tree, in
// document order, collecting every [LinkReferenceDefinition] it contains
// into one map. The first definition for a given normalized label wins, per
// spec §4.5 — later-occurring duplicate definitions are visible in the AST
// as ordinary [LinkReferenceDefinition] blocks but have no effect on
// resolution.
//
// Grounded on the teacher's references.go, whose ReferenceMap.Extract walks
// the same shape of tree with an explicit stack; this is a straightforward
// port to this package's []Block/[]Inline node shapes in place of the
// teacher's single Node union type.
func buildReferenceMap(blocks []Block) ReferenceMap {
	m := make(ReferenceMap)
	record := func(def *LinkReferenceDefinition) {
		if def.Label == "" {
			return
		}
		if _, exists := m[def.Label]; exists {
			return
		}
		m[def.Label] = LinkDefinition{Destination: def.Destination, Title: def.Title}
	}
	var walk func([]Block)
	walk = func(blocks []Block) {
		for _, b := range blocks {
			switch v := b.(type) {
			case *LinkReferenceDefinition:
				record(v)
			case *BlockQuote:
				walk(v.Content)
			case *GitHubAlert:
				walk(v.Content)
			case *FootnoteDefinition:
				walk(v.Content)
			case *List:
				for _, item := range v.Items {
					walk(item.Content)
				}
			}
		}
	}
	walk(blocks)
	return m
}
