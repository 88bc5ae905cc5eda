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

// Parse is the package's single entry point (spec §6.1, §5): a pure,
// synchronous computation over a fully buffered input string, producing a
// closed-variant [Document] and never a partial or streaming result.
//
// Parsing proceeds in the two phases spec §4.5 requires:
//
//  1. The block grammar (spec §4.3) runs over the whole input, producing
//     every [Block] with its inline content still an unparsed placeholder.
//     This is the only phase that can discover every [LinkReferenceDefinition]
//     in the document, including ones that appear after the paragraphs,
//     headings, or table cells that reference them.
//  2. Every [LinkReferenceDefinition] found in phase 1 is collected into a
//     [ReferenceMap] (first occurrence per normalized label wins), and a
//     second tree walk tokenizes each block's placeholder content against
//     the now-complete map (spec §4.4).
//
// cfg must not be nil; use [NewConfig] to build one. A nil cfg is a
// programming error and panics, since there is no sensible default
// Document to return from a mis-called Parse.
func Parse(cfg *Config, input string) (doc *Document, parseErr *ParseError) {
	if cfg == nil {
		panic("mdast: Parse called with nil Config")
	}
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(*ParseError); ok {
				doc, parseErr = nil, pe
			} else {
				panic(r)
			}
		}
	}()

	lines := preprocessLines(input)
	blocks := parseBlockSequence(cfg, lines)
	refs := buildReferenceMap(blocks)
	resolveBlockInlines(cfg, refs, blocks)
	return &Document{Blocks: blocks}, nil
}
