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

// resolveBlockInlines is the second half of the two-phase parse (spec
// §4.5): it walks every block in the tree, in place, replacing each
// rawText placeholder left by block parsing with the fully tokenized
// inline sequence produced against the complete reference table.
func resolveBlockInlines(cfg *Config, refs ReferenceMap, blocks []Block) {
	for _, blk := range blocks {
		switch v := blk.(type) {
		case *Paragraph:
			v.Content = resolveInlineSlice(cfg, refs, v.Content)
		case *Heading:
			v.Content = resolveInlineSlice(cfg, refs, v.Content)
		case *BlockQuote:
			resolveBlockInlines(cfg, refs, v.Content)
		case *GitHubAlert:
			resolveBlockInlines(cfg, refs, v.Content)
		case *FootnoteDefinition:
			resolveBlockInlines(cfg, refs, v.Content)
		case *List:
			for _, item := range v.Items {
				resolveBlockInlines(cfg, refs, item.Content)
			}
		case *Table:
			resolveTableRow(cfg, refs, v.Header)
			for _, row := range v.Rows {
				resolveTableRow(cfg, refs, row)
			}
		}
	}
}

// resolveInlineSlice replaces a single rawText placeholder slice (the shape
// every Content field holds until resolution) with its tokenized form. A
// slice that is not a bare rawText placeholder (e.g. already resolved, or
// empty) is returned unchanged.
func resolveInlineSlice(cfg *Config, refs ReferenceMap, content []Inline) []Inline {
	if len(content) != 1 {
		return content
	}
	raw, ok := content[0].(*rawText)
	if !ok {
		return content
	}
	return parseInlineText(cfg, refs, raw.source)
}

func resolveTableRow(cfg *Config, refs ReferenceMap, row TableRow) {
	for i, cell := range row {
		row[i] = TableCell(resolveInlineSlice(cfg, refs, []Inline(cell)))
	}
}
