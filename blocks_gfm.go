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

import "strings"

// tryFootnoteDef implements spec §4.3 alternative 8: "[^label]: …", with
// further indented lines (≥4 columns) continuing the definition's content,
// the same shape as a list item's continuation.
func tryFootnoteDef(p *blockParseState) ([]Block, bool) {
	line, _ := stripIndent(p.cur.line(), 3)
	if !strings.HasPrefix(line, "[^") {
		return nil, false
	}
	closeIdx := strings.IndexByte(line, ']')
	if closeIdx < 0 || closeIdx+1 >= len(line) || line[closeIdx+1] != ':' {
		return nil, false
	}
	label := line[2:closeIdx]
	if strings.TrimSpace(label) == "" {
		return nil, false
	}
	if blockIgnored(p.cfg, FootnoteDefinitionKind) {
		return nil, false
	}
	rest := strings.TrimLeft(line[closeIdx+2:], " \t")
	p.cur.advance()

	itemLines := []string{rest}
	for !p.cur.eof() {
		l := p.cur.line()
		if isBlankLine(l) {
			itemLines = append(itemLines, "")
			p.cur.advance()
			continue
		}
		if indentWidth(l) >= 4 {
			r, _ := stripIndent(l, 4)
			itemLines = append(itemLines, r)
			p.cur.advance()
			continue
		}
		break
	}
	for len(itemLines) > 0 && itemLines[len(itemLines)-1] == "" {
		itemLines = itemLines[:len(itemLines)-1]
	}

	children := parseBlockSequence(p.cfg, itemLines)
	fd := &FootnoteDefinition{Label: NormalizeLabel(label), Content: children}
	return applyBlockBehavior(p.cfg, FootnoteDefinitionKind, fd), true
}

// tryTable implements spec §4.3 alternative 12: a header row followed
// immediately by a delimiter row of dashes (optionally colon-flanked for
// alignment), then zero or more data rows.
func tryTable(p *blockParseState) ([]Block, bool) {
	headerLine := p.cur.line()
	if !looksLikeTableRow(headerLine) {
		return nil, false
	}
	if p.cur.pos+1 >= len(p.cur.lines) {
		return nil, false
	}
	aligns, ok := parseTableDelimiterRow(p.cur.lines[p.cur.pos+1])
	if !ok {
		return nil, false
	}
	if blockIgnored(p.cfg, TableKind) {
		return nil, false
	}

	headerCells := splitTableRow(headerLine, len(aligns))
	p.cur.advance()
	p.cur.advance()

	var rows []TableRow
	for !p.cur.eof() && !isBlankLine(p.cur.line()) && looksLikeTableRow(p.cur.line()) {
		rows = append(rows, toTableRow(splitTableRow(p.cur.line(), len(aligns))))
		p.cur.advance()
	}

	t := &Table{
		Alignments: aligns,
		Header:     toTableRow(headerCells),
		Rows:       rows,
	}
	return applyBlockBehavior(p.cfg, TableKind, t), true
}

func toTableRow(cells []string) TableRow {
	row := make(TableRow, len(cells))
	for i, c := range cells {
		row[i] = rawInline(c)
	}
	return row
}

func looksLikeTableRow(line string) bool {
	return strings.Contains(line, "|") && strings.TrimSpace(line) != ""
}

// parseTableDelimiterRow parses a table's alignment row, e.g. "| :-- | :-: | --: |".
func parseTableDelimiterRow(line string) ([]Alignment, bool) {
	if !looksLikeTableRow(line) {
		return nil, false
	}
	cells := splitPipeCells(line)
	if len(cells) == 0 {
		return nil, false
	}
	aligns := make([]Alignment, len(cells))
	for i, c := range cells {
		c = strings.TrimSpace(c)
		if c == "" {
			return nil, false
		}
		left := strings.HasPrefix(c, ":")
		right := strings.HasSuffix(c, ":")
		dashes := strings.Trim(c, ":")
		if dashes == "" || strings.Trim(dashes, "-") != "" {
			return nil, false
		}
		switch {
		case left && right:
			aligns[i] = AlignCenter
		case left:
			aligns[i] = AlignLeft
		case right:
			aligns[i] = AlignRight
		default:
			aligns[i] = AlignNone
		}
	}
	return aligns, true
}

// splitTableRow splits a table row into exactly n cell texts, right-padding
// with empty cells or truncating as needed (spec §3.4).
func splitTableRow(line string, n int) []string {
	cells := splitPipeCells(line)
	out := make([]string, n)
	for i := 0; i < n; i++ {
		if i < len(cells) {
			out[i] = strings.TrimSpace(cells[i])
		}
	}
	return out
}

// splitPipeCells splits a table row on unescaped '|', dropping a single
// leading or trailing empty cell produced by a leading/trailing pipe.
func splitPipeCells(line string) []string {
	var cells []string
	var sb strings.Builder
	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '\\' && i+1 < len(line) && line[i+1] == '|':
			sb.WriteByte('|')
			i++
		case line[i] == '|':
			cells = append(cells, sb.String())
			sb.Reset()
		default:
			sb.WriteByte(line[i])
		}
	}
	cells = append(cells, sb.String())
	if len(cells) > 0 && strings.TrimSpace(cells[0]) == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && strings.TrimSpace(cells[len(cells)-1]) == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}
