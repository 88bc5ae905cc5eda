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

// lineCursor walks a line slice while recognizers consume a variable
// number of lines per match; it plays the role the teacher's lineParser
// played for its streaming automaton, adapted to the whole-buffer model
// this package uses instead (spec §5: parsing is synchronous over a fully
// buffered input, so there is no reader to chunk from).
type lineCursor struct {
	lines []string
	pos   int
}

func newLineCursor(lines []string) *lineCursor { return &lineCursor{lines: lines} }

func (c *lineCursor) eof() bool      { return c.pos >= len(c.lines) }
func (c *lineCursor) line() string   { return c.lines[c.pos] }
func (c *lineCursor) advance()       { c.pos++ }
func (c *lineCursor) mark() int      { return c.pos }
func (c *lineCursor) reset(m int)    { c.pos = m }

// blockParseState is threaded through every block recognizer.
type blockParseState struct {
	cfg *Config
	cur *lineCursor
	// paragraphOpen reports whether the current line would interrupt an
	// open paragraph.
	paragraphOpen bool
}

// blockRecognizer matches one alternative of spec §4.3 against the current
// cursor position, consuming input and returning the (possibly
// behavior-transformed) replacement sequence on success.
type blockRecognizer func(p *blockParseState) ([]Block, bool)

// builtinBlockRecognizers lists the built-in alternatives in the priority
// order spec §4.3 assigns them (items 2-3 — blank line and thematic break
// — are handled directly in the dispatch loop below; a blank line never
// produces a block and thematic break is a single cheap prefix test run
// first among these).
var builtinBlockRecognizers = []blockRecognizer{
	tryATXHeading,
	tryFencedCode,
	tryHTMLBlockInterrupting,
	tryLinkRefDef,
	tryFootnoteDef,
	tryBlockQuoteOrAlert,
	tryList,
	tryTable,
}

func tryHTMLBlockInterrupting(p *blockParseState) ([]Block, bool) {
	return tryHTMLBlock(p, p.paragraphOpen)
}

// parseBlockSequence runs the block grammar (spec §4.3) over lines,
// returning the resulting sequence of top-level blocks. It is called
// recursively for the dedented interior of every container (blockquote,
// list item, footnote definition, alert).
func parseBlockSequence(cfg *Config, lines []string) []Block {
	p := &blockParseState{cfg: cfg, cur: newLineCursor(lines)}

	var blocks []Block
	var paraLines []string

	flushParagraph := func() {
		if len(paraLines) == 0 {
			return
		}
		text := strings.Join(paraLines, "\n")
		paraLines = nil
		if blockIgnored(cfg, ParagraphKind) {
			return
		}
		para := &Paragraph{Content: rawInline(text)}
		blocks = append(blocks, applyBlockBehavior(cfg, ParagraphKind, para)...)
	}

	for !p.cur.eof() {
		line := p.cur.line()

		if isBlankLine(line) {
			flushParagraph()
			p.cur.advance()
			continue
		}

		if repl, ok := tryCustomBlockParsers(p); ok {
			flushParagraph()
			blocks = append(blocks, repl...)
			continue
		}

		indent := indentWidth(line)

		if len(paraLines) > 0 && indent <= 3 {
			if level, ok := setextUnderlineLevel(line); ok {
				if !blockIgnored(cfg, HeadingKind) {
					text := strings.Join(paraLines, "\n")
					paraLines = nil
					h := &Heading{Form: Setext(level), Content: rawInline(text)}
					blocks = append(blocks, applyBlockBehavior(cfg, HeadingKind, h)...)
					p.cur.advance()
					continue
				}
			}
		}

		if indent <= 3 {
			if !blockIgnored(cfg, ThematicBreakKind) {
				if repl, ok := tryThematicBreak(p); ok {
					flushParagraph()
					blocks = append(blocks, repl...)
					continue
				}
			}

			p.paragraphOpen = len(paraLines) > 0
			matched := false
			for _, recognize := range builtinBlockRecognizers {
				if repl, ok := recognize(p); ok {
					flushParagraph()
					blocks = append(blocks, repl...)
					matched = true
					break
				}
			}
			if matched {
				continue
			}
		}

		if indent >= 4 && len(paraLines) == 0 {
			if repl, ok := tryIndentedCode(p); ok {
				blocks = append(blocks, repl...)
				continue
			}
		}

		// Paragraph (default alternative, with lazy continuation).
		paraLines = append(paraLines, strings.TrimLeft(line, " \t"))
		p.cur.advance()
	}
	flushParagraph()
	return blocks
}

// tryCustomBlockParsers runs the user-registered custom block parsers
// (spec §4.3 item 1) against the remaining lines joined back into text. A
// parser that reports success without consuming at least one byte is
// treated as a failure (spec §4.4's ordering guarantee), and the next
// registered parser is tried.
func tryCustomBlockParsers(p *blockParseState) ([]Block, bool) {
	parsers := p.cfg.CustomBlockParsers()
	if len(parsers) == 0 {
		return nil, false
	}
	remaining := strings.Join(p.cur.lines[p.cur.pos:], "\n")
	for _, parse := range parsers {
		newRemaining, value, ok := parse(remaining)
		if !ok || len(newRemaining) >= len(remaining) {
			continue
		}
		consumedText := remaining[:len(remaining)-len(newRemaining)]
		consumedLines := strings.Count(consumedText, "\n")
		if !strings.HasSuffix(consumedText, "\n") {
			consumedLines++
		}
		for i := 0; i < consumedLines && !p.cur.eof(); i++ {
			p.cur.advance()
		}
		return []Block{value}, true
	}
	return nil, false
}
