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

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// tryThematicBreak implements spec §4.3 alternative 3.
func tryThematicBreak(p *blockParseState) ([]Block, bool) {
	line, _ := stripIndent(p.cur.line(), 3)
	if !isThematicBreak(line) {
		return nil, false
	}
	if blockIgnored(p.cfg, ThematicBreakKind) {
		return nil, false
	}
	p.cur.advance()
	return applyBlockBehavior(p.cfg, ThematicBreakKind, &ThematicBreak{}), true
}

// tryATXHeading implements spec §4.3 alternative 4.
func tryATXHeading(p *blockParseState) ([]Block, bool) {
	line, _ := stripIndent(p.cur.line(), 3)
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return nil, false
	}
	rest := line[level:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return nil, false
	}
	if blockIgnored(p.cfg, HeadingKind) {
		return nil, false
	}
	p.cur.advance()

	text := strings.Trim(rest, " \t")
	// Strip an optional closing sequence of '#'s.
	trimmedRight := strings.TrimRight(text, "#")
	if trimmedRight == "" || strings.HasSuffix(trimmedRight, " ") || strings.HasSuffix(trimmedRight, "\t") || trimmedRight != text {
		if trimmedRight == "" {
			text = ""
		} else if trimmedRight != text {
			text = strings.TrimRight(trimmedRight, " \t")
		}
	}
	h := &Heading{Form: ATX(level), Content: rawInline(text)}
	return applyBlockBehavior(p.cfg, HeadingKind, h), true
}

// tryFencedCode implements spec §4.3 alternative 5.
func tryFencedCode(p *blockParseState) ([]Block, bool) {
	line, indent := stripIndent(p.cur.line(), 3)
	if line == "" {
		return nil, false
	}
	fenceChar := line[0]
	if fenceChar != '`' && fenceChar != '~' {
		return nil, false
	}
	fenceLen := 0
	for fenceLen < len(line) && line[fenceLen] == fenceChar {
		fenceLen++
	}
	if fenceLen < 3 {
		return nil, false
	}
	info := strings.Trim(line[fenceLen:], " \t")
	if fenceChar == '`' && strings.ContainsRune(info, '`') {
		return nil, false
	}
	if blockIgnored(p.cfg, CodeBlockKind) {
		return nil, false
	}
	p.cur.advance()

	var literalLines []string
	for !p.cur.eof() {
		closeLine, _ := stripIndent(p.cur.line(), 3)
		closeTrimmed := strings.TrimRight(closeLine, " \t")
		closeLen := 0
		for closeLen < len(closeTrimmed) && closeTrimmed[closeLen] == fenceChar {
			closeLen++
		}
		if closeLen >= fenceLen && closeLen == len(closeTrimmed) {
			p.cur.advance()
			break
		}
		literalLines = append(literalLines, unindentFenceLine(p.cur.line(), indent))
		p.cur.advance()
	}
	literal := ""
	if len(literalLines) > 0 {
		literal = strings.Join(literalLines, "\n") + "\n"
	}
	cb := &CodeBlock{Form: Fenced(info), Literal: literal}
	return applyBlockBehavior(p.cfg, CodeBlockKind, cb), true
}

// unindentFenceLine removes up to n columns of leading space from a fenced
// code block's interior line, matching the fence's own indentation.
func unindentFenceLine(line string, n int) string {
	rest, _ := stripIndent(line, n)
	return rest
}

// tryIndentedCode implements spec §4.3 alternative 14.
func tryIndentedCode(p *blockParseState) ([]Block, bool) {
	if indentWidth(p.cur.line()) < 4 {
		return nil, false
	}
	if blockIgnored(p.cfg, CodeBlockKind) {
		return nil, false
	}

	var literalLines []string
	for !p.cur.eof() {
		line := p.cur.line()
		if isBlankLine(line) {
			// A run of blank lines only continues the code block if a
			// non-blank indented line follows; otherwise they terminate it
			// and are left for the outer loop to consume.
			save := p.cur.mark()
			blanks := 0
			for !p.cur.eof() && isBlankLine(p.cur.line()) {
				p.cur.advance()
				blanks++
			}
			if !p.cur.eof() && indentWidth(p.cur.line()) >= 4 {
				for i := 0; i < blanks; i++ {
					literalLines = append(literalLines, "")
				}
				continue
			}
			p.cur.reset(save)
			break
		}
		if indentWidth(line) < 4 {
			break
		}
		rest, _ := stripIndent(line, 4)
		literalLines = append(literalLines, rest)
		p.cur.advance()
	}
	for len(literalLines) > 0 && literalLines[len(literalLines)-1] == "" {
		literalLines = literalLines[:len(literalLines)-1]
	}
	literal := ""
	if len(literalLines) > 0 {
		literal = strings.Join(literalLines, "\n") + "\n"
	}
	cb := &CodeBlock{Form: Indented(), Literal: literal}
	return applyBlockBehavior(p.cfg, CodeBlockKind, cb), true
}

// setextUnderlineLevel reports the heading level of a Setext underline
// line ("===" or "---", optionally trailing-spaced), spec §4.3 alt. 13.
func setextUnderlineLevel(line string) (level int, ok bool) {
	trimmed := strings.TrimRight(line, " \t")
	if trimmed == "" {
		return 0, false
	}
	switch trimmed[0] {
	case '=':
		for i := 0; i < len(trimmed); i++ {
			if trimmed[i] != '=' {
				return 0, false
			}
		}
		return 1, true
	case '-':
		for i := 0; i < len(trimmed); i++ {
			if trimmed[i] != '-' {
				return 0, false
			}
		}
		return 2, true
	default:
		return 0, false
	}
}

// htmlBlockConditions enumerates the seven HTML block start/end conditions
// (CommonMark §4.6), adapted from the byte-slice tables the teacher built
// for its span-based lexer; the first six conditions are pure string
// pattern matches and carry over unchanged; the seventh (a complete open or
// closing tag alone on its line) is reimplemented in terms of
// [lexHTMLOpenTag]/[lexHTMLClosingTag] since the teacher's version reads
// from its span-tagged inlineByteReader.
var htmlBlockConditions = []struct {
	start                 func(line string) bool
	end                   func(line string) bool
	canInterruptParagraph bool
}{
	{
		start: func(line string) bool {
			for _, starter := range htmlBlockStarters1 {
				if hasCaseInsensitiveBytePrefix(line, starter) {
					rest := line[len(starter):]
					if rest == "" || isSpaceTabOrLineEnding(rest[0]) || rest[0] == '>' {
						return true
					}
				}
			}
			return false
		},
		end: func(line string) bool {
			for _, ender := range htmlBlockEnders1 {
				if caseInsensitiveContains(line, ender) {
					return true
				}
			}
			return false
		},
		canInterruptParagraph: true,
	},
	{
		start:                 func(line string) bool { return strings.HasPrefix(line, "<!--") },
		end:                   func(line string) bool { return strings.Contains(line, "-->") },
		canInterruptParagraph: true,
	},
	{
		start:                 func(line string) bool { return strings.HasPrefix(line, "<?") },
		end:                   func(line string) bool { return strings.Contains(line, "?>") },
		canInterruptParagraph: true,
	},
	{
		start: func(line string) bool {
			return strings.HasPrefix(line, "<!") && len(line) >= 3 && isASCIILetter(line[2])
		},
		end:                   func(line string) bool { return strings.Contains(line, ">") },
		canInterruptParagraph: true,
	},
	{
		start:                 func(line string) bool { return strings.HasPrefix(line, "<![CDATA[") },
		end:                   func(line string) bool { return strings.Contains(line, "]]>") },
		canInterruptParagraph: true,
	},
	{
		start: func(line string) bool {
			switch {
			case strings.HasPrefix(line, "</"):
				line = line[2:]
			case strings.HasPrefix(line, "<"):
				line = line[1:]
			default:
				return false
			}
			for _, starter := range htmlBlockStarters6 {
				if hasCaseInsensitiveBytePrefix(line, starter) {
					rest := line[len(starter):]
					if rest == "" || isSpaceTabOrLineEnding(rest[0]) || rest[0] == '>' || strings.HasPrefix(rest, "/>") {
						return true
					}
				}
			}
			return false
		},
		end:                   isBlankLine,
		canInterruptParagraph: true,
	},
	{
		start: func(line string) bool {
			if !strings.HasPrefix(line, "<") {
				return false
			}
			var end int
			if strings.HasPrefix(line, "</") {
				end = lexHTMLClosingTag(line, 1)
			} else {
				end = lexHTMLOpenTag(line, 1)
			}
			if end < 0 {
				return false
			}
			return isBlankLine(line[end:])
		},
		end:                   isBlankLine,
		canInterruptParagraph: false,
	},
}

var (
	htmlBlockStarters1 = []string{"<pre", "<script", "<style", "<textarea"}
	htmlBlockEnders1   = []string{"</pre>", "</script>", "</style>", "</textarea>"}

	htmlBlockStarters6 = []string{
		atom.Address.String(), atom.Article.String(), atom.Aside.String(), atom.Base.String(),
		atom.Basefont.String(), atom.Blockquote.String(), atom.Body.String(), atom.Caption.String(),
		atom.Center.String(), atom.Col.String(), atom.Colgroup.String(), atom.Dd.String(),
		atom.Details.String(), atom.Dialog.String(), atom.Dir.String(), atom.Div.String(),
		atom.Dl.String(), atom.Dt.String(), atom.Fieldset.String(), atom.Figcaption.String(),
		atom.Figure.String(), atom.Footer.String(), atom.Form.String(), atom.Frame.String(),
		atom.Frameset.String(), atom.H1.String(), atom.H2.String(), atom.H3.String(),
		atom.H4.String(), atom.H5.String(), atom.H6.String(), atom.Head.String(),
		atom.Header.String(), atom.Hr.String(), atom.Html.String(), atom.Iframe.String(),
		atom.Legend.String(), atom.Li.String(), atom.Link.String(), atom.Main.String(),
		atom.Menu.String(), atom.Menuitem.String(), atom.Nav.String(), atom.Noframes.String(),
		atom.Ol.String(), atom.Optgroup.String(), atom.Option.String(), atom.P.String(),
		atom.Param.String(), atom.Section.String(), atom.Source.String(), atom.Summary.String(),
		atom.Table.String(), atom.Tbody.String(), atom.Td.String(), atom.Tfoot.String(),
		atom.Th.String(), atom.Thead.String(), atom.Title.String(), atom.Tr.String(),
		atom.Track.String(), atom.Ul.String(),
	}
)

// tryHTMLBlock implements spec §4.3 alternative 6.
func tryHTMLBlock(p *blockParseState, interruptsParagraph bool) ([]Block, bool) {
	line, _ := stripIndent(p.cur.line(), 3)
	condIdx := -1
	for i, cond := range htmlBlockConditions {
		if interruptsParagraph && !cond.canInterruptParagraph {
			continue
		}
		if cond.start(line) {
			condIdx = i
			break
		}
	}
	if condIdx < 0 {
		return nil, false
	}
	if blockIgnored(p.cfg, HTMLBlockKind) {
		return nil, false
	}
	cond := htmlBlockConditions[condIdx]

	var lines []string
	lines = append(lines, p.cur.line())
	p.cur.advance()
	if !cond.end(line) {
		for !p.cur.eof() {
			cur := p.cur.line()
			lines = append(lines, cur)
			p.cur.advance()
			if cond.end(cur) {
				break
			}
			if condIdx == 6 && isBlankLine(cur) {
				break
			}
		}
	}
	hb := &HTMLBlock{Literal: strings.Join(lines, "\n") + "\n"}
	return applyBlockBehavior(p.cfg, HTMLBlockKind, hb), true
}

// tryLinkRefDef implements spec §4.3 alternative 7: "[label]: dest \"title\"",
// the title optionally continuing onto up to two further lines.
func tryLinkRefDef(p *blockParseState) ([]Block, bool) {
	save := p.cur.mark()
	line, _ := stripIndent(p.cur.line(), 3)
	if len(line) == 0 || line[0] != '[' {
		return nil, false
	}
	closeIdx := findLabelClose(line, 0)
	if closeIdx < 0 || closeIdx+1 >= len(line) || line[closeIdx+1] != ':' {
		return nil, false
	}
	label := line[1:closeIdx]
	if strings.TrimSpace(label) == "" {
		return nil, false
	}
	// "[^label]:" opens a footnote definition, not a link reference
	// definition.
	if strings.HasPrefix(label, "^") {
		return nil, false
	}
	rest := strings.TrimLeft(line[closeIdx+2:], " \t")

	// The destination (and optional title) may continue across subsequent
	// lines; gather a small window of raw text to parse as a unit.
	var buf strings.Builder
	buf.WriteString(rest)
	endPos := p.cur.mark() + 1
	for i := 0; i < 2 && endPos < len(p.cur.lines); i++ {
		next := p.cur.lines[endPos]
		if isBlankLine(next) {
			break
		}
		buf.WriteByte('\n')
		buf.WriteString(strings.TrimSpace(next))
		endPos++
	}

	dest, title, n, ok := parseLinkDestinationAndTitle(buf.String())
	if !ok {
		p.cur.reset(save)
		return nil, false
	}
	// n is a byte offset into buf's joined text; translate back to a line
	// count to know how many extra lines were consumed.
	consumedExtra := strings.Count(buf.String()[:n], "\n")
	if blockIgnored(p.cfg, LinkReferenceDefinitionKind) {
		return nil, false
	}
	p.cur.advance()
	for i := 0; i < consumedExtra; i++ {
		p.cur.advance()
	}

	lrd := &LinkReferenceDefinition{
		Label:       NormalizeLabel(label),
		Destination: dest,
		Title:       title,
	}
	return applyBlockBehavior(p.cfg, LinkReferenceDefinitionKind, lrd), true
}

// findLabelClose finds the ']' matching the '[' at start (which must hold
// line[start] == '['), honoring backslash escapes.
func findLabelClose(line string, start int) int {
	depth := 0
	for i := start; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
