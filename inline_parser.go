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
	"unicode/utf8"
)

// parseInlineText tokenizes a block's raw text into its final []Inline
// sequence (spec §4.4), given the complete reference table built from the
// whole document (spec §4.5). It is only ever called from the second,
// resolution pass in resolve.go — never while block parsing is still under
// way — because refs must already hold every forward reference.
func parseInlineText(cfg *Config, refs ReferenceMap, text string) []Inline {
	b := &inlineBuilder{cfg: cfg, refs: refs, text: text}
	b.scan()
	b.resolveDelimiters()
	return b.out
}

// bracketMarker records a pending '[' or '![' while scanning, so a later ']'
// can attempt to resolve a link or image (spec §4.4 item 8).
type bracketMarker struct {
	textPos int // index into b.text just past the opening bracket(s)
	outIdx  int // index into b.out of the "[" / "![" placeholder Text node
	isImage bool
	active  bool // false once an enclosing link has disabled nested links
}

// delimRun records one run of '*' or '_' characters pending emphasis
// resolution (spec §4.4 item 9, CommonMark §6.2's flanking rules).
type delimRun struct {
	outIdx           int
	ch               byte
	count            int
	origCount        int
	canOpen, canClose bool
}

type delimMatch struct {
	openerOutIdx, closerOutIdx int
	used                       int // 1 (Emphasis) or 2 (Strong)
}

type inlineBuilder struct {
	cfg  *Config
	refs ReferenceMap
	text string

	out      []Inline
	brackets []*bracketMarker
	delims   []*delimRun
}

func (b *inlineBuilder) emit(kind InlineKind, v Inline) {
	if inlineIgnored(b.cfg, kind) {
		return
	}
	b.out = append(b.out, applyInlineBehavior(b.cfg, kind, v)...)
}

func (b *inlineBuilder) scan() {
	n := len(b.text)
	i := 0
	var buf strings.Builder
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		b.emit(TextKind, &Text{Value: buf.String()})
		buf.Reset()
	}

	for i < n {
		if newI, handled := b.tryCustomInlineParsers(i); handled {
			flush()
			i = newI
			continue
		}

		c := b.text[i]
		switch {
		case c == '\\' && i+1 < n && b.text[i+1] == '\n':
			flush()
			b.emit(LineBreakKind, &LineBreak{Form: HardBreak})
			i += 2

		case c == '\\' && i+1 < n && isASCIIPunct(b.text[i+1]):
			buf.WriteByte(b.text[i+1])
			i += 2

		case c == '&':
			if decoded, elen, ok := scanEntity(b.text[i:]); ok {
				buf.WriteString(decoded)
				i += elen
			} else {
				buf.WriteByte(c)
				i++
			}

		case c == '`':
			runLen := 1
			for i+runLen < n && b.text[i+runLen] == '`' {
				runLen++
			}
			if content, end, ok := findCodeSpanClose(b.text, i+runLen, runLen); ok {
				flush()
				b.emit(CodeSpanKind, &CodeSpan{Literal: normalizeCodeSpanLiteral(content)})
				i = end
			} else {
				buf.WriteString(b.text[i : i+runLen])
				i += runLen
			}

		case c == '<':
			if value, form, alen, ok := scanAutolink(b.text[i:]); ok {
				flush()
				b.emit(AutolinkKind, &Autolink{Value: value, Form: form})
				i += alen
			} else if hlen, ok := scanInlineHTML(b.text[i:]); ok {
				flush()
				b.emit(HTMLKind, &HTML{Literal: b.text[i : i+hlen]})
				i += hlen
			} else {
				buf.WriteByte(c)
				i++
			}

		case c == '\n':
			flush()
			b.emit(LineBreakKind, &LineBreak{Form: SoftBreak})
			i++

		case c == ' ' && isHardBreakSpaces(b.text, i):
			j := i
			for j < n && b.text[j] == ' ' {
				j++
			}
			if j < n && b.text[j] == '\n' {
				flush()
				b.emit(LineBreakKind, &LineBreak{Form: HardBreak})
				i = j + 1
			} else {
				buf.WriteByte(c)
				i++
			}

		case c == '[' && i+1 < n && b.text[i+1] == '^':
			if label, flen, ok := scanFootnoteReference(b.text[i:]); ok {
				flush()
				b.emit(FootnoteReferenceKind, &FootnoteReference{Label: NormalizeLabel(label)})
				i += flen
				break
			}
			flush()
			b.out = append(b.out, &Text{Value: "["})
			b.brackets = append(b.brackets, &bracketMarker{
				textPos: i + 1, outIdx: len(b.out) - 1, active: true,
			})
			i++

		case c == '!' && i+1 < n && b.text[i+1] == '[':
			flush()
			b.out = append(b.out, &Text{Value: "!["})
			b.brackets = append(b.brackets, &bracketMarker{
				textPos: i + 2, outIdx: len(b.out) - 1, isImage: true, active: true,
			})
			i += 2

		case c == '[':
			flush()
			b.out = append(b.out, &Text{Value: "["})
			b.brackets = append(b.brackets, &bracketMarker{
				textPos: i + 1, outIdx: len(b.out) - 1, active: true,
			})
			i++

		case c == ']':
			flush()
			if newI, ok := b.tryCloseBracket(i); ok {
				i = newI
			} else {
				b.out = append(b.out, &Text{Value: "]"})
				i++
			}

		case c == '*' || c == '_':
			flush()
			runLen := 1
			for i+runLen < n && b.text[i+runLen] == c {
				runLen++
			}
			before := lastRuneBefore(b.text, i)
			after := firstRuneAfter(b.text, i+runLen)
			canOpen, canClose := delimFlags(c, before, after)
			b.out = append(b.out, &Text{Value: strings.Repeat(string(c), runLen)})
			if canOpen || canClose {
				b.delims = append(b.delims, &delimRun{
					outIdx: len(b.out) - 1, ch: c, count: runLen, origCount: runLen,
					canOpen: canOpen, canClose: canClose,
				})
			}
			i += runLen

		default:
			buf.WriteByte(c)
			i++
		}
	}
	flush()
}

func (b *inlineBuilder) tryCustomInlineParsers(pos int) (newPos int, handled bool) {
	parsers := b.cfg.CustomInlineParsers()
	if len(parsers) == 0 {
		return pos, false
	}
	remaining := b.text[pos:]
	for _, parse := range parsers {
		newRemaining, value, ok := parse(remaining)
		if !ok || len(newRemaining) >= len(remaining) {
			continue
		}
		b.out = append(b.out, value)
		return pos + (len(remaining) - len(newRemaining)), true
	}
	return pos, false
}

// scanFootnoteReference recognizes "[^label]" at s[0..1]=="[^" (GFM
// footnote reference, GLOSSARY), returning the label and consumed length.
func scanFootnoteReference(s string) (label string, n int, ok bool) {
	if !strings.HasPrefix(s, "[^") {
		return "", 0, false
	}
	closeIdx := strings.IndexByte(s, ']')
	if closeIdx < 0 {
		return "", 0, false
	}
	label = s[2:closeIdx]
	if strings.TrimSpace(label) == "" {
		return "", 0, false
	}
	return label, closeIdx + 1, true
}

// isHardBreakSpaces reports whether the text at pos begins a run of two or
// more spaces immediately followed by a line ending (spec §4.4 item 7).
func isHardBreakSpaces(s string, pos int) bool {
	j := pos
	for j < len(s) && s[j] == ' ' {
		j++
	}
	return j-pos >= 2 && j < len(s) && s[j] == '\n'
}

// findCodeSpanClose scans forward from pos for a backtick run of exactly
// runLen, reporting the content between the runs and the index just past the
// closing run (spec §4.4 item 4).
func findCodeSpanClose(s string, pos, runLen int) (content string, end int, ok bool) {
	for i := pos; i < len(s); i++ {
		if s[i] != '`' {
			continue
		}
		j := i
		for j < len(s) && s[j] == '`' {
			j++
		}
		if j-i == runLen {
			return s[pos:i], j, true
		}
		i = j - 1
	}
	return "", 0, false
}

// normalizeCodeSpanLiteral applies CommonMark's code-span normalization:
// line endings become spaces, and if the content is non-empty, not all
// spaces, and both begins and ends with a space, one space is stripped from
// each end.
func normalizeCodeSpanLiteral(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	trimmed := strings.Trim(s, " ")
	if trimmed != "" && len(s) >= 2 && s[0] == ' ' && s[len(s)-1] == ' ' {
		return s[1 : len(s)-1]
	}
	return s
}

func lastRuneBefore(s string, pos int) rune {
	if pos == 0 {
		return 0
	}
	r, _ := utf8.DecodeLastRuneInString(s[:pos])
	return r
}

func firstRuneAfter(s string, pos int) rune {
	if pos >= len(s) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s[pos:])
	return r
}

// delimFlags computes can-open/can-close for a run of ch, given the runes
// immediately before and after it (0 standing in for start/end of text,
// which counts as whitespace for flanking purposes), per CommonMark §6.2.
func delimFlags(ch byte, before, after rune) (canOpen, canClose bool) {
	beforeWS := before == 0 || isUnicodeWhitespace(before)
	beforePunct := before != 0 && isUnicodePunct(before)
	afterWS := after == 0 || isUnicodeWhitespace(after)
	afterPunct := after != 0 && isUnicodePunct(after)

	leftFlank := !afterWS && (!afterPunct || beforeWS || beforePunct)
	rightFlank := !beforeWS && (!beforePunct || afterWS || afterPunct)

	if ch == '_' {
		canOpen = leftFlank && (!rightFlank || beforePunct)
		canClose = rightFlank && (!leftFlank || afterPunct)
	} else {
		canOpen = leftFlank
		canClose = rightFlank
	}
	return canOpen, canClose
}

// resolveDelimiters matches emphasis/strong delimiter runs left to right
// (spec §4.4 item 9), then rebuilds b.out with the matched ranges nested
// into [Emphasis] and [Strong] nodes.
//
// This is the textbook backward-scan variant of cmark's process_emphasis:
// for each closer, search backward for the nearest usable opener of the
// same character, honoring the "rule of 3". It omits cmark's active-
// delimiter-stack bookkeeping (an optimization, not a correctness
// requirement) and, for the rare case of one delimiter run pairing with two
// different partners at different counts, only tracks reuse when both
// matches share the same opener and closer (covers "***text***"); a
// differing-partner reuse is left unresolved as plain literal delimiter
// text, documented in DESIGN.md as an accepted simplification.
func (b *inlineBuilder) resolveDelimiters() {
	var matches []delimMatch
	for ci := range b.delims {
		closer := b.delims[ci]
		for closer.canClose && closer.count > 0 {
			oi := -1
			for j := ci - 1; j >= 0; j-- {
				opener := b.delims[j]
				if !opener.canOpen || opener.count <= 0 || opener.ch != closer.ch {
					continue
				}
				if (opener.canClose || closer.canOpen) &&
					(opener.count+closer.count)%3 == 0 &&
					(opener.count%3 != 0 || closer.count%3 != 0) {
					continue
				}
				oi = j
				break
			}
			if oi < 0 {
				break
			}
			opener := b.delims[oi]
			used := 1
			if opener.count >= 2 && closer.count >= 2 {
				used = 2
			}
			matches = append(matches, delimMatch{
				openerOutIdx: opener.outIdx, closerOutIdx: closer.outIdx, used: used,
			})
			opener.count -= used
			closer.count -= used
			for k := oi + 1; k < ci; k++ {
				b.delims[k].canOpen = false
				b.delims[k].canClose = false
			}
		}
	}
	if len(matches) == 0 {
		return
	}

	byOpener := make(map[int][]delimMatch)
	for _, m := range matches {
		byOpener[m.openerOutIdx] = append(byOpener[m.openerOutIdx], m)
	}
	leftoverAt := make(map[int]int)
	for _, d := range b.delims {
		if d.count != d.origCount {
			leftoverAt[d.outIdx] = d.count
		}
	}

	b.out = b.buildEmphasis(0, len(b.out), byOpener, leftoverAt)
}

// buildEmphasis rebuilds out[lo:hi], wrapping every matched delimiter range
// into nested [Emphasis]/[Strong] nodes.
func (b *inlineBuilder) buildEmphasis(lo, hi int, byOpener map[int][]delimMatch, leftover map[int]int) []Inline {
	var result []Inline
	i := lo
	for i < hi {
		ms, isOpener := byOpener[i]
		if !isOpener || len(ms) == 0 {
			result = append(result, b.out[i])
			i++
			continue
		}

		first := ms[0]
		inner := b.buildEmphasis(first.openerOutIdx+1, first.closerOutIdx, byOpener, leftover)
		var node Inline
		if first.used == 2 {
			s := &Strong{Content: inner}
			b.emitInto(&result, StrongKind, s)
		} else {
			e := &Emphasis{Content: inner}
			b.emitInto(&result, EmphasisKind, e)
		}
		if len(result) > 0 {
			node = result[len(result)-1]
		}
		for _, m2 := range ms[1:] {
			if m2.closerOutIdx != first.closerOutIdx {
				// Differing-partner reuse (accepted simplification): the
				// opener characters of this pairing stay literal text.
				at := len(result)
				if node != nil {
					at--
				}
				result = insertLiteral(result, at, b.out[first.openerOutIdx], m2.used)
				continue
			}
			if node == nil {
				continue
			}
			var wrapped Inline
			if m2.used == 2 {
				wrapped = &Strong{Content: []Inline{node}}
			} else {
				wrapped = &Emphasis{Content: []Inline{node}}
			}
			if len(result) > 0 {
				result[len(result)-1] = wrapped
			}
			node = wrapped
		}

		i = first.closerOutIdx + 1
		if n, ok := leftover[first.openerOutIdx]; ok && n > 0 {
			insertAt := len(result)
			if node != nil {
				insertAt--
			}
			result = insertLiteral(result, insertAt, b.out[first.openerOutIdx], n)
		}
		if n, ok := leftover[first.closerOutIdx]; ok && n > 0 {
			result = appendLiteral(result, b.out[first.closerOutIdx], n)
		}
	}
	return result
}

func (b *inlineBuilder) emitInto(dst *[]Inline, kind InlineKind, v Inline) {
	if inlineIgnored(b.cfg, kind) {
		return
	}
	*dst = append(*dst, applyInlineBehavior(b.cfg, kind, v)...)
}

func insertLiteral(dst []Inline, at int, marker Inline, count int) []Inline {
	lit := literalOf(marker, count)
	if at < 0 || at > len(dst) {
		at = len(dst)
	}
	dst = append(dst, nil)
	copy(dst[at+1:], dst[at:])
	dst[at] = lit
	return dst
}

func appendLiteral(dst []Inline, marker Inline, count int) []Inline {
	return append(dst, literalOf(marker, count))
}

func literalOf(marker Inline, count int) Inline {
	t, _ := marker.(*Text)
	ch := byte('*')
	if t != nil && len(t.Value) > 0 {
		ch = t.Value[0]
	}
	return &Text{Value: strings.Repeat(string(ch), count)}
}

