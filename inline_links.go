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

// tryCloseBracket handles a ']' encountered while scanning, attempting to
// pair it with the nearest active bracket marker and resolve a link or
// image (spec §4.4 item 8): inline "(dest title)", full/collapsed/shortcut
// reference forms consulting b.refs. On success it splices the matched
// range of b.out into a single [Link] or [Image] node and reports the index
// just past whatever syntax was consumed from b.text. On failure, the
// caller falls back to treating ']' as literal text.
func (b *inlineBuilder) tryCloseBracket(pos int) (newPos int, ok bool) {
	idx := b.lastActiveBracket()
	if idx < 0 {
		return pos, false
	}
	mark := b.brackets[idx]
	b.brackets = b.brackets[:idx]

	labelText := b.text[mark.textPos:pos]
	content := append([]Inline(nil), b.out[mark.outIdx+1:]...)
	after := pos + 1

	dest, title, consumed, matched := b.resolveLinkTail(after, labelText)
	if !matched {
		return pos, false
	}
	if mark.isImage {
		b.out = b.out[:mark.outIdx]
		b.emit(ImageKind, &Image{Destination: dest, Title: title, Alt: content})
	} else {
		b.out = b.out[:mark.outIdx]
		b.emit(LinkKind, &Link{Destination: dest, Title: title, Content: content})
		b.deactivateBracketsBefore(idx)
	}
	return after + consumed, true
}

func (b *inlineBuilder) lastActiveBracket() int {
	for i := len(b.brackets) - 1; i >= 0; i-- {
		if b.brackets[i].active {
			return i
		}
	}
	return -1
}

func (b *inlineBuilder) deactivateBracketsBefore(idx int) {
	for i := 0; i < idx && i < len(b.brackets); i++ {
		if !b.brackets[i].isImage {
			b.brackets[i].active = false
		}
	}
}

// resolveLinkTail inspects text starting just past a ']' for the inline,
// full/collapsed reference, or shortcut reference forms, consulting label as
// the literal bracket contents for the reference forms.
func (b *inlineBuilder) resolveLinkTail(pos int, label string) (dest string, title *string, consumed int, ok bool) {
	rest := b.text[pos:]

	if strings.HasPrefix(rest, "(") {
		inner := rest[1:]
		trimmed := strings.TrimLeft(inner, " \t\n")
		skipped := len(inner) - len(trimmed)
		if strings.HasPrefix(trimmed, ")") {
			return "", nil, 1 + skipped + 1, true
		}
		if dest, title, n, ok := parseLinkDestinationAndTitle(trimmed); ok {
			after := trimmed[n:]
			closeTrim := strings.TrimLeft(after, " \t\n")
			if strings.HasPrefix(closeTrim, ")") {
				total := 1 + skipped + n + (len(after) - len(closeTrim)) + 1
				return dest, title, total, true
			}
		}
	}

	if strings.HasPrefix(rest, "[") {
		closeIdx := strings.IndexByte(rest, ']')
		if closeIdx >= 0 {
			refLabel := rest[1:closeIdx]
			if refLabel == "" {
				refLabel = label
			}
			if def, found := b.refs[NormalizeLabel(refLabel)]; found {
				return def.Destination, def.Title, closeIdx + 1, true
			}
			return "", nil, 0, false
		}
	}

	if def, found := b.refs[NormalizeLabel(label)]; found {
		return def.Destination, def.Title, 0, true
	}
	return "", nil, 0, false
}
