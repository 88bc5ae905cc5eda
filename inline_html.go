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

// lexHTMLTag recognizes a complete HTML tag, comment, processing
// instruction, declaration, or CDATA section (spec §4.4 item 6), starting
// at s[pos] with pos pointing just past the leading '<'. It reports the
// index just past the closing '>', or -1 on failure.
//
// This is a string-indexed rewrite of the teacher's parseHTMLTag, which
// read from a span-tagged inlineByteReader tied to its unsafe.Pointer Node
// union; the state machine itself — the per-construct branches on '?',
// '!', '/', and the default open-tag case — carries over unchanged.
func lexHTMLTag(s string, pos int) int {
	if pos >= len(s) {
		return -1
	}
	switch s[pos] {
	case '?':
		idx := strings.Index(s[pos+1:], "?>")
		if idx < 0 {
			return -1
		}
		return pos + 1 + idx + 2
	case '!':
		rest := s[pos+1:]
		switch {
		case len(rest) > 0 && isASCIILetter(rest[0]):
			idx := strings.IndexByte(rest, '>')
			if idx < 0 {
				return -1
			}
			return pos + 1 + idx + 1
		case strings.HasPrefix(rest, "--"):
			body := rest[2:]
			if strings.HasPrefix(body, ">") || strings.HasPrefix(body, "->") {
				return -1
			}
			idx := strings.Index(body, "-->")
			if idx < 0 {
				return -1
			}
			return pos + 1 + 2 + idx + 3
		case strings.HasPrefix(rest, "[CDATA["):
			body := rest[len("[CDATA["):]
			idx := strings.Index(body, "]]>")
			if idx < 0 {
				return -1
			}
			return pos + 1 + len("[CDATA[") + idx + 3
		default:
			return -1
		}
	case '/':
		return lexHTMLClosingTag(s, pos)
	default:
		return lexHTMLOpenTag(s, pos)
	}
}

// lexHTMLOpenTag parses an open tag sans the leading '<', per CommonMark's
// open-tag production.
func lexHTMLOpenTag(s string, pos int) int {
	end, ok := lexHTMLTagName(s, pos)
	if !ok {
		return -1
	}
	for {
		beforeSpace := end
		end = skipLinkSpace(s, end)
		if end >= len(s) {
			return -1
		}
		switch s[end] {
		case '/':
			end++
			if end >= len(s) || s[end] != '>' {
				return -1
			}
			return end + 1
		case '>':
			return end + 1
		}
		if end == beforeSpace {
			return -1
		}
		ae, ok := lexHTMLAttribute(s, end)
		if !ok {
			return -1
		}
		end = ae
	}
}

// lexHTMLClosingTag parses a closing tag sans the leading '<'; s[pos] must
// be '/'.
func lexHTMLClosingTag(s string, pos int) int {
	if pos >= len(s) || s[pos] != '/' {
		return -1
	}
	pos++
	end, ok := lexHTMLTagName(s, pos)
	if !ok {
		return -1
	}
	end = skipLinkSpace(s, end)
	if end >= len(s) || s[end] != '>' {
		return -1
	}
	return end + 1
}

func lexHTMLTagName(s string, pos int) (end int, ok bool) {
	if pos >= len(s) || !isASCIILetter(s[pos]) {
		return pos, false
	}
	pos++
	for pos < len(s) && (isASCIILetter(s[pos]) || isASCIIDigit(s[pos]) || s[pos] == '-') {
		pos++
	}
	return pos, true
}

func skipLinkSpace(s string, pos int) int {
	for pos < len(s) && isSpaceTabOrLineEnding(s[pos]) {
		pos++
	}
	return pos
}

func lexHTMLAttribute(s string, pos int) (end int, ok bool) {
	if pos >= len(s) {
		return pos, false
	}
	c := s[pos]
	if !isASCIILetter(c) && c != '_' && c != ':' {
		return pos, false
	}
	pos++
	for pos < len(s) {
		c := s[pos]
		if isASCIILetter(c) || isASCIIDigit(c) || strings.IndexByte("_.:-", c) >= 0 {
			pos++
			continue
		}
		break
	}

	save := pos
	pos = skipLinkSpace(s, pos)
	if pos >= len(s) || s[pos] != '=' {
		return save, true
	}
	pos++
	pos = skipLinkSpace(s, pos)
	if pos >= len(s) {
		return 0, false
	}
	switch s[pos] {
	case '\'':
		idx := strings.IndexByte(s[pos+1:], '\'')
		if idx < 0 {
			return 0, false
		}
		return pos + 1 + idx + 1, true
	case '"':
		idx := strings.IndexByte(s[pos+1:], '"')
		if idx < 0 {
			return 0, false
		}
		return pos + 1 + idx + 1, true
	default:
		start := pos
		for pos < len(s) && isUnquotedAttributeValueChar(s[pos]) {
			pos++
		}
		if pos == start {
			return 0, false
		}
		return pos, true
	}
}

func isUnquotedAttributeValueChar(c byte) bool {
	return !isSpaceTabOrLineEnding(c) && strings.IndexByte("\"'=<>`", c) < 0
}

// scanInlineHTML recognizes raw inline HTML (spec §4.4 item 6) at s[0]=='<',
// returning the consumed length.
func scanInlineHTML(s string) (n int, ok bool) {
	end := lexHTMLTag(s, 1)
	if end < 0 {
		return 0, false
	}
	return end, true
}

// scanAutolink recognizes a URI or email autolink (spec §4.4 item 5) at
// s[0]=='<', returning its inner value and consumed length.
func scanAutolink(s string) (value string, form AutolinkForm, n int, ok bool) {
	end := strings.IndexByte(s, '>')
	if end < 0 {
		return "", 0, 0, false
	}
	inner := s[1:end]
	if inner == "" {
		return "", 0, 0, false
	}
	for i := 0; i < len(inner); i++ {
		if inner[i] <= ' ' || inner[i] == '<' {
			return "", 0, 0, false
		}
	}
	if isURIAutolink(inner) {
		return inner, URIAutolink, end + 1, true
	}
	if isEmailAutolink(inner) {
		return inner, EmailAutolink, end + 1, true
	}
	return "", 0, 0, false
}

func isURIAutolink(s string) bool {
	colon := strings.IndexByte(s, ':')
	if colon < 2 || colon > 32 {
		return false
	}
	scheme := s[:colon]
	if !isASCIILetter(scheme[0]) {
		return false
	}
	for i := 1; i < len(scheme); i++ {
		c := scheme[i]
		if !isASCIILetter(c) && !isASCIIDigit(c) && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return true
}

func isEmailAutolink(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	for i := 0; i < len(local); i++ {
		c := local[i]
		if isASCIILetter(c) || isASCIIDigit(c) || strings.IndexByte(".!#$%&'*+/=?^_`{|}~-", c) >= 0 {
			continue
		}
		return false
	}
	labels := strings.Split(domain, ".")
	if len(labels) < 1 {
		return false
	}
	for _, label := range labels {
		if label == "" || len(label) > 63 {
			return false
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for i := 0; i < len(label); i++ {
			c := label[i]
			if !isASCIILetter(c) && !isASCIIDigit(c) && c != '-' {
				return false
			}
		}
	}
	return true
}
