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

// parseLinkDestinationAndTitle parses the shared "dest [title]" syntax used
// by both link reference definitions (spec §4.3 alt. 7) and inline links
// (spec §4.4 item 8), starting at s[0]. It reports how many bytes of s were
// consumed and whether the syntax was well-formed.
func parseLinkDestinationAndTitle(s string) (dest string, title *string, n int, ok bool) {
	dest, n, ok = parseLinkDestination(s)
	if !ok {
		return "", nil, 0, false
	}
	rest := s[n:]
	trimmed := strings.TrimLeft(rest, " \t\n")
	skipped := len(rest) - len(trimmed)
	if skipped == 0 {
		return dest, nil, n, true
	}
	if trimmed == "" {
		return dest, nil, n, true
	}
	switch trimmed[0] {
	case '"', '\'':
		t, tn, tok := parseQuotedTitle(trimmed, trimmed[0])
		if !tok {
			return dest, nil, n, true
		}
		return dest, &t, n + skipped + tn, true
	case '(':
		t, tn, tok := parseQuotedTitle(trimmed, ')')
		if !tok {
			return dest, nil, n, true
		}
		return dest, &t, n + skipped + tn, true
	default:
		return dest, nil, n, true
	}
}

// parseLinkDestination parses either a "<...>" bracketed destination or a
// bare destination (balanced parens, no unescaped spaces or controls).
func parseLinkDestination(s string) (dest string, n int, ok bool) {
	if s == "" {
		return "", 0, false
	}
	if s[0] == '<' {
		var sb strings.Builder
		for i := 1; i < len(s); i++ {
			switch s[i] {
			case '>':
				return sb.String(), i + 1, true
			case '\\':
				if i+1 < len(s) && isASCIIPunct(s[i+1]) {
					sb.WriteByte(s[i+1])
					i++
					continue
				}
				sb.WriteByte(s[i])
			case '<', '\n':
				return "", 0, false
			default:
				sb.WriteByte(s[i])
			}
		}
		return "", 0, false
	}

	var sb strings.Builder
	depth := 0
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && isASCIIPunct(s[i+1]):
			sb.WriteByte(s[i+1])
			i += 2
			continue
		case c == '(':
			depth++
			sb.WriteByte(c)
		case c == ')':
			if depth == 0 {
				return sb.String(), i, true
			}
			depth--
			sb.WriteByte(c)
		case c <= ' ':
			return sb.String(), i, true
		default:
			sb.WriteByte(c)
		}
		i++
	}
	if depth != 0 {
		return "", 0, false
	}
	return sb.String(), i, true
}

// parseQuotedTitle parses a title delimited by close (the matching close
// character: '"', '\'', or ')'); s[0] is the opening delimiter.
func parseQuotedTitle(s string, close byte) (title string, n int, ok bool) {
	if s == "" {
		return "", 0, false
	}
	var sb strings.Builder
	for i := 1; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && isASCIIPunct(s[i+1]):
			sb.WriteByte(s[i+1])
			i++
		case s[i] == close:
			return sb.String(), i + 1, true
		default:
			sb.WriteByte(s[i])
		}
	}
	return "", 0, false
}
