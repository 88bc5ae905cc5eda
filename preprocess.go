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

// tabStopSize is the multiple of columns that a tab advances to (spec §4.2).
const tabStopSize = 4

// preprocessLines splits input into the lines the block grammar operates
// on (spec §4.2): split on \n, \r, or \r\n; a trailing newline is
// synthesized if absent; a NUL byte is replaced by U+FFFD; tabs are
// expanded to spaces on a 4-column stop. The returned lines carry no line
// terminators. An empty input yields no lines.
func preprocessLines(input string) []string {
	if input == "" {
		return nil
	}
	if strings.IndexByte(input, 0) >= 0 {
		input = strings.ReplaceAll(input, "\x00", "�")
	}

	var lines []string
	start := 0
	for i := 0; i < len(input); i++ {
		switch input[i] {
		case '\n':
			lines = append(lines, expandTabs(input[start:i]))
			start = i + 1
		case '\r':
			lines = append(lines, expandTabs(input[start:i]))
			if i+1 < len(input) && input[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(input) {
		// Trailing newline synthesized: the final, unterminated line still
		// becomes a line of its own.
		lines = append(lines, expandTabs(input[start:]))
	}
	return lines
}

// expandTabs replaces each tab in line with enough spaces to reach the next
// 4-column stop, measured from the start of the line. Each character
// counts as one column: multi-byte UTF-8 continuation bytes do not advance
// the column.
func expandTabs(line string) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	var sb strings.Builder
	sb.Grow(len(line))
	col := 0
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '\t' {
			spaces := tabStopSize - col%tabStopSize
			for n := 0; n < spaces; n++ {
				sb.WriteByte(' ')
			}
			col += spaces
			continue
		}
		sb.WriteByte(c)
		if c&0xC0 != 0x80 {
			col++
		}
	}
	return sb.String()
}

// isBlankLine reports whether line contains only spaces and tabs.
func isBlankLine(line string) bool {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return false
		}
	}
	return true
}

// indentWidth returns the number of leading spaces in line (tabs have
// already been expanded to spaces by [preprocessLines]).
func indentWidth(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' {
			return i
		}
	}
	return len(line)
}

func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
