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
	"html"
	"strings"
)

// scanEntity recognizes a named or numeric HTML character reference
// starting at s[0] == '&' (spec §4.4 item 3), returning its decoded text
// and byte length. Named entities and decimal/hex numeric references are
// both handled by [html.UnescapeString], which implements the same table
// the HTML5 spec (and CommonMark's entity list) is drawn from; rather than
// hand-porting that table, this package leans on the standard library the
// way the teacher's own html.go does for escaping in the other direction.
func scanEntity(s string) (decoded string, n int, ok bool) {
	if len(s) < 3 || s[0] != '&' {
		return "", 0, false
	}
	end := strings.IndexByte(s, ';')
	if end < 0 || end > 32 {
		return "", 0, false
	}
	candidate := s[:end+1]
	unescaped := html.UnescapeString(candidate)
	if unescaped == candidate {
		return "", 0, false
	}
	return unescaped, len(candidate), true
}
