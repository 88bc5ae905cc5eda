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

import "testing"

func TestParseTable(t *testing.T) {
	doc, perr := Parse(NewConfig(), "| a | b |\n| :-- | --: |\n| 1 | 2 |\n")
	if perr != nil {
		t.Fatal(perr)
	}
	tb, ok := doc.Blocks[0].(*Table)
	if !ok {
		t.Fatalf("got %T; want *Table", doc.Blocks[0])
	}
	if len(tb.Alignments) != 2 || tb.Alignments[0] != AlignLeft || tb.Alignments[1] != AlignRight {
		t.Errorf("Alignments = %v; want [Left Right]", tb.Alignments)
	}
	if len(tb.Header) != 2 {
		t.Fatalf("got %d header cells; want 2", len(tb.Header))
	}
	if len(tb.Rows) != 1 || len(tb.Rows[0]) != 2 {
		t.Fatalf("got %#v; want one data row of 2 cells", tb.Rows)
	}
}

func TestParseTableEscapedPipe(t *testing.T) {
	doc, perr := Parse(NewConfig(), "| a\\|b | c |\n| --- | --- |\n")
	if perr != nil {
		t.Fatal(perr)
	}
	tb := doc.Blocks[0].(*Table)
	text, ok := tb.Header[0][0].(*Text)
	if !ok || text.Value != "a|b" {
		t.Errorf("got %#v; want an unescaped \"a|b\" cell", tb.Header[0])
	}
}

func TestParseFootnoteDefinition(t *testing.T) {
	doc, perr := Parse(NewConfig(), "[^1]: footnote text\n")
	if perr != nil {
		t.Fatal(perr)
	}
	fd, ok := doc.Blocks[0].(*FootnoteDefinition)
	if !ok || fd.Label != "1" {
		t.Fatalf("got %#v; want a footnote definition labeled \"1\"", doc.Blocks[0])
	}
}

func TestParseFootnoteDefinitionContinuation(t *testing.T) {
	doc, perr := Parse(NewConfig(), "[^1]: first line\n\n    second paragraph\n")
	if perr != nil {
		t.Fatal(perr)
	}
	fd, ok := doc.Blocks[0].(*FootnoteDefinition)
	if !ok {
		t.Fatalf("got %T; want *FootnoteDefinition", doc.Blocks[0])
	}
	if len(fd.Content) != 2 {
		t.Errorf("got %d blocks in footnote; want 2 (two paragraphs)", len(fd.Content))
	}
}

func TestParseFootnoteReference(t *testing.T) {
	doc, perr := Parse(NewConfig(), "see[^1]\n\n[^1]: note\n")
	if perr != nil {
		t.Fatal(perr)
	}
	p, ok := doc.Blocks[0].(*Paragraph)
	if !ok {
		t.Fatalf("got %T; want *Paragraph", doc.Blocks[0])
	}
	var found bool
	for _, in := range p.Content {
		if fr, ok := in.(*FootnoteReference); ok && fr.Label == "1" {
			found = true
		}
	}
	if !found {
		t.Errorf("no footnote reference found in %#v", p.Content)
	}
}

func TestParseGitHubAlert(t *testing.T) {
	doc, perr := Parse(NewConfig(), "> [!WARNING]\n> be careful\n")
	if perr != nil {
		t.Fatal(perr)
	}
	a, ok := doc.Blocks[0].(*GitHubAlert)
	if !ok || a.AlertKind != AlertWarning {
		t.Fatalf("got %#v; want a Warning alert", doc.Blocks[0])
	}
}

func TestParseOrdinaryBlockQuoteIsNotAlert(t *testing.T) {
	doc, perr := Parse(NewConfig(), "> just a quote\n")
	if perr != nil {
		t.Fatal(perr)
	}
	if _, ok := doc.Blocks[0].(*GitHubAlert); ok {
		t.Fatalf("got *GitHubAlert for a plain block quote: %#v", doc.Blocks[0])
	}
	if _, ok := doc.Blocks[0].(*BlockQuote); !ok {
		t.Fatalf("got %T; want *BlockQuote", doc.Blocks[0])
	}
}

func TestParseTaskList(t *testing.T) {
	doc, perr := Parse(NewConfig(), "- [ ] todo\n- [x] done\n- not a task\n")
	if perr != nil {
		t.Fatal(perr)
	}
	l, ok := doc.Blocks[0].(*List)
	if !ok || len(l.Items) != 3 {
		t.Fatalf("got %#v; want a 3-item list", doc.Blocks[0])
	}
	want := []TaskState{TaskUnchecked, TaskChecked, NoTask}
	for i, w := range want {
		if l.Items[i].TaskState != w {
			t.Errorf("item %d TaskState = %v; want %v", i, l.Items[i].TaskState, w)
		}
	}
}
