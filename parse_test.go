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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var cmpOpts = cmp.Options{
	cmpopts.IgnoreFields(Paragraph{}, "base"),
	cmpopts.IgnoreFields(Text{}, "base"),
}

func TestParseParagraph(t *testing.T) {
	doc, perr := Parse(NewConfig(), "Hello, world!\n")
	if perr != nil {
		t.Fatal(perr)
	}
	want := []Block{
		&Paragraph{Content: []Inline{&Text{Value: "Hello, world!"}}},
	}
	if diff := cmp.Diff(want, doc.Blocks, cmpOpts); diff != "" {
		t.Errorf("Parse(...).Blocks (-want +got):\n%s", diff)
	}
}

func TestParseATXHeading(t *testing.T) {
	tests := []struct {
		input string
		level int
	}{
		{"# foo\n", 1},
		{"## foo\n", 2},
		{"###### foo\n", 6},
		{"####### foo\n", 0}, // seven #s is not a heading; falls back to a paragraph
	}
	for _, test := range tests {
		doc, perr := Parse(NewConfig(), test.input)
		if perr != nil {
			t.Fatalf("Parse(%q): %v", test.input, perr)
		}
		if len(doc.Blocks) != 1 {
			t.Fatalf("Parse(%q): got %d blocks; want 1", test.input, len(doc.Blocks))
		}
		h, ok := doc.Blocks[0].(*Heading)
		if test.level == 0 {
			if ok {
				t.Errorf("Parse(%q): got *Heading; want *Paragraph", test.input)
			}
			continue
		}
		if !ok {
			t.Fatalf("Parse(%q): got %T; want *Heading", test.input, doc.Blocks[0])
		}
		if h.Form.Variant() != ATXHeading || h.Form.Level() != test.level {
			t.Errorf("Parse(%q) level = %d; want %d", test.input, h.Form.Level(), test.level)
		}
	}
}

func TestParseSetextHeading(t *testing.T) {
	doc, perr := Parse(NewConfig(), "Foo\n===\n")
	if perr != nil {
		t.Fatal(perr)
	}
	if len(doc.Blocks) != 1 {
		t.Fatalf("got %d blocks; want 1", len(doc.Blocks))
	}
	h, ok := doc.Blocks[0].(*Heading)
	if !ok || h.Form.Variant() != SetextHeading || h.Form.Level() != 1 {
		t.Fatalf("got %#v; want a level-1 Setext heading", doc.Blocks[0])
	}
}

func TestParseThematicBreak(t *testing.T) {
	for _, input := range []string{"---\n", "***\n", "___\n", "- - -\n"} {
		doc, perr := Parse(NewConfig(), input)
		if perr != nil {
			t.Fatalf("Parse(%q): %v", input, perr)
		}
		if len(doc.Blocks) != 1 {
			t.Fatalf("Parse(%q): got %d blocks; want 1", input, len(doc.Blocks))
		}
		if _, ok := doc.Blocks[0].(*ThematicBreak); !ok {
			t.Errorf("Parse(%q): got %T; want *ThematicBreak", input, doc.Blocks[0])
		}
	}
}

func TestParseBlockQuote(t *testing.T) {
	doc, perr := Parse(NewConfig(), "> foo\n> bar\n")
	if perr != nil {
		t.Fatal(perr)
	}
	if len(doc.Blocks) != 1 {
		t.Fatalf("got %d blocks; want 1", len(doc.Blocks))
	}
	bq, ok := doc.Blocks[0].(*BlockQuote)
	if !ok {
		t.Fatalf("got %T; want *BlockQuote", doc.Blocks[0])
	}
	if len(bq.Content) != 1 {
		t.Fatalf("got %d blocks inside quote; want 1", len(bq.Content))
	}
	p, ok := bq.Content[0].(*Paragraph)
	if !ok {
		t.Fatalf("got %T; want *Paragraph", bq.Content[0])
	}
	if len(p.Content) != 3 {
		t.Fatalf("quote content = %#v; want Text, soft LineBreak, Text", p.Content)
	}
	first, ok1 := p.Content[0].(*Text)
	lb, ok2 := p.Content[1].(*LineBreak)
	second, ok3 := p.Content[2].(*Text)
	if !ok1 || !ok2 || !ok3 || first.Value != "foo" || lb.Form != SoftBreak || second.Value != "bar" {
		t.Errorf("quote content = %#v; want \"foo\", soft break, \"bar\"", p.Content)
	}
}

func TestParseFencedCodeBlock(t *testing.T) {
	doc, perr := Parse(NewConfig(), "```go\nfmt.Println(1)\n```\n")
	if perr != nil {
		t.Fatal(perr)
	}
	cb, ok := doc.Blocks[0].(*CodeBlock)
	if !ok {
		t.Fatalf("got %T; want *CodeBlock", doc.Blocks[0])
	}
	if !cb.Form.IsFenced() || cb.Form.InfoString() != "go" {
		t.Errorf("fenced = %v, info = %q; want true, \"go\"", cb.Form.IsFenced(), cb.Form.InfoString())
	}
	if cb.Literal != "fmt.Println(1)\n" {
		t.Errorf("Literal = %q", cb.Literal)
	}
}

func TestParseBulletList(t *testing.T) {
	doc, perr := Parse(NewConfig(), "- a\n- b\n- c\n")
	if perr != nil {
		t.Fatal(perr)
	}
	l, ok := doc.Blocks[0].(*List)
	if !ok {
		t.Fatalf("got %T; want *List", doc.Blocks[0])
	}
	if l.Form.IsOrdered() {
		t.Error("list is ordered; want bullet")
	}
	if !l.Tight {
		t.Error("list is loose; want tight")
	}
	if len(l.Items) != 3 {
		t.Fatalf("got %d items; want 3", len(l.Items))
	}
}

func TestParseOrderedList(t *testing.T) {
	doc, perr := Parse(NewConfig(), "3. a\n4. b\n")
	if perr != nil {
		t.Fatal(perr)
	}
	l, ok := doc.Blocks[0].(*List)
	if !ok || !l.Form.IsOrdered() || l.Form.Start() != 3 {
		t.Fatalf("got %#v; want ordered list starting at 3", doc.Blocks[0])
	}
}

func TestParseInlineEmphasis(t *testing.T) {
	doc, perr := Parse(NewConfig(), "*a* **b** `c`\n")
	if perr != nil {
		t.Fatal(perr)
	}
	p, ok := doc.Blocks[0].(*Paragraph)
	if !ok {
		t.Fatalf("got %T; want *Paragraph", doc.Blocks[0])
	}
	var kinds []InlineKind
	for _, in := range p.Content {
		kinds = append(kinds, in.Kind())
	}
	want := []InlineKind{EmphasisKind, TextKind, StrongKind, TextKind, CodeSpanKind}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("inline kinds (-want +got):\n%s", diff)
	}
}

func TestParseLink(t *testing.T) {
	doc, perr := Parse(NewConfig(), `[text](/dest "title")`+"\n")
	if perr != nil {
		t.Fatal(perr)
	}
	p := doc.Blocks[0].(*Paragraph)
	link, ok := p.Content[0].(*Link)
	if !ok {
		t.Fatalf("got %T; want *Link", p.Content[0])
	}
	if link.Destination != "/dest" {
		t.Errorf("Destination = %q; want /dest", link.Destination)
	}
	if link.Title == nil || *link.Title != "title" {
		t.Errorf("Title = %v; want \"title\"", link.Title)
	}
}

func TestParseLinkReference(t *testing.T) {
	doc, perr := Parse(NewConfig(), "[text][ref]\n\n[ref]: /dest \"title\"\n")
	if perr != nil {
		t.Fatal(perr)
	}
	p, ok := doc.Blocks[0].(*Paragraph)
	if !ok {
		t.Fatalf("got %T as first block; want *Paragraph", doc.Blocks[0])
	}
	link, ok := p.Content[0].(*Link)
	if !ok || link.Destination != "/dest" {
		t.Fatalf("got %#v; want a resolved link to /dest", p.Content[0])
	}
}

func TestParseUnresolvedReferenceIsLiteral(t *testing.T) {
	doc, perr := Parse(NewConfig(), "[text][nope]\n")
	if perr != nil {
		t.Fatal(perr)
	}
	p := doc.Blocks[0].(*Paragraph)
	for _, in := range p.Content {
		if _, ok := in.(*Link); ok {
			t.Fatalf("got a *Link for an unresolved reference: %#v", p.Content)
		}
	}
}

func TestParseNeverFails(t *testing.T) {
	// Per spec §7, the built-in grammar is total: malformed input is
	// absorbed as literal text, never rejected.
	inputs := []string{
		"",
		"\x00",
		"<<<<<<<<<<<<<<<<",
		"[[[[[[[[[[[[[[[[",
		"****************",
		strings.Repeat("#", 200) + "\n",
	}
	for _, input := range inputs {
		if _, perr := Parse(NewConfig(), input); perr != nil {
			t.Errorf("Parse(%q) returned error: %v", input, perr)
		}
	}
}
