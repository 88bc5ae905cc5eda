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

func TestIgnoreBlockFallsThrough(t *testing.T) {
	// "- - -" matches both the thematic break alternative and a bullet
	// list item (marker "-", content "- -"). Ignoring ThematicBreak
	// should make the parser backtrack to the next alternative in
	// builtinBlockRecognizers and recognize it as a list instead (spec
	// §4.1's backtrack-to-next-alternative rule).
	cfg := NewConfig(WithBlockBehavior(ThematicBreakKind, IgnoreBlock()))
	doc, perr := Parse(cfg, "- - -\n")
	if perr != nil {
		t.Fatal(perr)
	}
	l, ok := doc.Blocks[0].(*List)
	if !ok {
		t.Fatalf("got %#v; want a *List", doc.Blocks[0])
	}
	if l.Form.IsOrdered() || l.Form.Marker() != '-' {
		t.Errorf("list form = %+v; want bullet marker '-'", l.Form)
	}

	// Without the ignore, the same input is a thematic break.
	doc2, perr2 := Parse(NewConfig(), "- - -\n")
	if perr2 != nil {
		t.Fatal(perr2)
	}
	if _, ok := doc2.Blocks[0].(*ThematicBreak); !ok {
		t.Fatalf("got %T; want *ThematicBreak by default", doc2.Blocks[0])
	}
}

func TestSkipBlockEmitsEmpty(t *testing.T) {
	cfg := NewConfig(WithBlockBehavior(ThematicBreakKind, SkipBlock()))
	doc, perr := Parse(cfg, "---\n")
	if perr != nil {
		t.Fatal(perr)
	}
	if _, ok := doc.Blocks[0].(*Empty); !ok {
		t.Fatalf("got %T; want *Empty", doc.Blocks[0])
	}
}

func TestMapBlockReplaces(t *testing.T) {
	cfg := NewConfig(WithBlockBehavior(ThematicBreakKind, MapBlock(func(b Block) Block {
		return &HTMLBlock{Literal: "<hr/>\n"}
	})))
	doc, perr := Parse(cfg, "---\n")
	if perr != nil {
		t.Fatal(perr)
	}
	hb, ok := doc.Blocks[0].(*HTMLBlock)
	if !ok || hb.Literal != "<hr/>\n" {
		t.Fatalf("got %#v; want *HTMLBlock{\"<hr/>\\n\"}", doc.Blocks[0])
	}
}

func TestFlatMapBlockSplices(t *testing.T) {
	cfg := NewConfig(WithBlockBehavior(ThematicBreakKind, FlatMapBlock(func(b Block) []Block {
		return []Block{b, b}
	})))
	doc, perr := Parse(cfg, "---\n")
	if perr != nil {
		t.Fatal(perr)
	}
	if len(doc.Blocks) != 2 {
		t.Fatalf("got %d blocks; want 2", len(doc.Blocks))
	}
}

func TestSkipInlineDropsElement(t *testing.T) {
	cfg := NewConfig(WithInlineBehavior(EmphasisKind, SkipInline()))
	doc, perr := Parse(cfg, "a *b* c\n")
	if perr != nil {
		t.Fatal(perr)
	}
	p := doc.Blocks[0].(*Paragraph)
	for _, in := range p.Content {
		if in.Kind() == EmphasisKind {
			t.Fatalf("found an Emphasis after SkipInline: %#v", p.Content)
		}
	}
}

func TestCustomBlockParser(t *testing.T) {
	marker := func(remaining string) (string, Block, bool) {
		const prefix = ":::note\n"
		if len(remaining) < len(prefix) || remaining[:len(prefix)] != prefix {
			return remaining, nil, false
		}
		return remaining[len(prefix):], &HTMLBlock{Literal: "<div class=note>"}, true
	}
	cfg := NewConfig(WithCustomBlockParser(marker))
	doc, perr := Parse(cfg, ":::note\nfoo\n")
	if perr != nil {
		t.Fatal(perr)
	}
	hb, ok := doc.Blocks[0].(*HTMLBlock)
	if !ok || hb.Literal != "<div class=note>" {
		t.Fatalf("got %#v; want the custom block first", doc.Blocks[0])
	}
}

func TestDefaultBehaviorsAreParse(t *testing.T) {
	cfg := NewConfig()
	if cfg.BlockBehavior(ParagraphKind).Tag() != parseTag {
		t.Error("default BlockBehavior is not ParseBlock")
	}
	if cfg.InlineBehavior(TextKind).Tag() != parseTag {
		t.Error("default InlineBehavior is not ParseInline")
	}
}
