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

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Foo", "foo"},
		{"FOO", "foo"},
		{"  Foo   Bar  ", "foo bar"},
		{"Foo\nBar", "foo bar"},
		{"foo", "foo"},
	}
	for _, test := range tests {
		if got := NormalizeLabel(test.input); got != test.want {
			t.Errorf("NormalizeLabel(%q) = %q; want %q", test.input, got, test.want)
		}
	}
}

func TestBuildReferenceMapFirstDefinitionWins(t *testing.T) {
	// Per spec §4.5, the first definition for a label wins; a later
	// duplicate still appears in the AST but has no effect on resolution.
	doc, perr := Parse(NewConfig(), "[ref]: /first\n[ref]: /second\n")
	if perr != nil {
		t.Fatal(perr)
	}
	refs := buildReferenceMap(doc.Blocks)
	if !refs.MatchReference("ref") {
		t.Fatal("MatchReference(\"ref\") = false; want true")
	}
	if got := refs["ref"].Destination; got != "/first" {
		t.Errorf("Destination = %q; want /first", got)
	}
	if len(doc.Blocks) != 2 {
		t.Errorf("got %d blocks; want both definitions to remain in the AST", len(doc.Blocks))
	}
}

func TestBuildReferenceMapNormalizesLabels(t *testing.T) {
	doc, perr := Parse(NewConfig(), "[Ref   Label]: /dest\n")
	if perr != nil {
		t.Fatal(perr)
	}
	refs := buildReferenceMap(doc.Blocks)
	if !refs.MatchReference("ref label") {
		t.Fatal("MatchReference with collapsed whitespace = false; want true")
	}
}

func TestBuildReferenceMapWalksContainers(t *testing.T) {
	doc, perr := Parse(NewConfig(), "> [ref]: /dest\n")
	if perr != nil {
		t.Fatal(perr)
	}
	refs := buildReferenceMap(doc.Blocks)
	if !refs.MatchReference("ref") {
		t.Fatal("definition inside a block quote was not collected")
	}
}

func TestMatchReferenceUnknownLabel(t *testing.T) {
	var refs ReferenceMap
	if refs.MatchReference("nope") {
		t.Error("MatchReference on an empty map = true; want false")
	}
}

func TestTwoPhaseResolutionUsesForwardReference(t *testing.T) {
	// Spec §5's two-phase resolution: link references resolve against
	// definitions appearing anywhere in the document, including after
	// the paragraph that uses them.
	doc, perr := Parse(NewConfig(), "[text][ref]\n\n[ref]: /dest \"title\"\n")
	if perr != nil {
		t.Fatal(perr)
	}
	p, ok := doc.Blocks[0].(*Paragraph)
	if !ok {
		t.Fatalf("got %T; want *Paragraph", doc.Blocks[0])
	}
	link, ok := p.Content[0].(*Link)
	if !ok || link.Destination != "/dest" {
		t.Fatalf("got %#v; want a resolved forward reference to /dest", p.Content[0])
	}
}
