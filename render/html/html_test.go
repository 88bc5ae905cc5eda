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

package html

import (
	"testing"

	"github.com/emberglade/mdast"
	"github.com/emberglade/mdast/internal/normhtml"
)

func TestSoftBreakBehavior(t *testing.T) {
	tests := []struct {
		name     string
		behavior SoftBreakBehavior
		input    string
		want     string
	}{
		{
			name:     "Preserve",
			behavior: SoftBreakPreserve,
			input:    "Hello\nWorld!",
			want:     "<p>Hello\nWorld!</p>",
		},
		{
			name:     "Space",
			behavior: SoftBreakSpace,
			input:    "Hello\nWorld!",
			want:     "<p>Hello World!</p>",
		},
		{
			name:     "Harden",
			behavior: SoftBreakHarden,
			input:    "Hello\nWorld!",
			want:     "<p>Hello<br>\nWorld!</p>",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			doc, perr := mdast.Parse(mdast.NewConfig(), test.input)
			if perr != nil {
				t.Fatal(perr)
			}
			r := &Renderer{SoftBreakBehavior: test.behavior}
			if got := string(mustRender(t, r, doc)); got != test.want {
				t.Errorf("output = %q; want %q", got, test.want)
			}
		})
	}
}

func TestBasicBlocks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Paragraph",
			input: "Hello, world!",
			want:  "<p>Hello, world!</p>",
		},
		{
			name:  "Heading",
			input: "# Title",
			want:  "<h1>Title</h1>",
		},
		{
			name:  "ThematicBreak",
			input: "---",
			want:  "<hr>",
		},
		{
			name:  "Emphasis",
			input: "*a* **b**",
			want:  "<p><em>a</em> <strong>b</strong></p>",
		},
		{
			name:  "Link",
			input: "[a](b)",
			want:  `<p><a href="b">a</a></p>`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			doc, perr := mdast.Parse(mdast.NewConfig(), test.input)
			if perr != nil {
				t.Fatal(perr)
			}
			if got := RenderString(doc); got != test.want {
				t.Errorf("RenderString(%q) = %q; want %q", test.input, got, test.want)
			}
		})
	}
}

// TestAttributeOrderInsignificant renders a table cell whose attribute
// output order isn't worth pinning down in the test itself; the
// comparison goes through [normhtml.NormalizeHTML] (sorted attributes,
// collapsed whitespace) the way the CommonMark spec suite compares
// rendered HTML, rather than a brittle exact string match.
func TestAttributeOrderInsignificant(t *testing.T) {
	input := "| a | b |\n| :-- | --: |\n| 1 | 2 |\n"
	doc, perr := mdast.Parse(mdast.NewConfig(), input)
	if perr != nil {
		t.Fatal(perr)
	}
	got := normhtml.NormalizeHTML([]byte(RenderString(doc)))
	want := normhtml.NormalizeHTML([]byte(
		`<table><thead><tr><th style="text-align: left">a</th>` +
			`<th style="text-align: right">b</th></tr></thead>` +
			`<tbody><tr><td style="text-align: left">1</td>` +
			`<td style="text-align: right">2</td></tr></tbody></table>`))
	if string(got) != string(want) {
		t.Errorf("normalized output =\n%s\nwant\n%s", got, want)
	}
}

// TestAlertClassTokenOrderInsignificant exercises normhtml's GFM-specific
// extension directly: render/html's alert div carries two space-separated
// class tokens whose order carries no CSS meaning, so a byte-for-byte diff
// against a reordered-but-equivalent class value must still normalize equal.
func TestAlertClassTokenOrderInsignificant(t *testing.T) {
	doc, perr := mdast.Parse(mdast.NewConfig(), "> [!WARNING]\n> be careful\n")
	if perr != nil {
		t.Fatal(perr)
	}
	got := normhtml.NormalizeHTML([]byte(RenderString(doc)))
	want := normhtml.NormalizeHTML([]byte(
		`<div class="markdown-alert-warning markdown-alert">` +
			`<p class="markdown-alert-title">Warning</p>` +
			`<p>be careful</p></div>`))
	if string(got) != string(want) {
		t.Errorf("normalized output =\n%s\nwant\n%s", got, want)
	}
}

// TestTaskListItemClassNormalizes exercises the same extension against the
// single-token `task-list-item` class, which must be left unchanged by
// normalizeClass's no-op fast path for fewer than two tokens.
func TestTaskListItemClassNormalizes(t *testing.T) {
	doc, perr := mdast.Parse(mdast.NewConfig(), "- [x] done\n")
	if perr != nil {
		t.Fatal(perr)
	}
	got := normhtml.NormalizeHTML([]byte(RenderString(doc)))
	want := normhtml.NormalizeHTML([]byte(
		`<ul><li class="task-list-item">` +
			`<input type="checkbox" disabled="" class="task-list-item-checkbox" checked=""> done</li></ul>`))
	if string(got) != string(want) {
		t.Errorf("normalized output =\n%s\nwant\n%s", got, want)
	}
}

func mustRender(t *testing.T, r *Renderer, doc *mdast.Document) []byte {
	t.Helper()
	var buf []byte
	w := bytesWriter{&buf}
	if err := r.Render(w, doc); err != nil {
		t.Fatal(err)
	}
	return buf
}

type bytesWriter struct {
	buf *[]byte
}

func (w bytesWriter) Write(p []byte) (int, error) {
	*w.buf = append(*w.buf, p...)
	return len(p), nil
}
