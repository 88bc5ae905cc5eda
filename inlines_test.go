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

func TestAutolinkFormString(t *testing.T) {
	if got := URIAutolink.String(); got != "URI" {
		t.Errorf("URIAutolink.String() = %q; want URI", got)
	}
	if got := EmailAutolink.String(); got != "Email" {
		t.Errorf("EmailAutolink.String() = %q; want Email", got)
	}
}

func TestBreakFormString(t *testing.T) {
	if got := SoftBreak.String(); got != "Soft" {
		t.Errorf("SoftBreak.String() = %q; want Soft", got)
	}
	if got := HardBreak.String(); got != "Hard" {
		t.Errorf("HardBreak.String() = %q; want Hard", got)
	}
}

func TestParseAutolink(t *testing.T) {
	doc, perr := Parse(NewConfig(), "<https://example.com>\n")
	if perr != nil {
		t.Fatal(perr)
	}
	p := doc.Blocks[0].(*Paragraph)
	a, ok := p.Content[0].(*Autolink)
	if !ok || a.Form != URIAutolink || a.Value != "https://example.com" {
		t.Fatalf("got %#v; want a URI autolink", p.Content[0])
	}
}

func TestParseEmailAutolink(t *testing.T) {
	doc, perr := Parse(NewConfig(), "<foo@bar.example.com>\n")
	if perr != nil {
		t.Fatal(perr)
	}
	p := doc.Blocks[0].(*Paragraph)
	a, ok := p.Content[0].(*Autolink)
	if !ok || a.Form != EmailAutolink {
		t.Fatalf("got %#v; want an email autolink", p.Content[0])
	}
}

func TestParseHardLineBreak(t *testing.T) {
	doc, perr := Parse(NewConfig(), "foo  \nbar\n")
	if perr != nil {
		t.Fatal(perr)
	}
	p := doc.Blocks[0].(*Paragraph)
	var found bool
	for _, in := range p.Content {
		if lb, ok := in.(*LineBreak); ok && lb.Form == HardBreak {
			found = true
		}
	}
	if !found {
		t.Errorf("no hard line break found in %#v", p.Content)
	}
}

func TestParseImage(t *testing.T) {
	doc, perr := Parse(NewConfig(), `![alt](/img.png "t")`+"\n")
	if perr != nil {
		t.Fatal(perr)
	}
	p := doc.Blocks[0].(*Paragraph)
	img, ok := p.Content[0].(*Image)
	if !ok || img.Destination != "/img.png" {
		t.Fatalf("got %#v; want an image to /img.png", p.Content[0])
	}
	if len(img.Alt) != 1 || img.Alt[0].(*Text).Value != "alt" {
		t.Errorf("Alt = %#v; want [Text{\"alt\"}]", img.Alt)
	}
}
