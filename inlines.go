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

// Text is a run of literal text (spec §3.3).
type Text struct {
	base
	Value string
}

func (*Text) isInline()        {}
func (*Text) Kind() InlineKind { return TextKind }

// Emphasis is emphasized content (spec §3.3). Per spec §3.4, Content is
// never empty once a document has finished parsing.
type Emphasis struct {
	base
	Content []Inline
}

func (*Emphasis) isInline()        {}
func (*Emphasis) Kind() InlineKind { return EmphasisKind }

// Strong is strongly emphasized content (spec §3.3). Per spec §3.4,
// Content is never empty once a document has finished parsing.
type Strong struct {
	base
	Content []Inline
}

func (*Strong) isInline()        {}
func (*Strong) Kind() InlineKind { return StrongKind }

// CodeSpan is an inline code span (spec §3.3). Literal has already had
// CommonMark's surrounding-space normalization applied (surrounding spaces
// are stripped when the content has non-space and begins and ends with a
// space).
type CodeSpan struct {
	base
	Literal string
}

func (*CodeSpan) isInline()        {}
func (*CodeSpan) Kind() InlineKind { return CodeSpanKind }

// Link is a resolved link, whether written inline, by reference, or as a
// shortcut (spec §3.3). Title is nil when the link carries no title.
type Link struct {
	base
	Destination string
	Title       *string
	Content     []Inline
}

func (*Link) isInline()        {}
func (*Link) Kind() InlineKind { return LinkKind }

// Image is a resolved image reference (spec §3.3). Title is nil when the
// image carries no title.
type Image struct {
	base
	Destination string
	Title       *string
	Alt         []Inline
}

func (*Image) isInline()        {}
func (*Image) Kind() InlineKind { return ImageKind }

// AutolinkForm distinguishes a URI autolink from an email autolink.
type AutolinkForm uint8

const (
	URIAutolink AutolinkForm = 1 + iota
	EmailAutolink
)

func (f AutolinkForm) String() string {
	if f == EmailAutolink {
		return "Email"
	}
	return "URI"
}

// Autolink is a "<scheme:...>" URI or "<user@host>" email autolink
// (spec §3.3). Value holds the text between the angle brackets.
type Autolink struct {
	base
	Value string
	Form  AutolinkForm
}

func (*Autolink) isInline()        {}
func (*Autolink) Kind() InlineKind { return AutolinkKind }

// HTML is raw inline HTML: a tag, comment, CDATA section, processing
// instruction, or declaration (spec §3.3). Literal is the verbatim source
// text, including the angle brackets.
type HTML struct {
	base
	Literal string
}

func (*HTML) isInline()        {}
func (*HTML) Kind() InlineKind { return HTMLKind }

// BreakForm distinguishes a soft line break from a hard one.
type BreakForm uint8

const (
	SoftBreak BreakForm = 1 + iota
	HardBreak
)

func (f BreakForm) String() string {
	if f == HardBreak {
		return "Hard"
	}
	return "Soft"
}

// LineBreak is a soft or hard line break (spec §3.3).
type LineBreak struct {
	base
	Form BreakForm
}

func (*LineBreak) isInline()        {}
func (*LineBreak) Kind() InlineKind { return LineBreakKind }

// FootnoteReference is a GFM footnote reference, "[^label]" (spec §3.3).
type FootnoteReference struct {
	base
	Label string
}

func (*FootnoteReference) isInline()        {}
func (*FootnoteReference) Kind() InlineKind { return FootnoteReferenceKind }
