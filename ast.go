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

// Package mdast provides a Markdown parser that produces a strongly typed
// Abstract Syntax Tree (AST), plus the closed-sum AST types themselves.
//
// The package is organized around two closed variant sets, [Block] and
// [Inline], and a single entry point, [Parse]. Everything downstream of
// Parse (rendering to HTML, Markdown, or LaTeX; walking or transforming the
// tree; assigning IDs; serializing) lives in subpackages that consume the
// AST contract described here.
package mdast

//go:generate stringer -type=BlockKind,InlineKind -output=kind_string.go

// Document is the root of a parsed Markdown document: an ordered sequence
// of top-level [Block] values.
type Document struct {
	Blocks []Block
}

// NoData is the zero-size type that names the "no user data" case.
// It realizes the "T = ()" instantiation described for the generic form
// (spec §3.6): every [Block] and [Inline] implementation stores a user-data
// slot typed `any`, and the parser never populates it, so a freshly parsed
// [Document] has a nil interface in every slot.
//
// Implementations may share one slot type across every variant rather than
// making every struct in this package generic over T; a hand-parameterized
// sum type with ~20 variants would force every caller of every constructor
// to spell out a type parameter even when they have no use for user data.
// Downstream transformers that want typed metadata (see package idassign)
// install their own values into the slot and recover them with a type
// assertion, the same shape goldmark's ast.BaseNode attribute map uses for
// the identical problem.
type NoData = struct{}

// Block is a structural element of a [Document]: a paragraph, heading,
// list, and so on. It is a closed variant set — every implementation in
// this package is unexported via the isBlock marker method, so external
// packages can switch over concrete *Paragraph, *Heading, ... types but
// cannot add new variants.
type Block interface {
	// Kind reports which concrete variant this value is.
	Kind() BlockKind
	// Data returns the node's user-data slot (see [NoData]).
	Data() any
	// SetData replaces the node's user-data slot.
	SetData(any)

	isBlock()
}

// Inline is a text-flow element of a [Block]'s content: text, emphasis, a
// link, and so on. Like [Block], it is a closed variant set.
type Inline interface {
	Kind() InlineKind
	Data() any
	SetData(any)

	isInline()
}

// BlockKind is an enumeration of values returned by [Block.Kind].
type BlockKind uint16

const (
	// ParagraphKind is used for a run of inline content (*[Paragraph]).
	ParagraphKind BlockKind = 1 + iota
	// HeadingKind is used for ATX and Setext headings (*[Heading]).
	HeadingKind
	// ThematicBreakKind is used for a thematic break, a.k.a. horizontal
	// rule (*[ThematicBreak]). It never has children.
	ThematicBreakKind
	// BlockQuoteKind is used for block quotes (*[BlockQuote]).
	BlockQuoteKind
	// ListKind is used for bullet and ordered lists (*[List]).
	ListKind
	// CodeBlockKind is used for indented and fenced code blocks
	// (*[CodeBlock]).
	CodeBlockKind
	// HTMLBlockKind is used for one of the seven kinds of raw HTML block
	// (*[HTMLBlock]).
	HTMLBlockKind
	// TableKind is used for GFM pipe tables (*[Table]).
	TableKind
	// LinkReferenceDefinitionKind is used for a link reference definition
	// (*[LinkReferenceDefinition]). The same value also populates the
	// parser-local reference table (see [Parse] and §4.5 of the
	// specification this package implements).
	LinkReferenceDefinitionKind
	// FootnoteDefinitionKind is used for a GFM footnote definition
	// (*[FootnoteDefinition]).
	FootnoteDefinitionKind
	// GitHubAlertKind is used for a GitHub-flavored alert block
	// (*[GitHubAlert]).
	GitHubAlertKind
	// EmptyKind is emitted in place of a block whose [BlockBehavior] is
	// [SkipBlock] (*[Empty]).
	EmptyKind
)

// InlineKind is an enumeration of values returned by [Inline.Kind].
type InlineKind uint16

const (
	// TextKind is used for a run of literal text (*[Text]).
	TextKind InlineKind = 1 + iota
	// EmphasisKind is used for emphasized content (*[Emphasis]).
	EmphasisKind
	// StrongKind is used for strongly emphasized content (*[Strong]).
	StrongKind
	// CodeSpanKind is used for an inline code span (*[CodeSpan]).
	CodeSpanKind
	// LinkKind is used for a link, resolved or shortcut (*[Link]).
	LinkKind
	// ImageKind is used for an image reference (*[Image]).
	ImageKind
	// AutolinkKind is used for a URI or email autolink (*[Autolink]).
	AutolinkKind
	// HTMLKind is used for raw inline HTML, a tag or a comment (*[HTML]).
	HTMLKind
	// LineBreakKind is used for a soft or hard line break (*[LineBreak]).
	LineBreakKind
	// FootnoteReferenceKind is used for a GFM footnote reference
	// (*[FootnoteReference]).
	FootnoteReferenceKind
)
