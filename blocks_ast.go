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

// base is embedded by every [Block] and [Inline] implementation to supply
// the shared user-data slot (spec §3.6) without repeating the three
// trivial methods (Data, SetData, the marker method) on every variant.
type base struct {
	data any
}

func (b *base) Data() any     { return b.data }
func (b *base) SetData(d any) { b.data = d }

// Paragraph is a run of inline content (spec §3.2).
type Paragraph struct {
	base
	Content []Inline
}

func (*Paragraph) isBlock()        {}
func (*Paragraph) Kind() BlockKind { return ParagraphKind }

// HeadingVariant distinguishes an ATX heading ("# Title") from a Setext
// heading (a paragraph underlined with "===" or "---").
type HeadingVariant uint8

const (
	// ATXHeading is used for "#"-prefixed headings, levels 1 through 6.
	ATXHeading HeadingVariant = 1 + iota
	// SetextHeading is used for underlined headings, levels 1 and 2.
	SetextHeading
)

func (v HeadingVariant) String() string {
	switch v {
	case ATXHeading:
		return "ATX"
	case SetextHeading:
		return "Setext"
	default:
		return "HeadingVariant(0)"
	}
}

// HeadingForm is a Heading's sum-typed kind field: an ATX heading carries
// a level in [1, 6], a Setext heading a level in [1, 2] (spec §3.4).
type HeadingForm struct {
	variant HeadingVariant
	level   int
}

// ATX returns the form for an ATX heading of the given level (1 through 6).
func ATX(level int) HeadingForm { return HeadingForm{ATXHeading, level} }

// Setext returns the form for a Setext heading of the given level (1 or 2).
func Setext(level int) HeadingForm { return HeadingForm{SetextHeading, level} }

// Variant reports whether this is an ATX or Setext heading.
func (f HeadingForm) Variant() HeadingVariant { return f.variant }

// Level returns the heading's 1-based level.
func (f HeadingForm) Level() int { return f.level }

// Heading is an ATX or Setext heading (spec §3.2).
type Heading struct {
	base
	Form    HeadingForm
	Content []Inline
}

func (*Heading) isBlock()        {}
func (*Heading) Kind() BlockKind { return HeadingKind }

// ThematicBreak is a horizontal rule; it never has children (spec §3.2).
type ThematicBreak struct {
	base
}

func (*ThematicBreak) isBlock()        {}
func (*ThematicBreak) Kind() BlockKind { return ThematicBreakKind }

// BlockQuote is an ordered sequence of child blocks (spec §3.2).
type BlockQuote struct {
	base
	Content []Block
}

func (*BlockQuote) isBlock()        {}
func (*BlockQuote) Kind() BlockKind { return BlockQuoteKind }

// ListDelimiter is the punctuation that follows an ordered list marker's
// digits ("1." vs "1)").
type ListDelimiter byte

const (
	DotDelimiter   ListDelimiter = '.'
	ParenDelimiter ListDelimiter = ')'
)

// ListForm is a List's sum-typed kind field: a bullet list carries its
// marker character, an ordered list its start number and delimiter
// (spec §3.2).
type ListForm struct {
	ordered bool
	marker  byte
	start   uint64
	delim   ListDelimiter
}

// Bullet returns the form for a bullet list using the given marker
// character ('-', '+', or '*').
func Bullet(marker byte) ListForm { return ListForm{marker: marker} }

// Ordered returns the form for an ordered list starting at start and using
// the given delimiter.
func Ordered(start uint64, delim ListDelimiter) ListForm {
	return ListForm{ordered: true, start: start, delim: delim}
}

// IsOrdered reports whether the list is ordered.
func (f ListForm) IsOrdered() bool { return f.ordered }

// Marker returns the bullet marker character; valid only if !IsOrdered().
func (f ListForm) Marker() byte { return f.marker }

// Start returns the ordered list's starting number; valid only if
// IsOrdered().
func (f ListForm) Start() uint64 { return f.start }

// Delimiter returns the ordered list's delimiter; valid only if
// IsOrdered().
func (f ListForm) Delimiter() ListDelimiter { return f.delim }

// TaskState is the checkbox state of a GFM task-list item.
type TaskState uint8

const (
	// NoTask means the item is not a task-list item.
	NoTask TaskState = iota
	// TaskUnchecked means the item is an unchecked task ("[ ]").
	TaskUnchecked
	// TaskChecked means the item is a checked task ("[x]").
	TaskChecked
)

// ListItem is one entry of a [List] (spec §3.2).
type ListItem struct {
	base
	Content   []Block
	TaskState TaskState
}

// List is a bullet or ordered list (spec §3.2). Per spec §3.4, it is tight
// if and only if no two items (or an item's own children) are separated by
// a blank line; the Tight field is authoritative even though a tight
// list's items still record Paragraph blocks in Content (renderers decide
// whether to strip the paragraph wrapper).
type List struct {
	base
	Form  ListForm
	Tight bool
	Items []*ListItem
}

func (*List) isBlock()        {}
func (*List) Kind() BlockKind { return ListKind }

// CodeBlockForm is a CodeBlock's sum-typed kind field: indented or fenced,
// the latter carrying an info string (spec §3.2).
type CodeBlockForm struct {
	fenced bool
	info   string
}

// Indented returns the form for a 4-space indented code block.
func Indented() CodeBlockForm { return CodeBlockForm{} }

// Fenced returns the form for a fenced code block with the given info
// string (the text after the opening fence, e.g. a language name).
func Fenced(info string) CodeBlockForm { return CodeBlockForm{fenced: true, info: info} }

// IsFenced reports whether the code block used a fence rather than
// indentation.
func (f CodeBlockForm) IsFenced() bool { return f.fenced }

// InfoString returns the fence's info string; valid only if IsFenced().
func (f CodeBlockForm) InfoString() string { return f.info }

// CodeBlock is an indented or fenced code block (spec §3.2).
type CodeBlock struct {
	base
	Form    CodeBlockForm
	Literal string
}

func (*CodeBlock) isBlock()        {}
func (*CodeBlock) Kind() BlockKind { return CodeBlockKind }

// HTMLBlock is verbatim HTML text, one of the seven CommonMark HTML block
// start conditions (spec §3.2, §4.3 rule 6).
type HTMLBlock struct {
	base
	Literal string
}

func (*HTMLBlock) isBlock()        {}
func (*HTMLBlock) Kind() BlockKind { return HTMLBlockKind }

// Alignment is a table column's alignment, from the delimiter row
// (spec §3.2).
type Alignment uint8

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "None"
	}
}

// TableCell is the inline content of one table cell.
type TableCell []Inline

// TableRow is one row of a [Table]: one cell per column.
type TableRow []TableCell

// Table is a GFM pipe table (spec §3.2). Per spec §3.4, every row in Rows
// (and Header) has exactly len(Alignments) cells: shorter rows are
// right-padded with empty cells, longer rows truncated, by the parser.
type Table struct {
	base
	Alignments []Alignment
	Header     TableRow
	Rows       []TableRow
}

func (*Table) isBlock()        {}
func (*Table) Kind() BlockKind { return TableKind }

// LinkReferenceDefinition is a link reference definition (spec §3.2).
// Label is stored normalized (spec §3.4): whitespace folded to single
// spaces, trimmed, compared case-insensitively. See [NormalizeLabel].
type LinkReferenceDefinition struct {
	base
	Label       string
	Destination string
	Title       *string
}

func (*LinkReferenceDefinition) isBlock()        {}
func (*LinkReferenceDefinition) Kind() BlockKind { return LinkReferenceDefinitionKind }

// FootnoteDefinition is a GFM footnote definition (spec §3.2).
type FootnoteDefinition struct {
	base
	Label   string
	Content []Block
}

func (*FootnoteDefinition) isBlock()        {}
func (*FootnoteDefinition) Kind() BlockKind { return FootnoteDefinitionKind }

// AlertKind is the kind of a GitHub-flavored alert (spec §3.2, GLOSSARY).
type AlertKind uint8

const (
	AlertNote AlertKind = 1 + iota
	AlertTip
	AlertImportant
	AlertWarning
	AlertCaution
)

func (k AlertKind) String() string {
	switch k {
	case AlertNote:
		return "Note"
	case AlertTip:
		return "Tip"
	case AlertImportant:
		return "Important"
	case AlertWarning:
		return "Warning"
	case AlertCaution:
		return "Caution"
	default:
		return "AlertKind(0)"
	}
}

// GitHubAlert is a blockquote whose first content line is "[!KIND]"
// (spec §3.2, GLOSSARY).
type GitHubAlert struct {
	base
	AlertKind AlertKind
	Content   []Block
}

func (*GitHubAlert) isBlock()        {}
func (*GitHubAlert) Kind() BlockKind { return GitHubAlertKind }

// Empty is emitted in place of a block whose [BlockBehavior] is
// [SkipBlock] (spec §4.1).
type Empty struct {
	base
}

func (*Empty) isBlock()        {}
func (*Empty) Kind() BlockKind { return EmptyKind }
