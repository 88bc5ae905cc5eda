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

// Package html renders a parsed [mdast.Document] to HTML.
package html

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/atom"

	"github.com/emberglade/mdast"
)

// A Renderer converts a fully parsed [mdast.Document] into HTML.
//
// # Security considerations
//
// CommonMark permits the use of raw HTML, which can introduce Cross-Site
// Scripting (XSS) vulnerabilities when used with untrusted input. Set
// IgnoreRaw to drop raw HTML and HTML blocks entirely, or set FilterTag to
// escape specific tag names while still showing their source text (see
// [FilterTagGFM]). Neither option is a substitute for running the output
// through an HTML sanitizer when the input is untrusted.
type Renderer struct {
	// SoftBreakBehavior determines how soft line breaks are rendered.
	SoftBreakBehavior SoftBreakBehavior
	// IgnoreRaw, if true, drops HTML blocks and raw inline HTML entirely.
	IgnoreRaw bool
	// FilterTag, if non-nil, reports whether an element with the given
	// lowercased tag name should have its leading angle bracket escaped
	// instead of rendered. FilterTag must not modify or retain tag.
	FilterTag func(tag []byte) bool
}

// SoftBreakBehavior enumerates rendering styles for soft line breaks.
type SoftBreakBehavior int

const (
	// SoftBreakPreserve renders a soft line break as a newline.
	SoftBreakPreserve SoftBreakBehavior = iota
	// SoftBreakSpace renders a soft line break as a single space.
	SoftBreakSpace
	// SoftBreakHarden renders a soft line break as a hard line break.
	SoftBreakHarden
)

// Render writes doc to w as HTML using the default [Renderer] options.
func Render(w io.Writer, doc *mdast.Document) error {
	return (&Renderer{}).Render(w, doc)
}

// Render writes doc to w as HTML.
func (r *Renderer) Render(w io.Writer, doc *mdast.Document) error {
	s := &state{Renderer: r}
	s.document(doc)
	if _, err := w.Write(s.dst); err != nil {
		return fmt.Errorf("render markdown to html: %w", err)
	}
	return nil
}

// RenderString renders doc to an HTML string using the default [Renderer]
// options.
func RenderString(doc *mdast.Document) string {
	s := &state{Renderer: &Renderer{}}
	s.document(doc)
	return string(s.dst)
}

// document renders every top-level block, then appends a footnotes section
// (GFM convention) for any [mdast.FootnoteDefinition] found at the top
// level, since spec.md names the footnote AST shape but not its rendered
// placement (see DESIGN.md).
func (s *state) document(doc *mdast.Document) {
	s.blocks(doc.Blocks, false)
	var footnotes []*mdast.FootnoteDefinition
	for _, b := range doc.Blocks {
		if fn, ok := b.(*mdast.FootnoteDefinition); ok {
			footnotes = append(footnotes, fn)
		}
	}
	if len(footnotes) == 0 {
		return
	}
	s.dst = append(s.dst, "\n"...)
	s.openTagAttr(atom.Section)
	s.dst = append(s.dst, ` class="footnotes"><ol>`...)
	for _, fn := range footnotes {
		id := footnoteID(fn.Label)
		s.dst = append(s.dst, `<li id="fn`...)
		s.dst = append(s.dst, id...)
		s.dst = append(s.dst, `">`...)
		s.blocks(fn.Content, false)
		s.dst = append(s.dst, ` <a href="#fnref`...)
		s.dst = append(s.dst, id...)
		s.dst = append(s.dst, `">↩</a></li>`...)
	}
	s.dst = append(s.dst, "</ol>"...)
	s.closeTag(atom.Section)
}

type state struct {
	*Renderer
	dst      []byte
	lowerBuf []byte
}

func (s *state) openTagAttr(name atom.Atom) {
	start := len(s.dst)
	s.dst = append(s.dst, '<')
	s.dst = append(s.dst, name.String()...)
	if s.FilterTag != nil && s.FilterTag(s.dst[start+1:]) {
		s.dst = s.dst[:start]
		s.dst = append(s.dst, "&lt;"...)
		s.dst = append(s.dst, name.String()...)
	}
}

func (s *state) openTag(name atom.Atom) {
	s.openTagAttr(name)
	s.dst = append(s.dst, '>')
}

func (s *state) closeTag(name atom.Atom) {
	start := len(s.dst)
	s.dst = append(s.dst, "</"...)
	s.dst = append(s.dst, name.String()...)
	if s.FilterTag != nil && s.FilterTag(s.dst[start+2:]) {
		s.dst = s.dst[:start]
		s.dst = append(s.dst, "&lt;/"...)
		s.dst = append(s.dst, name.String()...)
	}
	s.dst = append(s.dst, '>')
}

func (s *state) blocks(blocks []mdast.Block, tight bool) {
	for i, b := range blocks {
		if tight {
			if p, ok := b.(*mdast.Paragraph); ok {
				s.inlines(p.Content)
				continue
			}
		}
		if i > 0 {
			s.dst = append(s.dst, '\n')
		}
		s.block(b)
	}
}

func (s *state) block(block mdast.Block) {
	switch b := block.(type) {
	case *mdast.Paragraph:
		s.openTag(atom.P)
		s.inlines(b.Content)
		s.closeTag(atom.P)
	case *mdast.ThematicBreak:
		s.openTag(atom.Hr)
	case *mdast.Heading:
		tag := headingTag(b.Form.Level())
		s.openTag(tag)
		s.inlines(b.Content)
		s.closeTag(tag)
	case *mdast.CodeBlock:
		s.openTag(atom.Pre)
		s.openTagAttr(atom.Code)
		if b.Form.IsFenced() && b.Form.InfoString() != "" {
			words := strings.Fields(b.Form.InfoString())
			if len(words) > 0 {
				s.dst = append(s.dst, ` class="language-`...)
				s.dst = append(s.dst, html.EscapeString(words[0])...)
				s.dst = append(s.dst, `"`...)
			}
		}
		s.dst = append(s.dst, '>')
		s.dst = escapeHTML(s.dst, []byte(b.Literal))
		s.closeTag(atom.Code)
		s.closeTag(atom.Pre)
	case *mdast.HTMLBlock:
		if !s.IgnoreRaw {
			if s.FilterTag == nil {
				s.dst = append(s.dst, b.Literal...)
			} else {
				s.filterRaw([]byte(b.Literal))
			}
		}
	case *mdast.LinkReferenceDefinition:
		// Produces no visible output; recorded in the reference map.
	case *mdast.BlockQuote:
		s.openTag(atom.Blockquote)
		s.blocks(b.Content, false)
		s.closeTag(atom.Blockquote)
	case *mdast.List:
		s.list(b)
	case *mdast.Table:
		s.table(b)
	case *mdast.FootnoteDefinition:
		// Rendered out-of-line in the footnotes section that document
		// appends; a bare block() call on a footnote definition renders
		// nothing.
	case *mdast.GitHubAlert:
		s.alert(b)
	case *mdast.Empty:
		// Nothing to render.
	}
}

func headingTag(level int) atom.Atom {
	switch level {
	case 1:
		return atom.H1
	case 2:
		return atom.H2
	case 3:
		return atom.H3
	case 4:
		return atom.H4
	case 5:
		return atom.H5
	default:
		return atom.H6
	}
}

func (s *state) list(l *mdast.List) {
	var tag atom.Atom
	if l.Form.IsOrdered() {
		tag = atom.Ol
		s.openTagAttr(tag)
		if l.Form.Start() != 1 {
			s.dst = append(s.dst, ` start="`...)
			s.dst = strconv.AppendUint(s.dst, l.Form.Start(), 10)
			s.dst = append(s.dst, `"`...)
		}
		s.dst = append(s.dst, '>')
	} else {
		tag = atom.Ul
		s.openTag(tag)
	}
	for _, item := range l.Items {
		s.dst = append(s.dst, '\n')
		s.openTagAttr(atom.Li)
		if item.TaskState != mdast.NoTask {
			s.dst = append(s.dst, ` class="task-list-item"`...)
		}
		s.dst = append(s.dst, '>')
		if item.TaskState != mdast.NoTask {
			s.dst = append(s.dst, `<input type="checkbox" disabled="" class="task-list-item-checkbox"`...)
			if item.TaskState == mdast.TaskChecked {
				s.dst = append(s.dst, ` checked=""`...)
			}
			s.dst = append(s.dst, "> "...)
		}
		s.blocks(item.Content, l.Tight)
		s.closeTag(atom.Li)
	}
	s.dst = append(s.dst, '\n')
	s.closeTag(tag)
}

func (s *state) table(t *mdast.Table) {
	s.openTag(atom.Table)
	s.dst = append(s.dst, '\n')
	s.openTag(atom.Thead)
	s.openTag(atom.Tr)
	for i, cell := range t.Header {
		s.tableCell(atom.Th, cell, alignOf(t.Alignments, i))
	}
	s.closeTag(atom.Tr)
	s.closeTag(atom.Thead)
	s.dst = append(s.dst, '\n')
	if len(t.Rows) > 0 {
		s.openTag(atom.Tbody)
		for _, row := range t.Rows {
			s.openTag(atom.Tr)
			for i, cell := range row {
				s.tableCell(atom.Td, cell, alignOf(t.Alignments, i))
			}
			s.closeTag(atom.Tr)
		}
		s.closeTag(atom.Tbody)
		s.dst = append(s.dst, '\n')
	}
	s.closeTag(atom.Table)
}

func alignOf(aligns []mdast.Alignment, i int) mdast.Alignment {
	if i < 0 || i >= len(aligns) {
		return mdast.AlignNone
	}
	return aligns[i]
}

func (s *state) tableCell(tag atom.Atom, cell mdast.TableCell, align mdast.Alignment) {
	switch align {
	case mdast.AlignLeft:
		s.openTagAttr(tag)
		s.dst = append(s.dst, ` style="text-align: left"`...)
		s.dst = append(s.dst, '>')
	case mdast.AlignCenter:
		s.openTagAttr(tag)
		s.dst = append(s.dst, ` style="text-align: center"`...)
		s.dst = append(s.dst, '>')
	case mdast.AlignRight:
		s.openTagAttr(tag)
		s.dst = append(s.dst, ` style="text-align: right"`...)
		s.dst = append(s.dst, '>')
	default:
		s.openTag(tag)
	}
	s.inlines([]mdast.Inline(cell))
	s.closeTag(tag)
}

var alertClass = map[mdast.AlertKind]string{
	mdast.AlertNote:      "note",
	mdast.AlertTip:       "tip",
	mdast.AlertImportant: "important",
	mdast.AlertWarning:   "warning",
	mdast.AlertCaution:   "caution",
}

var alertTitle = map[mdast.AlertKind]string{
	mdast.AlertNote:      "Note",
	mdast.AlertTip:       "Tip",
	mdast.AlertImportant: "Important",
	mdast.AlertWarning:   "Warning",
	mdast.AlertCaution:   "Caution",
}

// alert renders GitHub's "markdown-alert" div structure, since spec.md names
// the alert kinds but not their HTML shape (see DESIGN.md).
func (s *state) alert(a *mdast.GitHubAlert) {
	class := alertClass[a.AlertKind]
	s.dst = append(s.dst, `<div class="markdown-alert markdown-alert-`...)
	s.dst = append(s.dst, class...)
	s.dst = append(s.dst, `">`...)
	s.dst = append(s.dst, "\n"...)
	s.dst = append(s.dst, `<p class="markdown-alert-title">`...)
	s.dst = append(s.dst, alertTitle[a.AlertKind]...)
	s.dst = append(s.dst, "</p>\n"...)
	s.blocks(a.Content, false)
	s.dst = append(s.dst, "\n</div>"...)
}

func (s *state) inlines(inlines []mdast.Inline) {
	for _, in := range inlines {
		s.inline(in)
	}
}

func (s *state) inline(in mdast.Inline) {
	switch v := in.(type) {
	case *mdast.Text:
		s.dst = escapeHTML(s.dst, []byte(v.Value))
	case *mdast.CodeSpan:
		s.openTag(atom.Code)
		s.dst = escapeHTML(s.dst, []byte(v.Literal))
		s.closeTag(atom.Code)
	case *mdast.Emphasis:
		s.openTag(atom.Em)
		s.inlines(v.Content)
		s.closeTag(atom.Em)
	case *mdast.Strong:
		s.openTag(atom.Strong)
		s.inlines(v.Content)
		s.closeTag(atom.Strong)
	case *mdast.Link:
		s.openTagAttr(atom.A)
		s.dst = append(s.dst, ` href="`...)
		s.dst = append(s.dst, html.EscapeString(NormalizeURI(v.Destination))...)
		s.dst = append(s.dst, `"`...)
		if v.Title != nil {
			s.dst = append(s.dst, ` title="`...)
			s.dst = append(s.dst, html.EscapeString(*v.Title)...)
			s.dst = append(s.dst, `"`...)
		}
		s.dst = append(s.dst, '>')
		s.inlines(v.Content)
		s.closeTag(atom.A)
	case *mdast.Image:
		s.openTagAttr(atom.Img)
		s.dst = append(s.dst, ` src="`...)
		s.dst = append(s.dst, html.EscapeString(NormalizeURI(v.Destination))...)
		s.dst = append(s.dst, `"`...)
		if v.Title != nil {
			s.dst = append(s.dst, ` title="`...)
			s.dst = append(s.dst, html.EscapeString(*v.Title)...)
			s.dst = append(s.dst, `"`...)
		}
		s.dst = appendAltText(s.dst, v.Alt)
		s.dst = append(s.dst, '>')
	case *mdast.Autolink:
		s.openTagAttr(atom.A)
		s.dst = append(s.dst, ` href="`...)
		if v.Form == mdast.EmailAutolink {
			s.dst = append(s.dst, "mailto:"...)
		}
		s.dst = append(s.dst, html.EscapeString(NormalizeURI(v.Value))...)
		s.dst = append(s.dst, `">`...)
		s.dst = append(s.dst, html.EscapeString(v.Value)...)
		s.closeTag(atom.A)
	case *mdast.HTML:
		if !s.IgnoreRaw {
			if s.FilterTag == nil {
				s.dst = append(s.dst, v.Literal...)
			} else {
				s.filterRaw([]byte(v.Literal))
			}
		}
	case *mdast.LineBreak:
		switch v.Form {
		case mdast.HardBreak:
			s.dst = append(s.dst, "<br>\n"...)
		default:
			switch s.SoftBreakBehavior {
			case SoftBreakHarden:
				s.dst = append(s.dst, "<br>\n"...)
			case SoftBreakSpace:
				s.dst = append(s.dst, ' ')
			default:
				s.dst = append(s.dst, '\n')
			}
		}
	case *mdast.FootnoteReference:
		// GFM convention: fnref<label> links to fn<label>. The visible text
		// is the label itself: the renderer has no document-wide numbering
		// pass and does not read node user data.
		id := footnoteID(v.Label)
		s.dst = append(s.dst, `<sup id="fnref`...)
		s.dst = append(s.dst, id...)
		s.dst = append(s.dst, `"><a href="#fn`...)
		s.dst = append(s.dst, id...)
		s.dst = append(s.dst, `">`...)
		s.dst = append(s.dst, html.EscapeString(v.Label)...)
		s.dst = append(s.dst, `</a></sup>`...)
	}
}

func footnoteID(label string) string {
	return html.EscapeString(mdast.NormalizeLabel(label))
}

func appendAltText(dst []byte, content []mdast.Inline) []byte {
	dst = append(dst, ` alt="`...)
	var walk func([]mdast.Inline)
	walk = func(inlines []mdast.Inline) {
		for _, in := range inlines {
			switch v := in.(type) {
			case *mdast.Text:
				dst = append(dst, html.EscapeString(v.Value)...)
			case *mdast.LineBreak:
				dst = append(dst, ' ')
			case *mdast.Emphasis:
				walk(v.Content)
			case *mdast.Strong:
				walk(v.Content)
			case *mdast.Link:
				walk(v.Content)
			case *mdast.Image:
				walk(v.Alt)
			case *mdast.CodeSpan:
				dst = append(dst, html.EscapeString(v.Literal)...)
			}
		}
	}
	walk(content)
	dst = append(dst, `"`...)
	return dst
}

// escapeHTML appends the HTML-escaped version of src to dst.
func escapeHTML(dst []byte, src []byte) []byte {
	verbatimStart := 0
	for i := 0; i < len(src); i++ {
		var esc string
		switch src[i] {
		case '&':
			esc = "&amp;"
		case '\'':
			esc = "&#39;"
		case '<':
			esc = "&lt;"
		case '>':
			esc = "&gt;"
		case '"':
			esc = "&quot;"
		default:
			continue
		}
		dst = append(dst, src[verbatimStart:i]...)
		dst = append(dst, esc...)
		verbatimStart = i + 1
	}
	if verbatimStart < len(src) {
		dst = append(dst, src[verbatimStart:]...)
	}
	return dst
}

// FilterTagGFM implements the GFM disallowed-raw-html-extension tag filter.
// It is suitable for use as [Renderer.FilterTag].
func FilterTagGFM(tag []byte) bool {
	tagAtom := atom.Lookup(tag)
	return tagAtom == atom.Title ||
		tagAtom == atom.Textarea ||
		tagAtom == atom.Style ||
		tagAtom == atom.Xmp ||
		tagAtom == atom.Iframe ||
		tagAtom == atom.Noembed ||
		tagAtom == atom.Noframes ||
		tagAtom == atom.Script ||
		tagAtom == atom.Plaintext
}
