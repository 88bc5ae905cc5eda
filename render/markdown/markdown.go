// Copyright 2024 Ross Light
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

// Package markdown re-serializes a parsed [mdast.Document] back to
// CommonMark/GFM source text.
package markdown

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emberglade/mdast"
)

// Format writes doc to w as Markdown source.
//
// Grounded on the teacher's format/format.go Format function: a recursive
// walk over the block tree, re-emitting each block kind's own punctuation,
// with blank lines inserted between sibling blocks.
func Format(w io.Writer, doc *mdast.Document) error {
	ww := &errWriter{w: w}
	formatBlocks(ww, doc.Blocks, 0)
	return ww.err
}

// FormatString renders doc to a Markdown string.
func FormatString(doc *mdast.Document) string {
	var buf bytes.Buffer
	Format(&buf, doc)
	return buf.String()
}

func formatBlocks(w *errWriter, blocks []mdast.Block, indent int) {
	for i, b := range blocks {
		if i > 0 {
			w.WriteString("\n")
		}
		formatBlock(w, b, indent)
	}
}

func formatBlock(w *errWriter, block mdast.Block, indent int) {
	switch b := block.(type) {
	case *mdast.Paragraph:
		formatInlines(w, b.Content, indent)
		w.WriteString("\n")
	case *mdast.ThematicBreak:
		w.WriteString("---\n")
	case *mdast.Heading:
		switch b.Form.Variant() {
		case mdast.SetextHeading:
			formatInlines(w, b.Content, indent)
			if b.Form.Level() == 1 {
				w.WriteString("===\n")
			} else {
				w.WriteString("---\n")
			}
		default:
			w.WriteString(strings.Repeat("#", b.Form.Level()))
			w.WriteString(" ")
			formatInlines(w, b.Content, indent)
		}
	case *mdast.CodeBlock:
		formatCodeBlock(w, b, indent)
	case *mdast.HTMLBlock:
		indentedWrite(w, indent, []byte(b.Literal))
		if !strings.HasSuffix(b.Literal, "\n") {
			w.WriteString("\n")
		}
	case *mdast.BlockQuote:
		formatQuoted(w, b.Content, indent, "> ")
	case *mdast.GitHubAlert:
		w.WriteString("> [!")
		w.WriteString(strings.ToUpper(b.AlertKind.String()))
		w.WriteString("]\n")
		formatQuoted(w, b.Content, indent, "> ")
	case *mdast.List:
		formatList(w, b, indent)
	case *mdast.Table:
		formatTable(w, b, indent)
	case *mdast.LinkReferenceDefinition:
		w.WriteString("[")
		w.WriteString(b.Label)
		w.WriteString("]: ")
		w.WriteString(b.Destination)
		if b.Title != nil {
			w.WriteString(` "`)
			w.WriteString(*b.Title)
			w.WriteString(`"`)
		}
		w.WriteString("\n")
	case *mdast.FootnoteDefinition:
		w.WriteString("[^")
		w.WriteString(b.Label)
		w.WriteString("]:\n")
		formatQuoted(w, b.Content, indent, "    ")
	case *mdast.Empty:
		// Nothing to emit.
	default:
		w.err = fmt.Errorf("format markdown: unhandled block kind %T", block)
	}
}

func formatQuoted(w *errWriter, blocks []mdast.Block, indent int, prefix string) {
	var buf bytes.Buffer
	inner := &errWriter{w: &buf}
	formatBlocks(inner, blocks, indent)
	if inner.err != nil {
		w.err = inner.err
		return
	}
	lines := strings.SplitAfter(buf.String(), "\n")
	for _, line := range lines {
		if line == "" {
			continue
		}
		w.WriteString(prefix)
		w.WriteString(line)
	}
}

func formatCodeBlock(w *errWriter, b *mdast.CodeBlock, indent int) {
	if b.Form.IsFenced() {
		w.WriteString("```")
		w.WriteString(b.Form.InfoString())
		w.WriteString("\n")
		indentedWrite(w, indent, []byte(b.Literal))
		if !strings.HasSuffix(b.Literal, "\n") {
			w.WriteString("\n")
		}
		w.WriteString("```\n")
		return
	}
	for _, line := range strings.SplitAfter(b.Literal, "\n") {
		if line == "" {
			continue
		}
		w.WriteString("    ")
		w.WriteString(line)
	}
}

func formatList(w *errWriter, l *mdast.List, indent int) {
	for i, item := range l.Items {
		if i > 0 && !l.Tight {
			w.WriteString("\n")
		}
		var marker string
		if l.Form.IsOrdered() {
			marker = strconv.FormatUint(l.Form.Start()+uint64(i), 10) + string(l.Form.Delimiter())
		} else {
			marker = string(l.Form.Marker())
		}
		w.WriteString(marker)
		w.WriteString(" ")
		if item.TaskState != mdast.NoTask {
			if item.TaskState == mdast.TaskChecked {
				w.WriteString("[x] ")
			} else {
				w.WriteString("[ ] ")
			}
		}
		itemIndent := indent + len(marker) + 1
		var buf bytes.Buffer
		inner := &errWriter{w: &buf}
		formatBlocks(inner, item.Content, itemIndent)
		if inner.err != nil {
			w.err = inner.err
			return
		}
		content := buf.String()
		lines := strings.SplitAfter(content, "\n")
		for j, line := range lines {
			if line == "" {
				continue
			}
			if j > 0 {
				w.WriteString(strings.Repeat(" ", len(marker)+1))
			}
			w.WriteString(line)
		}
	}
}

func formatTable(w *errWriter, t *mdast.Table, indent int) {
	formatTableRow(w, t.Header)
	w.WriteString("|")
	for _, align := range t.Alignments {
		switch align {
		case mdast.AlignLeft:
			w.WriteString(" :--- |")
		case mdast.AlignCenter:
			w.WriteString(" :---: |")
		case mdast.AlignRight:
			w.WriteString(" ---: |")
		default:
			w.WriteString(" --- |")
		}
	}
	w.WriteString("\n")
	for _, row := range t.Rows {
		formatTableRow(w, row)
	}
}

func formatTableRow(w *errWriter, row mdast.TableRow) {
	w.WriteString("|")
	for _, cell := range row {
		w.WriteString(" ")
		formatInlineSeq(w, []mdast.Inline(cell), 0)
		w.WriteString(" |")
	}
	w.WriteString("\n")
}

// formatInlines renders a block-level inline sequence (a paragraph or
// heading's content), always followed by a newline.
func formatInlines(w *errWriter, inlines []mdast.Inline, indent int) {
	formatInlineSeq(w, inlines, indent)
	w.WriteString("\n")
}

func formatInlineSeq(w *errWriter, inlines []mdast.Inline, indent int) {
	for _, in := range inlines {
		formatInline(w, in, indent)
	}
}

func formatInline(w *errWriter, in mdast.Inline, indent int) {
	switch v := in.(type) {
	case *mdast.Text:
		indentedWrite(w, indent, []byte(v.Value))
	case *mdast.Emphasis:
		w.WriteString("*")
		for _, c := range v.Content {
			formatInline(w, c, indent)
		}
		w.WriteString("*")
	case *mdast.Strong:
		w.WriteString("**")
		for _, c := range v.Content {
			formatInline(w, c, indent)
		}
		w.WriteString("**")
	case *mdast.CodeSpan:
		fence := codeSpanFence(v.Literal)
		w.WriteString(fence)
		w.WriteString(v.Literal)
		w.WriteString(fence)
	case *mdast.Link:
		w.WriteString("[")
		for _, c := range v.Content {
			formatInline(w, c, indent)
		}
		w.WriteString("](")
		w.WriteString(v.Destination)
		if v.Title != nil {
			w.WriteString(` "`)
			w.WriteString(*v.Title)
			w.WriteString(`"`)
		}
		w.WriteString(")")
	case *mdast.Image:
		w.WriteString("![")
		for _, c := range v.Alt {
			formatInline(w, c, indent)
		}
		w.WriteString("](")
		w.WriteString(v.Destination)
		if v.Title != nil {
			w.WriteString(` "`)
			w.WriteString(*v.Title)
			w.WriteString(`"`)
		}
		w.WriteString(")")
	case *mdast.Autolink:
		w.WriteString("<")
		w.WriteString(v.Value)
		w.WriteString(">")
	case *mdast.HTML:
		w.WriteString(v.Literal)
	case *mdast.LineBreak:
		if v.Form == mdast.HardBreak {
			w.WriteString("  \n")
		} else {
			w.WriteString("\n")
		}
	case *mdast.FootnoteReference:
		w.WriteString("[^")
		w.WriteString(v.Label)
		w.WriteString("]")
	}
}

// codeSpanFence picks a backtick run longer than any run already present in
// literal, per CommonMark's code-span delimiter rule.
func codeSpanFence(literal string) string {
	longest := 0
	run := 0
	for i := 0; i < len(literal); i++ {
		if literal[i] == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return strings.Repeat("`", longest+1)
}

func indentedWrite(w *errWriter, indent int, p []byte) {
	for {
		i := bytes.IndexByte(p, '\n')
		if i == -1 {
			break
		}
		w.Write(p[:i+1])
		w.WriteString(strings.Repeat(" ", indent))
		p = p[i+1:]
	}
	w.Write(p)
}

// errWriter is grounded on the teacher's format/format.go errWriter: wraps
// an io.Writer so every call site can ignore errors until the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = w.w.Write(p)
	return n, w.err
}

func (w *errWriter) WriteString(s string) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = io.WriteString(w.w, s)
	return n, w.err
}
