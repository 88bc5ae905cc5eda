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

// Package latex renders a parsed [mdast.Document] to LaTeX source.
//
// The teacher has no LaTeX output; this package is grounded stylistically on
// [render/html]'s switch-over-concrete-type tree walk, applied to LaTeX's
// own escaping and markup rules.
package latex

import (
	"fmt"
	"io"
	"strings"

	"github.com/emberglade/mdast"
)

// CodeStyle selects how code blocks are rendered.
type CodeStyle int

const (
	// Verbatim renders code blocks with the verbatim environment.
	Verbatim CodeStyle = iota
	// Listings renders code blocks with the listings package, including the
	// info string as a language tag.
	Listings
)

// TableStyle selects how tables are rendered.
type TableStyle int

const (
	// Tabular renders tables with the tabular environment.
	Tabular TableStyle = iota
	// Longtable renders tables with the longtable package, for tables that
	// may span multiple pages.
	Longtable
)

// A Renderer converts a fully parsed [mdast.Document] into LaTeX source.
type Renderer struct {
	// CodeStyle selects the code-block environment.
	CodeStyle CodeStyle
	// TableStyle selects the table environment.
	TableStyle TableStyle
}

// Render writes doc to w as LaTeX using the default [Renderer] options.
func Render(w io.Writer, doc *mdast.Document) error {
	return (&Renderer{}).Render(w, doc)
}

// Render writes doc to w as LaTeX.
func (r *Renderer) Render(w io.Writer, doc *mdast.Document) error {
	s := &state{Renderer: r}
	s.document(doc)
	if _, err := w.Write(s.dst); err != nil {
		return fmt.Errorf("render markdown to latex: %w", err)
	}
	return nil
}

// RenderString renders doc to a LaTeX string using the default [Renderer]
// options.
func RenderString(doc *mdast.Document) string {
	s := &state{Renderer: &Renderer{}}
	s.document(doc)
	return string(s.dst)
}

// document renders every top-level block, then any top-level footnote
// definitions as \footnotetext entries, mirroring render/html's footnotes
// section.
func (s *state) document(doc *mdast.Document) {
	s.blocks(doc.Blocks)
	for _, b := range doc.Blocks {
		fn, ok := b.(*mdast.FootnoteDefinition)
		if !ok {
			continue
		}
		s.dst = append(s.dst, "\n\\footnotetext["...)
		s.dst = append(s.dst, escapeLaTeX(fn.Label)...)
		s.dst = append(s.dst, "]{"...)
		s.blocks(fn.Content)
		s.dst = append(s.dst, '}')
	}
}

type state struct {
	*Renderer
	dst []byte
}

func (s *state) blocks(blocks []mdast.Block) {
	for i, b := range blocks {
		if i > 0 {
			s.dst = append(s.dst, "\n\n"...)
		}
		s.block(b)
	}
}

var headingCmd = [...]string{
	1: "section", 2: "subsection", 3: "subsubsection",
	4: "paragraph", 5: "subparagraph", 6: "subparagraph",
}

func (s *state) block(block mdast.Block) {
	switch b := block.(type) {
	case *mdast.Paragraph:
		s.inlines(b.Content)
	case *mdast.ThematicBreak:
		s.dst = append(s.dst, `\noindent\rule{\textwidth}{0.4pt}`...)
	case *mdast.Heading:
		level := b.Form.Level()
		if level < 1 || level > 6 {
			level = 6
		}
		s.dst = append(s.dst, '\\')
		s.dst = append(s.dst, headingCmd[level]...)
		s.dst = append(s.dst, '{')
		s.inlines(b.Content)
		s.dst = append(s.dst, '}')
	case *mdast.CodeBlock:
		s.codeBlock(b)
	case *mdast.HTMLBlock:
		// Raw HTML has no LaTeX equivalent; omit, matching the fact that
		// spec.md excludes sanitization/rewriting of foreign markup.
	case *mdast.BlockQuote:
		s.dst = append(s.dst, `\begin{quote}`...)
		s.dst = append(s.dst, '\n')
		s.blocks(b.Content)
		s.dst = append(s.dst, '\n')
		s.dst = append(s.dst, `\end{quote}`...)
	case *mdast.GitHubAlert:
		s.alert(b)
	case *mdast.List:
		s.list(b)
	case *mdast.Table:
		s.table(b)
	case *mdast.LinkReferenceDefinition, *mdast.FootnoteDefinition, *mdast.Empty:
		// LinkReferenceDefinition produces no visible output (already
		// resolved at parse time); FootnoteDefinition is rendered at the
		// end by document; Empty is a parser placeholder.
	}
}

func (s *state) codeBlock(b *mdast.CodeBlock) {
	switch s.CodeStyle {
	case Listings:
		s.dst = append(s.dst, `\begin{lstlisting}`...)
		if b.Form.IsFenced() && b.Form.InfoString() != "" {
			lang := strings.Fields(b.Form.InfoString())[0]
			s.dst = append(s.dst, "[language="...)
			s.dst = append(s.dst, lang...)
			s.dst = append(s.dst, ']')
		}
		s.dst = append(s.dst, '\n')
		s.dst = append(s.dst, b.Literal...)
		s.dst = append(s.dst, `\end{lstlisting}`...)
	default:
		s.dst = append(s.dst, "\\begin{verbatim}\n"...)
		s.dst = append(s.dst, b.Literal...)
		s.dst = append(s.dst, `\end{verbatim}`...)
	}
}

var alertEnv = map[mdast.AlertKind]string{
	mdast.AlertNote:      "Note",
	mdast.AlertTip:       "Tip",
	mdast.AlertImportant: "Important",
	mdast.AlertWarning:   "Warning",
	mdast.AlertCaution:   "Caution",
}

func (s *state) alert(a *mdast.GitHubAlert) {
	s.dst = append(s.dst, `\begin{quote}\textbf{`...)
	s.dst = append(s.dst, alertEnv[a.AlertKind]...)
	s.dst = append(s.dst, "}\n"...)
	s.blocks(a.Content)
	s.dst = append(s.dst, '\n')
	s.dst = append(s.dst, `\end{quote}`...)
}

func (s *state) list(l *mdast.List) {
	env := "itemize"
	if l.Form.IsOrdered() {
		env = "enumerate"
	}
	s.dst = append(s.dst, '\\')
	s.dst = append(s.dst, "begin{"+env+"}\n"...)
	for _, item := range l.Items {
		s.dst = append(s.dst, `\item `...)
		if item.TaskState != mdast.NoTask {
			if item.TaskState == mdast.TaskChecked {
				s.dst = append(s.dst, `$\boxtimes$ `...)
			} else {
				s.dst = append(s.dst, `$\square$ `...)
			}
		}
		s.blocks(item.Content)
		s.dst = append(s.dst, '\n')
	}
	s.dst = append(s.dst, '\\')
	s.dst = append(s.dst, "end{"+env+"}"...)
}

func (s *state) table(t *mdast.Table) {
	env := "tabular"
	if s.TableStyle == Longtable {
		env = "longtable"
	}
	spec := make([]byte, len(t.Alignments))
	for i, a := range t.Alignments {
		switch a {
		case mdast.AlignLeft:
			spec[i] = 'l'
		case mdast.AlignCenter:
			spec[i] = 'c'
		case mdast.AlignRight:
			spec[i] = 'r'
		default:
			spec[i] = 'l'
		}
	}
	s.dst = append(s.dst, `\begin{`...)
	s.dst = append(s.dst, env...)
	s.dst = append(s.dst, "}{"...)
	s.dst = append(s.dst, spec...)
	s.dst = append(s.dst, "}\n"...)
	s.tableRow(t.Header)
	s.dst = append(s.dst, `\hline`...)
	s.dst = append(s.dst, '\n')
	for _, row := range t.Rows {
		s.tableRow(row)
	}
	s.dst = append(s.dst, `\end{`...)
	s.dst = append(s.dst, env...)
	s.dst = append(s.dst, '}')
}

func (s *state) tableRow(row mdast.TableRow) {
	for i, cell := range row {
		if i > 0 {
			s.dst = append(s.dst, " & "...)
		}
		s.inlines([]mdast.Inline(cell))
	}
	s.dst = append(s.dst, ` \\`...)
	s.dst = append(s.dst, '\n')
}

func (s *state) inlines(inlines []mdast.Inline) {
	for _, in := range inlines {
		s.inline(in)
	}
}

func (s *state) inline(in mdast.Inline) {
	switch v := in.(type) {
	case *mdast.Text:
		s.dst = append(s.dst, escapeLaTeX(v.Value)...)
	case *mdast.CodeSpan:
		s.dst = append(s.dst, `\texttt{`...)
		s.dst = append(s.dst, escapeLaTeX(v.Literal)...)
		s.dst = append(s.dst, '}')
	case *mdast.Emphasis:
		s.dst = append(s.dst, `\emph{`...)
		s.inlines(v.Content)
		s.dst = append(s.dst, '}')
	case *mdast.Strong:
		s.dst = append(s.dst, `\textbf{`...)
		s.inlines(v.Content)
		s.dst = append(s.dst, '}')
	case *mdast.Link:
		s.dst = append(s.dst, `\href{`...)
		s.dst = append(s.dst, escapeLaTeX(v.Destination)...)
		s.dst = append(s.dst, "}{"...)
		s.inlines(v.Content)
		s.dst = append(s.dst, '}')
	case *mdast.Image:
		s.dst = append(s.dst, `\includegraphics{`...)
		s.dst = append(s.dst, escapeLaTeX(v.Destination)...)
		s.dst = append(s.dst, '}')
	case *mdast.Autolink:
		s.dst = append(s.dst, `\url{`...)
		s.dst = append(s.dst, v.Value...)
		s.dst = append(s.dst, '}')
	case *mdast.HTML:
		// No LaTeX equivalent for raw HTML; omitted.
	case *mdast.LineBreak:
		if v.Form == mdast.HardBreak {
			s.dst = append(s.dst, `\\`...)
			s.dst = append(s.dst, '\n')
		} else {
			s.dst = append(s.dst, '\n')
		}
	case *mdast.FootnoteReference:
		s.dst = append(s.dst, `\footnotemark[`...)
		s.dst = append(s.dst, escapeLaTeX(v.Label)...)
		s.dst = append(s.dst, ']')
	}
}

// escapeLaTeX escapes the characters LaTeX treats as special outside verbatim
// contexts.
func escapeLaTeX(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\textbackslash{}`)
		case '{', '}', '$', '&', '#', '_', '%':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '~':
			b.WriteString(`\textasciitilde{}`)
		case '^':
			b.WriteString(`\textasciicircum{}`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
