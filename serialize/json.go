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

// Package serialize converts a parsed [mdast.Document] to and from JSON and
// YAML for data interchange.
//
// JSON uses the stdlib encoding/json with an explicit "kind" discriminator
// field per node, the idiomatic Go encoding for a closed sum type; no
// third-party JSON library retrieved for this repository's corpus improves
// on that (see DESIGN.md). YAML is produced by marshaling the same
// intermediate tree with github.com/goccy/go-yaml, a pack dependency.
package serialize

import (
	"encoding/json"
	"fmt"

	"github.com/emberglade/mdast"
)

// node is the JSON/YAML wire representation of a single [mdast.Block] or
// [mdast.Inline]: a discriminator plus a flat bag of the fields that
// variant carries. Using one flat struct instead of one Go type per wire
// variant keeps the encode/decode side a single switch, matching how the
// rest of this package's core (e.g. [mdast.BlockBehavior]) already favors
// explicit tagged dispatch over per-kind types at the boundary.
type node struct {
	Kind       string  `json:"kind" yaml:"kind"`
	Value      string  `json:"value,omitempty" yaml:"value,omitempty"`
	Level      int     `json:"level,omitempty" yaml:"level,omitempty"`
	Ordered    bool    `json:"ordered,omitempty" yaml:"ordered,omitempty"`
	Start      uint64  `json:"start,omitempty" yaml:"start,omitempty"`
	Tight      bool    `json:"tight,omitempty" yaml:"tight,omitempty"`
	TaskState  string  `json:"taskState,omitempty" yaml:"taskState,omitempty"`
	Fenced     bool    `json:"fenced,omitempty" yaml:"fenced,omitempty"`
	Info       string  `json:"info,omitempty" yaml:"info,omitempty"`
	Literal    string  `json:"literal,omitempty" yaml:"literal,omitempty"`
	Label      string  `json:"label,omitempty" yaml:"label,omitempty"`
	Destination string `json:"destination,omitempty" yaml:"destination,omitempty"`
	Title      *string `json:"title,omitempty" yaml:"title,omitempty"`
	AlertKind  string  `json:"alertKind,omitempty" yaml:"alertKind,omitempty"`
	Form       string  `json:"form,omitempty" yaml:"form,omitempty"`
	Marker     string  `json:"marker,omitempty" yaml:"marker,omitempty"`
	Delimiter  string  `json:"delimiter,omitempty" yaml:"delimiter,omitempty"`
	Alignments []string `json:"alignments,omitempty" yaml:"alignments,omitempty"`

	Content []node   `json:"content,omitempty" yaml:"content,omitempty"`
	Items   []node   `json:"items,omitempty" yaml:"items,omitempty"`
	Header  []node   `json:"header,omitempty" yaml:"header,omitempty"`
	Rows    [][]node `json:"rows,omitempty" yaml:"rows,omitempty"`
}

// ToJSON serializes doc to JSON, using the discriminated-union shape
// described by [node].
func ToJSON(doc *mdast.Document) ([]byte, error) {
	return json.Marshal(blocksToNodes(doc.Blocks))
}

// FromJSON reconstructs a [mdast.Document] previously produced by [ToJSON].
// The result's user-data slots are all nil: wire format carries no user
// data, per spec §3.6's description of that slot as parser-local.
func FromJSON(data []byte) (*mdast.Document, error) {
	var nodes []node
	if err := json.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("serialize: from json: %w", err)
	}
	blocks, err := nodesToBlocks(nodes)
	if err != nil {
		return nil, fmt.Errorf("serialize: from json: %w", err)
	}
	return &mdast.Document{Blocks: blocks}, nil
}

func blocksToNodes(blocks []mdast.Block) []node {
	nodes := make([]node, len(blocks))
	for i, b := range blocks {
		nodes[i] = blockToNode(b)
	}
	return nodes
}

func inlinesToNodes(inlines []mdast.Inline) []node {
	nodes := make([]node, len(inlines))
	for i, in := range inlines {
		nodes[i] = inlineToNode(in)
	}
	return nodes
}

func blockToNode(b mdast.Block) node {
	switch v := b.(type) {
	case *mdast.Paragraph:
		return node{Kind: "paragraph", Content: inlinesToNodes(v.Content)}
	case *mdast.ThematicBreak:
		return node{Kind: "thematicBreak"}
	case *mdast.Heading:
		return node{Kind: "heading", Form: v.Form.Variant().String(), Level: v.Form.Level(), Content: inlinesToNodes(v.Content)}
	case *mdast.BlockQuote:
		return node{Kind: "blockQuote", Content: blocksToNodes(v.Content)}
	case *mdast.List:
		items := make([]node, len(v.Items))
		for i, it := range v.Items {
			items[i] = node{Kind: "listItem", TaskState: taskStateString(it.TaskState), Content: blocksToNodes(it.Content)}
		}
		n := node{Kind: "list", Ordered: v.Form.IsOrdered(), Tight: v.Tight, Items: items}
		if v.Form.IsOrdered() {
			n.Start = v.Form.Start()
			n.Delimiter = string(byte(v.Form.Delimiter()))
		} else {
			n.Marker = string(v.Form.Marker())
		}
		return n
	case *mdast.CodeBlock:
		return node{Kind: "codeBlock", Fenced: v.Form.IsFenced(), Info: v.Form.InfoString(), Literal: v.Literal}
	case *mdast.HTMLBlock:
		return node{Kind: "htmlBlock", Literal: v.Literal}
	case *mdast.Table:
		aligns := make([]string, len(v.Alignments))
		for i, a := range v.Alignments {
			aligns[i] = a.String()
		}
		rows := make([][]node, len(v.Rows))
		for i, row := range v.Rows {
			rows[i] = cellsToNodes(row)
		}
		return node{Kind: "table", Alignments: aligns, Header: cellsToNodes(v.Header), Rows: rows}
	case *mdast.LinkReferenceDefinition:
		return node{Kind: "linkReferenceDefinition", Label: v.Label, Destination: v.Destination, Title: v.Title}
	case *mdast.FootnoteDefinition:
		return node{Kind: "footnoteDefinition", Label: v.Label, Content: blocksToNodes(v.Content)}
	case *mdast.GitHubAlert:
		return node{Kind: "githubAlert", AlertKind: v.AlertKind.String(), Content: blocksToNodes(v.Content)}
	case *mdast.Empty:
		return node{Kind: "empty"}
	default:
		return node{Kind: "unknown"}
	}
}

func cellsToNodes(row mdast.TableRow) []node {
	nodes := make([]node, len(row))
	for i, cell := range row {
		nodes[i] = node{Kind: "tableCell", Content: inlinesToNodes([]mdast.Inline(cell))}
	}
	return nodes
}

func inlineToNode(in mdast.Inline) node {
	switch v := in.(type) {
	case *mdast.Text:
		return node{Kind: "text", Value: v.Value}
	case *mdast.Emphasis:
		return node{Kind: "emphasis", Content: inlinesToNodes(v.Content)}
	case *mdast.Strong:
		return node{Kind: "strong", Content: inlinesToNodes(v.Content)}
	case *mdast.CodeSpan:
		return node{Kind: "codeSpan", Literal: v.Literal}
	case *mdast.Link:
		return node{Kind: "link", Destination: v.Destination, Title: v.Title, Content: inlinesToNodes(v.Content)}
	case *mdast.Image:
		return node{Kind: "image", Destination: v.Destination, Title: v.Title, Content: inlinesToNodes(v.Alt)}
	case *mdast.Autolink:
		return node{Kind: "autolink", Form: v.Form.String(), Value: v.Value}
	case *mdast.HTML:
		return node{Kind: "html", Literal: v.Literal}
	case *mdast.LineBreak:
		return node{Kind: "lineBreak", Form: v.Form.String()}
	case *mdast.FootnoteReference:
		return node{Kind: "footnoteReference", Label: v.Label}
	default:
		return node{Kind: "unknown"}
	}
}

func nodesToBlocks(nodes []node) ([]mdast.Block, error) {
	blocks := make([]mdast.Block, len(nodes))
	for i, n := range nodes {
		b, err := nodeToBlock(n)
		if err != nil {
			return nil, err
		}
		blocks[i] = b
	}
	return blocks, nil
}

func nodesToInlines(nodes []node) ([]mdast.Inline, error) {
	inlines := make([]mdast.Inline, len(nodes))
	for i, n := range nodes {
		in, err := nodeToInline(n)
		if err != nil {
			return nil, err
		}
		inlines[i] = in
	}
	return inlines, nil
}

func nodeToBlock(n node) (mdast.Block, error) {
	switch n.Kind {
	case "paragraph":
		content, err := nodesToInlines(n.Content)
		if err != nil {
			return nil, err
		}
		return &mdast.Paragraph{Content: content}, nil
	case "thematicBreak":
		return &mdast.ThematicBreak{}, nil
	case "heading":
		content, err := nodesToInlines(n.Content)
		if err != nil {
			return nil, err
		}
		var form mdast.HeadingForm
		if n.Form == "Setext" {
			form = mdast.Setext(n.Level)
		} else {
			form = mdast.ATX(n.Level)
		}
		return &mdast.Heading{Form: form, Content: content}, nil
	case "blockQuote":
		content, err := nodesToBlocks(n.Content)
		if err != nil {
			return nil, err
		}
		return &mdast.BlockQuote{Content: content}, nil
	case "list":
		items := make([]*mdast.ListItem, len(n.Items))
		for i, it := range n.Items {
			content, err := nodesToBlocks(it.Content)
			if err != nil {
				return nil, err
			}
			items[i] = &mdast.ListItem{Content: content, TaskState: parseTaskState(it.TaskState)}
		}
		var form mdast.ListForm
		if n.Ordered {
			delim := mdast.DotDelimiter
			if n.Delimiter != "" {
				delim = mdast.ListDelimiter(n.Delimiter[0])
			}
			form = mdast.Ordered(n.Start, delim)
		} else {
			marker := byte('-')
			if n.Marker != "" {
				marker = n.Marker[0]
			}
			form = mdast.Bullet(marker)
		}
		return &mdast.List{Form: form, Tight: n.Tight, Items: items}, nil
	case "codeBlock":
		var form mdast.CodeBlockForm
		if n.Fenced {
			form = mdast.Fenced(n.Info)
		} else {
			form = mdast.Indented()
		}
		return &mdast.CodeBlock{Form: form, Literal: n.Literal}, nil
	case "htmlBlock":
		return &mdast.HTMLBlock{Literal: n.Literal}, nil
	case "table":
		aligns := make([]mdast.Alignment, len(n.Alignments))
		for i, a := range n.Alignments {
			aligns[i] = parseAlignment(a)
		}
		header, err := nodesToRow(n.Header)
		if err != nil {
			return nil, err
		}
		rows := make([]mdast.TableRow, len(n.Rows))
		for i, r := range n.Rows {
			row, err := nodesToRow(r)
			if err != nil {
				return nil, err
			}
			rows[i] = row
		}
		return &mdast.Table{Alignments: aligns, Header: header, Rows: rows}, nil
	case "linkReferenceDefinition":
		return &mdast.LinkReferenceDefinition{Label: n.Label, Destination: n.Destination, Title: n.Title}, nil
	case "footnoteDefinition":
		content, err := nodesToBlocks(n.Content)
		if err != nil {
			return nil, err
		}
		return &mdast.FootnoteDefinition{Label: n.Label, Content: content}, nil
	case "githubAlert":
		content, err := nodesToBlocks(n.Content)
		if err != nil {
			return nil, err
		}
		return &mdast.GitHubAlert{AlertKind: parseAlertKind(n.AlertKind), Content: content}, nil
	case "empty":
		return &mdast.Empty{}, nil
	default:
		return nil, fmt.Errorf("unknown block kind %q", n.Kind)
	}
}

func nodesToRow(nodes []node) (mdast.TableRow, error) {
	row := make(mdast.TableRow, len(nodes))
	for i, n := range nodes {
		content, err := nodesToInlines(n.Content)
		if err != nil {
			return nil, err
		}
		row[i] = mdast.TableCell(content)
	}
	return row, nil
}

func nodeToInline(n node) (mdast.Inline, error) {
	switch n.Kind {
	case "text":
		return &mdast.Text{Value: n.Value}, nil
	case "emphasis":
		content, err := nodesToInlines(n.Content)
		if err != nil {
			return nil, err
		}
		return &mdast.Emphasis{Content: content}, nil
	case "strong":
		content, err := nodesToInlines(n.Content)
		if err != nil {
			return nil, err
		}
		return &mdast.Strong{Content: content}, nil
	case "codeSpan":
		return &mdast.CodeSpan{Literal: n.Literal}, nil
	case "link":
		content, err := nodesToInlines(n.Content)
		if err != nil {
			return nil, err
		}
		return &mdast.Link{Destination: n.Destination, Title: n.Title, Content: content}, nil
	case "image":
		alt, err := nodesToInlines(n.Content)
		if err != nil {
			return nil, err
		}
		return &mdast.Image{Destination: n.Destination, Title: n.Title, Alt: alt}, nil
	case "autolink":
		form := mdast.URIAutolink
		if n.Form == "Email" {
			form = mdast.EmailAutolink
		}
		return &mdast.Autolink{Value: n.Value, Form: form}, nil
	case "html":
		return &mdast.HTML{Literal: n.Literal}, nil
	case "lineBreak":
		form := mdast.SoftBreak
		if n.Form == "Hard" {
			form = mdast.HardBreak
		}
		return &mdast.LineBreak{Form: form}, nil
	case "footnoteReference":
		return &mdast.FootnoteReference{Label: n.Label}, nil
	default:
		return nil, fmt.Errorf("unknown inline kind %q", n.Kind)
	}
}

func taskStateString(s mdast.TaskState) string {
	switch s {
	case mdast.TaskUnchecked:
		return "TaskUnchecked"
	case mdast.TaskChecked:
		return "TaskChecked"
	default:
		return ""
	}
}

func parseTaskState(s string) mdast.TaskState {
	switch s {
	case "TaskUnchecked":
		return mdast.TaskUnchecked
	case "TaskChecked":
		return mdast.TaskChecked
	default:
		return mdast.NoTask
	}
}

func parseAlignment(s string) mdast.Alignment {
	switch s {
	case "Left":
		return mdast.AlignLeft
	case "Center":
		return mdast.AlignCenter
	case "Right":
		return mdast.AlignRight
	default:
		return mdast.AlignNone
	}
}

func parseAlertKind(s string) mdast.AlertKind {
	switch s {
	case "Note":
		return mdast.AlertNote
	case "Tip":
		return mdast.AlertTip
	case "Important":
		return mdast.AlertImportant
	case "Warning":
		return mdast.AlertWarning
	case "Caution":
		return mdast.AlertCaution
	default:
		return 0
	}
}
