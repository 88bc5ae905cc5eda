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

// Package idassign stamps stable identifiers into a [mdast.Document]'s
// generic user-data slot (spec §3.6), exercising that slot the way the
// library's component list names but does not itself implement.
package idassign

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/emberglade/mdast"
	"github.com/emberglade/mdast/transform"
)

// ID is the value this package installs into a node's user-data slot.
type ID string

// Sequential walks blocks in document order and stamps each block with a
// sequential ID of the form "b1", "b2", .... Inline nodes are left
// untouched; sequential numbering is meaningful for block-level anchors
// (e.g. heading permalinks), not for every inline span.
func Sequential(blocks []mdast.Block) {
	n := 0
	transform.Walk(blocks, &transform.WalkOptions{
		Pre: func(c *transform.Cursor) bool {
			if c.Node().IsBlock() {
				n++
				c.Node().Block.SetData(ID(fmt.Sprintf("b%d", n)))
			}
			return true
		},
	})
}

// HeadingSlugs stamps every [mdast.Heading] with a GitHub-style anchor slug
// derived from its text content, disambiguating repeats with a numeric
// suffix the way GitHub's own renderer does.
func HeadingSlugs(blocks []mdast.Block) {
	seen := make(map[string]int)
	for _, h := range transform.FindBlocks[*mdast.Heading](blocks) {
		base := slugify(headingText(h))
		slug := base
		if n := seen[base]; n > 0 {
			slug = fmt.Sprintf("%s-%d", base, n)
		}
		seen[base]++
		h.SetData(ID(slug))
	}
}

func headingText(h *mdast.Heading) string {
	var b strings.Builder
	var walk func([]mdast.Inline)
	walk = func(inlines []mdast.Inline) {
		for _, in := range inlines {
			switch v := in.(type) {
			case *mdast.Text:
				b.WriteString(v.Value)
			case *mdast.CodeSpan:
				b.WriteString(v.Literal)
			case *mdast.Emphasis:
				walk(v.Content)
			case *mdast.Strong:
				walk(v.Content)
			case *mdast.Link:
				walk(v.Content)
			}
		}
	}
	walk(h.Content)
	return b.String()
}

func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r == ' ' || r == '-':
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// ContentHash stamps every block and inline node with a content-addressed
// ID: the first 12 hex characters of the SHA-1 hash of a coarse textual
// fingerprint of the node: its Go type, plus the literal text for code
// blocks, HTML blocks, text and code spans. Every other node is
// fingerprinted by its type alone, so, for example, all paragraphs receive
// the same ID. This is meant for cheap change-detection between two parses
// of similar documents, not for cryptographic use.
func ContentHash(blocks []mdast.Block) {
	transform.Walk(blocks, &transform.WalkOptions{
		Pre: func(c *transform.Cursor) bool {
			n := c.Node()
			fingerprint := fingerprintOf(n)
			sum := sha1.Sum([]byte(fingerprint))
			id := ID(hex.EncodeToString(sum[:])[:12])
			if n.IsBlock() {
				n.Block.SetData(id)
			} else {
				n.Inline.SetData(id)
			}
			return true
		},
	})
}

func fingerprintOf(n transform.Node) string {
	if n.IsBlock() {
		switch b := n.Block.(type) {
		case *mdast.CodeBlock:
			return fmt.Sprintf("CodeBlock:%s", b.Literal)
		case *mdast.HTMLBlock:
			return fmt.Sprintf("HTMLBlock:%s", b.Literal)
		default:
			return fmt.Sprintf("%T", n.Block)
		}
	}
	switch in := n.Inline.(type) {
	case *mdast.Text:
		return "Text:" + in.Value
	case *mdast.CodeSpan:
		return "CodeSpan:" + in.Literal
	default:
		return fmt.Sprintf("%T", n.Inline)
	}
}
