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

// Package transform provides a visitor/query toolkit over a parsed
// [mdast.Document]'s [mdast.Block]/[mdast.Inline] trees.
//
// Generalizes the teacher's walk.go (Cursor, WalkOptions, pre/post-order
// Walk over a single unsafe-pointer Node union) to this repository's two
// separate closed interfaces: a [Node] here wraps whichever of [mdast.Block]
// or [mdast.Inline] is current, the same way the teacher's own Node
// abstracted over block and inline spans.
package transform

import "github.com/emberglade/mdast"

// A Node is either a [mdast.Block] or a [mdast.Inline] encountered during a
// walk. Exactly one of Block/Inline is non-nil.
type Node struct {
	Block  mdast.Block
	Inline mdast.Inline
}

// IsBlock reports whether this Node wraps a [mdast.Block].
func (n Node) IsBlock() bool { return n.Block != nil }

// IsInline reports whether this Node wraps a [mdast.Inline].
func (n Node) IsInline() bool { return n.Inline != nil }

func blockNode(b mdast.Block) Node   { return Node{Block: b} }
func inlineNode(i mdast.Inline) Node { return Node{Inline: i} }

// A Cursor describes a [Node] encountered during [Walk].
type Cursor struct {
	node        Node
	parent      Node
	parentBlock mdast.Block
	index       int
}

// Node returns the current [Node].
func (c *Cursor) Node() Node { return c.node }

// Parent returns the parent of the current [Node]; its zero value if the
// current node is a root.
func (c *Cursor) Parent() Node { return c.parent }

// ParentBlock returns the nearest [mdast.Block] ancestor of the current
// [Node], not counting the node itself; it is nil for a top-level block.
func (c *Cursor) ParentBlock() mdast.Block { return c.parentBlock }

// Index returns the position of the current [Node] among its parent's
// children; for a top-level node it is the position in the slice passed
// to [Walk].
func (c *Cursor) Index() int { return c.index }

// WalkOptions is the set of parameters to [Walk].
type WalkOptions struct {
	// Pre, if non-nil, is called for each node before its children are
	// traversed. If Pre returns false, the node's children are skipped and
	// Post is not called for that node.
	Pre func(c *Cursor) bool
	// Post, if non-nil, is called for each node after its children are
	// traversed. If Post returns false, traversal stops immediately.
	Post func(c *Cursor) bool
}

// Walk traverses the blocks of a document (or any block slice) in document
// order, calling Pre/Post for every block and every inline reachable from
// it.
func Walk(blocks []mdast.Block, opts *WalkOptions) {
	type frame struct {
		Cursor
		post bool
	}

	var stack []frame
	pushChildren := func(parent Node, parentBlock mdast.Block, children []Node) {
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{Cursor: Cursor{
				node:        children[i],
				parent:      parent,
				parentBlock: parentBlock,
				index:       i,
			}})
		}
	}
	pushChildren(Node{}, nil, blockSliceToNodes(blocks))

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if curr.post {
			if opts.Post != nil {
				c := curr.Cursor
				if !opts.Post(&c) {
					return
				}
			}
			continue
		}

		if opts.Pre != nil {
			c := curr.Cursor
			if !opts.Pre(&c) {
				continue
			}
		}

		curr.post = true
		stack = append(stack, curr)

		nextBlock := curr.parentBlock
		if curr.node.IsBlock() {
			nextBlock = curr.node.Block
		}
		pushChildren(curr.node, nextBlock, childrenOf(curr.node))
	}
}

func blockSliceToNodes(blocks []mdast.Block) []Node {
	nodes := make([]Node, len(blocks))
	for i, b := range blocks {
		nodes[i] = blockNode(b)
	}
	return nodes
}

func inlineSliceToNodes(inlines []mdast.Inline) []Node {
	nodes := make([]Node, len(inlines))
	for i, in := range inlines {
		nodes[i] = inlineNode(in)
	}
	return nodes
}

// childrenOf returns n's immediate children, block or inline, in document
// order.
func childrenOf(n Node) []Node {
	if n.IsBlock() {
		switch b := n.Block.(type) {
		case *mdast.Paragraph:
			return inlineSliceToNodes(b.Content)
		case *mdast.Heading:
			return inlineSliceToNodes(b.Content)
		case *mdast.BlockQuote:
			return blockSliceToNodes(b.Content)
		case *mdast.GitHubAlert:
			return blockSliceToNodes(b.Content)
		case *mdast.FootnoteDefinition:
			return blockSliceToNodes(b.Content)
		case *mdast.List:
			var nodes []Node
			for _, item := range b.Items {
				nodes = append(nodes, blockSliceToNodes(item.Content)...)
			}
			return nodes
		case *mdast.Table:
			var nodes []Node
			for _, cell := range b.Header {
				nodes = append(nodes, inlineSliceToNodes([]mdast.Inline(cell))...)
			}
			for _, row := range b.Rows {
				for _, cell := range row {
					nodes = append(nodes, inlineSliceToNodes([]mdast.Inline(cell))...)
				}
			}
			return nodes
		}
		return nil
	}
	switch in := n.Inline.(type) {
	case *mdast.Emphasis:
		return inlineSliceToNodes(in.Content)
	case *mdast.Strong:
		return inlineSliceToNodes(in.Content)
	case *mdast.Link:
		return inlineSliceToNodes(in.Content)
	case *mdast.Image:
		return inlineSliceToNodes(in.Alt)
	}
	return nil
}
