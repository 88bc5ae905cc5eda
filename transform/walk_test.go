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

package transform

import (
	"testing"

	"github.com/emberglade/mdast"
)

func TestWalkCountsInlineText(t *testing.T) {
	doc, perr := mdast.Parse(mdast.NewConfig(), "# Title\n\nSome *emphasized* text.\n")
	if perr != nil {
		t.Fatal(perr)
	}
	var texts int
	Walk(doc.Blocks, &WalkOptions{
		Pre: func(c *Cursor) bool {
			if _, ok := c.Node().Inline.(*mdast.Text); ok {
				texts++
			}
			return true
		},
	})
	if texts == 0 {
		t.Error("Walk found no *mdast.Text nodes")
	}
}

func TestFindBlocks(t *testing.T) {
	doc, perr := mdast.Parse(mdast.NewConfig(), "# A\n\nPara.\n\n## B\n")
	if perr != nil {
		t.Fatal(perr)
	}
	headings := FindBlocks[*mdast.Heading](doc.Blocks)
	if len(headings) != 2 {
		t.Errorf("len(headings) = %d; want 2", len(headings))
	}
}

func TestFindInlines(t *testing.T) {
	doc, perr := mdast.Parse(mdast.NewConfig(), "a [link](dest) b [other](dest2)\n")
	if perr != nil {
		t.Fatal(perr)
	}
	links := FindInlines[*mdast.Link](doc.Blocks)
	if len(links) != 2 {
		t.Errorf("len(links) = %d; want 2", len(links))
	}
}
