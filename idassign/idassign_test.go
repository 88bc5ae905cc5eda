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

package idassign

import (
	"testing"

	"github.com/emberglade/mdast"
	"github.com/emberglade/mdast/transform"
)

func TestHeadingSlugs(t *testing.T) {
	doc, perr := mdast.Parse(mdast.NewConfig(), "# Hello World\n\n# Hello World\n")
	if perr != nil {
		t.Fatal(perr)
	}
	HeadingSlugs(doc.Blocks)
	headings := transform.FindBlocks[*mdast.Heading](doc.Blocks)
	if len(headings) != 2 {
		t.Fatalf("len(headings) = %d; want 2", len(headings))
	}
	if got := headings[0].Data(); got != ID("hello-world") {
		t.Errorf("first heading slug = %v; want hello-world", got)
	}
	if got := headings[1].Data(); got != ID("hello-world-1") {
		t.Errorf("second heading slug = %v; want hello-world-1", got)
	}
}

func TestSequential(t *testing.T) {
	doc, perr := mdast.Parse(mdast.NewConfig(), "# A\n\nB\n\nC\n")
	if perr != nil {
		t.Fatal(perr)
	}
	Sequential(doc.Blocks)
	for _, b := range doc.Blocks {
		if b.Data() == nil {
			t.Errorf("block %T has nil data after Sequential", b)
		}
	}
}
