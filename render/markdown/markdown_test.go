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

package markdown

import (
	"strings"
	"testing"

	"github.com/emberglade/mdast"
)

func TestFormatRoundTrips(t *testing.T) {
	tests := []string{
		"# Title\n",
		"Hello, *world*!\n",
		"- a\n- b\n",
		"> quoted\n",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			doc, perr := mdast.Parse(mdast.NewConfig(), input)
			if perr != nil {
				t.Fatal(perr)
			}
			out := FormatString(doc)
			if strings.TrimSpace(out) == "" {
				t.Fatalf("FormatString produced nothing for %q", input)
			}
			doc2, perr := mdast.Parse(mdast.NewConfig(), out)
			if perr != nil {
				t.Fatalf("reparsing formatted output: %v\noutput:\n%s", perr, out)
			}
			if len(doc2.Blocks) != len(doc.Blocks) {
				t.Errorf("block count changed across round-trip: %d vs %d\noutput:\n%s", len(doc.Blocks), len(doc2.Blocks), out)
			}
		})
	}
}
