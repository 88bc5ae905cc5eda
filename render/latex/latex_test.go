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

package latex

import (
	"strings"
	"testing"

	"github.com/emberglade/mdast"
)

func TestRenderString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Heading",
			input: "# Title",
			want:  `\section{Title}`,
		},
		{
			name:  "Emphasis",
			input: "*a* **b**",
			want:  `\emph{a} \textbf{b}`,
		},
		{
			name:  "Escape",
			input: "50% & more",
			want:  `50\% \& more`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			doc, perr := mdast.Parse(mdast.NewConfig(), test.input)
			if perr != nil {
				t.Fatal(perr)
			}
			got := RenderString(doc)
			if !strings.Contains(got, test.want) {
				t.Errorf("RenderString(%q) = %q; want substring %q", test.input, got, test.want)
			}
		})
	}
}
