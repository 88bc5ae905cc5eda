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

package mdast

// rawText is a private placeholder [Inline] that stands in for a block's
// inline content while block parsing is still in progress. Spec §4.5
// requires the entire document's link reference table to be built before
// any inline content is tokenized, since a link can reference a definition
// that appears later in the document; since block parsing has to run to
// completion to discover every [LinkReferenceDefinition], raw text is
// parked here and only tokenized in the second pass (see resolve.go).
//
// A rawText value never survives to a caller of [Parse]: resolveBlockInlines
// replaces every occurrence before returning the finished [Document].
type rawText struct {
	base
	source string
}

func (*rawText) isInline()         {}
func (*rawText) Kind() InlineKind  { return TextKind }

// rawInline wraps text as a single-element placeholder content slice,
// the shape every block's Content/TableCell field expects.
func rawInline(text string) []Inline {
	return []Inline{&rawText{source: text}}
}
