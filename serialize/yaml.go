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

package serialize

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/emberglade/mdast"
)

// ToYAML serializes doc to YAML using the same wire shape as [ToJSON].
func ToYAML(doc *mdast.Document) ([]byte, error) {
	data, err := yaml.Marshal(blocksToNodes(doc.Blocks))
	if err != nil {
		return nil, fmt.Errorf("serialize: to yaml: %w", err)
	}
	return data, nil
}

// FromYAML reconstructs a [mdast.Document] previously produced by [ToYAML].
func FromYAML(data []byte) (*mdast.Document, error) {
	var nodes []node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("serialize: from yaml: %w", err)
	}
	blocks, err := nodesToBlocks(nodes)
	if err != nil {
		return nil, fmt.Errorf("serialize: from yaml: %w", err)
	}
	return &mdast.Document{Blocks: blocks}, nil
}
