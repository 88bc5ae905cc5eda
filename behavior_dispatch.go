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

// blockIgnored reports whether kind's configured behavior is [IgnoreBlock].
// Recognizers consult this before consuming any input for kind, so an
// ignored element truly never matches and the next alternative runs
// (spec §4.6).
func blockIgnored(cfg *Config, kind BlockKind) bool {
	return cfg.BlockBehavior(kind).Tag() == ignoreTag
}

// applyBlockBehavior runs kind's configured behavior against a freshly
// built block, returning the replacement sequence to splice into the
// surrounding block list (spec §4.6). Called only after the caller has
// already confirmed the behavior is not Ignore.
func applyBlockBehavior(cfg *Config, kind BlockKind, v Block) []Block {
	repl, _ := cfg.BlockBehavior(kind).apply(v)
	return repl
}

// inlineIgnored is the inline-context counterpart of [blockIgnored].
func inlineIgnored(cfg *Config, kind InlineKind) bool {
	return cfg.InlineBehavior(kind).Tag() == ignoreTag
}

// applyInlineBehavior is the inline-context counterpart of
// [applyBlockBehavior].
func applyInlineBehavior(cfg *Config, kind InlineKind, v Inline) []Inline {
	repl, _ := cfg.InlineBehavior(kind).apply(v)
	return repl
}
