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

// BehaviorTag names one of the five policies a [BlockBehavior] or
// [InlineBehavior] can hold (spec §4.1, §4.6). Dispatch on a BehaviorTag is a
// switch, not a virtual call, so the hot parsing path stays inlineable.
type BehaviorTag uint8

const (
	// parseTag emits the built-in recognizer's result unchanged.
	parseTag BehaviorTag = iota
	// ignoreTag makes the parser pretend the recognizer never matched.
	ignoreTag
	// skipTag consumes the input but discards the element.
	skipTag
	// mapTag replaces the element with the result of a function.
	mapTag
	// flatMapTag splices a function's result sequence in the element's place.
	flatMapTag
)

// BlockBehavior is the policy applied to a successfully recognized block
// (spec §4.1). The zero value is [ParseBlock].
type BlockBehavior struct {
	tag BehaviorTag
	fn  func(Block) Block
	flat func(Block) []Block
}

// Tag reports which policy b holds.
func (b BlockBehavior) Tag() BehaviorTag { return b.tag }

// ParseBlock emits the recognized block as produced.
func ParseBlock() BlockBehavior { return BlockBehavior{tag: parseTag} }

// IgnoreBlock makes the parser backtrack and try the next alternative at
// this position, as though the recognizer had not matched.
func IgnoreBlock() BlockBehavior { return BlockBehavior{tag: ignoreTag} }

// SkipBlock consumes the input as normal but emits an [Empty] block in
// place of the recognized one.
func SkipBlock() BlockBehavior { return BlockBehavior{tag: skipTag} }

// MapBlock runs fn on the recognized block and emits its single result.
func MapBlock(fn func(Block) Block) BlockBehavior {
	return BlockBehavior{tag: mapTag, fn: fn}
}

// FlatMapBlock runs fn on the recognized block and splices its result
// sequence into the surrounding block sequence in place of the original.
// The returned sequence is not re-dispatched through behavior policies.
func FlatMapBlock(fn func(Block) []Block) BlockBehavior {
	return BlockBehavior{tag: flatMapTag, flat: fn}
}

// apply runs the policy against a recognized block, reporting the
// replacement sequence (possibly empty) and whether the recognizer's match
// stands. When ok is false, the caller must backtrack and try the next
// block alternative.
func (b BlockBehavior) apply(v Block) (replacement []Block, ok bool) {
	switch b.tag {
	case ignoreTag:
		return nil, false
	case skipTag:
		return []Block{&Empty{}}, true
	case mapTag:
		return []Block{b.fn(v)}, true
	case flatMapTag:
		return b.flat(v), true
	default: // parseTag
		return []Block{v}, true
	}
}

// InlineBehavior is the policy applied to a successfully recognized inline
// element (spec §4.1). The zero value is [ParseInline].
type InlineBehavior struct {
	tag  BehaviorTag
	fn   func(Inline) Inline
	flat func(Inline) []Inline
}

// Tag reports which policy b holds.
func (b InlineBehavior) Tag() BehaviorTag { return b.tag }

// ParseInline emits the recognized inline element as produced.
func ParseInline() InlineBehavior { return InlineBehavior{tag: parseTag} }

// IgnoreInline makes the parser backtrack and try the next alternative at
// this position, as though the recognizer had not matched.
func IgnoreInline() InlineBehavior { return InlineBehavior{tag: ignoreTag} }

// SkipInline consumes the input as normal but drops the recognized element
// from the inline sequence entirely.
func SkipInline() InlineBehavior { return InlineBehavior{tag: skipTag} }

// MapInline runs fn on the recognized element and emits its single result.
func MapInline(fn func(Inline) Inline) InlineBehavior {
	return InlineBehavior{tag: mapTag, fn: fn}
}

// FlatMapInline runs fn on the recognized element and splices its result
// sequence into the surrounding inline sequence in place of the original.
// The returned sequence is not re-dispatched through behavior policies.
func FlatMapInline(fn func(Inline) []Inline) InlineBehavior {
	return InlineBehavior{tag: flatMapTag, flat: fn}
}

func (b InlineBehavior) apply(v Inline) (replacement []Inline, ok bool) {
	switch b.tag {
	case ignoreTag:
		return nil, false
	case skipTag:
		return nil, true
	case mapTag:
		return []Inline{b.fn(v)}, true
	case flatMapTag:
		return b.flat(v), true
	default: // parseTag
		return []Inline{v}, true
	}
}

// CustomBlockParser is a user-registered block recognizer, consulted before
// every built-in alternative (spec §4.3 item 1). It must either report
// ok == false (no match, try the next parser) or return a remaining slice
// that is strictly shorter than remaining; a custom parser that reports
// success without consuming input is treated as a failure, to guarantee
// parsing always makes progress (spec §4.4 "ordering guarantee").
type CustomBlockParser func(remaining string) (newRemaining string, value Block, ok bool)

// CustomInlineParser is the inline-context counterpart of
// [CustomBlockParser] (spec §4.4 item 1), with the same zero-consumption
// rule.
type CustomInlineParser func(remaining string) (newRemaining string, value Inline, ok bool)

// Config aggregates everything [Parse] needs beyond the input text: a
// behavior policy per block and inline variant, plus ordered lists of
// custom parsers (spec §4.1, §6.1). The zero value is not meaningful on its
// own; construct one with [NewConfig].
type Config struct {
	blockBehaviors  map[BlockKind]BlockBehavior
	inlineBehaviors map[InlineKind]InlineBehavior

	customBlockParsers  []CustomBlockParser
	customInlineParsers []CustomInlineParser
}

// NewConfig builds a [Config] with every element behavior defaulted to
// Parse and no custom parsers registered, then applies opts in order.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := &Config{
		blockBehaviors:  make(map[BlockKind]BlockBehavior),
		inlineBehaviors: make(map[InlineKind]InlineBehavior),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// BlockBehavior returns the configured policy for kind, defaulting to
// [ParseBlock] if none was set.
func (c *Config) BlockBehavior(kind BlockKind) BlockBehavior {
	if b, ok := c.blockBehaviors[kind]; ok {
		return b
	}
	return ParseBlock()
}

// InlineBehavior returns the configured policy for kind, defaulting to
// [ParseInline] if none was set.
func (c *Config) InlineBehavior(kind InlineKind) InlineBehavior {
	if b, ok := c.inlineBehaviors[kind]; ok {
		return b
	}
	return ParseInline()
}

// CustomBlockParsers returns the registered custom block parsers in
// registration order. The caller must not mutate the returned slice.
func (c *Config) CustomBlockParsers() []CustomBlockParser { return c.customBlockParsers }

// CustomInlineParsers returns the registered custom inline parsers in
// registration order. The caller must not mutate the returned slice.
func (c *Config) CustomInlineParsers() []CustomInlineParser { return c.customInlineParsers }

// ConfigOption configures a [Config] built by [NewConfig]. The functional-
// options shape lets callers set only the behaviors they care about without
// an ever-growing constructor signature.
type ConfigOption func(*Config)

// WithBlockBehavior sets the policy applied when kind's built-in recognizer
// matches.
func WithBlockBehavior(kind BlockKind, behavior BlockBehavior) ConfigOption {
	return func(c *Config) { c.blockBehaviors[kind] = behavior }
}

// WithInlineBehavior sets the policy applied when kind's built-in
// recognizer matches.
func WithInlineBehavior(kind InlineKind, behavior InlineBehavior) ConfigOption {
	return func(c *Config) { c.inlineBehaviors[kind] = behavior }
}

// WithCustomBlockParser registers fn to run before every built-in block
// alternative, after any previously registered custom block parsers.
func WithCustomBlockParser(fn CustomBlockParser) ConfigOption {
	return func(c *Config) { c.customBlockParsers = append(c.customBlockParsers, fn) }
}

// WithCustomInlineParser registers fn to run before every built-in inline
// alternative, after any previously registered custom inline parsers.
func WithCustomInlineParser(fn CustomInlineParser) ConfigOption {
	return func(c *Config) { c.customInlineParsers = append(c.customInlineParsers, fn) }
}
