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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/emberglade/mdast"
	"github.com/emberglade/mdast/render/html"
	"github.com/emberglade/mdast/render/markdown"
)

const sample = "# Title\n\nHello *world*, [link](/dest \"t\").\n\n" +
	"+ [x] done\n+ [ ] todo\n\n" +
	"1) a\n2) b\n\n" +
	"| a | b |\n| --- | :-: |\n| 1 | 2 |\n\n" +
	"> [!NOTE]\n> careful\n\n" +
	"Text with a note.[^1]\n\n[^1]: the note body\n"

func parseSample(t *testing.T) *mdast.Document {
	t.Helper()
	doc, perr := mdast.Parse(mdast.NewConfig(), sample)
	require.Nil(t, perr, "parse error: %v", perr)
	return doc
}

func TestJSONRoundTrip(t *testing.T) {
	doc := parseSample(t)
	data, err := ToJSON(doc)
	require.NoError(t, err)

	got, err := FromJSON(data)
	require.NoError(t, err)

	wantHTML := html.RenderString(doc)
	gotHTML := html.RenderString(got)
	if diff := cmp.Diff(wantHTML, gotHTML); diff != "" {
		t.Errorf("round-tripped document renders differently (-want +got):\n%s", diff)
	}

	// HTML alone doesn't surface a list's bullet marker or ordered
	// delimiter; render/markdown does, so compare through it too.
	wantMD := markdown.FormatString(doc)
	gotMD := markdown.FormatString(got)
	if diff := cmp.Diff(wantMD, gotMD); diff != "" {
		t.Errorf("round-tripped document formats differently (-want +got):\n%s", diff)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	doc := parseSample(t)
	data, err := ToYAML(doc)
	require.NoError(t, err)

	got, err := FromYAML(data)
	require.NoError(t, err)

	wantHTML := html.RenderString(doc)
	gotHTML := html.RenderString(got)
	if diff := cmp.Diff(wantHTML, gotHTML); diff != "" {
		t.Errorf("round-tripped document renders differently (-want +got):\n%s", diff)
	}

	wantMD := markdown.FormatString(doc)
	gotMD := markdown.FormatString(got)
	if diff := cmp.Diff(wantMD, gotMD); diff != "" {
		t.Errorf("round-tripped document formats differently (-want +got):\n%s", diff)
	}
}

func TestListMarkerAndDelimiterRoundTrip(t *testing.T) {
	doc, perr := mdast.Parse(mdast.NewConfig(), "+ a\n+ b\n")
	require.Nil(t, perr, "parse error: %v", perr)

	data, err := ToJSON(doc)
	require.NoError(t, err)
	got, err := FromJSON(data)
	require.NoError(t, err)

	l, ok := got.Blocks[0].(*mdast.List)
	require.True(t, ok, "got %T; want *mdast.List", got.Blocks[0])
	require.Equal(t, byte('+'), l.Form.Marker())

	doc2, perr := mdast.Parse(mdast.NewConfig(), "1) a\n2) b\n")
	require.Nil(t, perr, "parse error: %v", perr)
	data2, err := ToJSON(doc2)
	require.NoError(t, err)
	got2, err := FromJSON(data2)
	require.NoError(t, err)

	l2, ok := got2.Blocks[0].(*mdast.List)
	require.True(t, ok, "got %T; want *mdast.List", got2.Blocks[0])
	require.Equal(t, mdast.ParenDelimiter, l2.Form.Delimiter())
}

func TestFromJSONRejectsUnknownKind(t *testing.T) {
	_, err := FromJSON([]byte(`[{"kind":"bogus"}]`))
	require.Error(t, err)
}
