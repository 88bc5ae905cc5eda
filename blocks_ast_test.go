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

import "testing"

func TestHeadingForm(t *testing.T) {
	f := ATX(3)
	if f.Variant() != ATXHeading || f.Level() != 3 {
		t.Errorf("ATX(3) = %+v", f)
	}
	f = Setext(2)
	if f.Variant() != SetextHeading || f.Level() != 2 {
		t.Errorf("Setext(2) = %+v", f)
	}
}

func TestListForm(t *testing.T) {
	bullet := Bullet('*')
	if bullet.IsOrdered() || bullet.Marker() != '*' {
		t.Errorf("Bullet('*') = %+v", bullet)
	}
	ordered := Ordered(5, ParenDelimiter)
	if !ordered.IsOrdered() || ordered.Start() != 5 || ordered.Delimiter() != ParenDelimiter {
		t.Errorf("Ordered(5, ParenDelimiter) = %+v", ordered)
	}
}

func TestCodeBlockForm(t *testing.T) {
	if f := Indented(); f.IsFenced() {
		t.Error("Indented().IsFenced() = true; want false")
	}
	f := Fenced("go")
	if !f.IsFenced() || f.InfoString() != "go" {
		t.Errorf("Fenced(\"go\") = %+v", f)
	}
}

func TestBaseUserData(t *testing.T) {
	var b base
	if b.Data() != nil {
		t.Error("zero base.Data() is not nil")
	}
	b.SetData(42)
	if b.Data() != 42 {
		t.Errorf("b.Data() = %v; want 42", b.Data())
	}
}

func TestBlockKindString(t *testing.T) {
	if got := ParagraphKind.String(); got != "ParagraphKind" {
		t.Errorf("ParagraphKind.String() = %q", got)
	}
}

func TestAlignmentString(t *testing.T) {
	tests := map[Alignment]string{
		AlignNone:   "None",
		AlignLeft:   "Left",
		AlignCenter: "Center",
		AlignRight:  "Right",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("%v.String() = %q; want %q", a, got, want)
		}
	}
}

func TestAlertKindString(t *testing.T) {
	if got := AlertWarning.String(); got != "Warning" {
		t.Errorf("AlertWarning.String() = %q", got)
	}
}
