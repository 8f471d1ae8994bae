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

package taghelper

import (
	"io"
	"strings"
	"testing"

	"zombiezen.com/go/taghelper/htmlcontent"
)

// bracketEncoder wraps text in a marker so tests can see
// exactly which text passed through the encoder.
var bracketEncoder = htmlcontent.EncoderFunc(func(w io.Writer, s string) error {
	_, err := io.WriteString(w, "Encode[["+s+"]]")
	return err
})

func renderString(tb testing.TB, c htmlcontent.Content, enc htmlcontent.Encoder) string {
	tb.Helper()
	if c == nil {
		tb.Fatal("content is nil")
	}
	sb := new(strings.Builder)
	if err := c.Render(sb, enc); err != nil {
		tb.Fatal("Render:", err)
	}
	return sb.String()
}

func buttonAttrs() []Attribute {
	return []Attribute{
		{"class", "btn"},
		{"something", "   spaced    "},
	}
}

func TestGenerateStartTag(t *testing.T) {
	tests := []struct {
		name        string
		tagName     string
		attrs       []Attribute
		selfClosing bool
		enc         htmlcontent.Encoder
		want        string
	}{
		{
			name:    "NoAttributes",
			tagName: "p",
			want:    "<p>",
		},
		{
			name:    "Attributes",
			tagName: "p",
			attrs:   buttonAttrs(),
			want:    `<p class="btn" something="   spaced    ">`,
		},
		{
			name:        "SelfClosingNoAttributes",
			tagName:     "p",
			selfClosing: true,
			want:        "<p />",
		},
		{
			name:        "SelfClosingAttributes",
			tagName:     "p",
			attrs:       buttonAttrs(),
			selfClosing: true,
			want:        `<p class="btn" something="   spaced    " />`,
		},
		{
			name:    "MapAttributes",
			tagName: "p",
			attrs:   AttributesFromMap(map[string]string{"title": "a b", "class": "btn"}),
			want:    `<p class="btn" title="a b">`,
		},
		{
			name:        "UsesProvidedEncoder",
			tagName:     "p",
			attrs:       []Attribute{{"hello", "world"}},
			selfClosing: true,
			enc:         bracketEncoder,
			want:        `<p hello="Encode[[world]]" />`,
		},
		{
			name:    "HTMLEncoder",
			tagName: "a",
			attrs:   []Attribute{{"title", `"Fish" & <Chips>`}},
			enc:     htmlcontent.HTMLEncoder,
			want:    `<a title="&quot;Fish&quot; &amp; &lt;Chips&gt;">`,
		},
		{
			name:    "ValueTypes",
			tagName: "input",
			attrs: []Attribute{
				{"disabled", true},
				{"maxlength", 10},
				{"step", 0.5},
				{"size", int64(3)},
				{"placeholder", nil},
				{"data-raw", htmlcontent.HTML("&amp;")},
			},
			enc:  htmlcontent.HTMLEncoder,
			want: `<input disabled="true" maxlength="10" step="0.5" size="3" placeholder="" data-raw="&amp;">`,
		},
		{
			name:        "WhitespaceTagName",
			tagName:     "  ",
			attrs:       buttonAttrs(),
			selfClosing: true,
			want:        "",
		},
		{
			name:    "EmptyTagName",
			tagName: "",
			attrs:   buttonAttrs(),
			want:    "",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			o := NewOutput(test.tagName, test.attrs...)
			o.SelfClosing = test.selfClosing
			o.PreContent().SetContent("Hello World")
			enc := test.enc
			if enc == nil {
				enc = htmlcontent.RawEncoder
			}
			if got := renderString(t, o.GenerateStartTag(), enc); got != test.want {
				t.Errorf("GenerateStartTag() = %q; want %q", got, test.want)
			}
		})
	}
}

func TestGenerateStartTagReadsAttributesAtRender(t *testing.T) {
	o := NewOutput("p", Attribute{"class", "btn"})
	tag := o.GenerateStartTag()
	o.Attributes.Set("title", "late")
	if got, want := renderString(t, tag, htmlcontent.RawEncoder), `<p class="btn" title="late">`; got != want {
		t.Errorf("GenerateStartTag() = %q; want %q", got, want)
	}
}

func TestNewOutputCopiesAttributes(t *testing.T) {
	attrs := []Attribute{{"class", "btn"}}
	o := NewOutput("p", attrs...)
	attrs[0].Value = "changed"
	if got, ok := o.Attributes.Get("class"); !ok || got.Value != "btn" {
		t.Errorf(`Attributes.Get("class") = %v, %t; want {class btn}, true`, got, ok)
	}
}

func TestAttributesIgnoreCase(t *testing.T) {
	tests := []struct {
		originalName string
		updateName   string
	}{
		{"class", "ClASs"},
		{"CLaSs", "class"},
		{"cLaSs", "cLasS"},
	}
	for _, test := range tests {
		o := NewOutput("p", Attribute{test.originalName, "btn"})
		o.Attributes.Set(test.updateName, "super button")
		if o.Attributes.Len() != 1 {
			t.Errorf("after Set(%q): Len() = %d; want 1", test.updateName, o.Attributes.Len())
			continue
		}
		want := Attribute{test.originalName, "super button"}
		if got := o.Attributes.At(0); got != want {
			t.Errorf("after Set(%q): At(0) = %v; want %v", test.updateName, got, want)
		}
	}
}

func TestGenerateEndTag(t *testing.T) {
	tests := []struct {
		name        string
		tagName     string
		selfClosing bool
		want        string
	}{
		{name: "Tag", tagName: "p", want: "</p>"},
		{name: "SelfClosing", tagName: "p", selfClosing: true, want: ""},
		{name: "Whitespace", tagName: " ", want: ""},
		{name: "Empty", tagName: "", want: ""},
		{name: "TagNameNotEncoded", tagName: "my-tag", want: "</my-tag>"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			o := NewOutput(test.tagName)
			o.SelfClosing = test.selfClosing
			o.Content().Append("Hello World")
			if got := renderString(t, o.GenerateEndTag(), bracketEncoder); got != test.want {
				t.Errorf("GenerateEndTag() = %q; want %q", got, test.want)
			}
		})
	}
}

func TestGenerateContentSlots(t *testing.T) {
	tests := []struct {
		name        string
		tagName     string
		selfClosing bool
		wantNil     bool
	}{
		{name: "Tag", tagName: "p"},
		{name: "SelfClosingTag", tagName: "p", selfClosing: true, wantNil: true},
		{name: "EmptyTagName", tagName: ""},
		{name: "EmptyTagNameSelfClosing", tagName: "", selfClosing: true},
		{name: "WhitespaceTagName", tagName: "\t"},
		{name: "WhitespaceTagNameSelfClosing", tagName: "\t", selfClosing: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			o := NewOutput(test.tagName)
			o.SelfClosing = test.selfClosing
			o.PreContent().Append("Pre")
			o.Content().Append("Content")
			o.PostContent().Append("Post")

			slots := []struct {
				name string
				got  htmlcontent.Content
				buf  *htmlcontent.Buffer
			}{
				{"GeneratePreContent", o.GeneratePreContent(), o.PreContent()},
				{"GenerateContent", o.GenerateContent(), o.Content()},
				{"GeneratePostContent", o.GeneratePostContent(), o.PostContent()},
			}
			for _, slot := range slots {
				if test.wantNil {
					if slot.got != nil {
						t.Errorf("%s() = %#v; want nil", slot.name, slot.got)
					}
					continue
				}
				if slot.got != htmlcontent.Content(slot.buf) {
					t.Errorf("%s() = %#v; want the output's buffer", slot.name, slot.got)
				}
			}
		})
	}
}

func TestContentBuffersAreIndependent(t *testing.T) {
	o := NewOutput("p")
	o.PostContent().SetContent("Hello World")
	if got, want := o.PostContent().String(), "Hello World"; got != want {
		t.Errorf("PostContent().String() = %q; want %q", got, want)
	}
	if o.PreContent().IsModified() || o.Content().IsModified() {
		t.Error("setting post-content modified another buffer")
	}
	if o.IsContentModified() {
		t.Error("IsContentModified() = true; want false")
	}
	o.Content().SetContent("")
	if !o.IsContentModified() {
		t.Error(`after Content().SetContent(""): IsContentModified() = false; want true`)
	}
}

func TestSuppressOutput(t *testing.T) {
	o := NewOutput("p", buttonAttrs()...)
	o.PreContent().Append("Pre Content")
	o.Content().Append("Content")
	o.PostContent().Append("Post Content")

	o.SuppressOutput()

	if o.TagName != "" {
		t.Errorf("TagName = %q; want \"\"", o.TagName)
	}
	if got := renderString(t, o.GenerateStartTag(), bracketEncoder); got != "" {
		t.Errorf("GenerateStartTag() = %q; want \"\"", got)
	}
	if got := renderString(t, o.GenerateEndTag(), bracketEncoder); got != "" {
		t.Errorf("GenerateEndTag() = %q; want \"\"", got)
	}
	slots := []struct {
		name string
		c    htmlcontent.Content
	}{
		{"GeneratePreContent", o.GeneratePreContent()},
		{"GenerateContent", o.GenerateContent()},
		{"GeneratePostContent", o.GeneratePostContent()},
	}
	for _, slot := range slots {
		if slot.c == nil {
			t.Errorf("%s() = nil; want empty buffer", slot.name)
			continue
		}
		if got := renderString(t, slot.c, bracketEncoder); got != "" {
			t.Errorf("%s() renders %q; want \"\"", slot.name, got)
		}
	}
	if got := o.Content().String(); got != "" {
		t.Errorf("Content().String() = %q; want \"\"", got)
	}
	if !o.IsContentModified() {
		t.Error("IsContentModified() = false; want true")
	}

	// Suppressing again is harmless, and the output can still be changed.
	o.SuppressOutput()
	o.TagName = "span"
	o.Content().Append("again")
	if got, want := renderString(t, o, htmlcontent.RawEncoder), `<span class="btn" something="   spaced    ">again</span>`; got != want {
		t.Errorf("Render = %q; want %q", got, want)
	}
}

func TestOutputRender(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Output
		want  string
	}{
		{
			name: "Element",
			build: func() *Output {
				o := NewOutput("p", Attribute{"class", "btn"}, Attribute{"title", "a b"})
				o.PreContent().AppendEncoded("<b>")
				o.Content().Append("x < y")
				o.PostContent().AppendEncoded("</b>")
				return o
			},
			want: `<p class="btn" title="a b"><b>x &lt; y</b></p>`,
		},
		{
			name: "SelfClosing",
			build: func() *Output {
				o := NewOutput("br")
				o.SelfClosing = true
				o.Content().Append("ignored")
				return o
			},
			want: "<br />",
		},
		{
			name: "NoTagName",
			build: func() *Output {
				o := NewOutput("")
				o.SelfClosing = true
				o.PreContent().Append("a")
				o.Content().Append("b")
				o.PostContent().Append("c")
				return o
			},
			want: "abc",
		},
		{
			name: "Nested",
			build: func() *Output {
				inner := NewOutput("em")
				inner.Content().Append("&")
				outer := NewOutput("div", Attribute{"id", "x"})
				outer.Content().AppendContent(inner)
				return outer
			},
			want: `<div id="x"><em>&amp;</em></div>`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			o := test.build()
			if got := renderString(t, o, htmlcontent.HTMLEncoder); got != test.want {
				t.Errorf("Render = %q; want %q", got, test.want)
			}
		})
	}
}
