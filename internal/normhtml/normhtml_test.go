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

package normhtml

import "testing"

func TestNormalizeHTML(t *testing.T) {
	tests := []struct {
		b    string
		want string
	}{
		{"<p>a  b</p>", "<p>a  b</p>"},
		{"<P CLASS=btn>x</P>", `<p class="btn">x</p>`},
		{"<br/>", "<br />"},
		{"<img src='a.png' />", `<img src="a.png" />`},
		{`<a title="bar" HREF="foo">x</a>`, `<a title="bar" href="foo">x</a>`},
		{"&forall;&amp;&gt;&lt;&quot;&#39;", "∀&amp;&gt;&lt;&quot;&#39;"},
		{`<p title="&apos;">`, `<p title="&#39;">`},
		{"<!-- x -->", "<!-- x -->"},
	}
	for _, test := range tests {
		if got := NormalizeHTML([]byte(test.b)); string(got) != test.want {
			t.Errorf("NormalizeHTML(%q) = %q; want %q", test.b, got, test.want)
		}
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		b    string
		want string
	}{
		{"", ""},
		{"<p>Hello, <b>World</b>!</p>", "Hello, World!"},
		{"<p>&lt;b&gt; &amp; &quot;</p>", `<b> & "`},
	}
	for _, test := range tests {
		if got := Text([]byte(test.b)); got != test.want {
			t.Errorf("Text(%q) = %q; want %q", test.b, got, test.want)
		}
	}
}

func TestAttr(t *testing.T) {
	tests := []struct {
		b      string
		name   string
		want   string
		wantOK bool
	}{
		{`<p class="btn">`, "class", "btn", true},
		{`<p class="a &amp; b">`, "class", "a & b", true},
		{`<p class="btn">`, "title", "", false},
		{`text`, "class", "", false},
	}
	for _, test := range tests {
		got, ok := Attr([]byte(test.b), test.name)
		if got != test.want || ok != test.wantOK {
			t.Errorf("Attr(%q, %q) = %q, %t; want %q, %t", test.b, test.name, got, ok, test.want, test.wantOK)
		}
	}
}
