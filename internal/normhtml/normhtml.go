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

// Package normhtml provides functions for inspecting rendered HTML in tests
// independently of how the HTML was escaped.
package normhtml

import (
	"bytes"
	"strings"

	"go4.org/bytereplacer"
	"golang.org/x/net/html"
)

var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	`'`, "&#39;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// NormalizeHTML re-serializes HTML so that equivalent markup compares equal.
// Tag and attribute names are lowercased,
// entities are decoded and the five HTML special characters re-escaped,
// attribute values are double-quoted,
// and self-closing tags are written as "<name />".
// Attribute order is preserved.
func NormalizeHTML(b []byte) []byte {
	tok := html.NewTokenizerFragment(bytes.NewReader(b), "div")
	var output []byte
	for {
		tt := tok.Next()
		switch tt {
		case html.ErrorToken:
			return output
		case html.TextToken:
			output = append(output, htmlEscaper.Replace(bytes.Clone(tok.Text()))...)
		case html.StartTagToken, html.SelfClosingTagToken:
			tagBytes, hasAttr := tok.TagName()
			output = append(output, "<"...)
			output = append(output, tagBytes...)
			for hasAttr {
				var k, v []byte
				k, v, hasAttr = tok.TagAttr()
				output = append(output, " "...)
				output = append(output, k...)
				output = append(output, `="`...)
				output = append(output, htmlEscaper.Replace(bytes.Clone(v))...)
				output = append(output, `"`...)
			}
			if tt == html.SelfClosingTagToken {
				output = append(output, " />"...)
			} else {
				output = append(output, ">"...)
			}
		case html.EndTagToken:
			tagBytes, _ := tok.TagName()
			output = append(output, "</"...)
			output = append(output, tagBytes...)
			output = append(output, ">"...)
		case html.CommentToken, html.DoctypeToken:
			output = append(output, tok.Raw()...)
		}
	}
}

// Text returns the decoded text of an HTML fragment
// with all markup removed.
func Text(b []byte) string {
	tok := html.NewTokenizerFragment(bytes.NewReader(b), "div")
	sb := new(strings.Builder)
	for {
		switch tok.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.TextToken:
			sb.Write(tok.Text())
		}
	}
}

// Attr returns the decoded value of the named attribute
// on the first start tag in b.
func Attr(b []byte, name string) (_ string, ok bool) {
	tok := html.NewTokenizerFragment(bytes.NewReader(b), "div")
	for {
		switch tok.Next() {
		case html.ErrorToken:
			return "", false
		case html.StartTagToken, html.SelfClosingTagToken:
			_, hasAttr := tok.TagName()
			for hasAttr {
				var k, v []byte
				k, v, hasAttr = tok.TagAttr()
				if string(k) == name {
					return string(v), true
				}
			}
			return "", false
		}
	}
}
