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
	"fmt"
	"io"

	"golang.org/x/net/html/atom"
	"zombiezen.com/go/taghelper/htmlcontent"
)

// A Renderer writes tag helper outputs as HTML.
//
// # Security considerations
//
// Tag names and attribute keys are written as-is:
// only text content and attribute values pass through the encoder.
// Tag helpers that copy untrusted input into a tag name
// can introduce [Cross-Site Scripting (XSS)] vulnerabilities.
// FilterTag can be used to prevent some elements from being emitted
// while still showing their source text.
//
// [Cross-Site Scripting (XSS)]: https://owasp.org/www-community/attacks/xss/
type Renderer struct {
	// Encoder is used to encode text and attribute values.
	// If Encoder is nil, then [htmlcontent.HTMLEncoder] is used.
	Encoder htmlcontent.Encoder
	// FilterTag is a predicate function
	// that reports whether an element with the given lowercased tag name
	// should have its leading angle brackets escaped.
	// If FilterTag is nil, then no filtering will occur.
	//
	// FilterTag functions must not modify the byte slice
	// nor retain the slice after the function returns.
	FilterTag func(tag []byte) bool
}

// Render writes each of the outputs to w in order.
// nil outputs are skipped.
// It will return the first error encountered, if any.
func (r *Renderer) Render(w io.Writer, outputs ...*Output) error {
	enc := r.Encoder
	if enc == nil {
		enc = htmlcontent.HTMLEncoder
	}
	if r.FilterTag != nil {
		enc = &filterEncoder{Encoder: enc, filterTag: r.FilterTag}
	}
	for _, o := range outputs {
		if o == nil {
			continue
		}
		if err := o.Render(w, enc); err != nil {
			return fmt.Errorf("render tag helper output: %w", err)
		}
	}
	return nil
}

// filterEncoder carries a Renderer's FilterTag through content,
// so that outputs nested in other outputs' buffers are filtered too.
type filterEncoder struct {
	htmlcontent.Encoder
	filterTag func(tag []byte) bool
	lowerBuf  []byte
}

// filter reports whether o's tag should be escaped.
func (fe *filterEncoder) filter(o *Output) bool {
	if !o.hasTagName() {
		return false
	}
	return fe.filterTag(maybeLower([]byte(o.TagName), &fe.lowerBuf))
}

func maybeLower(x []byte, buf *[]byte) []byte {
	hasUpper := false
	for _, b := range x {
		if 'A' <= b && b <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return x
	}

	*buf = (*buf)[:0]
	for _, b := range x {
		if 'A' <= b && b <= 'Z' {
			*buf = append(*buf, b-'A'+'a')
		} else {
			*buf = append(*buf, b)
		}
	}
	return *buf
}

// FilterTagGFM performs the same tag filtering as the
// GitHub Flavored Markdown [tagfilter extension].
// It is suitable for use as the FilterTag field in [Renderer].
//
// [tagfilter extension]: https://github.github.com/gfm/#disallowed-raw-html-extension-
func FilterTagGFM(tag []byte) bool {
	tagAtom := atom.Lookup(tag)
	return tagAtom == atom.Title ||
		tagAtom == atom.Textarea ||
		tagAtom == atom.Style ||
		tagAtom == atom.Xmp ||
		tagAtom == atom.Iframe ||
		tagAtom == atom.Noembed ||
		tagAtom == atom.Noframes ||
		tagAtom == atom.Script ||
		tagAtom == atom.Plaintext
}
