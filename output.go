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

// Package taghelper provides the output model for tag helpers:
// components that rewrite an HTML element during server-side rendering.
//
// A tag helper receives an [Output] for the element it is processing,
// changes its tag name, attributes, and content,
// and the page renders the result.
// Text is only encoded when the output is rendered,
// so the encoder is chosen once by the page rather than by each tag helper.
package taghelper

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"zombiezen.com/go/taghelper/htmlcontent"
)

// Output is the element produced by a tag helper.
type Output struct {
	// TagName is the element's tag name.
	// An empty or all-whitespace tag name
	// results in no start or end tag being rendered.
	TagName string
	// SelfClosing indicates whether the element is rendered as a self-closing tag.
	// A self-closing element with a tag name renders none of its content.
	SelfClosing bool
	// Attributes holds the element's attributes in rendering order.
	Attributes Attributes

	preContent  htmlcontent.Buffer
	content     htmlcontent.Buffer
	postContent htmlcontent.Buffer
}

// NewOutput returns a new output for an element.
// The attributes are copied as if by [NewAttributes],
// so the caller may reuse attrs afterward.
func NewOutput(tagName string, attrs ...Attribute) *Output {
	return &Output{
		TagName:    tagName,
		Attributes: *NewAttributes(attrs...),
	}
}

// PreContent returns the buffer rendered after the start tag
// and before [Output.Content].
func (o *Output) PreContent() *htmlcontent.Buffer {
	return &o.preContent
}

// Content returns the element's main content buffer.
func (o *Output) Content() *htmlcontent.Buffer {
	return &o.content
}

// PostContent returns the buffer rendered after [Output.Content]
// and before the end tag.
func (o *Output) PostContent() *htmlcontent.Buffer {
	return &o.postContent
}

// IsContentModified reports whether [Output.Content] has been modified.
func (o *Output) IsContentModified() bool {
	return o.content.IsModified()
}

func (o *Output) hasTagName() bool {
	return strings.TrimSpace(o.TagName) != ""
}

// omitsContent reports whether the Generate*Content methods return nil.
func (o *Output) omitsContent() bool {
	return o.hasTagName() && o.SelfClosing
}

// GenerateStartTag returns the element's start tag,
// or empty content if the output does not have a tag name.
// The tag name and self-closing flag are read when GenerateStartTag is called.
// The attributes are read when the returned content is rendered.
func (o *Output) GenerateStartTag() htmlcontent.Content {
	return o.startTag(false)
}

func (o *Output) startTag(escaped bool) htmlcontent.Content {
	if !o.hasTagName() {
		return htmlcontent.Empty
	}
	return &startTag{
		name:        o.TagName,
		attrs:       &o.Attributes,
		selfClosing: o.SelfClosing,
		escaped:     escaped,
	}
}

// GeneratePreContent returns [Output.PreContent] for rendering.
// It returns nil if the output has a tag name and is self-closing,
// in which case nothing should be rendered.
func (o *Output) GeneratePreContent() htmlcontent.Content {
	if o.omitsContent() {
		return nil
	}
	return &o.preContent
}

// GenerateContent returns [Output.Content] for rendering.
// It returns nil if the output has a tag name and is self-closing,
// in which case nothing should be rendered.
func (o *Output) GenerateContent() htmlcontent.Content {
	if o.omitsContent() {
		return nil
	}
	return &o.content
}

// GeneratePostContent returns [Output.PostContent] for rendering.
// It returns nil if the output has a tag name and is self-closing,
// in which case nothing should be rendered.
func (o *Output) GeneratePostContent() htmlcontent.Content {
	if o.omitsContent() {
		return nil
	}
	return &o.postContent
}

// GenerateEndTag returns the element's end tag,
// or empty content if the output is self-closing
// or does not have a tag name.
func (o *Output) GenerateEndTag() htmlcontent.Content {
	return o.endTag(false)
}

func (o *Output) endTag(escaped bool) htmlcontent.Content {
	if o.SelfClosing || !o.hasTagName() {
		return htmlcontent.Empty
	}
	if escaped {
		return htmlcontent.HTML("&lt;/" + o.TagName + ">")
	}
	return htmlcontent.HTML("</" + o.TagName + ">")
}

// SuppressOutput changes the output to render nothing
// by clearing the tag name and all content.
// The output may still be changed afterward.
func (o *Output) SuppressOutput() {
	o.TagName = ""
	o.preContent.Clear()
	o.content.Clear()
	o.postContent.Clear()
}

// Render writes the whole element to w:
// the start tag, pre-content, content, post-content, and end tag.
// This allows an Output to be appended to another output's content.
// When rendered by a [Renderer], nested outputs are subject to
// the same tag filtering as the outputs passed to [Renderer.Render].
func (o *Output) Render(w io.Writer, enc htmlcontent.Encoder) error {
	filtered := false
	if fe, ok := enc.(*filterEncoder); ok {
		filtered = fe.filter(o)
	}
	return o.render(w, enc, filtered)
}

func (o *Output) render(w io.Writer, enc htmlcontent.Encoder, escaped bool) error {
	parts := [...]htmlcontent.Content{
		o.startTag(escaped),
		o.GeneratePreContent(),
		o.GenerateContent(),
		o.GeneratePostContent(),
		o.endTag(escaped),
	}
	for _, c := range parts {
		if c == nil {
			continue
		}
		if err := c.Render(w, enc); err != nil {
			return err
		}
	}
	return nil
}

type startTag struct {
	name        string
	attrs       *Attributes
	selfClosing bool
	// escaped is true if the opening angle bracket should be written as "&lt;".
	escaped bool
}

func (tag *startTag) Render(w io.Writer, enc htmlcontent.Encoder) error {
	ew := &errWriter{w: w}
	if tag.escaped {
		ew.WriteString("&lt;")
	} else {
		ew.WriteString("<")
	}
	ew.WriteString(tag.name)
	for _, attr := range tag.attrs.All() {
		ew.WriteString(" ")
		ew.WriteString(attr.Key)
		ew.WriteString(`="`)
		if err := renderAttributeValue(ew, enc, attr.Value); err != nil {
			return err
		}
		ew.WriteString(`"`)
	}
	if tag.selfClosing {
		ew.WriteString(" />")
	} else {
		ew.WriteString(">")
	}
	return ew.err
}

// renderAttributeValue writes an attribute value through enc.
// Content values render themselves with enc.
func renderAttributeValue(w io.Writer, enc htmlcontent.Encoder, value any) error {
	var s string
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		s = v
	case htmlcontent.Content:
		return v.Render(w, enc)
	case bool:
		s = strconv.FormatBool(v)
	case int:
		s = strconv.Itoa(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	case float64:
		s = strconv.FormatFloat(v, 'g', -1, 64)
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}
	return enc.Encode(w, s)
}

// errWriter is a writer that remembers the first error
// so a sequence of writes only needs to be checked once.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = w.w.Write(p)
	return n, w.err
}

func (w *errWriter) WriteString(s string) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = io.WriteString(w.w, s)
	return n, w.err
}
