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

// Package htmlcontent provides a buffer of HTML content
// that mixes text to be encoded with already-encoded HTML
// and defers encoding until the content is rendered.
package htmlcontent

import (
	"io"
)

// Content is a fragment of HTML that can be written to a writer.
// Any text in the content that is not already HTML
// is passed through the given encoder.
type Content interface {
	Render(w io.Writer, enc Encoder) error
}

// An Encoder escapes raw text into a form that is safe to emit as HTML.
type Encoder interface {
	Encode(w io.Writer, s string) error
}

// EncoderFunc is a function that implements [Encoder].
type EncoderFunc func(w io.Writer, s string) error

// Encode calls f(w, s).
func (f EncoderFunc) Encode(w io.Writer, s string) error {
	return f(w, s)
}

// HTML is a string of already-encoded HTML.
// It is written verbatim and never passed through an encoder.
type HTML string

// Empty is content that renders nothing.
const Empty HTML = ""

// Render writes h to w.
func (h HTML) Render(w io.Writer, enc Encoder) error {
	if h == "" {
		return nil
	}
	_, err := io.WriteString(w, string(h))
	return err
}

// String returns h as a string.
func (h HTML) String() string {
	return string(h)
}
