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

//go:generate stringer -type=FragmentKind -output=fragmentkind_string.go

package htmlcontent

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// FragmentKind is an enumeration of the kinds of [Fragment].
type FragmentKind uint8

const (
	// LiteralFragment is text that is encoded when rendered.
	LiteralFragment FragmentKind = 1 + iota
	// EncodedFragment is already-encoded HTML that is written verbatim.
	EncodedFragment
	// ContentFragment is a [Content] value that renders itself.
	ContentFragment
)

// A Fragment is a single unit of a [Buffer].
// The zero value renders nothing.
type Fragment struct {
	kind    FragmentKind
	text    string
	content Content
}

// Kind returns the fragment's kind or zero for the zero Fragment.
func (f Fragment) Kind() FragmentKind {
	return f.kind
}

// Text returns the text of a [LiteralFragment] or an [EncodedFragment].
// It returns the empty string for other kinds of fragments.
func (f Fragment) Text() string {
	return f.text
}

// Content returns the content of a [ContentFragment] or nil.
func (f Fragment) Content() Content {
	return f.content
}

// Render writes the fragment to w.
func (f Fragment) Render(w io.Writer, enc Encoder) error {
	switch f.kind {
	case LiteralFragment:
		return enc.Encode(w, f.text)
	case EncodedFragment:
		return HTML(f.text).Render(w, enc)
	case ContentFragment:
		return f.content.Render(w, enc)
	default:
		return nil
	}
}

// A Buffer is a sequence of content fragments
// that are encoded only when the buffer is rendered.
// Appending a Buffer to another Buffer copies its fragments,
// so a Buffer never nests another Buffer.
//
// A Buffer also records whether it has been modified,
// which distinguishes a buffer that was never written to
// from one that was explicitly set to empty.
//
// The zero value is an empty, unmodified buffer.
type Buffer struct {
	frags    []Fragment
	modified bool
}

// Append appends text to b that will be encoded when b is rendered.
func (b *Buffer) Append(text string) {
	b.modified = true
	if text != "" {
		b.frags = append(b.frags, Fragment{kind: LiteralFragment, text: text})
	}
}

// Appendf formats according to a format specifier
// and appends the resulting text to b.
func (b *Buffer) Appendf(format string, args ...any) {
	b.Append(fmt.Sprintf(format, args...))
}

// AppendEncoded appends already-encoded HTML to b.
func (b *Buffer) AppendEncoded(text string) {
	b.modified = true
	if text != "" {
		b.frags = append(b.frags, Fragment{kind: EncodedFragment, text: text})
	}
}

// AppendContent appends c to b.
// If c is a *Buffer, its fragments are copied into b.
// AppendContent does nothing, and does not mark b as modified,
// if c is nil, an empty *Buffer, or empty HTML.
func (b *Buffer) AppendContent(c Content) {
	switch c := c.(type) {
	case nil:
		return
	case *Buffer:
		if c.IsEmpty() {
			return
		}
		b.frags = append(b.frags, c.frags...)
	case HTML:
		if c == "" {
			return
		}
		b.frags = append(b.frags, Fragment{kind: EncodedFragment, text: string(c)})
	default:
		b.frags = append(b.frags, Fragment{kind: ContentFragment, content: c})
	}
	b.modified = true
}

// SetContent replaces b's fragments with text.
// b is marked as modified even if text is empty.
func (b *Buffer) SetContent(text string) {
	b.Clear()
	b.Append(text)
}

// SetEncodedContent replaces b's fragments with already-encoded HTML.
func (b *Buffer) SetEncodedContent(text string) {
	b.Clear()
	b.AppendEncoded(text)
}

// SetContentFrom replaces b's fragments with c.
// b is marked as modified even if c is nil.
func (b *Buffer) SetContentFrom(c Content) {
	b.Clear()
	b.AppendContent(c)
}

// Clear removes all fragments from b and marks b as modified.
func (b *Buffer) Clear() {
	clear(b.frags)
	b.frags = b.frags[:0]
	b.modified = true
}

// IsModified reports whether any method that changes the buffer
// has been called.
func (b *Buffer) IsModified() bool {
	return b != nil && b.modified
}

// IsEmpty reports whether b has no fragments.
func (b *Buffer) IsEmpty() bool {
	return b.Len() == 0
}

// Len returns the number of fragments in b.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.frags)
}

// Fragments returns an iterator over b's fragments.
// The buffer must not be modified during iteration.
func (b *Buffer) Fragments() iter.Seq[Fragment] {
	return func(yield func(Fragment) bool) {
		for i := 0; i < b.Len(); i++ {
			if !yield(b.frags[i]) {
				return
			}
		}
	}
}

// Render writes each of b's fragments to w in order.
// Text fragments are passed through enc.
// Render does not change b, so it may be called any number of times.
func (b *Buffer) Render(w io.Writer, enc Encoder) error {
	if b == nil {
		return nil
	}
	for _, f := range b.frags {
		if err := f.Render(w, enc); err != nil {
			return err
		}
	}
	return nil
}

// String returns the buffer's content rendered with [RawEncoder].
// It is intended for debugging and tests:
// use [Buffer.Render] with a real encoder to produce HTML.
// If a fragment fails to render, String stops there
// and ends the result with "%!(RENDER=<error>)",
// similar to how package fmt reports bad verbs.
func (b *Buffer) String() string {
	sb := new(strings.Builder)
	if err := b.Render(sb, RawEncoder); err != nil {
		sb.WriteString("%!(RENDER=")
		sb.WriteString(err.Error())
		sb.WriteString(")")
	}
	return sb.String()
}
