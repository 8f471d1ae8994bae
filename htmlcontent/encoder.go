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

package htmlcontent

import (
	"io"
	"strings"

	"go4.org/bytereplacer"
)

const htmlSpecialChars = `&'<>"`

var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	// "&#39;" is shorter than "&apos;" and apos was not in HTML until HTML5.
	`'`, "&#39;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// HTMLEncoder escapes the characters that are significant in HTML text
// and in double- or single-quoted attribute values.
var HTMLEncoder Encoder = EncoderFunc(encodeHTML)

// RawEncoder writes text unchanged.
// It is only suitable for inspecting content, not for producing HTML.
var RawEncoder Encoder = EncoderFunc(encodeRaw)

func encodeHTML(w io.Writer, s string) error {
	if !strings.ContainsAny(s, htmlSpecialChars) {
		return encodeRaw(w, s)
	}
	_, err := w.Write(htmlEscaper.Replace([]byte(s)))
	return err
}

func encodeRaw(w io.Writer, s string) error {
	if s == "" {
		return nil
	}
	_, err := io.WriteString(w, s)
	return err
}
