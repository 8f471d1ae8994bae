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
	"context"
	"io"

	"github.com/a-h/templ"
)

type component struct {
	ctx context.Context
	c   templ.Component
}

// FromComponent returns content that renders a templ component.
// The component performs its own escaping,
// so the encoder passed to Render is not used.
// ctx is passed to the component each time the content is rendered.
func FromComponent(ctx context.Context, c templ.Component) Content {
	if c == nil {
		return nil
	}
	return component{ctx, c}
}

func (c component) Render(w io.Writer, enc Encoder) error {
	return c.c.Render(c.ctx, w)
}

// ToComponent returns a templ component that renders c with enc.
// A nil enc is treated as [HTMLEncoder].
// The component ignores its context.
func ToComponent(c Content, enc Encoder) templ.Component {
	if enc == nil {
		enc = HTMLEncoder
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if c == nil {
			return nil
		}
		return c.Render(w, enc)
	})
}
