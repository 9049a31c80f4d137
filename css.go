// Copyright 2016 José Santos <henrique_1609@me.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package secure

import "strings"

var hexLower = []byte("0123456789abcdef")

// CSS encodes s as a single CSS token or value; it is not safe for
// selector- or rule-level syntax. Everything that is not an ASCII letter or
// digit becomes a hex escape closed by the mandatory trailing space. NUL has
// no escape that decodes back to itself in CSS and comes out as the
// replacement character escape.
func CSS(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case cssIsSafe(r):
			b.WriteRune(r)
		case r == 0:
			b.WriteString(`\fffd `)
		default:
			cssEscapeRune(&b, r)
		}
	}
	return b.String()
}

// cssEscapeRune writes r as a CSS hex escape, lowercase, no zero padding,
// terminated by the space CSS uses to delimit hex escapes.
func cssEscapeRune(b *strings.Builder, r rune) {
	b.WriteByte('\\')
	started := false
	for shift := 28; shift >= 0; shift -= 4 {
		d := r >> uint(shift) & 0xF
		if d == 0 && !started {
			continue
		}
		started = true
		b.WriteByte(hexLower[d])
	}
	b.WriteByte(' ')
}

// Style encodes s for an HTML attribute carrying CSS, escaping for the CSS
// token first and then escaping the resulting backslashes for the
// surrounding attribute.
func Style(s string) string {
	return HTML(CSS(s))
}
