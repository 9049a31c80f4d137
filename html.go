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

// Entity forms for the characters HTML gives mnemonic names.
const (
	htmlQuot = "&quot;"
	htmlAmp  = "&amp;"
	htmlLt   = "&lt;"
	htmlGt   = "&gt;"
)

// HTML encodes s for interpolation into HTML text or a double-quoted HTML
// attribute. C0/C1 control characters other than tab, LF and CR have no safe
// HTML form and are normalized to a single space; every other character
// outside the HTML whitelist becomes a named or numeric character reference.
func HTML(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case htmlIsControl(r):
			b.WriteByte(' ')
		case htmlIsSafe(r):
			b.WriteRune(r)
		default:
			htmlEscapeRune(&b, r)
		}
	}
	return b.String()
}

// htmlEscapeRune only ever sees printable ASCII in 0x21-0x7E: controls were
// normalized away and everything from NBSP up is whitelisted. The numeric
// writers rely on that range, two decimal digits below 100 and two hex
// digits above; widening the gap between the whitelists needs them made
// width-generic first.
func htmlEscapeRune(b *strings.Builder, r rune) {
	switch r {
	case '"':
		b.WriteString(htmlQuot)
	case '&':
		b.WriteString(htmlAmp)
	case '<':
		b.WriteString(htmlLt)
	case '>':
		b.WriteString(htmlGt)
	default:
		if r < 100 {
			b.WriteString("&#")
			b.WriteByte('0' + byte(r/10))
			b.WriteByte('0' + byte(r%10))
			b.WriteByte(';')
		} else {
			b.WriteString("&#x")
			b.WriteByte(hexUpper[r>>4])
			b.WriteByte(hexUpper[r&0xF])
			b.WriteByte(';')
		}
	}
}
