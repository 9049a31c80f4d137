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

import (
	"strings"
	"unicode/utf16"
)

// jsEscapeRune writes the backslash escape of r in JavaScript string-literal
// grammar. Runes above the BMP are split into their UTF-16 surrogate pair
// and escaped as two units, which is how a JS engine stores them anyway.
// Shared by the JS and JSON filters.
func jsEscapeRune(b *strings.Builder, r rune) {
	if r > 0xFFFF {
		hi, lo := utf16.EncodeRune(r)
		jsEscapeUnit(b, hi)
		jsEscapeUnit(b, lo)
		return
	}
	jsEscapeUnit(b, r)
}

// jsEscapeUnit escapes a single UTF-16 code unit: \xHH below 0x80, \uHHHH up
// to 0xFFFF. A unit cannot need more than four hex digits, but if one ever
// did the replacement character is emitted instead of an invalid escape.
func jsEscapeUnit(b *strings.Builder, u rune) {
	switch {
	case u < 0x80:
		b.WriteByte('\\')
		b.WriteByte('x')
		b.WriteByte(hexUpper[u>>4])
		b.WriteByte(hexUpper[u&0xF])
	case u <= 0xFFFF:
		b.WriteByte('\\')
		b.WriteByte('u')
		b.WriteByte(hexUpper[u>>12])
		b.WriteByte(hexUpper[u>>8&0xF])
		b.WriteByte(hexUpper[u>>4&0xF])
		b.WriteByte(hexUpper[u&0xF])
	default:
		b.WriteString(`\uFFFD`)
	}
}
