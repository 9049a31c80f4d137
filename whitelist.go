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

// Every context gets its own whitelist: the set of code points inert in that
// syntax, left unescaped. The whitelists are close but never identical, so
// they are kept apart rather than merged behind flags.

var hexUpper = []byte("0123456789ABCDEF")

func isAlnum(r rune) bool {
	return '0' <= r && r <= '9' || 'A' <= r && r <= 'Z' || 'a' <= r && r <= 'z'
}

// htmlIsControl reports whether r is a C0/C1 control character with no HTML
// representation at all. Tab, LF and CR are excluded; they are ordinary
// whitespace in HTML.
func htmlIsControl(r rune) bool {
	switch {
	case r <= 0x08, r == 0x0B, r == 0x0C, 0x0E <= r && r <= 0x1F, 0x7F <= r && r <= 0x9F:
		return true
	}
	return false
}

func htmlIsSafe(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', ',', '.', '_', '-':
		return true
	}
	// Everything from NBSP up passes through. Surrogate halves sit inside
	// this range, so supplementary-plane characters survive as their two
	// UTF-16 code units.
	return isAlnum(r) || r >= 0xA0
}

func jsIsSafe(r rune) bool {
	switch r {
	case ',', '.', '-', '_':
		return true
	}
	return isAlnum(r)
}

// jsonIsSafe keeps the characters JSON needs for its own structure, so the
// serialized text stays parseable after the script-embedding escape pass.
func jsonIsSafe(r rune) bool {
	switch r {
	case ',', '.', '-', ':', '_', '"', '\\', '[', ']', '{', '}':
		return true
	}
	return isAlnum(r)
}

// cssIsSafe admits code points above the BMP so a surrogate pair is kept
// whole instead of turning into a broken half-surrogate escape.
func cssIsSafe(r rune) bool {
	return isAlnum(r) || r > 0xFFFF
}

// uriIsSafe covers the RFC 3986 unreserved set minus tilde, which keeps
// special meaning in enough URI sub-contexts to be worth encoding.
func uriIsSafe(c byte) bool {
	return c == '-' || c == '_' || c == '.' || isAlnum(rune(c))
}
