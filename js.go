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

// JS encodes s for interpolation into a single- or double-quoted JavaScript
// string literal. Everything outside the whitelist is hex-escaped, spaces
// included. The output is not safe in a bare script context outside a
// string literal.
func JS(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if jsIsSafe(r) {
			b.WriteRune(r)
		} else {
			jsEscapeRune(&b, r)
		}
	}
	return b.String()
}

// JSAttr encodes s for an HTML attribute whose value is a JavaScript string,
// such as an inline event handler. The value is neutralized for the JS
// string first; the backslashes and quotes that produces are then escaped
// for the surrounding attribute. Applying the two steps in the other order
// reopens the attribute quote.
func JSAttr(s string) string {
	return HTML(JS(s))
}
