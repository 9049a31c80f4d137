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

// Package secure implements context-aware output encoding for values
// interpolated into generated documents. Each filter takes the value for one
// interpolation site and returns a representation that cannot break out of
// the syntactic context it is written into:
//
//	HTML    HTML text or a double-quoted HTML attribute
//	JS      a single- or double-quoted JavaScript string literal
//	JSAttr  an HTML attribute carrying a JavaScript string
//	URI     a URI component
//	JSObj   JSON embedded in an HTML script block
//	CSS     a single CSS token or value
//	Style   an HTML attribute carrying CSS
//
// JSAttr and Style are compositions: the value is escaped for the inner
// context first and the escape characters this produces are then escaped for
// the surrounding HTML attribute. The order is fixed and applying the parts
// yourself in the other order is unsafe.
//
// The filters encode, they do not sanitize: already-embedded markup is
// escaped along with everything else, never stripped. They assume the
// template text around the interpolation site is static and trusted.
//
// Filters are pure functions over their input and are safe for concurrent
// use. None of them can fail except JSObj, which returns a
// SerializationError when its input has no JSON representation.
//
// Known limitation: characters are classified per UTF-16 code unit, the
// granularity the whitelists are defined at. A supplementary-plane character
// crosses the HTML filter as its two surrogate code units (both inside the
// whitelisted range) rather than as one scalar value, and the JS filter
// escapes it as a \uXXXX surrogate pair.
package secure
