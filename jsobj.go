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
	"bytes"
	"encoding/json"
	"strings"
)

// SerializationError reports a value the JSON filter could not serialize,
// such as a cyclic structure or an unsupported type. It is the only failure
// mode in the package and signals a programming error, not a transient
// condition.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return "secure: value cannot be serialized to JSON: " + e.Err.Error()
}

func (e *SerializationError) Unwrap() error { return e.Err }

// cdataSafe is the escaped spelling of the ]]> CDATA closure.
const cdataSafe = `\x5D\x5D\x3E`

// JSObj serializes v to JSON and encodes the result for embedding inside an
// HTML script block. Forward slash and angle brackets are hex-escaped even
// though JSON allows them literally, so a closing </script> can never appear
// in the output; the JSON structure itself (quotes, brackets, colons) stays
// intact and the result still parses as a JavaScript expression.
//
// A nil value means "no value" and yields the empty string without being
// serialized, so callers can tell absence apart from the JSON text for null.
// Null is still reachable through a typed nil pointer.
func JSObj(v interface{}) (string, error) {
	if v == nil {
		return "", nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", &SerializationError{Err: err}
	}
	text := strings.TrimSuffix(buf.String(), "\n")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if jsonIsSafe(r) {
			b.WriteRune(r)
		} else {
			jsEscapeRune(&b, r)
		}
	}
	// The escape pass already turned > into \x3E; a CDATA closure must not
	// survive in that spelling either.
	out := strings.ReplaceAll(b.String(), `]]\x3E`, cdataSafe)
	out = strings.ReplaceAll(out, "]]>", cdataSafe)
	return out, nil
}
