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
	"reflect"

	"github.com/CloudyKit/fastprinter"
)

// Stringify is the one coercion point between the dynamically typed values a
// template engine evaluates and the typed filters. Strings pass through
// untouched, nil stringifies to the empty string, and everything else is
// printed the way a template engine prints values into its output writer.
func Stringify(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	}
	var b bytes.Buffer
	fastprinter.PrintValue(&b, reflect.ValueOf(v))
	return b.String()
}
