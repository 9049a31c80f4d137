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

// Filter encodes one value for one output context. Filters wrapping the
// total encoders never return an error; the jsObj filter returns a
// SerializationError for values JSON cannot represent.
type Filter func(v interface{}) (string, error)

// Registry is the mutable name-to-filter table of an external template
// engine. The package never holds one itself; Configure mutates whatever
// table the caller hands in.
type Registry map[string]Filter

// Configure installs the seven filters into r under their canonical names,
// overwriting existing entries of the same name, and returns r for
// chaining. A nil registry is allocated first.
func Configure(r Registry) Registry {
	if r == nil {
		r = make(Registry, 7)
	}
	r["html"] = total(HTML)
	r["js"] = total(JS)
	r["jsAttr"] = total(JSAttr)
	r["uri"] = total(URI)
	r["jsObj"] = JSObj
	r["css"] = total(CSS)
	r["style"] = total(Style)
	return r
}

// total lifts an encoder that cannot fail into the Filter shape, stringifying
// the value at the boundary.
func total(fn func(string) string) Filter {
	return func(v interface{}) (string, error) {
		return fn(Stringify(v)), nil
	}
}
