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

// Package jetfilter registers the encoding filters with a jet template set,
// so templates can write {{ html(name) }}, {{ jsAttr(handler) }} and so on.
package jetfilter

import (
	"reflect"

	"github.com/CloudyKit/jet/v3"

	secure "github.com/ediweissmann/secure-filters"
)

// AddFilters installs the seven filters as globals of set, replacing any
// existing globals of the same names, and returns set for chaining.
func AddFilters(set *jet.Set) *jet.Set {
	for name, filter := range secure.Configure(nil) {
		set.AddGlobalFunc(name, jetFunc(name, filter))
	}
	return set
}

// jetFunc adapts a Filter to jet's function calling convention. Encoding
// failures surface the way jet template functions report errors, through a
// runtime panic that aborts the render.
func jetFunc(name string, filter secure.Filter) jet.Func {
	return func(a jet.Arguments) reflect.Value {
		a.RequireNumOfArguments(name, 1, 1)
		out, err := filter(argValue(a.Get(0)))
		if err != nil {
			a.Panicf("%s: %v", name, err)
		}
		return reflect.ValueOf(out)
	}
}

func argValue(v reflect.Value) interface{} {
	if !v.IsValid() {
		return nil
	}
	return v.Interface()
}
