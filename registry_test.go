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
	"errors"
	"reflect"
	"testing"
)

var filterNames = []string{"html", "js", "jsAttr", "uri", "jsObj", "css", "style"}

func TestConfigureInstallsAll(t *testing.T) {
	r := Configure(nil)
	if len(r) != len(filterNames) {
		t.Errorf("Result error expected %d filters got %d", len(filterNames), len(r))
	}
	for _, name := range filterNames {
		if r[name] == nil {
			t.Errorf("Result error filter %q not installed", name)
		}
	}
}

func TestConfigureOverwrites(t *testing.T) {
	r := Registry{"html": func(v interface{}) (string, error) { return "stub", nil }}
	Configure(r)
	got, err := r["html"]("<x>")
	if err != nil {
		t.Errorf("Eval error: %q on html filter", err.Error())
	}
	if got != "&lt;x&gt;" {
		t.Errorf("Result error expected %q got %q on overwritten html filter", "&lt;x&gt;", got)
	}
}

func TestConfigureReturnsSameRegistry(t *testing.T) {
	r := make(Registry)
	got := Configure(r)
	if reflect.ValueOf(got).Pointer() != reflect.ValueOf(r).Pointer() {
		t.Error("Result error Configure did not return the registry it was given")
	}
	if len(r) != len(filterNames) {
		t.Errorf("Result error caller registry not mutated, has %d entries", len(r))
	}
}

func TestFilterStringifiesValues(t *testing.T) {
	r := Configure(nil)
	cases := []struct {
		name   string
		filter string
		in     interface{}
		want   string
	}{
		{"int through html", "html", 42, "42"},
		{"bool through js", "js", true, "true"},
		{"nil through uri", "uri", nil, ""},
		{"string passes through", "css", "ltr", "ltr"},
	}
	for _, c := range cases {
		got, err := r[c.filter](c.in)
		if err != nil {
			t.Errorf("Eval error: %q on %s", err.Error(), c.name)
			continue
		}
		if got != c.want {
			t.Errorf("Result error expected %q got %q on %s", c.want, got, c.name)
		}
	}
}

func TestJSObjFilterFails(t *testing.T) {
	r := Configure(nil)
	_, err := r["jsObj"](make(chan int))
	var serr *SerializationError
	if !errors.As(err, &serr) {
		t.Errorf("Result error expected SerializationError got %v", err)
	}
	if got, err := r["jsObj"](nil); err != nil || got != "" {
		t.Errorf("Result error expected empty output got %q, %v on nil value", got, err)
	}
}

func TestStringify(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want string
	}{
		{"string", "x", "x"},
		{"nil", nil, ""},
		{"int", 42, "42"},
		{"bool", true, "true"},
		{"negative", -7, "-7"},
	}
	for _, c := range cases {
		if got := Stringify(c.in); got != c.want {
			t.Errorf("Result error expected %q got %q on %s", c.want, got, c.name)
		}
	}
}
