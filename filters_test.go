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
	"sync"
	"testing"
)

// The composites apply the inner filter first; reversing the order would
// let the HTML escape's own characters survive the JS/CSS pass unescaped.
func TestCompositeOrder(t *testing.T) {
	if got, want := JSAttr("'"), HTML(JS("'")); got != want {
		t.Errorf("Result error expected %q got %q on jsAttr composition", want, got)
	}
	if got, want := Style("."), HTML(CSS(".")); got != want {
		t.Errorf("Result error expected %q got %q on style composition", want, got)
	}
	if JSAttr("'") == JS(HTML("'")) {
		t.Error("Result error jsAttr indistinguishable from the reversed composition")
	}
}

func TestFiltersAreConcurrencySafe(t *testing.T) {
	const workers = 8
	in := "<a href=\"x\">it's &amp; 😀</a>"
	want := [...]string{HTML(in), JS(in), JSAttr(in), URI(in), CSS(in), Style(in)}
	fns := [...]func(string) string{HTML, JS, JSAttr, URI, CSS, Style}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				for f, fn := range fns {
					if got := fn(in); got != want[f] {
						t.Errorf("Result error expected %q got %q on concurrent call", want[f], got)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}
