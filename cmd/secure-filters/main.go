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

// Command secure-filters encodes values for safe interpolation into
// generated documents. Each subcommand encodes its arguments, or every line
// of stdin when no arguments are given, and writes the result to stdout.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	secure "github.com/ediweissmann/secure-filters"
)

var rootCmd = &cobra.Command{
	Use:   "secure-filters",
	Short: "encode values for safe interpolation into HTML, JS, CSS, JSON and URIs",
}

var textFilters = []struct {
	name, context string
	fn            func(string) string
}{
	{"html", "HTML text or a double-quoted attribute", secure.HTML},
	{"js", "a quoted JavaScript string literal", secure.JS},
	{"jsattr", "an HTML attribute carrying a JavaScript string", secure.JSAttr},
	{"uri", "a URI component", secure.URI},
	{"css", "a CSS token or value", secure.CSS},
	{"style", "an HTML attribute carrying CSS", secure.Style},
}

func init() {
	for _, f := range textFilters {
		fn := f.fn
		rootCmd.AddCommand(&cobra.Command{
			Use:   f.name + " [value...]",
			Short: "encode for " + f.context,
			Run: func(cmd *cobra.Command, args []string) {
				if len(args) > 0 {
					for _, a := range args {
						fmt.Println(fn(a))
					}
					return
				}
				reader := bufio.NewReader(os.Stdin)
				for {
					line, err := reader.ReadString('\n')
					if line != "" {
						fmt.Println(fn(strings.TrimSuffix(line, "\n")))
					}
					if err != nil {
						break
					}
				}
			},
		})
	}
	rootCmd.AddCommand(jsObjCmd)
}

var jsObjCmd = &cobra.Command{
	Use:   "jsobj [json]",
	Short: "serialize a JSON value for embedding in a script block",
	Run: func(cmd *cobra.Command, args []string) {
		var v interface{}
		var err error
		if len(args) > 0 {
			err = json.Unmarshal([]byte(strings.Join(args, " ")), &v)
		} else {
			err = json.NewDecoder(os.Stdin).Decode(&v)
		}
		if err == nil {
			var out string
			if out, err = secure.JSObj(v); err == nil {
				fmt.Println(out)
				return
			}
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
