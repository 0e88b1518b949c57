// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

var listCommand = &cli.Command{
	Name:        "list",
	Usage:       "list dictionaries",
	Description: "List all dictionaries in the data directories.",
	Action: func(c *cli.Context) error {
		lex, err := openLexicon(c, false)
		if lex == nil {
			return err
		}

		tbl := table.New("Name", "States", "Entries", "Declared").WithWriter(c.App.Writer)
		for _, d := range lex.Dictionaries() {
			tbl.AddRow(d.Name(), d.Automaton().Len(), d.Table().Len(), d.Table().Declared())
		}
		tbl.Print()

		return err
	},
}
