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
	"fmt"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-dela"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "look up lemmas",
	ArgsUsage: "WORD...",
	Description: "Print the lemmas of each inflected WORD found in the dictionaries.\n" +
		"Each lemma is printed on its own line after the word and a tab.",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:               "echo",
			Usage:              "print the word itself for each dictionary that does not know it",
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:               "fold",
			Usage:              "lower case words before lookup",
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:               "tags",
			Usage:              "print a table of dictionaries, lemmas, and tags",
			DisableDefaultText: true,
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: no words given", ErrFlagParse)
		}

		lex, openErr := openLexicon(c, c.Bool("fold"))
		if lex == nil {
			return openErr
		}

		if c.Bool("tags") {
			if err := printTags(c, lex); err != nil {
				return err
			}
			return openErr
		}

		options := &dela.ResolveOptions{Echo: c.Bool("echo")}
		for _, word := range c.Args().Slice() {
			lemmas, err := lex.Resolve(word, options)
			if err != nil {
				return err
			}
			for _, lemma := range lemmas {
				fmt.Fprintf(c.App.Writer, "%s\t%s\n", word, lemma)
			}
		}
		return openErr
	},
}

func printTags(c *cli.Context, lex *dela.Lexicon) error {
	tbl := table.New("Word", "Dictionary", "Lemma", "Tag").WithWriter(c.App.Writer)
	for _, word := range c.Args().Slice() {
		entries, err := lex.Lookup(word)
		if err != nil {
			return err
		}
		for _, e := range entries {
			tbl.AddRow(word, e.Dictionary, e.Lemma, e.Tag)
		}
	}
	tbl.Print()
	return nil
}
