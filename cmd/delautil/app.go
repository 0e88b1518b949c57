// Copyright 2025 Ian Lewis
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
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/ianlewis/go-dela"
	"github.com/ianlewis/go-dela/internal/folding"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrDelautil is a parent error for all command errors.
var ErrDelautil = errors.New("delautil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrDelautil)

// ErrOpen indicates that some dictionaries could not be opened.
var ErrOpen = fmt.Errorf("%w: opening dictionaries", ErrDelautil)

// cacheSize is the number of query results cached by the query command.
const cacheSize = 1024

var copyrightNames = []string{
	"2021 Google LLC",
	"2025 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands.
	//
	// This is done because `delautil --help foo` will display a
	// "command foo not found" error instead of the help.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// setVerbosity sets the klog verbosity from the --verbose flag.
func setVerbosity(c *cli.Context) error {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	if err := fs.Set("v", strconv.Itoa(c.Int("verbose"))); err != nil {
		return fmt.Errorf("%w: %w", ErrFlagParse, err)
	}
	return nil
}

// openLexicon opens the dictionaries in all data directories. Directories that
// do not exist are skipped. Errors opening individual dictionaries are
// logged and returned together after the lexicon is opened.
func openLexicon(c *cli.Context, lower bool) (*dela.Lexicon, error) {
	logger := klog.Background().WithName("delautil")

	var dirs []string
	for _, dir := range c.StringSlice("data-dir") {
		if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
			logger.V(1).Info("skipping data directory", "path", dir)
			continue
		}
		dirs = append(dirs, dir)
	}

	lex, errs := dela.OpenLexicon(dirs, &dela.LexiconOptions{
		Dictionary: &dela.Options{
			Logger: klog.Background(),
		},
		Folder:    folding.Folder(lower),
		CacheSize: cacheSize,
		Logger:    klog.Background(),
	})
	for _, err := range errs {
		logger.Error(err, "opening dictionary")
	}
	if lex == nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, errors.Join(errs...))
	}
	if len(errs) > 0 {
		return lex, fmt.Errorf("%w: %d errors", ErrOpen, len(errs))
	}
	return lex, nil
}

func newDelaApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Look up lemmas in DELA dictionaries.",
		Description: strings.Join([]string{
			"DELA dictionary utility written in Go.",
			"http://github.com/ianlewis/go-dela",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "data-dir",
				Usage:   "include dictionaries in `DIR`",
				Aliases: []string{"d"},
				Value:   cli.NewStringSlice(dictLocations()...),
			},
			&cli.IntFlag{
				Name:    "verbose",
				Usage:   "log verbosity `LEVEL`",
				Aliases: []string{"v"},
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		Before:          setVerbosity,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			listCommand,
			queryCommand,
		},
	}
}
