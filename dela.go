// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dela

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/ianlewis/go-dela/fst"
	"github.com/ianlewis/go-dela/inf"
)

// Options are options for dictionaries.
type Options struct {
	// Logger receives warnings about malformed data found while reading
	// or querying a dictionary.
	Logger logr.Logger

	// Preload decodes the whole .inf file when the dictionary is opened.
	// See [inf.Options.Preload].
	Preload bool
}

// DefaultOptions is the default options for a Dictionary.
var DefaultOptions = &Options{
	Logger: logr.Discard(),
}

func (o *Options) logger() logr.Logger {
	if o == nil || o.Logger.GetSink() == nil {
		return DefaultOptions.Logger
	}
	return o.Logger
}

// ResolveOptions are options for lemma queries.
type ResolveOptions struct {
	// Echo returns the queried word itself when a dictionary does not
	// recognize it.
	Echo bool
}

func (o *ResolveOptions) echo() bool {
	return o != nil && o.Echo
}

// Dictionary is a compressed DELA dictionary. It is safe for concurrent use.
type Dictionary struct {
	name      string
	automaton *fst.Automaton
	table     *inf.Table
	logger    logr.Logger
}

// New returns a new Dictionary from an automaton and its inflection table.
func New(name string, a *fst.Automaton, t *inf.Table, options *Options) *Dictionary {
	return &Dictionary{
		name:      name,
		automaton: a,
		table:     t,
		logger:    options.logger().WithName("dela").WithValues("dictionary", name),
	}
}

// Name returns the dictionary name.
func (d *Dictionary) Name() string {
	return d.name
}

// Automaton returns the dictionary's automaton.
func (d *Dictionary) Automaton() *fst.Automaton {
	return d.automaton
}

// Table returns the dictionary's inflection table.
func (d *Dictionary) Table() *inf.Table {
	return d.table
}

// Lookup returns the entries for the inflected form word. It returns no
// entries and no error if the dictionary does not recognize word.
func (d *Dictionary) Lookup(word string) ([]*Entry, error) {
	info, ok := d.automaton.Lookup(word)
	if !ok {
		d.logger.V(4).Info("word not found", "word", word)
		return nil, nil
	}

	descs, err := d.table.Entries(int(info))
	if err != nil {
		return nil, fmt.Errorf("dictionary %q: looking up %q: %w", d.name, word, err)
	}

	entries := make([]*Entry, 0, len(descs))
	for _, desc := range descs {
		lemma, err := desc.Apply(word)
		if err != nil {
			// The word is used as its own lemma.
			d.logger.Info("descriptor does not fit word", "word", word, "descriptor", desc.String(), "reason", err.Error())
		}
		entries = append(entries, &Entry{
			Dictionary: d.name,
			Form:       word,
			Lemma:      lemma,
			Tag:        desc.Tag(),
			Descriptor: desc.String(),
		})
	}
	return entries, nil
}

// Resolve returns the lemmas of the inflected form word. An ambiguous form
// has more than one lemma. If the dictionary does not recognize word the
// result is empty, or holds only word if options.Echo is set.
func (d *Dictionary) Resolve(word string, options *ResolveOptions) ([]string, error) {
	entries, err := d.Lookup(word)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		if options.echo() {
			return []string{word}, nil
		}
		return nil, nil
	}

	lemmas := make([]string, 0, len(entries))
	for _, e := range entries {
		lemmas = append(lemmas, e.Lemma)
	}
	return lemmas, nil
}
