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
	"slices"

	"github.com/go-logr/logr"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/transform"
)

// LexiconOptions are options for a Lexicon.
type LexiconOptions struct {
	// Dictionary are the options used to open dictionaries with
	// OpenLexicon.
	Dictionary *Options

	// Folder returns a [transform.Transformer] that performs folding (e.g.
	// case folding, whitespace folding, etc.) on queries before they are
	// looked up.
	Folder func() transform.Transformer

	// CacheSize is the number of query results to keep. Zero disables the
	// cache.
	CacheSize int

	// Logger receives query traces.
	Logger logr.Logger
}

// DefaultLexiconOptions is the default options for a Lexicon.
var DefaultLexiconOptions = &LexiconOptions{
	Folder: func() transform.Transformer {
		return transform.Nop
	},
	Logger: logr.Discard(),
}

type resolveKey struct {
	word string
	echo bool
}

// Lexicon is an ordered collection of dictionaries that are queried
// together. It is safe for concurrent use.
type Lexicon struct {
	dicts []*Dictionary

	// foldTransformer performs folding on queries.
	foldTransformer func() transform.Transformer

	cache  *lru.Cache[resolveKey, []string]
	logger logr.Logger
}

// NewLexicon returns a Lexicon over dicts. Dictionaries are queried in the
// given order.
func NewLexicon(dicts []*Dictionary, options *LexiconOptions) (*Lexicon, error) {
	if options == nil {
		options = DefaultLexiconOptions
	}

	l := &Lexicon{
		dicts:           slices.Clone(dicts),
		foldTransformer: DefaultLexiconOptions.Folder,
		logger:          DefaultLexiconOptions.Logger,
	}
	if options.Folder != nil {
		l.foldTransformer = options.Folder
	}
	if options.Logger.GetSink() != nil {
		l.logger = options.Logger
	}
	l.logger = l.logger.WithName("lexicon")

	if options.CacheSize > 0 {
		cache, err := lru.New[resolveKey, []string](options.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating lexicon cache: %w", err)
		}
		l.cache = cache
	}

	return l, nil
}

// OpenLexicon opens all dictionaries in the given directories, in order, and
// returns a Lexicon over them along with any errors that occurred while
// opening dictionaries.
func OpenLexicon(dirs []string, options *LexiconOptions) (*Lexicon, []error) {
	var dictOptions *Options
	if options != nil {
		dictOptions = options.Dictionary
	}

	var dicts []*Dictionary
	var errs []error
	for _, dir := range dirs {
		openDicts, openErrs := OpenAll(dir, dictOptions)
		dicts = append(dicts, openDicts...)
		errs = append(errs, openErrs...)
	}

	l, err := NewLexicon(dicts, options)
	if err != nil {
		return nil, append(errs, err)
	}
	return l, errs
}

// Dictionaries returns the lexicon's dictionaries in query order.
func (l *Lexicon) Dictionaries() []*Dictionary {
	return slices.Clone(l.dicts)
}

// Fold returns the query as it is looked up in the dictionaries.
func (l *Lexicon) Fold(word string) (string, error) {
	folded, _, err := transform.String(l.foldTransformer(), word)
	if err != nil {
		return "", fmt.Errorf("folding query %q: %w", word, err)
	}
	return folded, nil
}

// Lookup returns the entries of every dictionary for the inflected form
// word, in dictionary order.
func (l *Lexicon) Lookup(word string) ([]*Entry, error) {
	folded, err := l.Fold(word)
	if err != nil {
		return nil, err
	}

	var entries []*Entry
	for _, d := range l.dicts {
		e, err := d.Lookup(folded)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e...)
	}
	return entries, nil
}

// Resolve returns the lemmas of the inflected form word found in every
// dictionary, in dictionary order. If options.Echo is set each dictionary
// that does not recognize the word contributes the word itself.
func (l *Lexicon) Resolve(word string, options *ResolveOptions) ([]string, error) {
	folded, err := l.Fold(word)
	if err != nil {
		return nil, err
	}

	key := resolveKey{word: folded, echo: options.echo()}
	if l.cache != nil {
		if lemmas, ok := l.cache.Get(key); ok {
			l.logger.V(5).Info("cache hit", "word", folded)
			return slices.Clone(lemmas), nil
		}
	}

	var lemmas []string
	for _, d := range l.dicts {
		r, err := d.Resolve(folded, options)
		if err != nil {
			return nil, err
		}
		lemmas = append(lemmas, r...)
	}
	l.logger.V(4).Info("resolved", "word", folded, "lemmas", lemmas)

	if l.cache != nil {
		l.cache.Add(key, slices.Clone(lemmas))
	}
	return lemmas, nil
}
