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

// Package folding implements query folding for compound word lookups.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

// SpaceFolder folds the whitespace of a compound word the way DELA
// dictionaries spell it: leading and trailing whitespace is removed and every
// internal whitespace run becomes a single ASCII space. Descriptors align on
// whitespace tokens so "pomme  de terre" must be looked up as
// "pomme de terre".
type SpaceFolder struct {
	// started is set once a non-space rune has been written.
	started bool

	// pending is set while skipping internal whitespace.
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (f *SpaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])

		if unicode.IsSpace(c) {
			f.pending = f.started
			nSrc += size
			continue
		}

		need := size
		if f.pending {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if f.pending {
			dst[nDst] = ' '
			nDst++
			f.pending = false
		}
		// Invalid bytes are copied as is.
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
		f.started = true
	}
	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *SpaceFolder) Reset() {
	*f = SpaceFolder{}
}

// Folder returns a function that creates query folding transformers. Space
// folding is always performed. If lower is true queries are also lower cased.
func Folder(lower bool) func() transform.Transformer {
	if !lower {
		return func() transform.Transformer {
			return &SpaceFolder{}
		}
	}
	return func() transform.Transformer {
		return transform.Chain(&SpaceFolder{}, cases.Lower(language.Und))
	}
}
