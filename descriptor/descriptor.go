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

package descriptor

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformed indicates that a descriptor could not be parsed.
	ErrMalformed = errors.New("malformed descriptor")

	// ErrTokenMismatch indicates that a form does not have the number of
	// tokens expected by a descriptor.
	ErrTokenMismatch = errors.New("token count mismatch")
)

// Descriptor is a parsed compressed lemma descriptor. A Descriptor is
// immutable and safe for concurrent use.
type Descriptor struct {
	src       string
	wholeWord bool
	rules     []Rule
	tag       string
}

// Parse parses a single descriptor such as "3er 1.N" or "_2.A:ms".
func Parse(s string) (*Descriptor, error) {
	i := strings.LastIndexByte(s, '.')
	if i < 0 {
		return nil, fmt.Errorf("%w: missing tag separator: %q", ErrMalformed, s)
	}
	compressed := s[:i]

	d := &Descriptor{
		src: s,
		tag: s[i+1:],
	}

	switch {
	case compressed == "":
		d.rules = []Rule{IdentityRule}
	case compressed[0] == '_':
		r, err := ParseRule(compressed[1:])
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", s, err)
		}
		d.wholeWord = true
		d.rules = []Rule{r}
	default:
		for _, unit := range Tokenize(compressed) {
			r, err := ParseRule(unit)
			if err != nil {
				return nil, fmt.Errorf("parsing %q: %w", s, err)
			}
			d.rules = append(d.rules, r)
		}
	}

	return d, nil
}

// ParseList parses a comma separated list of descriptors.
func ParseList(s string) ([]*Descriptor, error) {
	var descs []*Descriptor
	for _, part := range strings.Split(s, ",") {
		d, err := Parse(part)
		if err != nil {
			return nil, err
		}
		descs = append(descs, d)
	}
	return descs, nil
}

// Apply returns the lemma for the inflected form word.
//
// If the descriptor expects a different number of tokens than word has, Apply
// returns word unchanged along with an error wrapping ErrTokenMismatch.
// Callers may treat the error as a warning and use the returned word.
func (d *Descriptor) Apply(word string) (string, error) {
	if d.wholeWord {
		return d.rules[0].Apply(word), nil
	}

	tokens := Tokenize(word)
	if len(tokens) != len(d.rules) {
		return word, fmt.Errorf("%w: %q has %d tokens, %q expects %d",
			ErrTokenMismatch, word, len(tokens), d.src, len(d.rules))
	}

	var b strings.Builder
	b.Grow(len(word))
	for i, t := range tokens {
		b.WriteString(d.rules[i].Apply(t))
	}
	return b.String(), nil
}

// Tag returns the descriptor's grammatical tag.
func (d *Descriptor) Tag() string {
	return d.tag
}

// WholeWord returns true if the descriptor applies a single rule to the whole
// form rather than to each token.
func (d *Descriptor) WholeWord() bool {
	return d.wholeWord
}

// Rules returns a copy of the descriptor's rules.
func (d *Descriptor) Rules() []Rule {
	rules := make([]Rule, len(d.rules))
	copy(rules, d.rules)
	return rules
}

// String returns the descriptor as it was parsed.
func (d *Descriptor) String() string {
	return d.src
}
