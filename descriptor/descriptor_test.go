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

package descriptor_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-dela/descriptor"
)

// TestTokenize tests Tokenize.
func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		s        string
		expected []string
	}{
		{
			name:     "empty",
			s:        "",
			expected: nil,
		},
		{
			name:     "single word",
			s:        "chat",
			expected: []string{"chat"},
		},
		{
			name:     "space",
			s:        "premiere partie",
			expected: []string{"premiere", " ", "partie"},
		},
		{
			name:     "hyphens",
			s:        "battle-axes-",
			expected: []string{"battle", "-", "axes", "-"},
		},
		{
			name:     "consecutive delimiters",
			s:        "a  -b",
			expected: []string{"a", " ", " ", "-", "b"},
		},
		{
			name:     "tab",
			s:        "a\tb",
			expected: []string{"a", "\t", "b"},
		},
		{
			name:     "non-ascii",
			s:        "guarda-chuvas",
			expected: []string{"guarda", "-", "chuvas"},
		},
		{
			name:     "descriptor units",
			s:        "3er 1",
			expected: []string{"3er", " ", "1"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, descriptor.Tokenize(test.s)); diff != "" {
				t.Errorf("Tokenize (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestParse tests Parse.
func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		s         string
		wholeWord bool
		rules     []descriptor.Rule
		tag       string
		err       error
	}{
		{
			name:  "empty compressed part",
			s:     ".N",
			rules: []descriptor.Rule{descriptor.IdentityRule},
			tag:   "N",
		},
		{
			name:  "single unit",
			s:     "1.N:ms",
			rules: []descriptor.Rule{{Delete: 1}},
			tag:   "N:ms",
		},
		{
			name: "tokenized",
			s:    "3er 1.N",
			rules: []descriptor.Rule{
				{Delete: 3, Append: "er"},
				descriptor.IdentityRule,
				{Delete: 1},
			},
			tag: "N",
		},
		{
			name:      "whole word",
			s:         `_10\0\0\7.N`,
			wholeWord: true,
			rules:     []descriptor.Rule{{Delete: 10, Append: "007"}},
			tag:       "N",
		},
		{
			name:      "whole word with space",
			s:         "_3a b.N",
			wholeWord: true,
			rules:     []descriptor.Rule{{Delete: 3, Append: "a"}},
			tag:       "N",
		},
		{
			name:  "split on last dot",
			s:     "1.N.x",
			rules: []descriptor.Rule{{Delete: 1}},
			tag:   "x",
		},
		{
			name:  "empty tag",
			s:     "2s.",
			rules: []descriptor.Rule{{Delete: 2, Append: "s"}},
			tag:   "",
		},
		{
			name: "missing tag separator",
			s:    "3er",
			err:  descriptor.ErrMalformed,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			d, err := descriptor.Parse(test.s)
			if !errors.Is(err, test.err) {
				t.Fatalf("Parse: unexpected error, want: %v, got: %v", test.err, err)
			}
			if err != nil {
				return
			}

			if got, want := d.WholeWord(), test.wholeWord; got != want {
				t.Errorf("WholeWord: want: %v, got: %v", want, got)
			}
			if diff := cmp.Diff(test.rules, d.Rules()); diff != "" {
				t.Errorf("Rules (-want, +got):\n%s", diff)
			}
			if got, want := d.Tag(), test.tag; got != want {
				t.Errorf("Tag: want: %q, got: %q", want, got)
			}
			if got, want := d.String(), test.s; got != want {
				t.Errorf("String: want: %q, got: %q", want, got)
			}
		})
	}
}

// TestDescriptor_Apply tests Descriptor.Apply.
func TestDescriptor_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		descriptor string
		word       string
		expected   string
		err        error
	}{
		{
			name:       "identity",
			descriptor: ".N",
			word:       "chat",
			expected:   "chat",
		},
		{
			name:       "identity multi-token",
			descriptor: ".N",
			word:       "pomme de terre",
			expected:   "pomme de terre",
			err:        descriptor.ErrTokenMismatch,
		},
		{
			name:       "zero delete",
			descriptor: "0.N",
			word:       "a",
			expected:   "a",
		},
		{
			name:       "single unit",
			descriptor: "1.N:mp",
			word:       "chats",
			expected:   "chat",
		},
		{
			name:       "escaped digit",
			descriptor: `2\5o.X`,
			word:       "ab12",
			expected:   "ab5o",
		},
		{
			name:       "whole word",
			descriptor: `_10\0\0\7.N`,
			word:       "James Bond",
			expected:   "007",
		},
		{
			name:       "tokenized",
			descriptor: "3er 1.N",
			word:       "premiere partie",
			expected:   "premier parti",
		},
		{
			name:       "hyphens",
			descriptor: "0-1.N:p",
			word:       "battle-axes",
			expected:   "battle-axe",
		},
		{
			name:       "trailing hyphen mismatch",
			descriptor: "0-1.N:p",
			word:       "battle-axes-",
			expected:   "battle-axes-",
			err:        descriptor.ErrTokenMismatch,
		},
		{
			name:       "too many tokens",
			descriptor: "3er 1.N",
			word:       "premiere",
			expected:   "premiere",
			err:        descriptor.ErrTokenMismatch,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			d, err := descriptor.Parse(test.descriptor)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}

			got, err := d.Apply(test.word)
			if !errors.Is(err, test.err) {
				t.Fatalf("Apply: unexpected error, want: %v, got: %v", test.err, err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("Apply (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestParseList tests ParseList.
func TestParseList(t *testing.T) {
	t.Parallel()

	descs, err := descriptor.ParseList("1.N:ms,0.V:P3s,_2a.A")
	if err != nil {
		t.Fatalf("ParseList: %v", err)
	}

	var got []string
	for _, d := range descs {
		got = append(got, d.String())
	}
	if diff := cmp.Diff([]string{"1.N:ms", "0.V:P3s", "_2a.A"}, got); diff != "" {
		t.Errorf("ParseList (-want, +got):\n%s", diff)
	}

	if _, err := descriptor.ParseList("1.N,bad"); !errors.Is(err, descriptor.ErrMalformed) {
		t.Errorf("ParseList: unexpected error, want: %v, got: %v", descriptor.ErrMalformed, err)
	}
}
