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
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"
)

var (
	unitRegex     = regexp.MustCompile(`^([0-9]*)([\p{L}\\0-9]*)`)
	unescapeRegex = regexp.MustCompile(`\\([0-9])`)
)

// Rule is an edit rule for a single token.
type Rule struct {
	// Delete is the number of trailing characters removed from the token.
	Delete int

	// Append is the text appended after removing characters.
	Append string

	// Identity is true if the rule returns the token unchanged. It is used
	// for literal delimiter tokens.
	Identity bool
}

// IdentityRule is a rule that leaves tokens unchanged.
var IdentityRule = Rule{Identity: true}

// ParseRule parses a single compressed unit into a Rule.
func ParseRule(unit string) (Rule, error) {
	if unit == "-" || unit == " " {
		return IdentityRule, nil
	}

	// The pattern can always match the empty string so m is never nil.
	m := unitRegex.FindStringSubmatch(unit)

	var r Rule
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Rule{}, fmt.Errorf("%w: delete count %q: %w", ErrMalformed, m[1], err)
		}
		r.Delete = n
	}
	r.Append = unescapeRegex.ReplaceAllString(m[2], "$1")

	return r, nil
}

// Apply applies the rule to the token. Characters are counted as runes. If
// the token is shorter than Delete the whole token is removed.
func (r Rule) Apply(token string) string {
	if r.Identity {
		return token
	}
	if r.Delete == 0 {
		return token + r.Append
	}

	end := len(token)
	for i := 0; i < r.Delete && end > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(token[:end])
		end -= size
	}
	return token[:end] + r.Append
}

