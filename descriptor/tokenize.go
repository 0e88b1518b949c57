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
	"unicode"
	"unicode/utf8"
)

// Tokenize splits s into units. A unit is a maximal run of characters that
// are neither whitespace nor '-', a single whitespace character, or a single
// '-'. Concatenating the units gives back s.
func Tokenize(s string) []string {
	var tokens []string
	start := -1
	for i, c := range s {
		if c != '-' && !unicode.IsSpace(c) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, s[start:i])
			start = -1
		}
		tokens = append(tokens, s[i:i+utf8.RuneLen(c)])
	}
	if start >= 0 {
		tokens = append(tokens, s[start:])
	}
	return tokens
}
