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

// Package descriptor implements the compressed lemma descriptors found in
// DELA .inf files.
//
// A descriptor has the form:
//
//	[_]<units>.<tag>
//
// The tag is an opaque grammatical code (e.g. "N:ms") and is passed through
// untouched. The units describe how to rebuild the lemma from an inflected
// form:
//  1. An empty unit list means the lemma is the form itself.
//  2. A leading '_' means the single unit that follows is applied to the
//     whole form.
//  3. Otherwise the units are aligned with the tokens of the form, where a
//     token is a run of characters other than whitespace and '-', a single
//     whitespace character, or a single '-'.
//
// Each unit is a count of trailing characters to remove followed by the text
// to append. Digits in the appended text are escaped with a backslash. For
// example "3er" turns "premiere" into "premier" and "_10\0\0\7" turns
// "James Bond" into "007".
package descriptor
