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

package dela

// Entry is a dictionary entry for an inflected form.
type Entry struct {
	// Dictionary is the name of the dictionary the entry came from.
	Dictionary string

	// Form is the inflected form that was looked up.
	Form string

	// Lemma is the lemma rebuilt from the form.
	Lemma string

	// Tag holds the grammatical codes of the entry, e.g. "N:ms".
	Tag string

	// Descriptor is the compressed descriptor that produced the entry.
	Descriptor string
}

// String returns the entry as a DELAF line ("form,lemma.tag").
func (e *Entry) String() string {
	return e.Form + "," + e.Lemma + "." + e.Tag
}
