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

// Package dela implements a library for reading compressed DELA dictionaries,
// as produced by Unitex, in pure Go.
//
// Compressed DELA dictionaries contain two files:
//  1. A .bin file that contains a minimal automaton recognizing every
//     inflected form of the dictionary (see package fst). Each accepting
//     state refers to a line of the .inf file.
//  2. An .inf file that contains the compressed lemma descriptors (see
//     packages inf and descriptor). Each descriptor rebuilds a lemma from an
//     inflected form and carries its grammatical codes.
//
// Either file can be compressed using gzip or the dictzip format.
//
// A Dictionary answers lemma queries for a single .bin/.inf pair. A Lexicon
// merges the answers of several dictionaries.
package dela
