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

// Package fst implements reading DELA .bin files.
//
// A .bin file is a minimal finite state automaton that recognizes the
// inflected forms of a dictionary. All integers are in network byte order.
//
// The file starts with a 4 byte signed integer holding the size of the
// automaton in bytes, header included. It is followed by state records, the
// first of which is the root state at offset 4. Each state record comes in
// three parts:
//  1. A 2 byte header. The high bit is set if the state is NOT final. The
//     remaining 15 bits are the number of outgoing transitions.
//  2. For final states only, a 3 byte index into the .inf file.
//  3. The transitions: a 2 byte UTF-16 code unit followed by the 3 byte
//     offset of the destination state.
//
// States are identified by the offset of their record in the file.
package fst
