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

// Package inf implements reading DELA .inf files.
//
// The .inf file is a UTF-16LE text file, usually starting with a byte order
// mark. The first line holds the number of lines that follow. Each following
// line is a comma separated list of compressed descriptors (see package
// descriptor). Final states of the .bin automaton refer to these lines by
// their zero-based index.
package inf
