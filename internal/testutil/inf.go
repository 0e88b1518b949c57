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

package testutil

import (
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// MakeInfOptions are options for MakeInf.
type MakeInfOptions struct {
	// Header overrides the line count written on the first line.
	Header *int

	// BOM writes a byte order mark at the start of the file.
	BOM bool

	// CRLF ends lines with "\r\n" instead of "\n".
	CRLF bool
}

// MakeInf makes a test .inf file encoded in UTF-16LE.
func MakeInf(lines []string, opts *MakeInfOptions) []byte {
	if opts == nil {
		opts = &MakeInfOptions{}
	}

	header := len(lines)
	if opts.Header != nil {
		header = *opts.Header
	}

	eol := "\n"
	if opts.CRLF {
		eol = "\r\n"
	}

	var b strings.Builder
	b.WriteString(strconv.Itoa(header))
	b.WriteString(eol)
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString(eol)
	}

	bom := unicode.IgnoreBOM
	if opts.BOM {
		bom = unicode.UseBOM
	}
	s, err := unicode.UTF16(unicode.LittleEndian, bom).NewEncoder().String(b.String())
	if err != nil {
		panic(err)
	}
	return []byte(s)
}
