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

package inf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/go-logr/logr"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-dela/descriptor"
)

const (
	bom = "\ufeff"

	// maxLineSize is the longest .inf line that can be read.
	maxLineSize = 1024 * 1024
)

var (
	// ErrFormat indicates that the .inf data is malformed.
	ErrFormat = errors.New("invalid inflection table")

	// ErrIndexOutOfRange indicates that an index is not in the table.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Options are options for reading an .inf file.
type Options struct {
	// Encoding is the text encoding of the file. The zero value means
	// UTF-16LE with an optional byte order mark.
	Encoding encoding.Encoding

	// Logger receives warnings such as a header count mismatch.
	Logger logr.Logger

	// Preload decodes every entry when the table is read. The table is
	// then never modified after New returns and malformed descriptors are
	// reported by New.
	Preload bool
}

// DefaultOptions is the default options for a Table.
var DefaultOptions = &Options{
	Encoding: unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	Logger:   logr.Discard(),
}

// entry is a raw line that is decoded at most once.
type entry struct {
	once  sync.Once
	raw   string
	descs []*descriptor.Descriptor
	err   error
}

// Table is an inflection table. It is safe for concurrent use.
type Table struct {
	entries  []*entry
	declared int

	// parse decodes a raw line.
	parse func(string) ([]*descriptor.Descriptor, error)
}

// New reads an .inf file from r.
func New(r io.Reader, options *Options) (*Table, error) {
	if options == nil {
		options = DefaultOptions
	}
	enc := DefaultOptions.Encoding
	if options.Encoding != nil {
		enc = options.Encoding
	}
	logger := options.Logger
	if logger.GetSink() == nil {
		logger = DefaultOptions.Logger
	}

	s := bufio.NewScanner(transform.NewReader(r, enc.NewDecoder()))
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	if !s.Scan() {
		if err := s.Err(); err != nil {
			return nil, fmt.Errorf("%w: reading header: %w", ErrFormat, err)
		}
		return nil, fmt.Errorf("%w: missing header", ErrFormat)
	}
	header := strings.TrimSpace(strings.TrimPrefix(s.Text(), bom))
	declared, err := strconv.Atoi(header)
	if err != nil {
		return nil, fmt.Errorf("%w: bad header %q: %w", ErrFormat, header, err)
	}

	t := &Table{
		declared: declared,
		parse:    descriptor.ParseList,
	}
	for s.Scan() {
		t.entries = append(t.entries, &entry{raw: s.Text()})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrFormat, len(t.entries)+2, err)
	}

	if declared != len(t.entries) {
		logger.Info("inflection table header mismatch", "declared", declared, "actual", len(t.entries))
	}

	if options.Preload {
		for i := range t.entries {
			if _, err := t.Entries(i); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

// Entries returns the descriptors on line i. The line is decoded the first
// time it is requested.
func (t *Table) Entries(i int) ([]*descriptor.Descriptor, error) {
	if i < 0 || i >= len(t.entries) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(t.entries))
	}

	e := t.entries[i]
	e.once.Do(func() {
		e.descs, e.err = t.parse(e.raw)
		if e.err != nil {
			e.err = fmt.Errorf("%w: entry %d: %w", ErrFormat, i, e.err)
		}
	})
	return e.descs, e.err
}

// Raw returns the undecoded line i.
func (t *Table) Raw(i int) (string, error) {
	if i < 0 || i >= len(t.entries) {
		return "", fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(t.entries))
	}
	return t.entries[i].raw, nil
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Declared returns the number of entries declared on the first line, which
// may differ from Len.
func (t *Table) Declared() int {
	return t.declared
}
