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

package testutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// Compression is the compression used for a test file.
type Compression int

const (
	// None writes the file uncompressed.
	None Compression = iota

	// Gzip compresses the file with gzip and adds a '.gz' extension.
	Gzip

	// DictZip compresses the file with dictzip and adds a '.dz' extension.
	DictZip
)

func (c Compression) ext() string {
	switch c {
	case Gzip:
		return ".gz"
	case DictZip:
		return ".dz"
	default:
		return ""
	}
}

// MakePairOptions are options for MakeTempPair.
type MakePairOptions struct {
	// BinExt is the extension of the .bin file. Defaults to ".bin".
	BinExt string

	// InfExt is the extension of the .inf file. Defaults to ".inf".
	InfExt string

	// Compression is the compression applied to both files.
	Compression Compression

	// Inf are options for the .inf file.
	Inf *MakeInfOptions
}

func (o *MakePairOptions) getBinExt() string {
	if o != nil && o.BinExt != "" {
		return o.BinExt
	}
	return ".bin"
}

func (o *MakePairOptions) getInfExt() string {
	if o != nil && o.InfExt != "" {
		return o.InfExt
	}
	return ".inf"
}

// MakeTempPair writes a .bin and .inf file named name in dir and returns the
// path to the .bin file.
func MakeTempPair(t *testing.T, dir, name string, states []*State, lines []string, opts *MakePairOptions) string {
	t.Helper()
	if opts == nil {
		opts = &MakePairOptions{}
	}

	binPath := filepath.Join(dir, name+opts.getBinExt()+opts.Compression.ext())
	writeFile(t, binPath, MakeAutomaton(states), opts.Compression)

	infPath := filepath.Join(dir, name+opts.getInfExt()+opts.Compression.ext())
	writeFile(t, infPath, MakeInf(lines, opts.Inf), opts.Compression)

	return binPath
}

func writeFile(t *testing.T, path string, b []byte, c Compression) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch c {
	case Gzip:
		z := gzip.NewWriter(f)
		if _, err := z.Write(b); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(b); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.Write(b); err != nil {
			t.Fatal(err)
		}
	}
}
