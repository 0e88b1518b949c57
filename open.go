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

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-dela/fst"
	"github.com/ianlewis/go-dela/inf"
)

var (
	// ErrBadExtension indicates that a file is not a .bin file.
	ErrBadExtension = errors.New("bad extension")

	// ErrNoInflectionTable indicates that no .inf file was found for a .bin
	// file.
	ErrNoInflectionTable = errors.New("no inflection table found")
)

// Extensions are matched without regard to case.
var (
	binExts = []string{".bin", ".bin.gz", ".bin.dz"}
	infExts = []string{".inf", ".inf.gz", ".inf.dz"}
)

// OpenAll opens all dictionaries in a directory. Subdirectories are not
// searched. A .bin file is paired with the .inf file that has the same name
// regardless of case. Dictionaries are returned sorted by file name along
// with any errors that occurred.
func OpenAll(path string, options *Options) ([]*Dictionary, []error) {
	files, err := os.ReadDir(path)
	if err != nil {
		return nil, []error{fmt.Errorf("reading %q: %w", path, err)}
	}

	var dicts []*Dictionary
	var errs []error
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if _, ok := trimExt(f.Name(), binExts); !ok {
			continue
		}

		binPath := filepath.Join(path, f.Name())
		infPath, err := findInfPath(binPath)
		if err != nil {
			// Unpaired .bin files are skipped.
			options.logger().V(1).Info("skipping .bin file", "path", binPath, "reason", err.Error())
			continue
		}

		d, err := openPair(binPath, infPath, options)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		dicts = append(dicts, d)
	}
	return dicts, errs
}

// Open opens a dictionary from the given .bin file path. The .inf file must
// be in the same directory.
func Open(binPath string, options *Options) (*Dictionary, error) {
	if _, ok := trimExt(filepath.Base(binPath), binExts); !ok {
		return nil, fmt.Errorf("%w: %q", ErrBadExtension, binPath)
	}

	infPath, err := findInfPath(binPath)
	if err != nil {
		return nil, err
	}
	return openPair(binPath, infPath, options)
}

func openPair(binPath, infPath string, options *Options) (*Dictionary, error) {
	name, _ := trimExt(filepath.Base(binPath), binExts)

	a, err := openAutomaton(binPath)
	if err != nil {
		return nil, err
	}
	t, err := openTable(infPath, options)
	if err != nil {
		return nil, err
	}

	d := New(name, a, t, options)
	d.logger.V(1).Info("opened dictionary", "states", a.Len(), "entries", t.Len())
	return d, nil
}

// findInfPath returns the path of the .inf file paired with binPath.
func findInfPath(binPath string) (string, error) {
	dir := filepath.Dir(binPath)
	name, _ := trimExt(filepath.Base(binPath), binExts)

	files, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", dir, err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if infName, ok := trimExt(f.Name(), infExts); ok && strings.EqualFold(infName, name) {
			return filepath.Join(dir, f.Name()), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrNoInflectionTable, binPath)
}

func openAutomaton(path string) (*fst.Automaton, error) {
	r, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	a, err := fst.New(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return a, nil
}

func openTable(path string, options *Options) (*inf.Table, error) {
	r, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	infOptions := &inf.Options{
		Logger: options.logger().WithName("inf").WithValues("path", path),
	}
	if options != nil {
		infOptions.Preload = options.Preload
	}

	t, err := inf.New(r, infOptions)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return t, nil
}

// readCloser closes all of its closers in order.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var errs []error
	for _, c := range r.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// openFile opens path, decompressing it if it has a .gz or .dz extension.
func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %q: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("error opening %q: %w", path, err)
		}
		return &readCloser{Reader: z, closers: []io.Closer{z, f}}, nil
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("error opening %q: %w", path, err)
		}
		return &readCloser{Reader: z, closers: []io.Closer{f}}, nil
	default:
		return f, nil
	}
}

// trimExt removes one of exts from the end of name.
func trimExt(name string, exts []string) (string, bool) {
	for _, ext := range exts {
		if len(name) > len(ext) && strings.EqualFold(name[len(name)-len(ext):], ext) {
			return name[:len(name)-len(ext)], true
		}
	}
	return "", false
}
