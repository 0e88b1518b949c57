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

package dela_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-dela"
	"github.com/ianlewis/go-dela/fst"
	"github.com/ianlewis/go-dela/internal/testutil"
)

// makeTestDir writes a directory of dictionaries. Each dictionary knows the
// plural of its own name.
func makeTestDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	makePair := func(name, word string, opts *testutil.MakePairOptions) {
		testutil.MakeTempPair(t, dir, name, testutil.Trie(map[string]uint32{
			word: 0,
		}), []string{"1.N:p"}, opts)
	}

	makePair("a", "as", nil)
	makePair("B", "bs", &testutil.MakePairOptions{BinExt: ".BIN"})
	// Pair names are matched regardless of case.
	if err := os.Rename(filepath.Join(dir, "B.inf"), filepath.Join(dir, "b.inf")); err != nil {
		t.Fatal(err)
	}
	makePair("c", "cs", &testutil.MakePairOptions{Compression: testutil.Gzip})
	makePair("d", "ds", &testutil.MakePairOptions{Compression: testutil.DictZip})

	// lonely.bin has no inflection table and is skipped.
	makePair("lonely", "lonelys", nil)
	if err := os.Remove(filepath.Join(dir, "lonely.inf")); err != nil {
		t.Fatal(err)
	}

	// broken.bin has a header that is too small.
	if err := os.WriteFile(filepath.Join(dir, "broken.bin"), []byte{0, 0, 0, 1}, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.inf"), testutil.MakeInf([]string{"0.N"}, nil), 0o600); err != nil {
		t.Fatal(err)
	}

	// Subdirectories are not searched.
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o700); err != nil {
		t.Fatal(err)
	}
	testutil.MakeTempPair(t, filepath.Join(dir, "sub"), "e", testutil.Trie(map[string]uint32{"es": 0}), []string{"1.N:p"}, nil)

	return dir
}

// TestOpenAll tests OpenAll.
func TestOpenAll(t *testing.T) {
	t.Parallel()

	dir := makeTestDir(t)
	dicts, errs := dela.OpenAll(dir, nil)

	if got, want := len(errs), 1; got != want {
		t.Fatalf("unexpected errors, want: %d, got: %d (%v)", want, got, errs)
	}
	if !errors.Is(errs[0], fst.ErrFormat) {
		t.Errorf("unexpected error, want: %v, got: %v", fst.ErrFormat, errs[0])
	}

	var names []string
	for _, d := range dicts {
		names = append(names, d.Name())
	}
	if diff := cmp.Diff([]string{"B", "a", "c", "d"}, names); diff != "" {
		t.Fatalf("dictionary names (-want, +got):\n%s", diff)
	}

	for i, word := range []string{"bs", "as", "cs", "ds"} {
		got, err := dicts[i].Resolve(word, nil)
		if err != nil {
			t.Fatalf("%s: Resolve: %v", dicts[i].Name(), err)
		}
		if diff := cmp.Diff([]string{word[:1]}, got); diff != "" {
			t.Errorf("%s: Resolve(%q) (-want, +got):\n%s", dicts[i].Name(), word, diff)
		}
	}
}

// TestOpenAll_notExist tests OpenAll with a missing directory.
func TestOpenAll_notExist(t *testing.T) {
	t.Parallel()

	dicts, errs := dela.OpenAll(filepath.Join(t.TempDir(), "missing"), nil)
	if len(dicts) != 0 {
		t.Errorf("unexpected dictionaries: %v", dicts)
	}
	if got, want := len(errs), 1; got != want {
		t.Fatalf("unexpected errors, want: %d, got: %d (%v)", want, got, errs)
	}
	if !errors.Is(errs[0], os.ErrNotExist) {
		t.Errorf("unexpected error, want: %v, got: %v", os.ErrNotExist, errs[0])
	}
}

// TestOpen tests Open.
func TestOpen(t *testing.T) {
	t.Parallel()

	dir := makeTestDir(t)

	tests := []struct {
		name     string
		path     string
		options  *dela.Options
		expected string
		err      error
	}{
		{
			name:     "plain",
			path:     filepath.Join(dir, "a.bin"),
			expected: "a",
		},
		{
			name:     "preload",
			path:     filepath.Join(dir, "a.bin"),
			options:  &dela.Options{Preload: true},
			expected: "a",
		},
		{
			name:     "upper case extension",
			path:     filepath.Join(dir, "B.BIN"),
			expected: "B",
		},
		{
			name:     "dictzip",
			path:     filepath.Join(dir, "d.bin.dz"),
			expected: "d",
		},
		{
			name: "bad extension",
			path: filepath.Join(dir, "a.inf"),
			err:  dela.ErrBadExtension,
		},
		{
			name: "no inflection table",
			path: filepath.Join(dir, "lonely.bin"),
			err:  dela.ErrNoInflectionTable,
		},
		{
			name: "bad automaton",
			path: filepath.Join(dir, "broken.bin"),
			err:  fst.ErrFormat,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			d, err := dela.Open(test.path, test.options)
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("unexpected error, want: %v, got: %v", test.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			if got, want := d.Name(), test.expected; got != want {
				t.Errorf("Name: want: %q, got: %q", want, got)
			}
		})
	}
}

// TestOpenLexicon tests opening dictionaries from several directories.
func TestOpenLexicon(t *testing.T) {
	t.Parallel()

	first := t.TempDir()
	testutil.MakeTempPair(t, first, "fr", testutil.Trie(map[string]uint32{
		"portes": 0,
	}), []string{"1.N:fp"}, nil)

	second := t.TempDir()
	testutil.MakeTempPair(t, second, "fr-compound", testutil.Trie(map[string]uint32{
		"portes":         0,
		"pomme de terre": 1,
	}), []string{"0.V:P2s", "0.N:fs"}, &testutil.MakePairOptions{Compression: testutil.Gzip})

	l, errs := dela.OpenLexicon([]string{second, first}, &dela.LexiconOptions{CacheSize: 4})
	if len(errs) != 0 {
		t.Fatalf("OpenLexicon: %v", errs)
	}

	got, err := l.Resolve("portes", nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if diff := cmp.Diff([]string{"portes", "porte"}, got); diff != "" {
		t.Errorf("Resolve (-want, +got):\n%s", diff)
	}
}
