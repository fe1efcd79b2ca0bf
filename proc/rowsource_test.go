// Copyright 2023 The suffixtab Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package proc

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTmpFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func collectRows(t *testing.T, src RowSource) []Row {
	t.Helper()
	var rows []Row
	err := src.ForEach(context.Background(), func(row Row) error {
		rows = append(rows, row)
		return nil
	})
	assert.NoError(t, err)
	return rows
}

func TestPairFileSource(t *testing.T) {
	path := writeTmpFile(t, "pairs.tsv", "hopu\tkina\nkite\ta\n\nhī\ta\n")
	rows := collectRows(t, &PairFileSource{Paths: []string{path}})
	assert.Equal(t, []Row{
		{Stem: "hopu", Suffix: "kina"},
		{Stem: "kite", Suffix: "a"},
		{Stem: "hī", Suffix: "a"},
	}, rows)
}

func TestPairFileSourceMultipleFiles(t *testing.T) {
	p1 := writeTmpFile(t, "a.tsv", "hopu\tkina\n")
	p2 := writeTmpFile(t, "b.tsv", "kite\ta\n")
	rows := collectRows(t, &PairFileSource{Paths: []string{p1, p2}})
	assert.Len(t, rows, 2)
	assert.Equal(t, "hopu", rows[0].Stem)
	assert.Equal(t, "kite", rows[1].Stem)
}

func TestPairFileSourceWrongArity(t *testing.T) {
	path := writeTmpFile(t, "bad.tsv", "hopu\tkina\nkite\ta\textra\n")
	src := &PairFileSource{Paths: []string{path}}
	err := src.ForEach(context.Background(), func(row Row) error { return nil })
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected 2 columns")
}

func TestPairFileSourceMissingFile(t *testing.T) {
	src := &PairFileSource{Paths: []string{"/nonexistent/pairs.tsv"}}
	err := src.ForEach(context.Background(), func(row Row) error { return nil })
	assert.Error(t, err)
}

func TestPairFileSourceCancellation(t *testing.T) {
	path := writeTmpFile(t, "pairs.tsv", "hopu\tkina\nkite\ta\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := &PairFileSource{Paths: []string{path}}
	err := src.ForEach(ctx, func(row Row) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVerticalSource(t *testing.T) {
	content := "<doc id=\"1\">\n" +
		"hopu-kina\tv\n" +
		"kite\tv\n" +
		"whati-a\tv\n" +
		"</doc>\n"
	path := writeTmpFile(t, "corpus.vert", content)
	rows := collectRows(t, &VerticalSource{Path: path, TokenColumn: 0})
	assert.Equal(t, []Row{
		{Stem: "hopu", Suffix: "kina"},
		{Stem: "whati", Suffix: "a"},
	}, rows)
}

func TestVerticalSourceTokenColumn(t *testing.T) {
	content := "<doc id=\"1\">\n" +
		"hopukina\thopu-kina\n" +
		"kitea\tkitea\n" +
		"</doc>\n"
	path := writeTmpFile(t, "corpus.vert", content)
	rows := collectRows(t, &VerticalSource{Path: path, TokenColumn: 1})
	assert.Equal(t, []Row{{Stem: "hopu", Suffix: "kina"}}, rows)
}

func TestVerticalSourceSkipsUnsplittableForms(t *testing.T) {
	content := "<doc>\n-tia\tv\nhopu-kina\tv\n</doc>\n"
	path := writeTmpFile(t, "corpus.vert", content)
	rows := collectRows(t, &VerticalSource{Path: path, TokenColumn: 0})
	assert.Equal(t, []Row{{Stem: "hopu", Suffix: "kina"}}, rows)
}

func TestVerticalSourceTokenColumnOutOfRange(t *testing.T) {
	path := writeTmpFile(t, "corpus.vert", "<doc>\nhopu-kina\n</doc>\n")
	src := &VerticalSource{Path: path, TokenColumn: 5}
	err := src.ForEach(context.Background(), func(row Row) error { return nil })
	assert.Error(t, err)
}

func TestMultiFileScannerSpansFiles(t *testing.T) {
	p1 := writeTmpFile(t, "a.txt", "one\ntwo\n")
	p2 := writeTmpFile(t, "b.txt", "three\n")
	sc, err := NewMultiFileScanner(p1, p2)
	assert.NoError(t, err)
	defer sc.Close()
	var lines, files []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
		files = append(files, sc.CurrentFile())
	}
	assert.NoError(t, sc.Err())
	assert.Equal(t, []string{"one", "two", "three"}, lines)
	assert.Equal(t, []string{p1, p1, p2}, files)
}
