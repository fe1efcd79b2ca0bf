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

package tsv

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/mriling/suffixtab/db"
	"github.com/mriling/suffixtab/fs"
)

// Writer emits each statistic table as a tab-separated file
// <dir>/<table>.tsv, matching the flat-file outputs the historical
// analysis scripts produced.
type Writer struct {
	Dir string

	files   map[string]*os.File
	writers map[string]*bufio.Writer
}

func (w *Writer) tablePath(table string) string {
	return filepath.Join(w.Dir, table+".tsv")
}

func (w *Writer) DatabaseExists() bool {
	return fs.IsDir(w.Dir)
}

func (w *Writer) Initialize(appendMode bool, tables []db.TableSpec) error {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return fmt.Errorf("failed to prepare output directory: %w", err)
	}
	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND

	} else {
		flags |= os.O_TRUNC
	}
	w.files = make(map[string]*os.File)
	w.writers = make(map[string]*bufio.Writer)
	for _, t := range tables {
		f, err := os.OpenFile(w.tablePath(t.Name), flags, 0644)
		if err != nil {
			return fmt.Errorf("failed to open output file: %w", err)
		}
		w.files[t.Name] = f
		w.writers[t.Name] = bufio.NewWriter(f)
	}
	log.Info().Str("dir", w.Dir).Int("tables", len(tables)).Msg("Opened TSV outputs")
	return nil
}

type rowInsert struct {
	wr *bufio.Writer
}

func (i *rowInsert) Exec(values ...any) error {
	for idx, v := range values {
		if idx > 0 {
			if err := i.wr.WriteByte('\t'); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(i.wr, v); err != nil {
			return err
		}
	}
	return i.wr.WriteByte('\n')
}

func (w *Writer) PrepareInsert(table string, cols []string) (db.InsertOperation, error) {
	wr, ok := w.writers[table]
	if !ok {
		return nil, fmt.Errorf("no output file open for table %s", table)
	}
	return &rowInsert{wr: wr}, nil
}

func (w *Writer) Commit() error {
	for name, wr := range w.writers {
		if err := wr.Flush(); err != nil {
			return fmt.Errorf("failed to flush output for %s: %w", name, err)
		}
	}
	return nil
}

// Rollback removes the partially written files.
func (w *Writer) Rollback() error {
	for name, f := range w.files {
		f.Close()
		if err := os.Remove(f.Name()); err != nil {
			log.Warn().Err(err).Str("table", name).Msg("failed to remove partial output")
		}
	}
	w.files = nil
	w.writers = nil
	return nil
}

func (w *Writer) Close() {
	for _, f := range w.files {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Msg("Error closing output file")
		}
	}
}
