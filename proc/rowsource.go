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
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tomachalek/vertigo/v5"
)

// Row is one (stem, suffix-column) observation of the corpus. The
// second column is either a suffix label or a raw inflected form,
// depending on the configured suffix mode.
type Row struct {
	Stem   string
	Suffix string
}

// RowSource produces the ordered corpus rows.
type RowSource interface {
	// Name identifies the source in logs and status reports.
	Name() string

	// ForEach calls fn on every row in corpus order. A non-nil error
	// from fn aborts the pass.
	ForEach(ctx context.Context, fn func(row Row) error) error
}

// PairFileSource reads one or more two-column tab-separated files.
// A row with any other number of columns aborts the pass; there is no
// partial-row recovery.
type PairFileSource struct {
	Paths []string
}

func (s *PairFileSource) Name() string {
	if len(s.Paths) == 1 {
		return s.Paths[0]
	}
	return fmt.Sprintf("multifile://%s", s.Paths[0])
}

func (s *PairFileSource) ForEach(ctx context.Context, fn func(row Row) error) error {
	scanner, err := NewMultiFileScanner(s.Paths...)
	if err != nil {
		return fmt.Errorf("failed to open pair files: %w", err)
	}
	defer scanner.Close()
	lineNum := 0
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) != 2 {
			return fmt.Errorf(
				"malformed row in %s on line %d: expected 2 columns, found %d",
				scanner.CurrentFile(), lineNum, len(cols))
		}
		if err := fn(Row{Stem: cols[0], Suffix: cols[1]}); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// VerticalSource extracts rows from a corpus vertical file. The
// configured token column is expected to hold hyphen-marked inflected
// forms (<lemma>-<suffix>); tokens without such a form carry no
// passive suffix and are skipped.
type VerticalSource struct {
	Path        string
	Encoding    string
	TokenColumn int
}

func (s *VerticalSource) Name() string {
	return s.Path
}

// vertCollector implements vertigo.LineProcessor; structures are of
// no interest here.
type vertCollector struct {
	ctx         context.Context
	tokenColumn int
	fn          func(row Row) error
}

func (vc *vertCollector) ProcToken(tk *vertigo.Token, line int, err error) error {
	select {
	case <-vc.ctx.Done():
		return vc.ctx.Err()
	default:
	}
	if err != nil {
		return err
	}
	var form string
	if vc.tokenColumn == 0 {
		form = tk.Word

	} else if vc.tokenColumn-1 < len(tk.Attrs) {
		form = tk.Attrs[vc.tokenColumn-1]

	} else {
		return fmt.Errorf("token column %d out of range on line %d", vc.tokenColumn, line)
	}
	if !strings.Contains(form, "-") {
		return nil
	}
	stem, suffix, serr := SplitInflected(form)
	if serr != nil {
		log.Warn().Str("form", form).Int("line", line).Msg("skipping unsplittable token")
		return nil
	}
	return vc.fn(Row{Stem: stem, Suffix: suffix})
}

func (vc *vertCollector) ProcStruct(st *vertigo.Structure, line int, err error) error {
	return err
}

func (vc *vertCollector) ProcStructClose(st *vertigo.StructureClose, line int, err error) error {
	return err
}

func (s *VerticalSource) ForEach(ctx context.Context, fn func(row Row) error) error {
	encoding := s.Encoding
	if encoding == "" {
		encoding = "UTF-8"
	}
	parserConf := &vertigo.ParserConf{
		InputFilePath:         s.Path,
		StructAttrAccumulator: "nil",
		Encoding:              encoding,
	}
	collector := &vertCollector{ctx: ctx, tokenColumn: s.TokenColumn, fn: fn}
	if err := vertigo.ParseVerticalFile(parserConf, collector); err != nil {
		return fmt.Errorf("failed to process vertical file: %w", err)
	}
	return nil
}
