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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mriling/suffixtab/db"
	"github.com/mriling/suffixtab/phon"
	"github.com/mriling/suffixtab/ptcount"
)

// sliceSource feeds a fixed row list; no files involved.
type sliceSource struct {
	rows []Row
}

func (s *sliceSource) Name() string { return "memory" }

func (s *sliceSource) ForEach(ctx context.Context, fn func(row Row) error) error {
	for _, row := range s.rows {
		if err := fn(row); err != nil {
			return err
		}
	}
	return nil
}

// memWriter records inserts per table so tests can inspect the
// written reports.
type memWriter struct {
	tables map[string][][]any
}

func newMemWriter() *memWriter {
	return &memWriter{tables: make(map[string][][]any)}
}

func (w *memWriter) DatabaseExists() bool { return true }

func (w *memWriter) Initialize(appendMode bool, tables []db.TableSpec) error {
	return nil
}

func (w *memWriter) PrepareInsert(table string, cols []string) (db.InsertOperation, error) {
	return &memInsert{writer: w, table: table, arity: len(cols)}, nil
}

func (w *memWriter) Commit() error   { return nil }
func (w *memWriter) Rollback() error { return nil }
func (w *memWriter) Close()          {}

type memInsert struct {
	writer *memWriter
	table  string
	arity  int
}

func (i *memInsert) Exec(values ...any) error {
	if len(values) != i.arity {
		return fmt.Errorf("arity mismatch in table %s", i.table)
	}
	i.writer.tables[i.table] = append(i.writer.tables[i.table], values)
	return nil
}

func newTask(t *testing.T, ruleName string, reporter ptcount.Reporter) *ReportTask {
	t.Helper()
	rule, err := phon.Rule(ruleName)
	assert.NoError(t, err)
	return &ReportTask{
		Name:     ruleName,
		Rule:     rule,
		Columns:  []string{"suffix", "descriptor", "prob"},
		Reporter: reporter,
		Counter:  ptcount.NewCondCounter(),
	}
}

func runExtraction(
	t *testing.T,
	conf ExtractorConf,
	rows []Row,
	tasks []*ReportTask,
) *SFXExtractor {
	t.Helper()
	ex, err := NewSFXExtractor(conf, tasks, nil)
	assert.NoError(t, err)
	assert.NoError(t, ex.Run(context.Background(), &sliceSource{rows: rows}))
	return ex
}

func TestExtractorLabelMode(t *testing.T) {
	task := newTask(t, "final_vowel", ptcount.Reporter{})
	ex := runExtraction(
		t,
		ExtractorConf{SuffixMode: SuffixModeLabel, MaxNumErrors: 0},
		[]Row{
			{Stem: "hopu", Suffix: "kina"},
			{Stem: "patu", Suffix: "a"},
			{Stem: "kite", Suffix: "a"},
		},
		[]*ReportTask{task},
	)
	assert.Equal(t, 3, ex.ProcessedRows())
	assert.Equal(t, 0, ex.IrregularRows())
	assert.Equal(t, 2, task.Counter.Marginal("u"))
	assert.Equal(t, 1, task.Counter.Marginal("e"))
	assert.Equal(t, 1, task.Counter.Joint("u", "kina"))
	assert.Equal(t, 1, task.Counter.Joint("u", "a"))
}

func TestExtractorLabelModeUnknownLabel(t *testing.T) {
	task := newTask(t, "final_vowel", ptcount.Reporter{})
	ex := runExtraction(
		t,
		ExtractorConf{SuffixMode: SuffixModeLabel},
		[]Row{{Stem: "hopu", Suffix: "xyz"}},
		[]*ReportTask{task},
	)
	assert.Equal(t, 1, ex.IrregularRows())
	assert.Equal(t, 1, task.Counter.Joint("u", phon.IrregularLabel))
}

func TestExtractorSplitMode(t *testing.T) {
	task := newTask(t, "final_vowel", ptcount.Reporter{})
	ex := runExtraction(
		t,
		ExtractorConf{SuffixMode: SuffixModeSplit},
		[]Row{{Stem: "hopu", Suffix: "hopu-kina"}},
		[]*ReportTask{task},
	)
	assert.Equal(t, 1, ex.ProcessedRows())
	assert.Equal(t, 1, task.Counter.Joint("u", "kina"))
}

func TestExtractorRulesMode(t *testing.T) {
	task := newTask(t, "final_vowel", ptcount.Reporter{})
	ex := runExtraction(
		t,
		ExtractorConf{SuffixMode: SuffixModeRules},
		[]Row{
			{Stem: "hopu", Suffix: "hopukina"},
			{Stem: "hopu", Suffix: "hopuhanga"},
		},
		[]*ReportTask{task},
	)
	assert.Equal(t, 2, ex.ProcessedRows())
	assert.Equal(t, 1, ex.IrregularRows())
	assert.Equal(t, 1, task.Counter.Joint("u", "kina"))
	assert.Equal(t, 1, task.Counter.Joint("u", phon.IrregularLabel))
	assert.Equal(t, 2, task.Counter.Marginal("u"))
}

func TestExtractorNormalizers(t *testing.T) {
	task := newTask(t, "final_vowel", ptcount.Reporter{})
	ex := runExtraction(
		t,
		ExtractorConf{
			SuffixMode:        SuffixModeLabel,
			StemNormalizers:   []string{"trimSpace", "toLower"},
			SuffixNormalizers: []string{"trimSpace"},
		},
		[]Row{{Stem: " Hopu ", Suffix: " kina "}},
		[]*ReportTask{task},
	)
	assert.Equal(t, 1, ex.ProcessedRows())
	assert.Equal(t, 1, task.Counter.Joint("u", "kina"))
}

func TestExtractorReduplicationSkippedBySyllableRule(t *testing.T) {
	sylTask := newTask(t, "syllable_count", ptcount.Reporter{})
	fvTask := newTask(t, "final_vowel", ptcount.Reporter{})
	runExtraction(
		t,
		ExtractorConf{SuffixMode: SuffixModeLabel},
		[]Row{
			{Stem: "tautoko", Suffix: "tia"},
			{Stem: "hongihongi", Suffix: "a"},
		},
		[]*ReportTask{sylTask, fvTask},
	)
	// the reduplicated stem is absent from the syllable report but
	// still present in the other ones
	assert.Equal(t, 1, sylTask.Counter.NumDescriptors())
	assert.Equal(t, 1, sylTask.Counter.Marginal("σσσ"))
	assert.Equal(t, 1, fvTask.Counter.Marginal("o"))
	assert.Equal(t, 1, fvTask.Counter.Marginal("i"))
}

func TestExtractorErrorBudget(t *testing.T) {
	task := newTask(t, "final_vowel", ptcount.Reporter{})
	ex, err := NewSFXExtractor(
		ExtractorConf{SuffixMode: SuffixModeSplit, MaxNumErrors: 1}, []*ReportTask{task}, nil)
	assert.NoError(t, err)
	rows := []Row{
		{Stem: "hopu", Suffix: "nohyphen"},
		{Stem: "kite", Suffix: "kite-a"},
		{Stem: "patu", Suffix: "nohyphen"},
	}
	err = ex.Run(context.Background(), &sliceSource{rows: rows})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "too many errors")
	// the well-formed row in between was still processed
	assert.Equal(t, 1, ex.ProcessedRows())
}

func TestExtractorRejectsUnknownSuffixMode(t *testing.T) {
	_, err := NewSFXExtractor(ExtractorConf{SuffixMode: "guess"}, nil, nil)
	assert.Error(t, err)
}

func TestWriteReports(t *testing.T) {
	task := newTask(t, "final_vowel", ptcount.Reporter{RoundDigits: 4})
	ex := runExtraction(
		t,
		ExtractorConf{SuffixMode: SuffixModeLabel},
		[]Row{
			{Stem: "hopu", Suffix: "a"},
			{Stem: "patu", Suffix: "a"},
			{Stem: "hopu", Suffix: "kina"},
			{Stem: "kite", Suffix: "a"},
		},
		[]*ReportTask{task},
	)
	writer := newMemWriter()
	assert.NoError(t, ex.WriteReports(writer))

	marginals := writer.tables["final_vowel"]
	assert.Equal(t, [][]any{{"u", "3"}, {"e", "1"}}, marginals)

	joints := writer.tables["final_vowel_suffix"]
	assert.Equal(t, [][]any{{"u", "a", "2"}, {"e", "a", "1"}, {"u", "kina", "1"}}, joints)

	probs := writer.tables["final_vowel_prob"]
	assert.Len(t, probs, 3)
	for _, row := range probs {
		assert.Len(t, row, 3)
	}
}

func TestTableSpecs(t *testing.T) {
	task := newTask(t, "vowel_seq", ptcount.Reporter{})
	specs := TableSpecs([]*ReportTask{task})
	assert.Len(t, specs, 3)
	assert.Equal(t, "vowel_seq", specs[0].Name)
	assert.Equal(t, []string{"descriptor", "count"}, specs[0].Columns)
	assert.Equal(t, "vowel_seq_suffix", specs[1].Name)
	assert.Equal(t, "vowel_seq_prob", specs[2].Name)
	assert.Equal(t, task.Columns, specs[2].Columns)
}
