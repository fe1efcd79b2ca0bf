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
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mriling/suffixtab/db"
	"github.com/mriling/suffixtab/phon"
	"github.com/mriling/suffixtab/ptcount"
	"github.com/mriling/suffixtab/ptcount/modders"
)

const statusUpdateEveryNthRow = 1000

// SuffixMode tells the extractor how to obtain a suffix label from
// the second input column.
type SuffixMode string

const (
	// SuffixModeLabel takes the column as a ready-made suffix label.
	SuffixModeLabel SuffixMode = "label"

	// SuffixModeSplit takes the column as a hyphen-marked inflected
	// form (<lemma>-<suffix>) and splits it.
	SuffixModeSplit SuffixMode = "split"

	// SuffixModeRules takes the column as a plain inflected form and
	// recovers the suffix by testing each attachment rule against the
	// stem.
	SuffixModeRules SuffixMode = "rules"
)

func (m SuffixMode) Validate() error {
	switch m {
	case SuffixModeLabel, SuffixModeSplit, SuffixModeRules:
		return nil
	}
	return fmt.Errorf("unknown suffix mode: %s", m)
}

// Status reports the progress of a running extraction.
type Status struct {
	Datetime      time.Time
	File          string
	ProcessedRows int
	IrregularRows int
	Error         error
}

// ReportTask binds a descriptor rule to its aggregation state and
// report options. One task produces three output tables.
type ReportTask struct {
	Name     string
	Rule     phon.ExtractorFn
	Columns  []string
	Reporter ptcount.Reporter
	Counter  *ptcount.CondCounter
}

// SFXExtractor walks corpus rows and aggregates conditional suffix
// frequencies for each configured report task.
type SFXExtractor struct {
	tasks          []*ReportTask
	suffixMode     SuffixMode
	stemModders    *modders.ModderChain
	suffixModders  *modders.ModderChain
	maxNumErrors   int
	errorCount     int
	processedRows  int
	irregularRows  int
	statusChan     chan<- Status
	currentSrcName string
}

// ExtractorConf summarizes options the extractor itself needs; the
// rest of the pipeline config stays with its owners.
type ExtractorConf struct {
	SuffixMode        SuffixMode
	StemNormalizers   []string
	SuffixNormalizers []string
	MaxNumErrors      int
}

func NewSFXExtractor(
	conf ExtractorConf,
	tasks []*ReportTask,
	statusChan chan<- Status,
) (*SFXExtractor, error) {
	if err := conf.SuffixMode.Validate(); err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, fmt.Errorf("no report tasks defined")
	}
	return &SFXExtractor{
		tasks:         tasks,
		suffixMode:    conf.SuffixMode,
		stemModders:   modders.ChainFromNames(conf.StemNormalizers),
		suffixModders: modders.ChainFromNames(conf.SuffixNormalizers),
		maxNumErrors:  conf.MaxNumErrors,
		statusChan:    statusChan,
	}, nil
}

func (e *SFXExtractor) ProcessedRows() int { return e.processedRows }
func (e *SFXExtractor) IrregularRows() int { return e.irregularRows }

func (e *SFXExtractor) reportStatus(err error) {
	if e.statusChan == nil {
		return
	}
	e.statusChan <- Status{
		Datetime:      time.Now(),
		File:          e.currentSrcName,
		ProcessedRows: e.processedRows,
		IrregularRows: e.irregularRows,
		Error:         err,
	}
}

// softError counts a recoverable input problem and decides whether the
// run is still within its error budget. A zero budget means any error
// is fatal.
func (e *SFXExtractor) softError(err error) error {
	e.errorCount++
	if e.errorCount > e.maxNumErrors {
		return fmt.Errorf("too many errors (%d), last one: %w", e.errorCount, err)
	}
	log.Warn().Err(err).Int("errorCount", e.errorCount).Msg("recoverable input error")
	e.reportStatus(err)
	return nil
}

// resolveSuffix maps the raw second column to a suffix label. The
// returned bool tells whether the label is one of the attested
// suffixes; anything else is recorded under the irregular label.
func (e *SFXExtractor) resolveSuffix(stem, rawSuffix string) (string, bool, error) {
	switch e.suffixMode {
	case SuffixModeLabel:
		if phon.KnownSuffix(rawSuffix) {
			return rawSuffix, true, nil
		}
		return phon.IrregularLabel, false, nil
	case SuffixModeSplit:
		_, suffix, err := SplitInflected(rawSuffix)
		if err != nil {
			return "", false, err
		}
		if phon.KnownSuffix(suffix) {
			return suffix, true, nil
		}
		return phon.IrregularLabel, false, nil
	case SuffixModeRules:
		outcome := MatchSuffix(stem, rawSuffix)
		if outcome.Result == Matched {
			return outcome.Suffix, true, nil
		}
		return phon.IrregularLabel, false, nil
	}
	return "", false, fmt.Errorf("unknown suffix mode: %s", e.suffixMode)
}

func (e *SFXExtractor) processRow(row Row) error {
	stem := e.stemModders.Mod(row.Stem)
	rawSuffix := e.suffixModders.Mod(row.Suffix)
	if stem == "" {
		return e.softError(fmt.Errorf("empty stem on row %d", e.processedRows+1))
	}
	suffix, regular, err := e.resolveSuffix(stem, rawSuffix)
	if err != nil {
		return e.softError(err)
	}
	e.processedRows++
	if !regular {
		e.irregularRows++
	}
	for _, task := range e.tasks {
		desc, ok := task.Rule(stem)
		if !ok {
			continue
		}
		task.Counter.Incr(desc, suffix)
	}
	if e.processedRows%statusUpdateEveryNthRow == 0 {
		e.reportStatus(nil)
	}
	return nil
}

// Run performs a full aggregation pass over src.
func (e *SFXExtractor) Run(ctx context.Context, src RowSource) error {
	e.currentSrcName = src.Name()
	log.Info().
		Str("source", e.currentSrcName).
		Str("suffixMode", string(e.suffixMode)).
		Int("numReports", len(e.tasks)).
		Msg("starting suffix frequency extraction")
	t0 := time.Now()
	if err := src.ForEach(ctx, e.processRow); err != nil {
		return err
	}
	e.reportStatus(nil)
	log.Info().
		Int("processedRows", e.processedRows).
		Int("irregularRows", e.irregularRows).
		Float64("procTimeSecs", time.Since(t0).Seconds()).
		Msg("extraction finished")
	return nil
}

// TableSpecs builds the schema of the three output tables of every
// configured report task, in insertion order.
func TableSpecs(tasks []*ReportTask) []db.TableSpec {
	specs := make([]db.TableSpec, 0, 3*len(tasks))
	for _, task := range tasks {
		specs = append(specs,
			db.TableSpec{
				Name:    task.Name,
				Columns: []string{"descriptor", "count"},
			},
			db.TableSpec{
				Name:    task.Name + "_suffix",
				Columns: []string{"descriptor", "suffix", "count"},
			},
			db.TableSpec{
				Name:    task.Name + "_prob",
				Columns: task.Columns,
			},
		)
	}
	return specs
}

func (e *SFXExtractor) writeMarginals(writer db.Writer, task *ReportTask) error {
	ins, err := writer.PrepareInsert(task.Name, []string{"descriptor", "count"})
	if err != nil {
		return err
	}
	for _, item := range task.Counter.MostCommon() {
		if err := ins.Exec(item.Descriptor, strconv.Itoa(item.Count)); err != nil {
			return err
		}
	}
	return nil
}

func (e *SFXExtractor) writeJoints(writer db.Writer, task *ReportTask) error {
	ins, err := writer.PrepareInsert(
		task.Name+"_suffix", []string{"descriptor", "suffix", "count"})
	if err != nil {
		return err
	}
	for _, item := range task.Counter.MostCommonJoint() {
		if err := ins.Exec(item.Descriptor, item.Suffix, strconv.Itoa(item.Count)); err != nil {
			return err
		}
	}
	return nil
}

func (e *SFXExtractor) writeProbs(writer db.Writer, task *ReportTask) error {
	ins, err := writer.PrepareInsert(task.Name+"_prob", task.Columns)
	if err != nil {
		return err
	}
	for _, row := range task.Reporter.Rows(task.Counter) {
		fields, err := row.Fields(task.Columns)
		if err != nil {
			return err
		}
		values := make([]any, len(fields))
		for i, f := range fields {
			values[i] = f
		}
		if err := ins.Exec(values...); err != nil {
			return err
		}
	}
	return nil
}

// WriteReports stores all three tables of every report task via the
// configured database writer. The caller owns transaction boundaries.
func (e *SFXExtractor) WriteReports(writer db.Writer) error {
	for _, task := range e.tasks {
		log.Info().
			Str("report", task.Name).
			Int("numDescriptors", task.Counter.NumDescriptors()).
			Int("numPairs", task.Counter.NumPairs()).
			Msg("writing report tables")
		if err := e.writeMarginals(writer, task); err != nil {
			return fmt.Errorf("failed to write report %s: %w", task.Name, err)
		}
		if err := e.writeJoints(writer, task); err != nil {
			return fmt.Errorf("failed to write report %s: %w", task.Name, err)
		}
		if err := e.writeProbs(writer, task); err != nil {
			return fmt.Errorf("failed to write report %s: %w", task.Name, err)
		}
	}
	return nil
}
