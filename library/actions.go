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

// Package library exposes the suffix statistics pipeline as an
// embeddable API, so other programs can run analyses without going
// through the command line front-end.
package library

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mriling/suffixtab/cnf"
	"github.com/mriling/suffixtab/db/factory"
	"github.com/mriling/suffixtab/fs"
	"github.com/mriling/suffixtab/phon"
	"github.com/mriling/suffixtab/proc"
	"github.com/mriling/suffixtab/ptcount"
)

func sendErrStatus(statusChan chan proc.Status, file string, err error) {
	statusChan <- proc.Status{
		Datetime: time.Now(),
		File:     file,
		Error:    err,
	}
}

// buildTasks instantiates one report task per configured rule. The
// configuration is expected to be validated already, an unknown rule
// here is a programming error.
func buildTasks(conf *cnf.AnalysisConf) ([]*proc.ReportTask, error) {
	tasks := make([]*proc.ReportTask, 0, len(conf.Reports))
	for _, rc := range conf.Reports {
		rule, err := phon.Rule(rc.Rule)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, &proc.ReportTask{
			Name:    rc.Rule,
			Rule:    rule,
			Columns: rc.SchemaColumns(),
			Reporter: ptcount.Reporter{
				RoundDigits:     rc.RoundDigits,
				SuffixFilter:    rc.SuffixFilter,
				MostCommonFirst: rc.MostCommonFirst,
			},
			Counter: ptcount.NewCondCounter(),
		})
	}
	return tasks, nil
}

// ResolveInputFiles expands configured paths, directory entries
// included, into the flat list of files to process. Every consumer of
// the input file list resolves it through here, so a directory path
// behaves the same in every command.
func ResolveInputFiles(paths []string) ([]string, error) {
	var ans []string
	for _, path := range paths {
		if path == "" {
			log.Warn().Msg("empty path in the input file list, skipping")
			continue
		}
		if fs.IsFile(path) {
			ans = append(ans, path)

		} else if fs.IsDir(path) {
			tmp, err := fs.ListFilesInDir(path)
			if err != nil {
				return nil, err
			}
			ans = append(ans, tmp...)

		} else {
			return nil, fmt.Errorf("input path %s not found", path)
		}
	}
	if len(ans) == 0 {
		return nil, fmt.Errorf("no input files found to process")
	}
	return ans, nil
}

func buildRowSource(conf *cnf.AnalysisConf) (proc.RowSource, error) {
	files, err := ResolveInputFiles(conf.Input.Files)
	if err != nil {
		return nil, err
	}
	switch conf.Input.Format {
	case "pairs":
		return &proc.PairFileSource{Paths: files}, nil
	case "vertical":
		return &proc.VerticalSource{
			Path:        files[0],
			Encoding:    conf.Input.Encoding,
			TokenColumn: conf.Input.TokenColumn,
		}, nil
	}
	return nil, fmt.Errorf("unknown input format: %s", conf.Input.Format)
}

// RunAnalysis aggregates suffix statistics according to conf and
// stores the report tables into the configured backend. The returned
// channel delivers progress updates and possible errors; it is closed
// when the run is over.
func RunAnalysis(
	ctx context.Context,
	conf *cnf.AnalysisConf,
	appendData bool,
) (chan proc.Status, error) {
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("RunAnalysis failed: %w", err)
	}
	tasks, err := buildTasks(conf)
	if err != nil {
		return nil, fmt.Errorf("RunAnalysis failed: %w", err)
	}
	src, err := buildRowSource(conf)
	if err != nil {
		return nil, fmt.Errorf("RunAnalysis failed: %w", err)
	}
	dbWriter, err := factory.NewDatabaseWriter(&conf.DB)
	if err != nil {
		return nil, err
	}
	if appendData && !dbWriter.DatabaseExists() {
		return nil, fmt.Errorf(
			"the append flag is set but the database %s does not exist", conf.DB.Name)
	}

	statusChan := make(chan proc.Status, 10)
	go func() {
		defer dbWriter.Close()
		defer close(statusChan)

		if err := dbWriter.Initialize(appendData, proc.TableSpecs(tasks)); err != nil {
			sendErrStatus(statusChan, "", err)
			return
		}
		extractor, err := proc.NewSFXExtractor(
			proc.ExtractorConf{
				SuffixMode:        proc.SuffixMode(conf.Input.SuffixMode),
				StemNormalizers:   conf.Input.StemNormalizers,
				SuffixNormalizers: conf.Input.SuffixNormalizers,
				MaxNumErrors:      conf.MaxNumErrors,
			},
			tasks,
			statusChan,
		)
		if err != nil {
			sendErrStatus(statusChan, "", err)
			return
		}
		if err := extractor.Run(ctx, src); err != nil {
			sendErrStatus(statusChan, src.Name(), err)
			if err := dbWriter.Rollback(); err != nil {
				log.Error().Err(err).Msg("failed to roll back after extraction error")
			}
			return
		}
		if err := extractor.WriteReports(dbWriter); err != nil {
			sendErrStatus(statusChan, src.Name(), err)
			if err := dbWriter.Rollback(); err != nil {
				log.Error().Err(err).Msg("failed to roll back after write error")
			}
			return
		}
		if err := dbWriter.Commit(); err != nil {
			sendErrStatus(statusChan, "", err)
		}
	}()
	return statusChan, nil
}
