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

// Package validation checks pair corpus files before an analysis run,
// so data problems surface as a readable report instead of a failed
// extraction.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/mriling/suffixtab/phon"
	"github.com/mriling/suffixtab/proc"
)

// Problem is one issue found in a corpus file.
type Problem struct {
	File    string
	Line    int
	Message string
}

// Report summarizes a validation pass.
type Report struct {
	CheckedRows int
	Problems    []Problem
}

// OK tells whether the corpus passed without problems.
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

// PairValidator checks two-column corpus files row by row: the column
// arity, the stem alphabet and the suffix column under the configured
// suffix mode.
type PairValidator struct {
	suffixMode proc.SuffixMode

	// MaxProblems stops the pass early once reached (0 = unlimited).
	MaxProblems int
}

func NewPairValidator(suffixMode proc.SuffixMode) (*PairValidator, error) {
	if err := suffixMode.Validate(); err != nil {
		return nil, err
	}
	return &PairValidator{suffixMode: suffixMode}, nil
}

// stemProblem tests the stem column. A stem must be non-empty and
// spelled entirely in the Māori alphabet.
func stemProblem(stem string) string {
	if stem == "" {
		return "empty stem"
	}
	for _, r := range stem {
		sym := string(r)
		if !phon.IsVowel(sym) && !phon.IsConsonant(sym) {
			return fmt.Sprintf("stem contains a symbol outside the alphabet: '%c'", r)
		}
	}
	return ""
}

// suffixProblem tests the second column under the validator's suffix
// mode. Rules mode accepts any well-formed inflected form, since an
// unmatched form still counts as irregular during extraction.
func (v *PairValidator) suffixProblem(stem, suffix string) string {
	switch v.suffixMode {
	case proc.SuffixModeLabel:
		if !phon.KnownSuffix(suffix) && suffix != phon.IrregularLabel {
			return "unknown suffix label: " + suffix
		}
	case proc.SuffixModeSplit:
		if _, _, err := proc.SplitInflected(suffix); err != nil {
			return "cannot split inflected form: " + suffix
		}
	case proc.SuffixModeRules:
		if suffix == "" {
			return "empty inflected form"
		}
	}
	return ""
}

func (v *PairValidator) addProblem(report *Report, file string, line int, msg string) bool {
	report.Problems = append(report.Problems, Problem{File: file, Line: line, Message: msg})
	return v.MaxProblems > 0 && len(report.Problems) >= v.MaxProblems
}

// Run validates the listed corpus files as one corpus.
func (v *PairValidator) Run(paths []string) (*Report, error) {
	scanner, err := proc.NewMultiFileScanner(paths...)
	if err != nil {
		return nil, err
	}
	defer scanner.Close()
	report := &Report{}
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" {
			continue
		}
		if !utf8.ValidString(text) {
			if v.addProblem(report, scanner.CurrentFile(), line, "invalid UTF-8") {
				return report, nil
			}
			continue
		}
		cols := strings.Split(text, "\t")
		if len(cols) != 2 {
			msg := fmt.Sprintf("expected 2 columns, found %d", len(cols))
			if v.addProblem(report, scanner.CurrentFile(), line, msg) {
				return report, nil
			}
			continue
		}
		report.CheckedRows++
		if msg := stemProblem(cols[0]); msg != "" {
			if v.addProblem(report, scanner.CurrentFile(), line, msg) {
				return report, nil
			}
		}
		if msg := v.suffixProblem(cols[0], cols[1]); msg != "" {
			if v.addProblem(report, scanner.CurrentFile(), line, msg) {
				return report, nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Info().
		Int("checkedRows", report.CheckedRows).
		Int("numProblems", len(report.Problems)).
		Msg("validation finished")
	return report, nil
}
