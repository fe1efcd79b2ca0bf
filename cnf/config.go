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

// Package cnf loads and validates analysis task configurations.
package cnf

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/collections"

	"github.com/mriling/suffixtab/db"
	"github.com/mriling/suffixtab/phon"
	"github.com/mriling/suffixtab/proc"
	"github.com/mriling/suffixtab/ptcount"
)

// InputConf describes where the (stem, suffix) observations come from
// and how the raw columns are cleaned up.
type InputConf struct {
	// Format is "pairs" (two-column TSV) or "vertical" (corpus
	// vertical file).
	Format string `json:"format"`

	// Files lists the input files processed as one corpus.
	Files []string `json:"files"`

	// SuffixMode tells how the second column encodes the suffix:
	// "label", "split" or "rules".
	SuffixMode string `json:"suffixMode"`

	// TokenColumn is the vertical-file column holding the
	// hyphen-marked inflected form (0 = the word column).
	TokenColumn int `json:"tokenColumn,omitempty"`

	// Encoding of the vertical file (UTF-8 when empty).
	Encoding string `json:"encoding,omitempty"`

	// StemNormalizers and SuffixNormalizers name the string
	// normalization steps applied per column before counting.
	StemNormalizers   []string `json:"stemNormalizers,omitempty"`
	SuffixNormalizers []string `json:"suffixNormalizers,omitempty"`
}

// ReportConf configures one statistic, i.e. one triple of output
// tables named after the rule.
type ReportConf struct {
	// Rule names the descriptor extraction rule (see `suffixtab rules`).
	Rule string `json:"rule"`

	// Columns sets the schema of the probability table. When empty,
	// the full five-column schema is written.
	Columns []string `json:"columns,omitempty"`

	// RoundDigits rounds probabilities to this many decimal digits;
	// 0 keeps full precision.
	RoundDigits int `json:"roundDigits,omitempty"`

	// SuffixFilter restricts the probability report to the listed
	// suffixes. The marginal counts are not affected.
	SuffixFilter []string `json:"suffixFilter,omitempty"`

	// MostCommonFirst orders probability rows by descending marginal.
	MostCommonFirst bool `json:"mostCommonFirst,omitempty"`
}

// SchemaColumns resolves the effective probability table schema.
func (rc *ReportConf) SchemaColumns() []string {
	if len(rc.Columns) > 0 {
		return rc.Columns
	}
	return ptcount.ProbColumns
}

// AnalysisConf holds the configuration of a whole analysis run.
type AnalysisConf struct {
	Corpus  string       `json:"corpus"`
	Input   InputConf    `json:"input"`
	Reports []ReportConf `json:"reports"`
	DB      db.Conf      `json:"db"`

	// MaxNumErrors is the number of recoverable input errors
	// tolerated before the process stops.
	MaxNumErrors int `json:"maxNumErrors"`

	Verbosity int `json:"verbosity"`
}

func (c *AnalysisConf) validateInput() error {
	if c.Input.Format != "pairs" && c.Input.Format != "vertical" {
		return fmt.Errorf("unknown input format: %s", c.Input.Format)
	}
	if len(c.Input.Files) == 0 {
		return fmt.Errorf("no input files defined")
	}
	if c.Input.Format == "vertical" && len(c.Input.Files) != 1 {
		return fmt.Errorf("vertical input supports exactly one file")
	}
	if err := proc.SuffixMode(c.Input.SuffixMode).Validate(); err != nil {
		return err
	}
	if c.Input.TokenColumn < 0 {
		return fmt.Errorf("tokenColumn must not be negative")
	}
	return nil
}

func (c *AnalysisConf) validateReports() error {
	if len(c.Reports) == 0 {
		return fmt.Errorf("no reports defined")
	}
	seen := collections.NewSet[string]()
	for _, rc := range c.Reports {
		if _, err := phon.Rule(rc.Rule); err != nil {
			return err
		}
		if seen.Contains(rc.Rule) {
			return fmt.Errorf("duplicate report rule: %s", rc.Rule)
		}
		seen.Add(rc.Rule)
		for _, col := range rc.Columns {
			if !collections.SliceContains(ptcount.ProbColumns, col) {
				return fmt.Errorf("unknown report column '%s' in rule %s", col, rc.Rule)
			}
		}
		if rc.RoundDigits < 0 {
			return fmt.Errorf("roundDigits must not be negative (rule %s)", rc.Rule)
		}
		for _, sfx := range rc.SuffixFilter {
			if !phon.KnownSuffix(sfx) {
				return fmt.Errorf("unknown suffix '%s' in filter of rule %s", sfx, rc.Rule)
			}
		}
	}
	return nil
}

// Validate tests the whole configuration before a run starts, so bad
// configs fail fast instead of after a long extraction pass.
func (c *AnalysisConf) Validate() error {
	if c.Corpus == "" {
		return fmt.Errorf("missing corpus name")
	}
	if err := c.validateInput(); err != nil {
		return err
	}
	if err := c.validateReports(); err != nil {
		return err
	}
	switch c.DB.Type {
	case "", "tsv", "sqlite", "mysql":
	default:
		return fmt.Errorf("unknown db type: %s", c.DB.Type)
	}
	return nil
}

// LoadConf reads and parses an analysis configuration file.
func LoadConf(confPath string) (*AnalysisConf, error) {
	rawData, err := os.ReadFile(confPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", confPath, err)
	}
	var conf AnalysisConf
	if err := sonic.Unmarshal(rawData, &conf); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", confPath, err)
	}
	return &conf, nil
}

// SampleConf returns a starting-point configuration covering every
// available rule, used by the `template` action.
func SampleConf() *AnalysisConf {
	reports := make([]ReportConf, 0, len(phon.RuleNames()))
	for _, name := range phon.RuleNames() {
		reports = append(reports, ReportConf{
			Rule:        name,
			RoundDigits: 4,
		})
	}
	return &AnalysisConf{
		Corpus: "mymaori",
		Input: InputConf{
			Format:            "pairs",
			Files:             []string{"/path/to/pairs.tsv"},
			SuffixMode:        "label",
			StemNormalizers:   []string{"trimSpace", "toLower"},
			SuffixNormalizers: []string{"trimSpace"},
		},
		Reports: reports,
		DB: db.Conf{
			Type: "sqlite",
			Name: "/path/to/output.db",
		},
		MaxNumErrors: 0,
		Verbosity:    0,
	}
}
