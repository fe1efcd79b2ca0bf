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

package ptcount

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/czcorpus/cnc-gokit/collections"
)

// ProbColumns are the recognized column names of a probability report
// schema. The order in a report configuration determines the order of
// the written columns.
var ProbColumns = []string{"descriptor", "suffix", "joint", "prob", "marginal"}

// ProbRow is one conditional-probability record:
// Prob = p(suffix|descriptor) = Joint / Marginal.
type ProbRow struct {
	Suffix     string
	Descriptor string
	Prob       float64
	Joint      int
	Marginal   int
}

// Fields renders the row under a configured column order.
func (r ProbRow) Fields(schema []string) ([]string, error) {
	ans := make([]string, len(schema))
	for i, col := range schema {
		switch col {
		case "suffix":
			ans[i] = r.Suffix
		case "descriptor":
			ans[i] = r.Descriptor
		case "prob":
			ans[i] = strconv.FormatFloat(r.Prob, 'g', -1, 64)
		case "joint":
			ans[i] = strconv.Itoa(r.Joint)
		case "marginal":
			ans[i] = strconv.Itoa(r.Marginal)
		default:
			return nil, fmt.Errorf("unknown probability report column '%s'", col)
		}
	}
	return ans, nil
}

// Reporter converts a completed CondCounter into probability rows.
// All knobs are per-report configuration, not global policy: some
// historical outputs round to 4 digits, some restrict the reported
// suffixes (the restriction applies at report time only - filtered
// rows still contributed to the marginal counts).
type Reporter struct {
	// RoundDigits rounds probabilities to the given number of decimal
	// digits; 0 keeps full precision.
	RoundDigits int

	// SuffixFilter, when non-empty, limits the emitted rows to the
	// listed suffixes.
	SuffixFilter []string

	// MostCommonFirst sorts rows by descending marginal count.
	MostCommonFirst bool
}

func roundTo(v float64, digits int) float64 {
	pow := math.Pow(10, float64(digits))
	return math.Round(v*pow) / pow
}

// Rows derives the probability rows of a counter. The marginal count of
// a descriptor is never zero here: it is incremented in the same step
// as any joint entry, so marginal >= joint >= 1.
func (r Reporter) Rows(c *CondCounter) []ProbRow {
	ans := make([]ProbRow, 0, c.NumPairs())
	c.ForEachJoint(func(item JointItem) {
		if len(r.SuffixFilter) > 0 &&
			!collections.SliceContains(r.SuffixFilter, item.Suffix) {
			return
		}
		marginal := c.Marginal(item.Descriptor)
		p := float64(item.Count) / float64(marginal)
		if r.RoundDigits > 0 {
			p = roundTo(p, r.RoundDigits)
		}
		ans = append(ans, ProbRow{
			Suffix:     item.Suffix,
			Descriptor: item.Descriptor,
			Prob:       p,
			Joint:      item.Count,
			Marginal:   marginal,
		})
	})
	if r.MostCommonFirst {
		sort.Slice(ans, func(i, j int) bool {
			if ans[i].Marginal != ans[j].Marginal {
				return ans[i].Marginal > ans[j].Marginal
			}
			if ans[i].Descriptor != ans[j].Descriptor {
				return ans[i].Descriptor < ans[j].Descriptor
			}
			return ans[i].Suffix < ans[j].Suffix
		})
	}
	return ans
}
