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

package neighbor

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
)

// maxSearchRadius bounds the widening search. Māori stems are short,
// so anything farther than this is not a useful neighbor anyway.
const maxSearchRadius = 10

// ErrNoMatch is returned when no indexed word lies within
// maxSearchRadius of the query.
var ErrNoMatch = errors.New("no neighbor found")

// Match is one nearest-neighbor result.
type Match struct {
	Word     string
	Distance int
}

// Index is a searchable collection of attested stems.
type Index struct {
	tree *BKTree
}

// NewIndex builds a stem index using rune-level Levenshtein distance.
func NewIndex(words []string) *Index {
	tree := NewBKTree(Levenshtein)
	for _, w := range words {
		tree.Add(w)
	}
	log.Debug().Int("numStems", tree.Size()).Msg("built neighbor index")
	return &Index{tree: tree}
}

// Size returns the number of indexed stems.
func (idx *Index) Size() int {
	return idx.tree.Size()
}

// Nearest finds the closest indexed stem distinct from the query. The
// radius widens one step at a time, so the first non-empty radius
// holds the minimum distance. An exact hit of the query itself is
// never a neighbor.
func (idx *Index) Nearest(query string) (Match, error) {
	for radius := 1; radius <= maxSearchRadius; radius++ {
		candidates := idx.tree.Find(query, radius)
		matches := make([]Match, 0, len(candidates))
		for _, c := range candidates {
			d := Levenshtein(query, c)
			if d == 0 {
				continue
			}
			matches = append(matches, Match{Word: c, Distance: d})
		}
		if len(matches) == 0 {
			continue
		}
		sort.Slice(matches, func(i, j int) bool {
			if matches[i].Distance != matches[j].Distance {
				return matches[i].Distance < matches[j].Distance
			}
			return matches[i].Word < matches[j].Word
		})
		return matches[0], nil
	}
	return Match{}, fmt.Errorf("searching neighbors of '%s': %w", query, ErrNoMatch)
}
