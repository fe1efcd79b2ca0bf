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

package phon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func symbols(segs []Segment) []string {
	ans := make([]string, len(segs))
	for i, s := range segs {
		ans[i] = s.Symbol
	}
	return ans
}

func TestSegmentsDigraphPriority(t *testing.T) {
	segs := Segments("whakapapa")
	assert.Equal(
		t, []string{"wh", "a", "k", "a", "p", "a", "p", "a"}, symbols(segs))
	assert.Equal(t, Consonant, segs[0].Kind)
}

func TestSegmentsNgDigraph(t *testing.T) {
	segs := Segments("hongi")
	assert.Equal(t, []string{"h", "o", "ng", "i"}, symbols(segs))
}

func TestSegmentsNoDigraph(t *testing.T) {
	segs := Segments("papa")
	assert.Equal(t, []string{"p", "a", "p", "a"}, symbols(segs))
}

func TestSegmentsMacronizedVowels(t *testing.T) {
	segs := Segments("hī")
	assert.Equal(t, []string{"h", "ī"}, symbols(segs))
	assert.Equal(t, Vowel, segs[1].Kind)
}

func TestSegmentsSkipsUnclassified(t *testing.T) {
	segs := Segments("ka-i!")
	assert.Equal(t, []string{"k", "a", "i"}, symbols(segs))
}

func TestSegmentsEmpty(t *testing.T) {
	assert.Empty(t, Segments(""))
}

func TestSegmentsTrailingDigraphStart(t *testing.T) {
	// a final <n> or <w> with nothing following stays a single consonant
	segs := Segments("tan")
	assert.Equal(t, []string{"t", "a", "n"}, symbols(segs))
}
