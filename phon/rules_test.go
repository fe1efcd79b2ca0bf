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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinalVowel(t *testing.T) {
	v, ok := FinalVowel("hopu")
	assert.True(t, ok)
	assert.Equal(t, "u", v)
}

func TestFinalVowelMacronDistinct(t *testing.T) {
	v, ok := FinalVowel("hī")
	assert.True(t, ok)
	assert.Equal(t, "ī", v)
	assert.NotEqual(t, "i", v)
}

func TestFinalVowelUndefined(t *testing.T) {
	_, ok := FinalVowel("tan")
	assert.False(t, ok)
	_, ok = FinalVowel("")
	assert.False(t, ok)
}

// The ten vowel symbols must not overlap as suffixes of one another,
// otherwise "the final vowel" would be ambiguous.
func TestVowelInventoryMutuallyExclusiveAsSuffix(t *testing.T) {
	for v1 := range vowels {
		for v2 := range vowels {
			if v1 == v2 {
				continue
			}
			assert.False(
				t, strings.HasSuffix(v1, v2),
				"vowel %s is a suffix of %s", v2, v1)
		}
	}
}

func TestFinalVowelFeature(t *testing.T) {
	f, ok := FinalVowelFeature("kata")
	assert.True(t, ok)
	assert.Equal(t, "[low, back, -round, short]", f)
}

func TestVowelSeq(t *testing.T) {
	s, ok := VowelSeq("whakapapa")
	assert.True(t, ok)
	assert.Equal(t, "aaaa", s)
}

func TestVowelSeqDiphthongsNotMerged(t *testing.T) {
	s, ok := VowelSeq("kai")
	assert.True(t, ok)
	assert.Equal(t, "ai", s)
}

func TestConsSeqDigraphAware(t *testing.T) {
	s, ok := ConsSeq("whakapapa")
	assert.True(t, ok)
	assert.Equal(t, "whkpp", s)
	// the first unit is the digraph, not <w> followed by <h>
	segs := Segments("whakapapa")
	assert.Equal(t, "wh", segs[0].Symbol)
}

func TestConsSeqPlain(t *testing.T) {
	s, ok := ConsSeq("papa")
	assert.True(t, ok)
	assert.Equal(t, "pp", s)
}

func TestConsSeqUndefinedForVowelOnlyStem(t *testing.T) {
	_, ok := ConsSeq("ao")
	assert.False(t, ok)
}

func TestFinalCons(t *testing.T) {
	c, ok := FinalCons("hongi")
	assert.True(t, ok)
	assert.Equal(t, "ng", c)
}

func TestVowelFeatureSeq(t *testing.T) {
	s, ok := VowelFeatureSeq("kai")
	assert.True(t, ok)
	assert.Equal(
		t,
		"[low, back, -round, short] [high, front, -round, short]",
		s)
}

func TestConsFeatureSeq(t *testing.T) {
	s, ok := ConsFeatureSeq("whata")
	assert.True(t, ok)
	assert.Equal(
		t,
		"[+cons, -son, -nas, lab, +cont, -SG, -voi] [+cons, -son, -nas, cor, -cont, -SG, -voi]",
		s)
}

func TestFinalConsFeature(t *testing.T) {
	s, ok := FinalConsFeature("hongi")
	assert.True(t, ok)
	assert.Equal(t, "[+cons, +son, +nas, dors, -cont, -SG, +voi]", s)
}

func TestSingleAxisSequences(t *testing.T) {
	tests := []struct {
		name string
		fn   ExtractorFn
		stem string
		want string
	}{
		{"nasality", NasalitySeq, "mutu", "+nas -nas"},
		{"place", PlaceSeq, "hongi", "dors dors"},
		{"consonantal", ConsonantalSeq, "whai", "+cons"},
		{"sonorant", SonorantSeq, "karo", "-son +son"},
		{"continuant", ContinuantSeq, "rere", "+cont +cont"},
		{"voicing", VoicingSeq, "patu", "-voi -voi"},
		{"spreadGlottis", SpreadGlottisSeq, "hopu", "+SG -SG"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.fn(tt.stem)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRuleRegistryComplete(t *testing.T) {
	for _, name := range RuleNames() {
		fn, err := Rule(name)
		assert.NoError(t, err)
		assert.NotNil(t, fn)
	}
	_, err := Rule("no_such_rule")
	assert.Error(t, err)
}

func TestKnownSuffix(t *testing.T) {
	for _, s := range Suffixes() {
		assert.True(t, KnownSuffix(s))
	}
	assert.False(t, KnownSuffix("tanga"))
	assert.Equal(t, 12, len(Suffixes()))
}
