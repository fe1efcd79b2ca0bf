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
	"fmt"
	"strings"
	"unicode/utf8"
)

// ExtractorFn derives one descriptor from a stem. The second return
// value is false when the rule is undefined for the stem, in which case
// the stem contributes to no table of that statistic.
type ExtractorFn func(stem string) (string, bool)

// FinalVowel returns the vowel the stem ends with.
func FinalVowel(stem string) (string, bool) {
	r, size := utf8.DecodeLastRuneInString(stem)
	if size == 0 || r == utf8.RuneError {
		return "", false
	}
	sym := string(r)
	if !vowels[sym] {
		return "", false
	}
	return sym, true
}

// FinalVowelFeature returns the feature bundle of the stem-final vowel.
func FinalVowelFeature(stem string) (string, bool) {
	v, ok := FinalVowel(stem)
	if !ok {
		return "", false
	}
	feat, ok := vowelFeatures[v]
	return feat, ok
}

// VowelSeq concatenates every vowel of the stem in order. Diphthongs
// are not merged; each vowel letter appears individually.
func VowelSeq(stem string) (string, bool) {
	var b strings.Builder
	for _, seg := range Segments(stem) {
		if seg.Kind == Vowel {
			b.WriteString(seg.Symbol)
		}
	}
	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}

// ConsSeq concatenates the consonant units of the stem in order,
// digraphs as single two-letter units.
func ConsSeq(stem string) (string, bool) {
	var b strings.Builder
	for _, seg := range Segments(stem) {
		if seg.Kind == Consonant {
			b.WriteString(seg.Symbol)
		}
	}
	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}

// FinalCons returns the last consonant unit of the stem.
func FinalCons(stem string) (string, bool) {
	last := ""
	for _, seg := range Segments(stem) {
		if seg.Kind == Consonant {
			last = seg.Symbol
		}
	}
	if last == "" {
		return "", false
	}
	return last, true
}

// featureSeq maps consonant units of the stem through a feature table
// and joins the values with single spaces. Equal sequences yield equal
// strings, which is what makes the result usable as an aggregation key.
func featureSeq(stem string, table map[string]string) (string, bool) {
	var feats []string
	for _, seg := range Segments(stem) {
		if seg.Kind != Consonant {
			continue
		}
		if v, ok := table[seg.Symbol]; ok {
			feats = append(feats, v)
		}
	}
	if len(feats) == 0 {
		return "", false
	}
	return strings.Join(feats, " "), true
}

// VowelFeatureSeq returns the ordered feature bundles of every vowel.
func VowelFeatureSeq(stem string) (string, bool) {
	var feats []string
	for _, seg := range Segments(stem) {
		if seg.Kind != Vowel {
			continue
		}
		if v, ok := vowelFeatures[seg.Symbol]; ok {
			feats = append(feats, v)
		}
	}
	if len(feats) == 0 {
		return "", false
	}
	return strings.Join(feats, " "), true
}

// ConsFeatureSeq returns the ordered full feature bundles of every
// consonant unit, digraph-aware.
func ConsFeatureSeq(stem string) (string, bool) {
	return featureSeq(stem, consFeatures)
}

// FinalConsFeature returns the feature bundle of the last consonant unit.
func FinalConsFeature(stem string) (string, bool) {
	c, ok := FinalCons(stem)
	if !ok {
		return "", false
	}
	feat, ok := consFeatures[c]
	return feat, ok
}

// NasalitySeq returns the [+/-nasal] value sequence of the consonants.
func NasalitySeq(stem string) (string, bool) {
	return featureSeq(stem, nasality)
}

// PlaceSeq returns the place-of-articulation sequence of the consonants.
func PlaceSeq(stem string) (string, bool) {
	return featureSeq(stem, place)
}

// ConsonantalSeq returns the [+/-consonantal] value sequence.
func ConsonantalSeq(stem string) (string, bool) {
	return featureSeq(stem, consonantal)
}

// SonorantSeq returns the [+/-sonorant] value sequence.
func SonorantSeq(stem string) (string, bool) {
	return featureSeq(stem, sonorant)
}

// ContinuantSeq returns the [+/-continuant] value sequence.
func ContinuantSeq(stem string) (string, bool) {
	return featureSeq(stem, continuant)
}

// VoicingSeq returns the [+/-voiced] value sequence.
func VoicingSeq(stem string) (string, bool) {
	return featureSeq(stem, voicing)
}

// SpreadGlottisSeq returns the [spread glottis] value sequence.
func SpreadGlottisSeq(stem string) (string, bool) {
	return featureSeq(stem, spreadGlottis)
}

// ruleRegistry maps configuration rule names to extractors.
// The ordered ruleNames slice below drives listings.
var ruleRegistry = map[string]ExtractorFn{
	"final_vowel":         FinalVowel,
	"final_vowel_feature": FinalVowelFeature,
	"vowel_seq":           VowelSeq,
	"cons_seq":            ConsSeq,
	"final_cons":          FinalCons,
	"vowel_feature_seq":   VowelFeatureSeq,
	"cons_feature_seq":    ConsFeatureSeq,
	"final_cons_feature":  FinalConsFeature,
	"nasality_seq":        NasalitySeq,
	"place_seq":           PlaceSeq,
	"consonantal_seq":     ConsonantalSeq,
	"sonorant_seq":        SonorantSeq,
	"continuant_seq":      ContinuantSeq,
	"voicing_seq":         VoicingSeq,
	"spread_glottis_seq":  SpreadGlottisSeq,
	"syllable_count":      SyllableSeq,
}

var ruleNames = []string{
	"final_vowel",
	"final_vowel_feature",
	"vowel_seq",
	"cons_seq",
	"final_cons",
	"vowel_feature_seq",
	"cons_feature_seq",
	"final_cons_feature",
	"nasality_seq",
	"place_seq",
	"consonantal_seq",
	"sonorant_seq",
	"continuant_seq",
	"voicing_seq",
	"spread_glottis_seq",
	"syllable_count",
}

// Rule resolves a configuration rule name into its extractor.
func Rule(name string) (ExtractorFn, error) {
	fn, ok := ruleRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown descriptor rule '%s'", name)
	}
	return fn, nil
}

// RuleNames lists the available descriptor rules in a stable order.
func RuleNames() []string {
	ans := make([]string, len(ruleNames))
	copy(ans, ruleNames)
	return ans
}
