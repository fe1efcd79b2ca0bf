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

import "strings"

// SyllableMarker is repeated once per syllable nucleus to build the
// syllable-count descriptor.
const SyllableMarker = "σ"

// SyllableCount computes the number of syllable nuclei of a stem.
// Every vowel letter counts as a nucleus except that the two letters of
// a diphthong occurrence form a single nucleus, hence the subtraction.
func SyllableCount(stem string) int {
	diphthongCount := 0
	for _, d := range diphthongs {
		diphthongCount += strings.Count(stem, d)
	}
	vowelCount := 0
	for v := range vowels {
		vowelCount += strings.Count(stem, v)
	}
	return vowelCount - diphthongCount
}

// SyllableSeq is the syllable-count descriptor rule: a run of the
// syllable marker whose length equals the syllable count. Stems from
// the reduplicated-form list are excluded entirely, as are stems whose
// count comes out non-positive.
func SyllableSeq(stem string) (string, bool) {
	if IsReduplication(stem) {
		return "", false
	}
	n := SyllableCount(stem)
	if n <= 0 {
		return "", false
	}
	return strings.Repeat(SyllableMarker, n), true
}
