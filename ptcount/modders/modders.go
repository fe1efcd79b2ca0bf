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

// Package modders provides small configurable string transformations
// applied to stems and suffix labels before counting.
package modders

import "strings"

// macrons maps long-vowel letters to their short counterparts. Some
// legacy word lists come without macrons, so the folding has to be
// available for matching against them. It is not applied by default -
// macronized and plain vowels are distinct phonemes.
var macrons = map[rune]rune{
	'ā': 'a',
	'ē': 'e',
	'ī': 'i',
	'ō': 'o',
	'ū': 'u',
}

type ToLower struct{}

func (m ToLower) Mod(s string) string {
	return strings.ToLower(s)
}

type TrimSpace struct{}

func (m TrimSpace) Mod(s string) string {
	return strings.TrimSpace(s)
}

type StripMacrons struct{}

func (m StripMacrons) Mod(s string) string {
	return strings.Map(func(r rune) rune {
		if v, ok := macrons[r]; ok {
			return v
		}
		return r
	}, s)
}

type Identity struct{}

func (m Identity) Mod(s string) string {
	return s
}
