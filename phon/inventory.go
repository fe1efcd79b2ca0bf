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

// Package phon provides the Māori phoneme inventories, the phonological
// feature tables and the descriptor extraction rules used to aggregate
// passive-suffix statistics. The alphabet follows Biggs 2013, the sound
// features follow Harlow 1996/2007.
package phon

import "github.com/czcorpus/cnc-gokit/collections"

// IrregularLabel marks inflected forms no passive-suffix rule
// accounts for.
const IrregularLabel = "<Irregular>"

// vowels contains the five short and five long (macronized) vowels.
var vowels = map[string]bool{
	"a": true, "e": true, "i": true, "o": true, "u": true,
	"ā": true, "ē": true, "ī": true, "ō": true, "ū": true,
}

// consonants contains the single-letter consonant symbols. The letters
// of the <ng> and <wh> digraphs are listed individually but digraphs
// take precedence during scanning (see Segments).
var consonants = map[string]bool{
	"h": true, "k": true, "m": true, "n": true, "g": true,
	"p": true, "r": true, "t": true, "w": true,
}

// diphthongs are used for syllable counting only.
var diphthongs = []string{
	"ae", "āe", "ai", "āi", "ao", "āo", "au", "āu", "ou", "ōu",
	"ei", "ie", "eo", "eu", "ea", "ia", "oa", "ua", "oi", "oe",
	"iu", "io",
}

// suffixList is the closed set of passive-suffix labels, in the order
// the attachment rules are tried.
var suffixList = []string{
	"tia", "a", "hia", "ia", "ina", "kia", "mia", "na", "nga", "ngia",
	"ria", "kina",
}

var suffixSet = collections.NewSet(suffixList...)

// vowelFeatures maps each vowel to its feature bundle.
var vowelFeatures = map[string]string{
	"a": "[low, back, -round, short]",
	"ā": "[low, back, -round, long]",
	"e": "[mid, front, -round, short]",
	"ē": "[mid, front, -round, long]",
	"i": "[high, front, -round, short]",
	"ī": "[high, front, -round, long]",
	"o": "[mid, back, +round, short]",
	"ō": "[mid, back, +round, long]",
	"u": "[high, central, +round, short]",
	"ū": "[high, central, +round, long]",
}

// consFeatures maps each consonant unit (digraphs included) to its
// full feature bundle.
var consFeatures = map[string]string{
	"h":  "[-cons, -son, -nas, dors, +cont, +SG, -voi]",
	"k":  "[+cons, -son, -nas, dors, -cont, -SG, -voi]",
	"m":  "[+cons, +son, +nas, lab, -cont, -SG, +voi]",
	"n":  "[+cons, +son, +nas, cor, -cont, -SG, +voi]",
	"ng": "[+cons, +son, +nas, dors, -cont, -SG, +voi]",
	"p":  "[+cons, -son, -nas, lab, -cont, -SG, -voi]",
	"r":  "[+cons, +son, -nas, cor, +cont, -SG, +voi]",
	"t":  "[+cons, -son, -nas, cor, -cont, -SG, -voi]",
	"w":  "[-cons, +son, -nas, lab, +cont, -SG, +voi]",
	"wh": "[+cons, -son, -nas, lab, +cont, -SG, -voi]",
}

// The single-axis tables below repeat the respective column of
// consFeatures so each axis can be counted on its own.

var nasality = map[string]string{
	"h": "-nas", "k": "-nas", "m": "+nas", "n": "+nas", "ng": "+nas",
	"p": "-nas", "r": "-nas", "t": "-nas", "w": "-nas", "wh": "-nas",
}

// place of articulation; [h] is [+high] (Kearns 1990) and all [+high]
// are dorsal.
var place = map[string]string{
	"h": "dors", "k": "dors", "m": "lab", "n": "cor", "ng": "dors",
	"p": "lab", "r": "cor", "t": "cor", "w": "lab", "wh": "lab",
}

var consonantal = map[string]string{
	"h": "-cons", "k": "+cons", "m": "+cons", "n": "+cons", "ng": "+cons",
	"p": "+cons", "r": "+cons", "t": "+cons", "w": "-cons", "wh": "+cons",
}

// r is a flap, hence sonorant (Harlow 2007).
var sonorant = map[string]string{
	"h": "-son", "k": "-son", "m": "+son", "n": "+son", "ng": "+son",
	"p": "-son", "r": "+son", "t": "-son", "w": "+son", "wh": "-son",
}

var continuant = map[string]string{
	"h": "+cont", "k": "-cont", "m": "-cont", "n": "-cont", "ng": "-cont",
	"p": "-cont", "r": "+cont", "t": "-cont", "w": "+cont", "wh": "+cont",
}

var voicing = map[string]string{
	"h": "-voi", "k": "-voi", "m": "+voi", "n": "+voi", "ng": "+voi",
	"p": "-voi", "r": "+voi", "t": "-voi", "w": "+voi", "wh": "-voi",
}

var spreadGlottis = map[string]string{
	"h": "+SG", "k": "-SG", "m": "-SG", "n": "-SG", "ng": "-SG",
	"p": "-SG", "r": "-SG", "t": "-SG", "w": "-SG", "wh": "-SG",
}

// IsVowel tests a symbol against the ten-vowel inventory.
func IsVowel(sym string) bool {
	return vowels[sym]
}

// IsConsonant tests a symbol against the consonant inventory
// (digraphs included).
func IsConsonant(sym string) bool {
	return consonants[sym] || sym == "ng" || sym == "wh"
}

// KnownSuffix tests whether s is one of the twelve passive-suffix labels.
func KnownSuffix(s string) bool {
	return suffixSet.Contains(s)
}

// Suffixes returns the passive-suffix labels in rule order.
func Suffixes() []string {
	ans := make([]string, len(suffixList))
	copy(ans, suffixList)
	return ans
}

// VowelFeatures returns the feature bundle of a vowel symbol.
func VowelFeatures(sym string) (string, bool) {
	v, ok := vowelFeatures[sym]
	return v, ok
}

// ConsFeatures returns the full feature bundle of a consonant unit.
func ConsFeatures(sym string) (string, bool) {
	v, ok := consFeatures[sym]
	return v, ok
}
