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

package proc

import (
	"strings"

	"github.com/mriling/suffixtab/phon"
)

// MatchResult is the typed outcome of matching an inflected form
// against the ordered list of suffix attachment rules.
type MatchResult int

const (
	// Matched means some suffix rule accounts for the inflected form.
	Matched MatchResult = iota

	// CompositionFailure means the pair contains symbols outside the
	// Māori alphabet, so no rule could even be applied.
	CompositionFailure

	// NoRuleMatched means the form is well-formed but no known suffix
	// attachment produces it from the lemma.
	NoRuleMatched
)

// Outcome carries the match result and, for Matched, the suffix label.
type Outcome struct {
	Result MatchResult
	Suffix string
}

// SuffixRule models the attachment of one passive suffix:
// lemma + suffix = inflected form, unchanged stem.
type SuffixRule struct {
	Suffix string
}

// Matches tests the rule against a (lemma, inflected form) pair.
func (r SuffixRule) Matches(lemma, inflected string) bool {
	return strings.HasPrefix(inflected, lemma) &&
		inflected == lemma+r.Suffix
}

// attachmentRules holds one rule per known passive suffix, in the
// fixed order the rules are tried.
var attachmentRules = func() []SuffixRule {
	ans := make([]SuffixRule, 0, 12)
	for _, s := range phon.Suffixes() {
		ans = append(ans, SuffixRule{Suffix: s})
	}
	return ans
}()

// inAlphabet reports whether every rune of s belongs to the Māori
// alphabet.
func inAlphabet(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		sym := string(r)
		if !phon.IsVowel(sym) && !phon.IsConsonant(sym) {
			return false
		}
	}
	return true
}

// MatchSuffix evaluates the ordered candidate rules until the first
// one matches. There is no mutable found-flag fallthrough: the typed
// outcome distinguishes a match, a composition failure (symbols the
// rules cannot transduce) and a well-formed pair no rule covers.
func MatchSuffix(lemma, inflected string) Outcome {
	if !inAlphabet(lemma) || !inAlphabet(inflected) {
		return Outcome{Result: CompositionFailure}
	}
	for _, rule := range attachmentRules {
		if rule.Matches(lemma, inflected) {
			return Outcome{Result: Matched, Suffix: rule.Suffix}
		}
	}
	return Outcome{Result: NoRuleMatched}
}
