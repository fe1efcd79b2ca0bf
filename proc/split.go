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
	"fmt"
	"regexp"
)

// inflectedPattern matches a hyphen-marked inflected form
// <lemma>-<suffix>. \p{L} instead of \w keeps macronized vowels
// inside the word-character runs.
var inflectedPattern = regexp.MustCompile(`^([\p{L}\p{N}_]+)-([\p{L}\p{N}_]+)`)

// SplitInflected splits an inflected form of shape <lemma>-<suffix> on
// the first hyphen found inside a word-character run. Forms that do
// not produce a lemma are an error.
func SplitInflected(form string) (string, string, error) {
	groups := inflectedPattern.FindStringSubmatch(form)
	if groups == nil {
		return "", "", fmt.Errorf("cannot split inflected form '%s'", form)
	}
	return groups[1], groups[2], nil
}
