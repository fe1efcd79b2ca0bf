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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitInflected(t *testing.T) {
	lemma, suffix, err := SplitInflected("hopu-kina")
	assert.NoError(t, err)
	assert.Equal(t, "hopu", lemma)
	assert.Equal(t, "kina", suffix)
}

func TestSplitInflectedMacronized(t *testing.T) {
	lemma, suffix, err := SplitInflected("hī-a")
	assert.NoError(t, err)
	assert.Equal(t, "hī", lemma)
	assert.Equal(t, "a", suffix)
}

func TestSplitInflectedFirstHyphenWins(t *testing.T) {
	lemma, suffix, err := SplitInflected("whaka-rite-a")
	assert.NoError(t, err)
	assert.Equal(t, "whaka", lemma)
	assert.Equal(t, "rite", suffix)
}

func TestSplitInflectedNoHyphen(t *testing.T) {
	_, _, err := SplitInflected("hopukina")
	assert.Error(t, err)
}

func TestSplitInflectedLeadingHyphen(t *testing.T) {
	_, _, err := SplitInflected("-tia")
	assert.Error(t, err)
}
