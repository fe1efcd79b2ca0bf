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

// SegmentKind classifies a scanned unit of a stem.
type SegmentKind int

const (
	Vowel SegmentKind = iota
	Consonant
)

// Segment is one phonological unit of a stem - a vowel, a single-letter
// consonant or one of the <ng>, <wh> digraphs.
type Segment struct {
	Symbol string
	Kind   SegmentKind
}

// segScanner walks a stem rune by rune with a one-rune lookahead so
// that digraphs are consumed as single units. Digraph recognition has
// priority over single-character classification; scanning <ng> as <n>
// followed by <g> must never happen.
type segScanner struct {
	runes []rune
	pos   int
}

// scan returns the next classified segment. ok is false when the input
// is exhausted. Runes matching neither inventory (punctuation etc.) are
// skipped and contribute nothing.
func (sc *segScanner) scan() (Segment, bool) {
	for sc.pos < len(sc.runes) {
		r := sc.runes[sc.pos]
		if sc.pos+1 < len(sc.runes) {
			next := sc.runes[sc.pos+1]
			if (r == 'n' && next == 'g') || (r == 'w' && next == 'h') {
				sc.pos += 2
				return Segment{Symbol: string([]rune{r, next}), Kind: Consonant}, true
			}
		}
		sc.pos++
		sym := string(r)
		if vowels[sym] {
			return Segment{Symbol: sym, Kind: Vowel}, true
		}
		if consonants[sym] {
			return Segment{Symbol: sym, Kind: Consonant}, true
		}
	}
	return Segment{}, false
}

// Segments scans a whole stem into its classified units.
func Segments(stem string) []Segment {
	sc := segScanner{runes: []rune(stem)}
	var ans []Segment
	for {
		seg, ok := sc.scan()
		if !ok {
			break
		}
		ans = append(ans, seg)
	}
	return ans
}
