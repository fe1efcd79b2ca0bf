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

// Package ptcount accumulates descriptor and (descriptor, suffix)
// frequency tables and derives conditional-probability reports.
package ptcount

// DescDict is a bidirectional map between descriptor strings and ints.
// Feature-sequence descriptors repeat long bundle labels, so the
// counters key on the interned int instead of the full string.
type DescDict struct {
	counter int
	data    map[string]int
	dataRev map[int]string
}

// Add adds a descriptor to the dictionary and returns
// its numeric representation.
func (d *DescDict) Add(desc string) int {
	v, ok := d.data[desc]
	if ok {
		return v
	}
	d.counter++
	d.data[desc] = d.counter
	d.dataRev[d.counter] = desc
	return d.counter
}

// Find returns the numeric representation of a descriptor without
// adding it. The second value is false for unseen descriptors.
func (d *DescDict) Find(desc string) (int, bool) {
	v, ok := d.data[desc]
	return v, ok
}

// Get returns a descriptor based on its integer representation.
func (d *DescDict) Get(idx int) string {
	return d.dataRev[idx]
}

func (d *DescDict) Size() int {
	return len(d.data)
}

func NewDescDict() *DescDict {
	return &DescDict{
		data:    make(map[string]int),
		dataRev: make(map[int]string),
	}
}
