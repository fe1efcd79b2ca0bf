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

package ptcount

import "sort"

type pairKey struct {
	desc   int
	suffix string
}

// MarginalItem is one descriptor with its marginal count.
type MarginalItem struct {
	Descriptor string
	Count      int
}

// JointItem is one (descriptor, suffix) pair with its joint count.
type JointItem struct {
	Descriptor string
	Suffix     string
	Count      int
}

// CondCounter keeps the two frequency tables of one statistic: the
// marginal counts per descriptor and the joint counts per
// (descriptor, suffix) pair. Both are incremented together in Incr, so
// for every observed descriptor the marginal count equals the sum of
// its joint counts.
type CondCounter struct {
	dict     *DescDict
	marginal map[int]int
	joint    map[pairKey]int
}

func NewCondCounter() *CondCounter {
	return &CondCounter{
		dict:     NewDescDict(),
		marginal: make(map[int]int),
		joint:    make(map[pairKey]int),
	}
}

// Incr counts one corpus row whose stem produced the given descriptor.
func (c *CondCounter) Incr(desc, suffix string) {
	idx := c.dict.Add(desc)
	c.marginal[idx]++
	c.joint[pairKey{desc: idx, suffix: suffix}]++
}

// Marginal returns the total occurrences of a descriptor.
func (c *CondCounter) Marginal(desc string) int {
	idx, ok := c.dict.Find(desc)
	if !ok {
		return 0
	}
	return c.marginal[idx]
}

// Joint returns the occurrences of a (descriptor, suffix) pair.
func (c *CondCounter) Joint(desc, suffix string) int {
	idx, ok := c.dict.Find(desc)
	if !ok {
		return 0
	}
	return c.joint[pairKey{desc: idx, suffix: suffix}]
}

// NumDescriptors returns the number of distinct descriptors observed.
func (c *CondCounter) NumDescriptors() int {
	return c.dict.Size()
}

// NumPairs returns the number of distinct (descriptor, suffix) pairs.
func (c *CondCounter) NumPairs() int {
	return len(c.joint)
}

// ForEachJoint calls fn on every (descriptor, suffix) pair in
// unspecified order.
func (c *CondCounter) ForEachJoint(fn func(item JointItem)) {
	for k, cnt := range c.joint {
		fn(JointItem{
			Descriptor: c.dict.Get(k.desc),
			Suffix:     k.suffix,
			Count:      cnt,
		})
	}
}

// MostCommon returns the marginal table sorted by descending count.
// The count tie-break by descriptor is not part of any contract; it
// just keeps the output stable between runs.
func (c *CondCounter) MostCommon() []MarginalItem {
	ans := make([]MarginalItem, 0, len(c.marginal))
	for idx, cnt := range c.marginal {
		ans = append(ans, MarginalItem{Descriptor: c.dict.Get(idx), Count: cnt})
	}
	sort.Slice(ans, func(i, j int) bool {
		if ans[i].Count != ans[j].Count {
			return ans[i].Count > ans[j].Count
		}
		return ans[i].Descriptor < ans[j].Descriptor
	})
	return ans
}

// MostCommonJoint returns the joint table sorted by descending count.
func (c *CondCounter) MostCommonJoint() []JointItem {
	ans := make([]JointItem, 0, len(c.joint))
	c.ForEachJoint(func(item JointItem) {
		ans = append(ans, item)
	})
	sort.Slice(ans, func(i, j int) bool {
		if ans[i].Count != ans[j].Count {
			return ans[i].Count > ans[j].Count
		}
		if ans[i].Descriptor != ans[j].Descriptor {
			return ans[i].Descriptor < ans[j].Descriptor
		}
		return ans[i].Suffix < ans[j].Suffix
	})
	return ans
}
