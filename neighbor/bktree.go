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

package neighbor

// DistanceFn is a metric over words. The BK-tree relies on the
// triangle inequality holding for it.
type DistanceFn func(a, b string) int

type bkNode struct {
	word     string
	children map[int]*bkNode
}

// BKTree indexes words under a discrete metric for radius queries.
// The zero value is not usable, construct it with NewBKTree.
type BKTree struct {
	dist DistanceFn
	root *bkNode
	size int
}

func NewBKTree(dist DistanceFn) *BKTree {
	return &BKTree{dist: dist}
}

// Size returns the number of indexed words.
func (t *BKTree) Size() int {
	return t.size
}

// Add inserts a word. Duplicates (distance 0 to an existing node) are
// dropped silently.
func (t *BKTree) Add(word string) {
	if t.root == nil {
		t.root = &bkNode{word: word, children: make(map[int]*bkNode)}
		t.size++
		return
	}
	node := t.root
	for {
		d := t.dist(word, node.word)
		if d == 0 {
			return
		}
		child, ok := node.children[d]
		if !ok {
			node.children[d] = &bkNode{word: word, children: make(map[int]*bkNode)}
			t.size++
			return
		}
		node = child
	}
}

// Find returns all indexed words within the given radius of query.
// The metric tree property lets the search skip any subtree whose
// edge distance differs from the query distance by more than radius.
func (t *BKTree) Find(query string, radius int) []string {
	if t.root == nil {
		return nil
	}
	var ans []string
	stack := []*bkNode{t.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		d := t.dist(query, node.word)
		if d <= radius {
			ans = append(ans, node.word)
		}
		for edge, child := range node.children {
			if edge >= d-radius && edge <= d+radius {
				stack = append(stack, child)
			}
		}
	}
	return ans
}
