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

package modders

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Modder represents a type which is able
// to modify a string (e.g. to fold its case)
type Modder interface {
	Mod(s string) string
}

type ModderChain struct {
	fn []Modder
}

func NewModderChain(fn []Modder) *ModderChain {
	return &ModderChain{fn: fn}
}

func (m *ModderChain) Mod(s string) string {
	ans := s
	for _, mod := range m.fn {
		ans = mod.Mod(ans)
	}
	return ans
}

// ModderFactory resolves a configured normalizer name.
func ModderFactory(name string) (Modder, error) {
	switch name {
	case "toLower":
		return ToLower{}, nil
	case "trimSpace":
		return TrimSpace{}, nil
	case "stripMacrons":
		return StripMacrons{}, nil
	case "":
		return Identity{}, nil
	}
	return nil, fmt.Errorf("unknown modder function %s", name)
}

// ChainFromNames builds a chain out of configured normalizer names,
// skipping (and logging) unknown ones.
func ChainFromNames(names []string) *ModderChain {
	fns := make([]Modder, 0, len(names))
	for _, name := range names {
		fn, err := ModderFactory(name)
		if err != nil {
			log.Warn().Str("modder", name).Msg("skipping unknown modder")
			continue
		}
		fns = append(fns, fn)
	}
	return NewModderChain(fns)
}
