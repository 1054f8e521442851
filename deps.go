// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cwmock

import (
	"github.com/blinklabs-io/cwmock/simulator"
)

// Deps bundles the environment handed to contract code under test
type Deps struct {
	Storage *simulator.MemoryStorage
	API     simulator.MockAPI
	Querier *HTTPQuerier
}

// NewDeps returns empty storage, a mock API and an HTTPQuerier for the specified endpoint
func NewDeps(endpoint string, opts ...OptionFunc) *Deps {
	return &Deps{
		Storage: simulator.NewMemoryStorage(),
		API:     simulator.MockAPI{},
		Querier: New(endpoint, opts...),
	}
}
