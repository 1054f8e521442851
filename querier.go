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

// Package cwmock provides a querier for contract tests that answers smart contract
// queries from a live node's REST (LCD) API and every other query from an in-memory
// simulator.
//
// A smart query against contract addr with message msg becomes
//
//	GET {endpoint}/cosmwasm/wasm/v1/contract/{addr}/smart/{base64(msg)}
//
// and the node's {"data": ...} answer is handed back to the caller as the raw JSON bytes
// of data, the same form a locally simulated contract would produce.
//
// Remote calls are synchronous and have no timeout, retry or cache. A failed remote call
// panics by default so that the test using the querier fails loudly; see
// WithRemoteErrorsAsSystemErrors for the alternative.
package cwmock

import (
	"encoding/json"

	"github.com/blinklabs-io/cwmock/types"
)

// QueryHandler answers decoded query requests
type QueryHandler interface {
	HandleQuery(types.QueryRequest) types.QuerierResult
}

// Querier answers serialized query requests
type Querier interface {
	RawQuery([]byte) types.QuerierResult
}

// QueryInto runs a query and decodes the JSON response into a value of type T
func QueryInto[T any](handler QueryHandler, req types.QueryRequest) (T, error) {
	var ret T
	data, err := handler.HandleQuery(req).Unwrap()
	if err != nil {
		return ret, err
	}
	if err := json.Unmarshal(data, &ret); err != nil {
		return ret, err
	}
	return ret, nil
}
