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

package test

import (
	"encoding/json"
	"fmt"

	"github.com/blinklabs-io/cwmock/codec"
	"github.com/blinklabs-io/cwmock/types"
)

// MustMarshalJSON is a helper function for tests that encodes a value as JSON. It doesn't return
// an error value, which makes it usable inline.
func MustMarshalJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("error encoding JSON: %s", err))
	}
	return data
}

// MustEncodeRequest is a helper function for tests that serializes a query request with the
// specified codec. It doesn't return an error value, which makes it usable inline.
func MustEncodeRequest(c codec.Codec, req types.QueryRequest) []byte {
	data, err := c.EncodeRequest(req)
	if err != nil {
		panic(fmt.Sprintf("error encoding %s query request: %s", c.Name(), err))
	}
	return data
}
