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

// Package codec converts query requests between their Go form and a serialized wire form.
//
// JSON is the default and matches the CosmWasm wire format. CBOR is offered for
// harnesses that already carry their fixtures in CBOR.
package codec

import (
	"github.com/blinklabs-io/cwmock/types"
)

// Codec encodes and decodes query requests
type Codec interface {
	Name() string
	EncodeRequest(types.QueryRequest) ([]byte, error)
	// DecodeRequest decodes and validates a query request
	DecodeRequest([]byte) (types.QueryRequest, error)
}

var (
	JSON Codec = jsonCodec{}
	CBOR Codec = cborCodec{}
)
