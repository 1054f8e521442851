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

package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/blinklabs-io/cwmock/types"
)

type jsonCodec struct{}

func (jsonCodec) Name() string {
	return "json"
}

func (jsonCodec) EncodeRequest(req types.QueryRequest) ([]byte, error) {
	return json.Marshal(req)
}

func (jsonCodec) DecodeRequest(data []byte) (types.QueryRequest, error) {
	var req types.QueryRequest
	dec := json.NewDecoder(bytes.NewReader(data))
	// Unknown variants must not decode into an empty request
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return types.QueryRequest{}, err
	}
	// Only a single JSON value is allowed
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return types.QueryRequest{}, errors.New("unexpected data after query request")
	}
	if err := req.Validate(); err != nil {
		return types.QueryRequest{}, err
	}
	return req, nil
}
