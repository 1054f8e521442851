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
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"

	"github.com/blinklabs-io/cwmock/types"
)

var (
	cachedEncMode   _cbor.EncMode
	cachedDecMode   _cbor.DecMode
	cachedModesErr  error
	cachedModesOnce sync.Once
)

// getModes returns the cached encode and decode modes, initializing them on first use
func getModes() (_cbor.EncMode, _cbor.DecMode, error) {
	cachedModesOnce.Do(func() {
		encOpts := _cbor.EncOptions{
			// Make sure that maps have ordered keys
			Sort: _cbor.SortCoreDeterministic,
		}
		cachedEncMode, cachedModesErr = encOpts.EncMode()
		if cachedModesErr != nil {
			return
		}
		decOpts := _cbor.DecOptions{
			// Unknown variants must not decode into an empty request
			ExtraReturnErrors: _cbor.ExtraDecErrorUnknownField,
			DupMapKey:         _cbor.DupMapKeyEnforcedAPF,
		}
		cachedDecMode, cachedModesErr = decOpts.DecMode()
	})
	return cachedEncMode, cachedDecMode, cachedModesErr
}

type cborCodec struct{}

func (cborCodec) Name() string {
	return "cbor"
}

func (cborCodec) EncodeRequest(req types.QueryRequest) ([]byte, error) {
	em, _, err := getModes()
	if err != nil {
		return nil, err
	}
	return em.Marshal(req)
}

func (cborCodec) DecodeRequest(data []byte) (types.QueryRequest, error) {
	var req types.QueryRequest
	_, dm, err := getModes()
	if err != nil {
		return types.QueryRequest{}, err
	}
	// Unmarshal rejects trailing bytes after the first data item
	if err := dm.Unmarshal(data, &req); err != nil {
		return types.QueryRequest{}, err
	}
	if err := req.Validate(); err != nil {
		return types.QueryRequest{}, err
	}
	return req, nil
}
