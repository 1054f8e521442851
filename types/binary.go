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

package types

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidBase64 is returned when a Binary cannot be decoded from its base64 form
var ErrInvalidBase64 = errors.New("invalid base64")

// Binary is an opaque byte payload. Its textual form is standard padded base64
type Binary []byte

// BinaryFromBase64 decodes standard base64 with or without padding. Padding, when
// present, must be canonical
func BinaryFromBase64(encoded string) (Binary, error) {
	enc := base64.RawStdEncoding
	if len(encoded)%4 == 0 {
		enc = base64.StdEncoding
	}
	decoded, err := enc.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBase64, err)
	}
	return Binary(decoded), nil
}

// String returns the payload as standard padded base64
func (b Binary) String() string {
	return base64.StdEncoding.EncodeToString(b)
}

func (b Binary) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *Binary) UnmarshalJSON(data []byte) error {
	var tmp string
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	decoded, err := BinaryFromBase64(tmp)
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}
