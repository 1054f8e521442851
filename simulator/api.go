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

package simulator

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAddressTooShort      = errors.New("human address too short")
	ErrAddressTooLong       = errors.New("human address too long")
	ErrAddressNotNormalized = errors.New("address not normalized")
)

const (
	minAddressLength = 3
	maxAddressLength = 90
)

// MockAPI performs the address checks a chain would apply to human-readable addresses
type MockAPI struct{}

// AddrValidate checks that an address has a plausible length and is in lowercase form
func (MockAPI) AddrValidate(addr string) error {
	if len(addr) < minAddressLength {
		return fmt.Errorf("%w: %q", ErrAddressTooShort, addr)
	}
	if len(addr) > maxAddressLength {
		return fmt.Errorf("%w: %q", ErrAddressTooLong, addr)
	}
	if strings.ToLower(addr) != addr {
		return fmt.Errorf("%w: %q", ErrAddressNotNormalized, addr)
	}
	return nil
}
