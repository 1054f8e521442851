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

package simulator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blinklabs-io/cwmock/simulator"
)

func TestMemoryStorage(t *testing.T) {
	s := simulator.NewMemoryStorage()
	assert.Nil(t, s.Get([]byte("foo")))
	value := []byte("bar")
	s.Set([]byte("foo"), value)
	value[0] = 'c'
	assert.Equal(t, []byte("bar"), s.Get([]byte("foo")))
	got := s.Get([]byte("foo"))
	got[0] = 'z'
	assert.Equal(t, []byte("bar"), s.Get([]byte("foo")))
	assert.Equal(t, 1, s.Len())
	s.Remove([]byte("foo"))
	assert.Nil(t, s.Get([]byte("foo")))
	assert.Equal(t, 0, s.Len())
}

func TestAddrValidate(t *testing.T) {
	api := simulator.MockAPI{}
	assert.NoError(t, api.AddrValidate("acct1"))
	assert.ErrorIs(t, api.AddrValidate("ab"), simulator.ErrAddressTooShort)
	assert.ErrorIs(
		t,
		api.AddrValidate(strings.Repeat("a", 91)),
		simulator.ErrAddressTooLong,
	)
	assert.ErrorIs(t, api.AddrValidate("Acct1"), simulator.ErrAddressNotNormalized)
}
