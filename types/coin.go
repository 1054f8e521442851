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
	"cosmossdk.io/math"
)

// Coin is an amount of a single denom. The amount is a base-10 integer string
type Coin struct {
	Denom  string `json:"denom"  cbor:"denom"`
	Amount string `json:"amount" cbor:"amount"`
}

// NewCoin returns a Coin with the specified amount
func NewCoin(amount math.Int, denom string) Coin {
	return Coin{
		Denom:  denom,
		Amount: amount.String(),
	}
}

// AmountInt parses the coin amount. An empty amount is treated as zero
func (c Coin) AmountInt() (math.Int, bool) {
	if c.Amount == "" {
		return math.ZeroInt(), true
	}
	return math.NewIntFromString(c.Amount)
}

func (c Coin) String() string {
	return c.Amount + c.Denom
}
