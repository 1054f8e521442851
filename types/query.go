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
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidQueryRequest is returned when a query request does not hold exactly one variant
// or is missing a required field
var ErrInvalidQueryRequest = errors.New("invalid query request")

// QueryRequest is a union of all supported query kinds. Exactly one field must be set
type QueryRequest struct {
	Bank   *BankQuery      `json:"bank,omitempty"   cbor:"bank,omitempty"`
	Wasm   *WasmQuery      `json:"wasm,omitempty"   cbor:"wasm,omitempty"`
	Custom json.RawMessage `json:"custom,omitempty" cbor:"custom,omitempty"`
}

// NewSmartQuery builds a request for a smart query against the specified contract
func NewSmartQuery(contractAddr string, msg Binary) QueryRequest {
	return QueryRequest{
		Wasm: &WasmQuery{
			Smart: &SmartQuery{
				ContractAddr: contractAddr,
				Msg:          msg,
			},
		},
	}
}

// NewBalanceQuery builds a request for the balance of a single denom held by an address
func NewBalanceQuery(address string, denom string) QueryRequest {
	return QueryRequest{
		Bank: &BankQuery{
			Balance: &BalanceQuery{
				Address: address,
				Denom:   denom,
			},
		},
	}
}

// Kind returns a short name for the variant held by the request
func (q QueryRequest) Kind() string {
	switch {
	case q.Bank != nil:
		return "bank"
	case q.Wasm != nil:
		return "wasm"
	case q.Custom != nil:
		return "custom"
	}
	return "unknown"
}

// Validate checks that exactly one variant is set at each level of the union
func (q QueryRequest) Validate() error {
	count := 0
	if q.Bank != nil {
		count++
		if err := q.Bank.validate(); err != nil {
			return err
		}
	}
	if q.Wasm != nil {
		count++
		if err := q.Wasm.validate(); err != nil {
			return err
		}
	}
	if q.Custom != nil {
		count++
	}
	if count != 1 {
		return fmt.Errorf(
			"%w: expected exactly one query kind, found %d",
			ErrInvalidQueryRequest,
			count,
		)
	}
	return nil
}

type BankQuery struct {
	Balance     *BalanceQuery     `json:"balance,omitempty"      cbor:"balance,omitempty"`
	AllBalances *AllBalancesQuery `json:"all_balances,omitempty" cbor:"all_balances,omitempty"`
	Supply      *SupplyQuery      `json:"supply,omitempty"       cbor:"supply,omitempty"`
}

func (b *BankQuery) validate() error {
	err := exactlyOne(
		"bank",
		b.Balance != nil,
		b.AllBalances != nil,
		b.Supply != nil,
	)
	if err != nil {
		return err
	}
	switch {
	case b.Balance != nil:
		if err := requireField("balance", "address", b.Balance.Address); err != nil {
			return err
		}
		return requireField("balance", "denom", b.Balance.Denom)
	case b.AllBalances != nil:
		return requireField("all_balances", "address", b.AllBalances.Address)
	default:
		return requireField("supply", "denom", b.Supply.Denom)
	}
}

type BalanceQuery struct {
	Address string `json:"address" cbor:"address"`
	Denom   string `json:"denom"   cbor:"denom"`
}

type AllBalancesQuery struct {
	Address string `json:"address" cbor:"address"`
}

type SupplyQuery struct {
	Denom string `json:"denom" cbor:"denom"`
}

type WasmQuery struct {
	Smart        *SmartQuery        `json:"smart,omitempty"         cbor:"smart,omitempty"`
	Raw          *RawQuery          `json:"raw,omitempty"           cbor:"raw,omitempty"`
	ContractInfo *ContractInfoQuery `json:"contract_info,omitempty" cbor:"contract_info,omitempty"`
}

// validate does not check Msg or Key, since an empty payload is a valid one
func (w *WasmQuery) validate() error {
	err := exactlyOne(
		"wasm",
		w.Smart != nil,
		w.Raw != nil,
		w.ContractInfo != nil,
	)
	if err != nil {
		return err
	}
	return requireField("wasm", "contract_addr", w.ContractAddr())
}

// ContractAddr returns the target contract of whichever variant is set
func (w *WasmQuery) ContractAddr() string {
	switch {
	case w.Smart != nil:
		return w.Smart.ContractAddr
	case w.Raw != nil:
		return w.Raw.ContractAddr
	case w.ContractInfo != nil:
		return w.ContractInfo.ContractAddr
	}
	return ""
}

// SmartQuery calls into the query entry point of a contract
type SmartQuery struct {
	ContractAddr string `json:"contract_addr" cbor:"contract_addr"`
	// Msg is the serialized query message, usually JSON
	Msg Binary `json:"msg" cbor:"msg"`
}

// RawQuery reads a single key from a contract's storage
type RawQuery struct {
	ContractAddr string `json:"contract_addr" cbor:"contract_addr"`
	Key          Binary `json:"key"           cbor:"key"`
}

type ContractInfoQuery struct {
	ContractAddr string `json:"contract_addr" cbor:"contract_addr"`
}

type BalanceResponse struct {
	Amount Coin `json:"amount"`
}

type AllBalancesResponse struct {
	Amount []Coin `json:"amount"`
}

type SupplyResponse struct {
	Amount Coin `json:"amount"`
}

func exactlyOne(kind string, variants ...bool) error {
	count := 0
	for _, set := range variants {
		if set {
			count++
		}
	}
	if count != 1 {
		return fmt.Errorf(
			"%w: expected exactly one %s query variant, found %d",
			ErrInvalidQueryRequest,
			kind,
			count,
		)
	}
	return nil
}

func requireField(query string, field string, value string) error {
	if value == "" {
		return fmt.Errorf(
			"%w: %s query is missing %s",
			ErrInvalidQueryRequest,
			query,
			field,
		)
	}
	return nil
}
