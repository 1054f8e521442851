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

// Package simulator provides in-memory stand-ins for the ledger environment a contract
// runs against: a bank-backed querier, key/value storage and address handling.
package simulator

import (
	"encoding/json"
	"fmt"
	"sync"

	"cosmossdk.io/math"
	"github.com/jinzhu/copier"

	"github.com/blinklabs-io/cwmock/codec"
	"github.com/blinklabs-io/cwmock/types"
)

// AccountBalance is the set of coins held by a single address
type AccountBalance struct {
	Address string
	Coins   []types.Coin
}

// WasmHandlerFunc answers wasm queries on behalf of the simulated contracts
type WasmHandlerFunc func(*types.WasmQuery) types.QuerierResult

// CustomHandlerFunc answers chain-specific custom queries
type CustomHandlerFunc func(json.RawMessage) types.QuerierResult

// MockQuerier answers queries from in-memory state. Bank queries are served from the
// account balances, while wasm and custom queries go to overridable handlers
type MockQuerier struct {
	mutex         sync.RWMutex
	balances      map[string][]types.Coin
	wasmHandler   WasmHandlerFunc
	customHandler CustomHandlerFunc
}

// NewMockQuerier returns a MockQuerier seeded with the specified balances. The seeds are
// deep-copied, so later changes to the caller's slices are not visible to the querier
func NewMockQuerier(balances ...AccountBalance) *MockQuerier {
	m := &MockQuerier{
		balances:      make(map[string][]types.Coin),
		wasmHandler:   defaultWasmHandler,
		customHandler: defaultCustomHandler,
	}
	for _, balance := range copyBalances(balances) {
		coins := balance.Coins
		if coins == nil {
			coins = []types.Coin{}
		}
		m.balances[balance.Address] = coins
	}
	return m
}

// UpdateWasmHandler replaces the handler used for wasm queries
func (m *MockQuerier) UpdateWasmHandler(handler WasmHandlerFunc) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.wasmHandler = handler
}

// UpdateCustomHandler replaces the handler used for custom queries
func (m *MockQuerier) UpdateCustomHandler(handler CustomHandlerFunc) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.customHandler = handler
}

// UpdateBalance sets the coins held by an address and returns the previous coins, if any
func (m *MockQuerier) UpdateBalance(address string, coins []types.Coin) []types.Coin {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	prev := m.balances[address]
	m.balances[address] = copyCoins(coins)
	return prev
}

// RawQuery decodes a JSON query request and answers it
func (m *MockQuerier) RawQuery(data []byte) types.QuerierResult {
	req, err := codec.JSON.DecodeRequest(data)
	if err != nil {
		return types.NewQuerierResultSystemErr(
			types.NewInvalidRequestError(err, data),
		)
	}
	return m.HandleQuery(req)
}

// HandleQuery answers a decoded query request
func (m *MockQuerier) HandleQuery(req types.QueryRequest) types.QuerierResult {
	switch {
	case req.Bank != nil:
		return m.handleBank(req.Bank)
	case req.Wasm != nil:
		m.mutex.RLock()
		handler := m.wasmHandler
		m.mutex.RUnlock()
		return handler(req.Wasm)
	case req.Custom != nil:
		m.mutex.RLock()
		handler := m.customHandler
		m.mutex.RUnlock()
		return handler(req.Custom)
	}
	return unsupported(req.Kind())
}

func (m *MockQuerier) handleBank(query *types.BankQuery) types.QuerierResult {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	switch {
	case query.Balance != nil:
		amount := types.Coin{
			Denom:  query.Balance.Denom,
			Amount: "0",
		}
		for _, coin := range m.balances[query.Balance.Address] {
			if coin.Denom == query.Balance.Denom {
				amount = coin
				break
			}
		}
		return jsonResult(types.BalanceResponse{Amount: amount})
	case query.AllBalances != nil:
		return jsonResult(
			types.AllBalancesResponse{
				Amount: copyCoins(m.balances[query.AllBalances.Address]),
			},
		)
	case query.Supply != nil:
		total := math.ZeroInt()
		for address, coins := range m.balances {
			for _, coin := range coins {
				if coin.Denom != query.Supply.Denom {
					continue
				}
				amount, ok := coin.AmountInt()
				if !ok {
					return types.NewQuerierResultContractErr(
						fmt.Sprintf(
							"invalid amount %q for denom %s held by %s",
							coin.Amount,
							coin.Denom,
							address,
						),
					)
				}
				total = total.Add(amount)
			}
		}
		return jsonResult(
			types.SupplyResponse{
				Amount: types.NewCoin(total, query.Supply.Denom),
			},
		)
	}
	return unsupported("bank")
}

func defaultWasmHandler(query *types.WasmQuery) types.QuerierResult {
	return types.NewQuerierResultSystemErr(
		&types.SystemError{
			NoSuchContract: &types.NoSuchContract{
				Addr: query.ContractAddr(),
			},
		},
	)
}

func defaultCustomHandler(json.RawMessage) types.QuerierResult {
	return unsupported("custom")
}

func unsupported(kind string) types.QuerierResult {
	return types.NewQuerierResultSystemErr(
		&types.SystemError{
			UnsupportedRequest: &types.UnsupportedRequest{
				Kind: kind,
			},
		},
	)
}

func jsonResult(v any) types.QuerierResult {
	data, err := json.Marshal(v)
	if err != nil {
		return types.NewQuerierResultSystemErr(
			&types.SystemError{
				InvalidResponse: &types.InvalidResponse{
					Err: fmt.Sprintf("serializing query response: %s", err),
				},
			},
		)
	}
	return types.NewQuerierResultOk(data)
}

// copyBalances deep-copies the seed accounts, including each account's coin slice
func copyBalances(balances []AccountBalance) []AccountBalance {
	if len(balances) == 0 {
		return nil
	}
	var ret []AccountBalance
	// Source and destination share a type, so a mismatch is the only possible failure
	if err := copier.CopyWithOption(&ret, balances, copier.Option{DeepCopy: true}); err != nil {
		panic(fmt.Sprintf("copying seed balances: %s", err))
	}
	return ret
}

// copyCoins always returns a non-nil slice so that empty balances serialize as []
func copyCoins(coins []types.Coin) []types.Coin {
	return append(make([]types.Coin, 0, len(coins)), coins...)
}
