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
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/cwmock/simulator"
	"github.com/blinklabs-io/cwmock/types"
)

func newTestQuerier() *simulator.MockQuerier {
	return simulator.NewMockQuerier(
		simulator.AccountBalance{
			Address: "acct1",
			Coins: []types.Coin{
				{Denom: "token", Amount: "100"},
				{Denom: "uluna", Amount: "7"},
			},
		},
		simulator.AccountBalance{
			Address: "acct2",
			Coins: []types.Coin{
				{Denom: "token", Amount: "25"},
			},
		},
	)
}

func unwrapInto(t *testing.T, result types.QuerierResult, dest any) {
	t.Helper()
	data, err := result.Unwrap()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, dest))
}

func allBalancesQuery(address string) types.QueryRequest {
	return types.QueryRequest{
		Bank: &types.BankQuery{
			AllBalances: &types.AllBalancesQuery{Address: address},
		},
	}
}

func TestBalanceQuery(t *testing.T) {
	q := newTestQuerier()
	var resp types.BalanceResponse
	unwrapInto(t, q.HandleQuery(types.NewBalanceQuery("acct1", "token")), &resp)
	assert.Equal(t, types.Coin{Denom: "token", Amount: "100"}, resp.Amount)
}

func TestBalanceQueryMissing(t *testing.T) {
	q := newTestQuerier()
	for _, req := range []types.QueryRequest{
		types.NewBalanceQuery("acct1", "missing"),
		types.NewBalanceQuery("nobody", "token"),
	} {
		var resp types.BalanceResponse
		unwrapInto(t, q.HandleQuery(req), &resp)
		assert.Equal(t, "0", resp.Amount.Amount)
		assert.Equal(t, req.Bank.Balance.Denom, resp.Amount.Denom)
	}
}

func TestAllBalancesQuery(t *testing.T) {
	q := newTestQuerier()
	var resp types.AllBalancesResponse
	unwrapInto(
		t,
		q.HandleQuery(
			types.QueryRequest{
				Bank: &types.BankQuery{
					AllBalances: &types.AllBalancesQuery{Address: "acct1"},
				},
			},
		),
		&resp,
	)
	assert.Equal(
		t,
		[]types.Coin{
			{Denom: "token", Amount: "100"},
			{Denom: "uluna", Amount: "7"},
		},
		resp.Amount,
	)
	// Unknown accounts serialize as an empty list rather than null
	data, err := q.HandleQuery(
		types.QueryRequest{
			Bank: &types.BankQuery{
				AllBalances: &types.AllBalancesQuery{Address: "nobody"},
			},
		},
	).Unwrap()
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":[]}`, string(data))
}

func TestSupplyQuery(t *testing.T) {
	q := newTestQuerier()
	var resp types.SupplyResponse
	unwrapInto(
		t,
		q.HandleQuery(
			types.QueryRequest{
				Bank: &types.BankQuery{
					Supply: &types.SupplyQuery{Denom: "token"},
				},
			},
		),
		&resp,
	)
	assert.Equal(t, types.Coin{Denom: "token", Amount: "125"}, resp.Amount)
}

func TestSupplyQueryInvalidAmount(t *testing.T) {
	q := simulator.NewMockQuerier(
		simulator.AccountBalance{
			Address: "acct1",
			Coins:   []types.Coin{{Denom: "token", Amount: "lots"}},
		},
	)
	result := q.HandleQuery(
		types.QueryRequest{
			Bank: &types.BankQuery{
				Supply: &types.SupplyQuery{Denom: "token"},
			},
		},
	)
	require.NotNil(t, result.Ok)
	assert.True(t, result.Ok.IsErr())
}

func TestSeedBalancesAreCopied(t *testing.T) {
	coins := []types.Coin{{Denom: "token", Amount: "100"}}
	q := simulator.NewMockQuerier(
		simulator.AccountBalance{Address: "acct1", Coins: coins},
	)
	coins[0].Amount = "1"
	var resp types.BalanceResponse
	unwrapInto(t, q.HandleQuery(types.NewBalanceQuery("acct1", "token")), &resp)
	assert.Equal(t, "100", resp.Amount.Amount)
}

func TestSeedAccountsAreDeepCopied(t *testing.T) {
	seeds := []simulator.AccountBalance{
		{Address: "acct1", Coins: []types.Coin{{Denom: "token", Amount: "100"}}},
		{Address: "acct2"},
	}
	q := simulator.NewMockQuerier(seeds...)
	seeds[0].Address = "acct9"
	seeds[0].Coins[0] = types.Coin{Denom: "other", Amount: "1"}
	var resp types.AllBalancesResponse
	unwrapInto(t, q.HandleQuery(allBalancesQuery("acct1")), &resp)
	assert.Equal(t, []types.Coin{{Denom: "token", Amount: "100"}}, resp.Amount)
	result := q.HandleQuery(allBalancesQuery("acct2"))
	require.NotNil(t, result.Ok)
	assert.JSONEq(t, `{"amount":[]}`, string(result.Ok.Ok))
}

func TestUpdateBalance(t *testing.T) {
	q := newTestQuerier()
	prev := q.UpdateBalance("acct2", []types.Coin{{Denom: "token", Amount: "5"}})
	assert.Equal(t, []types.Coin{{Denom: "token", Amount: "25"}}, prev)
	assert.Nil(t, q.UpdateBalance("acct3", nil))
	var resp types.BalanceResponse
	unwrapInto(t, q.HandleQuery(types.NewBalanceQuery("acct2", "token")), &resp)
	assert.Equal(t, "5", resp.Amount.Amount)
}

func TestWasmQueryDefault(t *testing.T) {
	q := newTestQuerier()
	result := q.HandleQuery(types.NewSmartQuery("addr1", types.Binary(`{}`)))
	require.NotNil(t, result.Err)
	require.NotNil(t, result.Err.NoSuchContract)
	assert.Equal(t, "addr1", result.Err.NoSuchContract.Addr)
}

func TestWasmQueryHandler(t *testing.T) {
	q := newTestQuerier()
	q.UpdateWasmHandler(func(query *types.WasmQuery) types.QuerierResult {
		if query.Raw != nil {
			return types.NewQuerierResultOk(types.Binary("raw:" + string(query.Raw.Key)))
		}
		return types.NewQuerierResultContractErr("only raw queries are supported")
	})
	data, err := q.HandleQuery(
		types.QueryRequest{
			Wasm: &types.WasmQuery{
				Raw: &types.RawQuery{ContractAddr: "addr1", Key: types.Binary("config")},
			},
		},
	).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, "raw:config", string(data))
	_, err = q.HandleQuery(types.NewSmartQuery("addr1", nil)).Unwrap()
	var contractErr *types.ContractError
	assert.ErrorAs(t, err, &contractErr)
}

func TestCustomQuery(t *testing.T) {
	q := newTestQuerier()
	req := types.QueryRequest{Custom: json.RawMessage(`{"price":{}}`)}
	result := q.HandleQuery(req)
	require.NotNil(t, result.Err)
	require.NotNil(t, result.Err.UnsupportedRequest)
	assert.Equal(t, "custom", result.Err.UnsupportedRequest.Kind)

	q.UpdateCustomHandler(func(msg json.RawMessage) types.QuerierResult {
		return types.NewQuerierResultOk(types.Binary(msg))
	})
	data, err := q.HandleQuery(req).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, `{"price":{}}`, string(data))
}

func TestEmptyQuery(t *testing.T) {
	result := newTestQuerier().HandleQuery(types.QueryRequest{})
	require.NotNil(t, result.Err)
	require.NotNil(t, result.Err.UnsupportedRequest)
}

func TestRawQuery(t *testing.T) {
	q := newTestQuerier()
	var resp types.BalanceResponse
	unwrapInto(
		t,
		q.RawQuery([]byte(`{"bank":{"balance":{"address":"acct1","denom":"uluna"}}}`)),
		&resp,
	)
	assert.Equal(t, "7", resp.Amount.Amount)

	badRequest := []byte(`{"bank":`)
	result := q.RawQuery(badRequest)
	require.NotNil(t, result.Err)
	require.NotNil(t, result.Err.InvalidRequest)
	assert.Equal(t, badRequest, []byte(result.Err.InvalidRequest.Request))
	assert.Contains(t, result.Err.InvalidRequest.Err, "parsing query request")

	result = q.RawQuery([]byte(`{"bank":{"balance":{"address":"acct1"}}}`))
	require.NotNil(t, result.Err)
	require.NotNil(t, result.Err.InvalidRequest)
	assert.Contains(t, result.Err.InvalidRequest.Err, "missing denom")
}

func TestConcurrentQueries(t *testing.T) {
	q := newTestQuerier()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.UpdateBalance("acct2", []types.Coin{{Denom: "token", Amount: "25"}})
			_, err := q.HandleQuery(types.NewBalanceQuery("acct2", "token")).Unwrap()
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
