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

package cwmock

import (
	"encoding/json"
	"testing"

	"github.com/blinklabs-io/cwmock/types"
)

func TestRoute(t *testing.T) {
	testDefs := []struct {
		req     types.QueryRequest
		isSmart bool
	}{
		{req: types.NewSmartQuery("addr1", types.Binary(`{}`)), isSmart: true},
		{req: types.NewBalanceQuery("acct1", "token")},
		{req: types.QueryRequest{Wasm: &types.WasmQuery{Raw: &types.RawQuery{}}}},
		{req: types.QueryRequest{Wasm: &types.WasmQuery{}}},
		{req: types.QueryRequest{Custom: json.RawMessage(`{}`)}},
		{req: types.QueryRequest{}},
	}
	for _, testDef := range testDefs {
		smart, ok := route(testDef.req)
		if ok != testDef.isSmart {
			t.Fatalf("did not route %s query as expected: got smart=%v", testDef.req.Kind(), ok)
		}
		if ok && smart != testDef.req.Wasm.Smart {
			t.Fatalf("routed smart query does not match request")
		}
	}
}
