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
	"github.com/blinklabs-io/cwmock/types"
)

// route returns the smart query held by a request, if any
func route(req types.QueryRequest) (*types.SmartQuery, bool) {
	if req.Wasm == nil || req.Wasm.Smart == nil {
		return nil, false
	}
	return req.Wasm.Smart, true
}

// HandleQuery answers smart queries from the remote node and passes every other query,
// unchanged, to the base querier
func (q *HTTPQuerier) HandleQuery(req types.QueryRequest) types.QuerierResult {
	if smart, ok := route(req); ok {
		return q.handleSmart(smart)
	}
	return q.base.HandleQuery(req)
}

// RawQuery decodes a serialized query request with the configured codec and answers it.
// A request that cannot be decoded produces an InvalidRequest system error
func (q *HTTPQuerier) RawQuery(data []byte) types.QuerierResult {
	req, err := q.codec.DecodeRequest(data)
	if err != nil {
		q.logger.Debug(
			"rejecting query request",
			"component", "querier",
			"codec", q.codec.Name(),
			"error", err,
		)
		return types.NewQuerierResultSystemErr(
			types.NewInvalidRequestError(err, data),
		)
	}
	return q.HandleQuery(req)
}
