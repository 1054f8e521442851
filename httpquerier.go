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
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/blinklabs-io/cwmock/codec"
	"github.com/blinklabs-io/cwmock/simulator"
	"github.com/blinklabs-io/cwmock/types"
)

const smartQueryPath = "/cosmwasm/wasm/v1/contract/"

// HTTPQuerier forwards smart queries to a node's LCD endpoint and delegates all other
// queries to a base querier. Its configuration is fixed at construction, so a single
// HTTPQuerier may be shared between goroutines as long as the base querier allows it
type HTTPQuerier struct {
	endpoint                   string
	base                       QueryHandler
	balances                   []simulator.AccountBalance
	client                     *http.Client
	logger                     *slog.Logger
	codec                      codec.Codec
	remoteErrorsAsSystemErrors bool
}

// New returns an HTTPQuerier for the specified LCD endpoint. The endpoint is used verbatim
// as the prefix of every request URL. Without WithBaseQuerier, a simulator.MockQuerier
// seeded from WithBalances is used for non-smart queries
func New(endpoint string, opts ...OptionFunc) *HTTPQuerier {
	q := &HTTPQuerier{
		endpoint: endpoint,
	}
	for _, opt := range opts {
		opt(q)
	}
	if q.base == nil {
		q.base = simulator.NewMockQuerier(q.balances...)
	}
	q.balances = nil
	if q.client == nil {
		q.client = http.DefaultClient
	}
	if q.logger == nil {
		q.logger = slog.Default()
	}
	if q.codec == nil {
		q.codec = codec.JSON
	}
	return q
}

// Endpoint returns the LCD endpoint the querier was created with
func (q *HTTPQuerier) Endpoint() string {
	return q.endpoint
}

// Base returns the querier that answers non-smart queries
func (q *HTTPQuerier) Base() QueryHandler {
	return q.base
}

// SmartQueryURL builds the LCD URL for a smart query. The parts are concatenated as-is with
// no escaping, so msg must already be in the textual form the node expects
func SmartQueryURL(endpoint string, contractAddr string, msg fmt.Stringer) string {
	return endpoint + smartQueryPath + contractAddr + "/smart/" + msg.String()
}

func (q *HTTPQuerier) handleSmart(smart *types.SmartQuery) types.QuerierResult {
	data, body, err := q.querySmart(smart.ContractAddr, smart.Msg)
	if err != nil {
		err = fmt.Errorf(
			"smart query against contract %s: %w",
			smart.ContractAddr,
			err,
		)
		if !q.remoteErrorsAsSystemErrors {
			panic(err)
		}
		q.logger.Warn(
			"smart query failed",
			"component", "querier",
			"contract", smart.ContractAddr,
			"error", err,
		)
		return types.NewQuerierResultSystemErr(
			&types.SystemError{
				InvalidResponse: &types.InvalidResponse{
					Err:      err.Error(),
					Response: types.Binary(body),
				},
			},
		)
	}
	return types.NewQuerierResultOk(data)
}

// querySmart performs the remote call. On failure it also returns whatever response body
// was received
func (q *HTTPQuerier) querySmart(
	contractAddr string,
	msg types.Binary,
) (types.Binary, []byte, error) {
	url := SmartQueryURL(q.endpoint, contractAddr, msg)
	q.logger.Debug(
		"forwarding smart query",
		"component", "querier",
		"contract", contractAddr,
		"url", url,
	)
	resp, err := q.client.Get(url)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response from %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, body, fmt.Errorf(
			"%w: %s from %s",
			ErrUnexpectedStatus,
			resp.Status,
			url,
		)
	}
	// Field names are matched exactly, unlike decoding into a tagged struct
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, body, fmt.Errorf("decode response from %s: %w", url, err)
	}
	rawData, ok := envelope["data"]
	if !ok {
		return nil, body, fmt.Errorf("%w: %s", ErrMissingData, url)
	}
	data, err := reencodeData(rawData)
	if err != nil {
		return nil, body, err
	}
	q.logger.Debug(
		"received smart query response",
		"component", "querier",
		"contract", contractAddr,
		"size", len(data),
	)
	return data, nil, nil
}

// reencodeData turns the data field of an LCD response into the binary payload a contract
// would have returned. The payload passes through unpadded base64 and back so that it is
// produced by the same constructor as every other Binary
func reencodeData(rawData json.RawMessage) (types.Binary, error) {
	text, err := compactJSON(rawData)
	if err != nil {
		return nil, fmt.Errorf("serialize response data: %w", err)
	}
	encoded := base64.RawStdEncoding.EncodeToString(text)
	data, err := types.BinaryFromBase64(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode response data: %w", err)
	}
	return data, nil
}

// compactJSON re-serializes a JSON value without whitespace, with object keys sorted and
// numbers kept exactly as received
func compactJSON(raw json.RawMessage) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
