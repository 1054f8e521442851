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
	"log/slog"
	"net/http"

	"github.com/blinklabs-io/cwmock/codec"
	"github.com/blinklabs-io/cwmock/simulator"
)

// OptionFunc is a type that represents functions that modify the HTTPQuerier config
type OptionFunc func(*HTTPQuerier)

// WithBaseQuerier specifies the querier that answers everything except smart queries
func WithBaseQuerier(base QueryHandler) OptionFunc {
	return func(q *HTTPQuerier) {
		q.base = base
	}
}

// WithBalances specifies the balances used to seed the default base querier. It has no
// effect when combined with WithBaseQuerier
func WithBalances(balances ...simulator.AccountBalance) OptionFunc {
	return func(q *HTTPQuerier) {
		q.balances = append(q.balances, balances...)
	}
}

// WithHTTPClient specifies the HTTP client used for remote calls. The default is
// http.DefaultClient, which never times out
func WithHTTPClient(client *http.Client) OptionFunc {
	return func(q *HTTPQuerier) {
		q.client = client
	}
}

// WithLogger specifies the logger. The default is slog.Default()
func WithLogger(logger *slog.Logger) OptionFunc {
	return func(q *HTTPQuerier) {
		q.logger = logger
	}
}

// WithRequestCodec specifies the wire format accepted by RawQuery. The default is codec.JSON
func WithRequestCodec(c codec.Codec) OptionFunc {
	return func(q *HTTPQuerier) {
		q.codec = c
	}
}

// WithRemoteErrorsAsSystemErrors specifies whether a failed remote call is reported as an
// InvalidResponse system error instead of a panic. This is disabled by default
func WithRemoteErrorsAsSystemErrors(enabled bool) OptionFunc {
	return func(q *HTTPQuerier) {
		q.remoteErrorsAsSystemErrors = enabled
	}
}
