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

package common

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/blinklabs-io/cwmock"
)

// CreateQuerier returns an HTTPQuerier configured from the global flags. Remote failures are
// reported as results so that the caller can print them
func CreateQuerier(f *GlobalFlags) *cwmock.HTTPQuerier {
	level := slog.LevelInfo
	if f.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	)
	return cwmock.New(
		f.Endpoint,
		cwmock.WithHTTPClient(&http.Client{Timeout: f.Timeout}),
		cwmock.WithLogger(logger),
		cwmock.WithRemoteErrorsAsSystemErrors(true),
	)
}
