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

import "errors"

// ErrUnexpectedStatus indicates that the remote node answered with a non-200 status
var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

// ErrMissingData indicates that the remote node's response had no data field
var ErrMissingData = errors.New("response is missing the data field")
