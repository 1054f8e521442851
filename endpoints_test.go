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

package cwmock_test

import (
	"testing"

	"github.com/blinklabs-io/cwmock"
)

func TestEndpointByName(t *testing.T) {
	if ep := cwmock.EndpointByName("terra2"); ep.LcdUrl != "https://phoenix-lcd.terra.dev" {
		t.Fatalf("did not get expected endpoint: %#v", ep)
	}
	if ep := cwmock.EndpointByName("nope"); ep != cwmock.EndpointInvalid {
		t.Fatalf("expected invalid endpoint, got: %#v", ep)
	}
}

func TestEndpointByChainId(t *testing.T) {
	if ep := cwmock.EndpointByChainId("pisco-1"); ep != cwmock.EndpointTerra2Testnet {
		t.Fatalf("did not get expected endpoint: %#v", ep)
	}
	if ep := cwmock.EndpointByChainId(""); ep != cwmock.EndpointInvalid {
		t.Fatalf("expected invalid endpoint, got: %#v", ep)
	}
}
