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

// Endpoint definitions
var (
	EndpointTerra2 = Endpoint{
		Name:    "terra2",
		ChainId: "phoenix-1",
		LcdUrl:  "https://phoenix-lcd.terra.dev",
	}
	EndpointTerra2Testnet = Endpoint{
		Name:    "terra2-testnet",
		ChainId: "pisco-1",
		LcdUrl:  "https://pisco-lcd.terra.dev",
	}
	EndpointOsmosis = Endpoint{
		Name:    "osmosis",
		ChainId: "osmosis-1",
		LcdUrl:  "https://lcd.osmosis.zone",
	}

	EndpointInvalid = Endpoint{
		Name: "invalid",
	} // EndpointInvalid is used as a return value for lookup functions when an endpoint isn't found
)

// List of valid endpoints for use in lookup functions
var endpoints = []Endpoint{
	EndpointTerra2,
	EndpointTerra2Testnet,
	EndpointOsmosis,
}

// EndpointByName returns a predefined endpoint by name
func EndpointByName(name string) Endpoint {
	for _, endpoint := range endpoints {
		if endpoint.Name == name {
			return endpoint
		}
	}
	return EndpointInvalid
}

// EndpointByChainId returns a predefined endpoint by chain ID
func EndpointByChainId(chainId string) Endpoint {
	for _, endpoint := range endpoints {
		if endpoint.ChainId == chainId {
			return endpoint
		}
	}
	return EndpointInvalid
}

// Endpoint is a public LCD endpoint of a CosmWasm-enabled chain
type Endpoint struct {
	Name    string
	ChainId string
	LcdUrl  string
}

func (e Endpoint) String() string {
	return e.Name
}
