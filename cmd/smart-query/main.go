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

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/blinklabs-io/cwmock/cmd/common"
	"github.com/blinklabs-io/cwmock/types"
)

type smartQueryFlags struct {
	*common.GlobalFlags
	contract string
	msg      string
}

func main() {
	// Parse commandline
	f := smartQueryFlags{
		GlobalFlags: common.NewGlobalFlags(),
	}
	f.Flagset.StringVar(&f.contract, "contract", "", "address of the contract to query")
	f.Flagset.StringVar(&f.msg, "msg", "", "JSON query message")
	f.Parse()
	if f.contract == "" || f.msg == "" {
		fmt.Printf("You must specify both -contract and -msg\n\n")
		f.Flagset.PrintDefaults()
		os.Exit(1)
	}
	if !json.Valid([]byte(f.msg)) {
		fmt.Printf("ERROR: query message is not valid JSON\n")
		os.Exit(1)
	}

	q := common.CreateQuerier(f.GlobalFlags)
	data, err := q.HandleQuery(
		types.NewSmartQuery(f.contract, types.Binary(f.msg)),
	).Unwrap()
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(out.String())
}
