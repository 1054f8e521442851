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
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/blinklabs-io/cwmock"
)

type GlobalFlags struct {
	Flagset  *flag.FlagSet
	Endpoint string
	Network  string
	Timeout  time.Duration
	Debug    bool
}

func NewGlobalFlags() *GlobalFlags {
	f := &GlobalFlags{
		Flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.Flagset.StringVar(
		&f.Endpoint,
		"endpoint",
		"",
		"LCD endpoint URL. this overrides the -network option",
	)
	f.Flagset.StringVar(
		&f.Network,
		"network",
		"terra2",
		"named network whose public LCD endpoint is used",
	)
	f.Flagset.DurationVar(
		&f.Timeout,
		"timeout",
		30*time.Second,
		"timeout for the remote call (0 disables it)",
	)
	f.Flagset.BoolVar(&f.Debug, "debug", false, "enable debug logging")
	return f
}

func (f *GlobalFlags) Parse() {
	if err := f.Flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	if f.Endpoint == "" {
		endpoint := cwmock.EndpointByName(f.Network)
		if endpoint == cwmock.EndpointInvalid {
			fmt.Printf("Invalid network specified: %s\n", f.Network)
			os.Exit(1)
		}
		f.Endpoint = endpoint.LcdUrl
	}
}
