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

// Package lcd provides a fake LCD node for tests. It serves scripted answers to smart
// queries and records every request path it receives.
package lcd

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

const smartQueryPrefix = "/cosmwasm/wasm/v1/contract/"

// NotFoundBody is returned for smart queries that match no scripted response
const NotFoundBody = `{"code":5,"message":"contract: not found","details":[]}`

// Response is a scripted answer to a smart query
type Response struct {
	ContractAddr string
	// Msg is the query message exactly as it appears in the URL. An empty Msg matches any message
	Msg        string
	StatusCode int
	Body       string
}

// Server is a fake LCD node
type Server struct {
	*httptest.Server
	mutex     sync.Mutex
	responses []Response
	requests  []string
}

// NewServer starts a fake LCD node serving the specified responses. The caller must call
// Close when finished
func NewServer(responses ...Response) *Server {
	s := &Server{
		responses: responses,
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// Requests returns the paths of all requests received so far
func (s *Server) Requests() []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	ret := make([]string, len(s.requests))
	copy(ret, s.requests)
	return ret
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mutex.Lock()
	s.requests = append(s.requests, r.URL.Path)
	s.mutex.Unlock()
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	rest, ok := strings.CutPrefix(r.URL.Path, smartQueryPrefix)
	if !ok {
		writeNotFound(w)
		return
	}
	// The message may itself contain '/' characters
	contractAddr, msg, ok := strings.Cut(rest, "/smart/")
	if !ok {
		writeNotFound(w)
		return
	}
	for _, resp := range s.responses {
		if resp.ContractAddr != contractAddr {
			continue
		}
		if resp.Msg != "" && resp.Msg != msg {
			continue
		}
		statusCode := resp.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusOK
		}
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(resp.Body))
		return
	}
	writeNotFound(w)
}

func writeNotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(NotFoundBody))
}
