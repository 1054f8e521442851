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

package types

import (
	"encoding/json"
	"errors"
	"fmt"
)

// SystemError reports a failure of the querier itself rather than of the queried contract.
// Exactly one field is set
type SystemError struct {
	InvalidRequest     *InvalidRequest     `json:"invalid_request,omitempty"`
	InvalidResponse    *InvalidResponse    `json:"invalid_response,omitempty"`
	NoSuchContract     *NoSuchContract     `json:"no_such_contract,omitempty"`
	UnsupportedRequest *UnsupportedRequest `json:"unsupported_request,omitempty"`
	Unknown            *Unknown            `json:"unknown,omitempty"`
}

type InvalidRequest struct {
	Err     string `json:"error"`
	Request Binary `json:"request"`
}

type InvalidResponse struct {
	Err      string `json:"error"`
	Response Binary `json:"response"`
}

type NoSuchContract struct {
	Addr string `json:"addr"`
}

type UnsupportedRequest struct {
	Kind string `json:"kind"`
}

type Unknown struct{}

// NewInvalidRequestError returns the system error reported when a serialized query request
// cannot be decoded
func NewInvalidRequestError(err error, request []byte) *SystemError {
	return &SystemError{
		InvalidRequest: &InvalidRequest{
			Err:     fmt.Sprintf("parsing query request: %s", err),
			Request: Binary(request),
		},
	}
}

func (e *SystemError) Error() string {
	switch {
	case e.InvalidRequest != nil:
		return fmt.Sprintf(
			"cannot parse request: %s in: %s",
			e.InvalidRequest.Err,
			string(e.InvalidRequest.Request),
		)
	case e.InvalidResponse != nil:
		return fmt.Sprintf(
			"cannot parse response: %s in: %s",
			e.InvalidResponse.Err,
			string(e.InvalidResponse.Response),
		)
	case e.NoSuchContract != nil:
		return "no such contract: " + e.NoSuchContract.Addr
	case e.UnsupportedRequest != nil:
		return "unsupported query type: " + e.UnsupportedRequest.Kind
	}
	return "unknown system error"
}

// ContractError is the Go error form of a failed ContractResult
type ContractError struct {
	Msg string
}

func (e *ContractError) Error() string {
	return "contract error: " + e.Msg
}

// ContractResult is the contract-level outcome of a query. A non-nil Err marks a
// failure, even when the message is empty
type ContractResult struct {
	Ok  Binary
	Err *string
}

func (r ContractResult) IsErr() bool {
	return r.Err != nil
}

func (r ContractResult) MarshalJSON() ([]byte, error) {
	if r.IsErr() {
		return json.Marshal(map[string]string{"error": *r.Err})
	}
	ok := r.Ok
	if ok == nil {
		ok = Binary{}
	}
	return json.Marshal(map[string]Binary{"ok": ok})
}

func (r *ContractResult) UnmarshalJSON(data []byte) error {
	var tmp struct {
		Ok  *Binary `json:"ok"`
		Err *string `json:"error"`
	}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	switch {
	case tmp.Err != nil && tmp.Ok == nil:
		r.Ok = nil
		r.Err = tmp.Err
	case tmp.Ok != nil && tmp.Err == nil:
		r.Ok = *tmp.Ok
		r.Err = nil
	default:
		return errors.New("contract result must hold exactly one of ok or error")
	}
	return nil
}

// QuerierResult wraps a query outcome in two levels: a system level (Err) and, on
// system success, a contract level (Ok)
type QuerierResult struct {
	Ok  *ContractResult `json:"ok,omitempty"`
	Err *SystemError    `json:"error,omitempty"`
}

// NewQuerierResultOk returns a result carrying a successful contract response
func NewQuerierResultOk(data Binary) QuerierResult {
	return QuerierResult{
		Ok: &ContractResult{Ok: data},
	}
}

// NewQuerierResultContractErr returns a result carrying a contract-level failure
func NewQuerierResultContractErr(msg string) QuerierResult {
	return QuerierResult{
		Ok: &ContractResult{Err: &msg},
	}
}

// NewQuerierResultSystemErr returns a result carrying a system-level failure
func NewQuerierResultSystemErr(err *SystemError) QuerierResult {
	return QuerierResult{
		Err: err,
	}
}

// Unwrap collapses both result levels into the response payload or an error. System
// failures are returned as *SystemError and contract failures as *ContractError
func (r QuerierResult) Unwrap() (Binary, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if r.Ok == nil {
		return nil, &SystemError{Unknown: &Unknown{}}
	}
	if r.Ok.IsErr() {
		return nil, &ContractError{Msg: *r.Ok.Err}
	}
	return r.Ok.Ok, nil
}
