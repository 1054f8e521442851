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

package simulator

import (
	"sync"
)

// MemoryStorage is a contract key/value store held in memory
type MemoryStorage struct {
	mutex sync.RWMutex
	data  map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		data: make(map[string][]byte),
	}
}

// Get returns a copy of the value stored under key, or nil if there is none
func (s *MemoryStorage) Get(key []byte) []byte {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	value, ok := s.data[string(key)]
	if !ok {
		return nil
	}
	ret := make([]byte, len(value))
	copy(ret, value)
	return ret
}

func (s *MemoryStorage) Set(key []byte, value []byte) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	tmp := make([]byte, len(value))
	copy(tmp, value)
	s.data[string(key)] = tmp
}

func (s *MemoryStorage) Remove(key []byte) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.data, string(key))
}

// Len returns the number of stored keys
func (s *MemoryStorage) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}
