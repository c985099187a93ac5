/*
* Copyright 2022-present Open Networking Foundation
* Licensed under the Apache License, Version 2.0 (the "License");
* you may not use this file except in compliance with the License.
* You may obtain a copy of the License at
*
* http://www.apache.org/licenses/LICENSE-2.0
*
* Unless required by applicable law or agreed to in writing, software
* distributed under the License is distributed on an "AS IS" BASIS,
* WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
* See the License for the specific language governing permissions and
* limitations under the License.
 */

package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitHashKey(t *testing.T) {
	tests := []struct {
		path     string
		wantHash string
		wantKey  string
	}{
		{path: "service/mgc/v1/settings/nbi.rest.address", wantHash: "service/mgc/v1/settings/", wantKey: "nbi.rest.address"},
		{path: "service/mgc/v1/log-level/", wantHash: "service/mgc/v1/log-level/", wantKey: ""},
		{path: "plain", wantHash: "", wantKey: "plain"},
		// the key shares trailing characters with its parent path
		{path: "service/mgc/v1/settings/s", wantHash: "service/mgc/v1/settings/", wantKey: "s"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			hash, key := SplitHashKey(tt.path)
			assert.Equal(t, tt.wantHash, hash)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestKVPaths(t *testing.T) {
	assert.Equal(t, KVPath("service/mgc/v1/settings/"), SettingsPath)
	assert.Equal(t, KVPath("service/mgc/v1/log-level/"), LogLevelPath)
}

func TestNewRedisClient_BadAddress(t *testing.T) {
	_, err := NewRedisClient("localhost", 1)
	assert.NotNil(t, err)
	_, err = NewRedisClient("localhost:port", 1)
	assert.NotNil(t, err)
}
