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

func TestGetKeyPath(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "settings", key: SettingsPath, want: "service/mgc/v1/settings/"},
		{name: "log level", key: LogLevelPath, want: "service/mgc/v1/log-level/"},
		{name: "unversioned key", key: "other/", want: "service/mgc/v1/other/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetKeyPath(tt.key))
		})
	}
}

func TestSettingName(t *testing.T) {
	assert.Equal(t, "nbi.rest.address", SettingName("service/mgc/v1/settings/nbi.rest.address"))
	assert.Equal(t, "plain", SettingName("plain"))
	assert.Equal(t, "service/mgc/v2/settings/x", GetModuleKeypath(SettingsPath, "v2")+"x")
}
