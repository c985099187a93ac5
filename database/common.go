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

import "fmt"

const (
	// PresentVersion represnts the Present version
	// Modify this as we give Major version releases
	PresentVersion = "v1"
	// PreviousVersion represnts the Previous version
	PreviousVersion = "v1"
)

// These are present path where different database elements are store in database
// In case any of these paths change, update the present and previous version
const (
	BasePath     string = "service/mgc/%s/"
	SettingsPath string = "settings/"
	LogLevelPath string = "log-level/"
	HealthPath   string = "health/"
)

// PresentVersionMap - map of present version for all database tables
var PresentVersionMap = map[string]string{
	SettingsPath: "v1",
	LogLevelPath: "v1",
	HealthPath:   "v1",
}

// GetModuleKeypath returns the DB keypath for particular module along with version
func GetModuleKeypath(key, ver string) string {
	return fmt.Sprintf(BasePath, ver) + key
}

// GetKeyPath returns the base path for the given key along with version
func GetKeyPath(key string) string {
	ver, ok := PresentVersionMap[key]
	if !ok {
		ver = PresentVersion
	}
	return fmt.Sprintf(BasePath, ver) + key
}
