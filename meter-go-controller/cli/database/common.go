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
	"fmt"

	db "meter-go-controller/database"
	"meter-go-controller/meter-go-controller/cli/config"
)

// KVPath type
type KVPath string

var (
	// SettingsPath is the key prefix of the stored settings
	SettingsPath = KVPath(db.GetKeyPath(db.SettingsPath))
	// LogLevelPath is the key of the stored log level
	LogLevelPath = KVPath(db.GetKeyPath(db.LogLevelPath))
	// HealthPath is the key of the stored health record
	HealthPath = KVPath(db.GetKeyPath(db.HealthPath))
)

// Data contains key and value
type Data struct {
	Key   string
	Value []byte
}

// GetRedisClient create a new redis client for mgcctl.
func GetRedisClient() (*RedisClient, error) {
	cfg := config.NewConfig()
	cfg.ParseEnvironmentVariables()

	rc, err := NewRedisClient(
		fmt.Sprintf("%s:%d", cfg.KVStoreHost, cfg.KVStorePort),
		cfg.KVStoreTimeout)
	if err != nil {
		return nil, fmt.Errorf("Failed to establish connection to Redis Client: %v ", err)
	}
	return rc, nil
}
