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

// Package envutils provides the env parsing utility functions
package envutils

import (
	"fmt"
	"os"
	"strconv"
)

// common constants
const (
	// common environment variables

	KvStoreType             = "KV_STORE_TYPE"
	KvStoreTimeout          = "KV_STORE_TIMEOUT"
	KvStoreHost             = "KV_STORE_HOST"
	KvStorePort             = "KV_STORE_PORT"
	LogLevel                = "LOG_LEVEL"
	Banner                  = "BANNER"
	DisplayVersionOnly      = "DISPLAY_VERSION_ONLY"
	ProbeHost               = "PROBE_HOST"
	ProbePort               = "PROBE_PORT"
	HostName                = "HOST_NAME"
	MaxConnectionRetries    = "MAX_CONNECTION_RETRIES"
	ConnectionRetryInterval = "CONNECTION_RETRY_INTERVAL"

	// mgc environment variables

	SettingsFile = "SETTINGS_FILE"
	RestEndPoint = "REST_ENDPOINT"

	Undefined           = " undefined"
	EnvironmentVariable = "Environment variable "
)

// ParseStringEnvVariable reads the environment variable and returns env as string
func ParseStringEnvVariable(envVarName string, defaultVal string) string {
	envValue := os.Getenv(envVarName)
	if envValue == "" {
		fmt.Println(EnvironmentVariable + envVarName + Undefined)
		return defaultVal
	}
	return envValue
}

// ParseIntEnvVariable reads the environment variable and returns env as int64
func ParseIntEnvVariable(envVarName string, defaultVal int64) int64 {
	envValue := os.Getenv(envVarName)
	if envValue == "" {
		fmt.Println(EnvironmentVariable+envVarName+Undefined, envVarName)
		return defaultVal
	}
	returnVal, err := strconv.Atoi(envValue)
	if err != nil {
		fmt.Println("Unable to convert string to integer environment variable")
		return defaultVal
	}
	return int64(returnVal)
}

// ParseBoolEnvVariable reads the environment variable and returns env as boolean
func ParseBoolEnvVariable(envVarName string, defaultVal bool) bool {
	envValue := os.Getenv(envVarName)
	if envValue == "" {
		fmt.Println(EnvironmentVariable + envVarName + Undefined)
		return defaultVal
	}
	if envValue == "true" || envValue == "True" {
		return true
	}
	return false
}
