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

package main

import (
	"strconv"

	"meter-go-controller/internal/pkg/util/envutils"
)

// Meter controller default constants
const (
	defaultLogLevel       = "DEBUG"
	defaultProbeHost      = ""
	defaultProbePort      = 8090
	defaultBanner         = true
	defaultDisplayVersion = false
	defaultSettingsFile   = ""
	// The KV store may come up after the controller, keep retrying for two minutes
	defaultConnectionRetryDelay = 1
	defaultConnectionMaxRetries = 120
	defaultKVStoreType          = "etcd"
	defaultKVStoreHost          = "127.0.0.1"
	defaultKVStorePort          = 2379
	defaultKVStoreTimeout       = 5000000000
	defaultInstanceID           = "MGC-01"
)

func newMGCFlags() *MGCFlags {
	var mgcConfig = MGCFlags{
		LogLevel:             defaultLogLevel,
		KVStoreType:          defaultKVStoreType,
		KVStoreHost:          defaultKVStoreHost,
		KVStorePort:          defaultKVStorePort,
		KVStoreTimeout:       defaultKVStoreTimeout,
		ProbeHost:            defaultProbeHost,
		ProbePort:            defaultProbePort,
		Banner:               defaultBanner,
		DisplayVersion:       defaultDisplayVersion,
		SettingsFile:         defaultSettingsFile,
		ConnectionRetryDelay: defaultConnectionRetryDelay,
		ConnectionMaxRetries: defaultConnectionMaxRetries,
		InstanceID:           defaultInstanceID,
	}

	return &mgcConfig
}

// MGCFlags represents the set of configurations used by the meter controller
type MGCFlags struct {
	LogLevel             string
	InstanceID           string
	KVStoreEndPoint      string
	ProbeEndPoint        string
	KVStoreType          string
	KVStoreHost          string
	ProbeHost            string
	SettingsFile         string
	KVStoreTimeout       int // in nanoseconds
	KVStorePort          int
	ProbePort            int
	ConnectionRetryDelay int // in seconds
	ConnectionMaxRetries int
	Banner               bool
	DisplayVersion       bool
}

// parseEnvironmentVariables reads the bootstrap configuration from the environment
func (cf *MGCFlags) parseEnvironmentVariables() {
	cf.LogLevel = envutils.ParseStringEnvVariable(envutils.LogLevel, defaultLogLevel)
	cf.KVStoreType = envutils.ParseStringEnvVariable(envutils.KvStoreType, defaultKVStoreType)
	cf.KVStoreTimeout = int(envutils.ParseIntEnvVariable(envutils.KvStoreTimeout, defaultKVStoreTimeout))
	cf.KVStoreHost = envutils.ParseStringEnvVariable(envutils.KvStoreHost, defaultKVStoreHost)
	cf.KVStorePort = int(envutils.ParseIntEnvVariable(envutils.KvStorePort, defaultKVStorePort))
	cf.ProbeHost = envutils.ParseStringEnvVariable(envutils.ProbeHost, defaultProbeHost)
	cf.ProbePort = int(envutils.ParseIntEnvVariable(envutils.ProbePort, defaultProbePort))
	cf.Banner = envutils.ParseBoolEnvVariable(envutils.Banner, defaultBanner)
	cf.DisplayVersion = envutils.ParseBoolEnvVariable(envutils.DisplayVersionOnly, defaultDisplayVersion)
	cf.SettingsFile = envutils.ParseStringEnvVariable(envutils.SettingsFile, defaultSettingsFile)
	cf.ConnectionRetryDelay = int(envutils.ParseIntEnvVariable(envutils.ConnectionRetryInterval, defaultConnectionRetryDelay))
	cf.ConnectionMaxRetries = int(envutils.ParseIntEnvVariable(envutils.MaxConnectionRetries, defaultConnectionMaxRetries))
	cf.InstanceID = envutils.ParseStringEnvVariable(envutils.HostName, defaultInstanceID)

	cf.KVStoreEndPoint = cf.KVStoreHost + ":" + strconv.Itoa(cf.KVStorePort)
	cf.ProbeEndPoint = cf.ProbeHost + ":" + strconv.Itoa(cf.ProbePort)
}
