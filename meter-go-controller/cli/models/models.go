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

package models

// TableTitle describe the title of table.
type TableTitle string

const (
	// AllSettings constant
	AllSettings TableTitle = "All Settings"
	// SingleSetting constant
	SingleSetting TableTitle = "Setting %s"
	// LogLevel constant
	LogLevel TableTitle = "Log Level"
	// Health constant
	Health TableTitle = "Controller Health"
	// AllMeters constant
	AllMeters TableTitle = "All Meters"
	// SingleMeter constant
	SingleMeter TableTitle = "Meter with ID %s"
)

// Orientation describes the table orientation
type Orientation uint8

const (
	// Horizontal constant
	Horizontal Orientation = iota
	// Vertical constant
	Vertical
)

// CommandUsage describes the usage of a command
type CommandUsage string

const (
	// SettingsUsage constant
	SettingsUsage CommandUsage = "settings [name]"
	// LogLevelUsage constant
	LogLevelUsage CommandUsage = "loglevel"
	// HealthUsage constant
	HealthUsage CommandUsage = "health"
	// MeterUsage constant
	MeterUsage CommandUsage = "meter [meter-id]"
)
