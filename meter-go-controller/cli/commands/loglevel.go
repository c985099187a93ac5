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

package commands

import (
	"fmt"
	"log"

	"meter-go-controller/meter-go-controller/cli/database"
	"meter-go-controller/meter-go-controller/cli/format"
	"meter-go-controller/meter-go-controller/cli/models"

	flags "github.com/jessevdk/go-flags"
)

// RegisterLogLevelCommands to register loglevel command
func RegisterLogLevelCommands(parser *flags.Parser) {
	if _, err := parser.AddCommand("loglevel", "Shows the controller log level", "Command to display the log level stored in the KV store", &logLevelCommand); err != nil {
		log.Fatalf("Unexpected error while attempting to register loglevel commands : %s", err)
	}
}

// LogLevelCommand structure
type LogLevelCommand struct{}

var logLevelCommand LogLevelCommand

// Execute for execution of loglevel command
func (lc *LogLevelCommand) Execute(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("Usage: %s", models.LogLevelUsage)
	}
	rc, err := getKVClient()
	if err != nil {
		return fmt.Errorf("Failed to make connection to KV Store: %s ", err)
	}
	level, err := rc.GetValue(database.LogLevelPath)
	if err != nil {
		return fmt.Errorf("Error fetching the log level: %s", err)
	}
	if level == nil {
		return fmt.Errorf("No log level found")
	}
	format.NewTableWithWriter(models.LogLevel, models.Vertical, output).KeyValueEntries(map[string]*database.Data{"level": level})
	return nil
}
