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

// RegisterSettingsCommands to register settings command
func RegisterSettingsCommands(parser *flags.Parser) {
	if _, err := parser.AddCommand("settings", "Lists the controller settings", "Commands to display the settings stored in the KV store", &settingsCommand); err != nil {
		log.Fatalf("Unexpected error while attempting to register settings commands : %s", err)
	}
}

// SettingsCommand structure
type SettingsCommand struct{}

var settingsCommand SettingsCommand

// Execute for execution of settings command
func (sc *SettingsCommand) Execute(args []string) error {
	rc, err := getKVClient()
	if err != nil {
		return fmt.Errorf("Failed to make connection to KV Store: %s ", err)
	}

	switch len(args) {
	case 0:
		settings, err := rc.GetAll(database.SettingsPath)
		if err != nil {
			return fmt.Errorf("Error fetching the settings: %s", err)
		}
		if len(settings) == 0 {
			return fmt.Errorf("No settings found")
		}
		// call the formating function and display it in a table
		format.NewTableWithWriter(models.AllSettings, models.Horizontal, output).KeyValueEntries(settings)
	case 1:
		name := args[0]
		setting, err := rc.Get(database.SettingsPath, name)
		if err != nil {
			return fmt.Errorf("Error fetching the setting: %s", err)
		}
		if setting == nil {
			return fmt.Errorf("No setting found with name %s", name)
		}
		title := models.TableTitle(fmt.Sprintf(string(models.SingleSetting), name))
		format.NewTableWithWriter(title, models.Vertical, output).KeyValueEntries(map[string]*database.Data{name: setting})
	default:
		return fmt.Errorf("Usage: %s", models.SettingsUsage)
	}
	return nil
}
