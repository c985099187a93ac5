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

// RegisterHealthCommands to register health command
func RegisterHealthCommands(parser *flags.Parser) {
	if _, err := parser.AddCommand("health", "Shows the controller health", "Command to display the health record stored in the KV store", &healthCommand); err != nil {
		log.Fatalf("Unexpected error while attempting to register health commands : %s", err)
	}
}

// HealthCommand structure
type HealthCommand struct{}

var healthCommand HealthCommand

// Execute for execution of health command
func (hc *HealthCommand) Execute(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("Usage: %s", models.HealthUsage)
	}
	rc, err := getKVClient()
	if err != nil {
		return fmt.Errorf("Failed to make connection to KV Store: %s ", err)
	}
	health, err := rc.GetValue(database.HealthPath)
	if err != nil {
		return fmt.Errorf("Error fetching the health: %s", err)
	}
	if health == nil {
		return fmt.Errorf("No health record found")
	}
	format.NewTableWithWriter(models.Health, models.Vertical, output).SingleEntry(health)
	return nil
}
