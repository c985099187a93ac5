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
	"encoding/json"
	"fmt"
	"log"

	"meter-go-controller/meter-go-controller/cli/format"
	"meter-go-controller/meter-go-controller/cli/models"
	"meter-go-controller/meter-go-controller/nbi"

	flags "github.com/jessevdk/go-flags"
)

// RegisterMeterCommands to register meter command
func RegisterMeterCommands(parser *flags.Parser) {
	if _, err := parser.AddCommand("meter", "Lists all the meters", "Commands to display the meter table of the controller", &meterCommand); err != nil {
		log.Fatalf("Unexpected error while attempting to register meter commands : %s", err)
	}
}

// MeterCommand structure
type MeterCommand struct {
	Vertical bool `short:"v" long:"vertical" description:"display one meter field per row"`
}

var meterCommand MeterCommand

// Execute for execution of meter command
func (mc *MeterCommand) Execute(args []string) error {
	orientation := models.Horizontal
	if mc.Vertical {
		orientation = models.Vertical
	}
	switch len(args) {
	case 0:
		body, err := GetAPIData(apiBaseURL() + nbi.MetersPath)
		if err != nil {
			return fmt.Errorf("Error fetching the meter details: %s", err)
		}
		var meters nbi.MeterList
		if err = json.Unmarshal(body, &meters); err != nil {
			return fmt.Errorf("Error while unmarshalling meter details: %s", err)
		}
		if len(meters.Meters) == 0 {
			return fmt.Errorf("No meters found")
		}
		format.NewTableWithWriter(models.AllMeters, orientation, output).MeterEntries(meters.Meters)
	case 1:
		meterID := args[0]
		body, err := GetAPIData(apiBaseURL() + nbi.MetersPath + "/" + meterID)
		if err != nil {
			return fmt.Errorf("Error fetching the meter details: %s", err)
		}
		var meter nbi.MeterInfo
		if err = json.Unmarshal(body, &meter); err != nil {
			return fmt.Errorf("Error while unmarshalling meter details: %s", err)
		}
		title := models.TableTitle(fmt.Sprintf(string(models.SingleMeter), meterID))
		format.NewTableWithWriter(title, orientation, output).MeterEntries([]nbi.MeterInfo{meter})
	default:
		return fmt.Errorf("Usage: %s", models.MeterUsage)
	}
	return nil
}
