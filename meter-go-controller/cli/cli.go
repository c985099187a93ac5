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
	"os"

	"meter-go-controller/meter-go-controller/cli/commands"

	flags "github.com/jessevdk/go-flags"
)

func registerCommands(parser *flags.Parser) {
	commands.RegisterSettingsCommands(parser)
	commands.RegisterLogLevelCommands(parser)
	commands.RegisterHealthCommands(parser)
	commands.RegisterMeterCommands(parser)
}

func main() {
	var options Options
	parser := flags.NewParser(&options, flags.Default)
	registerCommands(parser)

	if _, err := parser.Parse(); err != nil {
		switch flagsErr := err.(type) {
		case flags.ErrorType:
			if flagsErr == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(1)
		default:
			os.Exit(1)
		}
	}
}

// Options struct
type Options struct{}
