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

package format

import (
	"io"
	"os"

	"meter-go-controller/meter-go-controller/cli/database"
	"meter-go-controller/meter-go-controller/cli/models"
	"meter-go-controller/meter-go-controller/nbi"
)

// Table interface for entry type in the table
type Table interface {
	// For database based commands holding JSON records
	SingleEntry(config *database.Data)
	MultipleEntries(configs map[string]*database.Data)
	// For database based commands holding plain values
	KeyValueEntries(configs map[string]*database.Data)
	// For API based meter commands
	MeterEntries(meters []nbi.MeterInfo)
}

// NewTable function to create a new table
func NewTable(title models.TableTitle, orientation models.Orientation) Table {
	return NewTableWithWriter(title, orientation, os.Stdout)
}

// NewTableWithWriter creates a table rendering to the given writer
func NewTableWithWriter(title models.TableTitle, orientation models.Orientation, out io.Writer) Table {
	switch orientation {
	case models.Horizontal:
		return newHorizontalTable(title, out)
	case models.Vertical:
		return newVerticalTable(title, out)
	}
	return newHorizontalTable(title, out)
}
