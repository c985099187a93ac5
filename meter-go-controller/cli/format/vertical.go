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
	"encoding/json"
	"fmt"
	"io"
	"log"

	"meter-go-controller/meter-go-controller/cli/database"
	"meter-go-controller/meter-go-controller/cli/models"
	"meter-go-controller/meter-go-controller/nbi"

	"github.com/guumaster/tablewriter"
)

type verticalTable struct {
	writer *tablewriter.Table
	out    io.Writer
	title  models.TableTitle
}

func newVerticalTable(title models.TableTitle, outputBuffer io.Writer) Table {
	vt := verticalTable{}
	vt.title = title
	vt.out = outputBuffer
	vt.writer = tablewriter.NewWriter(outputBuffer)
	vt.writer.SetAlignment(tablewriter.ALIGN_LEFT)
	vt.writer.SetAutoWrapText(false)
	return &vt
}

func (vt *verticalTable) SingleEntry(config *database.Data) {
	configs := make(map[string]*database.Data, 1)
	configs["singleEntry"] = config
	vt.MultipleEntries(configs)
}

func (vt *verticalTable) MultipleEntries(configs map[string]*database.Data) {
	isMultiline := len(configs) > 1
	for _, key := range sortedKeys(configs) {
		var data map[string]interface{}
		err := json.Unmarshal(configs[key].Value, &data)
		if err != nil {
			log.Fatalf("Data saved in database seems to be corrupted: %s", err)
		}
		sortedData := sortData(data)
		if isMultiline {
			vt.writer.Append([]string{"ID", key})
			vt.writer.AddSeparator()
		}
		for i := range sortedData {
			parseAndAppendRowNew(vt.writer, sortedData[i].Key, sortedData[i].Value, "")
		}
		if isMultiline {
			vt.writer.AddSeparator()
		}
	}
	vt.render()
}

func (vt *verticalTable) KeyValueEntries(configs map[string]*database.Data) {
	for _, key := range sortedKeys(configs) {
		vt.writer.Append([]string{key, string(configs[key].Value)})
	}
	vt.render()
}

func (vt *verticalTable) MeterEntries(meters []nbi.MeterInfo) {
	isMultiline := len(meters) > 1
	for _, m := range meters {
		vt.writer.Append([]string{"ID", m.ID})
		vt.writer.Append([]string{"Flags", fmt.Sprintf("%#x", m.Flags)})
		for i, b := range m.Bands {
			vt.writer.Append([]string{fmt.Sprintf("Band %d", i), bandsSummary([]nbi.BandInfo{b})})
		}
		if isMultiline {
			vt.writer.AddSeparator()
		}
	}
	vt.render()
}

func (vt *verticalTable) render() {
	fmt.Fprintln(vt.out, string(vt.title))
	vt.writer.Render()
}
