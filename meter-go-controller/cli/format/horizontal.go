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

type horizontalTable struct {
	writer *tablewriter.Table
	out    io.Writer
	title  models.TableTitle
}

func newHorizontalTable(title models.TableTitle, outputBuffer io.Writer) Table {
	ht := horizontalTable{}
	ht.title = title
	ht.out = outputBuffer
	ht.writer = tablewriter.NewWriter(outputBuffer)
	ht.writer.SetAlignment(tablewriter.ALIGN_RIGHT)
	ht.writer.SetAutoWrapText(false)
	return &ht
}

func (ht *horizontalTable) SingleEntry(value *database.Data) {
	values := make(map[string]*database.Data, 1)
	values["singleEntry"] = value
	ht.MultipleEntries(values)
}

func (ht *horizontalTable) MultipleEntries(values map[string]*database.Data) {
	keys := sortedKeys(values)
	var rows [][]string
	for n, k := range keys {
		var data map[string]interface{}
		err := json.Unmarshal(values[k].Value, &data)
		if err != nil {
			log.Fatalf("Data saved in database seems to be corrupted: %s", err)
		}
		sortedData := sortData(data)
		if n == 0 {
			var header []string
			for i := range sortedData {
				header = append(header, sortedData[i].Key)
			}
			ht.writer.Append(header)
			ht.writer.AddSeparator()
		}
		var row []string
		for i := range sortedData {
			row = append(row, formatValue(sortedData[i].Value))
		}
		rows = append(rows, row)
	}
	ht.render(rows)
}

func (ht *horizontalTable) KeyValueEntries(values map[string]*database.Data) {
	ht.writer.Append([]string{"NAME", "VALUE"})
	ht.writer.AddSeparator()
	var rows [][]string
	for _, k := range sortedKeys(values) {
		rows = append(rows, []string{k, string(values[k].Value)})
	}
	ht.render(rows)
}

func (ht *horizontalTable) MeterEntries(meters []nbi.MeterInfo) {
	ht.writer.Append([]string{"ID", "FLAGS", "BANDS"})
	ht.writer.AddSeparator()
	var rows [][]string
	for _, m := range meters {
		rows = append(rows, []string{m.ID, fmt.Sprintf("%#x", m.Flags), bandsSummary(m.Bands)})
	}
	ht.render(rows)
}

func (ht *horizontalTable) render(rows [][]string) {
	fmt.Fprintln(ht.out, string(ht.title))
	ht.writer.AppendBulk(rows)
	ht.writer.Render()
}
