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
	"bytes"
	"strings"
	"testing"

	"meter-go-controller/meter-go-controller/cli/database"
	"meter-go-controller/meter-go-controller/cli/models"
	"meter-go-controller/meter-go-controller/nbi"

	"github.com/stretchr/testify/assert"
)

func TestHorizontalTable_KeyValueEntries(t *testing.T) {
	buf := &bytes.Buffer{}
	NewTableWithWriter(models.AllSettings, models.Horizontal, buf).KeyValueEntries(map[string]*database.Data{
		"probe.enabled":    {Value: []byte("true")},
		"nbi.rest.address": {Value: []byte(":8181")},
	})
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, string(models.AllSettings)))
	assert.Less(t, strings.Index(out, "nbi.rest.address"), strings.Index(out, "probe.enabled"))
}

func TestTable_MultipleEntries(t *testing.T) {
	records := map[string]*database.Data{
		"b": {Value: []byte(`{"instance":"MGC-02","meters":2}`)},
		"a": {Value: []byte(`{"instance":"MGC-01","meters":1}`)},
	}
	for _, o := range []models.Orientation{models.Horizontal, models.Vertical} {
		buf := &bytes.Buffer{}
		NewTableWithWriter(models.Health, o, buf).MultipleEntries(records)
		out := buf.String()
		assert.Contains(t, out, "instance")
		assert.Less(t, strings.Index(out, "MGC-01"), strings.Index(out, "MGC-02"))
	}
}

func TestTable_MeterEntries(t *testing.T) {
	meters := []nbi.MeterInfo{
		{ID: "1", Flags: 1, Bands: []nbi.BandInfo{{Type: "COLOR_SET", Rate: 10, BurstSize: 1, Color: 2}}},
		{ID: "2", Bands: []nbi.BandInfo{}},
	}
	buf := &bytes.Buffer{}
	NewTableWithWriter(models.AllMeters, models.Horizontal, buf).MeterEntries(meters)
	assert.Contains(t, buf.String(), "COLOR_SET rate=10 burst=1 color=2")
	assert.Contains(t, buf.String(), "0x1")

	buf.Reset()
	NewTableWithWriter(models.AllMeters, models.Vertical, buf).MeterEntries(meters)
	assert.Contains(t, buf.String(), "Band 0")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "3", formatValue(float64(3)))
	assert.Equal(t, "2.5", formatValue(2.5))
	assert.Equal(t, "7", formatValue(uint32(7)))
	assert.Equal(t, "x", formatValue("x"))
	assert.Equal(t, "-", bandsSummary(nil))
}
