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
	"fmt"
	"reflect"
	"strings"

	"meter-go-controller/meter-go-controller/nbi"

	"github.com/guumaster/tablewriter"
)

// To append rows for database based commands.
func parseAndAppendRowNew(t *tablewriter.Table, key string, value interface{}, tab string) {
	switch reflect.ValueOf(value).Kind() {
	case reflect.Map:
		t.Append([]string{tab + key, ""})
		newValue := value.(map[string]interface{})
		pl := sortData(newValue)
		for i := range pl {
			parseAndAppendRowNew(t, pl[i].Key, pl[i].Value, tab+" ")
		}
	default:
		t.Append([]string{tab + key, formatValue(value)})
	}
}

func formatValue(value interface{}) string {
	switch value := value.(type) {
	case float64:
		if value == float64(int64(value)) {
			return fmt.Sprintf("%d", int64(value))
		}
		return fmt.Sprint(value)
	case uint64, uint32:
		return fmt.Sprintf("%d", value)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// bandsSummary renders the bands of a meter on a single cell
func bandsSummary(bands []nbi.BandInfo) string {
	if len(bands) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(bands))
	for _, b := range bands {
		s := fmt.Sprintf("%s rate=%d burst=%d", b.Type, b.Rate, b.BurstSize)
		switch b.Type {
		case "DSCP_REMARK":
			s += fmt.Sprintf(" prec=%d", b.PrecLevel)
		case "COLOR_SET":
			s += fmt.Sprintf(" color=%d", b.Color)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "; ")
}
