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

package nbi

import (
	"errors"
	"strconv"

	"meter-go-controller/internal/pkg/of"
)

// BandInfo is the REST representation of a meter band
type BandInfo struct {
	Type      string `json:"type"`
	Rate      uint32 `json:"rate"`
	BurstSize uint32 `json:"burstSize"`
	PrecLevel uint8  `json:"precLevel,omitempty"`
	Color     uint8  `json:"color,omitempty"`
}

// MeterInfo is the REST representation of a meter
type MeterInfo struct {
	ID    string     `json:"id"`
	Flags uint16     `json:"flags"`
	Bands []BandInfo `json:"bands"`
}

// MeterList struct
type MeterList struct {
	Meters []MeterInfo `json:"meters"`
}

// SettingList struct
type SettingList struct {
	Settings []SettingInfo `json:"settings"`
}

// SettingInfo struct
type SettingInfo struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Default     string `json:"default"`
	Description string `json:"description,omitempty"`
}

var errInvalidBandType = errors.New("invalid band type")

// MeterObjectMapping converts a meter descriptor to its REST form
func MeterObjectMapping(m *of.Meter) MeterInfo {
	info := MeterInfo{
		ID:    strconv.FormatUint(uint64(m.ID), 10),
		Flags: uint16(m.Flags),
		Bands: make([]BandInfo, 0, len(m.Bands)),
	}
	for _, b := range m.Bands {
		info.Bands = append(info.Bands, BandInfo{
			Type:      b.Type.String(),
			Rate:      b.Rate,
			BurstSize: b.BurstSize,
			PrecLevel: b.PrecLevel,
			Color:     b.Color,
		})
	}
	return info
}

// BandsFromInfo converts REST bands. Numeric type tags are passed through
// so that the meter builder decides whether they are supported.
func BandsFromInfo(infos []BandInfo) ([]of.Band, error) {
	bands := make([]of.Band, 0, len(infos))
	for _, bi := range infos {
		bt, ok := of.ParseBandType(bi.Type)
		if !ok {
			return nil, errInvalidBandType
		}
		bands = append(bands, of.Band{
			Type:      bt,
			Rate:      bi.Rate,
			BurstSize: bi.BurstSize,
			PrecLevel: bi.PrecLevel,
			Color:     bi.Color,
		})
	}
	return bands, nil
}
