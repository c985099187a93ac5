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

package of

import (
	"errors"
	"fmt"
	"math"

	ofp "github.com/opencord/voltha-protos/v5/go/openflow_13"
)

// MeterCommand : lifecycle command carried by a meter mod
type MeterCommand uint32

const (
	// MeterCommandAdd constant
	MeterCommandAdd MeterCommand = 1
	// MeterCommandDel constant
	MeterCommandDel MeterCommand = 2
	// MeterCommandMod constant
	MeterCommandMod MeterCommand = 3
)

// ErrUnknownMeterCommand is returned for meter mod commands other than add, modify and delete
var ErrUnknownMeterCommand = errors.New("unknown meter mod command")

// ErrPrecLevelOutOfRange is returned for DSCP remark bands whose precedence level does not fit a byte
var ErrPrecLevelOutOfRange = errors.New("dscp remark precedence level out of range")

// MeterCommandFromOfp maps the openflow meter mod command
func MeterCommandFromOfp(c ofp.OfpMeterModCommand) (MeterCommand, error) {
	switch c {
	case ofp.OfpMeterModCommand_OFPMC_ADD:
		return MeterCommandAdd, nil
	case ofp.OfpMeterModCommand_OFPMC_MODIFY:
		return MeterCommandMod, nil
	case ofp.OfpMeterModCommand_OFPMC_DELETE:
		return MeterCommandDel, nil
	}
	return 0, ErrUnknownMeterCommand
}

func (c MeterCommand) String() string {
	switch c {
	case MeterCommandAdd:
		return "add"
	case MeterCommandDel:
		return "delete"
	case MeterCommandMod:
		return "modify"
	}
	return "unknown"
}

// FlagsFromOfp narrows the openflow flags word. Only the low 16 bits
// carry defined meter flags.
func FlagsFromOfp(flags uint32) MeterFlags {
	return MeterFlags(flags & 0xffff)
}

// BandsFromOfp converts decoded openflow band headers into bands. Band
// types other than drop and DSCP remark keep their raw type so that the
// builder can reject them.
func BandsFromOfp(headers []*ofp.OfpMeterBandHeader) ([]Band, error) {
	bands := make([]Band, 0, len(headers))
	for _, h := range headers {
		if h == nil {
			continue
		}
		switch h.Type {
		case ofp.OfpMeterBandType_OFPMBT_DROP:
			bands = append(bands, NewDropBand(h.Rate, h.BurstSize))
		case ofp.OfpMeterBandType_OFPMBT_DSCP_REMARK:
			var prec uint32
			if dr := h.GetDscpRemark(); dr != nil {
				prec = dr.PrecLevel
			}
			if prec > math.MaxUint8 {
				return nil, fmt.Errorf("%w: %d", ErrPrecLevelOutOfRange, prec)
			}
			bands = append(bands, NewDscpRemarkBand(h.Rate, h.BurstSize, uint8(prec)))
		default:
			bands = append(bands, Band{Type: BandType(uint32(h.Type)), Rate: h.Rate, BurstSize: h.BurstSize})
		}
	}
	return bands, nil
}

// BandToOfp renders a band as an openflow band header. Color set has no
// standard encoding and is carried with its own type value.
func BandToOfp(b Band) *ofp.OfpMeterBandHeader {
	band := &ofp.OfpMeterBandHeader{
		Type:      ofp.OfpMeterBandType(b.Type),
		Rate:      b.Rate,
		BurstSize: b.BurstSize,
	}
	switch b.Type {
	case BandTypeDrop:
		band.Data = &ofp.OfpMeterBandHeader_Drop{
			Drop: &ofp.OfpMeterBandDrop{},
		}
	case BandTypeDscpRemark:
		band.Data = &ofp.OfpMeterBandHeader_DscpRemark{
			DscpRemark: &ofp.OfpMeterBandDscpRemark{PrecLevel: uint32(b.PrecLevel)},
		}
	}
	return band
}

// MeterConfigToOfp for conversion of a meter descriptor to openflow meter config
func MeterConfigToOfp(m *Meter) *ofp.OfpMeterConfig {
	cfg := &ofp.OfpMeterConfig{
		MeterId: m.ID,
		Flags:   uint32(m.Flags),
	}
	for _, b := range m.Bands {
		cfg.Bands = append(cfg.Bands, BandToOfp(b))
	}
	return cfg
}
