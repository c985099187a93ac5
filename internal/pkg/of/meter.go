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
	"strconv"
	"strings"
)

// BandType identifies the shape of a meter band. It is as wide as the
// openflow band type so that unknown tags are reported unchanged.
type BandType uint32

const (
	// BandTypeDrop drops traffic above the band rate
	BandTypeDrop BandType = 1
	// BandTypeDscpRemark lowers the drop precedence of the DSCP field
	BandTypeDscpRemark BandType = 2
	// BandTypeColorSet sets the internal color marking of the packet
	BandTypeColorSet BandType = 3
)

// MeterFlags is the meter configuration bitmask
type MeterFlags uint16

const (
	// MeterFlagKbps rate value in kb/s
	MeterFlagKbps MeterFlags = 1 << 0
	// MeterFlagPktps rate value in packet/sec
	MeterFlagPktps MeterFlags = 1 << 1
	// MeterFlagBurst do burst size
	MeterFlagBurst MeterFlags = 1 << 2
	// MeterFlagStats collect statistics
	MeterFlagStats MeterFlags = 1 << 3
)

var bandTypeNames = map[BandType]string{
	BandTypeDrop:       "DROP",
	BandTypeDscpRemark: "DSCP_REMARK",
	BandTypeColorSet:   "COLOR_SET",
}

func (bt BandType) String() string {
	if name, ok := bandTypeNames[bt]; ok {
		return name
	}
	return "UNKNOWN(" + strconv.FormatUint(uint64(bt), 10) + ")"
}

// Supported reports whether the band type belongs to the closed set of known shapes
func (bt BandType) Supported() bool {
	_, ok := bandTypeNames[bt]
	return ok
}

// ParseBandType accepts either a band type name or its decimal tag.
// Numeric tags are returned as is, even when they are not a known shape.
func ParseBandType(s string) (BandType, bool) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for bt, n := range bandTypeNames {
		if n == name {
			return bt, true
		}
	}
	tag, err := strconv.ParseUint(name, 10, 32)
	if err != nil {
		return 0, false
	}
	return BandType(tag), true
}

// Band structure. PrecLevel is meaningful only for DSCP remark bands and
// Color only for color set bands.
type Band struct {
	Type      BandType
	Rate      uint32
	BurstSize uint32
	PrecLevel uint8
	Color     uint8
}

// NewDropBand is constructor for a drop band
func NewDropBand(rate uint32, bs uint32) Band {
	return Band{Type: BandTypeDrop, Rate: rate, BurstSize: bs}
}

// NewDscpRemarkBand is constructor for a DSCP remark band
func NewDscpRemarkBand(rate uint32, bs uint32, prec uint8) Band {
	return Band{Type: BandTypeDscpRemark, Rate: rate, BurstSize: bs, PrecLevel: prec}
}

// NewColorSetBand is constructor for a color set band
func NewColorSetBand(rate uint32, bs uint32, color uint8) Band {
	return Band{Type: BandTypeColorSet, Rate: rate, BurstSize: bs, Color: color}
}

// Meter is the validated descriptor of a meter, as handed to the backend
type Meter struct {
	Bands []Band
	ID    uint32
	Flags MeterFlags
}

// NewMeter is constructor for Meter
func NewMeter(id uint32, flags MeterFlags) *Meter {
	var vm Meter
	vm.ID = id
	vm.Flags = flags
	vm.Bands = []Band{}
	return &vm
}

// AddBand appends a band keeping submission order
func (vm *Meter) AddBand(b Band) {
	vm.Bands = append(vm.Bands, b)
}

// Clone returns a deep copy of the meter
func (vm *Meter) Clone() *Meter {
	c := &Meter{ID: vm.ID, Flags: vm.Flags}
	c.Bands = make([]Band, len(vm.Bands))
	copy(c.Bands, vm.Bands)
	return c
}
