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
	"testing"

	"github.com/google/go-cmp/cmp"
	ofp "github.com/opencord/voltha-protos/v5/go/openflow_13"
	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/testing/protocmp"
)

func TestParseBandType(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   BandType
		wantOk bool
	}{
		{name: "drop", input: "DROP", want: BandTypeDrop, wantOk: true},
		{name: "dscp lowercase", input: "dscp_remark", want: BandTypeDscpRemark, wantOk: true},
		{name: "color set", input: " COLOR_SET ", want: BandTypeColorSet, wantOk: true},
		{name: "numeric unknown", input: "99", want: BandType(99), wantOk: true},
		{name: "garbage", input: "POLICE", wantOk: false},
		{name: "wide numeric tag", input: "70000", want: BandType(70000), wantOk: true},
		{name: "out of range", input: "4294967296", wantOk: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseBandType(tt.input)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBandType_String(t *testing.T) {
	assert.Equal(t, "DROP", BandTypeDrop.String())
	assert.Equal(t, "COLOR_SET", BandTypeColorSet.String())
	assert.Equal(t, "UNKNOWN(99)", BandType(99).String())
	assert.True(t, BandTypeDscpRemark.Supported())
	assert.False(t, BandType(0).Supported())
}

func TestMeter_Clone(t *testing.T) {
	m := NewMeter(7, MeterFlagKbps|MeterFlagBurst)
	m.AddBand(NewDropBand(1000, 100))
	c := m.Clone()
	c.Bands[0].Rate = 1
	c.AddBand(NewColorSetBand(1, 1, 2))
	assert.Equal(t, uint32(1000), m.Bands[0].Rate)
	assert.Len(t, m.Bands, 1)
	assert.Equal(t, m.Flags, c.Flags)
}

func TestBandsFromOfp(t *testing.T) {
	headers := []*ofp.OfpMeterBandHeader{
		{
			Type:      ofp.OfpMeterBandType_OFPMBT_DROP,
			Rate:      2000,
			BurstSize: 200,
			Data:      &ofp.OfpMeterBandHeader_Drop{Drop: &ofp.OfpMeterBandDrop{}},
		},
		nil,
		{
			Type:      ofp.OfpMeterBandType_OFPMBT_DSCP_REMARK,
			Rate:      500,
			BurstSize: 50,
			Data:      &ofp.OfpMeterBandHeader_DscpRemark{DscpRemark: &ofp.OfpMeterBandDscpRemark{PrecLevel: 3}},
		},
		{
			Type:      ofp.OfpMeterBandType_OFPMBT_EXPERIMENTER,
			Rate:      1,
			BurstSize: 1,
		},
	}
	want := []Band{
		NewDropBand(2000, 200),
		NewDscpRemarkBand(500, 50, 3),
		{Type: BandType(0xffff), Rate: 1, BurstSize: 1},
	}
	got, err := BandsFromOfp(headers)
	assert.Nil(t, err)
	assert.Equal(t, want, got)
	got, err = BandsFromOfp(nil)
	assert.Nil(t, err)
	assert.Empty(t, got)
}

func TestBandsFromOfp_RawTypes(t *testing.T) {
	tests := []struct {
		name     string
		bandType ofp.OfpMeterBandType
		want     BandType
	}{
		{name: "above 16 bits aliasing drop", bandType: ofp.OfpMeterBandType(0x10001), want: BandType(0x10001)},
		{name: "above 16 bits aliasing color set", bandType: ofp.OfpMeterBandType(0x10003), want: BandType(0x10003)},
		{name: "negative", bandType: ofp.OfpMeterBandType(-1), want: BandType(0xffffffff)},
		{name: "local color set tag", bandType: ofp.OfpMeterBandType(3), want: BandTypeColorSet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BandsFromOfp([]*ofp.OfpMeterBandHeader{{Type: tt.bandType, Rate: 7, BurstSize: 7}})
			assert.Nil(t, err)
			if assert.Len(t, got, 1) {
				assert.Equal(t, Band{Type: tt.want, Rate: 7, BurstSize: 7}, got[0])
			}
		})
	}
	got, _ := BandsFromOfp([]*ofp.OfpMeterBandHeader{{Type: ofp.OfpMeterBandType(0x10001)}})
	assert.False(t, got[0].Type.Supported())
}

func TestBandsFromOfp_PrecLevel(t *testing.T) {
	tests := []struct {
		name    string
		prec    uint32
		want    uint8
		wantErr bool
	}{
		{name: "max", prec: 255, want: 255},
		{name: "just above a byte", prec: 256, wantErr: true},
		{name: "far above a byte", prec: 300, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BandsFromOfp([]*ofp.OfpMeterBandHeader{{
				Type:      ofp.OfpMeterBandType_OFPMBT_DSCP_REMARK,
				Rate:      10,
				BurstSize: 1,
				Data:      &ofp.OfpMeterBandHeader_DscpRemark{DscpRemark: &ofp.OfpMeterBandDscpRemark{PrecLevel: tt.prec}},
			}})
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrPrecLevelOutOfRange))
				assert.Nil(t, got)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, []Band{NewDscpRemarkBand(10, 1, tt.want)}, got)
		})
	}
}

func TestMeterCommandFromOfp(t *testing.T) {
	c, err := MeterCommandFromOfp(ofp.OfpMeterModCommand_OFPMC_MODIFY)
	assert.Nil(t, err)
	assert.Equal(t, MeterCommandMod, c)
	_, err = MeterCommandFromOfp(ofp.OfpMeterModCommand(42))
	assert.Equal(t, ErrUnknownMeterCommand, err)
}

func TestMeterConfigToOfp(t *testing.T) {
	m := NewMeter(5, MeterFlagKbps)
	m.AddBand(NewDropBand(1000, 100))
	m.AddBand(NewDscpRemarkBand(500, 50, 3))

	want := &ofp.OfpMeterConfig{
		Flags:   1,
		MeterId: 5,
		Bands: []*ofp.OfpMeterBandHeader{
			{
				Type:      ofp.OfpMeterBandType_OFPMBT_DROP,
				Rate:      1000,
				BurstSize: 100,
				Data:      &ofp.OfpMeterBandHeader_Drop{Drop: &ofp.OfpMeterBandDrop{}},
			},
			{
				Type:      ofp.OfpMeterBandType_OFPMBT_DSCP_REMARK,
				Rate:      500,
				BurstSize: 50,
				Data:      &ofp.OfpMeterBandHeader_DscpRemark{DscpRemark: &ofp.OfpMeterBandDscpRemark{PrecLevel: 3}},
			},
		},
	}
	if diff := cmp.Diff(want, MeterConfigToOfp(m), protocmp.Transform()); diff != "" {
		t.Errorf("MeterConfigToOfp() mismatch (-want +got):\n%s", diff)
	}
}

func TestMeterConfigToOfp_ColorSet(t *testing.T) {
	m := NewMeter(9, 0)
	m.AddBand(NewColorSetBand(10, 20, 2))
	cfg := MeterConfigToOfp(m)
	assert.Equal(t, uint32(9), cfg.MeterId)
	assert.Len(t, cfg.Bands, 1)
	assert.Equal(t, ofp.OfpMeterBandType(BandTypeColorSet), cfg.Bands[0].Type)
	assert.Nil(t, cfg.Bands[0].Data)
}
