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

package meter

import (
	"context"
	"errors"
	"testing"

	"meter-go-controller/internal/pkg/metrics"
	"meter-go-controller/internal/pkg/of"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	type args struct {
		id    uint32
		flags of.MeterFlags
		bands []of.Band
	}
	tests := []struct {
		name    string
		args    args
		want    *of.Meter
		wantTag of.BandType
		wantErr bool
	}{
		{
			name: "empty band list is a no-op meter",
			args: args{id: 1, flags: of.MeterFlagKbps, bands: nil},
			want: &of.Meter{ID: 1, Flags: of.MeterFlagKbps, Bands: []of.Band{}},
		},
		{
			name: "all supported shapes keep order",
			args: args{
				id:    2,
				flags: of.MeterFlagPktps | of.MeterFlagStats,
				bands: []of.Band{
					of.NewColorSetBand(1, 2, 3),
					of.NewDropBand(1000, 100),
					of.NewDscpRemarkBand(500, 50, 3),
				},
			},
			want: &of.Meter{
				ID:    2,
				Flags: of.MeterFlagPktps | of.MeterFlagStats,
				Bands: []of.Band{
					of.NewColorSetBand(1, 2, 3),
					of.NewDropBand(1000, 100),
					of.NewDscpRemarkBand(500, 50, 3),
				},
			},
		},
		{
			name: "duplicate drop bands are not merged",
			args: args{
				id:    3,
				bands: []of.Band{of.NewDropBand(10, 1), of.NewDropBand(20, 2), of.NewDropBand(10, 1)},
			},
			want: &of.Meter{
				ID:    3,
				Bands: []of.Band{of.NewDropBand(10, 1), of.NewDropBand(20, 2), of.NewDropBand(10, 1)},
			},
		},
		{
			name: "extreme values copied without clamping",
			args: args{
				id:    0xffffffff,
				flags: 0xffff,
				bands: []of.Band{of.NewDscpRemarkBand(0xffffffff, 0, 0xff)},
			},
			want: &of.Meter{
				ID:    0xffffffff,
				Flags: 0xffff,
				Bands: []of.Band{of.NewDscpRemarkBand(0xffffffff, 0, 0xff)},
			},
		},
		{
			name: "fields foreign to the shape are dropped",
			args: args{
				id:    4,
				bands: []of.Band{{Type: of.BandTypeDrop, Rate: 1, BurstSize: 2, PrecLevel: 7, Color: 9}},
			},
			want: &of.Meter{ID: 4, Bands: []of.Band{of.NewDropBand(1, 2)}},
		},
		{
			name:    "unsupported first",
			args:    args{id: 5, bands: []of.Band{{Type: 99}, of.NewDropBand(1, 1)}},
			wantTag: 99,
			wantErr: true,
		},
		{
			name:    "unsupported last",
			args:    args{id: 5, bands: []of.Band{of.NewDropBand(1, 1), of.NewColorSetBand(1, 1, 9), {Type: 0xffff}}},
			wantTag: 0xffff,
			wantErr: true,
		},
		{
			name:    "invalid zero tag",
			args:    args{id: 5, bands: []of.Band{{Type: 0, Rate: 1}}},
			wantTag: 0,
			wantErr: true,
		},
		{
			name:    "first unsupported tag is reported",
			args:    args{id: 5, bands: []of.Band{{Type: 4}, {Type: 5}}},
			wantTag: 4,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(context.Background(), tt.args.id, tt.args.flags, tt.args.bands)
			if tt.wantErr {
				assert.Nil(t, got)
				var ute *UnsupportedBandTypeError
				if assert.True(t, errors.As(err, &ute)) {
					assert.Equal(t, tt.wantTag, ute.Type)
				}
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_DoesNotAliasInput(t *testing.T) {
	bands := []of.Band{of.NewDropBand(1000, 100)}
	got, err := Build(context.Background(), 1, 0, bands)
	assert.Nil(t, err)
	bands[0].Rate = 1
	assert.Equal(t, uint32(1000), got.Bands[0].Rate)
}

func TestUnsupportedBandTypeError_Error(t *testing.T) {
	err := &UnsupportedBandTypeError{Type: 99}
	assert.Equal(t, "unsupported band type 99", err.Error())
}

func TestBuild_UnsupportedBandsSingleSeries(t *testing.T) {
	before := testutil.ToFloat64(metrics.UnsupportedBands)
	for _, tag := range []of.BandType{99, 100, 0x10001} {
		_, err := Build(context.Background(), 1, 0, []of.Band{{Type: tag}})
		assert.NotNil(t, err)
	}
	assert.Equal(t, before+3, testutil.ToFloat64(metrics.UnsupportedBands))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.UnsupportedBands))
}
