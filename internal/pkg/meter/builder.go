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

	"meter-go-controller/internal/pkg/metrics"
	"meter-go-controller/internal/pkg/of"
	"meter-go-controller/log"
)

// Build validates the bands and returns the meter descriptor. Bands are
// kept in submission order without merging; rates and burst sizes are
// not range checked. The first band of an unsupported type aborts the
// build and no descriptor is returned.
func Build(cntx context.Context, id uint32, flags of.MeterFlags, bands []of.Band) (*of.Meter, error) {
	m := of.NewMeter(id, flags)
	for i, b := range bands {
		if !b.Type.Supported() {
			logger.Errorw(cntx, "Unsupported meter band type", log.Fields{"MeterID": id, "BandType": uint32(b.Type), "Index": i})
			metrics.UnsupportedBands.Inc()
			return nil, &UnsupportedBandTypeError{Type: b.Type}
		}
		switch b.Type {
		case of.BandTypeDrop:
			m.AddBand(of.NewDropBand(b.Rate, b.BurstSize))
		case of.BandTypeDscpRemark:
			m.AddBand(of.NewDscpRemarkBand(b.Rate, b.BurstSize, b.PrecLevel))
		case of.BandTypeColorSet:
			m.AddBand(of.NewColorSetBand(b.Rate, b.BurstSize, b.Color))
		}
	}
	return m, nil
}
