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

package vpagent

import (
	"context"

	"meter-go-controller/internal/pkg/errorcodes"
	"meter-go-controller/internal/pkg/meter"
	"meter-go-controller/internal/pkg/of"
	"meter-go-controller/log"

	"github.com/golang/protobuf/ptypes/empty"
	"github.com/opencord/voltha-protos/v5/go/common"
	ofp "github.com/opencord/voltha-protos/v5/go/openflow_13"
	"github.com/opencord/voltha-protos/v5/go/voltha"
)

// meterService implements the meter table calls of the VOLTHA service.
// Every other call answers Unimplemented.
type meterService struct {
	voltha.UnimplementedVolthaServiceServer
	mm *meter.Manager
}

// UpdateLogicalDeviceMeterTable applies a meter mod to the meter table
func (ms *meterService) UpdateLogicalDeviceMeterTable(ctx context.Context, mmu *ofp.MeterModUpdate) (*empty.Empty, error) {
	mod := mmu.GetMeterMod()
	if mod == nil {
		logger.Warnw(ctx, "Meter mod missing", log.Fields{"Device": mmu.GetId()})
		return nil, errorcodes.ErrInvalidParamInRequest
	}
	cmd, err := of.MeterCommandFromOfp(mod.Command)
	if err != nil {
		logger.Warnw(ctx, "Meter mod command not supported", log.Fields{"Device": mmu.GetId(), "Command": mod.Command})
		return nil, errorcodes.ErrOperationNotSupported
	}
	logger.Debugw(ctx, "Received meter mod", log.Fields{"Device": mmu.GetId(), "MeterID": mod.MeterId, "Command": cmd})

	var bands []of.Band
	if cmd != of.MeterCommandDel {
		if bands, err = of.BandsFromOfp(mod.Bands); err != nil {
			logger.Warnw(ctx, "Invalid meter bands", log.Fields{"MeterID": mod.MeterId, "Command": cmd, "Reason": err.Error()})
			return nil, errorcodes.ErrInvalidParamInRequest
		}
	}

	switch cmd {
	case of.MeterCommandAdd:
		err = ms.mm.Create(ctx, mod.MeterId, of.FlagsFromOfp(mod.Flags), bands)
	case of.MeterCommandMod:
		err = ms.mm.Update(ctx, mod.MeterId, bands)
	case of.MeterCommandDel:
		err = ms.mm.Delete(ctx, mod.MeterId)
	}
	if err != nil {
		gerr := errorcodes.ConvertMeterError(err)
		code, msg := errorcodes.GetErrorInfo(gerr)
		logger.Warnw(ctx, "Meter mod failed", log.Fields{"MeterID": mod.MeterId, "Command": cmd, "Code": code, "Reason": msg})
		return nil, gerr
	}
	return &empty.Empty{}, nil
}

// ListLogicalDeviceMeters returns the meter table
func (ms *meterService) ListLogicalDeviceMeters(ctx context.Context, id *common.ID) (*ofp.Meters, error) {
	meters := ms.mm.List()
	resp := &ofp.Meters{Items: make([]*ofp.OfpMeterEntry, 0, len(meters))}
	for _, m := range meters {
		resp.Items = append(resp.Items, &ofp.OfpMeterEntry{Config: of.MeterConfigToOfp(m)})
	}
	logger.Debugw(ctx, "Listed meters", log.Fields{"Device": id.GetId(), "Count": len(resp.Items)})
	return resp, nil
}
