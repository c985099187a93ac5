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

// Package vpagent serves the VOLTHA meter table API over gRPC.
package vpagent

import (
	"context"
	"errors"
	"net"

	"meter-go-controller/internal/pkg/meter"
	"meter-go-controller/log"

	"github.com/opencord/voltha-lib-go/v7/pkg/probe"
	"google.golang.org/grpc"
)

var logger log.CLogger

func init() {
	// Setup this package so that it's log level can be modified at run time
	var err error
	logger, err = log.AddPackageWithDefaultParam()
	if err != nil {
		panic(err)
	}
}

type vpaEvent byte
type vpaState byte

const (
	vpaEventStart = vpaEvent(iota)
	vpaEventServing
	vpaEventStopped
	vpaEventError

	vpaStateServing = vpaState(iota)
	vpaStateStarting
	vpaStateStopped
)

// ProbeService is the name under which the agent reports to the probe
const ProbeService = "nbi-grpc"

// VPAgent structure
type VPAgent struct {
	MeterManager *meter.Manager
	server       *grpc.Server
	events       chan vpaEvent
	GrpcAddress  string
	MaxMsgSize   int
}

// NewVPAgent is constructor for VPAgent
func NewVPAgent(config *VPAgent) (*VPAgent, error) {
	if config.MeterManager == nil {
		return nil, errors.New("meter manager not set")
	}
	vpa := VPAgent{
		MeterManager: config.MeterManager,
		GrpcAddress:  config.GrpcAddress,
		MaxMsgSize:   config.MaxMsgSize,
		events:       make(chan vpaEvent, 10),
	}
	if vpa.MaxMsgSize <= 0 {
		logger.Warnw(context.Background(), "grpc message size not valid, setting to default",
			log.Fields{
				"value":   vpa.MaxMsgSize,
				"default": GrpcMaxSize})
		vpa.MaxMsgSize = GrpcMaxSize
	}
	vpa.server = newGrpcServer(vpa.MaxMsgSize, &meterService{mm: vpa.MeterManager})
	return &vpa, nil
}

// Run listens on the configured address and serves until the context is done
func (vpa *VPAgent) Run(ctx context.Context) {
	logger.Debugw(ctx, "Starting GRPC - meter server",
		log.Fields{
			"grpc-address": vpa.GrpcAddress})

	// If the context contains a k8s probe then register services
	p := probe.GetProbeFromContext(ctx)
	if p != nil {
		p.RegisterService(ctx, ProbeService)
	}

	vpa.events <- vpaEventStart
	state := vpaStateStopped

	for {
		select {
		case <-ctx.Done():
			logger.Infow(ctx, "Context Done", log.Fields{"Context": ctx})
			vpa.Stop(ctx)
			if p != nil {
				p.UpdateStatus(ctx, ProbeService, probe.ServiceStatusStopped)
			}
			return
		case event := <-vpa.events:
			switch event {
			case vpaEventStart:
				logger.Debug(ctx, "vpagent-start-event")
				if state != vpaStateStopped {
					continue
				}
				state = vpaStateStarting
				lis, err := net.Listen("tcp", vpa.GrpcAddress)
				if err != nil {
					logger.Fatalw(ctx, "grpc-listen-failed", log.Fields{"error": err, "address": vpa.GrpcAddress})
					return
				}
				go vpa.serve(ctx, lis)

			case vpaEventServing:
				logger.Debug(ctx, "vpagent-serving-event")
				state = vpaStateServing
				if p != nil {
					p.UpdateStatus(ctx, ProbeService, probe.ServiceStatusRunning)
				}

			case vpaEventStopped:
				logger.Debug(ctx, "vpagent-stopped-event")
				state = vpaStateStopped
				if p != nil {
					p.UpdateStatus(ctx, ProbeService, probe.ServiceStatusNotReady)
				}

			case vpaEventError:
				logger.Debug(ctx, "vpagent-error-event")
			default:
				logger.Fatalw(ctx, "vpagent-unknown-event",
					log.Fields{"event": event})
			}
		}
	}
}

// Serve serves the meter API on an already open listener. It blocks until
// the server is stopped.
func (vpa *VPAgent) Serve(ctx context.Context, lis net.Listener) error {
	logger.Infow(ctx, "Serving meter API", log.Fields{"address": lis.Addr().String()})
	err := vpa.server.Serve(lis)
	if errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return err
}

func (vpa *VPAgent) serve(ctx context.Context, lis net.Listener) {
	vpa.events <- vpaEventServing
	if err := vpa.Serve(ctx, lis); err != nil {
		logger.Errorw(ctx, "grpc-serve-failed", log.Fields{"error": err})
		vpa.events <- vpaEventError
	}
	vpa.events <- vpaEventStopped
}

// Stop drains the in flight calls and closes the listener
func (vpa *VPAgent) Stop(ctx context.Context) {
	logger.Debug(ctx, "Stopping meter grpc server")
	vpa.server.GracefulStop()
}
