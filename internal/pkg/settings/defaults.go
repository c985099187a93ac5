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

package settings

// Names of the settings registered by the controller
const (
	RestAddress    = "nbi.rest.address"
	GrpcAddress    = "nbi.grpc.address"
	GrpcMaxMsgSize = "nbi.grpc.max-msg-size"
	PprofAddress   = "pprof.address"
	ProbeEnabled   = "probe.enabled"
	HealthInterval = "health.interval"
)

var defaults = []Setting{
	{Name: RestAddress, Default: ":8181", Description: "listen address of the REST northbound"},
	{Name: GrpcAddress, Default: ":50070", Description: "listen address of the meter mod gRPC northbound"},
	{Name: GrpcMaxMsgSize, Default: "17455678", Description: "maximum gRPC message size in bytes"},
	{Name: PprofAddress, Default: "0.0.0.0:6060", Description: "listen address of the profiling endpoint"},
	{Name: ProbeEnabled, Default: "true", Description: "serve liveness and readiness probes"},
	{Name: HealthInterval, Default: "30s", Description: "interval between health updates in the KV store"},
}

// RegisterDefaults registers the settings used by the controller
func RegisterDefaults(r *Registry) error {
	for _, s := range defaults {
		if err := r.Register(s.Name, s.Default, s.Description); err != nil {
			return err
		}
	}
	return nil
}
