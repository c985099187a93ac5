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

// Package metrics holds the prometheus collectors of the meter controller.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "mgc"

// Operation results
const (
	ResultSuccess  = "success"
	ResultExists   = "already_exists"
	ResultNotFound = "not_found"
	ResultInvalid  = "invalid"
)

var (
	// LifecycleOperations counts meter create/update/delete calls by outcome
	LifecycleOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "meter_lifecycle_operations_total",
		Help:      "Meter lifecycle operations by operation and result.",
	}, []string{"operation", "result"})

	// UnsupportedBands counts bands rejected by the descriptor builder
	UnsupportedBands = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "meter_unsupported_bands_total",
		Help:      "Bands rejected because their type is not supported.",
	})

	// MetersConfigured tracks the size of the meter table
	MetersConfigured = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "meters_configured",
		Help:      "Number of meters currently in the meter table.",
	})
)

// Register adds the collectors to the given registerer. It is called once at start up.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{LifecycleOperations, UnsupportedBands, MetersConfigured} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
