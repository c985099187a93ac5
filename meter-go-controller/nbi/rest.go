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
	"context"
	"net/http"

	"meter-go-controller/internal/pkg/meter"
	"meter-go-controller/internal/pkg/settings"
	"meter-go-controller/log"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var logger log.CLogger
var ctx = context.TODO()

const (
	MetersPath     string = "/meters"
	MetersByIDPath string = "/meters/{id}"
	SettingsPath   string = "/settings"
	SettingPath    string = "/settings/{name}"
	MetricsPath    string = "/metrics"
)

const (
	cPost   = "POST"
	cGet    = "GET"
	cPut    = "PUT"
	cDelete = "DELETE"
)

// NewRouter builds the REST routes of the controller
func NewRouter(mm *meter.Manager, reg *settings.Registry) *mux.Router {
	mu := mux.NewRouter()
	mh := &MetersHandle{MeterManager: mm}
	sh := &SettingsHandle{Registry: reg}
	mu.HandleFunc(MetersPath, mh.MeterServeHTTP)
	mu.HandleFunc(MetersByIDPath, mh.MeterServeHTTP)
	mu.HandleFunc(SettingsPath, sh.ServeHTTP)
	mu.HandleFunc(SettingPath, sh.ServeHTTP)
	mu.Handle(MetricsPath, promhttp.Handler())
	return mu
}

// RestStart to execute for API
func RestStart(address string, handler http.Handler) {
	logger.Infow(ctx, "Rest Server Starting...", log.Fields{"Address": address})
	err := http.ListenAndServe(address, handler)
	logger.Infow(ctx, "Rest Server Stopped", log.Fields{"Error": err})
}

func init() {
	// Setup this package so that it's log level can be modified at run time
	var err error
	logger, err = log.AddPackageWithDefaultParam()
	if err != nil {
		panic(err)
	}
}
