//go:build profile
// +build profile

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

// Package pprofcontroller serves the runtime profiles when built with the
// profile tag.
package pprofcontroller

import (
	"context"
	"net/http"

	// using for init
	_ "net/http/pprof"

	"meter-go-controller/log"
)

var logger log.CLogger
var ctx = context.TODO()

// Init serves the profiling endpoints on the given address
func Init(address string) {
	// Setup this package so that it's log level can be modified at run time
	var err error
	logger, err = log.AddPackageWithDefaultParam()
	if err != nil {
		panic(err)
	}
	logger.Warnw(ctx, "Profiling is ENABLED", log.Fields{"Address": address})
	go func() {
		err := http.ListenAndServe(address, nil)
		logger.Errorw(ctx, "Profiling enable FAILURE", log.Fields{"Error": err})
	}()
}
