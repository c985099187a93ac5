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

package main

import (
	"context"
	"encoding/json"
	"time"

	"meter-go-controller/database"
	"meter-go-controller/internal/pkg/meter"
	"meter-go-controller/log"
)

// HealthInfo is the liveness record written to the KV store
type HealthInfo struct {
	Instance  string    `json:"instance"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Meters    int       `json:"meters"`
}

func writeHealth(cntx context.Context, db database.DBIntf, mm *meter.Manager, now time.Time) error {
	h := HealthInfo{
		Instance:  mgcInfo.InstanceID,
		Version:   mgcInfo.Version,
		Timestamp: now.UTC(),
		Meters:    mm.Count(),
	}
	b, err := json.Marshal(h)
	if err != nil {
		return err
	}
	return db.PutHealth(cntx, string(b))
}

// reportHealth refreshes the health record until the context is done
func reportHealth(cntx context.Context, db database.DBIntf, mm *meter.Manager, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if err := writeHealth(cntx, db, mm, time.Now()); err != nil {
			logger.Warnw(cntx, "Health update failed", log.Fields{"Reason": err.Error()})
		}
		select {
		case <-cntx.Done():
			return
		case <-ticker.C:
		}
	}
}
