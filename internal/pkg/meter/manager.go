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

// Package meter builds validated meter descriptors and owns the meter table.
package meter

import (
	"context"
	"errors"
	"sort"
	"sync"

	"meter-go-controller/internal/pkg/metrics"
	"meter-go-controller/internal/pkg/of"
	"meter-go-controller/log"
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

// Lifecycle operation names used in logs and metrics
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Manager owns the meter table. Every mutation runs under one exclusive
// lock, including the descriptor build, so a failed create or update
// never leaves a partial entry behind.
type Manager struct {
	meters    map[uint32]*of.Meter
	meterLock sync.RWMutex
}

// NewManager is the constructor for Manager
func NewManager() *Manager {
	var mm Manager
	mm.meters = make(map[uint32]*of.Meter)
	return &mm
}

// Create builds the meter and adds it to the table
func (mm *Manager) Create(cntx context.Context, id uint32, flags of.MeterFlags, bands []of.Band) error {
	logger.Debugw(cntx, "Create meter", log.Fields{"MeterID": id, "Flags": flags, "Bands": len(bands)})
	mm.meterLock.Lock()
	defer mm.meterLock.Unlock()
	if _, ok := mm.meters[id]; ok {
		observe(OpCreate, ErrMeterExists)
		return ErrMeterExists
	}
	m, err := Build(cntx, id, flags, bands)
	if err != nil {
		err = invalid(err)
		observe(OpCreate, err)
		return err
	}
	mm.meters[id] = m
	metrics.MetersConfigured.Set(float64(len(mm.meters)))
	observe(OpCreate, nil)
	return nil
}

// Update rebuilds the meter with the new bands and the flags it was
// created with. The stored descriptor is replaced only when the build
// succeeds.
func (mm *Manager) Update(cntx context.Context, id uint32, bands []of.Band) error {
	logger.Debugw(cntx, "Update meter", log.Fields{"MeterID": id, "Bands": len(bands)})
	mm.meterLock.Lock()
	defer mm.meterLock.Unlock()
	cur, ok := mm.meters[id]
	if !ok {
		observe(OpUpdate, ErrMeterNotFound)
		return ErrMeterNotFound
	}
	m, err := Build(cntx, id, cur.Flags, bands)
	if err != nil {
		err = invalid(err)
		observe(OpUpdate, err)
		return err
	}
	mm.meters[id] = m
	observe(OpUpdate, nil)
	return nil
}

// Delete removes the meter from the table
func (mm *Manager) Delete(cntx context.Context, id uint32) error {
	logger.Debugw(cntx, "Delete meter", log.Fields{"MeterID": id})
	mm.meterLock.Lock()
	defer mm.meterLock.Unlock()
	if _, ok := mm.meters[id]; !ok {
		observe(OpDelete, ErrMeterNotFound)
		return ErrMeterNotFound
	}
	delete(mm.meters, id)
	metrics.MetersConfigured.Set(float64(len(mm.meters)))
	observe(OpDelete, nil)
	return nil
}

// Get returns a copy of the stored descriptor
func (mm *Manager) Get(id uint32) (*of.Meter, error) {
	mm.meterLock.RLock()
	defer mm.meterLock.RUnlock()
	if m, ok := mm.meters[id]; ok {
		return m.Clone(), nil
	}
	return nil, ErrMeterNotFound
}

// List returns copies of all descriptors ordered by meter id
func (mm *Manager) List() []*of.Meter {
	mm.meterLock.RLock()
	meters := make([]*of.Meter, 0, len(mm.meters))
	for _, m := range mm.meters {
		meters = append(meters, m.Clone())
	}
	mm.meterLock.RUnlock()
	sort.Slice(meters, func(i, j int) bool { return meters[i].ID < meters[j].ID })
	return meters
}

// Count returns the number of meters in the table
func (mm *Manager) Count() int {
	mm.meterLock.RLock()
	defer mm.meterLock.RUnlock()
	return len(mm.meters)
}

func observe(op string, err error) {
	result := metrics.ResultSuccess
	switch {
	case err == nil:
	case errors.Is(err, ErrMeterExists):
		result = metrics.ResultExists
	case errors.Is(err, ErrMeterNotFound):
		result = metrics.ResultNotFound
	default:
		result = metrics.ResultInvalid
	}
	metrics.LifecycleOperations.WithLabelValues(op, result).Inc()
}
