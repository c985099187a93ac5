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
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	errorCodes "meter-go-controller/internal/pkg/errorcodes"
	"meter-go-controller/internal/pkg/of"
	"meter-go-controller/log"

	"github.com/gorilla/mux"
)

// MeterTable is the set of meter lifecycle operations served over REST
type MeterTable interface {
	Create(cntx context.Context, id uint32, flags of.MeterFlags, bands []of.Band) error
	Update(cntx context.Context, id uint32, bands []of.Band) error
	Delete(cntx context.Context, id uint32) error
	Get(id uint32) (*of.Meter, error)
	List() []*of.Meter
}

// MetersHandle serves the meter table
type MetersHandle struct {
	MeterManager MeterTable
}

// MeterServeHTTP to serve http request
func (mh *MetersHandle) MeterServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	meterID := vars["id"]

	logger.Infow(ctx, "Received-northbound-request", log.Fields{"Method": r.Method, "URL": r.URL, "meterID": meterID})
	switch {
	case r.Method == cGet && meterID != "":
		mh.GetMeter(context.Background(), meterID, w, r)
	case r.Method == cGet:
		mh.GetAllMeters(context.Background(), w, r)
	case r.Method == cPost && meterID == "":
		mh.AddMeter(context.Background(), w, r)
	case r.Method == cPut && meterID != "":
		mh.UpdateMeter(context.Background(), meterID, w, r)
	case r.Method == cDelete && meterID != "":
		mh.DelMeter(context.Background(), meterID, w, r)
	default:
		logger.Warnw(ctx, "Unsupported Method", log.Fields{"Method": r.Method, "meterID": meterID})
		http.Error(w, errorCodes.ErrOperationNotSupported.Error(), http.StatusMethodNotAllowed)
	}
}

// GetMeter returns a single meter
func (mh *MetersHandle) GetMeter(cntx context.Context, meterID string, w http.ResponseWriter, r *http.Request) {
	id, ok := parseMeterID(meterID, w)
	if !ok {
		return
	}
	m, err := mh.MeterManager.Get(id)
	if err != nil {
		logger.Warnw(ctx, "Failed to get meter", log.Fields{"MeterID": id, "Reason": err.Error()})
		writeMeterError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MeterObjectMapping(m))
}

// GetAllMeters returns all meters ordered by id
func (mh *MetersHandle) GetAllMeters(cntx context.Context, w http.ResponseWriter, r *http.Request) {
	metersList := MeterList{Meters: []MeterInfo{}}
	for _, m := range mh.MeterManager.List() {
		metersList.Meters = append(metersList.Meters, MeterObjectMapping(m))
	}
	writeJSON(w, http.StatusOK, metersList)
	logger.Debugw(ctx, "Fetching all meters", log.Fields{"Count": len(metersList.Meters)})
}

// AddMeter creates the meter described by the request body
func (mh *MetersHandle) AddMeter(cntx context.Context, w http.ResponseWriter, r *http.Request) {
	req, ok := decodeMeterInfo(w, r)
	if !ok {
		return
	}
	id, ok := parseMeterID(req.ID, w)
	if !ok {
		return
	}
	bands, err := BandsFromInfo(req.Bands)
	if err != nil {
		logger.Warnw(ctx, "Invalid band in request", log.Fields{"MeterID": id, "Reason": err.Error()})
		http.Error(w, err.Error(), errorCodes.HTTPStatus(errorCodes.InvalidPayload))
		return
	}
	if err = mh.MeterManager.Create(cntx, id, of.MeterFlags(req.Flags), bands); err != nil {
		logger.Warnw(ctx, "Failed to create meter", log.Fields{"MeterID": id, "Reason": err.Error()})
		writeMeterError(w, err)
		return
	}
	mh.writeStoredMeter(w, http.StatusCreated, id)
}

// UpdateMeter replaces the bands of an existing meter
func (mh *MetersHandle) UpdateMeter(cntx context.Context, meterID string, w http.ResponseWriter, r *http.Request) {
	id, ok := parseMeterID(meterID, w)
	if !ok {
		return
	}
	req, ok := decodeMeterInfo(w, r)
	if !ok {
		return
	}
	bands, err := BandsFromInfo(req.Bands)
	if err != nil {
		logger.Warnw(ctx, "Invalid band in request", log.Fields{"MeterID": id, "Reason": err.Error()})
		http.Error(w, err.Error(), errorCodes.HTTPStatus(errorCodes.InvalidPayload))
		return
	}
	if err = mh.MeterManager.Update(cntx, id, bands); err != nil {
		logger.Warnw(ctx, "Failed to update meter", log.Fields{"MeterID": id, "Reason": err.Error()})
		writeMeterError(w, err)
		return
	}
	mh.writeStoredMeter(w, http.StatusOK, id)
}

// DelMeter removes a meter
func (mh *MetersHandle) DelMeter(cntx context.Context, meterID string, w http.ResponseWriter, r *http.Request) {
	id, ok := parseMeterID(meterID, w)
	if !ok {
		return
	}
	if err := mh.MeterManager.Delete(cntx, id); err != nil {
		logger.Warnw(ctx, "Failed to delete meter", log.Fields{"MeterID": id, "Reason": err.Error()})
		writeMeterError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// writeStoredMeter answers with the meter as it is stored now. A meter
// removed by a concurrent delete is reported as not found.
func (mh *MetersHandle) writeStoredMeter(w http.ResponseWriter, status int, id uint32) {
	m, err := mh.MeterManager.Get(id)
	if err != nil {
		logger.Warnw(ctx, "Meter removed before response", log.Fields{"MeterID": id, "Reason": err.Error()})
		writeMeterError(w, err)
		return
	}
	writeJSON(w, status, MeterObjectMapping(m))
}

func parseMeterID(meterID string, w http.ResponseWriter) (uint32, bool) {
	mID, err := strconv.ParseUint(meterID, 10, 32)
	if err != nil {
		logger.Errorw(ctx, "Failed to parse meterID from string to uint32", log.Fields{"Meter ID": meterID, "Reason": err.Error()})
		http.Error(w, errorCodes.ErrInvalidParamInRequest.Error(), errorCodes.HTTPStatus(errorCodes.InvalidArgument))
		return 0, false
	}
	return uint32(mID), true
}

func decodeMeterInfo(w http.ResponseWriter, r *http.Request) (*MeterInfo, bool) {
	d := new(bytes.Buffer)
	if _, err := d.ReadFrom(r.Body); err != nil {
		logger.Errorw(ctx, "Error reading buffer", log.Fields{"Reason": err.Error()})
		http.Error(w, errorCodes.ErrFailedToDecodeConfig.Error(), errorCodes.HTTPStatus(errorCodes.MessageDecodeFailed))
		return nil, false
	}
	req := &MeterInfo{}
	if err := json.Unmarshal(d.Bytes(), req); err != nil {
		logger.Errorw(ctx, "Failed to Unmarshal request", log.Fields{"req": d.String(), "Reason": err.Error()})
		http.Error(w, errorCodes.ErrFailedToDecodeConfig.Error(), errorCodes.HTTPStatus(errorCodes.MessageDecodeFailed))
		return nil, false
	}
	return req, true
}

func writeMeterError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), errorCodes.HTTPStatus(errorCodes.MeterErrorCode(err)))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		logger.Errorw(ctx, "Error occurred while marshaling response", log.Fields{"Error": err})
		http.Error(w, errorCodes.ErrFailedToEncodeConfig.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(b); err != nil {
		logger.Errorw(ctx, "error in sending response", log.Fields{"Error": err})
	}
}
