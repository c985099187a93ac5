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

package errorcodes

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"meter-go-controller/internal/pkg/meter"
	"meter-go-controller/internal/pkg/of"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestConvertMeterError(t *testing.T) {
	mm := meter.NewManager()
	cntx := context.Background()
	invalidErr := mm.Create(cntx, 1, 0, []of.Band{{Type: 99}})

	tests := []struct {
		name     string
		err      error
		wantCode codes.Code
		wantNB   NBErrorCode
		wantHTTP int
	}{
		{name: "exists", err: meter.ErrMeterExists, wantCode: codes.AlreadyExists, wantNB: ResourceAlreadyExists, wantHTTP: http.StatusConflict},
		{name: "not found", err: meter.ErrMeterNotFound, wantCode: codes.NotFound, wantNB: ResourceNotFound, wantHTTP: http.StatusNotFound},
		{name: "unsupported band", err: invalidErr, wantCode: codes.InvalidArgument, wantNB: UnsupportedParameter, wantHTTP: http.StatusBadRequest},
		{name: "other", err: errors.New("boom"), wantCode: codes.Internal, wantNB: VolthaInternalError, wantHTTP: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantNB, MeterErrorCode(tt.err))
			assert.Equal(t, tt.wantHTTP, HTTPStatus(MeterErrorCode(tt.err)))
			st, ok := status.FromError(ConvertMeterError(tt.err))
			assert.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
		})
	}
	assert.Equal(t, ErrMeterExists, ConvertMeterError(meter.ErrMeterExists))
	assert.Equal(t, ErrMeterNotFound, ConvertMeterError(meter.ErrMeterNotFound))
	assert.Nil(t, ConvertMeterError(nil))
	assert.Equal(t, Success, MeterErrorCode(nil))
}

func TestGetErrorInfo(t *testing.T) {
	code, msg := GetErrorInfo(ErrMeterNotFound)
	assert.Equal(t, uint32(codes.NotFound), code)
	assert.Contains(t, msg, "Meter not found")
	code, _ = GetErrorInfo(nil)
	assert.Equal(t, uint32(codes.OK), code)
}
