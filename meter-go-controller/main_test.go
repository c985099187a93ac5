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
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"meter-go-controller/database"
	"meter-go-controller/internal/pkg/meter"
	"meter-go-controller/internal/pkg/of"
	"meter-go-controller/internal/pkg/settings"
	"meter-go-controller/internal/test/mocks"
	"meter-go-controller/log"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestParseEnvironmentVariables(t *testing.T) {
	t.Setenv("KV_STORE_TYPE", "redis")
	t.Setenv("KV_STORE_HOST", "kv")
	t.Setenv("KV_STORE_PORT", "6379")
	t.Setenv("PROBE_PORT", "")
	t.Setenv("SETTINGS_FILE", "/etc/mgc/settings.yaml")

	config := newMGCFlags()
	config.parseEnvironmentVariables()
	assert.Equal(t, "redis", config.KVStoreType)
	assert.Equal(t, "kv:6379", config.KVStoreEndPoint)
	assert.Equal(t, ":8090", config.ProbeEndPoint)
	assert.Equal(t, "/etc/mgc/settings.yaml", config.SettingsFile)
}

func TestApplyStoredLogLevel(t *testing.T) {
	t.Run("nothing stored writes current level", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dbIntf := mocks.NewMockDBIntf(ctrl)
		dbIntf.EXPECT().GetLogLevel(ctx).Return("", database.ErrValueNotFound)
		dbIntf.EXPECT().PutLogLevel(ctx, "INFO").Return(nil)
		applyStoredLogLevel(ctx, dbIntf, log.InfoLevel)
	})
	t.Run("stored level kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		dbIntf := mocks.NewMockDBIntf(ctrl)
		dbIntf.EXPECT().GetLogLevel(ctx).Return("WARN", nil)
		applyStoredLogLevel(ctx, dbIntf, log.InfoLevel)
	})
}

func TestSetupSettings(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "settings.yaml")
	assert.Nil(t, os.WriteFile(file, []byte("nbi.grpc.address: \":50080\"\n"), 0o600))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	dbIntf := mocks.NewMockDBIntf(ctrl)
	dbIntf.EXPECT().GetSettings(ctx).Return(nil, database.ErrValueNotFound)
	dbIntf.EXPECT().PutSetting(ctx, gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	reg, err := setupSettings(ctx, &MGCFlags{SettingsFile: file}, dbIntf)
	assert.Nil(t, err)
	v, _ := reg.Lookup(settings.GrpcAddress)
	assert.Equal(t, ":50080", v)

	_, err = setupSettings(ctx, &MGCFlags{SettingsFile: filepath.Join(dir, "absent.yaml")}, dbIntf)
	assert.NotNil(t, err)
}

func TestWriteHealth(t *testing.T) {
	mm := meter.NewManager()
	assert.Nil(t, mm.Create(ctx, 1, 0, []of.Band{of.NewDropBand(1, 1)}))
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	dbIntf := mocks.NewMockDBIntf(ctrl)
	var stored string
	dbIntf.EXPECT().PutHealth(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, value string) error {
		stored = value
		return nil
	})
	assert.Nil(t, writeHealth(ctx, dbIntf, mm, now))

	var h HealthInfo
	assert.Nil(t, json.Unmarshal([]byte(stored), &h))
	assert.Equal(t, 1, h.Meters)
	assert.True(t, now.Equal(h.Timestamp))

	dbIntf.EXPECT().PutHealth(ctx, gomock.Any()).Return(errors.New("kv down"))
	assert.NotNil(t, writeHealth(ctx, dbIntf, mm, now))
}
