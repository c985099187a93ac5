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

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"meter-go-controller/database"
	"meter-go-controller/internal/test/mocks"

	"github.com/golang/mock/gomock"
	"github.com/opencord/voltha-lib-go/v7/pkg/db/kvstore"
	"github.com/stretchr/testify/assert"
)

func newDefaults(t *testing.T) *Registry {
	r := NewRegistry()
	assert.Nil(t, RegisterDefaults(r))
	return r
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Register("a", "1", "first"))
	err := r.Register("a", "2", "again")
	assert.True(t, errors.Is(err, ErrDuplicateSetting))
	v, ok := r.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	_, ok = r.Lookup("b")
	assert.False(t, ok)
}

func TestRegistry_Set(t *testing.T) {
	r := newDefaults(t)
	assert.Nil(t, r.Set(RestAddress, ":9000"))
	s, ok := r.Get(RestAddress)
	assert.True(t, ok)
	assert.Equal(t, ":9000", s.Value)
	assert.Equal(t, ":8181", s.Default)

	err := r.Set("no.such", "x")
	assert.True(t, errors.Is(err, ErrUnknownSetting))
}

func TestRegistry_TypedGetters(t *testing.T) {
	r := newDefaults(t)
	size, err := r.GetInt(GrpcMaxMsgSize)
	assert.Nil(t, err)
	assert.Equal(t, 17455678, size)

	enabled, err := r.GetBool(ProbeEnabled)
	assert.Nil(t, err)
	assert.True(t, enabled)

	d, err := r.GetDuration(HealthInterval)
	assert.Nil(t, err)
	assert.Equal(t, 30*time.Second, d)

	assert.Nil(t, r.Set(ProbeEnabled, "maybe"))
	_, err = r.GetBool(ProbeEnabled)
	assert.NotNil(t, err)

	_, err = r.GetInt("missing")
	assert.True(t, errors.Is(err, ErrUnknownSetting))
	_, err = r.GetDuration("missing")
	assert.True(t, errors.Is(err, ErrUnknownSetting))
}

func TestRegistry_Enumerate(t *testing.T) {
	r := newDefaults(t)
	all := r.Enumerate()
	assert.Len(t, all, len(defaults))
	for i := 1; i < len(all); i++ {
		assert.True(t, all[i-1].Name < all[i].Name)
	}
}

func TestRegistry_LoadFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	assert.Nil(t, os.WriteFile(good, []byte("nbi.rest.address: \":8282\"\nprobe.enabled: \"false\"\n"), 0o600))
	bad := filepath.Join(dir, "bad.yaml")
	assert.Nil(t, os.WriteFile(bad, []byte("unknown.key: x\n"), 0o600))

	r := newDefaults(t)
	assert.Nil(t, r.LoadFile(good))
	v, _ := r.Lookup(RestAddress)
	assert.Equal(t, ":8282", v)
	enabled, _ := r.GetBool(ProbeEnabled)
	assert.False(t, enabled)

	err := r.LoadFile(bad)
	assert.True(t, errors.Is(err, ErrUnknownSetting))
	assert.NotNil(t, r.LoadFile(filepath.Join(dir, "absent.yaml")))
	assert.NotNil(t, r.Load([]byte("- not\n- a map\n")))
}

func TestRegistry_Sync(t *testing.T) {
	cntx := context.Background()
	t.Run("stored values applied and written back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		db := mocks.NewMockDBIntf(ctrl)
		key := database.GetKeyPath(database.SettingsPath) + RestAddress
		db.EXPECT().GetSettings(cntx).Return(map[string]*kvstore.KVPair{
			key:         {Key: key, Value: []byte(":7070")},
			"stale/key": {Key: "stale/key", Value: []byte("x")},
		}, nil)
		db.EXPECT().PutSetting(cntx, gomock.Any(), gomock.Any()).Return(nil).Times(len(defaults))

		r := newDefaults(t)
		assert.Nil(t, r.Sync(cntx, db))
		v, _ := r.Lookup(RestAddress)
		assert.Equal(t, ":7070", v)
	})
	t.Run("empty store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		db := mocks.NewMockDBIntf(ctrl)
		db.EXPECT().GetSettings(cntx).Return(nil, database.ErrValueNotFound)
		db.EXPECT().PutSetting(cntx, RestAddress, ":8181").Return(nil)
		db.EXPECT().PutSetting(cntx, gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		r := newDefaults(t)
		assert.Nil(t, r.Sync(cntx, db))
	})
	t.Run("read failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		db := mocks.NewMockDBIntf(ctrl)
		db.EXPECT().GetSettings(cntx).Return(nil, errors.New("kv down"))

		r := newDefaults(t)
		assert.NotNil(t, r.Sync(cntx, db))
	})
	t.Run("write failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		db := mocks.NewMockDBIntf(ctrl)
		db.EXPECT().GetSettings(cntx).Return(nil, nil)
		db.EXPECT().PutSetting(cntx, gomock.Any(), gomock.Any()).Return(errors.New("kv down"))

		r := newDefaults(t)
		assert.NotNil(t, r.Sync(cntx, db))
	})
}
