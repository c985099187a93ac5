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
// The database holds the operational settings and the log level of the
// meter controller. Meters themselves are never stored. For all database
// operations, the key passed is added to the database base path.

package database

import (
	"context"
	"errors"
	"strings"
	"time"

	"meter-go-controller/log"

	"github.com/opencord/voltha-lib-go/v7/pkg/db/kvstore"
)

var logger log.CLogger

// ErrValueNotFound is returned when the key holds no value
var ErrValueNotFound = errors.New("Value not found")

// Database structure
type Database struct {
	kvc       kvstore.Client
	storeType string
	address   string
}

// Initialize the database module. The database module runs as a singleton
// object and is initialized when the controller is started.
func Initialize(ctx context.Context, storeType string, address string, timeout int) (*Database, error) {
	var err error
	var database Database
	logger.Infow(ctx, "kv-store-type", log.Fields{"store": storeType})
	database.address = address
	database.storeType = storeType
	switch storeType {
	case "redis":
		database.kvc, err = kvstore.NewRedisClient(address, time.Duration(timeout), false)
		return &database, err
	case "etcd":
		database.kvc, err = kvstore.NewEtcdClient(ctx, address, time.Duration(timeout), log.ErrorLevel)
		return &database, err
	}
	return &database, errors.New("unsupported-kv-store")
}

// NewDatabase wraps an already connected kv client
func NewDatabase(kvc kvstore.Client) *Database {
	return &Database{kvc: kvc}
}

// Client returns the underlying kv client
func (db *Database) Client() kvstore.Client {
	return db.kvc
}

// Put to add value to database
func (db *Database) Put(ctx context.Context, fullKeyPath, value string) error {
	return db.kvc.Put(ctx, fullKeyPath, value)
}

// Get to retrieve value from database
func (db *Database) Get(ctx context.Context, key string) (string, error) {
	kv, err := db.kvc.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if kv != nil {
		if b, ok := kv.Value.([]byte); ok {
			return string(b), nil
		}
		if s, ok := kv.Value.(string); ok {
			return s, nil
		}
	}
	return "", ErrValueNotFound
}

// Del to delete value from database
func (db *Database) Del(ctx context.Context, fullPath string) error {
	if err := db.kvc.Delete(ctx, fullPath); err != nil {
		logger.Errorw(ctx, "The path doesn't exist", log.Fields{"key": fullPath, "Error": err})
		return err
	}
	return nil
}

// List to list the values
func (db *Database) List(ctx context.Context, key string) (map[string]*kvstore.KVPair, error) {
	kv, err := db.kvc.List(ctx, key)
	if err != nil {
		return nil, err
	}
	if kv != nil {
		return kv, nil
	}
	return nil, ErrValueNotFound
}

// Settings

// GetSetting to get a single setting value
func (db *Database) GetSetting(ctx context.Context, name string) (string, error) {
	key := GetKeyPath(SettingsPath) + name
	return db.Get(ctx, key)
}

// GetSettings to get all stored settings
func (db *Database) GetSettings(ctx context.Context) (map[string]*kvstore.KVPair, error) {
	key := GetKeyPath(SettingsPath)
	return db.List(ctx, key)
}

// PutSetting to add a setting value
func (db *Database) PutSetting(ctx context.Context, name string, value string) error {
	key := GetKeyPath(SettingsPath) + name
	return db.Put(ctx, key, value)
}

// DelSetting to delete a setting value
func (db *Database) DelSetting(ctx context.Context, name string) error {
	key := GetKeyPath(SettingsPath) + name
	return db.Del(ctx, key)
}

// GetLogLevel to get the stored log level
func (db *Database) GetLogLevel(ctx context.Context) (string, error) {
	return db.Get(ctx, GetKeyPath(LogLevelPath))
}

// PutLogLevel to store the log level
func (db *Database) PutLogLevel(ctx context.Context, level string) error {
	return db.Put(ctx, GetKeyPath(LogLevelPath), level)
}

// GetHealth to get health info
func (db *Database) GetHealth(ctx context.Context) (string, error) {
	return db.Get(ctx, GetKeyPath(HealthPath))
}

// PutHealth to add health info
func (db *Database) PutHealth(ctx context.Context, value string) error {
	return db.Put(ctx, GetKeyPath(HealthPath), value)
}

// SettingName strips the settings base path from a stored key
func SettingName(key string) string {
	return strings.TrimPrefix(key, GetKeyPath(SettingsPath))
}

func init() {
	// Setup this package so that it's log level can be modified at run time
	var err error
	logger, err = log.AddPackageWithDefaultParam()
	if err != nil {
		panic(err)
	}
}
