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

package database

import (
	"context"

	"github.com/opencord/voltha-lib-go/v7/pkg/db/kvstore"
)

var dbObj DBIntf

// DBIntf defines db related methods
type DBIntf interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, fullKeyPath string, value string) error
	Del(ctx context.Context, path string) error
	List(ctx context.Context, key string) (map[string]*kvstore.KVPair, error)
	GetSetting(ctx context.Context, name string) (string, error)
	GetSettings(ctx context.Context) (map[string]*kvstore.KVPair, error)
	PutSetting(ctx context.Context, name string, value string) error
	DelSetting(ctx context.Context, name string) error
	GetLogLevel(ctx context.Context) (string, error)
	PutLogLevel(ctx context.Context, level string) error
	GetHealth(ctx context.Context) (string, error)
	PutHealth(ctx context.Context, value string) error
}

// GetDatabase - returns databse operation based on configuration
func GetDatabase() DBIntf {
	return dbObj
}

// SetDatabase - sets the DB object based on the type
func SetDatabase(df DBIntf) {
	dbObj = df
}
