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

// Package settings is the named key/value registry holding the operational
// tuning of the controller. Settings are registered explicitly at start up,
// may be overridden from a YAML file and are mirrored to the KV store so
// that the command shell can inspect them.
package settings

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"meter-go-controller/database"
	"meter-go-controller/internal/pkg/util"
	"meter-go-controller/log"

	"gopkg.in/yaml.v3"
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

var (
	// ErrDuplicateSetting is returned when a name is registered twice
	ErrDuplicateSetting = errors.New("duplicate setting")
	// ErrUnknownSetting is returned for names that were never registered
	ErrUnknownSetting = errors.New("unknown setting")
)

// Setting is one named entry of the registry
type Setting struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Default     string `json:"default"`
	Description string `json:"description"`
}

// Registry holds the registered settings
type Registry struct {
	settings *util.ConcurrentMap
}

// NewRegistry is the constructor for Registry
func NewRegistry() *Registry {
	return &Registry{settings: util.NewConcurrentMap()}
}

// Register adds a setting with its default value
func (r *Registry) Register(name, defaultValue, description string) error {
	s := &Setting{Name: name, Value: defaultValue, Default: defaultValue, Description: description}
	if !r.settings.SetIfAbsent(name, s) {
		return fmt.Errorf("%w: %s", ErrDuplicateSetting, name)
	}
	return nil
}

// Get returns a copy of the named setting
func (r *Registry) Get(name string) (Setting, bool) {
	v, ok := r.settings.Get(name)
	if !ok {
		return Setting{}, false
	}
	return *v.(*Setting), true
}

// Lookup returns the current value of the named setting
func (r *Registry) Lookup(name string) (string, bool) {
	s, ok := r.Get(name)
	return s.Value, ok
}

// Set replaces the value of a registered setting
func (r *Registry) Set(name, value string) error {
	r.settings.MapLock.Lock()
	defer r.settings.MapLock.Unlock()
	v, ok := r.settings.Get(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSetting, name)
	}
	s := *v.(*Setting)
	s.Value = value
	r.settings.Set(name, &s)
	return nil
}

// Enumerate returns all settings ordered by name
func (r *Registry) Enumerate() []Setting {
	var all []Setting
	r.settings.Range(func(key, value interface{}) bool {
		all = append(all, *value.(*Setting))
		return true
	})
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// GetInt returns the named setting parsed as an integer
func (r *Registry) GetInt(name string) (int, error) {
	v, ok := r.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSetting, name)
	}
	return strconv.Atoi(v)
}

// GetBool returns the named setting parsed as a boolean
func (r *Registry) GetBool(name string) (bool, error) {
	v, ok := r.Lookup(name)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownSetting, name)
	}
	return strconv.ParseBool(v)
}

// GetDuration returns the named setting parsed as a duration
func (r *Registry) GetDuration(name string) (time.Duration, error) {
	v, ok := r.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSetting, name)
	}
	return time.ParseDuration(v)
}

// LoadFile applies the overrides found in a YAML file holding a flat
// name: value mapping. Unknown names abort the load.
func (r *Registry) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return r.Load(b)
}

// Load applies overrides from YAML content
func (r *Registry) Load(b []byte) error {
	overrides := map[string]string{}
	if err := yaml.Unmarshal(b, &overrides); err != nil {
		return err
	}
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := r.Set(name, overrides[name]); err != nil {
			return err
		}
	}
	return nil
}

// Sync applies the overrides stored in the KV store and writes back the
// effective values of all settings.
func (r *Registry) Sync(cntx context.Context, db database.DBIntf) error {
	stored, err := db.GetSettings(cntx)
	if err != nil && !errors.Is(err, database.ErrValueNotFound) {
		return err
	}
	for key, kv := range stored {
		if kv == nil {
			continue
		}
		name := database.SettingName(key)
		var value string
		switch v := kv.Value.(type) {
		case []byte:
			value = string(v)
		case string:
			value = v
		default:
			logger.Warnw(cntx, "The value type is not []byte", log.Fields{"Setting": name})
			continue
		}
		if err := r.Set(name, value); err != nil {
			logger.Warnw(cntx, "Ignoring stored setting", log.Fields{"Setting": name, "Reason": err.Error()})
		}
	}
	for _, s := range r.Enumerate() {
		if err := db.PutSetting(cntx, s.Name, s.Value); err != nil {
			logger.Errorw(cntx, "Write setting to DB failed", log.Fields{"Setting": s.Name, "Reason": err})
			return err
		}
	}
	return nil
}
