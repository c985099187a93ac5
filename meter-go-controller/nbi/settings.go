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
	"net/http"

	errorCodes "meter-go-controller/internal/pkg/errorcodes"
	"meter-go-controller/internal/pkg/settings"
	"meter-go-controller/log"

	"github.com/gorilla/mux"
)

// SettingsHandle serves the settings registry
type SettingsHandle struct {
	Registry *settings.Registry
}

// ServeHTTP to serve http request
func (sh *SettingsHandle) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	logger.Infow(ctx, "Received-northbound-request", log.Fields{"Method": r.Method, "URL": r.URL, "Setting": name})
	switch r.Method {
	case cGet:
		if name != "" {
			sh.GetSetting(name, w)
		} else {
			sh.GetAllSettings(w)
		}
	default:
		logger.Warnw(ctx, "Unsupported Method", log.Fields{"Method": r.Method})
		http.Error(w, errorCodes.ErrOperationNotSupported.Error(), http.StatusMethodNotAllowed)
	}
}

// GetSetting returns one setting
func (sh *SettingsHandle) GetSetting(name string, w http.ResponseWriter) {
	s, ok := sh.Registry.Get(name)
	if !ok {
		logger.Warnw(ctx, "Setting not found", log.Fields{"Setting": name})
		http.Error(w, errorCodes.ErrSettingNotFound.Error(), errorCodes.HTTPStatus(errorCodes.ResourceNotFound))
		return
	}
	writeJSON(w, http.StatusOK, settingInfo(s))
}

// GetAllSettings returns all settings ordered by name
func (sh *SettingsHandle) GetAllSettings(w http.ResponseWriter) {
	resp := SettingList{Settings: []SettingInfo{}}
	for _, s := range sh.Registry.Enumerate() {
		resp.Settings = append(resp.Settings, settingInfo(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

func settingInfo(s settings.Setting) SettingInfo {
	return SettingInfo{Name: s.Name, Value: s.Value, Default: s.Default, Description: s.Description}
}
