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

package commands

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"meter-go-controller/meter-go-controller/cli/config"
	"meter-go-controller/meter-go-controller/cli/database"
)

// output receives the rendered tables
var output io.Writer = os.Stdout

// getKVClient returns the client used by the database based commands
var getKVClient = func() (database.Client, error) {
	return database.GetRedisClient()
}

// apiBaseURL returns the REST endpoint of the controller
var apiBaseURL = func() string {
	cfg := config.NewConfig()
	cfg.ParseEnvironmentVariables()
	return strings.TrimRight(cfg.RestEndPoint, "/")
}

// GetAPIData fetches data for api by url path.
func GetAPIData(path string) ([]byte, error) {
	mgcClient := http.Client{
		Timeout: time.Second * 2, // Timeout after 2 seconds
	}

	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("Error sending api command request : %s", err)
	}

	resp, getErr := mgcClient.Do(req)
	if getErr != nil {
		return nil, fmt.Errorf("Error fetching the api command output details: %s", getErr)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("Error while reading api command output details: %s", readErr)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
