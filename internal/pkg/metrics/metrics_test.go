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

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	assert.Nil(t, Register(reg))
	// second registration of the same collectors is refused
	assert.NotNil(t, Register(reg))
}

func TestLifecycleOperations(t *testing.T) {
	c := LifecycleOperations.WithLabelValues("create", ResultSuccess)
	before := testutil.ToFloat64(c)
	c.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestUnsupportedBands(t *testing.T) {
	before := testutil.ToFloat64(UnsupportedBands)
	UnsupportedBands.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(UnsupportedBands))
	assert.Equal(t, 1, testutil.CollectAndCount(UnsupportedBands))
}
