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

package meter

import (
	"errors"
	"fmt"

	"meter-go-controller/internal/pkg/of"
)

var (
	// ErrMeterExists is returned when creating a meter whose id is already in use
	ErrMeterExists = errors.New("meter already exists")
	// ErrMeterNotFound is returned when updating or deleting an unknown meter
	ErrMeterNotFound = errors.New("meter not found")
	// ErrInvalidMeter wraps a descriptor build failure during create or update
	ErrInvalidMeter = errors.New("invalid meter")
)

// UnsupportedBandTypeError is returned by Build when a band type outside
// drop, DSCP remark and color set is supplied
type UnsupportedBandTypeError struct {
	Type of.BandType
}

func (e *UnsupportedBandTypeError) Error() string {
	return fmt.Sprintf("unsupported band type %d", uint32(e.Type))
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidMeter, err)
}
