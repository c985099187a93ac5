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

// Package errorcodes maps meter controller failures onto the error codes of the northbound protocols.
package errorcodes

import (
	"errors"
	"net/http"

	"meter-go-controller/internal/pkg/meter"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NBErrorCode represents the error code for the error.
type NBErrorCode int

const (
	// VolthaErrorMessageFormat represents the format in which the Voltha accepts the errors.
	VolthaErrorMessageFormat = "code = %d, desc = %s"
)

// List of error messages returned to the northbound.
var (
	// ErrOperationNotSupported is returned when the operation is not supported
	ErrOperationNotSupported = status.Errorf(codes.Unimplemented, VolthaErrorMessageFormat, UnsupportedOperation, "Operation not supported")
	// ErrFailedToEncodeConfig is returned when the data json marshal fails
	ErrFailedToEncodeConfig = status.Errorf(codes.Internal, VolthaErrorMessageFormat, MessageEncodeFailed, "Failed to encode data")
	// ErrFailedToDecodeConfig is returned when the data json unmarshal fails
	ErrFailedToDecodeConfig = status.Errorf(codes.InvalidArgument, VolthaErrorMessageFormat, MessageDecodeFailed, "Failed to decode data")
	// ErrInvalidParamInRequest is returned when the request contains invalid configuration
	ErrInvalidParamInRequest = status.Errorf(codes.InvalidArgument, VolthaErrorMessageFormat, InvalidArgument, "Received invalid configuration in request")
	// ErrMeterExists is returned when the meter id is already in use
	ErrMeterExists = status.Errorf(codes.AlreadyExists, VolthaErrorMessageFormat, ResourceAlreadyExists, "Meter already exists")
	// ErrMeterNotFound is returned when the meter id is unknown
	ErrMeterNotFound = status.Errorf(codes.NotFound, VolthaErrorMessageFormat, ResourceNotFound, "Meter not found")
	// ErrSettingNotFound is returned when the setting name is unknown
	ErrSettingNotFound = status.Errorf(codes.NotFound, VolthaErrorMessageFormat, ResourceNotFound, "Setting not found")
)

const (
	//Success is returned when there is no error - 0
	Success NBErrorCode = iota
	//InvalidURL is returned when the URL specified for the request is invalid - 1
	InvalidURL
	//MissingArgument is returned when the mandatory/conditionally mandatory argument is missing - 2
	MissingArgument
	//ResourceAlreadyExists is returned when the resource already exists and create for the same is not allowed - 3
	ResourceAlreadyExists
	//ResourceNotFound is returned when the resource is not found - 4
	ResourceNotFound
	//MethodNotAllowed is returned when the requested method is not allowed - 5
	MethodNotAllowed
	//MessageEncodeFailed is returned when Message encoding failed - 6
	MessageEncodeFailed
	//MessageDecodeFailed is returned when Message decoding failed - 7
	MessageDecodeFailed
	//VolthaInternalError is returned when Internal error occurred - 8
	VolthaInternalError
	//InvalidArgument is returned when the argument provided is invalid - 9
	InvalidArgument
	//InvalidPayload is returned when the configuration payload is invalid - 10
	InvalidPayload
	//UnsupportedOperation is returned when the request operation is not supported - 11
	UnsupportedOperation
	// UnsupportedParameter is returned when un supported field is provided in request - 12
	UnsupportedParameter
)

// NBErrorCodeMap converts error code to error description string
var NBErrorCodeMap = map[NBErrorCode]string{
	Success:               "Success",
	InvalidURL:            "INVALID_URL",
	MissingArgument:       "MISSING_ARGUMENT",
	ResourceAlreadyExists: "RESOURCE_ALREADY_EXISTS",
	ResourceNotFound:      "RESOURCE_NOT_FOUND",
	MethodNotAllowed:      "METHOD_NOT_ALLOWED",
	MessageEncodeFailed:   "MESSAGE_ENCODE_FAILED",
	MessageDecodeFailed:   "MESSAGE_DECODE_FAILED",
	VolthaInternalError:   "INTERNAL_ERROR",
	InvalidArgument:       "INVALID_ARGUMENT",
	InvalidPayload:        "INVALID_PAYLOAD",
	UnsupportedOperation:  "UNSUPPORTED_OPERATION",
	UnsupportedParameter:  "UNSUPPORTED_PARAMETER",
}

// NBErrorCodeToHTTPStatusMap contains mapping of NB error codes to http status codes
var NBErrorCodeToHTTPStatusMap = map[NBErrorCode]int{
	Success:               http.StatusOK,
	InvalidURL:            http.StatusBadRequest,
	MissingArgument:       http.StatusBadRequest,
	ResourceAlreadyExists: http.StatusConflict,
	ResourceNotFound:      http.StatusNotFound,
	MethodNotAllowed:      http.StatusMethodNotAllowed,
	MessageEncodeFailed:   http.StatusInternalServerError,
	MessageDecodeFailed:   http.StatusBadRequest,
	VolthaInternalError:   http.StatusInternalServerError,
	InvalidArgument:       http.StatusBadRequest,
	InvalidPayload:        http.StatusBadRequest,
	UnsupportedOperation:  http.StatusBadRequest,
	UnsupportedParameter:  http.StatusBadRequest,
}

// MeterErrorCode classifies a meter lifecycle failure
func MeterErrorCode(err error) NBErrorCode {
	var ute *meter.UnsupportedBandTypeError
	switch {
	case err == nil:
		return Success
	case errors.Is(err, meter.ErrMeterExists):
		return ResourceAlreadyExists
	case errors.Is(err, meter.ErrMeterNotFound):
		return ResourceNotFound
	case errors.As(err, &ute):
		return UnsupportedParameter
	case errors.Is(err, meter.ErrInvalidMeter):
		return InvalidArgument
	}
	return VolthaInternalError
}

// ConvertMeterError converts a meter lifecycle failure to a grpc status error
func ConvertMeterError(err error) error {
	if err == nil {
		return nil
	}
	code := MeterErrorCode(err)
	var gc codes.Code
	switch code {
	case ResourceAlreadyExists:
		return ErrMeterExists
	case ResourceNotFound:
		return ErrMeterNotFound
	case UnsupportedParameter, InvalidArgument:
		gc = codes.InvalidArgument
	default:
		gc = codes.Internal
	}
	return status.Errorf(gc, VolthaErrorMessageFormat, code, err.Error())
}

// HTTPStatus returns the http status code for an NB error code
func HTTPStatus(code NBErrorCode) int {
	if st, ok := NBErrorCodeToHTTPStatusMap[code]; ok {
		return st
	}
	return http.StatusInternalServerError
}

// GetErrorInfo - parses the error details from err structure
// Return statusCode (uint32) - Error code [0 - Success]
// status Msg (string) - Error Msg
func GetErrorInfo(err error) (uint32, string) {
	var statusCode uint32
	var statusMsg string
	if status, _ := status.FromError(err); status != nil {
		statusCode = uint32(status.Code())
		statusMsg = status.Message()
	} else {
		statusCode = 0
	}
	return statusCode, statusMsg
}
