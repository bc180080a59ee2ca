// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/vault-sync/internal/utils"
	"github.com/go-resty/resty/v2"
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrUnprocessable,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
	http.StatusGatewayTimeout:      ErrGatewayTimeout,
}

// ResponseError is a non-2xx server response. Message is the "error" field
// of the JSON body, or the raw body when it is not JSON.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// Is matches the sentinel registered for the status code.
func (e *ResponseError) Is(target error) bool {
	sentinel, ok := statusSentinels[e.StatusCode]
	return ok && sentinel == target
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var errBody utils.ErrorBody
	if err := json.Unmarshal(resp.Body(), &errBody); err == nil && errBody.Error != "" {
		body = errBody.Error
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return &ResponseError{StatusCode: resp.StatusCode(), Message: body}
}

func transportError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrTransport, op, err)
}
