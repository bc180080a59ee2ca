// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/vault-sync/internal/app"
	"github.com/MKhiriev/vault-sync/internal/service"
	"github.com/MKhiriev/vault-sync/internal/store"
	"github.com/MKhiriev/vault-sync/internal/utils"
)

// errorResponse is the status and the wire message of a known error.
type errorResponse struct {
	status  int
	message string
}

// errorResponseMap must stay free of errors that wrap one another, because
// map iteration order is random.
var errorResponseMap = map[error]errorResponse{
	service.ErrInvalidDataProvided:     {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrInvalidCredentials:      {http.StatusUnauthorized, app.MsgInvalidCredentials},
	service.ErrTwoFactorInvalid:        {http.StatusUnauthorized, app.MsgTwoFactorInvalid},
	service.ErrLoginExpired:            {http.StatusUnauthorized, app.MsgLoginExpired},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrUsernameAlreadyExists:   {http.StatusConflict, app.MsgUsernameAlreadyExists},
	service.ErrStaleRevision:           {http.StatusConflict, app.MsgStaleRevision},
	service.ErrVaultNotFound:           {http.StatusNotFound, app.MsgVaultNotFound},
	service.ErrUnsupportedVaultFormat:  {http.StatusUnprocessableEntity, app.MsgUnsupportedVaultFormat},
	service.ErrTokenCreationFailed:     {http.StatusInternalServerError, app.MsgInternalServerError},

	store.ErrBuildingSQLQuery:     {http.StatusInternalServerError, app.MsgInternalServerError},
	store.ErrExecutingQuery:       {http.StatusInternalServerError, app.MsgInternalServerError},
	store.ErrBeginningTransaction: {http.StatusInternalServerError, app.MsgInternalServerError},
	store.ErrCommitingTransaction: {http.StatusInternalServerError, app.MsgInternalServerError},
	store.ErrExecutingStatement:   {http.StatusInternalServerError, app.MsgInternalServerError},
	store.ErrScanningRow:          {http.StatusInternalServerError, app.MsgInternalServerError},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeServiceError writes the JSON error body for err. Unknown errors never
// leak their text to the client.
func writeServiceError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)
	utils.WriteError(w, resp.message, resp.status)
}
