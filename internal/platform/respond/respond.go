// Copyright (c) 2026 Tigerlilly. All rights reserved.

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// Every successful response wraps its payload in a single key named after the
// resource (`{"articles": ...}`, `{"users": ...}`); consumers destructure by
// that key. Errors use the `{"error": {"message", "status"}}` envelope, with
// the status field driving the HTTP status code.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tigerlilly/api/internal/platform/apperr"
	"github.com/tigerlilly/api/internal/platform/ctxutil"
)

// Payload is a free-form response body keyed by resource name.
//
// Example:
//
//	respond.OK(w, respond.Payload{"articles": articles})
type Payload map[string]interface{}

// errorBody is the inner object of the error envelope. Message is either a
// string or, for validation failures, the full list of violation messages.
type errorBody struct {
	Message interface{} `json:"message"`
	Status  int         `json:"status"`
}

// errorEnvelope is the JSON envelope for error responses.
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with the resource-keyed payload.
func OK(writer http.ResponseWriter, payload Payload) {
	JSON(writer, http.StatusOK, payload)
}

// Created writes a 201 Created response with the resource-keyed payload.
func Created(writer http.ResponseWriter, payload Payload) {
	JSON(writer, http.StatusCreated, payload)
}

// Error converts any Go error into the standardized JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client.
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "unhandled_error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.Status >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.Int("status", appError.Status),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	body := errorBody{Message: appError.Message, Status: appError.Status}
	if len(appError.Details) > 0 {
		// Validation failures surface the full list of violation messages.
		body.Message = appError.Details
	}

	JSON(writer, appError.Status, errorEnvelope{Error: body})
}
