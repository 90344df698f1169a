// Copyright (c) 2026 Tigerlilly. All rights reserved.

package api_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tigerlilly/api/internal/api"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

/*
TestLiveness verifies the /health probe always answers 200 with the ok status.
*/
func TestLiveness(t *testing.T) {
	liveness, _ := api.NewHealthHandlers(api.HealthDependencies{}, quietLogger())

	recorder := httptest.NewRecorder()
	liveness(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "ok", decodeBody(t, recorder)["status"])
}

/*
TestReadiness verifies the /ready probe reports ready when all dependency
checks pass and degrades to 503 when one fails.
*/
func TestReadiness(t *testing.T) {
	t.Run("all_checks_pass", func(t *testing.T) {
		_, readiness := api.NewHealthHandlers(api.HealthDependencies{
			CheckDatabase:  func() error { return nil },
			CheckIconStore: func() error { return nil },
		}, quietLogger())

		recorder := httptest.NewRecorder()
		readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)

		body := decodeBody(t, recorder)
		assert.Equal(t, "ready", body["status"])
		assert.Len(t, body["checks"], 2)
	})

	t.Run("failing_dependency_degrades", func(t *testing.T) {
		_, readiness := api.NewHealthHandlers(api.HealthDependencies{
			CheckDatabase:  func() error { return errors.New("connection refused") },
			CheckIconStore: func() error { return nil },
		}, quietLogger())

		recorder := httptest.NewRecorder()
		readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

		body := decodeBody(t, recorder)
		assert.Equal(t, "degraded", body["status"])

		checks := body["checks"].([]any)
		first := checks[0].(map[string]any)
		assert.Equal(t, "postgres", first["name"])
		assert.Equal(t, false, first["ok"])
		assert.Equal(t, "connection refused", first["error"])
	})
}
