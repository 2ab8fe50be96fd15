// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-library/internal/logger"
	"github.com/MKhiriev/go-library/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeWithTraceID(h *Handler, incoming string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		logger.FromRequest(r).Info().Msg("inside")
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}

	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)
	return rec, captured
}

func TestWithTraceID_ReusesIncomingID(t *testing.T) {
	h := &Handler{logger: logger.Nop(), traceIDs: utils.NewUUIDGenerator()}

	rec, req := executeWithTraceID(h, "my-custom-trace-id")

	require.NotNil(t, req)
	assert.Equal(t, "my-custom-trace-id", rec.Header().Get(traceIDHeader))

	traceID, ok := utils.GetTraceIDFromContext(req.Context())
	require.True(t, ok)
	assert.Equal(t, "my-custom-trace-id", traceID)
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	h := &Handler{logger: logger.Nop(), traceIDs: utils.NewUUIDGenerator()}

	rec, req := executeWithTraceID(h, "")

	generated := rec.Header().Get(traceIDHeader)
	parsed, err := uuid.Parse(generated)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())

	traceID, _ := utils.GetTraceIDFromContext(req.Context())
	assert.Equal(t, generated, traceID)
}

func TestWithTraceID_AttachesIDToLogger(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.NewLoggerTo("test", &buf), traceIDs: utils.NewUUIDGenerator()}

	executeWithTraceID(h, "trace-for-logs")

	assert.Contains(t, buf.String(), `"trace_id":"trace-for-logs"`)
	assert.Contains(t, buf.String(), `"message":"inside"`)
}
