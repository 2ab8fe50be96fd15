// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the server and the client:
// typed context keys, JSON responses, id generation and the HTTP client.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so values stored here never
// collide with string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey holds the request trace id. The HTTP middleware stores the
// incoming or generated id here and the API client forwards it in the
// X-Trace-ID header.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext reports the trace id stored in ctx. An empty id is
// treated as missing.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
