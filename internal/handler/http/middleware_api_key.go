// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-library/internal/logger"
)

// requireAPIKey guards write routes. The "Authorization" header must carry the
// configured key either bare or after a scheme ("ApiKey <key>"). Any other
// request is rejected with 401 before the handler runs.
func (h *Handler) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		key, err := getAPIKeyFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		if h.apiKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(h.apiKey)) != 1 {
			log.Err(ErrInvalidAPIKey).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getAPIKeyFromAuthHeader accepts both
//
//	Authorization: <key>
//	Authorization: <scheme> <key>
func getAPIKeyFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	_, key, found := strings.Cut(authHeader, " ")
	if !found {
		return authHeader, nil
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrEmptyAPIKey
	}

	return key, nil
}
