// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-library/internal/config"
	"github.com/MKhiriev/go-library/internal/logger"
	"github.com/MKhiriev/go-library/internal/utils"
	"github.com/MKhiriev/go-library/models"
	"github.com/go-resty/resty/v2"
)

const traceIDHeader = "X-Trace-ID"

type httpBookAdapter struct {
	client *utils.HTTPClient
	apiKey string

	logger *logger.Logger
}

// NewHTTPBookAdapter constructs the HTTP implementation of [BookAPI]. The
// base URL comes from adapterCfg.HTTPAddress; a missing scheme defaults to
// http.
func NewHTTPBookAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (BookAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpBookAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		apiKey: adapterCfg.APIKey,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBookAdapter) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	var created models.Book

	resp, err := h.writeRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(book).
		SetResult(&created).
		Post("/books")
	if err != nil {
		return models.Book{}, fmt.Errorf("create book request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Book{}, err
	}

	h.logger.Debug().Str("location", resp.Header().Get("Location")).Msg("book created")
	return created, nil
}

func (h *httpBookAdapter) GetBook(ctx context.Context, isbn string) (models.Book, error) {
	var book models.Book

	resp, err := h.request(ctx).
		SetPathParam("isbn", isbn).
		SetResult(&book).
		Get("/books/{isbn}")
	if err != nil {
		return models.Book{}, fmt.Errorf("get book request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Book{}, err
	}

	return book, nil
}

func (h *httpBookAdapter) ListBooks(ctx context.Context, searchTerm string) ([]models.Book, error) {
	books := []models.Book{}

	req := h.request(ctx).SetResult(&books)
	if searchTerm != "" {
		req.SetQueryParam("searchTerm", searchTerm)
	}

	resp, err := req.Get("/books")
	if err != nil {
		return nil, fmt.Errorf("list books request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return books, nil
}

func (h *httpBookAdapter) UpdateBook(ctx context.Context, isbn string, book models.Book) (models.Book, error) {
	var updated models.Book

	resp, err := h.writeRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("isbn", isbn).
		SetBody(book).
		SetResult(&updated).
		Put("/books/{isbn}")
	if err != nil {
		return models.Book{}, fmt.Errorf("update book request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Book{}, err
	}

	return updated, nil
}

func (h *httpBookAdapter) DeleteBook(ctx context.Context, isbn string) error {
	resp, err := h.writeRequest(ctx).
		SetPathParam("isbn", isbn).
		Delete("/books/{isbn}")
	if err != nil {
		return fmt.Errorf("delete book request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBookAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("get version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

// request starts a request bound to ctx, forwarding its trace id.
func (h *httpBookAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}

// writeRequest is request with the API key attached.
func (h *httpBookAdapter) writeRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if h.apiKey != "" {
		req.SetHeader("Authorization", "ApiKey "+h.apiKey)
	}
	return req
}
