// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-library/internal/adapter"
	"github.com/MKhiriev/go-library/internal/client"
	"github.com/MKhiriev/go-library/internal/config"
	"github.com/MKhiriev/go-library/internal/logger"
	"github.com/MKhiriev/go-library/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// stdout carries command output only
	models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stderr)

	log := logger.NewLoggerTo("go-library-client", os.Stderr)
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	bookAPI, err := adapter.NewHTTPBookAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create http adapter")
	}

	app, err := client.NewApp(bookAPI, os.Stdin, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background(), cfg.Args); err != nil {
		printFailures(err)
		os.Exit(1)
	}
}

func printFailures(err error) {
	var apiErr *adapter.APIValidationError
	if !errors.As(err, &apiErr) {
		fmt.Fprintln(os.Stderr, "error:", err)
		return
	}

	for _, f := range apiErr.Failures {
		fmt.Fprintf(os.Stderr, "%s: %s\n", f.PropertyName, f.ErrorMessage)
	}
}
