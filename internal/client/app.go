// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-library/internal/adapter"
	"github.com/MKhiriev/go-library/internal/logger"
	"github.com/MKhiriev/go-library/internal/utils"
	"github.com/MKhiriev/go-library/models"
)

const stdinArg = "-"

type command func(ctx context.Context, args []string) error

type App struct {
	api adapter.BookAPI

	in  io.Reader
	out io.Writer

	traceIDs *utils.UUIDGenerator
	commands map[string]command

	logger *logger.Logger
}

func NewApp(api adapter.BookAPI, in io.Reader, out io.Writer, logger *logger.Logger) (*App, error) {
	if api == nil {
		return nil, errNilBookAPI
	}

	a := &App{
		api:      api,
		in:       in,
		out:      out,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
	a.commands = map[string]command{
		"create":  a.create,
		"get":     a.get,
		"list":    a.list,
		"update":  a.update,
		"delete":  a.delete,
		"version": a.version,
	}

	return a, nil
}

// Run tags the command with a fresh trace id so its server-side logs can be
// found.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	traceID := a.traceIDs.Generate()
	ctx = utils.WithTraceID(ctx, traceID)

	a.logger.Debug().
		Str("command", args[0]).
		Str("trace_id", traceID).
		Msg("running command")

	return cmd(ctx, args[1:])
}

func (a *App) create(ctx context.Context, args []string) error {
	book, err := a.readBook(optionalArg(args, 0))
	if err != nil {
		return err
	}

	created, err := a.api.CreateBook(ctx, book)
	if err != nil {
		return err
	}

	return a.printJSON(created)
}

func (a *App) get(ctx context.Context, args []string) error {
	isbn, err := requiredArg(args, 0, "isbn")
	if err != nil {
		return err
	}

	book, err := a.api.GetBook(ctx, isbn)
	if err != nil {
		return err
	}

	return a.printJSON(book)
}

func (a *App) list(ctx context.Context, args []string) error {
	books, err := a.api.ListBooks(ctx, optionalArg(args, 0))
	if err != nil {
		return err
	}

	return a.printJSON(books)
}

func (a *App) update(ctx context.Context, args []string) error {
	isbn, err := requiredArg(args, 0, "isbn")
	if err != nil {
		return err
	}

	book, err := a.readBook(optionalArg(args, 1))
	if err != nil {
		return err
	}

	updated, err := a.api.UpdateBook(ctx, isbn, book)
	if err != nil {
		return err
	}

	return a.printJSON(updated)
}

func (a *App) delete(ctx context.Context, args []string) error {
	isbn, err := requiredArg(args, 0, "isbn")
	if err != nil {
		return err
	}

	if err = a.api.DeleteBook(ctx, isbn); err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "deleted %s\n", isbn)
	return err
}

func (a *App) version(ctx context.Context, _ []string) error {
	v, err := a.api.GetVersion(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, v)
	return err
}

// readBook decodes a book from path, or from the app's input when path is
// empty or "-".
func (a *App) readBook(path string) (models.Book, error) {
	r := a.in
	if path != "" && path != stdinArg {
		f, err := os.Open(path)
		if err != nil {
			return models.Book{}, fmt.Errorf("%w: %w", ErrReadingBook, err)
		}
		defer f.Close()
		r = f
	}

	var book models.Book
	if err := json.NewDecoder(r).Decode(&book); err != nil {
		return models.Book{}, fmt.Errorf("%w: %w", ErrReadingBook, err)
	}

	return book, nil
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func requiredArg(args []string, i int, name string) (string, error) {
	if len(args) <= i || args[i] == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingArgument, name)
	}
	return args[i], nil
}

func optionalArg(args []string, i int) string {
	if len(args) <= i {
		return ""
	}
	return args[i]
}
