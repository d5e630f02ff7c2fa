// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

// Package forge wires the xlsx, ods and csv codecs into a forgeexcel.Engine
// and exposes a default engine through package level functions.
package forge

import (
	"fmt"
	"log/slog"

	"github.com/lugotardo/forgeexcel"
	"github.com/lugotardo/forgeexcel/csv"
	"github.com/lugotardo/forgeexcel/ods"
	"github.com/lugotardo/forgeexcel/xlsx"
)

var _ = (forgeexcel.Codec)(Codec{})

// Codec picks the container implementation from the file extension on read,
// and from the requested Format on write.
type Codec struct {
	CSV csv.Options
}

func (c Codec) OpenReader(path string) (forgeexcel.Reader, error) {
	format, ok := forgeexcel.FormatFromPath(path)
	if !ok {
		return nil, fmt.Errorf("%s: unknown spreadsheet format", path)
	}
	switch format {
	case forgeexcel.FormatXLSX:
		r, err := xlsx.Open(path)
		if err != nil {
			return nil, err
		}
		return r, nil
	case forgeexcel.FormatODS:
		r, err := ods.Open(path)
		if err != nil {
			return nil, err
		}
		return r, nil
	case forgeexcel.FormatCSV:
		r, err := csv.Open(path, c.CSV)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	return nil, fmt.Errorf("%s: %w", format, forgeexcel.ErrUnsupported)
}

func (c Codec) OpenWriter(path string, format forgeexcel.Format) (forgeexcel.Writer, error) {
	switch format {
	case forgeexcel.FormatXLSX:
		return xlsx.Create(path), nil
	case forgeexcel.FormatODS:
		w, err := ods.Create(path)
		if err != nil {
			return nil, err
		}
		return w, nil
	case forgeexcel.FormatCSV:
		w, err := csv.Create(path, c.CSV)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	return nil, fmt.Errorf("%s: %w", format, forgeexcel.ErrUnsupported)
}

// Config of an engine built by New.
type Config struct {
	CSV    csv.Options
	Logger *slog.Logger
}

// Option modifies a Config.
type Option func(*Config)

// WithCSVComma sets the separator of delimited files.
func WithCSVComma(comma rune) Option { return func(c *Config) { c.CSV.Comma = comma } }

// WithCSVEncoding sets the charset of delimited files.
func WithCSVEncoding(name string) Option { return func(c *Config) { c.CSV.Encoding = name } }

// WithLogger sets the engine logger.
func WithLogger(l *slog.Logger) Option { return func(c *Config) { c.Logger = l } }

// New returns an engine over Codec.
func New(opts ...Option) *forgeexcel.Engine {
	var cfg Config
	for _, o := range opts {
		o(&cfg)
	}
	return forgeexcel.New(Codec{CSV: cfg.CSV}, forgeexcel.WithLogger(cfg.Logger))
}

// Default is the engine used by the package level functions.
var Default = New()

func ReadAll(path string, headerEnabled bool) ([]forgeexcel.MappedRow, error) {
	return Default.ReadAll(path, headerEnabled)
}

func ReadFirstSheet(path string, headerEnabled bool) ([]forgeexcel.MappedRow, error) {
	return Default.ReadFirstSheet(path, headerEnabled)
}

func ReadAllSeparated(path string, headerEnabled bool) (forgeexcel.Sheets, error) {
	return Default.ReadAllSeparated(path, headerEnabled)
}

func CountRows(path string, includeHeader bool) (int, error) {
	return Default.CountRows(path, includeHeader)
}

func ReadInChunks(path string, chunkSize int, handler forgeexcel.ChunkHandler, headerEnabled bool) error {
	return Default.ReadInChunks(path, chunkSize, handler, headerEnabled)
}

func Write(path string, rows []forgeexcel.Row, format forgeexcel.Format) error {
	return Default.Write(path, rows, format)
}

func WriteWithStyle(path string, rows []forgeexcel.Row, rowStyles, columnStyles map[int]forgeexcel.StyleOptions) error {
	return Default.WriteWithStyle(path, rows, rowStyles, columnStyles)
}

func WriteTable(path string, rows []forgeexcel.Row, themeName string) error {
	return Default.WriteTable(path, rows, themeName)
}

func WriteStyled(path string, rows []forgeexcel.Row, set forgeexcel.StyleSet) error {
	return Default.WriteStyled(path, rows, set)
}

func WriteWithSheets(path string, sheets []forgeexcel.SheetData) error {
	return Default.WriteWithSheets(path, sheets)
}

func WriteStyledSheets(path string, sheets []forgeexcel.StyledSheet) error {
	return Default.WriteStyledSheets(path, sheets)
}

func WriteWithFormulas(path string, rows []forgeexcel.Row, headerStyle *forgeexcel.StyleOptions) error {
	return Default.WriteWithFormulas(path, rows, headerStyle)
}
