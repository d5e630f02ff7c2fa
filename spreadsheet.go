// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

// Package forgeexcel reads and writes multi-sheet spreadsheet documents
// through pluggable codecs, with header mapping, chunked streaming reads
// and a small style model for writes.
package forgeexcel

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Codec opens container sessions. Implementations live in the xlsx, ods and
// csv packages; the forge package dispatches between them.
type Codec interface {
	OpenReader(path string) (Reader, error)
	OpenWriter(path string, format Format) (Writer, error)
}

// Reader iterates the sheets of a document in order.
// NextSheet returns io.EOF after the last sheet. A SheetReader is only
// valid until the next call to NextSheet.
type Reader interface {
	io.Closer
	NextSheet() (SheetReader, error)
}

// SheetReader iterates the rows of one sheet, returning io.EOF at the end.
// Each returned Row is owned by the caller.
type SheetReader interface {
	Name() string
	NextRow() (Row, error)
}

// Writer writes the spreadsheet consisting of the sheets created
// with NewSheet. The write finishes when Close is called.
//
// The first sheet created becomes the default sheet of the document.
type Writer interface {
	io.Closer
	NewSheet(name string) (Sheet, error)
}

// Sheet should be Closed when finished.
//
// styles is either nil (no styling) or holds one Style per cell;
// a zero Style leaves the cell at the codec default.
type Sheet interface {
	io.Closer
	AppendRow(row Row, styles []Style) error
}

// Format is a container type selectable at write time.
type Format uint8

const (
	// FormatXLSX is the Office Open XML workbook.
	FormatXLSX Format = iota + 1
	// FormatODS is the OpenDocument spreadsheet archive.
	FormatODS
	// FormatCSV is delimited text: one implicit sheet, no styles.
	FormatCSV
)

func (f Format) String() string {
	switch f {
	case FormatXLSX:
		return "xlsx"
	case FormatODS:
		return "ods"
	case FormatCSV:
		return "csv"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// MultiSheet reports whether the format can hold more than one sheet.
func (f Format) MultiSheet() bool { return f == FormatXLSX || f == FormatODS }

// Styled reports whether the format carries cell styles.
func (f Format) Styled() bool { return f == FormatXLSX || f == FormatODS }

// ParseFormat parses a format name such as "xlsx", "ods" or "csv".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "xlsx", "xlsm":
		return FormatXLSX, nil
	case "ods":
		return FormatODS, nil
	case "csv", "tsv", "txt":
		return FormatCSV, nil
	}
	return 0, fmt.Errorf("format %q: %w", s, ErrInvalidArgument)
}

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) (Format, bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, false
	}
	f, err := ParseFormat(ext)
	return f, err == nil
}

// writeFormat picks the format for path, falling back to XLSX.
func writeFormat(path string) Format {
	if f, ok := FormatFromPath(path); ok {
		return f
	}
	return FormatXLSX
}

// MaxRowCount is the number of maximum rows in a sheet.
const MaxRowCount = 1_048_576
