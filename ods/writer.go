// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

//go:generate qtc -file=content.qtpl

// Package ods implements the forgeexcel codec for OpenDocument
// spreadsheets (.ods).
package ods

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/klauspost/compress/zip"

	"github.com/lugotardo/forgeexcel"
)

// MimeType of an OpenDocument spreadsheet, stored first and uncompressed.
const MimeType = "application/vnd.oasis.opendocument.spreadsheet"

var _ = (forgeexcel.Writer)((*ODSWriter)(nil))

// ODSWriter writes an OpenDocument spreadsheet.
//
// Each sheet is buffered in its own temporary file, so separate sheets can be
// written concurrently; content.xml is assembled on Close, when the automatic
// styles are known.
type ODSWriter struct {
	w      io.Writer
	closer io.Closer
	sheets []*ODSSheet
	styles map[forgeexcel.Style]string
	order  []CellStyle
	mu     sync.Mutex
	closed bool
}

type ODSSheet struct {
	ow   *ODSWriter
	Name string
	fh   *os.File
	bw   *bufio.Writer
	row  int
	done bool
	mu   sync.Mutex
}

// NewWriter returns an ODSWriter writing the archive to w on Close.
func NewWriter(w io.Writer) (*ODSWriter, error) {
	if w == nil {
		return nil, errors.New("nil writer")
	}
	return &ODSWriter{w: w}, nil
}

// Create returns an ODSWriter that writes the archive to a new file at path.
func Create(path string) (*ODSWriter, error) {
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &ODSWriter{w: fh, closer: fh}, nil
}

func (ow *ODSWriter) NewSheet(name string) (forgeexcel.Sheet, error) {
	ow.mu.Lock()
	defer ow.mu.Unlock()
	if ow.closed {
		return nil, fmt.Errorf("%s: writer is closed", name)
	}
	for _, s := range ow.sheets {
		if strings.EqualFold(s.Name, name) {
			return nil, fmt.Errorf("sheet %q: %w", name, forgeexcel.ErrInvalidArgument)
		}
	}
	fh, err := os.CreateTemp("", "forgeexcel-ods-*.xml")
	if err != nil {
		return nil, err
	}
	s := &ODSSheet{ow: ow, Name: name, fh: fh, bw: bufio.NewWriterSize(fh, 64<<10)}
	WriteTableStart(s.bw, name)
	ow.sheets = append(ow.sheets, s)
	return s, nil
}

// styleName returns the automatic style name of style, "" for the zero style.
func (ow *ODSWriter) styleName(style forgeexcel.Style) string {
	if style.IsZero() {
		return ""
	}
	ow.mu.Lock()
	defer ow.mu.Unlock()
	if name, ok := ow.styles[style]; ok {
		return name
	}
	if ow.styles == nil {
		ow.styles = make(map[forgeexcel.Style]string)
	}
	name := "ce" + strconv.Itoa(len(ow.order)+1)
	ow.styles[style] = name
	ow.order = append(ow.order, newCellStyle(name, style))
	return name
}

func (ow *ODSWriter) Close() error {
	if ow == nil {
		return nil
	}
	ow.mu.Lock()
	if ow.closed {
		ow.mu.Unlock()
		return nil
	}
	ow.closed = true
	sheets, styles := ow.sheets, ow.order
	ow.mu.Unlock()

	defer func() {
		for _, s := range sheets {
			_ = s.fh.Close()
			_ = os.Remove(s.fh.Name())
		}
	}()
	err := ow.writeArchive(sheets, styles)
	if ow.closer != nil {
		if cerr := ow.closer.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func (ow *ODSWriter) writeArchive(sheets []*ODSSheet, styles []CellStyle) error {
	for _, s := range sheets {
		if err := s.Close(); err != nil {
			return err
		}
	}
	zw := zip.NewWriter(ow.w)
	w, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return err
	}
	if _, err = io.WriteString(w, MimeType); err != nil {
		return err
	}
	if w, err = zw.Create("META-INF/manifest.xml"); err != nil {
		return err
	}
	WriteManifest(w)
	if w, err = zw.Create("styles.xml"); err != nil {
		return err
	}
	WriteStyles(w)

	if w, err = zw.Create("content.xml"); err != nil {
		return err
	}
	bw := bufio.NewWriterSize(w, 64<<10)
	WriteContentHead(bw, styles)
	if len(sheets) == 0 {
		WriteTableStart(bw, forgeexcel.DefaultSheetName)
		WriteRow(bw, nil)
		WriteTableEnd(bw)
	}
	for _, s := range sheets {
		if _, err := s.fh.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
		if _, err := io.Copy(bw, s.fh); err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
	}
	WriteContentTail(bw)
	if err := bw.Flush(); err != nil {
		return err
	}
	return zw.Close()
}

// Close ends the table; no more rows can be appended afterwards.
func (s *ODSSheet) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return nil
	}
	s.done = true
	if s.row == 0 {
		WriteRow(s.bw, nil)
	}
	WriteTableEnd(s.bw)
	return s.bw.Flush()
}

func (s *ODSSheet) AppendRow(row forgeexcel.Row, styles []forgeexcel.Style) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return fmt.Errorf("%s: sheet is closed", s.Name)
	}
	if s.row >= forgeexcel.MaxRowCount {
		return forgeexcel.ErrTooManyRows
	}
	s.row++
	cells := make([]Cell, len(row))
	for i, v := range row {
		c := &cells[i]
		if i < len(styles) {
			c.Style = s.ow.styleName(styles[i])
		}
		switch x := forgeexcel.Normalize(v).(type) {
		case nil:
		case string:
			if forgeexcel.IsFormula(x) {
				c.Formula = x
			} else {
				c.Type, c.Lines = "string", strings.Split(x, "\n")
			}
		case bool:
			c.Type, c.Value = "boolean", strconv.FormatBool(x)
			c.Lines = []string{forgeexcel.FormatValue(x)}
		case int64:
			c.Type, c.Value = "float", strconv.FormatInt(x, 10)
			c.Lines = []string{c.Value}
		case float64:
			c.Type, c.Value = "float", strconv.FormatFloat(x, 'g', -1, 64)
			c.Lines = []string{strconv.FormatFloat(x, 'f', -1, 64)}
		default:
			c.Type, c.Lines = "string", []string{fmt.Sprint(x)}
		}
	}
	WriteRow(s.bw, cells)
	return nil
}
