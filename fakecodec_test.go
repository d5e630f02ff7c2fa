// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

package forgeexcel

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// fakeSheet is one sheet held by fakeCodec, with the styles it was written with.
type fakeSheet struct {
	name   string
	rows   []Row
	styles [][]Style
}

// fakeCodec keeps documents in memory, keyed by path, and counts how the
// engine drives it.
type fakeCodec struct {
	mu   sync.Mutex
	docs map[string][]fakeSheet

	opens, closes, nextSheets, rowsPulled int
	writerOpens, writerCloses             int

	openErr, nextErr, rowErr, appendErr error
}

func newFakeCodec() *fakeCodec { return &fakeCodec{docs: make(map[string][]fakeSheet)} }

func (c *fakeCodec) OpenReader(path string) (Reader, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opens++
	if c.openErr != nil {
		return nil, c.openErr
	}
	doc, ok := c.docs[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, fs.ErrNotExist)
	}
	return &fakeReader{c: c, doc: doc}, nil
}

func (c *fakeCodec) OpenWriter(path string, format Format) (Writer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writerOpens++
	if c.openErr != nil {
		return nil, c.openErr
	}
	return &fakeWriter{c: c, path: path}, nil
}

func (c *fakeCodec) doc(path string) []fakeSheet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.docs[path]
}

type fakeReader struct {
	c    *fakeCodec
	doc  []fakeSheet
	next int
}

func (r *fakeReader) NextSheet() (SheetReader, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	r.c.nextSheets++
	if r.c.nextErr != nil {
		return nil, r.c.nextErr
	}
	if r.next >= len(r.doc) {
		return nil, io.EOF
	}
	s := &fakeSheetReader{c: r.c, sheet: r.doc[r.next]}
	r.next++
	return s, nil
}

func (r *fakeReader) Close() error {
	r.c.mu.Lock()
	r.c.closes++
	r.c.mu.Unlock()
	return nil
}

type fakeSheetReader struct {
	c     *fakeCodec
	sheet fakeSheet
	row   int
}

func (s *fakeSheetReader) Name() string { return s.sheet.name }

func (s *fakeSheetReader) NextRow() (Row, error) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()
	if s.c.rowErr != nil {
		return nil, s.c.rowErr
	}
	if s.row >= len(s.sheet.rows) {
		return nil, io.EOF
	}
	s.c.rowsPulled++
	row := append(Row(nil), s.sheet.rows[s.row]...)
	s.row++
	return row, nil
}

type fakeWriter struct {
	c      *fakeCodec
	path   string
	sheets []*fakeSheetWriter
}

func (w *fakeWriter) NewSheet(name string) (Sheet, error) {
	for _, s := range w.sheets {
		if s.sheet.name == name {
			return nil, fmt.Errorf("sheet %q: %w", name, ErrInvalidArgument)
		}
	}
	s := &fakeSheetWriter{w: w, sheet: fakeSheet{name: name}}
	w.sheets = append(w.sheets, s)
	return s, nil
}

func (w *fakeWriter) Close() error {
	w.c.mu.Lock()
	defer w.c.mu.Unlock()
	w.c.writerCloses++
	if w.sheets == nil {
		return nil
	}
	doc := make([]fakeSheet, len(w.sheets))
	for i, s := range w.sheets {
		doc[i] = s.sheet
	}
	w.sheets = nil
	w.c.docs[w.path] = doc
	return os.WriteFile(w.path, []byte("fake"), 0o644)
}

type fakeSheetWriter struct {
	w     *fakeWriter
	sheet fakeSheet
}

func (s *fakeSheetWriter) AppendRow(row Row, styles []Style) error {
	if err := s.w.c.appendErr; err != nil {
		return err
	}
	s.sheet.rows = append(s.sheet.rows, append(Row(nil), row...))
	s.sheet.styles = append(s.sheet.styles, append([]Style(nil), styles...))
	return nil
}

func (s *fakeSheetWriter) Close() error { return nil }

// putDoc stores doc under a file in dir, creating the placeholder the
// engine stats before reading.
func (c *fakeCodec) putDoc(t *testing.T, dir, name string, doc ...fakeSheet) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("fake"), 0o644); err != nil {
		t.Fatal(err)
	}
	c.mu.Lock()
	c.docs[path] = doc
	c.mu.Unlock()
	return path
}

func newTestEngine(t *testing.T) (*Engine, *fakeCodec) {
	t.Helper()
	c := newFakeCodec()
	return New(c, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))), c
}

var errHandler = errors.New("handler failed")
