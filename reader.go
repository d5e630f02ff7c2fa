// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

package forgeexcel

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
)

// SheetRows is one sheet of a document read by ReadAllSeparated.
type SheetRows struct {
	Name string
	Rows []MappedRow
}

// Sheets holds the sheets of a document in document order.
type Sheets []SheetRows

// Lookup returns the rows of the named sheet.
func (ss Sheets) Lookup(name string) ([]MappedRow, bool) {
	for _, s := range ss {
		if s.Name == name {
			return s.Rows, true
		}
	}
	return nil, false
}

// Names returns the sheet names in order.
func (ss Sheets) Names() []string {
	names := make([]string, len(ss))
	for i, s := range ss {
		names[i] = s.Name
	}
	return names
}

type walkOpts struct {
	header    bool
	maxSheets int
}

// visitor receives the sheets and mapped rows of a walk. Errors returned by
// the callbacks end the walk and are returned unchanged.
type visitor struct {
	sheet func(name string) error
	row   func(rec MappedRow) error
}

// checkReadable reports ErrFileNotFound unless path is a regular file.
// It does not open path: permission errors surface from the codec's own
// open and are classified by readError.
func checkReadable(op, path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return opError(op, path, ErrFileNotFound, err)
	}
	if !fi.Mode().IsRegular() {
		return opError(op, path, ErrFileNotFound, fmt.Errorf("%s is not a regular file", fi.Mode().Type()))
	}
	return nil
}

// walk opens one codec session on path and feeds the visitor; the session
// is closed on every return path.
func (e *Engine) walk(op, path string, o walkOpts, v visitor) (err error) {
	if err = checkReadable(op, path); err != nil {
		return err
	}
	r, err := e.codec.OpenReader(path)
	if err != nil {
		return readError(op, path, err)
	}
	defer func() {
		if cerr := r.Close(); cerr != nil && err == nil {
			err = readError(op, path, cerr)
		}
	}()

	for n := 0; o.maxSheets <= 0 || n < o.maxSheets; n++ {
		sh, err := r.NextSheet()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return readError(op, path, err)
		}
		if v.sheet != nil {
			if err := v.sheet(sh.Name()); err != nil {
				return err
			}
		}
		m := NewRowMapper(o.header)
		for {
			raw, err := sh.NextRow()
			if errors.Is(err, io.EOF) {
				break
			} else if err != nil {
				return readError(op, path, fmt.Errorf("sheet %q: %w", sh.Name(), err))
			}
			rec, ok := m.Map(raw)
			if !ok {
				continue
			}
			if v.row != nil {
				if err := v.row(rec); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// ReadAll returns the rows of every sheet in document order. With
// headerEnabled the first row of each sheet keys the rest of that sheet.
func (e *Engine) ReadAll(path string, headerEnabled bool) ([]MappedRow, error) {
	return e.readRows("readAll", path, walkOpts{header: headerEnabled})
}

// ReadFirstSheet is ReadAll restricted to the first sheet. Later sheets are
// never opened.
func (e *Engine) ReadFirstSheet(path string, headerEnabled bool) ([]MappedRow, error) {
	return e.readRows("readFirstSheet", path, walkOpts{header: headerEnabled, maxSheets: 1})
}

func (e *Engine) readRows(op, path string, o walkOpts) ([]MappedRow, error) {
	var rows []MappedRow
	var sheets int
	err := e.walk(op, path, o, visitor{
		sheet: func(string) error { sheets++; return nil },
		row:   func(rec MappedRow) error { rows = append(rows, rec); return nil },
	})
	if err != nil {
		return nil, err
	}
	e.logger.Debug(op, "path", path, "sheets", sheets, "rows", humanize.Comma(int64(len(rows))))
	return rows, nil
}

// ReadAllSeparated returns each sheet's rows under its name. A repeated sheet
// name replaces the rows of the earlier sheet with that name.
func (e *Engine) ReadAllSeparated(path string, headerEnabled bool) (Sheets, error) {
	const op = "readAllSeparated"
	var sheets Sheets
	index := make(map[string]int)
	cur := -1
	err := e.walk(op, path, walkOpts{header: headerEnabled}, visitor{
		sheet: func(name string) error {
			if i, ok := index[name]; ok {
				e.logger.Warn("duplicate sheet name, earlier rows dropped", "op", op, "path", path, "sheet", name)
				sheets[i].Rows = nil
				cur = i
				return nil
			}
			index[name] = len(sheets)
			cur = len(sheets)
			sheets = append(sheets, SheetRows{Name: name})
			return nil
		},
		row: func(rec MappedRow) error {
			sheets[cur].Rows = append(sheets[cur].Rows, rec)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	e.logger.Debug(op, "path", path, "sheets", len(sheets))
	return sheets, nil
}

// CountRows counts the rows of all sheets. Without includeHeader the first
// row of each sheet is not counted.
func (e *Engine) CountRows(path string, includeHeader bool) (int, error) {
	const op = "countRows"
	var n int
	err := e.walk(op, path, walkOpts{header: !includeHeader}, visitor{
		row: func(MappedRow) error { n++; return nil },
	})
	if err != nil {
		return 0, err
	}
	e.logger.Debug(op, "path", path, "rows", humanize.Comma(int64(n)))
	return n, nil
}
