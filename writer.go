// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

package forgeexcel

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// SheetData is one sheet to write.
type SheetData struct {
	Name string
	Rows []Row
}

// StyledSheet is one sheet to write with an optional header style and
// per-row styles. RowStyles win over HeaderStyle on row 0.
type StyledSheet struct {
	Name        string
	Rows        []Row
	HeaderStyle *StyleOptions
	RowStyles   map[int]StyleOptions
}

// DefaultSheetName names the sheet of single-sheet writes.
const DefaultSheetName = "Sheet1"

type sheetPlan struct {
	name   string
	rows   []Row
	styles *StyleSet
}

// Write writes rows to a single unstyled sheet. A zero format is taken from
// the extension of path, defaulting to XLSX.
func (e *Engine) Write(path string, rows []Row, format Format) error {
	return e.writeSheets("write", path, format, []sheetPlan{{name: DefaultSheetName, rows: rows}})
}

// WriteWithStyle writes rows applying explicit row styles, then column styles.
func (e *Engine) WriteWithStyle(path string, rows []Row, rowStyles, columnStyles map[int]StyleOptions) error {
	const op = "writeWithStyle"
	var set StyleSet
	var err error
	if set.Rows, err = stylesFromOptions(rowStyles); err != nil {
		return fmt.Errorf("%s %q: %w", op, path, err)
	}
	if set.Columns, err = stylesFromOptions(columnStyles); err != nil {
		return fmt.Errorf("%s %q: %w", op, path, err)
	}
	return e.writeSheets(op, path, 0, []sheetPlan{{name: DefaultSheetName, rows: rows, styles: &set}})
}

// WriteTable writes rows as a table: row 0 gets the theme's header style,
// the other rows alternate between its odd and even styles.
func (e *Engine) WriteTable(path string, rows []Row, themeName string) error {
	ts := ResolveThemed(themeName)
	set := StyleSet{Header: &ts.Header, Theme: &ts}
	return e.writeSheets("writeTable", path, 0, []sheetPlan{{name: DefaultSheetName, rows: rows, styles: &set}})
}

// WriteStyled writes rows with the full precedence chain of set.
func (e *Engine) WriteStyled(path string, rows []Row, set StyleSet) error {
	return e.writeSheets("writeStyled", path, 0, []sheetPlan{{name: DefaultSheetName, rows: rows, styles: &set}})
}

// WriteWithSheets writes one unstyled sheet per entry, in order. The first
// entry becomes the default sheet.
func (e *Engine) WriteWithSheets(path string, sheets []SheetData) error {
	plans := make([]sheetPlan, len(sheets))
	for i, s := range sheets {
		plans[i] = sheetPlan{name: s.Name, rows: s.Rows}
	}
	return e.writeSheets("writeWithSheets", path, 0, plans)
}

// WriteStyledSheets is WriteWithSheets with per-sheet header and row styles.
func (e *Engine) WriteStyledSheets(path string, sheets []StyledSheet) error {
	const op = "writeStyledSheets"
	plans := make([]sheetPlan, len(sheets))
	for i, s := range sheets {
		set := StyleSet{}
		var err error
		if set.Rows, err = stylesFromOptions(s.RowStyles); err != nil {
			return fmt.Errorf("%s %q: sheet %q: %w", op, path, s.Name, err)
		}
		if s.HeaderStyle != nil {
			st, err := CreateStyle(*s.HeaderStyle)
			if err != nil {
				return fmt.Errorf("%s %q: sheet %q: %w", op, path, s.Name, err)
			}
			set.Header = &st
		}
		plans[i] = sheetPlan{name: s.Name, rows: s.Rows, styles: &set}
	}
	return e.writeSheets(op, path, 0, plans)
}

// WriteWithFormulas writes rows whose formula cells ("=...") are stored as
// formulas, styling the header row with headerStyle, or bold on light gray
// when headerStyle is nil.
func (e *Engine) WriteWithFormulas(path string, rows []Row, headerStyle *StyleOptions) error {
	const op = "writeWithFormulas"
	hs := StyleOptions{Bold: true, Background: "E0E0E0"}
	if headerStyle != nil {
		hs = *headerStyle
	}
	st, err := CreateStyle(hs)
	if err != nil {
		return fmt.Errorf("%s %q: %w", op, path, err)
	}
	set := StyleSet{Header: &st}
	return e.writeSheets(op, path, 0, []sheetPlan{{name: DefaultSheetName, rows: rows, styles: &set}})
}

func (e *Engine) writeSheets(op, path string, format Format, plans []sheetPlan) (err error) {
	if format == 0 {
		format = writeFormat(path)
	}
	if len(plans) == 0 {
		plans = []sheetPlan{{name: DefaultSheetName}}
	}
	if len(plans) > 1 && !format.MultiSheet() {
		return opError(op, path, ErrUnsupported, fmt.Errorf("%d sheets in %s", len(plans), format))
	}
	seen := make(map[string]struct{}, len(plans))
	for i := range plans {
		if plans[i].name == "" {
			plans[i].name = "Sheet" + strconv.Itoa(i+1)
		}
		// Sheet names compare ignoring case.
		key := strings.ToLower(plans[i].name)
		if _, dup := seen[key]; dup {
			return opError(op, path, ErrInvalidArgument, fmt.Errorf("duplicate sheet name %q", plans[i].name))
		}
		seen[key] = struct{}{}
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return opError(op, path, ErrWrite, err)
	}
	w, err := e.codec.OpenWriter(path, format)
	if err != nil {
		return writeError(op, path, err)
	}
	defer func() {
		if err != nil {
			_ = w.Close()
			_ = os.Remove(path)
		}
	}()

	var rows int
	for _, p := range plans {
		sh, err := w.NewSheet(p.name)
		if err != nil {
			return writeError(op, path, fmt.Errorf("sheet %q: %w", p.name, err))
		}
		for i, row := range p.rows {
			var styles []Style
			if format.Styled() {
				styles = p.styles.rowStyles(i, len(row))
			}
			values := make(Row, len(row))
			for j, v := range row {
				values[j] = Normalize(v)
			}
			if err := sh.AppendRow(values, styles); err != nil {
				return writeError(op, path, fmt.Errorf("sheet %q row %d: %w", p.name, i, err))
			}
		}
		rows += len(p.rows)
		if err := sh.Close(); err != nil {
			return writeError(op, path, fmt.Errorf("sheet %q: %w", p.name, err))
		}
	}
	if err = w.Close(); err != nil {
		return writeError(op, path, err)
	}

	var size string
	if fi, serr := os.Stat(path); serr == nil {
		size = humanize.Bytes(uint64(fi.Size()))
	}
	e.logger.Debug(op, "path", path, "format", format.String(), "sheets", len(plans),
		"rows", humanize.Comma(int64(rows)), "size", size)
	return nil
}
