// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/lugotardo/forgeexcel"
)

var _ = (forgeexcel.Reader)((*XLSXReader)(nil))

// XLSXReader iterates the sheets of a workbook. A sheet's rows are only
// opened when NextSheet reaches it.
//
// Memory is not bounded by a row: cell types and formulas are looked up
// per cell, which makes excelize load the whole worksheet being read. Reading
// an xlsx sheet costs memory proportional to the sheet, even in chunks.
type XLSXReader struct {
	xl     *excelize.File
	sheets []string
	next   int
	cur    *xlsxSheetReader
}

// Open opens the workbook at path.
func Open(path string) (*XLSXReader, error) {
	xl, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &XLSXReader{xl: xl, sheets: xl.GetSheetList()}, nil
}

// OpenReader reads a workbook from r.
func OpenReader(r io.Reader) (*XLSXReader, error) {
	xl, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	return &XLSXReader{xl: xl, sheets: xl.GetSheetList()}, nil
}

// SheetNames returns the declared sheet names in document order.
func (xlr *XLSXReader) SheetNames() []string { return append([]string(nil), xlr.sheets...) }

func (xlr *XLSXReader) NextSheet() (forgeexcel.SheetReader, error) {
	if xlr.xl == nil {
		return nil, io.EOF
	}
	if err := xlr.closeCurrent(); err != nil {
		return nil, err
	}
	if xlr.next >= len(xlr.sheets) {
		return nil, io.EOF
	}
	name := xlr.sheets[xlr.next]
	xlr.next++
	rows, err := xlr.xl.Rows(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	xlr.cur = &xlsxSheetReader{xl: xlr.xl, name: name, rows: rows}
	return xlr.cur, nil
}

func (xlr *XLSXReader) closeCurrent() error {
	cur := xlr.cur
	xlr.cur = nil
	if cur == nil {
		return nil
	}
	return cur.rows.Close()
}

func (xlr *XLSXReader) Close() error {
	if xlr == nil || xlr.xl == nil {
		return nil
	}
	err := xlr.closeCurrent()
	xl := xlr.xl
	xlr.xl = nil
	if cerr := xl.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

type xlsxSheetReader struct {
	xl   *excelize.File
	name string
	rows *excelize.Rows
	row  int
}

func (s *xlsxSheetReader) Name() string { return s.name }

func (s *xlsxSheetReader) NextRow() (forgeexcel.Row, error) {
	if !s.rows.Next() {
		if err := s.rows.Error(); err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
		return nil, io.EOF
	}
	s.row++
	cols, err := s.rows.Columns(excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%s[%d]: %w", s.name, s.row, err)
	}
	row := make(forgeexcel.Row, len(cols))
	for i, raw := range cols {
		axis, err := excelize.CoordinatesToCellName(i+1, s.row)
		if err != nil {
			return nil, fmt.Errorf("%s[%d/%d]: %w", s.name, i, s.row, err)
		}
		if row[i], err = s.cellValue(axis, raw); err != nil {
			return nil, fmt.Errorf("%s[%s]: %w", s.name, axis, err)
		}
	}
	return row, nil
}

// cellValue types the raw text of the cell at axis. Formulas win over
// their cached results. excelize reports plain text cells written as
// t="str" with CellTypeFormula.
func (s *xlsxSheetReader) cellValue(axis, raw string) (forgeexcel.Value, error) {
	formula, err := s.xl.GetCellFormula(s.name, axis)
	if err != nil {
		return nil, err
	}
	if formula != "" {
		if !strings.HasPrefix(formula, "=") {
			formula = "=" + formula
		}
		return formula, nil
	}
	typ, err := s.xl.GetCellType(s.name, axis)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		// An empty text cell stays "", a missing or valueless cell is nil.
		switch typ {
		case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
			return "", nil
		}
		return nil, nil
	}
	switch typ {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true"), nil
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return forgeexcel.NumberValue(f), nil
		}
	}
	return raw, nil
}
