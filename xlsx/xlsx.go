// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

// Package xlsx implements the forgeexcel codec for Office Open XML
// workbooks on top of excelize.
package xlsx

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/lugotardo/forgeexcel"
)

var _ = (forgeexcel.Writer)((*XLSXWriter)(nil))

type XLSXWriter struct {
	w      io.Writer
	path   string
	xl     *excelize.File
	styles map[forgeexcel.Style]int
	sheets []*XLSXSheet
	mu     sync.Mutex
}

type XLSXSheet struct {
	xlw  *XLSXWriter
	sw   *excelize.StreamWriter
	Name string
	row  int
	mu   sync.Mutex
}

// NewWriter returns a new forgeexcel.Writer writing the workbook to w on Close.
//
// This writer allows concurrent writes to separate sheets.
//
// Rows are streamed into per-sheet buffers, so big sheets do not stay in memory.
func NewWriter(w io.Writer) *XLSXWriter {
	return &XLSXWriter{w: w, xl: excelize.NewFile()}
}

// Create returns a writer that saves the workbook to path on Close.
func Create(path string) *XLSXWriter {
	return &XLSXWriter{path: path, xl: excelize.NewFile()}
}

func (xlw *XLSXWriter) Close() error {
	if xlw == nil {
		return nil
	}
	xlw.mu.Lock()
	xl, w, path, sheets := xlw.xl, xlw.w, xlw.path, xlw.sheets
	xlw.xl, xlw.w = nil, nil
	xlw.mu.Unlock()
	if xl == nil {
		return nil
	}
	defer xl.Close()
	for _, s := range sheets {
		if err := s.flush(); err != nil {
			return err
		}
	}
	if w != nil {
		_, err := xl.WriteTo(w)
		return err
	}
	if path == "" {
		return nil
	}
	return xl.SaveAs(path)
}

func (xlw *XLSXWriter) NewSheet(name string) (forgeexcel.Sheet, error) {
	xlw.mu.Lock()
	defer xlw.mu.Unlock()
	if xlw.xl == nil {
		return nil, fmt.Errorf("%s: writer is closed", name)
	}
	// excelize matches sheet names case-insensitively and would hand back
	// the existing sheet.
	for _, s := range xlw.sheets {
		if strings.EqualFold(s.Name, name) {
			return nil, fmt.Errorf("sheet %q: %w", name, forgeexcel.ErrInvalidArgument)
		}
	}
	if len(xlw.sheets) == 0 { // first
		if name != "Sheet1" {
			if err := xlw.xl.SetSheetName("Sheet1", name); err != nil {
				return nil, err
			}
		}
	} else if _, err := xlw.xl.NewSheet(name); err != nil {
		return nil, err
	}
	sw, err := xlw.xl.NewStreamWriter(name)
	if err != nil {
		return nil, err
	}
	xls := &XLSXSheet{xlw: xlw, sw: sw, Name: name}
	xlw.sheets = append(xlw.sheets, xls)
	return xls, nil
}

// getStyle returns the excelize style ID of style, 0 for the zero style.
func (xlw *XLSXWriter) getStyle(style forgeexcel.Style) (int, error) {
	if style.IsZero() {
		return 0, nil
	}
	xlw.mu.Lock()
	defer xlw.mu.Unlock()
	if s, ok := xlw.styles[style]; ok {
		return s, nil
	}
	if xlw.xl == nil {
		return 0, fmt.Errorf("writer is closed")
	}
	s, err := xlw.xl.NewStyle(excelStyle(style))
	if err != nil {
		return 0, err
	}
	if xlw.styles == nil {
		xlw.styles = make(map[forgeexcel.Style]int)
	}
	xlw.styles[style] = s
	return s, nil
}

var borderStyles = map[forgeexcel.BorderStyle]int{
	forgeexcel.BorderThin:   1,
	forgeexcel.BorderMedium: 2,
	forgeexcel.BorderDashed: 3,
	forgeexcel.BorderDotted: 4,
	forgeexcel.BorderThick:  5,
	forgeexcel.BorderDouble: 6,
}

func excelStyle(style forgeexcel.Style) *excelize.Style {
	var st excelize.Style
	if style.Bold || style.Italic || style.Underline || style.FontSize != 0 ||
		style.FontName != "" || style.FontColor != "" {
		st.Font = &excelize.Font{
			Bold:   style.Bold,
			Italic: style.Italic,
			Size:   style.FontSize,
			Family: style.FontName,
		}
		if style.Underline {
			st.Font.Underline = "single"
		}
		if style.FontColor != "" {
			st.Font.Color = style.FontColor
		}
	}
	if style.Background != "" {
		st.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{style.Background}}
	}
	if style.Align != "" || style.WrapText {
		st.Alignment = &excelize.Alignment{Horizontal: string(style.Align), WrapText: style.WrapText}
	}
	if !style.Border.IsZero() {
		bs := borderStyles[style.Border.Style]
		for _, side := range []string{"left", "top", "right", "bottom"} {
			st.Border = append(st.Border, excelize.Border{Type: side, Color: style.Border.Color, Style: bs})
		}
	}
	return &st
}

// MaxRowCount is the number of maximum rows.
const MaxRowCount = forgeexcel.MaxRowCount

// Close flushes the sheet; no more rows can be appended afterwards.
func (xls *XLSXSheet) Close() error { return xls.flush() }

func (xls *XLSXSheet) flush() error {
	xls.mu.Lock()
	defer xls.mu.Unlock()
	sw := xls.sw
	xls.sw = nil
	if sw == nil {
		return nil
	}
	return sw.Flush()
}

func (xls *XLSXSheet) AppendRow(row forgeexcel.Row, styles []forgeexcel.Style) error {
	xls.mu.Lock()
	defer xls.mu.Unlock()
	if xls.sw == nil {
		return fmt.Errorf("%s: sheet is closed", xls.Name)
	}
	if xls.row >= MaxRowCount {
		return forgeexcel.ErrTooManyRows
	}
	xls.row++
	cells := make([]any, len(row))
	for i, v := range row {
		var c excelize.Cell
		if i < len(styles) {
			s, err := xls.xlw.getStyle(styles[i])
			if err != nil {
				return fmt.Errorf("%s[%d/%d]: %w", xls.Name, i, xls.row, err)
			}
			c.StyleID = s
		}
		switch x := forgeexcel.Normalize(v).(type) {
		case nil:
		case string:
			if forgeexcel.IsFormula(x) {
				c.Formula = x[1:]
			} else {
				c.Value = x
			}
		default:
			c.Value = x
		}
		if c.Value == nil && c.Formula == "" && c.StyleID == 0 {
			continue
		}
		cells[i] = c
	}
	axis, err := excelize.CoordinatesToCellName(1, xls.row)
	if err != nil {
		return fmt.Errorf("%s[%d]: %w", xls.Name, xls.row, err)
	}
	if err := xls.sw.SetRow(axis, cells); err != nil {
		return fmt.Errorf("%s[%s]: %w", xls.Name, axis, err)
	}
	return nil
}
