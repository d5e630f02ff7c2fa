// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

package forge_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/lugotardo/forgeexcel"
	"github.com/lugotardo/forgeexcel/forge"
)

var products = []forgeexcel.Row{
	{"Name", "Qty", "Price"},
	{"Widget", 2, "=B2*C2"},
	{"Gadget", 5, 1.25},
	{"Gizmo", 0, true},
}

func quiet() forge.Option {
	return forge.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestWriteTableReadAll(t *testing.T) {
	e := forge.New(quiet())
	for _, ext := range []string{"xlsx", "ods"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out", "products."+ext)
			require.NoError(t, e.WriteTable(path, products, "green"))

			rows, err := e.ReadAll(path, true)
			require.NoError(t, err)
			require.Len(t, rows, 3)
			assert.Equal(t, map[string]forgeexcel.Value{"Name": "Widget", "Qty": 2, "Price": "=B2*C2"}, rows[0].Map())
			assert.Equal(t, map[string]forgeexcel.Value{"Name": "Gadget", "Qty": 5, "Price": 1.25}, rows[1].Map())
			assert.Equal(t, map[string]forgeexcel.Value{"Name": "Gizmo", "Qty": 0, "Price": true}, rows[2].Map())
		})
	}
}

func TestWriteTableStyles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "green.xlsx")
	require.NoError(t, forge.New(quiet()).WriteTable(path, products, "green"))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	header, err := f.GetCellStyle(forgeexcel.DefaultSheetName, "A1")
	require.NoError(t, err)
	odd, err := f.GetCellStyle(forgeexcel.DefaultSheetName, "A2")
	require.NoError(t, err)
	even, err := f.GetCellStyle(forgeexcel.DefaultSheetName, "A3")
	require.NoError(t, err)
	assert.NotEqual(t, header, odd)
	assert.NotEqual(t, odd, even)

	st, err := f.GetStyle(header)
	require.NoError(t, err)
	require.NotNil(t, st.Font)
	assert.True(t, st.Font.Bold)
}

func TestCountRowsProperty(t *testing.T) {
	e := forge.New(quiet())
	for _, ext := range []string{"xlsx", "ods"} {
		path := filepath.Join(t.TempDir(), "sheets."+ext)
		require.NoError(t, e.WriteWithSheets(path, []forgeexcel.SheetData{
			{Name: "A", Rows: products},
			{Name: "B", Rows: []forgeexcel.Row{{"h"}, {"v"}}},
		}))
		all, err := e.CountRows(path, true)
		require.NoError(t, err)
		data, err := e.CountRows(path, false)
		require.NoError(t, err)
		assert.Equal(t, 6, all, ext)
		assert.Equal(t, all-2, data, ext)

		sheets, err := e.ReadAllSeparated(path, true)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, sheets.Names())

		first, err := e.ReadFirstSheet(path, true)
		require.NoError(t, err)
		assert.Len(t, first, 3)
	}
}

func TestChunksMatchReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chunks.ods")
	rows := []forgeexcel.Row{{"id"}, {1}, {2}, {3}, {4}, {5}}
	require.NoError(t, forge.Write(path, rows, 0))

	var sizes []int
	var got []forgeexcel.MappedRow
	require.NoError(t, forge.ReadInChunks(path, 2, func(chunk []forgeexcel.MappedRow) error {
		sizes = append(sizes, len(chunk))
		got = append(got, chunk...)
		return nil
	}, true))
	assert.Equal(t, []int{2, 2, 1}, sizes)

	all, err := forge.ReadAll(path, true)
	require.NoError(t, err)
	assert.Equal(t, all, got)

	err = forge.ReadInChunks(filepath.Join(t.TempDir(), "missing.ods"), 0, func([]forgeexcel.MappedRow) error { return nil }, true)
	assert.ErrorIs(t, err, forgeexcel.ErrInvalidArgument)
}

func TestCSV(t *testing.T) {
	e := forge.New(quiet(), forge.WithCSVComma(';'), forge.WithCSVEncoding("utf-8"))
	path := filepath.Join(t.TempDir(), "products.csv")
	require.NoError(t, e.WriteTable(path, products, "red"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Name;Qty;Price\nWidget;2;=B2*C2\nGadget;5;1.25\nGizmo;0;TRUE\n", string(b))

	sheets, err := e.ReadAllSeparated(path, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"products"}, sheets.Names())
	rows, _ := sheets.Lookup("products")
	assert.Equal(t, map[string]forgeexcel.Value{"Name": "Widget", "Qty": "2", "Price": "=B2*C2"}, rows[0].Map())

	err = e.WriteWithSheets(path, []forgeexcel.SheetData{{Name: "a"}, {Name: "b"}})
	assert.ErrorIs(t, err, forgeexcel.ErrUnsupported)
}

func TestWriteStyledSheetsODS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styled.ods")
	err := forge.WriteStyledSheets(path, []forgeexcel.StyledSheet{
		{Name: "One", Rows: products, HeaderStyle: &forgeexcel.StyleOptions{Bold: true, Border: true}},
		{Name: "Two", Rows: products[:1], RowStyles: map[int]forgeexcel.StyleOptions{0: {Italic: true}}},
	})
	require.NoError(t, err)

	sheets, err := forge.ReadAllSeparated(path, false)
	require.NoError(t, err)
	one, ok := sheets.Lookup("One")
	require.True(t, ok)
	assert.Len(t, one, 4)
}

func TestWriteWithFormulas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formulas.xlsx")
	require.NoError(t, forge.WriteWithFormulas(path, []forgeexcel.Row{{"a", "b", "sum"}, {1, 2, "=A2+B2"}}, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	formula, err := f.GetCellFormula(forgeexcel.DefaultSheetName, "C2")
	require.NoError(t, err)
	assert.Equal(t, "A2+B2", formula)
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := forge.ReadAll(filepath.Join(dir, "missing.xlsx"), true)
	assert.ErrorIs(t, err, forgeexcel.ErrFileNotFound)

	bad := filepath.Join(dir, "bad.xlsx")
	require.NoError(t, os.WriteFile(bad, []byte("not a workbook"), 0o644))
	_, err = forge.ReadAll(bad, true)
	assert.ErrorIs(t, err, forgeexcel.ErrCodec)

	unknown := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(unknown, []byte{1, 2, 3}, 0o644))
	_, err = forge.CountRows(unknown, true)
	assert.ErrorIs(t, err, forgeexcel.ErrCodec)
}

func TestStyleConfig(t *testing.T) {
	cfg, err := forgeexcel.LoadStyleConfig(strings.NewReader("theme: purple\ncolumns:\n  2: {align: right}\n"))
	require.NoError(t, err)
	set, err := cfg.StyleSet()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "configured.xlsx")
	require.NoError(t, forge.WriteStyled(path, products, set))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	id, err := f.GetCellStyle(forgeexcel.DefaultSheetName, "C3")
	require.NoError(t, err)
	st, err := f.GetStyle(id)
	require.NoError(t, err)
	require.NotNil(t, st.Alignment)
	assert.Equal(t, "right", st.Alignment.Horizontal)
}

func TestSheetNamesIgnoreCase(t *testing.T) {
	e := forge.New(quiet())
	for _, ext := range []string{"xlsx", "ods"} {
		path := filepath.Join(t.TempDir(), "dup."+ext)
		err := e.WriteWithSheets(path, []forgeexcel.SheetData{
			{Name: "Data", Rows: []forgeexcel.Row{{"first"}}},
			{Name: "data", Rows: []forgeexcel.Row{{"second"}}},
		})
		assert.ErrorIs(t, err, forgeexcel.ErrInvalidArgument, ext)
		assert.NoFileExists(t, path, ext)
	}
}

func TestEmptyTextRoundTrip(t *testing.T) {
	e := forge.New(quiet())
	row := forgeexcel.Row{"007", "", " x "}
	for _, ext := range []string{"xlsx", "ods"} {
		path := filepath.Join(t.TempDir(), "text."+ext)
		require.NoError(t, e.Write(path, []forgeexcel.Row{row}, 0))
		rows, err := e.ReadAll(path, false)
		require.NoError(t, err)
		require.Len(t, rows, 1, ext)
		assert.Equal(t, row, rows[0].Values(), ext)
	}

	// Delimited text cannot tell an empty field from a missing one.
	path := filepath.Join(t.TempDir(), "text.csv")
	e = forge.New(quiet(), forge.WithCSVEncoding("utf-8"))
	require.NoError(t, e.Write(path, []forgeexcel.Row{row}, 0))
	rows, err := e.ReadAll(path, false)
	require.NoError(t, err)
	assert.Equal(t, forgeexcel.Row{"007", nil, " x "}, rows[0].Values())
}

func TestTSVWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tsv")
	require.NoError(t, forge.New(quiet(), forge.WithCSVEncoding("utf-8")).Write(path, []forgeexcel.Row{{"a", "b,c"}}, 0))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\tb,c\n", string(b))
}
