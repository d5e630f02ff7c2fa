// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

package ods

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lugotardo/forgeexcel"
)

func readSheets(t *testing.T, r forgeexcel.Reader) ([]string, [][]forgeexcel.Row) {
	t.Helper()
	var names []string
	var sheets [][]forgeexcel.Row
	for {
		sh, err := r.NextSheet()
		if errors.Is(err, io.EOF) {
			return names, sheets
		}
		require.NoError(t, err)
		var rows []forgeexcel.Row
		for {
			row, err := sh.NextRow()
			if errors.Is(err, io.EOF) {
				break
			}
			require.NoError(t, err)
			rows = append(rows, row)
		}
		names = append(names, sh.Name())
		sheets = append(sheets, rows)
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.ods")
	w, err := Create(path)
	require.NoError(t, err)

	bold := forgeexcel.Style{Bold: true, Background: "70AD47", Align: forgeexcel.AlignLeft,
		Border: forgeexcel.Border{Style: forgeexcel.BorderDashed, Color: "FF0000"}}
	data, err := w.NewSheet("Data & <More>")
	require.NoError(t, err)
	require.NoError(t, data.AppendRow(forgeexcel.Row{"Name", "Qty", "Price"},
		[]forgeexcel.Style{bold, bold, bold}))
	require.NoError(t, data.AppendRow(forgeexcel.Row{"Widget", 2, "=B2*C2"}, nil))
	require.NoError(t, data.AppendRow(forgeexcel.Row{"two\nlines", 2.5, false}, nil))
	require.NoError(t, data.AppendRow(forgeexcel.Row{}, nil))
	require.NoError(t, data.AppendRow(forgeexcel.Row{nil, nil, "after gap"}, nil))

	empty, err := w.NewSheet("Empty")
	require.NoError(t, err)
	require.NoError(t, empty.Close())

	_, err = w.NewSheet("Empty")
	assert.ErrorIs(t, err, forgeexcel.ErrInvalidArgument)
	_, err = w.NewSheet("EMPTY")
	assert.ErrorIs(t, err, forgeexcel.ErrInvalidArgument)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()
	names, sheets := readSheets(t, r)
	assert.Equal(t, []string{"Data & <More>", "Empty"}, names)
	assert.Equal(t, []forgeexcel.Row{
		{"Name", "Qty", "Price"},
		{"Widget", 2, "=B2*C2"},
		{"two\nlines", 2.5, false},
		{},
		{nil, nil, "after gap"},
	}, sheets[0])
	assert.Empty(t, sheets[1])
}

func TestArchiveLayout(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)
	s, err := w.NewSheet("S")
	require.NoError(t, err)
	st := forgeexcel.Style{Italic: true, FontSize: 11.5, FontName: "Arial", FontColor: "0000FF", WrapText: true}
	require.NoError(t, s.AppendRow(forgeexcel.Row{"a", "b"}, []forgeexcel.Style{st, st}))
	require.NoError(t, w.Close())

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.NotEmpty(t, zr.File)
	assert.Equal(t, "mimetype", zr.File[0].Name)
	assert.Equal(t, zip.Store, zr.File[0].Method)

	var content string
	for _, f := range zr.File {
		if f.Name != "content.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		content = string(b)
	}
	assert.Equal(t, 1, strings.Count(content, `style:name="ce1"`), "one automatic style per distinct Style")
	assert.NotContains(t, content, `ce2`)
	for _, want := range []string{
		`fo:font-style="italic"`, `fo:font-size="11.5pt"`, `fo:font-family="Arial"`,
		`fo:color="#0000FF"`, `fo:wrap-option="wrap"`, `table:style-name="ce1"`,
	} {
		assert.Contains(t, content, want)
	}

	r, err := NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	defer r.Close()
	_, sheets := readSheets(t, r)
	assert.Equal(t, []forgeexcel.Row{{"a", "b"}}, sheets[0])
}

func TestEmptyWorkbook(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	defer r.Close()
	names, _ := readSheets(t, r)
	assert.Equal(t, []string{forgeexcel.DefaultSheetName}, names)
}

const foreignContent = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"
 xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0"
 xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0" office:version="1.2">
<office:body><office:spreadsheet>
<table:table table:name="First">
 <table:table-column table:number-columns-repeated="3"/>
 <table:table-header-rows>
  <table:table-row><table:table-cell office:value-type="string"><text:p>a<text:s text:c="2"/>b</text:p></table:table-cell></table:table-row>
 </table:table-header-rows>
 <table:table-row table:number-rows-repeated="2">
  <table:table-cell office:value-type="float" office:value="3"><text:p>3</text:p></table:table-cell>
  <table:table-cell table:number-columns-repeated="2"/>
  <table:table-cell office:value-type="percentage" office:value="0.25"><text:p>25%</text:p></table:table-cell>
  <table:table-cell table:number-columns-repeated="1000"/>
 </table:table-row>
 <table:table-row>
  <table:table-cell office:value-type="date" office:date-value="2024-03-01"><text:p>01.03.24</text:p></table:table-cell>
  <table:table-cell table:formula="of:=[.A2]*2" office:value-type="float" office:value="6"><text:p>6</text:p></table:table-cell>
  <table:table-cell office:value-type="string"><text:p>x<text:span>y</text:span><text:tab/>z</text:p><office:annotation><text:p>note</text:p></office:annotation></table:table-cell>
 </table:table-row>
 <table:table-row table:number-rows-repeated="1048570"><table:table-cell table:number-columns-repeated="1024"/></table:table-row>
</table:table>
<table:table table:name="Second">
 <table:table-row><table:table-cell office:value-type="boolean" office:boolean-value="true"><text:p>TRUE</text:p></table:table-cell></table:table-row>
</table:table>
</office:spreadsheet></office:body></office:document-content>
`

func writeForeign(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foreign.ods")
	fh, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(fh)
	w, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	require.NoError(t, err)
	_, err = io.WriteString(w, MimeType)
	require.NoError(t, err)
	w, err = zw.Create("content.xml")
	require.NoError(t, err)
	_, err = io.WriteString(w, foreignContent)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, fh.Close())
	return path
}

func TestReadForeign(t *testing.T) {
	r, err := Open(writeForeign(t))
	require.NoError(t, err)
	defer r.Close()

	names, sheets := readSheets(t, r)
	assert.Equal(t, []string{"First", "Second"}, names)
	assert.Equal(t, []forgeexcel.Row{
		{"a  b"},
		{3, nil, nil, 0.25},
		{3, nil, nil, 0.25},
		{"2024-03-01", "=[.A2]*2", "xy\tz"},
	}, sheets[0], "trailing blank rows and cells are dropped")
	assert.Equal(t, []forgeexcel.Row{{true}}, sheets[1])
}

func TestNextSheetSkipsUnreadRows(t *testing.T) {
	r, err := Open(writeForeign(t))
	require.NoError(t, err)
	defer r.Close()

	first, err := r.NextSheet()
	require.NoError(t, err)
	row, err := first.NextRow()
	require.NoError(t, err)
	assert.Equal(t, forgeexcel.Row{"a  b"}, row)

	second, err := r.NextSheet()
	require.NoError(t, err)
	assert.Equal(t, "Second", second.Name())
	row, err = second.NextRow()
	require.NoError(t, err)
	assert.Equal(t, forgeexcel.Row{true}, row)

	_, err = r.NextSheet()
	assert.ErrorIs(t, err, io.EOF)
}

func TestOpenInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ods")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))
	_, err := Open(path)
	assert.Error(t, err)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("mimetype")
	require.NoError(t, err)
	_, err = io.WriteString(w, "application/zip")
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	_, err = NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	assert.ErrorContains(t, err, "mimetype")
}
