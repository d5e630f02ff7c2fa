// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

package ods

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zip"

	"github.com/lugotardo/forgeexcel"
)

const (
	nsOffice = "urn:oasis:names:tc:opendocument:xmlns:office:1.0"
	nsTable  = "urn:oasis:names:tc:opendocument:xmlns:table:1.0"
	nsText   = "urn:oasis:names:tc:opendocument:xmlns:text:1.0"
)

// MaxColumnCount caps the expansion of repeated cells in a row.
const MaxColumnCount = 16384

var _ = (forgeexcel.Reader)((*ODSReader)(nil))

// ODSReader streams the tables of content.xml in document order.
// Only the current table is decoded; NextSheet skips the rest of it.
type ODSReader struct {
	closer io.Closer
	rc     io.ReadCloser
	dec    *xml.Decoder
	cur    *odsSheetReader
	done   bool
}

// Open opens the OpenDocument spreadsheet at path.
func Open(path string) (*ODSReader, error) {
	zrc, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	r, err := newReader(&zrc.Reader)
	if err != nil {
		zrc.Close()
		return nil, err
	}
	r.closer = zrc
	return r, nil
}

// NewReader reads the spreadsheet archive from ra.
func NewReader(ra io.ReaderAt, size int64) (*ODSReader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, err
	}
	return newReader(zr)
}

func newReader(zr *zip.Reader) (*ODSReader, error) {
	for _, f := range zr.File {
		if f.Name != "mimetype" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		b, err := io.ReadAll(io.LimitReader(rc, 256))
		rc.Close()
		if err != nil {
			return nil, err
		}
		if mt := strings.TrimSpace(string(b)); mt != MimeType {
			return nil, fmt.Errorf("mimetype %q is not %q", mt, MimeType)
		}
		break
	}
	for _, f := range zr.File {
		if f.Name != "content.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("content.xml: %w", err)
		}
		return &ODSReader{rc: rc, dec: xml.NewDecoder(bufio.NewReaderSize(rc, 64<<10))}, nil
	}
	return nil, errors.New("content.xml not found")
}

func (odr *ODSReader) NextSheet() (forgeexcel.SheetReader, error) {
	if odr.done || odr.dec == nil {
		return nil, io.EOF
	}
	if cur := odr.cur; cur != nil {
		odr.cur = nil
		if err := cur.skipRest(); err != nil {
			return nil, fmt.Errorf("%s: %w", cur.name, err)
		}
	}
	for {
		tok, err := odr.dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				odr.done = true
			}
			return nil, err
		}
		st, ok := tok.(xml.StartElement)
		if !ok || st.Name.Space != nsTable || st.Name.Local != "table" {
			continue
		}
		odr.cur = &odsSheetReader{dec: odr.dec, name: attr(st, nsTable, "name")}
		return odr.cur, nil
	}
}

func (odr *ODSReader) Close() error {
	if odr == nil || odr.dec == nil {
		return nil
	}
	odr.dec, odr.cur = nil, nil
	err := odr.rc.Close()
	if odr.closer != nil {
		if cerr := odr.closer.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type odsSheetReader struct {
	dec  *xml.Decoder
	name string
	// queue holds decoded rows not yet returned.
	queue []forgeexcel.Row
	// empty counts blank rows seen since the last row with content;
	// they are only produced when content follows.
	empty int
	rows  int
	done  bool
}

func (s *odsSheetReader) Name() string { return s.name }

func (s *odsSheetReader) NextRow() (forgeexcel.Row, error) {
	for len(s.queue) == 0 {
		if s.done {
			return nil, io.EOF
		}
		if err := s.fill(); err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
	}
	row := s.queue[0]
	s.queue = s.queue[1:]
	return row, nil
}

// fill decodes up to the next table-row, or the end of the table.
func (s *odsSheetReader) fill() error {
	for {
		tok, err := s.dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return err
		}
		switch t := tok.(type) {
		case xml.EndElement:
			if t.Name.Space == nsTable && t.Name.Local == "table" {
				s.done = true
				return nil
			}
		case xml.StartElement:
			if t.Name.Space != nsTable {
				if err := s.dec.Skip(); err != nil {
					return err
				}
				continue
			}
			switch t.Name.Local {
			case "table-row":
				repeat := repeated(t, "number-rows-repeated")
				row, err := readRow(s.dec, t)
				if err != nil {
					return err
				}
				if len(row) == 0 {
					s.empty = min(s.empty+repeat, forgeexcel.MaxRowCount)
					continue
				}
				s.queueRows(row, repeat)
				return nil
			case "table-header-rows", "table-rows", "table-row-group":
				// descend
			default:
				if err := s.dec.Skip(); err != nil {
					return err
				}
			}
		}
	}
}

// skipRest consumes the tokens up to the end of the table.
func (s *odsSheetReader) skipRest() error {
	if s.done {
		return nil
	}
	s.done, s.queue = true, nil
	var depth int
	for {
		tok, err := s.dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space == nsTable && t.Name.Local == "table" {
				depth++
			}
		case xml.EndElement:
			if t.Name.Space == nsTable && t.Name.Local == "table" {
				if depth == 0 {
					return nil
				}
				depth--
			}
		}
	}
}

func (s *odsSheetReader) queueRows(row forgeexcel.Row, repeat int) {
	for ; s.empty > 0 && s.rows < forgeexcel.MaxRowCount; s.empty-- {
		s.queue = append(s.queue, forgeexcel.Row{})
		s.rows++
	}
	s.empty = 0
	for i := 0; i < repeat && s.rows < forgeexcel.MaxRowCount; i++ {
		if i == 0 {
			s.queue = append(s.queue, row)
		} else {
			s.queue = append(s.queue, append(forgeexcel.Row(nil), row...))
		}
		s.rows++
	}
}

// readRow decodes the cells of a table-row, without the trailing blanks.
func readRow(dec *xml.Decoder, start xml.StartElement) (forgeexcel.Row, error) {
	var row forgeexcel.Row
	var blank int
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.EndElement:
			if t.Name == start.Name {
				return row, nil
			}
		case xml.StartElement:
			if t.Name.Space != nsTable || (t.Name.Local != "table-cell" && t.Name.Local != "covered-table-cell") {
				if err := dec.Skip(); err != nil {
					return nil, err
				}
				continue
			}
			repeat := repeated(t, "number-columns-repeated")
			v, err := readCell(dec, t)
			if err != nil {
				return nil, err
			}
			if v == nil {
				blank = min(blank+repeat, MaxColumnCount)
				continue
			}
			for ; blank > 0 && len(row) < MaxColumnCount; blank-- {
				row = append(row, nil)
			}
			blank = 0
			for i := 0; i < repeat && len(row) < MaxColumnCount; i++ {
				row = append(row, v)
			}
		}
	}
}

// readCell returns the typed value of a table-cell. Formulas win over their
// cached values; dates and times are returned as their ISO text. A string
// cell is returned as text even when empty; untyped empty cells are nil.
func readCell(dec *xml.Decoder, start xml.StartElement) (forgeexcel.Value, error) {
	text, err := cellText(dec, start)
	if err != nil {
		return nil, err
	}
	if f := attr(start, nsTable, "formula"); f != "" {
		if i := strings.IndexByte(f, ':'); i >= 0 && i < strings.IndexByte(f+"=", '=') {
			f = f[i+1:]
		}
		if !strings.HasPrefix(f, "=") {
			f = "=" + f
		}
		return f, nil
	}
	switch attr(start, nsOffice, "value-type") {
	case "float", "percentage", "currency":
		if f, err := strconv.ParseFloat(attr(start, nsOffice, "value"), 64); err == nil {
			return forgeexcel.NumberValue(f), nil
		}
	case "boolean":
		if b, err := forgeexcel.ParseBool(attr(start, nsOffice, "boolean-value")); err == nil {
			return b, nil
		}
	case "date":
		if d := attr(start, nsOffice, "date-value"); d != "" {
			return d, nil
		}
	case "time":
		if d := attr(start, nsOffice, "time-value"); d != "" {
			return d, nil
		}
	case "string":
		if sv := attr(start, nsOffice, "string-value"); sv != "" {
			return sv, nil
		}
		return text, nil
	}
	if text == "" {
		return nil, nil
	}
	return text, nil
}

// cellText collects the paragraphs of a cell, joined by newlines.
// Annotations are skipped.
func cellText(dec *xml.Decoder, start xml.StartElement) (string, error) {
	var paras []string
	var buf strings.Builder
	var depth int
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.EndElement:
			if t.Name == start.Name {
				return strings.Join(paras, "\n"), nil
			}
			if t.Name.Space == nsText && (t.Name.Local == "p" || t.Name.Local == "h") {
				if depth--; depth == 0 {
					paras = append(paras, buf.String())
				}
			}
		case xml.CharData:
			if depth > 0 {
				buf.Write(t)
			}
		case xml.StartElement:
			if t.Name.Space == nsOffice && t.Name.Local == "annotation" {
				if err := dec.Skip(); err != nil {
					return "", err
				}
				continue
			}
			if t.Name.Space != nsText {
				continue
			}
			switch t.Name.Local {
			case "p", "h":
				if depth == 0 {
					buf.Reset()
				}
				depth++
			case "s":
				buf.WriteString(strings.Repeat(" ", repeated(t, "c")))
				if err := dec.Skip(); err != nil {
					return "", err
				}
			case "tab":
				buf.WriteByte('\t')
				if err := dec.Skip(); err != nil {
					return "", err
				}
			case "line-break":
				buf.WriteByte('\n')
				if err := dec.Skip(); err != nil {
					return "", err
				}
			}
		}
	}
}

func attr(st xml.StartElement, space, local string) string {
	for _, a := range st.Attr {
		if a.Name.Space == space && a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// repeated returns the positive repeat count in the named attribute, 1 by default.
func repeated(st xml.StartElement, local string) int {
	for _, a := range st.Attr {
		if a.Name.Local != local {
			continue
		}
		if n, err := strconv.Atoi(a.Value); err == nil && n > 0 {
			return n
		}
	}
	return 1
}
