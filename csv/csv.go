// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

// Package csv implements the forgeexcel codec for delimited text: one
// implicit sheet, named after the file, without styles.
package csv

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/lugotardo/forgeexcel"
)

// EncName is the default charset, taken from $LANG.
var EncName = "utf-8"

func init() {
	EncName = os.Getenv("LANG")
	if i := strings.IndexByte(EncName, '.'); i >= 0 {
		EncName = strings.ToLower(EncName[i+1:])
		if i = strings.IndexByte(EncName, '@'); i >= 0 {
			EncName = EncName[:i]
		}
	} else {
		EncName = ""
	}
	if EncName == "" {
		EncName = "utf-8"
	}
}

// GetEncoding returns the named encoding; nil for UTF-8.
func GetEncoding(encName string) (encoding.Encoding, error) {
	encName = strings.ToLower(encName)
	if encName == "" || encName == "utf-8" || encName == "utf8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(encName)
	if err != nil {
		err = fmt.Errorf("%q: %w", encName, err)
	}
	return enc, err
}

// Options for reading and writing delimited files.
type Options struct {
	// Comma is the field separator. When zero, .tsv files use a tab;
	// otherwise readers sniff it from the first line and writers use ','.
	Comma rune
	// Encoding is the charset name (see htmlindex), EncName when empty.
	Encoding string
}

func (o Options) encoding() (encoding.Encoding, error) {
	name := o.Encoding
	if name == "" {
		name = EncName
	}
	return GetEncoding(name)
}

// separators are the candidates a reader sniffs for.
const separators = ",;\t|"

// sniffComma returns the first separator candidate outside quotes on the
// first line of b, ',' if there is none.
func sniffComma(b []byte) rune {
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		b = b[:i]
	}
	var quoted bool
	for _, r := range string(b) {
		if r == '"' {
			quoted = !quoted
			continue
		}
		if !quoted && strings.ContainsRune(separators, r) {
			return r
		}
	}
	return ','
}

// pathComma is the separator implied by the extension of path: a tab for
// .tsv files, 0 otherwise.
func pathComma(path string) rune {
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		return '\t'
	}
	return 0
}

// SheetName is the sheet name of the delimited file at path.
func SheetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

var _ = (forgeexcel.Reader)((*CSVReader)(nil))

// CSVReader presents a delimited file as a single sheet.
type CSVReader struct {
	io.Closer
	cr    *csv.Reader
	name  string
	given bool
}

// Open opens the delimited file at path.
func Open(path string, opts Options) (*CSVReader, error) {
	enc, err := opts.encoding()
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := io.Reader(fh)
	if enc != nil {
		r = enc.NewDecoder().Reader(r)
	}
	br := bufio.NewReaderSize(r, 1<<20)
	if b, _ := br.Peek(3); bytes.Equal(b, []byte("\xef\xbb\xbf")) {
		_, _ = br.Discard(3)
	}
	comma := opts.Comma
	if comma == 0 {
		comma = pathComma(path)
	}
	if comma == 0 {
		b, err := br.Peek(4096)
		if err != nil && len(b) == 0 && err != io.EOF {
			fh.Close()
			return nil, err
		}
		comma = sniffComma(b)
	}

	cr := csv.NewReader(br)
	cr.ReuseRecord = true
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return &CSVReader{Closer: fh, cr: cr, name: SheetName(path)}, nil
}

// NextSheet returns the only sheet once.
func (r *CSVReader) NextSheet() (forgeexcel.SheetReader, error) {
	if r.given {
		return nil, io.EOF
	}
	r.given = true
	return csvSheet{r}, nil
}

type csvSheet struct{ r *CSVReader }

func (s csvSheet) Name() string { return s.r.name }

// NextRow returns the next record; empty fields are nil.
func (s csvSheet) NextRow() (forgeexcel.Row, error) {
	rec, err := s.r.cr.Read()
	if err != nil {
		return nil, err
	}
	row := make(forgeexcel.Row, len(rec))
	for i, f := range rec {
		if f != "" {
			row[i] = f
		}
	}
	return row, nil
}

var _ = (forgeexcel.Writer)((*CSVWriter)(nil))

// CSVWriter writes a single sheet as delimited text. Styles are ignored.
type CSVWriter struct {
	fh    *os.File
	w     io.Writer
	bw    *bufio.Writer
	cw    *csv.Writer
	sheet bool
}

// Create creates the delimited file at path.
func Create(path string, opts Options) (*CSVWriter, error) {
	enc, err := opts.encoding()
	if err != nil {
		return nil, err
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := io.Writer(fh)
	if enc != nil {
		w = enc.NewEncoder().Writer(w)
	}
	bw := bufio.NewWriterSize(w, 64<<10)
	cw := csv.NewWriter(bw)
	if opts.Comma != 0 {
		cw.Comma = opts.Comma
	} else if comma := pathComma(path); comma != 0 {
		cw.Comma = comma
	}
	return &CSVWriter{fh: fh, w: w, bw: bw, cw: cw}, nil
}

// NewSheet returns the only sheet; a second call fails with
// forgeexcel.ErrUnsupported. The name is not recorded in the file.
func (w *CSVWriter) NewSheet(name string) (forgeexcel.Sheet, error) {
	if w.sheet {
		return nil, fmt.Errorf("sheet %q: csv holds a single sheet: %w", name, forgeexcel.ErrUnsupported)
	}
	w.sheet = true
	return csvSheetWriter{w}, nil
}

func (w *CSVWriter) Close() error {
	if w == nil || w.fh == nil {
		return nil
	}
	fh := w.fh
	w.fh = nil
	w.cw.Flush()
	err := w.cw.Error()
	if ferr := w.bw.Flush(); ferr != nil && err == nil {
		err = ferr
	}
	if c, ok := w.w.(io.Closer); ok && w.w != io.Writer(fh) {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if cerr := fh.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

type csvSheetWriter struct{ w *CSVWriter }

func (s csvSheetWriter) AppendRow(row forgeexcel.Row, _ []forgeexcel.Style) error {
	rec := make([]string, len(row))
	for i, v := range row {
		rec[i] = forgeexcel.FormatValue(forgeexcel.Normalize(v))
	}
	return s.w.cw.Write(rec)
}

func (s csvSheetWriter) Close() error {
	s.w.cw.Flush()
	return s.w.cw.Error()
}
