// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

package forgeexcel

// StyleSet assigns styles to the cells of a sheet being written.
//
// Resolve picks exactly one source per cell, in this order: Rows[row],
// Columns[col], Header (row 0 only), Theme (Odd on odd rows, Even on even
// rows). Sources are never merged.
type StyleSet struct {
	Rows    map[int]Style
	Columns map[int]Style
	Header  *Style
	Theme   *ThemedStyles
}

// Resolve returns the style of the cell at (row, col), zero if none applies.
func (s *StyleSet) Resolve(row, col int) Style {
	if s == nil {
		return Style{}
	}
	if st, ok := s.Rows[row]; ok {
		return st
	}
	if st, ok := s.Columns[col]; ok {
		return st
	}
	if row == 0 && s.Header != nil {
		return *s.Header
	}
	if s.Theme != nil {
		if row%2 == 1 {
			return s.Theme.Odd
		}
		return s.Theme.Even
	}
	return Style{}
}

// Empty reports whether no source is configured.
func (s *StyleSet) Empty() bool {
	return s == nil || (len(s.Rows) == 0 && len(s.Columns) == 0 && s.Header == nil && s.Theme == nil)
}

// rowStyles resolves the styles for a row of n cells, nil when every cell is
// unstyled.
func (s *StyleSet) rowStyles(row, n int) []Style {
	if s.Empty() || n == 0 {
		return nil
	}
	var styles []Style
	for c := 0; c < n; c++ {
		st := s.Resolve(row, c)
		if st.IsZero() {
			continue
		}
		if styles == nil {
			styles = make([]Style, n)
		}
		styles[c] = st
	}
	return styles
}

func stylesFromOptions(opts map[int]StyleOptions) (map[int]Style, error) {
	if len(opts) == 0 {
		return nil, nil
	}
	m := make(map[int]Style, len(opts))
	for k, o := range opts {
		st, err := CreateStyle(o)
		if err != nil {
			return nil, err
		}
		m[k] = st
	}
	return m, nil
}
