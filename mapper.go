// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

package forgeexcel

import (
	"strconv"
)

// MappedRow is a row read from a sheet, either positional or keyed by the
// sheet's header row.
type MappedRow struct {
	keys   []string
	values Row
}

// Positional returns an unkeyed MappedRow over values.
func Positional(values Row) MappedRow { return MappedRow{values: values} }

// Keyed reports whether the row is keyed by a header.
func (r MappedRow) Keyed() bool { return r.keys != nil }

// Len returns the number of cells.
func (r MappedRow) Len() int { return len(r.values) }

// Values returns the cells in order (header order for keyed rows).
func (r MappedRow) Values() Row { return r.values }

// Keys returns the header keys in order, or nil for positional rows.
func (r MappedRow) Keys() []string { return r.keys }

// At returns the i-th cell, or nil when out of range.
func (r MappedRow) At(i int) Value {
	if i < 0 || i >= len(r.values) {
		return nil
	}
	return r.values[i]
}

// Get returns the value under key. Positional rows are addressed by the
// decimal index.
func (r MappedRow) Get(key string) (Value, bool) {
	if r.keys == nil {
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(r.values) {
			return nil, false
		}
		return r.values[i], true
	}
	for i, k := range r.keys {
		if k == key {
			return r.values[i], true
		}
	}
	return nil, false
}

// Map returns the keyed row as a map, or nil for positional rows.
func (r MappedRow) Map() map[string]Value {
	if r.keys == nil {
		return nil
	}
	m := make(map[string]Value, len(r.keys))
	for i, k := range r.keys {
		m[k] = r.values[i]
	}
	return m
}

// headerKeys renders the header cells as mapping keys; ok[i] is false where
// the header has no usable entry and the column index must be used instead.
func headerKeys(header Row) (keys []string, ok []bool) {
	keys = make([]string, len(header))
	ok = make([]bool, len(header))
	for i, v := range header {
		switch x := v.(type) {
		case nil:
			continue
		case bool:
			if x {
				keys[i] = "1"
			} else {
				keys[i] = "0"
			}
		default:
			keys[i] = FormatValue(v)
		}
		ok[i] = true
	}
	return keys, ok
}

func mapWithKeys(raw Row, keys []string, ok []bool) MappedRow {
	out := MappedRow{keys: make([]string, 0, len(raw)), values: make(Row, 0, len(raw))}
	var seen map[string]int
	for i, v := range raw {
		var key string
		if i < len(keys) && ok[i] {
			key = keys[i]
		} else {
			key = strconv.Itoa(i)
		}
		if j, dup := seen[key]; dup {
			out.values[j] = v
			continue
		}
		if seen == nil {
			seen = make(map[string]int, len(raw))
		}
		seen[key] = len(out.keys)
		out.keys = append(out.keys, key)
		out.values = append(out.values, v)
	}
	return out
}

// MapRow maps raw with header. Without header mode, or with an empty header,
// raw is returned positionally.
func MapRow(raw, header Row, headerEnabled bool) MappedRow {
	if !headerEnabled || len(header) == 0 {
		return Positional(raw)
	}
	keys, ok := headerKeys(header)
	return mapWithKeys(raw, keys, ok)
}

// RowMapper carries the header state of one sheet.
type RowMapper struct {
	enabled  bool
	captured bool
	header   Row
	keys     []string
	ok       []bool
}

// NewRowMapper returns a mapper for a new sheet.
func NewRowMapper(headerEnabled bool) *RowMapper {
	return &RowMapper{enabled: headerEnabled}
}

// Map maps raw. It returns false when raw was consumed as the header.
func (m *RowMapper) Map(raw Row) (MappedRow, bool) {
	if !m.enabled {
		return Positional(raw), true
	}
	if !m.captured {
		m.captured = true
		m.header = append(Row(nil), raw...)
		m.keys, m.ok = headerKeys(m.header)
		return MappedRow{}, false
	}
	if len(m.header) == 0 {
		return Positional(raw), true
	}
	return mapWithKeys(raw, m.keys, m.ok), true
}

// Header returns a copy of the captured header, nil before capture.
func (m *RowMapper) Header() Row {
	if !m.captured {
		return nil
	}
	return append(Row{}, m.header...)
}
