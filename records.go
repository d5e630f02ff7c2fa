// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

package forgeexcel

// ToRows turns mapped records back into writable rows. With includeHeader
// and a keyed first record, a header row built from its keys comes first.
// Keyed records are written in the key order of the first keyed record;
// missing keys become empty cells.
func ToRows(records []MappedRow, includeHeader bool) []Row {
	if len(records) == 0 {
		return nil
	}
	var keys []string
	for _, r := range records {
		if r.Keyed() {
			keys = r.Keys()
			break
		}
	}
	rows := make([]Row, 0, len(records)+1)
	if includeHeader && keys != nil {
		header := make(Row, len(keys))
		for i, k := range keys {
			header[i] = k
		}
		rows = append(rows, header)
	}
	for _, r := range records {
		if !r.Keyed() || keys == nil {
			rows = append(rows, append(Row(nil), r.Values()...))
			continue
		}
		row := make(Row, len(keys))
		for i, k := range keys {
			row[i], _ = r.Get(k)
		}
		rows = append(rows, row)
	}
	return rows
}
