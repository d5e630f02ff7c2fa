// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

package forge_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lugotardo/forgeexcel"
	"github.com/lugotardo/forgeexcel/forge"
)

// Convert delimited files into one OpenDocument spreadsheet, a sheet per
// file, with a bold header row.
func Example_csvToODS() {
	dir, err := os.MkdirTemp("", "forge-example-")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	for name, content := range map[string]string{
		"fruits.csv": "name;kg\napple;3\npear;1,5\n",
		"nuts.csv":   "name;kg\nwalnut;2\n",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			fmt.Println(err)
			return
		}
	}

	e := forge.New(forge.WithCSVEncoding("utf-8"))
	bold := &forgeexcel.StyleOptions{Bold: true}
	var sheets []forgeexcel.StyledSheet
	for _, name := range []string{"fruits.csv", "nuts.csv"} {
		recs, err := e.ReadFirstSheet(filepath.Join(dir, name), true)
		if err != nil {
			fmt.Println(err)
			return
		}
		sheets = append(sheets, forgeexcel.StyledSheet{
			Name:        name[:len(name)-len(filepath.Ext(name))],
			Rows:        forgeexcel.ToRows(recs, true),
			HeaderStyle: bold,
		})
	}
	out := filepath.Join(dir, "all.ods")
	if err := e.WriteStyledSheets(out, sheets); err != nil {
		fmt.Println(err)
		return
	}

	result, err := e.ReadAllSeparated(out, true)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, s := range result {
		for _, r := range s.Rows {
			name, _ := r.Get("name")
			kg, _ := r.Get("kg")
			fmt.Println(s.Name, name, kg)
		}
	}
	// Output:
	// fruits apple 3
	// fruits pear 1,5
	// nuts walnut 2
}
