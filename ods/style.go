// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

package ods

import (
	"strconv"

	"github.com/lugotardo/forgeexcel"
)

// CellStyle is an automatic table-cell style of content.xml,
// already rendered to OpenDocument attribute values.
type CellStyle struct {
	Name       string
	Background string
	Border     string
	Wrap       bool
	TextAlign  string
	Bold       bool
	Italic     bool
	Underline  bool
	FontSize   string
	FontName   string
	Color      string
}

// HasText reports whether any text property is set.
func (cs CellStyle) HasText() bool {
	return cs.Bold || cs.Italic || cs.Underline || cs.FontSize != "" || cs.FontName != "" || cs.Color != ""
}

func newCellStyle(name string, s forgeexcel.Style) CellStyle {
	cs := CellStyle{
		Name:      name,
		Bold:      s.Bold,
		Italic:    s.Italic,
		Underline: s.Underline,
		FontName:  s.FontName,
		Wrap:      s.WrapText,
		TextAlign: textAlign(s.Align),
		FontSize:  fontSize(s.FontSize),
		Border:    borderSpec(s.Border),
	}
	if s.Background != "" {
		cs.Background = "#" + s.Background
	}
	if s.FontColor != "" {
		cs.Color = "#" + s.FontColor
	}
	return cs
}

var borderLines = map[forgeexcel.BorderStyle]string{
	forgeexcel.BorderThin:   "0.74pt solid",
	forgeexcel.BorderMedium: "1.76pt solid",
	forgeexcel.BorderThick:  "2.49pt solid",
	forgeexcel.BorderDashed: "0.74pt dashed",
	forgeexcel.BorderDotted: "0.74pt dotted",
	forgeexcel.BorderDouble: "2.6pt double",
}

func borderSpec(b forgeexcel.Border) string {
	if b.IsZero() {
		return ""
	}
	line, ok := borderLines[b.Style]
	if !ok {
		line = borderLines[forgeexcel.BorderThin]
	}
	color := b.Color
	if color == "" {
		color = "000000"
	}
	return line + " #" + color
}

func textAlign(a forgeexcel.Alignment) string {
	switch a {
	case forgeexcel.AlignLeft:
		return "start"
	case forgeexcel.AlignRight:
		return "end"
	case "":
		return ""
	}
	return string(a)
}

func fontSize(size float64) string {
	if size <= 0 {
		return ""
	}
	return strconv.FormatFloat(size, 'f', -1, 64) + "pt"
}
