// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

package forgeexcel

import (
	"maps"
	"slices"
)

// Theme is a predefined header/odd/even style triple.
type Theme struct {
	Name              string
	Header, Odd, Even StyleOptions
}

// ThemedStyles is a resolved Theme.
type ThemedStyles struct {
	Header, Odd, Even Style
}

// DefaultTheme is used for unknown theme names.
const DefaultTheme = "blue"

func newTheme(name, header, odd string) Theme {
	return Theme{
		Name:   name,
		Header: StyleOptions{Bold: true, Color: "FFFFFF", Background: header},
		Odd:    StyleOptions{Background: odd},
		Even:   StyleOptions{Background: "FFFFFF"},
	}
}

var themes = map[string]Theme{
	"blue":   newTheme("blue", "4472C4", "D9E1F2"),
	"green":  newTheme("green", "70AD47", "E2EFDA"),
	"red":    newTheme("red", "C55A11", "FCE4D6"),
	"orange": newTheme("orange", "ED7D31", "FBE5D6"),
	"purple": newTheme("purple", "7030A0", "E4DFEC"),
}

var resolvedThemes = func() map[string]ThemedStyles {
	m := make(map[string]ThemedStyles, len(themes))
	for name, t := range themes {
		m[name] = ThemedStyles{
			Header: mustStyle(t.Header),
			Odd:    mustStyle(t.Odd),
			Even:   mustStyle(t.Even),
		}
	}
	return m
}()

// LookupTheme returns the named theme.
func LookupTheme(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

// ThemeNames returns the registered theme names, sorted.
func ThemeNames() []string {
	return slices.Sorted(maps.Keys(themes))
}

// ResolveThemed returns the styles of the named theme, falling back to
// DefaultTheme for unknown names.
func ResolveThemed(name string) ThemedStyles {
	if ts, ok := resolvedThemes[name]; ok {
		return ts
	}
	return resolvedThemes[DefaultTheme]
}

var colors = map[string]string{
	"black":      "000000",
	"white":      "FFFFFF",
	"red":        "FF0000",
	"green":      "00FF00",
	"blue":       "0000FF",
	"yellow":     "FFFF00",
	"orange":     "FFA500",
	"purple":     "800080",
	"pink":       "FFC0CB",
	"gray":       "808080",
	"light_gray": "D3D3D3",
	"dark_gray":  "A9A9A9",
	"cyan":       "00FFFF",
	"magenta":    "FF00FF",
	"lime":       "00FF00",
	"navy":       "000080",
	"teal":       "008080",
	"olive":      "808000",
	"maroon":     "800000",
	"aqua":       "00FFFF",
}

// Colors returns a copy of the named color table (name → hex code).
func Colors() map[string]string { return maps.Clone(colors) }

// ColorCode returns the hex code of a named color.
func ColorCode(name string) (string, bool) {
	c, ok := colors[name]
	return c, ok
}

// Alignments returns the alignment table (name → Alignment).
func Alignments() map[string]Alignment {
	return map[string]Alignment{
		"left":   AlignLeft,
		"center": AlignCenter,
		"right":  AlignRight,
	}
}
