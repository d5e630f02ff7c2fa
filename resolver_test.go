// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

package forgeexcel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePrecedence(t *testing.T) {
	red := Style{FontColor: "FF0000"}
	bold := Style{Bold: true}
	header := Style{Background: "CCCCCC"}
	ts := ResolveThemed("blue")
	set := &StyleSet{
		Rows:    map[int]Style{0: red, 3: red},
		Columns: map[int]Style{1: bold},
		Header:  &header,
		Theme:   &ts,
	}

	assert.Equal(t, red, set.Resolve(0, 1), "row wins over column and header")
	assert.Equal(t, red, set.Resolve(3, 1), "row wins over column")
	assert.Equal(t, bold, set.Resolve(2, 1), "column wins over theme")
	assert.Equal(t, ts.Odd, set.Resolve(1, 0))
	assert.Equal(t, ts.Even, set.Resolve(2, 0))

	set.Rows = nil
	assert.Equal(t, bold, set.Resolve(0, 1), "column wins over header")
	assert.Equal(t, header, set.Resolve(0, 0))

	assert.Equal(t, Style{}, (&StyleSet{}).Resolve(0, 0))
	assert.Equal(t, Style{}, (*StyleSet)(nil).Resolve(5, 5))
}

func TestRowStyles(t *testing.T) {
	set := &StyleSet{Columns: map[int]Style{1: {Bold: true}}}
	assert.Equal(t, []Style{{}, {Bold: true}, {}}, set.rowStyles(4, 3))
	assert.Nil(t, (&StyleSet{Columns: map[int]Style{7: {Bold: true}}}).rowStyles(0, 3))
	assert.Nil(t, (*StyleSet)(nil).rowStyles(0, 3))
	assert.True(t, (&StyleSet{}).Empty())
}

func TestLoadStyleConfig(t *testing.T) {
	cfg, err := LoadStyleConfig(strings.NewReader(`
theme: green
rows:
  3:
    color: "#ff0000"
columns:
  1: {align: right, bold: true}
ignored: 42
`))
	require.NoError(t, err)
	assert.Equal(t, "green", cfg.Theme)

	set, err := cfg.StyleSet()
	require.NoError(t, err)
	ts := ResolveThemed("green")
	require.NotNil(t, set.Header)
	assert.Equal(t, ts.Header, *set.Header)
	assert.Equal(t, Style{FontColor: "FF0000"}, set.Resolve(3, 0))
	assert.Equal(t, Style{Bold: true, Align: AlignRight}, set.Resolve(2, 1))
	assert.Equal(t, ts.Even, set.Resolve(2, 0))

	cfg, err = LoadStyleConfig(strings.NewReader(""))
	require.NoError(t, err)
	set, err = cfg.StyleSet()
	require.NoError(t, err)
	assert.True(t, set.Empty())

	_, err = LoadStyleConfig(strings.NewReader("rows: [1, 2"))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	cfg, err = LoadStyleConfig(strings.NewReader("header: {color: red}"))
	require.NoError(t, err)
	_, err = cfg.StyleSet()
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
