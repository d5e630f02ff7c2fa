// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

package forgeexcel

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// StyleConfig is the file form of a StyleSet.
//
//	theme: green
//	header: {bold: true}
//	rows:
//	  3: {color: "FF0000"}
//	columns:
//	  1: {align: right}
type StyleConfig struct {
	Theme   string               `yaml:"theme"`
	Header  *StyleOptions        `yaml:"header"`
	Rows    map[int]StyleOptions `yaml:"rows"`
	Columns map[int]StyleOptions `yaml:"columns"`
}

// LoadStyleConfig decodes a YAML style configuration. Unknown keys are
// ignored.
func LoadStyleConfig(r io.Reader) (StyleConfig, error) {
	var cfg StyleConfig
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return StyleConfig{}, fmt.Errorf("style config: %w: %w", ErrInvalidArgument, err)
	}
	return cfg, nil
}

// StyleSet validates the configuration and builds its StyleSet.
func (c StyleConfig) StyleSet() (StyleSet, error) {
	var set StyleSet
	var err error
	if set.Rows, err = stylesFromOptions(c.Rows); err != nil {
		return StyleSet{}, err
	}
	if set.Columns, err = stylesFromOptions(c.Columns); err != nil {
		return StyleSet{}, err
	}
	if c.Header != nil {
		st, err := CreateStyle(*c.Header)
		if err != nil {
			return StyleSet{}, err
		}
		set.Header = &st
	}
	if c.Theme != "" {
		ts := ResolveThemed(c.Theme)
		set.Theme = &ts
		if set.Header == nil {
			set.Header = &ts.Header
		}
	}
	return set, nil
}
