// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

package forgeexcel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Alignment is a horizontal cell alignment.
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// BorderStyle is the line style of a cell border.
type BorderStyle string

const (
	BorderThin   BorderStyle = "thin"
	BorderMedium BorderStyle = "medium"
	BorderThick  BorderStyle = "thick"
	BorderDashed BorderStyle = "dashed"
	BorderDotted BorderStyle = "dotted"
	BorderDouble BorderStyle = "double"
)

// Border is a uniform border on all four sides of a cell.
type Border struct {
	Style BorderStyle
	// Color is a 6 digit hex RGB code.
	Color string
}

// IsZero reports whether no border is set.
func (b Border) IsZero() bool { return b.Style == "" }

// Style is a cell style. Unset (zero) attributes inherit the codec default.
// Style is comparable, so codecs key their style tables by it.
type Style struct {
	Bold      bool
	Italic    bool
	Underline bool
	// FontSize in points.
	FontSize float64
	FontName string
	// FontColor and Background are 6 digit hex RGB codes.
	FontColor  string
	Background string
	Align      Alignment
	WrapText   bool
	Border     Border
}

// IsZero reports whether s sets no attribute at all.
func (s Style) IsZero() bool { return s == Style{} }

// StyleOptions is the configuration form of a Style.
type StyleOptions struct {
	Bold        bool    `yaml:"bold"`
	Italic      bool    `yaml:"italic"`
	Underline   bool    `yaml:"underline"`
	FontSize    float64 `yaml:"fontSize" validate:"gte=0,lte=409"`
	FontName    string  `yaml:"fontName" validate:"max=255"`
	Color       string  `yaml:"color" validate:"omitempty,len=6,hexadecimal"`
	Background  string  `yaml:"background" validate:"omitempty,len=6,hexadecimal"`
	Align       string  `yaml:"align" validate:"omitempty,oneof=left center right justify"`
	WrapText    bool    `yaml:"wrapText"`
	Border      bool    `yaml:"border"`
	BorderStyle string  `yaml:"borderStyle" validate:"omitempty,oneof=thin medium thick dashed dotted double"`
	BorderColor string  `yaml:"borderColor" validate:"omitempty,len=6,hexadecimal"`
}

var validate = validator.New()

func normColor(s string) string {
	return strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(s), "#"))
}

// CreateStyle builds a Style from o, setting only the attributes present.
func CreateStyle(o StyleOptions) (Style, error) {
	o.Color, o.Background, o.BorderColor = normColor(o.Color), normColor(o.Background), normColor(o.BorderColor)
	o.Align = strings.ToLower(strings.TrimSpace(o.Align))
	o.BorderStyle = strings.ToLower(strings.TrimSpace(o.BorderStyle))
	if err := validate.Struct(o); err != nil {
		return Style{}, fmt.Errorf("style options: %w: %w", ErrInvalidArgument, err)
	}
	s := Style{
		Bold:       o.Bold,
		Italic:     o.Italic,
		Underline:  o.Underline,
		FontSize:   o.FontSize,
		FontName:   o.FontName,
		FontColor:  o.Color,
		Background: o.Background,
		Align:      Alignment(o.Align),
		WrapText:   o.WrapText,
	}
	if o.Border {
		s.Border = Border{Style: BorderThin, Color: "000000"}
		if o.BorderStyle != "" {
			s.Border.Style = BorderStyle(o.BorderStyle)
		}
		if o.BorderColor != "" {
			s.Border.Color = o.BorderColor
		}
	}
	return s, nil
}

func mustStyle(o StyleOptions) Style {
	s, err := CreateStyle(o)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseStyleOptions reads the dynamic option mapping (bold, italic,
// underline, fontSize, fontName, color, background, align, wrapText, border,
// borderStyle, borderColor). Unknown keys are ignored.
func ParseStyleOptions(m map[string]any) (StyleOptions, error) {
	var o StyleOptions
	for k, v := range m {
		var err error
		switch k {
		case "bold":
			o.Bold, err = optBool(v)
		case "italic":
			o.Italic, err = optBool(v)
		case "underline":
			o.Underline, err = optBool(v)
		case "wrapText":
			o.WrapText, err = optBool(v)
		case "border":
			o.Border, err = optBool(v)
		case "fontSize":
			o.FontSize, err = optFloat(v)
		case "fontName":
			o.FontName, err = optString(v)
		case "color":
			o.Color, err = optString(v)
		case "background":
			o.Background, err = optString(v)
		case "align":
			o.Align, err = optString(v)
		case "borderStyle":
			o.BorderStyle, err = optString(v)
		case "borderColor":
			o.BorderColor, err = optString(v)
		default:
			continue
		}
		if err != nil {
			return StyleOptions{}, fmt.Errorf("style option %q: %w: %w", k, ErrInvalidArgument, err)
		}
	}
	return o, nil
}

func optBool(v any) (bool, error) {
	switch x := v.(type) {
	case nil:
		return false, nil
	case bool:
		return x, nil
	case int:
		return x != 0, nil
	case int64:
		return x != 0, nil
	case float64:
		return x != 0, nil
	case string:
		return ParseBool(x)
	}
	return false, fmt.Errorf("%T is not a boolean", v)
}

func optFloat(v any) (float64, error) {
	switch x := v.(type) {
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case float32:
		return float64(x), nil
	case float64:
		return x, nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(x), 64)
	}
	return 0, fmt.Errorf("%T is not a number", v)
}

func optString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case fmt.Stringer:
		return x.String(), nil
	}
	return "", fmt.Errorf("%T is not a string", v)
}
