// Copyright 2025 The forgeexcel Authors.
//
// SPDX-License-Identifier: Apache-2.0

package forgeexcel

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Value is a single cell value: string, int, int64, float64, bool or nil.
// A string starting with "=" is formula text and is never evaluated.
type Value = any

// Row is an ordered sequence of cell values.
type Row []Value

// IsFormula reports whether v is formula text.
func IsFormula(v Value) bool {
	s, ok := v.(string)
	return ok && len(s) > 1 && s[0] == '='
}

// NumberValue returns f as an int when it is integral, as float64 otherwise.
// Codecs use it so that numbers read back compare equal to what was written.
func NumberValue(f float64) Value {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 && !(f == 0 && math.Signbit(f)) {
		return int(f)
	}
	return f
}

// Normalize converts v to one of the canonical cell kinds understood by all
// codecs: nil, string, bool, int64 or float64.
func Normalize(v any) Value {
	if v == nil {
		return nil
	}
	if vr, ok := v.(driver.Valuer); ok {
		if vv, err := vr.Value(); err == nil {
			v = vv
		}
	}
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		return x
	case bool:
		return x
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return uint64Value(uint64(x))
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return uint64Value(x)
	case float32:
		return float64(x)
	case float64:
		return x
	case []byte:
		return string(x)
	case time.Time:
		if x.IsZero() {
			return nil
		}
		return x.Format("2006-01-02")
	case sql.NullTime:
		if !x.Valid || x.Time.IsZero() {
			return nil
		}
		return x.Time.Format("2006-01-02")
	case sql.NullFloat64:
		if !x.Valid {
			return nil
		}
		return x.Float64
	case sql.NullInt64:
		if !x.Valid {
			return nil
		}
		return x.Int64
	case sql.NullBool:
		if !x.Valid {
			return nil
		}
		return x.Bool
	case sql.NullString:
		if !x.Valid {
			return nil
		}
		return x.String
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

func uint64Value(u uint64) Value {
	if u > math.MaxInt64 {
		return float64(u)
	}
	return int64(u)
}

// FormatValue renders a normalized value as text, the way delimited output
// and header keys show it.
func FormatValue(v Value) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return FormatValue(Normalize(v))
}

// ParseBool accepts the boolean spellings found in spreadsheet containers.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid bool: %q", s)
}
