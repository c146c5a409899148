package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CoerceDecimal converts loosely-typed numeric input (JSON numbers, strings
// with thousands separators or stray whitespace, nil) into a decimal.
// Unparsable input coerces to zero; this never fails.
func CoerceDecimal(v interface{}) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return n
	case float64:
		return decimal.NewFromFloat(n)
	case float32:
		return decimal.NewFromFloat32(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case uint:
		return decimal.NewFromInt(int64(n))
	case string:
		return coerceDecimalString(n)
	default:
		return decimal.Zero
	}
}

func coerceDecimalString(s string) decimal.Decimal {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// CoerceQuantity converts loosely-typed quantity input into a positive
// integer, defaulting absent or unparsable values to 1.
func CoerceQuantity(v interface{}) int {
	d := CoerceDecimal(v)
	q := int(d.IntPart())
	if q < 1 {
		return 1
	}
	return q
}
