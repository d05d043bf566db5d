package types

import (
	"bytes"
	"strings"

	"github.com/shopspring/decimal"
)

// LenientDecimal is a decimal amount that never fails to decode: absent,
// null, or malformed input becomes zero. The persisted ledger may contain
// partially corrupt rows and a bad amount must not make the whole document
// unreadable; strict validation happens separately at the API boundary.
type LenientDecimal struct {
	decimal.Decimal
}

// NewLenientDecimal wraps an exact decimal value.
func NewLenientDecimal(d decimal.Decimal) LenientDecimal {
	return LenientDecimal{Decimal: d}
}

// ParseLenientDecimal reads a numeric string, defaulting to zero when the
// input is empty or unparsable.
func ParseLenientDecimal(value string) LenientDecimal {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return LenientDecimal{}
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return LenientDecimal{}
	}
	return LenientDecimal{Decimal: d}
}

func (d *LenientDecimal) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		d.Decimal = decimal.Decimal{}
		return nil
	}
	value := string(raw)
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}
	*d = ParseLenientDecimal(value)
	return nil
}

// MarshalJSON emits a bare JSON number, never a quoted string.
func (d LenientDecimal) MarshalJSON() ([]byte, error) {
	return []byte(d.Decimal.String()), nil
}
