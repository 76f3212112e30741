package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// maxPriceExponent bounds the decimal exponent accepted for numeric prices.
// Numbers outside it would expand into arbitrarily long strings.
const maxPriceExponent = 64

// Price is a monetary amount kept as its literal string form so it is never
// rounded through a float.
type Price string

// UnmarshalJSON accepts either a JSON string, kept verbatim, or a JSON number,
// converted to its canonical decimal string (9.50 becomes "9.5", 1e3 becomes
// "1000"). Numbers with an exponent beyond ±64 are rejected.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*p = ""
		return nil

	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid price: %w", err)
		}
		*p = Price(s)
		return nil
	}

	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("price must be a string or a number, got %s", data)
	}
	if exp := d.Exponent(); exp > maxPriceExponent || exp < -maxPriceExponent {
		return fmt.Errorf("price %s is out of range", data)
	}
	*p = Price(d.String())
	return nil
}

// String returns the price literal.
func (p Price) String() string {
	return string(p)
}
