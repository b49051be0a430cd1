// Copyright (c) 2026 Libris. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package money provides a fixed-point amount with two fractional digits.

Prices are stored as NUMERIC(10,2) in PostgreSQL and travel over JSON as
strings ("12.50") so no precision is lost to float64 on either side.

Key Functions:
  - Parse: Reads "12", "12.5" or "12.50" into an [Amount].
  - String: Renders an [Amount] with exactly two fractional digits.
*/
package money

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Amount is a decimal value counted in hundredths (cents).
type Amount int64

// MaxAmount is the largest value a NUMERIC(10,2) column can hold.
const MaxAmount Amount = 99_999_999_99

var (
	// ErrInvalid is returned when a string is not a decimal with at most two fractional digits.
	ErrInvalid = errors.New("money: invalid decimal amount")
)

// Parse reads a decimal string such as "12", "-3.5" or "0.99".
func Parse(raw string) (Amount, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, ErrInvalid
	}

	negative := false
	if value[0] == '-' || value[0] == '+' {
		negative = value[0] == '-'
		value = value[1:]
	}

	whole, fraction, hasPoint := strings.Cut(value, ".")
	if whole == "" || (hasPoint && fraction == "") || len(fraction) > 2 || !digitsOnly(whole) || !digitsOnly(fraction) {
		return 0, ErrInvalid
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units > int64(MaxAmount/100) {
		return 0, ErrInvalid
	}

	for len(fraction) < 2 {
		fraction += "0"
	}
	cents, _ := strconv.ParseInt(fraction, 10, 64)

	amount := Amount(units*100 + cents)
	if negative {
		amount = -amount
	}
	return amount, nil
}

// MustParse is [Parse] for constants and tests. It panics on invalid input.
func MustParse(raw string) Amount {
	amount, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return amount
}

// String renders the amount with two fractional digits, e.g. "12.50".
func (a Amount) String() string {
	sign := ""
	value := int64(a)
	if value < 0 {
		sign = "-"
		value = -value
	}
	return fmt.Sprintf("%s%d.%02d", sign, value/100, value%100)
}

// MarshalJSON encodes the amount as a JSON string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts a JSON string ("12.50") or a JSON number (12.5).
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := string(bytes.TrimSpace(data))
	if raw == "null" {
		return ErrInvalid
	}

	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(data, &raw); err != nil {
			return ErrInvalid
		}
	}

	amount, err := Parse(raw)
	if err != nil {
		return err
	}
	*a = amount
	return nil
}

// Scan implements [database/sql.Scanner] for NUMERIC columns read as text.
func (a *Amount) Scan(src any) error {
	switch value := src.(type) {
	case string:
		amount, err := Parse(value)
		if err != nil {
			return err
		}
		*a = amount
	case []byte:
		return a.Scan(string(value))
	case int64:
		*a = Amount(value * 100)
	case float64:
		return a.Scan(strconv.FormatFloat(value, 'f', 2, 64))
	default:
		return fmt.Errorf("money: cannot scan %T", src)
	}
	return nil
}

func digitsOnly(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
