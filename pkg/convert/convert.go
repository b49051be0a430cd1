// Copyright (c) 2026 Libris. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides quick type-conversion utilities for query parameters.

Query strings are loosely typed; these helpers encode the exact leniency the
list endpoints promise, so handlers do not each re-implement it.
*/
package convert

import (
	"strconv"
	"strings"
)

// Flag reports whether a query value switches a filter on.
// Only "true" (any case) and "1" do; every other value, including "false",
// means the filter is not applied.
func Flag(s string) bool {
	value := strings.TrimSpace(s)
	return value == "1" || strings.EqualFold(value, "true")
}

// OptionalInt parses an optional integer parameter.
// It returns (nil, true) for an empty string and (nil, false) when the value
// is present but not an integer.
func OptionalInt(s string) (*int, bool) {
	value := strings.TrimSpace(s)
	if value == "" {
		return nil, true
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, false
	}
	return &n, true
}
