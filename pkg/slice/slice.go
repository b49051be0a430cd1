// Copyright (c) 2026 Libris. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slice holds the generic helpers the views and the translation
// service use on top of the standard [slices] package.
package slice

// Map applies transform to every element. The result is never nil, so an
// empty list still encodes as [] in JSON responses.
func Map[T, U any](input []T, transform func(T) U) []U {
	result := make([]U, 0, len(input))
	for _, item := range input {
		result = append(result, transform(item))
	}
	return result
}

// Filter keeps the elements matching keep. It returns nil when none match.
func Filter[T any](input []T, keep func(T) bool) []T {
	var result []T
	for _, item := range input {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}

// Find returns the first element matching match.
func Find[T any](input []T, match func(T) bool) (T, bool) {
	for _, item := range input {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}
