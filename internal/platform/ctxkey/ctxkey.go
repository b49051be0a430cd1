// Copyright (c) 2026 Libris. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey holds the typed keys of per-request context values.
// Only ctxutil reads and writes them.
package ctxkey

// Key is the type of every Libris context key. Context lookups compare type
// and value, so these never collide with keys set by other packages.
type Key uint8

const (
	// KeyRequestID holds the X-Request-ID correlation value (string).
	KeyRequestID Key = iota + 1

	// KeyLogger holds the request-scoped *slog.Logger.
	KeyLogger

	// KeyLanguage holds the negotiated rendering language (i18n.Lang).
	KeyLanguage
)

// String names the key in debug output.
func (k Key) String() string {
	switch k {
	case KeyRequestID:
		return "request_id"
	case KeyLogger:
		return "logger"
	case KeyLanguage:
		return "language"
	default:
		return "unknown"
	}
}
