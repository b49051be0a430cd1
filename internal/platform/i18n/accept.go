// Copyright (c) 2026 Libris. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// ParseAcceptLanguage returns the first supported language named by an
// Accept-Language header value, e.g. "hi-IN,hi;q=0.9,en;q=0.8".
//
// Tags are taken in header order; quality weights are dropped, not ranked.
// Only the primary subtag as written selects a language: "ta-LK" and
// "hi-INDIA" match, while "tam" does not.
func ParseAcceptLanguage(header string) (Lang, bool) {
	if strings.TrimSpace(header) == "" {
		return "", false
	}

	for _, part := range strings.Split(header, ",") {
		raw, _, _ := strings.Cut(part, ";")
		raw = strings.TrimSpace(raw)
		if raw == "" || raw == "*" {
			continue
		}

		if lang, ok := Parse(primarySubtag(raw)); ok {
			return lang, true
		}
	}

	return "", false
}

// primarySubtag is the lowercased text before the first "-". Well-formed tags
// go through x/text first; a tag whose base was rewritten from an alias
// ("tam" to "ta") keeps the subtag as written.
func primarySubtag(raw string) string {
	primary, _, _ := strings.Cut(raw, "-")
	primary = strings.ToLower(primary)

	tag, err := language.Parse(raw)
	if err != nil {
		return primary
	}

	base, confidence := tag.Base()
	if confidence == language.No || base.String() != primary {
		return primary
	}
	return base.String()
}

// Resolve is [ParseAcceptLanguage] with the [Default] fallback applied.
func Resolve(header string) Lang {
	if lang, ok := ParseAcceptLanguage(header); ok {
		return lang
	}
	return Default
}
