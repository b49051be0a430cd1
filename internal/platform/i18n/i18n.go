// Copyright (c) 2026 Libris. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package i18n defines the languages Libris stores content in and the
per-language value set used by translatable fields.

Every translatable field (an author's name, a book's title) is persisted as a
base column plus one column per supported language. English is required;
Hindi and Tamil are optional and fall back to English when empty.

Reading always goes through an explicit [Lang]: there is no process-wide
"current language".
*/
package i18n

import "strings"

// Lang is an ISO 639-1 code of a supported content language.
type Lang string

const (
	English Lang = "en"
	Hindi   Lang = "hi"
	Tamil   Lang = "ta"

	// Default is used when a request expresses no usable preference.
	Default = English

	// Source is the language machine translation reads from.
	Source = English
)

// Supported lists every content language, default first.
var Supported = []Lang{English, Hindi, Tamil}

// Targets lists the languages machine translation fills from [Source].
var Targets = []Lang{Hindi, Tamil}

// IsSupported reports whether l is one of [Supported].
func (l Lang) IsSupported() bool {
	switch l {
	case English, Hindi, Tamil:
		return true
	}
	return false
}

// String implements [fmt.Stringer].
func (l Lang) String() string { return string(l) }

// Parse lowercases code and reports whether it names a supported language.
func Parse(code string) (Lang, bool) {
	lang := Lang(strings.ToLower(strings.TrimSpace(code)))
	return lang, lang.IsSupported()
}

// # Translatable Values

// Text is the full set of stored values of one translatable field.
//
// Base mirrors the column the field had before it became translatable; the
// remaining fields are the per-language variants.
type Text struct {
	Base string
	EN   string
	HI   string
	TA   string
}

// Variant returns the stored value for lang without any fallback.
func (t Text) Variant(lang Lang) string {
	switch lang {
	case English:
		return t.EN
	case Hindi:
		return t.HI
	case Tamil:
		return t.TA
	}
	return ""
}

// SetVariant stores value as the lang variant. Unsupported languages are ignored.
func (t *Text) SetVariant(lang Lang, value string) {
	switch lang {
	case English:
		t.EN = value
	case Hindi:
		t.HI = value
	case Tamil:
		t.TA = value
	}
}

// In returns the value to render for lang, falling back to English and then
// to the base column.
func (t Text) In(lang Lang) string {
	if v := t.Variant(lang); strings.TrimSpace(v) != "" {
		return v
	}
	if strings.TrimSpace(t.EN) != "" {
		return t.EN
	}
	return t.Base
}

// SourceValue returns the text machine translation should start from: the
// explicit English variant when set, otherwise the base value.
func (t Text) SourceValue() string {
	if strings.TrimSpace(t.EN) != "" {
		return t.EN
	}
	return t.Base
}

// Assign writes value as seen by a client whose active language is lang: the
// base column and the lang variant both take the value.
func (t *Text) Assign(lang Lang, value string) {
	t.Base = value
	t.SetVariant(lang, value)
}

// SeedEnglish copies the base value into the English variant when the
// variant is empty.
func (t *Text) SeedEnglish() {
	if strings.TrimSpace(t.EN) == "" {
		t.EN = t.Base
	}
}

// Apply merges an optional write into t. value goes through [Text.Assign]
// for lang; en, hi and ta overwrite their variant directly. Nil pointers
// leave the stored value alone.
func (t *Text) Apply(lang Lang, value, en, hi, ta *string) {
	if value != nil {
		t.Assign(lang, *value)
	}
	for variant, explicit := range map[Lang]*string{English: en, Hindi: hi, Tamil: ta} {
		if explicit != nil {
			t.SetVariant(variant, *explicit)
		}
	}
}
