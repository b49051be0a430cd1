package schema

import (
	"strings"

	"github.com/taibuivan/libris/internal/platform/i18n"
)

// TranslatableColumn maps a translatable base column to its per-language
// variant columns. Variants are fixed here rather than discovered at runtime.
type TranslatableColumn struct {
	Base string
	EN   string
	HI   string
	TA   string
}

// translatable derives the variant column names from base.
func translatable(base string) TranslatableColumn {
	return TranslatableColumn{
		Base: base,
		EN:   base + "_en",
		HI:   base + "_hi",
		TA:   base + "_ta",
	}
}

// Variant returns the column storing lang, or "" for unsupported languages.
func (c TranslatableColumn) Variant(lang i18n.Lang) string {
	switch lang {
	case i18n.English:
		return c.EN
	case i18n.Hindi:
		return c.HI
	case i18n.Tamil:
		return c.TA
	}
	return ""
}

// Columns returns the base column followed by the en, hi, ta variants.
func (c TranslatableColumn) Columns() []string {
	return []string{c.Base, c.EN, c.HI, c.TA}
}

// Select renders the four columns for a SELECT list, each wrapped in
// COALESCE so NULL variants scan into plain strings. A non-empty alias
// qualifies every column.
func (c TranslatableColumn) Select(alias string) string {
	prefix := ""
	if alias != "" {
		prefix = alias + "."
	}

	parts := make([]string, 0, 4)
	for _, column := range c.Columns() {
		parts = append(parts, "COALESCE("+prefix+column+", '')")
	}
	return strings.Join(parts, ", ")
}

// ScanText returns the scan destinations matching [TranslatableColumn.Select].
func ScanText(text *i18n.Text) []any {
	return []any{&text.Base, &text.EN, &text.HI, &text.TA}
}
