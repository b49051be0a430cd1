// Copyright (c) 2026 Libris. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package translate fills the Hindi and Tamil variants of translatable fields
from their English source using a machine translation provider.

Components:

  - Translator: a provider call (text, source, target) → text. [GoogleTranslator]
    talks to the public Google Translate endpoint; [CachedTranslator] puts Redis
    in front of any Translator.
  - Filler: the fill service. Only empty variants are written, so running it
    again is a no-op once a record is translated.
  - Hook: the lifecycle hook subscribed to post-write events of authors and books.
  - Backfill: re-runs the fill over every stored record (cmd/backfill).

Provider failures never reach the caller: the variant stays empty, a warning
is logged, and readers fall back to English.
*/
package translate

import (
	"context"
	"strings"

	"github.com/taibuivan/libris/internal/platform/i18n"
	"github.com/taibuivan/libris/pkg/slice"
)

// Translator converts text between two languages.
type Translator interface {
	Translate(ctx context.Context, text string, source, target i18n.Lang) (string, error)
}

// # Store Contract

// Field is the stored state of one translatable field of a record.
type Field struct {
	Name string
	Text i18n.Text
}

// Record is the translatable slice of one stored row.
type Record struct {
	ID     int
	Fields []Field
}

// Field returns the named field and whether the record has it.
func (r Record) Field(name string) (i18n.Text, bool) {
	field, found := slice.Find(r.Fields, func(field Field) bool { return field.Name == name })
	return field.Text, found
}

// Update is one variant column to write.
type Update struct {
	Field string
	Lang  i18n.Lang
	Value string
}

// Store gives the fill service access to one table's translatable columns.
//
// SaveTranslations must write directly, without publishing a post-write
// event, so filling never re-triggers the hook.
type Store interface {
	LoadTranslatable(ctx context.Context, id int) (Record, error)
	ListTranslatable(ctx context.Context) ([]Record, error)
	SaveTranslations(ctx context.Context, id int, updates []Update) error
}

// # Source Selection

// Pair is a field name together with the text to translate from.
type Pair struct {
	Field string
	Text  string
}

// SourcePairs collects the source text of every field of rec, preferring the
// English variant over the base value, and drops fields with nothing to translate.
func SourcePairs(rec Record) []Pair {
	pairs := slice.Map(rec.Fields, func(field Field) Pair {
		return Pair{Field: field.Name, Text: field.Text.SourceValue()}
	})

	return slice.Filter(pairs, func(pair Pair) bool {
		return strings.TrimSpace(pair.Text) != ""
	})
}
