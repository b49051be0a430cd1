package translate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/libris/internal/platform/event"
	"github.com/taibuivan/libris/internal/platform/i18n"
	"github.com/taibuivan/libris/internal/translate"
)

func backfillFixture() (*memoryStore, *memoryStore) {
	authors := newMemoryStore(
		englishRecord(1, "first_name", "Frank", "last_name", "Herbert", "bio", ""),
		translate.Record{ID: 2, Fields: []translate.Field{{Name: "bio", Text: i18n.Text{}}}},
	)
	books := newMemoryStore(englishRecord(1, "title", "Dune", "description", ""))
	return authors, books
}

func TestBackfill_DryRunWritesNothing(t *testing.T) {
	authors, books := backfillFixture()
	translator := &fakeTranslator{}
	backfill := translate.NewBackfill(translate.NewFiller(translator, true, discardLogger()), discardLogger())

	report, err := backfill.Run(context.Background(), []translate.Target{
		{Entity: event.Author, Store: authors},
		{Entity: event.Book, Store: books},
	}, true)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Count(event.Author))
	assert.Equal(t, 1, report.Count(event.Book))
	assert.Equal(t, "Processed Authors: 1, Books: 1 (dry run)", report.String())
	assert.Zero(t, translator.calls)
	assert.Zero(t, authors.saves+books.saves)
}

func TestBackfill_FillsAndIsRepeatable(t *testing.T) {
	authors, books := backfillFixture()
	translator := &fakeTranslator{}
	backfill := translate.NewBackfill(translate.NewFiller(translator, true, discardLogger()), discardLogger())
	targets := []translate.Target{
		{Entity: event.Author, Store: authors},
		{Entity: event.Book, Store: books},
	}

	report, err := backfill.Run(context.Background(), targets, false)
	require.NoError(t, err)
	assert.Equal(t, "Processed Authors: 1, Books: 1", report.String())
	assert.Equal(t, 6, report.Filled)
	assert.Equal(t, "[ta] Herbert", authors.text(1, "last_name").TA)
	assert.Empty(t, authors.text(1, "bio").HI)

	calls := translator.calls
	again, err := backfill.Run(context.Background(), targets, false)
	require.NoError(t, err)
	assert.Zero(t, again.Filled)
	assert.Equal(t, calls, translator.calls)
}

func TestBackfill_ListFailureAborts(t *testing.T) {
	authors, _ := backfillFixture()
	authors.listErr = errors.New("relation does not exist")
	backfill := translate.NewBackfill(translate.NewFiller(&fakeTranslator{}, true, discardLogger()), discardLogger())

	_, err := backfill.Run(context.Background(), []translate.Target{{Entity: event.Author, Store: authors}}, false)

	assert.ErrorContains(t, err, "list author records")
}
