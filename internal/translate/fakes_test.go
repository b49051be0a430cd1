package translate_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/taibuivan/libris/internal/platform/i18n"
	"github.com/taibuivan/libris/internal/translate"
)

var errProviderDown = errors.New("provider down")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeTranslator prefixes the text with the target code, e.g. "[hi] Dune".
type fakeTranslator struct {
	mu    sync.Mutex
	calls int
	fail  map[i18n.Lang]bool
}

func (f *fakeTranslator) Translate(_ context.Context, text string, _, target i18n.Lang) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.fail[target] {
		return "", errProviderDown
	}
	return "[" + target.String() + "] " + text, nil
}

// memoryStore keeps records in memory and applies updates like the
// Postgres stores do.
type memoryStore struct {
	records map[int]translate.Record
	saves   int
	saveErr error
	listErr error
}

func newMemoryStore(records ...translate.Record) *memoryStore {
	store := &memoryStore{records: make(map[int]translate.Record)}
	for _, rec := range records {
		store.records[rec.ID] = rec
	}
	return store
}

func (s *memoryStore) LoadTranslatable(_ context.Context, id int) (translate.Record, error) {
	rec, ok := s.records[id]
	if !ok {
		return translate.Record{}, errors.New("not found")
	}
	return rec, nil
}

func (s *memoryStore) ListTranslatable(context.Context) ([]translate.Record, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	records := make([]translate.Record, 0, len(s.records))
	for id := 1; len(records) < len(s.records); id++ {
		if rec, ok := s.records[id]; ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

func (s *memoryStore) SaveTranslations(_ context.Context, id int, updates []translate.Update) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++

	rec := s.records[id]
	for _, update := range updates {
		for i := range rec.Fields {
			if rec.Fields[i].Name == update.Field {
				rec.Fields[i].Text.SetVariant(update.Lang, update.Value)
			}
		}
	}
	s.records[id] = rec
	return nil
}

func (s *memoryStore) text(id int, field string) i18n.Text {
	text, _ := s.records[id].Field(field)
	return text
}

func englishRecord(id int, values ...string) translate.Record {
	rec := translate.Record{ID: id}
	for i := 0; i+1 < len(values); i += 2 {
		rec.Fields = append(rec.Fields, translate.Field{
			Name: values[i],
			Text: i18n.Text{Base: values[i+1], EN: values[i+1]},
		})
	}
	return rec
}
