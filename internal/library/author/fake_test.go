package author_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/taibuivan/libris/internal/library/author"
	"github.com/taibuivan/libris/internal/platform/dberr"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryRepository is an in-memory [author.Repository].
type memoryRepository struct {
	authors map[int]*author.Author
	nextID  int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{authors: make(map[int]*author.Author), nextID: 1}
}

func (r *memoryRepository) ListAuthors(_ context.Context, f author.Filter, limit, offset int) ([]*author.Author, int, error) {
	var matched []*author.Author
	for _, a := range r.authors {
		haystack := strings.ToLower(a.FirstName.Base + " " + a.LastName.Base + " " + a.Email)
		if f.Search == "" || strings.Contains(haystack, strings.ToLower(f.Search)) {
			copied := *a
			matched = append(matched, &copied)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].LastName.Base < matched[j].LastName.Base })

	total := len(matched)
	if offset >= total {
		return []*author.Author{}, total, nil
	}
	end := min(offset+limit, total)
	return matched[offset:end], total, nil
}

func (r *memoryRepository) GetAuthor(_ context.Context, id int) (*author.Author, error) {
	a, ok := r.authors[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *memoryRepository) CreateAuthor(_ context.Context, a *author.Author) error {
	a.ID = r.nextID
	r.nextID++
	copied := *a
	r.authors[a.ID] = &copied
	return nil
}

func (r *memoryRepository) UpdateAuthor(_ context.Context, a *author.Author) error {
	if _, ok := r.authors[a.ID]; !ok {
		return dberr.ErrNotFound
	}
	copied := *a
	r.authors[a.ID] = &copied
	return nil
}

func (r *memoryRepository) DeleteAuthor(_ context.Context, id int) error {
	a, ok := r.authors[id]
	if !ok {
		return dberr.ErrNotFound
	}
	if a.BooksCount > 0 {
		return author.ErrHasBooks
	}
	delete(r.authors, id)
	return nil
}

func (r *memoryRepository) EmailExists(_ context.Context, email string, excludeID int) (bool, error) {
	for id, a := range r.authors {
		if id != excludeID && strings.EqualFold(a.Email, email) {
			return true, nil
		}
	}
	return false, nil
}
