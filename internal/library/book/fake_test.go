package book_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/taibuivan/libris/internal/library/author"
	"github.com/taibuivan/libris/internal/library/book"
	"github.com/taibuivan/libris/internal/platform/dberr"
	"github.com/taibuivan/libris/internal/platform/i18n"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryRepository is an in-memory [book.Repository] with a fixed author set.
type memoryRepository struct {
	authors map[int]*author.Author
	books   map[int]*book.Book
	nextID  int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		authors: map[int]*author.Author{
			1: {ID: 1, FirstName: i18n.Text{Base: "Frank", EN: "Frank"}, LastName: i18n.Text{Base: "Herbert", EN: "Herbert", HI: "हर्बर्ट"}, Email: "frank@example.com"},
			2: {ID: 2, FirstName: i18n.Text{Base: "Ursula", EN: "Ursula"}, LastName: i18n.Text{Base: "Le Guin", EN: "Le Guin"}, Email: "ursula@example.com"},
		},
		books:  make(map[int]*book.Book),
		nextID: 1,
	}
}

func (r *memoryRepository) hydrate(b *book.Book) *book.Book {
	copied := *b
	if a, ok := r.authors[b.AuthorID]; ok {
		writer := *a
		for _, other := range r.books {
			if other.AuthorID == a.ID {
				writer.BooksCount++
			}
		}
		copied.Author = &writer
	}
	return &copied
}

func (r *memoryRepository) sorted(keep func(*book.Book) bool) []*book.Book {
	books := []*book.Book{}
	for _, b := range r.books {
		if keep(b) {
			books = append(books, r.hydrate(b))
		}
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID > books[j].ID })
	return books
}

func (r *memoryRepository) ListBooks(_ context.Context, f book.Filter, limit, offset int) ([]*book.Book, int, error) {
	matched := r.sorted(func(b *book.Book) bool {
		if f.Search != "" && !strings.Contains(strings.ToLower(b.Title.Base), strings.ToLower(f.Search)) {
			return false
		}
		if f.Genre != "" && b.Genre != f.Genre {
			return false
		}
		if f.AuthorID != nil && b.AuthorID != *f.AuthorID {
			return false
		}
		return !f.AvailableOnly || b.IsAvailable
	})

	total := len(matched)
	if offset >= total {
		return []*book.Book{}, total, nil
	}
	return matched[offset:min(offset+limit, total)], total, nil
}

func (r *memoryRepository) ListByAuthor(_ context.Context, authorID int) ([]*book.Book, error) {
	return r.sorted(func(b *book.Book) bool { return b.AuthorID == authorID }), nil
}

func (r *memoryRepository) GetBook(_ context.Context, id int) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return r.hydrate(b), nil
}

func (r *memoryRepository) CreateBook(_ context.Context, b *book.Book) error {
	b.ID = r.nextID
	r.nextID++
	copied := *b
	r.books[b.ID] = &copied
	return nil
}

func (r *memoryRepository) UpdateBook(_ context.Context, b *book.Book) error {
	if _, ok := r.books[b.ID]; !ok {
		return dberr.ErrNotFound
	}
	copied := *b
	copied.Author = nil
	r.books[b.ID] = &copied
	return nil
}

func (r *memoryRepository) DeleteBook(_ context.Context, id int) error {
	if _, ok := r.books[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(r.books, id)
	return nil
}

func (r *memoryRepository) ISBNExists(_ context.Context, isbn string, excludeID int) (bool, error) {
	for id, b := range r.books {
		if id != excludeID && b.ISBN == isbn {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepository) AuthorExists(_ context.Context, authorID int) (bool, error) {
	_, ok := r.authors[authorID]
	return ok, nil
}

func (r *memoryRepository) Statistics(context.Context) (*book.Statistics, error) {
	stats := &book.Statistics{TotalAuthors: len(r.authors), GenresDistribution: map[string]int{}}
	for _, b := range r.books {
		stats.TotalBooks++
		if b.IsAvailable {
			stats.AvailableBooks++
		} else {
			stats.UnavailableBooks++
		}
		stats.GenresDistribution[string(b.Genre)]++
	}
	return stats, nil
}
