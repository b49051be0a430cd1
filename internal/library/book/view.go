package book

import (
	"time"

	"github.com/taibuivan/libris/internal/library/author"
	"github.com/taibuivan/libris/internal/platform/i18n"
	"github.com/taibuivan/libris/pkg/date"
	"github.com/taibuivan/libris/pkg/money"
	"github.com/taibuivan/libris/pkg/pointer"
	"github.com/taibuivan/libris/pkg/slice"
)

// Summary is the list shape of a book.
type Summary struct {
	ID              int          `json:"id"`
	Title           string       `json:"title"`
	AuthorID        int          `json:"author"`
	AuthorName      string       `json:"author_name"`
	Genre           Genre        `json:"genre"`
	PublicationDate date.Date    `json:"publication_date"`
	Price           money.Amount `json:"price"`
	IsAvailable     bool         `json:"is_available"`
	Description     string       `json:"description"`
}

// Detail is the full shape of a book with its author nested.
type Detail struct {
	ID              int            `json:"id"`
	Title           string         `json:"title"`
	AuthorID        int            `json:"author"`
	AuthorName      string         `json:"author_name"`
	AuthorDetails   author.Summary `json:"author_details"`
	ISBN            *string        `json:"isbn"`
	Genre           Genre          `json:"genre"`
	PublicationDate date.Date      `json:"publication_date"`
	Pages           int            `json:"pages"`
	Price           money.Amount   `json:"price"`
	Description     string         `json:"description"`
	IsAvailable     bool           `json:"is_available"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// NewSummary renders b in lang.
func NewSummary(b *Book, lang i18n.Lang) Summary {
	return Summary{
		ID:              b.ID,
		Title:           b.Title.In(lang),
		AuthorID:        b.AuthorID,
		AuthorName:      b.AuthorName(lang),
		Genre:           b.Genre,
		PublicationDate: b.PublicationDate,
		Price:           b.Price,
		IsAvailable:     b.IsAvailable,
		Description:     b.Description.In(lang),
	}
}

// NewDetail renders b in lang.
func NewDetail(b *Book, lang i18n.Lang) Detail {
	detail := Detail{
		ID:              b.ID,
		Title:           b.Title.In(lang),
		AuthorID:        b.AuthorID,
		AuthorName:      b.AuthorName(lang),
		Genre:           b.Genre,
		PublicationDate: b.PublicationDate,
		Pages:           b.Pages,
		Price:           b.Price,
		Description:     b.Description.In(lang),
		IsAvailable:     b.IsAvailable,
		ISBN:            pointer.NonZero(b.ISBN),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	if b.Author != nil {
		detail.AuthorDetails = author.NewSummary(b.Author, lang)
	}
	return detail
}

func summaries(books []*Book, lang i18n.Lang) []Summary {
	return slice.Map(books, func(b *Book) Summary { return NewSummary(b, lang) })
}
