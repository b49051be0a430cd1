package author

import (
	"time"

	"github.com/taibuivan/libris/internal/platform/i18n"
	"github.com/taibuivan/libris/pkg/date"
	"github.com/taibuivan/libris/pkg/slice"
)

// Summary is the compact author shape used in lists and nested in books.
type Summary struct {
	ID         int    `json:"id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	BooksCount int    `json:"books_count"`
}

// Detail is the full author shape.
type Detail struct {
	ID         int        `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	FullName   string     `json:"full_name"`
	Email      string     `json:"email"`
	Bio        string     `json:"bio"`
	BirthDate  *date.Date `json:"birth_date"`
	BooksCount int        `json:"books_count"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NewSummary renders a in lang.
func NewSummary(a *Author, lang i18n.Lang) Summary {
	return Summary{
		ID:         a.ID,
		FullName:   a.FullName(lang),
		Email:      a.Email,
		BooksCount: a.BooksCount,
	}
}

// NewDetail renders a in lang.
func NewDetail(a *Author, lang i18n.Lang) Detail {
	return Detail{
		ID:         a.ID,
		FirstName:  a.FirstName.In(lang),
		LastName:   a.LastName.In(lang),
		FullName:   a.FullName(lang),
		Email:      a.Email,
		Bio:        a.Bio.In(lang),
		BirthDate:  a.BirthDate,
		BooksCount: a.BooksCount,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func summaries(authors []*Author, lang i18n.Lang) []Summary {
	return slice.Map(authors, func(a *Author) Summary { return NewSummary(a, lang) })
}
