package book

import (
	"strings"
	"time"

	"github.com/taibuivan/libris/internal/library/author"
	"github.com/taibuivan/libris/internal/platform/i18n"
	"github.com/taibuivan/libris/pkg/date"
	"github.com/taibuivan/libris/pkg/money"
)

// Book is a catalog entry written by one author.
type Book struct {
	ID              int
	Title           i18n.Text
	AuthorID        int
	Author          *author.Author // loaded on reads
	ISBN            string
	Genre           Genre
	PublicationDate date.Date
	Pages           int
	Price           money.Amount
	Description     i18n.Text
	IsAvailable     bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AuthorName is the author's full name in lang, or "" when not loaded.
func (b *Book) AuthorName(lang i18n.Lang) string {
	if b.Author == nil {
		return ""
	}
	return b.Author.FullName(lang)
}

// Filter holds the parameters for a paginated book search.
type Filter struct {
	Search        string // title variants, author names or ISBN
	Genre         Genre
	AuthorID      *int
	AvailableOnly bool
}

// Statistics summarizes the catalog for the dashboard.
type Statistics struct {
	TotalAuthors       int            `json:"total_authors"`
	TotalBooks         int            `json:"total_books"`
	AvailableBooks     int            `json:"available_books"`
	UnavailableBooks   int            `json:"unavailable_books"`
	GenresDistribution map[string]int `json:"genres_distribution"`
}

// Global field names for validation
const (
	FieldTitle           = "title"
	FieldAuthor          = "author"
	FieldISBN            = "isbn"
	FieldGenre           = "genre"
	FieldPublicationDate = "publication_date"
	FieldPages           = "pages"
	FieldPrice           = "price"
	FieldDescription     = "description"
	FieldIsAvailable     = "is_available"
)

// Input is the writable shape of a book. Absent keys decode to nil and
// leave the stored value untouched on update.
type Input struct {
	Title   *string `json:"title"    validate:"omitempty,max=200"`
	TitleEN *string `json:"title_en" validate:"omitempty,max=200"`
	TitleHI *string `json:"title_hi" validate:"omitempty,max=500"`
	TitleTA *string `json:"title_ta" validate:"omitempty,max=500"`

	AuthorID        *int          `json:"author"`
	ISBN            *string       `json:"isbn" validate:"omitempty,max=13"`
	Genre           *string       `json:"genre"`
	PublicationDate *date.Date    `json:"publication_date"`
	Pages           *int          `json:"pages"`
	Price           *money.Amount `json:"price"`

	Description   *string `json:"description"`
	DescriptionEN *string `json:"description_en"`
	DescriptionHI *string `json:"description_hi"`
	DescriptionTA *string `json:"description_ta"`

	IsAvailable *bool `json:"is_available"`
}

// applyTo merges the input into b as written by a client using lang.
func (input Input) applyTo(b *Book, lang i18n.Lang) {
	b.Title.Apply(lang, input.Title, input.TitleEN, input.TitleHI, input.TitleTA)
	b.Description.Apply(lang, input.Description, input.DescriptionEN, input.DescriptionHI, input.DescriptionTA)

	if input.AuthorID != nil {
		b.AuthorID = *input.AuthorID
	}
	if input.ISBN != nil {
		b.ISBN = strings.TrimSpace(*input.ISBN)
	}
	if input.Genre != nil {
		b.Genre = Genre(*input.Genre)
	}
	if input.PublicationDate != nil {
		b.PublicationDate = *input.PublicationDate
	}
	if input.Pages != nil {
		b.Pages = *input.Pages
	}
	if input.Price != nil {
		b.Price = *input.Price
	}
	if input.IsAvailable != nil {
		b.IsAvailable = *input.IsAvailable
	}
}
