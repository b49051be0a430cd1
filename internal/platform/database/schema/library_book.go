package schema

import "github.com/taibuivan/libris/internal/platform/constants"

// LibraryBookTable represents the 'library.book' table
type LibraryBookTable struct {
	Table           string
	ID              string
	Title           TranslatableColumn
	AuthorID        string
	ISBN            string
	Genre           string
	PublicationDate string
	Pages           string
	Price           string
	Description     TranslatableColumn
	IsAvailable     string
	CreatedAt       string
	UpdatedAt       string
}

// LibraryBook is the schema definition for library.book
var LibraryBook = LibraryBookTable{
	Table:           constants.SchemaLibrary + ".book",
	ID:              "id",
	Title:           translatable("title"),
	AuthorID:        "author_id",
	ISBN:            "isbn",
	Genre:           "genre",
	PublicationDate: "publication_date",
	Pages:           "pages",
	Price:           "price",
	Description:     translatable("description"),
	IsAvailable:     "is_available",
	CreatedAt:       "created_at",
	UpdatedAt:       "updated_at",
}

// Translatable returns the translatable columns keyed by their base name.
func (t LibraryBookTable) Translatable() map[string]TranslatableColumn {
	return map[string]TranslatableColumn{
		t.Title.Base:       t.Title,
		t.Description.Base: t.Description,
	}
}
