package schema

import "github.com/taibuivan/libris/internal/platform/constants"

// LibraryAuthorTable represents the 'library.author' table
type LibraryAuthorTable struct {
	Table     string
	ID        string
	FirstName TranslatableColumn
	LastName  TranslatableColumn
	Email     string
	Bio       TranslatableColumn
	BirthDate string
	CreatedAt string
	UpdatedAt string
}

// LibraryAuthor is the schema definition for library.author
var LibraryAuthor = LibraryAuthorTable{
	Table:     constants.SchemaLibrary + ".author",
	ID:        "id",
	FirstName: translatable("first_name"),
	LastName:  translatable("last_name"),
	Email:     "email",
	Bio:       translatable("bio"),
	BirthDate: "birth_date",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

// Translatable returns the translatable columns keyed by their base name.
func (t LibraryAuthorTable) Translatable() map[string]TranslatableColumn {
	return map[string]TranslatableColumn{
		t.FirstName.Base: t.FirstName,
		t.LastName.Base:  t.LastName,
		t.Bio.Base:       t.Bio,
	}
}
