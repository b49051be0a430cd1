package author

import (
	"strings"
	"time"

	"github.com/taibuivan/libris/internal/platform/i18n"
	"github.com/taibuivan/libris/pkg/date"
)

// Author is a writer in the catalog. Names and bio are stored in every
// supported language.
type Author struct {
	ID         int
	FirstName  i18n.Text
	LastName   i18n.Text
	Email      string
	Bio        i18n.Text
	BirthDate  *date.Date
	BooksCount int // derived, never written
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FullName joins first and last name as rendered in lang.
func (a *Author) FullName(lang i18n.Lang) string {
	return strings.TrimSpace(a.FirstName.In(lang) + " " + a.LastName.In(lang))
}

// Filter holds the parameters for a paginated author search.
type Filter struct {
	Search string // substring of any name variant or the email
}

// Global field names for validation
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldBio       = "bio"
	FieldBirthDate = "birth_date"
)

// Input is the writable shape of an author. Absent keys decode to nil and
// leave the stored value untouched on update.
type Input struct {
	FirstName   *string `json:"first_name"    validate:"omitempty,max=100"`
	FirstNameEN *string `json:"first_name_en" validate:"omitempty,max=100"`
	FirstNameHI *string `json:"first_name_hi" validate:"omitempty,max=255"`
	FirstNameTA *string `json:"first_name_ta" validate:"omitempty,max=255"`

	LastName   *string `json:"last_name"    validate:"omitempty,max=100"`
	LastNameEN *string `json:"last_name_en" validate:"omitempty,max=100"`
	LastNameHI *string `json:"last_name_hi" validate:"omitempty,max=255"`
	LastNameTA *string `json:"last_name_ta" validate:"omitempty,max=255"`

	Email *string `json:"email" validate:"omitempty,max=254,email"`

	Bio   *string `json:"bio"`
	BioEN *string `json:"bio_en"`
	BioHI *string `json:"bio_hi"`
	BioTA *string `json:"bio_ta"`

	BirthDate *date.Date `json:"birth_date"`
}

// applyTo merges the input into a as written by a client using lang.
func (input Input) applyTo(a *Author, lang i18n.Lang) {
	a.FirstName.Apply(lang, input.FirstName, input.FirstNameEN, input.FirstNameHI, input.FirstNameTA)
	a.LastName.Apply(lang, input.LastName, input.LastNameEN, input.LastNameHI, input.LastNameTA)
	a.Bio.Apply(lang, input.Bio, input.BioEN, input.BioHI, input.BioTA)

	if input.Email != nil {
		a.Email = strings.TrimSpace(*input.Email)
	}
	if input.BirthDate != nil {
		a.BirthDate = input.BirthDate
	}
}
