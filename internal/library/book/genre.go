package book

import "github.com/taibuivan/libris/pkg/slice"

// Genre is the catalog category of a book.
type Genre string

const (
	GenreFiction    Genre = "fiction"
	GenreNonFiction Genre = "non_fiction"
	GenreMystery    Genre = "mystery"
	GenreRomance    Genre = "romance"
	GenreSciFi      Genre = "sci_fi"
	GenreFantasy    Genre = "fantasy"
	GenreBiography  Genre = "biography"
	GenreHistory    Genre = "history"
	GenreSelfHelp   Genre = "self_help"
	GenreOther      Genre = "other"
)

// GenreOption is one entry of the genre picker.
type GenreOption struct {
	Code  Genre  `json:"code"`
	Label string `json:"label"`
}

// Genres lists every genre in display order.
var Genres = []GenreOption{
	{GenreFiction, "Fiction"},
	{GenreNonFiction, "Non-Fiction"},
	{GenreMystery, "Mystery"},
	{GenreRomance, "Romance"},
	{GenreSciFi, "Science Fiction"},
	{GenreFantasy, "Fantasy"},
	{GenreBiography, "Biography"},
	{GenreHistory, "History"},
	{GenreSelfHelp, "Self Help"},
	{GenreOther, "Other"},
}

// IsValid reports whether g is a known genre.
func (g Genre) IsValid() bool {
	_, found := slice.Find(Genres, func(option GenreOption) bool { return option.Code == g })
	return found
}

// genreCodes returns every code as a string, for validation messages.
func genreCodes() []string {
	return slice.Map(Genres, func(option GenreOption) string { return string(option.Code) })
}
