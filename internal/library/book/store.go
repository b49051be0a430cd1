package book

import "context"

// Repository persists books.
type Repository interface {
	ListBooks(context context.Context, f Filter, limit, offset int) ([]*Book, int, error)
	ListByAuthor(context context.Context, authorID int) ([]*Book, error)
	GetBook(context context.Context, id int) (*Book, error)
	CreateBook(context context.Context, b *Book) error
	UpdateBook(context context.Context, b *Book) error
	DeleteBook(context context.Context, id int) error

	// ISBNExists reports whether a book other than excludeID holds isbn.
	ISBNExists(context context.Context, isbn string, excludeID int) (bool, error)
	AuthorExists(context context.Context, authorID int) (bool, error)
	Statistics(context context.Context) (*Statistics, error)
}
