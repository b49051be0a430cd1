package author

import "context"

// Repository persists authors.
type Repository interface {
	ListAuthors(context context.Context, f Filter, limit, offset int) ([]*Author, int, error)
	GetAuthor(context context.Context, id int) (*Author, error)
	CreateAuthor(context context.Context, a *Author) error
	UpdateAuthor(context context.Context, a *Author) error
	DeleteAuthor(context context.Context, id int) error

	// EmailExists reports whether another author than excludeID uses email.
	EmailExists(context context.Context, email string, excludeID int) (bool, error)
}
