package book

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/taibuivan/libris/internal/platform/apperr"
	"github.com/taibuivan/libris/internal/platform/ctxutil"
	"github.com/taibuivan/libris/internal/platform/dberr"
	"github.com/taibuivan/libris/internal/platform/validate"
	"github.com/taibuivan/libris/pkg/pointer"
)

// Validation messages shown to catalog editors.
const (
	msgDuplicateISBN = "A book with this ISBN already exists."
	msgPages         = "Page count must be greater than 0."
	msgPagesTooLarge = "Page count is too large."
	msgPrice         = "Price must not be negative."
	msgUnknownAuthor = "Author does not exist."
)

// maxPages is the upper bound of the INTEGER pages column.
const maxPages = math.MaxInt32

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListBooks(context context.Context, filter Filter, limit, offset int) ([]*Book, int, error) {
	return service.repo.ListBooks(context, filter, limit, offset)
}

// ListByAuthor returns every book of an existing author.
func (service *Service) ListByAuthor(context context.Context, authorID int) ([]*Book, error) {
	exists, err := service.repo.AuthorExists(context, authorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Author")
	}
	return service.repo.ListByAuthor(context, authorID)
}

func (service *Service) GetBook(context context.Context, id int) (*Book, error) {
	book, err := service.repo.GetBook(context, id)
	if err != nil {
		return nil, notFound(err)
	}
	return book, nil
}

/*
CreateBook validates input and stores a new book.

Genre defaults to other and availability to true. The returned book is
reloaded after the save so it carries its author and any filled translations.
*/
func (service *Service) CreateBook(context context.Context, input Input) (*Book, error) {
	book := &Book{Genre: GenreOther, IsAvailable: true}
	input.applyTo(book, ctxutil.GetLanguage(context))
	book.Title.SeedEnglish()
	book.Description.SeedEnglish()

	if err := service.validate(context, input, book, true); err != nil {
		return nil, err
	}

	if err := service.repo.CreateBook(context, book); err != nil {
		return nil, err
	}

	service.logger.Info("book_created", slog.Int("book_id", book.ID), slog.Int("author_id", book.AuthorID))
	return service.GetBook(context, book.ID)
}

// UpdateBook applies input onto the stored book. A full update (PUT) requires
// every mandatory key; a partial one (PATCH) only checks what is sent.
func (service *Service) UpdateBook(context context.Context, id int, input Input, partial bool) (*Book, error) {
	book, err := service.GetBook(context, id)
	if err != nil {
		return nil, err
	}

	input.applyTo(book, ctxutil.GetLanguage(context))

	if err := service.validate(context, input, book, !partial); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateBook(context, book); err != nil {
		return nil, notFound(err)
	}

	service.logger.Info("book_updated", slog.Int("book_id", book.ID))
	return service.GetBook(context, book.ID)
}

func (service *Service) DeleteBook(context context.Context, id int) error {
	if err := service.repo.DeleteBook(context, id); err != nil {
		return notFound(err)
	}

	service.logger.Warn("book_deleted", slog.Int("book_id", id))
	return nil
}

func (service *Service) Statistics(context context.Context) (*Statistics, error) {
	return service.repo.Statistics(context)
}

func (service *Service) validate(context context.Context, input Input, book *Book, full bool) error {
	validator := &validate.Validator{}
	if err := validator.Merge(validate.Struct(input)); err != nil {
		return err
	}

	if full || input.Title != nil {
		validator.Required(FieldTitle, pointer.Val(input.Title))
	}

	if full {
		validator.Custom(FieldAuthor, input.AuthorID == nil, "This field is required")
		validator.Custom(FieldPublicationDate, input.PublicationDate == nil, "This field is required")
		validator.Custom(FieldPages, input.Pages == nil, "This field is required")
		validator.Custom(FieldPrice, input.Price == nil, "This field is required")
	}

	if input.Pages != nil {
		validator.Custom(FieldPages, book.Pages <= 0, msgPages)
		validator.Custom(FieldPages, book.Pages > maxPages, msgPagesTooLarge)
	}
	if input.Price != nil {
		validator.Custom(FieldPrice, book.Price < 0, msgPrice)
	}
	if input.Genre != nil && !book.Genre.IsValid() {
		validator.OneOf(FieldGenre, string(book.Genre), genreCodes()...)
	}

	if input.AuthorID != nil {
		exists, err := service.repo.AuthorExists(context, book.AuthorID)
		if err != nil {
			return err
		}
		validator.Custom(FieldAuthor, !exists, msgUnknownAuthor)
	}

	if input.ISBN != nil && book.ISBN != "" {
		taken, err := service.repo.ISBNExists(context, book.ISBN, book.ID)
		if err != nil {
			return err
		}
		validator.Custom(FieldISBN, taken, msgDuplicateISBN)
	}

	return validator.Err()
}

func notFound(err error) error {
	if errors.Is(err, dberr.ErrNotFound) {
		return apperr.NotFound("Book")
	}
	return err
}
