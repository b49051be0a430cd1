package author

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/libris/internal/platform/apperr"
	"github.com/taibuivan/libris/internal/platform/ctxutil"
	"github.com/taibuivan/libris/internal/platform/dberr"
	"github.com/taibuivan/libris/internal/platform/validate"
	"github.com/taibuivan/libris/pkg/pointer"
)

// ErrHasBooks refuses deleting an author that books still reference.
var ErrHasBooks = apperr.BadRequest("Cannot delete author with existing books. Delete books first.")

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

func (service *Service) ListAuthors(context context.Context, filter Filter, limit, offset int) ([]*Author, int, error) {
	return service.repo.ListAuthors(context, filter, limit, offset)
}

func (service *Service) GetAuthor(context context.Context, id int) (*Author, error) {
	author, err := service.repo.GetAuthor(context, id)
	if err != nil {
		return nil, notFound(err)
	}
	return author, nil
}

/*
CreateAuthor validates input and stores a new author.

Text fields are written in the request language; an empty English variant is
seeded from the written value. The returned author is reloaded after the save
so it carries any translations filled in the meantime.
*/
func (service *Service) CreateAuthor(context context.Context, input Input) (*Author, error) {
	author := &Author{}
	input.applyTo(author, ctxutil.GetLanguage(context))
	author.FirstName.SeedEnglish()
	author.LastName.SeedEnglish()
	author.Bio.SeedEnglish()

	if err := service.validate(context, input, author, true); err != nil {
		return nil, err
	}

	if err := service.repo.CreateAuthor(context, author); err != nil {
		return nil, err
	}

	service.logger.Info("author_created", slog.Int("author_id", author.ID), slog.String("email", author.Email))
	return service.GetAuthor(context, author.ID)
}

// UpdateAuthor applies input onto the stored author. A full update (PUT)
// requires every mandatory key; a partial one (PATCH) only checks what is sent.
func (service *Service) UpdateAuthor(context context.Context, id int, input Input, partial bool) (*Author, error) {
	author, err := service.GetAuthor(context, id)
	if err != nil {
		return nil, err
	}

	input.applyTo(author, ctxutil.GetLanguage(context))

	if err := service.validate(context, input, author, !partial); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateAuthor(context, author); err != nil {
		return nil, notFound(err)
	}

	service.logger.Info("author_updated", slog.Int("author_id", author.ID))
	return service.GetAuthor(context, author.ID)
}

func (service *Service) DeleteAuthor(context context.Context, id int) error {
	author, err := service.GetAuthor(context, id)
	if err != nil {
		return err
	}

	if author.BooksCount > 0 {
		return ErrHasBooks
	}

	if err := service.repo.DeleteAuthor(context, id); err != nil {
		return notFound(err)
	}

	service.logger.Warn("author_deleted", slog.Int("author_id", id))
	return nil
}

func (service *Service) validate(context context.Context, input Input, author *Author, full bool) error {
	validator := &validate.Validator{}
	if err := validator.Merge(validate.Struct(input)); err != nil {
		return err
	}

	requirePresent(validator, FieldFirstName, input.FirstName, full)
	requirePresent(validator, FieldLastName, input.LastName, full)
	requirePresent(validator, FieldEmail, input.Email, full)

	if input.Email != nil && author.Email != "" {
		taken, err := service.repo.EmailExists(context, author.Email, author.ID)
		if err != nil {
			return err
		}
		validator.Custom(FieldEmail, taken, "An author with this email already exists.")
	}

	return validator.Err()
}

// requirePresent rejects a blank value, and a missing one when full is set.
func requirePresent(validator *validate.Validator, field string, value *string, full bool) {
	if full || value != nil {
		validator.Required(field, pointer.Val(value))
	}
}

func notFound(err error) error {
	if errors.Is(err, dberr.ErrNotFound) {
		return apperr.NotFound("Author")
	}
	return err
}
