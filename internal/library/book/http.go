package book

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/libris/internal/platform/request"
	"github.com/taibuivan/libris/internal/platform/respond"
	"github.com/taibuivan/libris/internal/platform/validate"
	"github.com/taibuivan/libris/pkg/convert"
	"github.com/taibuivan/libris/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the book endpoints on a router scoped to /books.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listBooks)
	router.Post("/", handler.createBook)
	router.Get("/statistics", handler.statistics)
	router.Get("/genres", handler.genres)

	router.Get("/{id}", handler.getBook)
	router.Put("/{id}", handler.replaceBook)
	router.Patch("/{id}", handler.updateBook)
	router.Delete("/{id}", handler.deleteBook)
}

// RegisterAuthorRoutes mounts the book listing of one author on a router
// scoped to /authors.
func (handler *Handler) RegisterAuthorRoutes(router chi.Router) {
	router.Get("/{id}/books", handler.listAuthorBooks)
}

/*
parseFilter reads the list query parameters.

Only genre and author can be rejected. available switches the filter on
for "true" and "1"; any other value leaves the list unfiltered.
*/
func parseFilter(query url.Values) (Filter, error) {
	filter := Filter{
		Search:        query.Get("search"),
		AvailableOnly: convert.Flag(query.Get("available")),
	}
	validator := &validate.Validator{}

	if genre := strings.TrimSpace(query.Get("genre")); genre != "" {
		filter.Genre = Genre(genre)
		if !filter.Genre.IsValid() {
			validator.OneOf(FieldGenre, genre, genreCodes()...)
		}
	}

	authorID, ok := convert.OptionalInt(query.Get("author"))
	validator.Custom(FieldAuthor, !ok, "Must be an integer")
	filter.AuthorID = authorID

	return filter, validator.Err()
}

func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter, err := parseFilter(request.URL.Query())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	books, total, err := handler.service.ListBooks(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, summaries(books, requestutil.Language(request)),
		paginationParams.Meta(total))
}

func (handler *Handler) listAuthorBooks(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.IntID(request, "id", "Author")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	books, err := handler.service.ListByAuthor(request.Context(), authorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, summaries(books, requestutil.Language(request)))
}

func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id", "Book")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.GetBook(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, NewDetail(book, requestutil.Language(request)))
}

func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.CreateBook(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, NewDetail(book, requestutil.Language(request)))
}

func (handler *Handler) replaceBook(writer http.ResponseWriter, request *http.Request) {
	handler.writeBook(writer, request, false)
}

func (handler *Handler) updateBook(writer http.ResponseWriter, request *http.Request) {
	handler.writeBook(writer, request, true)
}

func (handler *Handler) writeBook(writer http.ResponseWriter, request *http.Request, partial bool) {
	bookID, err := requestutil.IntID(request, "id", "Book")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.UpdateBook(request.Context(), bookID, input, partial)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, NewDetail(book, requestutil.Language(request)))
}

func (handler *Handler) deleteBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id", "Book")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteBook(request.Context(), bookID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) statistics(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.service.Statistics(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, stats)
}

func (handler *Handler) genres(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, Genres)
}
