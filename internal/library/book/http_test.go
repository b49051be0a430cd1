package book_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/libris/internal/library/book"
	"github.com/taibuivan/libris/internal/platform/ctxutil"
	"github.com/taibuivan/libris/internal/platform/i18n"
)

func newRouter(repo book.Repository) http.Handler {
	handler := book.NewHandler(book.NewService(repo, discardLogger()))

	router := chi.NewRouter()
	router.Route("/books", handler.RegisterRoutes)
	router.Route("/authors", handler.RegisterAuthorRoutes)
	return router
}

func serve(t *testing.T, handler http.Handler, method, target, body string, lang i18n.Lang) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	request = request.WithContext(ctxutil.WithLanguage(context.Background(), lang))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func seed(t *testing.T, router http.Handler) {
	t.Helper()
	for _, body := range []string{
		`{"title":"Dune","title_hi":"ड्यून","author":1,"isbn":"9780441013593","genre":"sci_fi","publication_date":"1965-08-01","pages":412,"price":"9.99"}`,
		`{"title":"Children of Dune","author":1,"genre":"sci_fi","publication_date":"1976-04-01","pages":444,"price":7.5,"is_available":false}`,
		`{"title":"Earthsea","author":2,"genre":"fantasy","publication_date":"1968-11-01","pages":183,"price":"12"}`,
	} {
		recorder := serve(t, router, http.MethodPost, "/books/", body, i18n.English)
		require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	}
}

type page struct {
	Data []book.Summary `json:"data"`
	Meta struct {
		Total int `json:"total"`
	} `json:"meta"`
}

func listBooks(t *testing.T, router http.Handler, target string) page {
	t.Helper()
	recorder := serve(t, router, http.MethodGet, target, "", i18n.English)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var result page
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	return result
}

func TestHandler_AvailableFilter(t *testing.T) {
	router := newRouter(newMemoryRepository())
	seed(t, router)

	tests := []struct {
		query string
		total int
	}{
		{"", 3},
		{"?available=true", 2},
		{"?available=TRUE", 2},
		{"?available=1", 2},
		{"?available=false", 3},
		{"?available=0", 3},
		{"?available=yes", 3},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.total, listBooks(t, router, "/books/"+tt.query).Meta.Total)
		})
	}
}

func TestHandler_ListFilters(t *testing.T) {
	router := newRouter(newMemoryRepository())
	seed(t, router)

	assert.Equal(t, 2, listBooks(t, router, "/books/?genre=sci_fi").Meta.Total)
	assert.Equal(t, 1, listBooks(t, router, "/books/?author=2").Meta.Total)
	assert.Equal(t, 2, listBooks(t, router, "/books/?search=dune").Meta.Total)

	first := listBooks(t, router, "/books/?limit=1").Data
	require.Len(t, first, 1)
	assert.Equal(t, "Earthsea", first[0].Title)
	assert.Equal(t, "Ursula Le Guin", first[0].AuthorName)
	assert.Equal(t, "12.00", first[0].Price.String())

	for _, target := range []string{"/books/?genre=poetry", "/books/?author=abc"} {
		recorder := serve(t, router, http.MethodGet, target, "", i18n.English)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, target)
	}
}

func TestHandler_DetailInLanguage(t *testing.T) {
	router := newRouter(newMemoryRepository())
	seed(t, router)

	recorder := serve(t, router, http.MethodGet, "/books/1", "", i18n.Hindi)
	require.Equal(t, http.StatusOK, recorder.Code)

	var detail struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &detail))
	assert.Equal(t, "ड्यून", detail.Data["title"])
	assert.Equal(t, "9.99", detail.Data["price"])
	assert.Equal(t, "1965-08-01", detail.Data["publication_date"])
	assert.Equal(t, "9780441013593", detail.Data["isbn"])
	assert.Equal(t, "Frank हर्बर्ट", detail.Data["author_name"])

	authorDetails, ok := detail.Data["author_details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Frank हर्बर्ट", authorDetails["full_name"])
	assert.EqualValues(t, 2, authorDetails["books_count"])

	tamil := serve(t, router, http.MethodGet, "/books/1", "", i18n.Tamil)
	assert.Contains(t, tamil.Body.String(), `"title":"Dune"`)
}

func TestHandler_StatisticsAndGenres(t *testing.T) {
	router := newRouter(newMemoryRepository())
	seed(t, router)

	recorder := serve(t, router, http.MethodGet, "/books/statistics", "", i18n.English)
	require.Equal(t, http.StatusOK, recorder.Code)

	var stats struct {
		Data book.Statistics `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &stats))
	assert.Equal(t, book.Statistics{
		TotalAuthors:       2,
		TotalBooks:         3,
		AvailableBooks:     2,
		UnavailableBooks:   1,
		GenresDistribution: map[string]int{"sci_fi": 2, "fantasy": 1},
	}, stats.Data)

	genres := serve(t, router, http.MethodGet, "/books/genres", "", i18n.English)
	require.Equal(t, http.StatusOK, genres.Code)
	assert.Contains(t, genres.Body.String(), `{"code":"non_fiction","label":"Non-Fiction"}`)
}

func TestHandler_AuthorBooksAndDelete(t *testing.T) {
	router := newRouter(newMemoryRepository())
	seed(t, router)

	recorder := serve(t, router, http.MethodGet, "/authors/1/books", "", i18n.English)
	require.Equal(t, http.StatusOK, recorder.Code)
	var books struct {
		Data []book.Summary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &books))
	assert.Len(t, books.Data, 2)

	assert.Equal(t, http.StatusNotFound, serve(t, router, http.MethodGet, "/authors/9/books", "", i18n.English).Code)

	assert.Equal(t, http.StatusNoContent, serve(t, router, http.MethodDelete, "/books/1", "", i18n.English).Code)
	assert.Equal(t, http.StatusNotFound, serve(t, router, http.MethodDelete, "/books/1", "", i18n.English).Code)
}

func TestHandler_DuplicateISBN(t *testing.T) {
	router := newRouter(newMemoryRepository())
	seed(t, router)

	recorder := serve(t, router, http.MethodPatch, "/books/3", `{"isbn":"9780441013593"}`, i18n.English)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"field":"isbn"`)
	assert.Contains(t, recorder.Body.String(), "A book with this ISBN already exists.")
}
