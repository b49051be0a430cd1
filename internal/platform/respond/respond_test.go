package respond_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/libris/internal/platform/apperr"
	"github.com/taibuivan/libris/internal/platform/respond"
	"github.com/taibuivan/libris/pkg/pagination"
)

func TestOK(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.OK(recorder, map[string]int{"total_books": 3})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"total_books":3}}`, recorder.Body.String())
}

func TestPaginated(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Paginated(recorder, []int{1, 2}, pagination.NewMeta(1, 2, 3))

	assert.JSONEq(t,
		`{"data":[1,2],"meta":{"page":1,"limit":2,"total":3,"total_pages":2,"has_next":true,"has_previous":false}}`,
		recorder.Body.String())
}

func TestError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "not found",
			err:    apperr.NotFound("Book"),
			status: http.StatusNotFound,
			body:   `{"error":"Book not found","code":"NOT_FOUND"}`,
		},
		{
			name:   "validation details",
			err:    apperr.ValidationError("Invalid input", apperr.FieldError{Field: "pages", Message: "Page count must be greater than 0."}),
			status: http.StatusBadRequest,
			body:   `{"error":"Invalid input","code":"VALIDATION_ERROR","details":[{"field":"pages","message":"Page count must be greater than 0."}]}`,
		},
		{
			name:   "plain error is hidden",
			err:    errors.New("pq: relation missing"),
			status: http.StatusInternalServerError,
			body:   `{"error":"An unexpected error occurred","code":"INTERNAL_ERROR"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			respond.Error(recorder, httptest.NewRequest(http.MethodGet, "/api/books/1", nil), tt.err)

			assert.Equal(t, tt.status, recorder.Code)
			assert.JSONEq(t, tt.body, recorder.Body.String())
		})
	}
}

func TestNoContent(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.NoContent(recorder)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}
