package middleware

import (
	"net/http"

	"github.com/taibuivan/libris/internal/platform/constants"
	"github.com/taibuivan/libris/internal/platform/ctxutil"
	"github.com/taibuivan/libris/internal/platform/i18n"
)

// Language resolves the Accept-Language header into the request context and
// echoes the choice in Content-Language. The language only lives in the
// derived context, so nothing needs restoring afterwards.
func Language() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			lang := i18n.Resolve(request.Header.Get(constants.HeaderAcceptLanguage))

			writer.Header().Set(constants.HeaderContentLanguage, lang.String())
			next.ServeHTTP(writer, request.WithContext(ctxutil.WithLanguage(request.Context(), lang)))
		})
	}
}
