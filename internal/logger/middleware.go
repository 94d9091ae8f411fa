package logger

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestLogger returns a chi middleware that logs every handled
// request with its method, path and final status code.
func RequestLogger(l *Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			l.LogAPI(r.Method, r.URL.Path, strconv.Itoa(ww.Status()))
		})
	}
}
