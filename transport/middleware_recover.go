package transport

import (
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/table-booking/constant"
	"github.com/muhammadheryan/table-booking/utils/errors"
	"github.com/muhammadheryan/table-booking/utils/logger"
	"go.uber.org/zap"
)

// RecoverMiddleware turns a handler panic into a generic 500 response.
func RecoverMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("[RecoverMiddleware] panic",
						zap.Any("panic", rec),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.ByteString("stack", debug.Stack()))
					writeError(w, errors.SetCustomError(constant.ErrInternal))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
