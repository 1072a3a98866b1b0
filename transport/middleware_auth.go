package transport

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/table-booking/application/user"
	"github.com/muhammadheryan/table-booking/constant"
	utilsContext "github.com/muhammadheryan/table-booking/utils/context"
	"github.com/muhammadheryan/table-booking/utils/errors"
)

// AuthMiddleware returns a middleware that validates bearer tokens using UserApp.
// It allows public endpoints (like /signin, /signup, /swagger/) without token.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Public paths
			path := r.URL.Path
			if isPublicPath(path) {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if token == "" {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			identity, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				// a provider outage keeps its own status, anything untyped is a bad token
				var ce errors.CustomError
				if !stderrors.As(err, &ce) {
					ce = errors.SetCustomError(constant.ErrUnauthorize)
				}
				writeError(w, ce)
				return
			}

			ctx := utilsContext.WithUsername(r.Context(), identity.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") {
		return true
	}
	if path == "/signin" || path == "/signup" {
		return true
	}

	return false
}
