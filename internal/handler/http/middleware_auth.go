package http

import (
	"net/http"

	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/internal/utils"
)

// auth is an HTTP middleware that enforces token authentication.
//
// It reads "Authorization: Token <token>" (the Bearer scheme is accepted
// too), resolves the token to an active user via
// [service.AuthService.ParseToken] and stores that user in the request
// context with [utils.WithUser].
//
// A missing or malformed header, a forged, expired or revoked token and an
// inactive owner all end the request with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseAuthorizationHeader(authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		userLog := log.With().Int64("user_id", user.ID).Logger()
		ctx = userLog.WithContext(utils.WithUser(ctx, user))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// admin lets through only authenticated staff users. It must run after
// [Handler.auth].
func (h *Handler) admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.GetUserFromContext(r.Context())
		if !ok {
			writeError(w, r, ErrUnauthenticated)
			return
		}

		if !user.IsAdmin() {
			writeError(w, r, ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
