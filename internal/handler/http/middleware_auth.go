package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/internal/utils"
)

// auth enforces bearer-token authentication on bridge routes.
//
// The token must be an HS256 JWT signed with the configured bridge key and
// issued by the configured issuer; see [utils.ValidateBridgeToken]. On
// success the token subject is stored in the request context under
// [utils.SessionIDCtxKey].
//
// Requests are rejected with 401 when the "Authorization" header is
// missing ([ErrEmptyAuthorizationHeader]), malformed
// ([ErrInvalidAuthorizationHeader]) or carries an invalid token
// ([ErrInvalidToken]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		sessionID, err := utils.ValidateBridgeToken(tokenString, h.cfg.TokenSignKey, h.cfg.TokenIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, ErrInvalidToken.Error(), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.SessionIDCtxKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
