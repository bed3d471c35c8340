package middleware

import (
	"net/http"
	"strings"

	"github.com/AlenaMolokova/cardform/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// AuthMiddleware accepts HS256 bearer tokens signed with secret. The token
// subject identifies the storefront calling the API and is reported in the
// request log line.
func AuthMiddleware(secret string, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				log.Debug("missing or invalid Authorization header")
				utils.WriteJSONError(w, http.StatusUnauthorized, "Missing or invalid Authorization header")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			}, jwt.WithExpirationRequired())
			if err != nil || !token.Valid {
				log.Debug("invalid token", zap.Error(err))
				utils.WriteJSONError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			subject, err := token.Claims.GetSubject()
			if err != nil || subject == "" {
				log.Debug("token has no subject", zap.Error(err))
				utils.WriteJSONError(w, http.StatusUnauthorized, "Invalid token claims")
				return
			}

			if info, ok := requestInfoFrom(r.Context()); ok {
				info.clientID = subject
			}
			next.ServeHTTP(w, r)
		})
	}
}
