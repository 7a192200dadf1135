package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"deepcheck_api/models/tables"
	responsex "deepcheck_api/pkg/response"
	"deepcheck_api/pkg/store"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

var UserIDContextKey = contextKey("userID")
var ApiKeyContextKey = contextKey("apiKey")

const ApiKeyHeader = "dc-api-key"

// RequireSession resolves the opaque token from the Authorization header
// against the sessions table. Expired sessions are rejected.
func RequireSession(s *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				responsex.Error(w, http.StatusUnauthorized, "Missing session token")
				return
			}

			session, err := s.GetValidSession(r.Context(), token)
			if errors.Is(err, store.ErrNotFound) {
				responsex.Error(w, http.StatusUnauthorized, "Invalid session token")
				return
			}
			if errors.Is(err, store.ErrSessionExpired) {
				responsex.Error(w, http.StatusUnauthorized, "Session expired")
				return
			}
			if err != nil {
				responsex.Error(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDContextKey, session.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthApiKey validates the dc-api-key header by sha256 lookup, checks
// active/expiry flags, applies a fixed-window rate limit in redis and
// records the use. A nil redis client disables rate limiting.
func AuthApiKey(s *store.Store, rdb *redis.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get(ApiKeyHeader)
			if apiKey == "" {
				responsex.Error(w, http.StatusUnauthorized, "Missing API Key")
				return
			}

			sum := sha256.Sum256([]byte(apiKey))
			key, err := s.GetApiKeyByHash(r.Context(), hex.EncodeToString(sum[:]))
			if errors.Is(err, store.ErrNotFound) {
				responsex.Error(w, http.StatusUnauthorized, "Invalid API Key")
				return
			}
			if err != nil {
				responsex.Error(w, http.StatusUnauthorized, "API Key Validation Failed")
				return
			}

			if !key.IsActive {
				responsex.Error(w, http.StatusUnauthorized, "API Key disabled")
				return
			}
			if key.ExpiresAt != nil && key.ExpiresAt.Before(time.Now()) {
				responsex.Error(w, http.StatusUnauthorized, "API Key expired")
				return
			}

			if rdb != nil && key.RateLimit > 0 {
				if !allow(r.Context(), rdb, key.ID, key.RateLimit) {
					responsex.Error(w, http.StatusTooManyRequests, "Rate limit exceeded")
					return
				}
			}

			if err := s.TouchApiKey(r.Context(), key.ID, time.Now()); err != nil {
				responsex.Error(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDContextKey, key.UserID)
			ctx = context.WithValue(ctx, ApiKeyContextKey, key)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin parses an HS256 access token with an admin scope claim.
func RequireAdmin(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := jwt.Parse(bearerToken(r), func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return secret, nil
			})
			if err != nil {
				responsex.Error(w, http.StatusUnauthorized, err.Error())
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok || claims["scope"] != "admin" {
				responsex.Error(w, http.StatusForbidden, "Admin scope required")
				return
			}

			userid, _ := claims["sub"].(string)
			ctx := context.WithValue(r.Context(), UserIDContextKey, userid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// allow implements a per-key fixed one-minute window counter.
func allow(ctx context.Context, rdb *redis.Client, keyID string, limit int) bool {
	window := time.Now().Format("200601021504")
	redisKey := fmt.Sprintf("ratelimit:%s:%s", keyID, window)

	count, err := rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		// Fail open: redis trouble should not take the API down.
		return true
	}
	if count == 1 {
		rdb.Expire(ctx, redisKey, time.Minute)
	}
	return count <= int64(limit)
}

func bearerToken(r *http.Request) string {
	value := r.Header.Get("Authorization")
	return strings.TrimPrefix(value, "Bearer ")
}

// GetUserIDFromContext is a helper for handlers downstream of the
// middlewares above.
func GetUserIDFromContext(r *http.Request) string {
	userID, ok := r.Context().Value(UserIDContextKey).(string)
	if !ok {
		return ""
	}
	return userID
}

func GetApiKeyFromContext(r *http.Request) *tables.ApiKey {
	key, ok := r.Context().Value(ApiKeyContextKey).(*tables.ApiKey)
	if !ok {
		return nil
	}
	return key
}
