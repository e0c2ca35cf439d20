package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"guild-dashboard/internal/domain"
	"guild-dashboard/internal/netutil"
	obsmw "guild-dashboard/internal/observability/middleware"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the session token the login flow mints after the OAuth
// callback: the Discord user id as subject, plus the OAuth access token this
// service forwards to the authority oracle on the caller's behalf.
type SessionClaims struct {
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
	jwt.RegisteredClaims
}

type SessionValidator struct {
	secret []byte
	issuer string
}

func NewSessionValidator(secret, issuer string) *SessionValidator {
	return &SessionValidator{secret: []byte(secret), issuer: issuer}
}

func (v *SessionValidator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := obsmw.RequestIDFromContext(r.Context())

		raw := r.Header.Get("Authorization")
		if !strings.HasPrefix(strings.ToLower(raw), "bearer ") {
			slog.Warn("session missing bearer", "request_id", reqID, "path", r.URL.Path)
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Unauthorized"})
			return
		}
		tokStr := strings.TrimSpace(raw[len("Bearer "):])

		var claims SessionClaims
		token, err := jwt.ParseWithClaims(tokStr, &claims, func(token *jwt.Token) (interface{}, error) {
			// Ensure HS* (HMAC) only
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return v.secret, nil
		})
		if err != nil || !token.Valid {
			slog.Warn("session invalid token", "error", err, "request_id", reqID)
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Unauthorized"})
			return
		}
		if v.issuer != "" && claims.Issuer != "" && claims.Issuer != v.issuer {
			slog.Warn("session issuer mismatch", "issuer", claims.Issuer, "request_id", reqID)
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Unauthorized"})
			return
		}
		if claims.Subject == "" {
			slog.Warn("session missing subject", "request_id", reqID)
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Unauthorized"})
			return
		}

		id := domain.Identity{
			UserID:      claims.Subject,
			Username:    claims.Username,
			AccessToken: claims.AccessToken,
			SourceIP:    clientIP(r),
			UserAgent:   netutil.SanitizeUserAgent(r.UserAgent()),
		}
		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), id)))
	})
}

type identityKey struct{}

func withIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFrom(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(domain.Identity)
	return id, ok
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// XFF can be a list: client, proxy1, proxy2...
		ip := strings.TrimSpace(strings.Split(xff, ",")[0])
		if canonical, ok := netutil.CanonicalIP(ip); ok {
			return canonical
		}
	}
	if xr := r.Header.Get("X-Real-IP"); xr != "" {
		if canonical, ok := netutil.CanonicalIP(xr); ok {
			return canonical
		}
	}
	if canonical, ok := netutil.CanonicalIP(r.RemoteAddr); ok {
		return canonical
	}
	return r.RemoteAddr
}
