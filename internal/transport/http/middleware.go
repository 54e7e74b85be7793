package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/swasthya-setu/backend/internal/domain"
	"github.com/swasthya-setu/backend/internal/security"
	"github.com/swasthya-setu/backend/pkg/httputil"
)

type authCtxKey string

const (
	ctxKeyUserID authCtxKey = "auth.userID"
	ctxKeyRole   authCtxKey = "auth.role"
)

// RequireAuth проверяет Bearer-токен и кладёт userID и роль в контекст.
func RequireAuth(jwt *security.JWTSigner) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				httputil.Error(w, http.StatusUnauthorized, "missing or invalid Authorization header")
				return
			}

			claims, err := jwt.ParseAndValidate(strings.TrimSpace(parts[1]))
			if err != nil {
				httputil.Error(w, http.StatusUnauthorized, "invalid token")
				return
			}
			userID, err := security.SubjectAsUserID(claims)
			if err != nil {
				httputil.Error(w, http.StatusUnauthorized, "invalid token subject")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUserID, userID)
			ctx = context.WithValue(ctx, ctxKeyRole, domain.Role(claims.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole пускает дальше только перечисленные роли. Админ проходит всегда.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := RoleFromContext(r.Context())
			if !ok {
				httputil.Error(w, http.StatusUnauthorized, "not authenticated")
				return
			}
			if role == domain.RoleAdmin {
				next.ServeHTTP(w, r)
				return
			}
			for _, want := range roles {
				if role == want {
					next.ServeHTTP(w, r)
					return
				}
			}
			httputil.Error(w, http.StatusForbidden, "insufficient role")
		})
	}
}

func UserIDFromContext(ctx context.Context) (domain.UserID, bool) {
	id, ok := ctx.Value(ctxKeyUserID).(domain.UserID)
	return id, ok
}

func RoleFromContext(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(ctxKeyRole).(domain.Role)
	return role, ok
}
