package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Заголовки, выставляемые gateway после аутентификации
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
	HeaderUserName = "X-User-Name"
)

type contextKey string

const actorKey contextKey = "actor"

// Auth требует заголовок X-User-ID и кладет Actor в контекст.
// Роль admin выставляется только при X-User-Role: admin, иначе user
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		userID, err := strconv.ParseInt(raw, 10, 64)
		if raw == "" || err != nil || userID <= 0 {
			unauthorized(w)
			return
		}

		actor := domain.Actor{UserID: userID, Role: domain.RoleUser}
		if strings.EqualFold(r.Header.Get(HeaderUserRole), string(domain.RoleAdmin)) {
			actor.Role = domain.RoleAdmin
		}
		if name := strings.TrimSpace(r.Header.Get(HeaderUserName)); name != "" {
			actor.Name = &name
		}

		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// WithActor кладет Actor в контекст
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor достает Actor из контекста
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	return actor, ok
}

// GetUserID достает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	actor, ok := GetActor(ctx)
	if !ok {
		return 0, false
	}
	return actor.UserID, true
}

func unauthorized(w http.ResponseWriter) {
	handlers.RespondUnauthorized(w, "отсутствует или некорректен заголовок "+HeaderUserID)
}
