package middleware

import (
	"net/http"

	"github.com/velitt/Studio-BookingService/internal/identity"
)

// Identity устанавливает личность запроса через цепочку провайдеров
// и кладет ее в контекст. Цепочка всегда дает результат (в крайнем
// случае - сгенерированного гостя), поэтому middleware не отклоняет запросы
func Identity(resolver *identity.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := resolver.Resolve(r)
			ctx := identity.WithIdentity(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
