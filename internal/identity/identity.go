package identity

import "context"

// Identity установленная личность запроса
type Identity struct {
	UserID      string
	DisplayName string
	// Source имя провайдера, установившего личность (для логов)
	Source string
}

// IsGuest возвращает true для сгенерированной гостевой личности
func (i *Identity) IsGuest() bool {
	return i.Source == sourceGuest
}

type ctxKey struct{}

// WithIdentity кладет личность в контекст запроса
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext достает личность из контекста
func FromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(*Identity)
	return id, ok
}
