package identity

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/velitt/Studio-BookingService/internal/integrations/lineauth"
)

// Имена провайдеров (попадают в Identity.Source)
const (
	sourceLineToken = "line_token"
	sourceHeader    = "header"
	sourceQuery     = "query"
	sourceGuest     = "guest"
)

// Provider один шаг цепочки установления личности
// Возвращает (nil, nil), если запрос не содержит данных для этого провайдера
type Provider interface {
	Name() string
	Resolve(r *http.Request) (*Identity, error)
}

// TokenVerifier проверяет LINE access token и возвращает профиль
type TokenVerifier interface {
	VerifyToken(ctx context.Context, accessToken string) (*lineauth.Profile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Resolver упорядоченная цепочка провайдеров личности
// Явная замена глобального session-состояния: первый провайдер,
// вернувший личность, выигрывает; ошибки провайдера логируются,
// цепочка продолжается со следующего
type Resolver struct {
	providers []Provider
	log       Logger
}

// NewResolver создает резолвер с переданной цепочкой провайдеров
func NewResolver(log Logger, providers ...Provider) *Resolver {
	return &Resolver{providers: providers, log: log}
}

// NewDefaultResolver собирает штатную цепочку:
// verified LINE token > X-User-ID header > userId query > generated guest
func NewDefaultResolver(verifier TokenVerifier, log Logger) *Resolver {
	providers := []Provider{}
	if verifier != nil {
		providers = append(providers, &BearerTokenProvider{Verifier: verifier})
	}
	providers = append(providers,
		&HeaderProvider{},
		&QueryProvider{},
		&GuestProvider{},
	)
	return NewResolver(log, providers...)
}

// Resolve устанавливает личность запроса
// Всегда возвращает непустую личность: последний провайдер цепочки
// генерирует гостевую
func (r *Resolver) Resolve(req *http.Request) *Identity {
	for _, p := range r.providers {
		id, err := p.Resolve(req)
		if err != nil {
			r.log.Warn("identity: provider %s failed: %v", p.Name(), err)
			continue
		}
		if id != nil {
			return id
		}
	}

	// Недостижимо при штатной цепочке (GuestProvider всегда отвечает),
	// но резолвер не обязан знать состав цепочки
	r.log.Warn("identity: no provider yielded an identity, generating guest")
	return (&GuestProvider{}).generate()
}

// BearerTokenProvider проверяет LINE access token из заголовка Authorization
type BearerTokenProvider struct {
	Verifier TokenVerifier
}

func (p *BearerTokenProvider) Name() string { return sourceLineToken }

func (p *BearerTokenProvider) Resolve(r *http.Request) (*Identity, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, nil
	}

	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return nil, nil
	}

	profile, err := p.Verifier.VerifyToken(r.Context(), token)
	if err != nil {
		return nil, err
	}

	return &Identity{
		UserID:      profile.UserID,
		DisplayName: profile.DisplayName,
		Source:      sourceLineToken,
	}, nil
}

// HeaderProvider берет личность из заголовка X-User-ID
type HeaderProvider struct{}

func (p *HeaderProvider) Name() string { return sourceHeader }

func (p *HeaderProvider) Resolve(r *http.Request) (*Identity, error) {
	userID := strings.TrimSpace(r.Header.Get("X-User-ID"))
	if userID == "" {
		return nil, nil
	}
	return &Identity{UserID: userID, Source: sourceHeader}, nil
}

// QueryProvider берет личность из query-параметра userId
type QueryProvider struct{}

func (p *QueryProvider) Name() string { return sourceQuery }

func (p *QueryProvider) Resolve(r *http.Request) (*Identity, error) {
	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if userID == "" {
		return nil, nil
	}
	return &Identity{UserID: userID, Source: sourceQuery}, nil
}

// GuestProvider генерирует псевдо-личность, когда ничего другого нет
type GuestProvider struct{}

func (p *GuestProvider) Name() string { return sourceGuest }

func (p *GuestProvider) Resolve(_ *http.Request) (*Identity, error) {
	return p.generate(), nil
}

func (p *GuestProvider) generate() *Identity {
	return &Identity{
		UserID: "guest-" + uuid.NewString(),
		Source: sourceGuest,
	}
}
