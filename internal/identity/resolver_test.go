package identity

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velitt/Studio-BookingService/internal/integrations/lineauth"
)

type fakeVerifier struct {
	profile *lineauth.Profile
	err     error
}

func (f *fakeVerifier) VerifyToken(_ context.Context, _ string) (*lineauth.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

func TestResolve_VerifiedTokenWins(t *testing.T) {
	verifier := &fakeVerifier{profile: &lineauth.Profile{UserID: "Uline", DisplayName: "Anna"}}
	resolver := NewDefaultResolver(verifier, &noopLogger{})

	r := httptest.NewRequest("GET", "/api/v1/me?userId=Uquery", nil)
	r.Header.Set("Authorization", "Bearer token123")
	r.Header.Set("X-User-ID", "Uheader")

	id := resolver.Resolve(r)
	assert.Equal(t, "Uline", id.UserID)
	assert.Equal(t, "Anna", id.DisplayName)
	assert.False(t, id.IsGuest())
}

func TestResolve_FailedVerificationFallsThrough(t *testing.T) {
	verifier := &fakeVerifier{err: errors.New("token expired")}
	resolver := NewDefaultResolver(verifier, &noopLogger{})

	r := httptest.NewRequest("GET", "/api/v1/me", nil)
	r.Header.Set("Authorization", "Bearer token123")
	r.Header.Set("X-User-ID", "Uheader")

	id := resolver.Resolve(r)
	assert.Equal(t, "Uheader", id.UserID)
}

func TestResolve_HeaderBeatsQuery(t *testing.T) {
	resolver := NewDefaultResolver(nil, &noopLogger{})

	r := httptest.NewRequest("GET", "/api/v1/me?userId=Uquery", nil)
	r.Header.Set("X-User-ID", "Uheader")

	id := resolver.Resolve(r)
	assert.Equal(t, "Uheader", id.UserID)
}

func TestResolve_QueryFallback(t *testing.T) {
	resolver := NewDefaultResolver(nil, &noopLogger{})

	r := httptest.NewRequest("GET", "/api/v1/me?userId=Uquery", nil)

	id := resolver.Resolve(r)
	assert.Equal(t, "Uquery", id.UserID)
}

func TestResolve_GuestGenerated(t *testing.T) {
	resolver := NewDefaultResolver(nil, &noopLogger{})

	r := httptest.NewRequest("GET", "/api/v1/me", nil)

	id := resolver.Resolve(r)
	assert.True(t, strings.HasPrefix(id.UserID, "guest-"))
	assert.True(t, id.IsGuest())

	// Каждый запрос без данных получает новую гостевую личность
	other := resolver.Resolve(httptest.NewRequest("GET", "/api/v1/me", nil))
	assert.NotEqual(t, id.UserID, other.UserID)
}

func TestResolve_MalformedBearerIgnored(t *testing.T) {
	verifier := &fakeVerifier{profile: &lineauth.Profile{UserID: "Uline"}}
	resolver := NewDefaultResolver(verifier, &noopLogger{})

	r := httptest.NewRequest("GET", "/api/v1/me", nil)
	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	r.Header.Set("X-User-ID", "Uheader")

	id := resolver.Resolve(r)
	assert.Equal(t, "Uheader", id.UserID)
}

func TestIdentityContextRoundTrip(t *testing.T) {
	ctx := WithIdentity(context.Background(), &Identity{UserID: "U1"})

	id, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "U1", id.UserID)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
}
