package customers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velitt/Studio-BookingService/internal/domain"
	customerRepo "github.com/velitt/Studio-BookingService/internal/infra/storage/customer"
)

type fakeCustomerRepo struct {
	customer *domain.Customer
	err      error
}

func (f *fakeCustomerRepo) GetByUserID(_ context.Context, _ string) (*domain.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.customer, nil
}

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

func TestGetProfile_RegisteredCustomer(t *testing.T) {
	repo := &fakeCustomerRepo{customer: &domain.Customer{
		UserID:     "U1",
		Name:       "Анна",
		Phone:      "+81901234567",
		MemberCode: "AB12CD34",
	}}

	svc := NewService(repo, &noopLogger{})

	resp, err := svc.GetProfile(context.Background(), "U1")
	require.NoError(t, err)

	assert.True(t, resp.Registered)
	assert.Equal(t, "Анна", resp.Name)
	assert.Equal(t, "AB12CD34", resp.MemberCode)
	assert.False(t, resp.IsBlacklisted)
}

func TestGetProfile_UnregisteredCustomerGetsEmptyProfile(t *testing.T) {
	repo := &fakeCustomerRepo{err: customerRepo.ErrCustomerNotFound}
	svc := NewService(repo, &noopLogger{})

	resp, err := svc.GetProfile(context.Background(), "Unew")
	require.NoError(t, err)

	assert.False(t, resp.Registered)
	assert.Equal(t, "Unew", resp.UserID)
	assert.Empty(t, resp.Name)
}

func TestGetProfile_BlacklistFlagSurfaces(t *testing.T) {
	repo := &fakeCustomerRepo{customer: &domain.Customer{
		UserID:        "U1",
		IsBlacklisted: true,
	}}

	svc := NewService(repo, &noopLogger{})

	resp, err := svc.GetProfile(context.Background(), "U1")
	require.NoError(t, err)
	assert.True(t, resp.IsBlacklisted)
}

func TestGetProfile_RepositoryFailure(t *testing.T) {
	repo := &fakeCustomerRepo{err: errors.New("connection refused")}
	svc := NewService(repo, &noopLogger{})

	_, err := svc.GetProfile(context.Background(), "U1")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetProfile_EmptyUserID(t *testing.T) {
	svc := NewService(&fakeCustomerRepo{}, &noopLogger{})

	_, err := svc.GetProfile(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
