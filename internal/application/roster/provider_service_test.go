package roster

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gestiserv/backend/internal/domain/roster"
	"github.com/gestiserv/backend/internal/domain/shared"
)

// MockProviderRepository is a mock implementation of ProviderRepository
type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) FindByID(ctx context.Context, kind roster.Kind, id uuid.UUID) (*roster.Provider, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*roster.Provider), args.Error(1)
}

func (m *MockProviderRepository) FindAll(ctx context.Context, kind roster.Kind) ([]roster.Provider, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]roster.Provider), args.Error(1)
}

func (m *MockProviderRepository) Save(ctx context.Context, provider *roster.Provider) error {
	args := m.Called(ctx, provider)
	return args.Error(0)
}

func (m *MockProviderRepository) Delete(ctx context.Context, kind roster.Kind, id uuid.UUID) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func newTestProvider(t *testing.T, kind roster.Kind, name string) *roster.Provider {
	t.Helper()
	p, err := roster.NewProvider(kind, name, "3001234567", "", "Bogotá")
	require.NoError(t, err)
	return p
}

func TestProviderServiceCreate(t *testing.T) {
	repo := new(MockProviderRepository)
	svc := NewProviderService(repo)

	repo.On("Save", mock.Anything, mock.AnythingOfType("*roster.Provider")).Return(nil)

	resp, err := svc.Create(context.Background(), roster.KindInstrumentadora, CreateProviderRequest{
		Name:  "María López",
		Phone: "3001234567",
		City:  "Bogotá",
	})

	require.NoError(t, err)
	assert.Equal(t, "María López", resp.Name)
	assert.Equal(t, "instrumentadora", resp.Kind)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	repo.AssertExpectations(t)
}

func TestProviderServiceCreateInvalidName(t *testing.T) {
	repo := new(MockProviderRepository)
	svc := NewProviderService(repo)

	_, err := svc.Create(context.Background(), roster.KindMensajero, CreateProviderRequest{
		Name: "   ",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_NAME", domainErr.Code)
	repo.AssertNotCalled(t, "Save")
}

func TestProviderServiceUpdate(t *testing.T) {
	repo := new(MockProviderRepository)
	svc := NewProviderService(repo)

	existing := newTestProvider(t, roster.KindMensajero, "Carlos Ruiz")
	repo.On("FindByID", mock.Anything, roster.KindMensajero, existing.ID).Return(existing, nil)
	repo.On("Save", mock.Anything, existing).Return(nil)

	resp, err := svc.Update(context.Background(), roster.KindMensajero, existing.ID, UpdateProviderRequest{
		Name:  "Carlos Ruiz Jr",
		Phone: "3109876543",
		City:  "Medellín",
	})

	require.NoError(t, err)
	assert.Equal(t, "Carlos Ruiz Jr", resp.Name)
	assert.Equal(t, "Medellín", resp.City)
	repo.AssertExpectations(t)
}

func TestProviderServiceUpdateNotFound(t *testing.T) {
	repo := new(MockProviderRepository)
	svc := NewProviderService(repo)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, roster.KindInstrumentadora, id).Return(nil, shared.ErrNotFound)

	_, err := svc.Update(context.Background(), roster.KindInstrumentadora, id, UpdateProviderRequest{Name: "X"})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestProviderServiceList(t *testing.T) {
	repo := new(MockProviderRepository)
	svc := NewProviderService(repo)

	a := newTestProvider(t, roster.KindInstrumentadora, "Ana")
	b := newTestProvider(t, roster.KindInstrumentadora, "Beatriz")
	repo.On("FindAll", mock.Anything, roster.KindInstrumentadora).Return([]roster.Provider{*a, *b}, nil)

	out, err := svc.List(context.Background(), roster.KindInstrumentadora)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Ana", out[0].Name)
	assert.Equal(t, "Beatriz", out[1].Name)
}

func TestProviderServiceDeleteReferenced(t *testing.T) {
	repo := new(MockProviderRepository)
	svc := NewProviderService(repo)

	id := uuid.New()
	repo.On("Delete", mock.Anything, roster.KindMensajero, id).Return(shared.ErrReferenced)

	err := svc.Delete(context.Background(), roster.KindMensajero, id)
	assert.ErrorIs(t, err, shared.ErrReferenced)
}
