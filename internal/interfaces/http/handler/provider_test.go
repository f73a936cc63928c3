package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	rosterapp "github.com/gestiserv/backend/internal/application/roster"
	"github.com/gestiserv/backend/internal/domain/roster"
	"github.com/gestiserv/backend/internal/domain/shared"
	"github.com/gestiserv/backend/internal/interfaces/http/dto"
)

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

func setupProviderRouter(repo *MockProviderRepository, kind roster.Kind) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := NewProviderHandler(rosterapp.NewProviderService(repo), kind)
	api := engine.Group("/api/v1")
	h.RegisterRoutes(api)
	return engine
}

func decodeResponse(t *testing.T, body *bytes.Buffer) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(body.Bytes(), &resp))
	return resp
}

func TestProviderHandlerList(t *testing.T) {
	repo := new(MockProviderRepository)
	router := setupProviderRouter(repo, roster.KindInstrumentadora)

	p, err := roster.NewProvider(roster.KindInstrumentadora, "Ana Torres", "", "", "Bogotá")
	require.NoError(t, err)
	repo.On("FindAll", mock.Anything, roster.KindInstrumentadora).Return([]roster.Provider{*p}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/instrumentadoras", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w.Body)
	assert.True(t, resp.Success)
	assert.Contains(t, w.Body.String(), "Ana Torres")
}

func TestProviderHandlerGetInvalidID(t *testing.T) {
	repo := new(MockProviderRepository)
	router := setupProviderRouter(repo, roster.KindMensajero)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/mensajeros/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w.Body)
	assert.False(t, resp.Success)
}

func TestProviderHandlerGetNotFound(t *testing.T) {
	repo := new(MockProviderRepository)
	router := setupProviderRouter(repo, roster.KindInstrumentadora)

	id := uuid.New()
	repo.On("FindByID", mock.Anything, roster.KindInstrumentadora, id).Return(nil, shared.ErrNotFound)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/instrumentadoras/"+id.String(), nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w.Body)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
}

func TestProviderHandlerCreate(t *testing.T) {
	repo := new(MockProviderRepository)
	router := setupProviderRouter(repo, roster.KindMensajero)

	repo.On("Save", mock.Anything, mock.AnythingOfType("*roster.Provider")).Return(nil)

	body, _ := json.Marshal(gin.H{
		"nombre":   "Pedro Sánchez",
		"telefono": "3001112233",
		"ciudad":   "Bogotá",
	})
	req := httptest.NewRequest("POST", "/api/v1/mensajeros", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Pedro Sánchez")
	assert.Contains(t, w.Body.String(), `"tipo":"mensajero"`)
}

func TestProviderHandlerCreateMissingName(t *testing.T) {
	repo := new(MockProviderRepository)
	router := setupProviderRouter(repo, roster.KindMensajero)

	body, _ := json.Marshal(gin.H{"telefono": "3001112233"})
	req := httptest.NewRequest("POST", "/api/v1/mensajeros", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Save")
}

func TestProviderHandlerDeleteReferenced(t *testing.T) {
	repo := new(MockProviderRepository)
	router := setupProviderRouter(repo, roster.KindInstrumentadora)

	id := uuid.New()
	repo.On("Delete", mock.Anything, roster.KindInstrumentadora, id).Return(shared.ErrReferenced)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/v1/instrumentadoras/"+id.String(), nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeResponse(t, w.Body)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeReferenced, resp.Error.Code)
}

func TestProviderHandlerDeleteOK(t *testing.T) {
	repo := new(MockProviderRepository)
	router := setupProviderRouter(repo, roster.KindMensajero)

	id := uuid.New()
	repo.On("Delete", mock.Anything, roster.KindMensajero, id).Return(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/v1/mensajeros/"+id.String(), nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}
