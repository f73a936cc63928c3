package roster

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestiserv/backend/internal/domain/shared"
)

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(KindInstrumentadora, "  María García ", "3001234567", "maria@example.com", "Bogotá")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, KindInstrumentadora, p.Kind)
	assert.Equal(t, "María García", p.Name)
	assert.Equal(t, "Bogotá", p.City)
}

func TestNewProviderValidation(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
		code string
	}{
		{"invalid kind", func() error {
			_, err := NewProvider(Kind("proveedor"), "n", "", "", "")
			return err
		}, "INVALID_KIND"},
		{"empty name", func() error {
			_, err := NewProvider(KindMensajero, "   ", "", "", "")
			return err
		}, "INVALID_NAME"},
		{"name too long", func() error {
			_, err := NewProvider(KindMensajero, strings.Repeat("x", 201), "", "", "")
			return err
		}, "INVALID_NAME"},
		{"bad email", func() error {
			_, err := NewProvider(KindMensajero, "n", "", "not-an-email", "")
			return err
		}, "INVALID_EMAIL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.code, domainErr.Code)
		})
	}
}

func TestProviderEmailOptional(t *testing.T) {
	p, err := NewProvider(KindMensajero, "Carlos", "", "", "")
	require.NoError(t, err)
	assert.Empty(t, p.Email)
}

func TestProviderUpdate(t *testing.T) {
	p, err := NewProvider(KindMensajero, "Carlos", "300", "", "Cali")
	require.NoError(t, err)

	require.NoError(t, p.Update("Carlos Ruiz", "301", "carlos@example.com", "Cali"))
	assert.Equal(t, "Carlos Ruiz", p.Name)
	assert.Equal(t, "carlos@example.com", p.Email)

	assert.Error(t, p.Update("", "", "", ""))
	assert.Equal(t, "Carlos Ruiz", p.Name)
}

func TestKind(t *testing.T) {
	assert.True(t, KindInstrumentadora.IsValid())
	assert.True(t, KindMensajero.IsValid())
	assert.False(t, Kind("otro").IsValid())

	assert.Equal(t, "instrumentadora", KindInstrumentadora.FilterParam())
	assert.Equal(t, "mensajero", KindMensajero.FilterParam())
}
