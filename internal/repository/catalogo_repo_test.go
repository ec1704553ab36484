package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/model"
)

func TestCargarSinArchivoSiembraGuisos(t *testing.T) {
	dir := t.TempDir()
	repo := NewCatalogoRepository(dir)

	catalogo, err := repo.Cargar(model.FamiliaGuisos)
	require.NoError(t, err)

	assert.Len(t, catalogo, 9)
	precio, ok := catalogo["Frijol con Queso"]
	require.True(t, ok)
	assert.True(t, precio.IsZero())

	// The defaults got persisted, not just returned.
	_, err = os.Stat(filepath.Join(dir, "guisos.json"))
	assert.NoError(t, err)
}

func TestCargarSinArchivoOtrasFamiliasVacias(t *testing.T) {
	repo := NewCatalogoRepository(t.TempDir())

	catalogo, err := repo.Cargar(model.FamiliaAguas)
	require.NoError(t, err)
	assert.Empty(t, catalogo)
}

func TestGuardarYCargar(t *testing.T) {
	repo := NewCatalogoRepository(t.TempDir())

	original := map[string]decimal.Decimal{
		"Horchata": decimal.NewFromInt(20),
		"Jamaica":  decimal.RequireFromString("22.50"),
	}
	require.NoError(t, repo.Guardar(model.FamiliaAguas, original))

	leido, err := repo.Cargar(model.FamiliaAguas)
	require.NoError(t, err)
	require.Len(t, leido, 2)
	assert.True(t, leido["Horchata"].Equal(decimal.NewFromInt(20)))
	assert.True(t, leido["Jamaica"].Equal(decimal.RequireFromString("22.50")))
}

func TestGuardarEscribeNumerosPlanos(t *testing.T) {
	dir := t.TempDir()
	repo := NewCatalogoRepository(dir)

	require.NoError(t, repo.Guardar(model.FamiliaRefrescos, map[string]decimal.Decimal{
		"Coca": decimal.RequireFromString("18.5"),
	}))

	data, err := os.ReadFile(filepath.Join(dir, "refrescos.json"))
	require.NoError(t, err)
	// Prices stay bare JSON numbers, not quoted strings.
	assert.Contains(t, string(data), `"Coca": 18.5`)
	assert.NotContains(t, string(data), `"18.5"`)
}

func TestFamiliaDesconocida(t *testing.T) {
	repo := NewCatalogoRepository(t.TempDir())

	_, err := repo.Cargar(model.Familia("pizzas"))
	assert.Error(t, err)

	err = repo.Guardar(model.Familia("pizzas"), nil)
	assert.Error(t, err)
}
