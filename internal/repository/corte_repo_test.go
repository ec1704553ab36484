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

func TestListarSinArchivo(t *testing.T) {
	repo := NewCorteRepository(t.TempDir())

	cortes, err := repo.Listar()
	require.NoError(t, err)
	assert.Empty(t, cortes)
}

func TestAppendAcumulaRegistros(t *testing.T) {
	repo := NewCorteRepository(t.TempDir())

	require.NoError(t, repo.Append(model.Corte{
		Fecha:          "2026-08-30",
		Hora:           "21:00:00",
		TotalVendido:   decimal.RequireFromString("350.50"),
		TicketsPagados: 12,
	}))
	require.NoError(t, repo.Append(model.Corte{
		Fecha:          "2026-08-31",
		Hora:           "20:45:10",
		TotalVendido:   decimal.NewFromInt(410),
		TicketsPagados: 15,
	}))

	cortes, err := repo.Listar()
	require.NoError(t, err)
	require.Len(t, cortes, 2)

	// Append-only: existing records keep their position and values.
	assert.Equal(t, "2026-08-30", cortes[0].Fecha)
	assert.True(t, cortes[0].TotalVendido.Equal(decimal.RequireFromString("350.50")))
	assert.Equal(t, 12, cortes[0].TicketsPagados)
	assert.Equal(t, "2026-08-31", cortes[1].Fecha)
	assert.True(t, cortes[1].TotalVendido.Equal(decimal.NewFromInt(410)))
}

func TestAppendEscribeNumeroPlano(t *testing.T) {
	dir := t.TempDir()
	repo := NewCorteRepository(dir)

	require.NoError(t, repo.Append(model.Corte{
		Fecha:          "2026-08-31",
		Hora:           "20:00:00",
		TotalVendido:   decimal.RequireFromString("99.5"),
		TicketsPagados: 3,
	}))

	data, err := os.ReadFile(filepath.Join(dir, "ventas.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"total_vendido": 99.5`)
	assert.Contains(t, string(data), `"tickets_pagados": 3`)
}

func TestAppendTrasLedgerExistente(t *testing.T) {
	dir := t.TempDir()
	// A ledger written by hand, with integer totals.
	existente := `[
    {
        "fecha": "2026-01-10",
        "hora": "19:30:00",
        "total_vendido": 500,
        "tickets_pagados": 20
    }
]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ventas.json"), []byte(existente), 0o644))

	repo := NewCorteRepository(dir)
	require.NoError(t, repo.Append(model.Corte{
		Fecha:          "2026-01-11",
		Hora:           "20:00:00",
		TotalVendido:   decimal.NewFromInt(250),
		TicketsPagados: 9,
	}))

	cortes, err := repo.Listar()
	require.NoError(t, err)
	require.Len(t, cortes, 2)
	assert.True(t, cortes[0].TotalVendido.Equal(decimal.NewFromInt(500)))
	assert.True(t, cortes[1].TotalVendido.Equal(decimal.NewFromInt(250)))
}
