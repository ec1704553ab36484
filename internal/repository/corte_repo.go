package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/model"
)

// CorteRepository is the durable, append-only ledger of daily cuts.
// The whole ledger lives in one JSON array; an append reads the current
// list (or starts empty), adds one record and rewrites the file.
type CorteRepository interface {
	Listar() ([]model.Corte, error)
	Append(corte model.Corte) error
}

type corteRepo struct {
	path string
}

// NewCorteRepository stores the ledger at dir/ventas.json.
func NewCorteRepository(dir string) CorteRepository {
	return &corteRepo{path: filepath.Join(dir, "ventas.json")}
}

// corteJSON keeps total_vendido as a bare JSON number on disk, matching
// every record the ledger has accumulated before this version.
type corteJSON struct {
	Fecha          string      `json:"fecha"`
	Hora           string      `json:"hora"`
	TotalVendido   json.Number `json:"total_vendido"`
	TicketsPagados int         `json:"tickets_pagados"`
}

func (r *corteRepo) Listar() ([]model.Corte, error) {
	var crudos []corteJSON
	if _, err := leerJSON(r.path, &crudos); err != nil {
		return nil, err
	}

	cortes := make([]model.Corte, 0, len(crudos))
	for _, c := range crudos {
		total, err := decimal.NewFromString(c.TotalVendido.String())
		if err != nil {
			return nil, fmt.Errorf("total_vendido inválido en registro %s %s: %w", c.Fecha, c.Hora, err)
		}
		cortes = append(cortes, model.Corte{
			Fecha:          c.Fecha,
			Hora:           c.Hora,
			TotalVendido:   total,
			TicketsPagados: c.TicketsPagados,
		})
	}
	return cortes, nil
}

func (r *corteRepo) Append(corte model.Corte) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("creando directorio de datos: %w", err)
	}

	var crudos []corteJSON
	if _, err := leerJSON(r.path, &crudos); err != nil {
		return err
	}
	crudos = append(crudos, corteJSON{
		Fecha:          corte.Fecha,
		Hora:           corte.Hora,
		TotalVendido:   json.Number(corte.TotalVendido.String()),
		TicketsPagados: corte.TicketsPagados,
	})
	return escribirJSON(r.path, crudos)
}
