package model

import "github.com/shopspring/decimal"

// Corte is one closed sales period as persisted in the ledger.
// Records are append-only: once written they are never mutated or removed.
type Corte struct {
	Fecha          string          `json:"fecha"` // YYYY-MM-DD
	Hora           string          `json:"hora"`  // HH:MM:SS
	TotalVendido   decimal.Decimal `json:"total_vendido"`
	TicketsPagados int             `json:"tickets_pagados"`
}
