package dto

import "github.com/shopspring/decimal"

type PagoRequest struct {
	// Imprimir mirrors the "Imprimir ticket" checkbox; printing is
	// best-effort and its failure never cancels the payment.
	Imprimir bool `json:"imprimir"`
}

type PagoResponse struct {
	NumeroTicket int             `json:"numero_ticket"`
	Total        decimal.Decimal `json:"total"`
	Impreso      bool            `json:"impreso"`
	// AvisoImpresion carries the printer problem, if any, as a user
	// notification. It is informational only.
	AvisoImpresion string `json:"aviso_impresion,omitempty"`
}

type CorteRequest struct {
	Imprimir bool `json:"imprimir"`
}

type CorteResponse struct {
	Fecha          string          `json:"fecha"`
	Hora           string          `json:"hora"`
	TotalVendido   decimal.Decimal `json:"total_vendido"`
	TicketsPagados int             `json:"tickets_pagados"`
	Impreso        bool            `json:"impreso"`
	AvisoImpresion string          `json:"aviso_impresion,omitempty"`
}

// DiaResponse exposes the running day counters (GET /v1/corte/preview).
type DiaResponse struct {
	TotalVendido   decimal.Decimal `json:"total_vendido"`
	TicketsPagados int             `json:"tickets_pagados"`
	Preview        string          `json:"preview"`
}
