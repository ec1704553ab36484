package dto

import "github.com/shopspring/decimal"

type ReporteResponse struct {
	Hoy    decimal.Decimal `json:"hoy"`
	Semana decimal.Decimal `json:"semana"`
	Mes    decimal.Decimal `json:"mes"`
}

type ReporteMesResponse struct {
	Mes   int             `json:"mes"`
	Total decimal.Decimal `json:"total"`
	// PorDia: day of month → sold total; PorSemana: ISO week → sold total.
	PorDia    map[int]decimal.Decimal `json:"por_dia"`
	PorSemana map[int]decimal.Decimal `json:"por_semana"`
}

type CorteListItem struct {
	Fecha          string          `json:"fecha"`
	Hora           string          `json:"hora"`
	TotalVendido   decimal.Decimal `json:"total_vendido"`
	TicketsPagados int             `json:"tickets_pagados"`
}
