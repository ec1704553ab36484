package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/dto"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/impresora"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/model"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/repository"
)

type CorteService interface {
	// Realizar closes the day: optional best-effort print, durable
	// ledger append, then counter reset. The reset only happens after
	// the append succeeds, so a failed write loses no sales.
	Realizar(ctx context.Context, req dto.CorteRequest) (*dto.CorteResponse, error)
	// Preview shows the counters the cut would record.
	Preview() *dto.DiaResponse
}

type corteService struct {
	dia       *DiaVentas
	repo      repository.CorteRepository
	impresora impresora.Impresora
	ahora     func() time.Time
}

func NewCorteService(dia *DiaVentas, repo repository.CorteRepository, imp impresora.Impresora) CorteService {
	return &corteService{dia: dia, repo: repo, impresora: imp, ahora: time.Now}
}

func (s *corteService) Realizar(ctx context.Context, req dto.CorteRequest) (*dto.CorteResponse, error) {
	totalVendido, ticketsPagados := s.dia.Snapshot()

	resp := &dto.CorteResponse{
		TotalVendido:   totalVendido,
		TicketsPagados: ticketsPagados,
	}

	// Print first, like the counter always has — but a printer problem
	// must never cancel the durable write that follows.
	if req.Imprimir {
		if err := s.impresora.ImprimirCorte(totalVendido, ticketsPagados); err != nil {
			log.Warn().Err(err).Msg("no se pudo imprimir el corte")
			resp.AvisoImpresion = "No se pudo imprimir el corte: " + err.Error()
		} else {
			resp.Impreso = true
		}
	}

	ahora := s.ahora()
	corte := model.Corte{
		Fecha:          ahora.Format("2006-01-02"),
		Hora:           ahora.Format("15:04:05"),
		TotalVendido:   totalVendido,
		TicketsPagados: ticketsPagados,
	}
	if err := s.repo.Append(corte); err != nil {
		// Counters stay intact: the sales are still pending a cut.
		return nil, fmt.Errorf("error al guardar el corte: %w", err)
	}
	s.dia.Reiniciar()

	resp.Fecha = corte.Fecha
	resp.Hora = corte.Hora
	log.Info().
		Str("fecha", corte.Fecha).
		Str("total_vendido", totalVendido.StringFixed(2)).
		Int("tickets_pagados", ticketsPagados).
		Msg("corte guardado")
	return resp, nil
}

func (s *corteService) Preview() *dto.DiaResponse {
	totalVendido, ticketsPagados := s.dia.Snapshot()
	return &dto.DiaResponse{
		TotalVendido:   totalVendido,
		TicketsPagados: ticketsPagados,
		Preview:        impresora.CorteTexto(totalVendido, ticketsPagados, s.ahora()),
	}
}
