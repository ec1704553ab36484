package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/dto"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/impresora"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/ticket"
)

var ErrTicketVacio = errors.New("el ticket está vacío")

type PagoService interface {
	// Cobrar confirms the payment of the current ticket.
	Cobrar(ctx context.Context, req dto.PagoRequest) (*dto.PagoResponse, error)
	// Preview renders the receipt text as it would print, without
	// touching any state.
	Preview() (string, error)
}

type pagoService struct {
	ticket    *ticket.Ticket
	dia       *DiaVentas
	impresora impresora.Impresora
	ahora     func() time.Time
}

func NewPagoService(t *ticket.Ticket, dia *DiaVentas, imp impresora.Impresora) PagoService {
	return &pagoService{ticket: t, dia: dia, impresora: imp, ahora: time.Now}
}

// Cobrar runs the confirmation sequence in the required order:
//  1. reject an empty ticket (no state change),
//  2. best-effort receipt print (failure reported, never blocking),
//  3. fold the ticket total into the day counters,
//  4. clear the ticket.
// The counters must see the total before the clear.
func (s *pagoService) Cobrar(ctx context.Context, req dto.PagoRequest) (*dto.PagoResponse, error) {
	if s.ticket.Vacio() {
		return nil, ErrTicketVacio
	}

	items := s.ticket.Items()
	total := s.ticket.Total()

	resp := &dto.PagoResponse{Total: total}

	if req.Imprimir {
		_, pagados := s.dia.Snapshot()
		if err := s.impresora.ImprimirTicket(items, total, pagados+1); err != nil {
			log.Warn().Err(err).Msg("no se pudo imprimir el ticket")
			resp.AvisoImpresion = "No se pudo imprimir el ticket: " + err.Error()
		} else {
			resp.Impreso = true
		}
	}

	resp.NumeroTicket = s.dia.RegistrarPago(total)
	s.ticket.Limpiar()

	log.Info().
		Int("numero_ticket", resp.NumeroTicket).
		Str("total", total.StringFixed(2)).
		Bool("impreso", resp.Impreso).
		Msg("pago registrado")
	return resp, nil
}

func (s *pagoService) Preview() (string, error) {
	if s.ticket.Vacio() {
		return "", ErrTicketVacio
	}
	_, pagados := s.dia.Snapshot()
	return impresora.TicketTexto(s.ticket.Items(), s.ticket.Total(), pagados+1, s.ahora()), nil
}
