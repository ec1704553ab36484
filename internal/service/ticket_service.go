package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/dto"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/model"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/pricing"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/repository"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/ticket"
)

type TicketService interface {
	Ver() *dto.TicketResponse
	Agregar(ctx context.Context, req dto.ItemRequest) (*dto.TicketResponse, error)
	Editar(ctx context.Context, index int, req dto.ItemRequest) (*dto.TicketResponse, error)
	Quitar(index int) (*dto.TicketResponse, error)
	Cancelar() *dto.TicketResponse
	Categorias(ctx context.Context) ([]dto.CategoriaResponse, error)
}

type ticketService struct {
	ticket    *ticket.Ticket
	catalogos repository.CatalogoRepository
}

func NewTicketService(t *ticket.Ticket, catalogos repository.CatalogoRepository) TicketService {
	return &ticketService{ticket: t, catalogos: catalogos}
}

func (s *ticketService) Ver() *dto.TicketResponse {
	return ticketToResponse(s.ticket)
}

func (s *ticketService) Agregar(ctx context.Context, req dto.ItemRequest) (*dto.TicketResponse, error) {
	item, err := s.construirLinea(req)
	if err != nil {
		return nil, err
	}
	s.ticket.Agregar(item)
	return ticketToResponse(s.ticket), nil
}

// Editar rebuilds the position's line item from the new selection and
// swaps it in place, so the replacement is indistinguishable from a
// freshly added item and the list order is untouched.
func (s *ticketService) Editar(ctx context.Context, index int, req dto.ItemRequest) (*dto.TicketResponse, error) {
	item, err := s.construirLinea(req)
	if err != nil {
		return nil, err
	}
	if err := s.ticket.Reemplazar(index, item); err != nil {
		return nil, err
	}
	return ticketToResponse(s.ticket), nil
}

func (s *ticketService) Quitar(index int) (*dto.TicketResponse, error) {
	if _, err := s.ticket.Quitar(index); err != nil {
		return nil, err
	}
	return ticketToResponse(s.ticket), nil
}

func (s *ticketService) Cancelar() *dto.TicketResponse {
	s.ticket.Limpiar()
	return ticketToResponse(s.ticket)
}

// Categorias describes the closed category set plus each catalog's
// current key set, which is exactly the variant list the dialogs offer.
func (s *ticketService) Categorias(ctx context.Context) ([]dto.CategoriaResponse, error) {
	out := make([]dto.CategoriaResponse, 0, len(pricing.Todas()))
	for _, c := range pricing.Todas() {
		resp := dto.CategoriaResponse{
			Nombre:    c.Nombre(),
			ConGuisos: c == pricing.Migadas,
		}
		if familia, ok := c.Familia(); ok {
			catalogo, err := s.catalogos.Cargar(familia)
			if err != nil {
				return nil, err
			}
			resp.Variantes = make([]string, 0, len(catalogo))
			for nombre := range catalogo {
				resp.Variantes = append(resp.Variantes, nombre)
			}
			sort.Strings(resp.Variantes)
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *ticketService) construirLinea(req dto.ItemRequest) (model.LineItem, error) {
	cat, err := pricing.Parse(req.Categoria)
	if err != nil {
		return model.LineItem{}, err
	}

	var catalogo map[string]decimal.Decimal
	if familia, ok := cat.Familia(); ok {
		catalogo, err = s.catalogos.Cargar(familia)
		if err != nil {
			return model.LineItem{}, fmt.Errorf("cargando catálogo %s: %w", familia, err)
		}
	}

	sel := pricing.Seleccion{
		Variante: req.Tipo,
		Cantidad: req.Cantidad,
		Guisos:   req.Guisos,
	}
	return pricing.NuevaLinea(cat, sel, catalogo)
}

func ticketToResponse(t *ticket.Ticket) *dto.TicketResponse {
	items := t.Items()
	resp := &dto.TicketResponse{
		Items:  make([]dto.LineaResponse, 0, len(items)),
		Lineas: t.Lineas(),
		Total:  t.Total(),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.LineaResponse{
			Categoria:      item.Categoria,
			Tipo:           item.Tipo,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Subtotal:       item.Subtotal,
			Guisos:         item.Guisos,
		})
	}
	return resp
}
