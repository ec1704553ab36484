package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/dto"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/model"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/repository"
)

// ReporteService aggregates the cut ledger for the reports screen.
// All reads are pure filters over the persisted records.
type ReporteService interface {
	Totales() (*dto.ReporteResponse, error)
	PorMes(mes time.Month) (*dto.ReporteMesResponse, error)
	ListarCortes() ([]dto.CorteListItem, error)
}

type reporteService struct {
	repo  repository.CorteRepository
	ahora func() time.Time
}

func NewReporteService(repo repository.CorteRepository) ReporteService {
	return &reporteService{repo: repo, ahora: time.Now}
}

// Totales computes the three report cards in a single ledger pass:
//   - hoy: records from today's exact date,
//   - semana: records dated on or after Monday of the current ISO week,
//   - mes: records whose calendar month matches the current one, in any
//     year. The month filter deliberately ignores the year so the report
//     stays consistent with the ledgers already in production.
func (s *reporteService) Totales() (*dto.ReporteResponse, error) {
	cortes, err := s.repo.Listar()
	if err != nil {
		return nil, err
	}

	hoy := fechaSolo(s.ahora())
	// Monday-based week start.
	inicioSemana := hoy.AddDate(0, 0, -((int(hoy.Weekday()) + 6) % 7))

	resp := &dto.ReporteResponse{
		Hoy:    decimal.Zero,
		Semana: decimal.Zero,
		Mes:    decimal.Zero,
	}
	for _, c := range cortes {
		// Parse in the clock's zone so both sides of every comparison
		// are midnight of the same location.
		fecha, err := time.ParseInLocation("2006-01-02", c.Fecha, hoy.Location())
		if err != nil {
			return nil, fmt.Errorf("fecha inválida en el registro de ventas: %q", c.Fecha)
		}
		if fecha.Equal(hoy) {
			resp.Hoy = resp.Hoy.Add(c.TotalVendido)
		}
		if !fecha.Before(inicioSemana) {
			resp.Semana = resp.Semana.Add(c.TotalVendido)
		}
		if fecha.Month() == hoy.Month() {
			resp.Mes = resp.Mes.Add(c.TotalVendido)
		}
	}
	return resp, nil
}

// PorMes breaks the given month down by day of month and by ISO week,
// feeding the chart and the PDF export.
func (s *reporteService) PorMes(mes time.Month) (*dto.ReporteMesResponse, error) {
	cortes, err := s.repo.Listar()
	if err != nil {
		return nil, err
	}

	resp := &dto.ReporteMesResponse{
		Mes:       int(mes),
		Total:     decimal.Zero,
		PorDia:    make(map[int]decimal.Decimal),
		PorSemana: make(map[int]decimal.Decimal),
	}
	for _, c := range cortes {
		fecha, err := time.Parse("2006-01-02", c.Fecha)
		if err != nil {
			return nil, fmt.Errorf("fecha inválida en el registro de ventas: %q", c.Fecha)
		}
		if fecha.Month() != mes {
			continue
		}
		resp.Total = resp.Total.Add(c.TotalVendido)

		dia := fecha.Day()
		resp.PorDia[dia] = resp.PorDia[dia].Add(c.TotalVendido)

		_, semana := fecha.ISOWeek()
		resp.PorSemana[semana] = resp.PorSemana[semana].Add(c.TotalVendido)
	}
	return resp, nil
}

func (s *reporteService) ListarCortes() ([]dto.CorteListItem, error) {
	cortes, err := s.repo.Listar()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CorteListItem, 0, len(cortes))
	for _, c := range cortes {
		items = append(items, corteToListItem(c))
	}
	return items, nil
}

func corteToListItem(c model.Corte) dto.CorteListItem {
	return dto.CorteListItem{
		Fecha:          c.Fecha,
		Hora:           c.Hora,
		TotalVendido:   c.TotalVendido,
		TicketsPagados: c.TicketsPagados,
	}
}

// fechaSolo strips the clock so date comparisons work on whole days.
func fechaSolo(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
