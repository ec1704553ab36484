package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/model"
)

func corte(fecha string, total int64) model.Corte {
	return model.Corte{
		Fecha:          fecha,
		Hora:           "20:00:00",
		TotalVendido:   decimal.NewFromInt(total),
		TicketsPagados: 1,
	}
}

func reporteServiceEn(cortes []model.Corte, hoy time.Time) ReporteService {
	svc := NewReporteService(&stubCorteRepo{cortes: cortes}).(*reporteService)
	svc.ahora = func() time.Time { return hoy }
	return svc
}

func TestTotalesHoySemanaMes(t *testing.T) {
	// "Today" is Wednesday 2026-09-02; the week started Monday 08-31.
	hoy := time.Date(2026, 9, 2, 18, 0, 0, 0, time.Local)
	cortes := []model.Corte{
		corte("2026-09-02", 100), // today
		corte("2026-09-01", 50),  // this week, this month
		corte("2026-08-31", 40),  // this week (Monday), last month
		corte("2026-08-30", 25),  // Sunday, outside the week
		corte("2026-09-15", 10),  // this month, not this week yet
	}
	svc := reporteServiceEn(cortes, hoy)

	resp, err := svc.Totales()
	require.NoError(t, err)

	assert.True(t, resp.Hoy.Equal(decimal.NewFromInt(100)), "hoy=%s", resp.Hoy)
	// Week: 09-02 + 09-01 + 08-31 plus the future 09-15 record, which
	// is also >= Monday.
	assert.True(t, resp.Semana.Equal(decimal.NewFromInt(200)), "semana=%s", resp.Semana)
	assert.True(t, resp.Mes.Equal(decimal.NewFromInt(160)), "mes=%s", resp.Mes)
}

func TestTotalesMesIgnoraElAnio(t *testing.T) {
	hoy := time.Date(2026, 9, 2, 12, 0, 0, 0, time.Local)
	cortes := []model.Corte{
		corte("2026-09-01", 100),
		corte("2025-09-20", 30), // September of another year still counts
		corte("2026-08-15", 999),
	}
	svc := reporteServiceEn(cortes, hoy)

	resp, err := svc.Totales()
	require.NoError(t, err)
	assert.True(t, resp.Mes.Equal(decimal.NewFromInt(130)))
}

func TestTotalesConLunesComoHoy(t *testing.T) {
	// On a Monday the week covers exactly that day.
	hoy := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	cortes := []model.Corte{
		corte("2026-08-31", 70),
		corte("2026-08-30", 20), // Sunday, previous week
	}
	svc := reporteServiceEn(cortes, hoy)

	resp, err := svc.Totales()
	require.NoError(t, err)
	assert.True(t, resp.Semana.Equal(decimal.NewFromInt(70)))
}

func TestTotalesHoyEnZonaHoraria(t *testing.T) {
	// The terminal clock runs on local time, not UTC. A cut recorded
	// today must still count as today six hours behind UTC.
	cst := time.FixedZone("CST", -6*60*60)
	hoy := time.Date(2026, 9, 2, 18, 0, 0, 0, cst)
	cortes := []model.Corte{
		corte("2026-09-02", 100),
		corte("2026-09-01", 50),
	}
	svc := reporteServiceEn(cortes, hoy)

	resp, err := svc.Totales()
	require.NoError(t, err)
	assert.True(t, resp.Hoy.Equal(decimal.NewFromInt(100)), "hoy=%s", resp.Hoy)
}

func TestTotalesSemanaEnZonaHoraria(t *testing.T) {
	// Monday of the current week stays inside the week regardless of
	// the zone offset.
	cst := time.FixedZone("CST", -6*60*60)
	hoy := time.Date(2026, 8, 31, 9, 0, 0, 0, cst) // Monday morning
	cortes := []model.Corte{
		corte("2026-08-31", 70),
		corte("2026-08-30", 20), // Sunday, previous week
	}
	svc := reporteServiceEn(cortes, hoy)

	resp, err := svc.Totales()
	require.NoError(t, err)
	assert.True(t, resp.Hoy.Equal(decimal.NewFromInt(70)), "hoy=%s", resp.Hoy)
	assert.True(t, resp.Semana.Equal(decimal.NewFromInt(70)), "semana=%s", resp.Semana)
}

func TestTotalesFechaInvalida(t *testing.T) {
	svc := reporteServiceEn([]model.Corte{corte("31/08/2026", 10)}, time.Now())

	_, err := svc.Totales()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fecha inválida")
}

func TestPorMesDesglosaPorDiaYSemana(t *testing.T) {
	cortes := []model.Corte{
		corte("2026-09-01", 100), // Tuesday, ISO week 36
		corte("2026-09-01", 50),  // same day, second cut
		corte("2026-09-07", 80),  // Monday, ISO week 37
		corte("2026-08-31", 999), // other month
	}
	svc := reporteServiceEn(cortes, time.Now())

	resp, err := svc.PorMes(time.September)
	require.NoError(t, err)

	assert.Equal(t, 9, resp.Mes)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(230)))

	require.Len(t, resp.PorDia, 2)
	assert.True(t, resp.PorDia[1].Equal(decimal.NewFromInt(150)))
	assert.True(t, resp.PorDia[7].Equal(decimal.NewFromInt(80)))

	require.Len(t, resp.PorSemana, 2)
	assert.True(t, resp.PorSemana[36].Equal(decimal.NewFromInt(150)))
	assert.True(t, resp.PorSemana[37].Equal(decimal.NewFromInt(80)))
}

func TestPorMesSinVentas(t *testing.T) {
	svc := reporteServiceEn(nil, time.Now())

	resp, err := svc.PorMes(time.January)
	require.NoError(t, err)
	assert.True(t, resp.Total.IsZero())
	assert.Empty(t, resp.PorDia)
	assert.Empty(t, resp.PorSemana)
}

func TestListarCortesConservaElOrden(t *testing.T) {
	cortes := []model.Corte{
		corte("2026-08-30", 10),
		corte("2026-08-31", 20),
	}
	svc := reporteServiceEn(cortes, time.Now())

	items, err := svc.ListarCortes()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "2026-08-30", items[0].Fecha)
	assert.Equal(t, "2026-08-31", items[1].Fecha)
}
