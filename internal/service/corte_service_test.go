package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/dto"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/model"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/repository"
)

// stubCorteRepo is an in-memory CorteRepository that can fail appends.
type stubCorteRepo struct {
	cortes     []model.Corte
	falloWrite error
}

func (r *stubCorteRepo) Listar() ([]model.Corte, error) { return r.cortes, nil }

func (r *stubCorteRepo) Append(corte model.Corte) error {
	if r.falloWrite != nil {
		return r.falloWrite
	}
	r.cortes = append(r.cortes, corte)
	return nil
}

var _ repository.CorteRepository = (*stubCorteRepo)(nil)

func diaConVentas(total int64, tickets int) *DiaVentas {
	dia := NewDiaVentas()
	porTicket := decimal.NewFromInt(total).Div(decimal.NewFromInt(int64(tickets)))
	for i := 0; i < tickets; i++ {
		dia.RegistrarPago(porTicket)
	}
	return dia
}

func corteServiceEn(dia *DiaVentas, repo repository.CorteRepository, imp *stubImpresora, momento time.Time) CorteService {
	svc := NewCorteService(dia, repo, imp).(*corteService)
	svc.ahora = func() time.Time { return momento }
	return svc
}

func TestRealizarGuardaYReinicia(t *testing.T) {
	dia := diaConVentas(300, 3)
	repo := &stubCorteRepo{}
	imp := &stubImpresora{}
	momento := time.Date(2026, 8, 31, 21, 15, 5, 0, time.Local)
	svc := corteServiceEn(dia, repo, imp, momento)

	resp, err := svc.Realizar(context.Background(), dto.CorteRequest{Imprimir: true})
	require.NoError(t, err)

	assert.Equal(t, "2026-08-31", resp.Fecha)
	assert.Equal(t, "21:15:05", resp.Hora)
	assert.True(t, resp.TotalVendido.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, 3, resp.TicketsPagados)
	assert.True(t, resp.Impreso)

	require.Len(t, repo.cortes, 1)
	assert.Equal(t, "2026-08-31", repo.cortes[0].Fecha)
	assert.True(t, repo.cortes[0].TotalVendido.Equal(decimal.NewFromInt(300)))

	total, pagados := dia.Snapshot()
	assert.True(t, total.IsZero(), "los contadores se reinician tras guardar")
	assert.Equal(t, 0, pagados)
}

func TestRealizarConLedgerCaidoConservaContadores(t *testing.T) {
	dia := diaConVentas(150, 2)
	repo := &stubCorteRepo{falloWrite: errors.New("disco lleno")}
	svc := corteServiceEn(dia, repo, &stubImpresora{}, time.Now())

	_, err := svc.Realizar(context.Background(), dto.CorteRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error al guardar el corte")

	// Nothing reset: the sales are still pending a cut.
	total, pagados := dia.Snapshot()
	assert.True(t, total.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 2, pagados)
	assert.Empty(t, repo.cortes)
}

func TestRealizarConImpresoraCaidaGuardaIgual(t *testing.T) {
	dia := diaConVentas(80, 1)
	repo := &stubCorteRepo{}
	imp := &stubImpresora{fallo: errors.New("sin conexión")}
	svc := corteServiceEn(dia, repo, imp, time.Now())

	resp, err := svc.Realizar(context.Background(), dto.CorteRequest{Imprimir: true})
	require.NoError(t, err, "la impresora nunca bloquea el corte")

	assert.False(t, resp.Impreso)
	assert.Contains(t, resp.AvisoImpresion, "sin conexión")
	require.Len(t, repo.cortes, 1)

	total, _ := dia.Snapshot()
	assert.True(t, total.IsZero())
}

func TestRealizarDiaEnCeroRegistraCorteVacio(t *testing.T) {
	repo := &stubCorteRepo{}
	svc := corteServiceEn(NewDiaVentas(), repo, &stubImpresora{}, time.Now())

	resp, err := svc.Realizar(context.Background(), dto.CorteRequest{})
	require.NoError(t, err)

	assert.True(t, resp.TotalVendido.IsZero())
	assert.Equal(t, 0, resp.TicketsPagados)
	require.Len(t, repo.cortes, 1, "un día sin ventas también se cierra")
}

func TestPreviewMuestraContadoresSinCerrar(t *testing.T) {
	dia := diaConVentas(120, 2)
	repo := &stubCorteRepo{}
	svc := corteServiceEn(dia, repo, &stubImpresora{}, time.Date(2026, 8, 31, 20, 0, 0, 0, time.Local))

	resp := svc.Preview()

	assert.True(t, resp.TotalVendido.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, 2, resp.TicketsPagados)
	assert.Contains(t, resp.Preview, "CORTE DEL DIA")
	assert.Contains(t, resp.Preview, "TOTAL: $120.00")

	assert.Empty(t, repo.cortes, "la vista previa no escribe nada")
	total, _ := dia.Snapshot()
	assert.True(t, total.Equal(decimal.NewFromInt(120)))
}
