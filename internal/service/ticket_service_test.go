package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/dto"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/model"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/pricing"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/repository"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/ticket"
)

// stubCatalogoRepo serves fixed in-memory catalogs.
type stubCatalogoRepo struct {
	catalogos map[model.Familia]map[string]decimal.Decimal
	guardados int
}

func newStubCatalogoRepo() *stubCatalogoRepo {
	return &stubCatalogoRepo{
		catalogos: map[model.Familia]map[string]decimal.Decimal{
			model.FamiliaGuisos: {
				"Picadillo":  decimal.Zero,
				"Chicharrón": decimal.NewFromInt(4),
			},
			model.FamiliaAguas: {
				"Horchata": decimal.NewFromInt(20),
			},
			model.FamiliaRefrescos: {},
			model.FamiliaPostres:   {},
		},
	}
}

func (r *stubCatalogoRepo) Cargar(familia model.Familia) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal, len(r.catalogos[familia]))
	for k, v := range r.catalogos[familia] {
		out[k] = v
	}
	return out, nil
}

func (r *stubCatalogoRepo) Guardar(familia model.Familia, catalogo map[string]decimal.Decimal) error {
	r.catalogos[familia] = catalogo
	r.guardados++
	return nil
}

var _ repository.CatalogoRepository = (*stubCatalogoRepo)(nil)

func TestAgregarLineaConCatalogo(t *testing.T) {
	tick := ticket.Nuevo()
	svc := NewTicketService(tick, newStubCatalogoRepo())

	resp, err := svc.Agregar(context.Background(), dto.ItemRequest{
		Categoria: "Gorditas",
		Tipo:      "Chicharrón",
		Cantidad:  2,
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].PrecioUnitario.Equal(decimal.NewFromInt(20)), "base 16 + chicharrón 4")
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(40)))
}

func TestAgregarCategoriaDesconocida(t *testing.T) {
	svc := NewTicketService(ticket.Nuevo(), newStubCatalogoRepo())

	_, err := svc.Agregar(context.Background(), dto.ItemRequest{Categoria: "Pizzas"})
	assert.ErrorIs(t, err, pricing.ErrCategoriaDesconocida)
}

func TestAgregarVarianteFueraDelCatalogo(t *testing.T) {
	svc := NewTicketService(ticket.Nuevo(), newStubCatalogoRepo())

	_, err := svc.Agregar(context.Background(), dto.ItemRequest{
		Categoria: "Gorditas",
		Tipo:      "Mole",
		Cantidad:  1,
	})
	assert.ErrorIs(t, err, pricing.ErrVarianteDesconocida)
}

func TestEditarReconstruyeLaLinea(t *testing.T) {
	tick := ticket.Nuevo()
	svc := NewTicketService(tick, newStubCatalogoRepo())
	ctx := context.Background()

	_, err := svc.Agregar(ctx, dto.ItemRequest{Categoria: "Gorditas", Tipo: "Picadillo", Cantidad: 1})
	require.NoError(t, err)
	_, err = svc.Agregar(ctx, dto.ItemRequest{Categoria: "Café", Cantidad: 1})
	require.NoError(t, err)

	resp, err := svc.Editar(ctx, 0, dto.ItemRequest{Categoria: "Aguas de Sabor", Tipo: "Horchata", Cantidad: 3})
	require.NoError(t, err)

	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Aguas de Sabor", resp.Items[0].Categoria)
	assert.Equal(t, "Café", resp.Items[1].Categoria, "las demás posiciones no se mueven")
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(85)), "3*20 + 25")
}

func TestEditarIndiceInvalido(t *testing.T) {
	svc := NewTicketService(ticket.Nuevo(), newStubCatalogoRepo())

	_, err := svc.Editar(context.Background(), 0, dto.ItemRequest{Categoria: "Café", Cantidad: 1})
	assert.ErrorIs(t, err, ticket.ErrIndiceInvalido)
}

func TestCancelarVaciaElTicket(t *testing.T) {
	tick := ticket.Nuevo()
	svc := NewTicketService(tick, newStubCatalogoRepo())

	_, err := svc.Agregar(context.Background(), dto.ItemRequest{Categoria: "Café", Cantidad: 2})
	require.NoError(t, err)

	resp := svc.Cancelar()
	assert.Empty(t, resp.Items)
	assert.True(t, resp.Total.IsZero())
}

func TestCategoriasDescribeElMenu(t *testing.T) {
	svc := NewTicketService(ticket.Nuevo(), newStubCatalogoRepo())

	cats, err := svc.Categorias(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, len(pricing.Todas()))

	porNombre := make(map[string]dto.CategoriaResponse, len(cats))
	for _, c := range cats {
		porNombre[c.Nombre] = c
	}

	gorditas := porNombre["Gorditas"]
	assert.Equal(t, []string{"Chicharrón", "Picadillo"}, gorditas.Variantes, "variantes ordenadas")
	assert.False(t, gorditas.ConGuisos)

	assert.True(t, porNombre["Migadas"].ConGuisos)
	assert.Empty(t, porNombre["Café"].Variantes, "precio fijo, sin catálogo")
}
