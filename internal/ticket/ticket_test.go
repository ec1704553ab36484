package ticket

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/model"
)

func item(categoria string, cantidad int, unitario int64) model.LineItem {
	return model.LineItem{
		Categoria:      categoria,
		Cantidad:       cantidad,
		PrecioUnitario: decimal.NewFromInt(unitario),
	}
}

// recompute sums the subtotals from scratch, to cross-check the
// incrementally maintained total.
func recompute(t *Ticket) decimal.Decimal {
	suma := decimal.Zero
	for _, it := range t.Items() {
		suma = suma.Add(it.Subtotal)
	}
	return suma
}

func TestAgregarMantieneTotal(t *testing.T) {
	tick := Nuevo()

	tick.Agregar(item("Gorditas", 2, 16))
	tick.Agregar(item("Café", 1, 25))
	tick.Agregar(item("Big Quesadilla", 3, 45))

	require.Len(t, tick.Items(), 3)
	assert.True(t, tick.Total().Equal(decimal.NewFromInt(192)), "total %s", tick.Total())
	assert.True(t, tick.Total().Equal(recompute(tick)))
}

func TestQuitarDescuentaElSubtotal(t *testing.T) {
	tick := Nuevo()
	tick.Agregar(item("Gorditas", 2, 16))
	tick.Agregar(item("Café", 1, 25))

	removido, err := tick.Quitar(0)
	require.NoError(t, err)
	assert.Equal(t, "Gorditas", removido.Categoria)

	require.Len(t, tick.Items(), 1)
	assert.True(t, tick.Total().Equal(decimal.NewFromInt(25)))
	assert.True(t, tick.Total().Equal(recompute(tick)))
}

func TestQuitarSinSeleccion(t *testing.T) {
	tick := Nuevo()
	tick.Agregar(item("Café", 1, 25))

	_, err := tick.Quitar(-1)
	assert.ErrorIs(t, err, ErrSinSeleccion)

	_, err = tick.Quitar(5)
	assert.ErrorIs(t, err, ErrIndiceInvalido)

	// Failed removals leave the ticket untouched.
	assert.Len(t, tick.Items(), 1)
	assert.True(t, tick.Total().Equal(decimal.NewFromInt(25)))
}

func TestReemplazarAplicaElDelta(t *testing.T) {
	tick := Nuevo()
	tick.Agregar(item("Gorditas", 2, 16))
	tick.Agregar(item("Café", 1, 25))

	require.NoError(t, tick.Reemplazar(0, item("Bocoles", 3, 16)))

	items := tick.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Bocoles", items[0].Categoria)
	assert.Equal(t, "Café", items[1].Categoria, "el orden de la lista no cambia")
	assert.True(t, tick.Total().Equal(decimal.NewFromInt(73)))
	assert.True(t, tick.Total().Equal(recompute(tick)))
}

func TestReemplazarIndiceInvalido(t *testing.T) {
	tick := Nuevo()
	tick.Agregar(item("Café", 1, 25))

	assert.ErrorIs(t, tick.Reemplazar(3, item("Gorditas", 1, 16)), ErrIndiceInvalido)
	assert.ErrorIs(t, tick.Reemplazar(-1, item("Gorditas", 1, 16)), ErrIndiceInvalido)
}

func TestLimpiarDejaElTotalEnCero(t *testing.T) {
	tick := Nuevo()
	tick.Agregar(item("Gorditas", 4, 16))
	require.False(t, tick.Vacio())

	tick.Limpiar()

	assert.True(t, tick.Vacio())
	assert.Empty(t, tick.Lineas())
	assert.True(t, tick.Total().IsZero())
}

func TestTotalNuncaNegativo(t *testing.T) {
	tick := Nuevo()
	// A negative-priced item cannot come out of pricing, but the floor
	// has to hold even against a corrupted line.
	tick.Agregar(model.LineItem{Categoria: "Gorditas", Cantidad: 1, PrecioUnitario: decimal.NewFromInt(-50)})

	assert.True(t, tick.Total().IsZero())
}

func TestLineasSiguenElFormatoDeLaLista(t *testing.T) {
	tick := Nuevo()
	tick.Agregar(model.LineItem{
		Categoria:      "Gorditas",
		Tipo:           "Picadillo",
		Cantidad:       2,
		PrecioUnitario: decimal.NewFromInt(16),
	})

	lineas := tick.Lineas()
	require.Len(t, lineas, 1)
	assert.Equal(t, "2 x Gorditas - Picadillo     $32.00", lineas[0])
}
