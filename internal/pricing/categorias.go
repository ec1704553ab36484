package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/model"
)

// Categoria enumerates the product families sold at the counter.
type Categoria int

const (
	Gorditas Categoria = iota
	Bocoles
	Migadas
	TacosMaiz
	TacosHarina
	Quesadillas
	BigQuesadilla
	Postres
	Aguas
	Refrescos
	Cafe
)

// Menu prices. Guiso toppings add their catalog price on top of the
// antojito base; Migadas charge per extra guiso beyond the first.
var (
	precioBaseAntojito  = decimal.NewFromInt(16)
	precioBaseMigadas   = decimal.NewFromInt(85)
	precioGuisoExtra    = decimal.Zero
	precioBigQuesadilla = decimal.NewFromInt(45)
	precioCafe          = decimal.NewFromInt(25)
)

var categorias = []Categoria{
	Gorditas, Bocoles, Migadas, TacosMaiz, TacosHarina,
	Quesadillas, BigQuesadilla, Postres, Aguas, Refrescos, Cafe,
}

// Todas returns every known category in display order.
func Todas() []Categoria { return categorias }

// Nombre is the stable label stored on line items. Receipt and report
// code groups by it, so it must never change for an existing category.
func (c Categoria) Nombre() string {
	switch c {
	case Gorditas:
		return "Gorditas"
	case Bocoles:
		return "Bocoles"
	case Migadas:
		return "Migadas"
	case TacosMaiz:
		return "Tacos de Maiz"
	case TacosHarina:
		return "Tacos de Harina"
	case Quesadillas:
		return "Quesadillas"
	case BigQuesadilla:
		return "Big Quesadilla"
	case Postres:
		return "Postres"
	case Aguas:
		return "Aguas de Sabor"
	case Refrescos:
		return "Refrescos"
	case Cafe:
		return "Café"
	}
	return "desconocida"
}

// Parse maps a stable category label back to its variant.
func Parse(nombre string) (Categoria, error) {
	for _, c := range categorias {
		if c.Nombre() == nombre {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrCategoriaDesconocida, nombre)
}

// Regla returns the category's pricing rule.
func (c Categoria) Regla() Regla {
	switch c {
	case Gorditas, Bocoles, TacosMaiz, TacosHarina, Quesadillas:
		return PorCatalogo{Base: precioBaseAntojito}
	case Migadas:
		return ConGuisosExtra{Base: precioBaseMigadas, PrecioExtra: precioGuisoExtra}
	case Postres, Aguas, Refrescos:
		return PorCatalogo{Base: decimal.Zero}
	case BigQuesadilla:
		return Fija{Precio: precioBigQuesadilla}
	case Cafe:
		return Fija{Precio: precioCafe}
	}
	return Fija{Precio: decimal.Zero}
}

// Familia names the catalog file the category's variants come from.
// ok is false for fixed-price categories, which have no variant catalog.
func (c Categoria) Familia() (model.Familia, bool) {
	switch c {
	case Gorditas, Bocoles, Migadas, TacosMaiz, TacosHarina, Quesadillas:
		return model.FamiliaGuisos, true
	case Postres:
		return model.FamiliaPostres, true
	case Aguas:
		return model.FamiliaAguas, true
	case Refrescos:
		return model.FamiliaRefrescos, true
	}
	return "", false
}

// NuevaLinea normalizes a selection into a LineItem. Add and edit both
// go through here so a replacement item has the same shape as a fresh one.
func NuevaLinea(c Categoria, sel Seleccion, catalogo map[string]decimal.Decimal) (model.LineItem, error) {
	if sel.Cantidad < 1 {
		sel.Cantidad = 1
	}

	item := model.LineItem{
		Categoria: c.Nombre(),
		Tipo:      sel.Variante,
		Cantidad:  sel.Cantidad,
	}

	switch c {
	case Migadas:
		if sel.Guisos < 1 {
			sel.Guisos = 1
		}
		item.Guisos = sel.Guisos
		item.Tipo = fmt.Sprintf("%s (%d guisos)", sel.Variante, sel.Guisos)
	case BigQuesadilla, Cafe:
		// Fixed-price categories label themselves.
		item.Tipo = c.Nombre()
	}

	unit, err := c.Regla().PrecioUnitario(sel, catalogo)
	if err != nil {
		return model.LineItem{}, err
	}
	item.PrecioUnitario = unit
	item.Subtotal = unit.Mul(decimal.NewFromInt(int64(item.Cantidad)))
	return item, nil
}
