// Package pricing holds the closed set of product categories and their
// pure price formulas. Each category carries exactly one pricing rule;
// adding a category means adding a constant and a rule here, not a new
// string-keyed branch at the call sites.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrCategoriaDesconocida means the request named a category outside
	// the closed set. Only a misbehaving client can trigger it.
	ErrCategoriaDesconocida = errors.New("categoría desconocida")
	// ErrVarianteDesconocida means a catalog-priced category was asked
	// for a variant that is not a key of its catalog. The offered
	// variant set is always the catalog's own key set, so this is a
	// programming defect, not a user error.
	ErrVarianteDesconocida = errors.New("variante fuera del catálogo")
)

// Seleccion is what the operator picked on a category dialog.
type Seleccion struct {
	Variante string
	Cantidad int
	Guisos   int
}

// Regla computes a unit price from a selection. catalogo is the family's
// name→price map for catalog-backed rules and ignored by the others.
type Regla interface {
	PrecioUnitario(sel Seleccion, catalogo map[string]decimal.Decimal) (decimal.Decimal, error)
}

// Fija prices every unit at the same constant.
type Fija struct {
	Precio decimal.Decimal
}

func (r Fija) PrecioUnitario(Seleccion, map[string]decimal.Decimal) (decimal.Decimal, error) {
	return r.Precio, nil
}

// PorCatalogo prices a unit as Base + catalogo[variante].
type PorCatalogo struct {
	Base decimal.Decimal
}

func (r PorCatalogo) PrecioUnitario(sel Seleccion, catalogo map[string]decimal.Decimal) (decimal.Decimal, error) {
	extra, ok := catalogo[sel.Variante]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrVarianteDesconocida, sel.Variante)
	}
	return r.Base.Add(extra), nil
}

// ConGuisosExtra prices a unit as Base + max(0, guisos-1)*PrecioExtra.
// The multiplication is kept even while PrecioExtra is configured as
// zero so a future price change is honored without code changes.
type ConGuisosExtra struct {
	Base        decimal.Decimal
	PrecioExtra decimal.Decimal
}

func (r ConGuisosExtra) PrecioUnitario(sel Seleccion, catalogo map[string]decimal.Decimal) (decimal.Decimal, error) {
	if _, ok := catalogo[sel.Variante]; !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrVarianteDesconocida, sel.Variante)
	}
	extras := sel.Guisos - 1
	if extras < 0 {
		extras = 0
	}
	return r.Base.Add(r.PrecioExtra.Mul(decimal.NewFromInt(int64(extras)))), nil
}
