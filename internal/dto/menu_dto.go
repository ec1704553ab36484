package dto

import "github.com/shopspring/decimal"

type CatalogoResponse struct {
	Familia string                     `json:"familia"`
	Items   map[string]decimal.Decimal `json:"items"`
}

// GuardarCatalogoRequest replaces a family's whole catalog (full
// rewrite, like the original editor's save button).
type GuardarCatalogoRequest struct {
	Items map[string]decimal.Decimal `json:"items" validate:"required"`
}

type AgregarPrecioRequest struct {
	Nombre string          `json:"nombre" validate:"required"`
	Precio decimal.Decimal `json:"precio" validate:"min=0"`
}
