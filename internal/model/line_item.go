package model

import "github.com/shopspring/decimal"

// LineItem is one priced entry on the in-progress ticket.
// JSON keys match the historical ticket records so that receipt
// generation and re-editing keep working against old payloads.
type LineItem struct {
	Categoria string `json:"categoria"`
	// Tipo is the chosen variant label; empty for categories without one.
	// For Migadas it is derived ("Picadillo (2 guisos)") and the raw
	// guiso count is kept in Guisos so an edit reopens with the same state.
	Tipo           string          `json:"tipo"`
	Cantidad       int             `json:"qty"`
	PrecioUnitario decimal.Decimal `json:"price"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Guisos         int             `json:"guisos,omitempty"`
}

// Etiqueta returns the combined display label used on receipts and
// the ticket list ("Categoria - Tipo").
func (li LineItem) Etiqueta() string {
	if li.Tipo == "" {
		return li.Categoria
	}
	return li.Categoria + " - " + li.Tipo
}
