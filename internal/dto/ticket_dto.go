package dto

import "github.com/shopspring/decimal"

// ─── Requests ────────────────────────────────────────────────────────────────

// ItemRequest is shared by add (POST /v1/ticket/items) and edit
// (PUT /v1/ticket/items/:index); an edited item must come out with the
// same shape as a freshly added one, so both bind the same body.
type ItemRequest struct {
	Categoria string `json:"categoria" validate:"required"`
	// Tipo is the chosen variant; ignored by fixed-price categories.
	Tipo     string `json:"tipo"`
	Cantidad int    `json:"qty" validate:"min=0"` // 0 = default of 1
	Guisos   int    `json:"guisos" validate:"min=0"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type LineaResponse struct {
	Categoria      string          `json:"categoria"`
	Tipo           string          `json:"tipo"`
	Cantidad       int             `json:"qty"`
	PrecioUnitario decimal.Decimal `json:"price"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Guisos         int             `json:"guisos,omitempty"`
}

type TicketResponse struct {
	Items  []LineaResponse `json:"items"`
	Lineas []string        `json:"lineas"`
	Total  decimal.Decimal `json:"total"`
}

// CategoriaResponse describes one category so the terminal can build
// its dialog: pricing inputs plus the current variant list.
type CategoriaResponse struct {
	Nombre string `json:"nombre"`
	// Variantes is the catalog key set for catalog-priced categories,
	// empty for fixed-price ones.
	Variantes []string `json:"variantes"`
	// ConGuisos marks categories whose dialog shows the extra-guisos counter.
	ConGuisos bool `json:"con_guisos"`
}
