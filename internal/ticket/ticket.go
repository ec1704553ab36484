// Package ticket owns the in-progress sale: the ordered line items and
// their maintained running total.
package ticket

import (
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/model"
)

var (
	// ErrSinSeleccion is returned when a remove is requested without a
	// selected position.
	ErrSinSeleccion = errors.New("selecciona un producto")
	// ErrIndiceInvalido means the position does not exist. The UI only
	// offers existing positions, so this is a defect in the caller.
	ErrIndiceInvalido = errors.New("índice de producto inválido")
)

// Ticket accumulates line items for one customer transaction. The total
// is maintained incrementally: every mutation applies the subtotal delta
// instead of re-summing the whole list. One Ticket serves one terminal
// session; the mutex covers concurrent HTTP requests against it.
type Ticket struct {
	mu     sync.Mutex
	items  []model.LineItem
	lineas []string
	total  decimal.Decimal
}

func Nuevo() *Ticket {
	return &Ticket{total: decimal.Zero}
}

// Agregar appends the item and grows the total by its subtotal.
func (t *Ticket) Agregar(item model.LineItem) {
	t.mu.Lock()
	defer t.mu.Unlock()

	item.Subtotal = item.PrecioUnitario.Mul(decimal.NewFromInt(int64(item.Cantidad)))
	t.items = append(t.items, item)
	t.lineas = append(t.lineas, lineaTexto(item))
	t.total = t.total.Add(item.Subtotal)
	t.ajustarPiso()
}

// Reemplazar substitutes the item at idx, updating its display line in
// place so list order and any pending selection stay stable.
func (t *Ticket) Reemplazar(idx int, item model.LineItem) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if idx < 0 || idx >= len(t.items) {
		return fmt.Errorf("%w: %d", ErrIndiceInvalido, idx)
	}

	item.Subtotal = item.PrecioUnitario.Mul(decimal.NewFromInt(int64(item.Cantidad)))
	t.total = t.total.Sub(t.items[idx].Subtotal).Add(item.Subtotal)
	t.items[idx] = item
	t.lineas[idx] = lineaTexto(item)
	t.ajustarPiso()
	return nil
}

// Quitar removes the item at idx and shrinks the total by its subtotal.
// A negative idx means nothing was selected.
func (t *Ticket) Quitar(idx int) (model.LineItem, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if idx < 0 {
		return model.LineItem{}, ErrSinSeleccion
	}
	if idx >= len(t.items) {
		return model.LineItem{}, fmt.Errorf("%w: %d", ErrIndiceInvalido, idx)
	}

	removed := t.items[idx]
	t.items = append(t.items[:idx], t.items[idx+1:]...)
	t.lineas = append(t.lineas[:idx], t.lineas[idx+1:]...)
	t.total = t.total.Sub(removed.Subtotal)
	t.ajustarPiso()
	return removed, nil
}

// Limpiar empties the ticket and resets the total to exactly zero.
func (t *Ticket) Limpiar() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.items = nil
	t.lineas = nil
	t.total = decimal.Zero
}

// Total is an O(1) read of the maintained running total.
func (t *Ticket) Total() decimal.Decimal {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.total
}

// Items returns a copy of the current line items in display order.
func (t *Ticket) Items() []model.LineItem {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]model.LineItem, len(t.items))
	copy(out, t.items)
	return out
}

// Lineas returns a copy of the display text for each position.
func (t *Ticket) Lineas() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.lineas))
	copy(out, t.lineas)
	return out
}

// Vacio reports whether the ticket has no items.
func (t *Ticket) Vacio() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.items) == 0
}

// ajustarPiso clamps the total at zero. Correct incremental bookkeeping
// never needs it, but the floor is kept so a bookkeeping regression can
// not surface a negative total to the operator.
func (t *Ticket) ajustarPiso() {
	if t.total.IsNegative() {
		t.total = decimal.Zero
	}
}

func lineaTexto(item model.LineItem) string {
	texto := fmt.Sprintf("%d x %s", item.Cantidad, item.Categoria)
	if item.Tipo != "" {
		texto += " - " + item.Tipo
	}
	return texto + fmt.Sprintf("     $%s", item.Subtotal.StringFixed(2))
}
