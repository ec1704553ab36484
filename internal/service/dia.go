package service

import (
	"sync"

	"github.com/shopspring/decimal"
)

// DiaVentas holds the counters a daily cut closes out: money taken in
// and tickets paid since the last cut. Only the payment flow increments
// them and only a successful cut resets them.
type DiaVentas struct {
	mu             sync.Mutex
	totalVendido   decimal.Decimal
	ticketsPagados int
}

func NewDiaVentas() *DiaVentas {
	return &DiaVentas{totalVendido: decimal.Zero}
}

// RegistrarPago folds one completed payment into the day and returns
// the ticket number just assigned (the new paid-ticket count).
func (d *DiaVentas) RegistrarPago(total decimal.Decimal) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.totalVendido = d.totalVendido.Add(total)
	d.ticketsPagados++
	return d.ticketsPagados
}

// Snapshot reads both counters consistently.
func (d *DiaVentas) Snapshot() (decimal.Decimal, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.totalVendido, d.ticketsPagados
}

// Reiniciar zeroes the counters. Called only after the cut record is
// durably on disk.
func (d *DiaVentas) Reiniciar() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.totalVendido = decimal.Zero
	d.ticketsPagados = 0
}
