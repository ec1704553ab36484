package impresora

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/model"
)

// 58mm thermal paper: 32 characters per line.
const anchoLinea = 32

// Labels wider than this get truncated on receipts.
const anchoEtiqueta = 24

var (
	separadorDoble  = strings.Repeat("=", anchoLinea)
	separadorSimple = strings.Repeat("-", anchoLinea)
)

// cortarPapel is the ESC/POS full-cut sequence, appended verbatim like
// the raw-text spool path always has.
const cortarPapel = "\x1d\x56\x00"

// acortar fits a product label to the receipt column: anything longer
// than 24 runes keeps the first 21 plus an ellipsis marker.
func acortar(etiqueta string) string {
	runas := []rune(etiqueta)
	if len(runas) <= anchoEtiqueta {
		return etiqueta
	}
	return string(runas[:21]) + "..."
}

// TicketTexto renders the sale receipt in the 32-column layout.
func TicketTexto(items []model.LineItem, total decimal.Decimal, numTicket int, ahora time.Time) string {
	var b strings.Builder

	b.WriteString(separadorDoble + "\n")
	b.WriteString("       MI COMALITO\n")
	b.WriteString("   Gorditas y Algo Mas..\n")
	b.WriteString(separadorDoble + "\n")
	fmt.Fprintf(&b, "Fecha: %s\n", ahora.Format("02/01/2006"))
	fmt.Fprintf(&b, "Hora:  %s\n", ahora.Format("15:04:05"))
	if numTicket > 0 {
		fmt.Fprintf(&b, "Ticket: #%d\n", numTicket)
	}
	b.WriteString(separadorSimple + "\n")

	for _, item := range items {
		fmt.Fprintf(&b, "%d x %s\n", item.Cantidad, acortar(item.Etiqueta()))
		fmt.Fprintf(&b, "              $%s\n", item.Subtotal.StringFixed(2))
	}

	b.WriteString(separadorSimple + "\n")
	fmt.Fprintf(&b, "TOTAL: $%s\n", total.StringFixed(2))
	b.WriteString(separadorDoble + "\n")
	b.WriteString("  GRACIAS POR SU COMPRA!\n")
	b.WriteString(separadorDoble + "\n")
	b.WriteString("\n\n\n")
	b.WriteString(cortarPapel)
	return b.String()
}

// CorteTexto renders the daily-cut summary.
func CorteTexto(totalVendido decimal.Decimal, ticketsPagados int, ahora time.Time) string {
	var b strings.Builder

	b.WriteString(separadorDoble + "\n")
	b.WriteString("     CORTE DEL DIA\n")
	b.WriteString("      MI COMALITO\n")
	b.WriteString(separadorDoble + "\n")
	fmt.Fprintf(&b, "Fecha: %s\n", ahora.Format("02/01/2006"))
	fmt.Fprintf(&b, "Hora:  %s\n", ahora.Format("15:04:05"))
	b.WriteString(separadorSimple + "\n")
	fmt.Fprintf(&b, "Tickets cobrados: %d\n", ticketsPagados)
	fmt.Fprintf(&b, "TOTAL: $%s\n", totalVendido.StringFixed(2))
	b.WriteString(separadorSimple + "\n")
	b.WriteString("     FIN DEL CORTE\n")
	b.WriteString(separadorDoble + "\n")
	b.WriteString("\n\n\n")
	b.WriteString(cortarPapel)
	return b.String()
}

// PruebaTexto renders the test page used from the printer config screen.
func PruebaTexto(ahora time.Time) string {
	var b strings.Builder

	b.WriteString(separadorDoble + "\n")
	b.WriteString("        PRUEBA\n")
	b.WriteString(separadorDoble + "\n")
	fmt.Fprintf(&b, "Fecha: %s\n", ahora.Format("02/01/2006 15:04"))
	b.WriteString("\n")
	b.WriteString("Si puedes leer esto,\n")
	b.WriteString("la impresora funciona\n")
	b.WriteString("correctamente!\n")
	b.WriteString("\n")
	b.WriteString(separadorDoble + "\n")
	b.WriteString("\n\n\n")
	b.WriteString(cortarPapel)
	return b.String()
}
