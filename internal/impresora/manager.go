package impresora

import (
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/infra"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/model"
)

// Impresora is the print contract the sale closer and daily cut consume.
// Implementations report failure through the error; callers only log it.
type Impresora interface {
	ImprimirTicket(items []model.LineItem, total decimal.Decimal, numTicket int) error
	ImprimirCorte(totalVendido decimal.Decimal, ticketsPagados int) error
	ImprimirPrueba() error
}

// Manager resolves the configured printer on every print. Re-reading
// the config file each time means a change from the config screen takes
// effect without restarting the terminal.
type Manager struct {
	store   *ConfigStore
	breaker *infra.CircuitBreaker
	timeout time.Duration
}

func NewManager(store *ConfigStore) *Manager {
	return &Manager{
		store:   store,
		breaker: infra.NewCircuitBreaker(infra.DefaultCBConfig()),
		timeout: 5 * time.Second,
	}
}

func (m *Manager) ImprimirTicket(items []model.LineItem, total decimal.Decimal, numTicket int) error {
	return m.enviar(TicketTexto(items, total, numTicket, time.Now()))
}

func (m *Manager) ImprimirCorte(totalVendido decimal.Decimal, ticketsPagados int) error {
	return m.enviar(CorteTexto(totalVendido, ticketsPagados, time.Now()))
}

func (m *Manager) ImprimirPrueba() error {
	return m.enviar(PruebaTexto(time.Now()))
}

func (m *Manager) enviar(texto string) error {
	cfg, err := m.store.Cargar()
	if err != nil {
		return err
	}

	switch cfg.Tipo {
	case TipoRed:
		return m.breaker.Execute(func() error {
			return escribirRed(cfg.IP, cfg.Puerto, []byte(texto), m.timeout)
		})
	case TipoUSB, TipoWindows:
		// Raw USB and Windows spooling need host drivers this build
		// does not link. The config survives so those installs keep
		// working when run with the platform binary.
		return fmt.Errorf("%w: %s", ErrNoDisponible, cfg.Tipo)
	default:
		return fmt.Errorf("tipo de impresora desconocido: %q", cfg.Tipo)
	}
}

// escribirRed spools raw text to a JetDirect-style port (default 9100).
func escribirRed(ip string, puerto int, datos []byte, timeout time.Duration) error {
	if puerto == 0 {
		puerto = 9100
	}
	direccion := net.JoinHostPort(ip, fmt.Sprintf("%d", puerto))

	conn, err := net.DialTimeout("tcp", direccion, timeout)
	if err != nil {
		return fmt.Errorf("conectando a impresora %s: %w", direccion, err)
	}
	defer conn.Close()

	if err := conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
		return err
	}
	if _, err := conn.Write(datos); err != nil {
		return fmt.Errorf("enviando a impresora %s: %w", direccion, err)
	}
	log.Debug().Str("impresora", direccion).Int("bytes", len(datos)).Msg("impresión enviada")
	return nil
}
