// Package impresora is the narrow boundary to the receipt printer.
// Everything here is best-effort: callers log failures and move on,
// printing never blocks or rolls back a payment or a cut.
package impresora

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Printer types accepted in printer_config.json.
const (
	TipoUSB     = "usb"
	TipoRed     = "network"
	TipoWindows = "windows"
)

var (
	ErrSinConfiguracion = errors.New("impresora no configurada")
	// ErrNoDisponible marks printer types the terminal build cannot
	// drive (raw USB, Windows spooler).
	ErrNoDisponible = errors.New("impresora no disponible en esta terminal")
)

// Config mirrors printer_config.json: a type discriminator plus the
// fields that type needs. Unused fields stay at their zero value.
type Config struct {
	Tipo      string `json:"type"`
	VendorID  int    `json:"vendor_id,omitempty"`
	ProductID int    `json:"product_id,omitempty"`
	IP        string `json:"ip,omitempty"`
	Puerto    int    `json:"port,omitempty"`
	Nombre    string `json:"name,omitempty"`
}

// Validar checks the discriminator and its required fields.
func (c Config) Validar() error {
	switch c.Tipo {
	case TipoUSB:
		if c.VendorID == 0 || c.ProductID == 0 {
			return errors.New("impresora usb requiere vendor_id y product_id")
		}
	case TipoRed:
		if c.IP == "" {
			return errors.New("impresora de red requiere ip")
		}
	case TipoWindows:
		if c.Nombre == "" {
			return errors.New("impresora windows requiere name")
		}
	default:
		return fmt.Errorf("tipo de impresora desconocido: %q", c.Tipo)
	}
	return nil
}

// ConfigStore reads and writes printer_config.json.
type ConfigStore struct {
	path string
}

func NewConfigStore(dir string) *ConfigStore {
	return &ConfigStore{path: filepath.Join(dir, "printer_config.json")}
}

// Cargar returns the saved configuration, or ErrSinConfiguracion when
// the terminal has never configured a printer.
func (s *ConfigStore) Cargar() (*Config, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, ErrSinConfiguracion
	}
	if err != nil {
		return nil, fmt.Errorf("leyendo configuración de impresora: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decodificando configuración de impresora: %w", err)
	}
	return &cfg, nil
}

func (s *ConfigStore) Guardar(cfg Config) error {
	if err := cfg.Validar(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creando directorio de datos: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("guardando configuración de impresora: %w", err)
	}
	return os.Rename(tmp, s.path)
}
