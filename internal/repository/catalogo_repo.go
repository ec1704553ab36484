package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/model"
)

// CatalogoRepository stores one name→price JSON file per catalog family.
// Saves are always full-file rewrites; there is no incremental update.
type CatalogoRepository interface {
	// Cargar returns the family's catalog. A missing file yields the
	// built-in defaults, which are persisted before returning.
	Cargar(familia model.Familia) (map[string]decimal.Decimal, error)
	// Guardar overwrites the family's whole catalog. Write failures
	// propagate to the caller; the editing surface must see them.
	Guardar(familia model.Familia, catalogo map[string]decimal.Decimal) error
}

type catalogoRepo struct {
	dir string
}

func NewCatalogoRepository(dir string) CatalogoRepository {
	return &catalogoRepo{dir: dir}
}

// guisosDefault is the topping set the counter opened with. A fresh
// install (or a deleted file) starts from here instead of failing.
func guisosDefault() map[string]decimal.Decimal {
	nombres := []string{
		"Frijol con Queso",
		"Huevo verde",
		"Huevo rojo",
		"Chicharrón",
		"Deshebrada",
		"Picadillo",
		"Papa con chorizo",
		"Calabazas a la Mexicana",
		"Nopales a la Mexicana",
	}
	m := make(map[string]decimal.Decimal, len(nombres))
	for _, n := range nombres {
		m[n] = decimal.Zero
	}
	return m
}

func defaults(familia model.Familia) map[string]decimal.Decimal {
	if familia == model.FamiliaGuisos {
		return guisosDefault()
	}
	return map[string]decimal.Decimal{}
}

func (r *catalogoRepo) ruta(familia model.Familia) string {
	return filepath.Join(r.dir, string(familia)+".json")
}

func (r *catalogoRepo) Cargar(familia model.Familia) (map[string]decimal.Decimal, error) {
	if !familia.Valida() {
		return nil, fmt.Errorf("familia de catálogo desconocida: %q", familia)
	}

	// Prices live on disk as plain JSON numbers; json.Number keeps
	// them exact on the way into decimal.
	var crudo map[string]json.Number
	ok, err := leerJSON(r.ruta(familia), &crudo)
	if err != nil {
		return nil, err
	}
	if !ok {
		def := defaults(familia)
		if err := r.Guardar(familia, def); err != nil {
			return nil, err
		}
		return def, nil
	}

	catalogo := make(map[string]decimal.Decimal, len(crudo))
	for nombre, precio := range crudo {
		d, err := decimal.NewFromString(precio.String())
		if err != nil {
			return nil, fmt.Errorf("precio inválido para %q en %s: %w", nombre, familia, err)
		}
		catalogo[nombre] = d
	}
	return catalogo, nil
}

func (r *catalogoRepo) Guardar(familia model.Familia, catalogo map[string]decimal.Decimal) error {
	if !familia.Valida() {
		return fmt.Errorf("familia de catálogo desconocida: %q", familia)
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("creando directorio de datos: %w", err)
	}

	crudo := make(map[string]json.Number, len(catalogo))
	for nombre, precio := range catalogo {
		crudo[nombre] = json.Number(precio.String())
	}
	return escribirJSON(r.ruta(familia), crudo)
}
