package service

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/dto"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/model"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/repository"
)

var ErrEntradaNoEncontrada = fmt.Errorf("la entrada no existe en el catálogo")

// MenuService edits the price catalogs behind the ordering screen.
// Every mutation rewrites the family's file whole, mirroring the
// original editor's save behavior.
type MenuService interface {
	Ver(familia model.Familia) (*dto.CatalogoResponse, error)
	Guardar(familia model.Familia, req *dto.GuardarCatalogoRequest) (*dto.CatalogoResponse, error)
	Agregar(familia model.Familia, req *dto.AgregarPrecioRequest) (*dto.CatalogoResponse, error)
	Quitar(familia model.Familia, nombre string) (*dto.CatalogoResponse, error)
}

type menuService struct {
	mu   sync.Mutex
	repo repository.CatalogoRepository
}

func NewMenuService(repo repository.CatalogoRepository) MenuService {
	return &menuService{repo: repo}
}

func (s *menuService) Ver(familia model.Familia) (*dto.CatalogoResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalogo, err := s.repo.Cargar(familia)
	if err != nil {
		return nil, err
	}
	return catalogoToResponse(familia, catalogo), nil
}

func (s *menuService) Guardar(familia model.Familia, req *dto.GuardarCatalogoRequest) (*dto.CatalogoResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalogo := make(map[string]decimal.Decimal, len(req.Items))
	for nombre, precio := range req.Items {
		if precio.IsNegative() {
			return nil, fmt.Errorf("precio negativo para %q", nombre)
		}
		catalogo[nombre] = precio
	}
	if err := s.repo.Guardar(familia, catalogo); err != nil {
		return nil, err
	}

	log.Info().
		Str("familia", string(familia)).
		Int("entradas", len(catalogo)).
		Msg("catálogo reemplazado")
	return catalogoToResponse(familia, catalogo), nil
}

func (s *menuService) Agregar(familia model.Familia, req *dto.AgregarPrecioRequest) (*dto.CatalogoResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalogo, err := s.repo.Cargar(familia)
	if err != nil {
		return nil, err
	}
	catalogo[req.Nombre] = req.Precio
	if err := s.repo.Guardar(familia, catalogo); err != nil {
		return nil, err
	}

	log.Info().
		Str("familia", string(familia)).
		Str("nombre", req.Nombre).
		Str("precio", req.Precio.String()).
		Msg("entrada de catálogo guardada")
	return catalogoToResponse(familia, catalogo), nil
}

func (s *menuService) Quitar(familia model.Familia, nombre string) (*dto.CatalogoResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalogo, err := s.repo.Cargar(familia)
	if err != nil {
		return nil, err
	}
	if _, ok := catalogo[nombre]; !ok {
		return nil, ErrEntradaNoEncontrada
	}
	delete(catalogo, nombre)
	if err := s.repo.Guardar(familia, catalogo); err != nil {
		return nil, err
	}

	log.Info().
		Str("familia", string(familia)).
		Str("nombre", nombre).
		Msg("entrada de catálogo eliminada")
	return catalogoToResponse(familia, catalogo), nil
}

func catalogoToResponse(familia model.Familia, catalogo map[string]decimal.Decimal) *dto.CatalogoResponse {
	return &dto.CatalogoResponse{
		Familia: string(familia),
		Items:   catalogo,
	}
}
