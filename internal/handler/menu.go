package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/apierror"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/dto"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/model"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/service"
)

type MenuHandler struct{ svc service.MenuService }

func NewMenuHandler(svc service.MenuService) *MenuHandler { return &MenuHandler{svc: svc} }

func familiaParam(c *gin.Context) (model.Familia, bool) {
	familia := model.Familia(c.Param("familia"))
	if !familia.Valida() {
		c.JSON(http.StatusNotFound, apierror.New("Familia de catalogo desconocida"))
		return "", false
	}
	return familia, true
}

// Ver godoc
// @Summary Ver el catálogo de una familia
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Param familia path string true "guisos | aguas | refrescos | postres"
// @Success 200 {object} dto.CatalogoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/menu/{familia} [get]
func (h *MenuHandler) Ver(c *gin.Context) {
	familia, ok := familiaParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Ver(familia)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar el catalogo"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Guardar replaces the family's whole catalog.
func (h *MenuHandler) Guardar(c *gin.Context) {
	familia, ok := familiaParam(c)
	if !ok {
		return
	}
	var req dto.GuardarCatalogoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Guardar(familia, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MenuHandler) Agregar(c *gin.Context) {
	familia, ok := familiaParam(c)
	if !ok {
		return
	}
	var req dto.AgregarPrecioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Agregar(familia, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MenuHandler) Quitar(c *gin.Context) {
	familia, ok := familiaParam(c)
	if !ok {
		return
	}
	nombre := c.Param("nombre")
	resp, err := h.svc.Quitar(familia, nombre)
	if err != nil {
		if errors.Is(err, service.ErrEntradaNoEncontrada) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
