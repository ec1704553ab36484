package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/apierror"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/dto"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/pricing"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/service"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/ticket"
)

type TicketHandler struct{ svc service.TicketService }

func NewTicketHandler(svc service.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

// Ver godoc
// @Summary Ver el ticket en curso
// @Tags ticket
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TicketResponse
// @Router /v1/ticket [get]
func (h *TicketHandler) Ver(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Ver())
}

// Agregar godoc
// @Summary Agregar una línea al ticket
// @Tags ticket
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ItemRequest true "Selección"
// @Success 200 {object} dto.TicketResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/ticket/items [post]
func (h *TicketHandler) Agregar(c *gin.Context) {
	var req dto.ItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Agregar(c.Request.Context(), req)
	if err != nil {
		c.JSON(estadoErrorTicket(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TicketHandler) Editar(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Indice invalido"))
		return
	}
	var req dto.ItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Editar(c.Request.Context(), index, req)
	if err != nil {
		c.JSON(estadoErrorTicket(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TicketHandler) Quitar(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Indice invalido"))
		return
	}
	resp, err := h.svc.Quitar(index)
	if err != nil {
		c.JSON(estadoErrorTicket(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cancelar empties the whole ticket, like walking away from the counter.
func (h *TicketHandler) Cancelar(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Cancelar())
}

// Categorias godoc
// @Summary Listar categorías y variantes disponibles
// @Tags ticket
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CategoriaResponse
// @Router /v1/categorias [get]
func (h *TicketHandler) Categorias(c *gin.Context) {
	resp, err := h.svc.Categorias(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar el menu"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func estadoErrorTicket(err error) int {
	switch {
	case errors.Is(err, ticket.ErrIndiceInvalido):
		return http.StatusNotFound
	case errors.Is(err, pricing.ErrCategoriaDesconocida),
		errors.Is(err, pricing.ErrVarianteDesconocida),
		errors.Is(err, ticket.ErrSinSeleccion):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
