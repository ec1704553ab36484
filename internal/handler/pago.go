package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/apierror"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/dto"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/service"
)

type PagoHandler struct{ svc service.PagoService }

func NewPagoHandler(svc service.PagoService) *PagoHandler { return &PagoHandler{svc: svc} }

// Cobrar godoc
// @Summary Cobrar el ticket en curso
// @Description Cierra la venta: imprime (opcional, mejor esfuerzo), suma al día y limpia el ticket.
// @Tags pago
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.PagoRequest true "Opciones de cobro"
// @Success 200 {object} dto.PagoResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/pago [post]
func (h *PagoHandler) Cobrar(c *gin.Context) {
	var req dto.PagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Cobrar(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrTicketVacio) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Preview returns the receipt text exactly as it would print.
func (h *PagoHandler) Preview(c *gin.Context) {
	texto, err := h.svc.Preview()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"preview": texto})
}
