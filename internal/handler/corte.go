package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/apierror"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/dto"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/service"
)

type CorteHandler struct{ svc service.CorteService }

func NewCorteHandler(svc service.CorteService) *CorteHandler { return &CorteHandler{svc: svc} }

// Realizar godoc
// @Summary Realizar el corte del día
// @Description Registra el corte en el historial de ventas y reinicia los contadores. Si el guardado falla, los contadores quedan intactos.
// @Tags corte
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CorteRequest true "Opciones del corte"
// @Success 200 {object} dto.CorteResponse
// @Failure 500 {object} apierror.APIError
// @Router /v1/corte [post]
func (h *CorteHandler) Realizar(c *gin.Context) {
	var req dto.CorteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Realizar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Preview returns the running day counters without closing anything.
func (h *CorteHandler) Preview(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Preview())
}
