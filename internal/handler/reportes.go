package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/apierror"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/infra"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/service"
)

type ReportesHandler struct {
	svc        service.ReporteService
	pdfStorage string
}

func NewReportesHandler(svc service.ReporteService, pdfStorage string) *ReportesHandler {
	return &ReportesHandler{svc: svc, pdfStorage: pdfStorage}
}

// Totales godoc
// @Summary Totales de hoy, la semana y el mes
// @Tags reportes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ReporteResponse
// @Router /v1/reportes [get]
func (h *ReportesHandler) Totales(c *gin.Context) {
	resp, err := h.svc.Totales()
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al leer el historial de ventas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PorMes godoc
// @Summary Desglose de un mes por día y por semana
// @Tags reportes
// @Produce json
// @Security BearerAuth
// @Param mes path int true "Mes (1-12)"
// @Success 200 {object} dto.ReporteMesResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/reportes/mes/{mes} [get]
func (h *ReportesHandler) PorMes(c *gin.Context) {
	mes, err := strconv.Atoi(c.Param("mes"))
	if err != nil || mes < 1 || mes > 12 {
		c.JSON(http.StatusBadRequest, apierror.New("Mes invalido"))
		return
	}
	resp, err := h.svc.PorMes(time.Month(mes))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al leer el historial de ventas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PDF generates the month's report and streams the file back.
func (h *ReportesHandler) PDF(c *gin.Context) {
	mes, err := strconv.Atoi(c.Param("mes"))
	if err != nil || mes < 1 || mes > 12 {
		c.JSON(http.StatusBadRequest, apierror.New("Mes invalido"))
		return
	}
	reporte, err := h.svc.PorMes(time.Month(mes))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al leer el historial de ventas"))
		return
	}
	path, err := infra.GenerarReporteMensualPDF(reporte, h.pdfStorage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el PDF"))
		return
	}
	c.FileAttachment(path, "reporte.pdf")
}

// Cortes lists the raw sales ledger, newest last.
func (h *ReportesHandler) Cortes(c *gin.Context) {
	resp, err := h.svc.ListarCortes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al leer el historial de ventas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
