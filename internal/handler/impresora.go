package handler

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/apierror"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/dto"
	"github.com/Juliancocoro/mi-comalito-pos-version/internal/impresora"
)

// ImpresoraHandler exposes printer configuration, a test print and the
// fire-and-forget network scan. The last scan result is kept in memory
// and served on demand, mirroring the old detection dialog.
type ImpresoraHandler struct {
	store   *impresora.ConfigStore
	manager *impresora.Manager

	mu         sync.Mutex
	escaneando bool
	detectadas []impresora.Detectada
	scanErr    error
	scanFin    time.Time
}

func NewImpresoraHandler(store *impresora.ConfigStore, manager *impresora.Manager) *ImpresoraHandler {
	return &ImpresoraHandler{store: store, manager: manager}
}

// VerConfig godoc
// @Summary Ver la configuración de la impresora
// @Tags impresora
// @Produce json
// @Security BearerAuth
// @Success 200 {object} impresora.Config
// @Failure 404 {object} apierror.APIError
// @Router /v1/impresora/config [get]
func (h *ImpresoraHandler) VerConfig(c *gin.Context) {
	cfg, err := h.store.Cargar()
	if err != nil {
		if errors.Is(err, impresora.ErrSinConfiguracion) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al leer la configuracion"))
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *ImpresoraHandler) GuardarConfig(c *gin.Context) {
	var req dto.ImpresoraConfigRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cfg := impresora.Config{
		Tipo:      req.Tipo,
		VendorID:  req.VendorID,
		ProductID: req.ProductID,
		IP:        req.IP,
		Puerto:    req.Puerto,
		Nombre:    req.Nombre,
	}
	if err := h.store.Guardar(cfg); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// Probar sends the fixed test page to the configured printer.
func (h *ImpresoraHandler) Probar(c *gin.Context) {
	if err := h.manager.ImprimirPrueba(); err != nil {
		c.JSON(http.StatusBadGateway, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Detectar launches the network probe in the background and returns
// right away; Detectadas serves the result when the scan finishes.
func (h *ImpresoraHandler) Detectar(c *gin.Context) {
	var req dto.DetectarRequest
	if !bindAndValidate(c, &req) {
		return
	}

	h.mu.Lock()
	if h.escaneando {
		h.mu.Unlock()
		c.JSON(http.StatusConflict, apierror.New("Ya hay una deteccion en curso"))
		return
	}
	h.escaneando = true
	h.mu.Unlock()

	// Bound the whole scan so a stalled probe can never leave the
	// handler stuck in "escaneando".
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	impresora.DetectarRed(ctx, req.Hosts, func(detectadas []impresora.Detectada, err error) {
		cancel()
		h.mu.Lock()
		defer h.mu.Unlock()
		h.escaneando = false
		h.detectadas = detectadas
		h.scanErr = err
		h.scanFin = time.Now()
	})

	c.JSON(http.StatusAccepted, gin.H{"escaneando": true})
}

func (h *ImpresoraHandler) Detectadas(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.escaneando {
		c.JSON(http.StatusOK, gin.H{"escaneando": true})
		return
	}
	if h.scanFin.IsZero() {
		c.JSON(http.StatusOK, gin.H{"escaneando": false, "detectadas": []impresora.Detectada{}})
		return
	}
	resp := gin.H{
		"escaneando": false,
		"detectadas": h.detectadas,
		"terminado":  h.scanFin.Format(time.RFC3339),
	}
	if h.scanErr != nil {
		resp["error"] = h.scanErr.Error()
	}
	c.JSON(http.StatusOK, resp)
}
