package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/omicronventa13-glitch/omicron-backend/internal/apierror"
	"github.com/omicronventa13-glitch/omicron-backend/internal/service"
)

type BackupHandler struct{ svc service.BackupService }

func NewBackupHandler(svc service.BackupService) *BackupHandler {
	return &BackupHandler{svc: svc}
}

// Download godoc
// @Summary Descargar respaldo
// @Description Exporta todas las colecciones en un único archivo JSON descargable.
// @Tags backup
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.BackupDocument
// @Failure 500 {object} apierror.APIError
// @Router /api/backup/download [get]
func (h *BackupHandler) Download(c *gin.Context) {
	doc, err := h.svc.Export(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el respaldo"))
		return
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el respaldo"))
		return
	}

	filename := fmt.Sprintf("Omicron_Backup_%s.json", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/json", payload)
}
