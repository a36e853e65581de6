package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omicronventa13-glitch/omicron-backend/internal/apierror"
	"github.com/omicronventa13-glitch/omicron-backend/internal/dto"
	"github.com/omicronventa13-glitch/omicron-backend/internal/infra"
	"github.com/omicronventa13-glitch/omicron-backend/internal/service"
)

type RepairsHandler struct{ svc service.RepairService }

func NewRepairsHandler(svc service.RepairService) *RepairsHandler {
	return &RepairsHandler{svc: svc}
}

// repairAttachments extracts evidence photos and the client signature from a
// multipart form. JSON requests yield nil for both.
func repairAttachments(c *gin.Context) (photos []*multipart.FileHeader, signature *multipart.FileHeader) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, nil
	}
	photos = form.File["evidencePhotos"]
	if sigs := form.File["clientSignature"]; len(sigs) > 0 {
		signature = sigs[0]
	}
	return photos, signature
}

func writeRepairError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRepairNotFound):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, service.ErrRepairMissingFields),
		errors.Is(err, infra.ErrFileTooLarge),
		errors.Is(err, infra.ErrBadFileType):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, apierror.New("Error al procesar la orden"))
	}
}

// Create godoc
// @Summary Crear orden de reparación
// @Description Alta de orden con fotos de evidencia y firma del cliente (multipart/form-data).
// @Tags reparaciones
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 201 {object} model.RepairOrder
// @Failure 400 {object} apierror.APIError
// @Router /api/repairs [post]
func (h *RepairsHandler) Create(c *gin.Context) {
	var req dto.CreateRepairRequest
	if !bindFormAndValidate(c, &req) {
		return
	}
	photos, signature := repairAttachments(c)

	order, err := h.svc.Create(c.Request.Context(), req, photos, signature)
	if err != nil {
		writeRepairError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// List godoc
// @Summary Listar órdenes de reparación
// @Tags reparaciones
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.RepairOrder
// @Router /api/repairs [get]
func (h *RepairsHandler) List(c *gin.Context) {
	orders, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar órdenes"))
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Update godoc
// @Summary Actualizar orden de reparación
// @Description Modifica los campos permitidos de la orden; las fotos nuevas reemplazan a las anteriores.
// @Tags reparaciones
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de la orden"
// @Success 200 {object} model.RepairOrder
// @Failure 404 {object} apierror.APIError
// @Router /api/repairs/{id} [put]
func (h *RepairsHandler) Update(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	var req dto.UpdateRepairRequest
	if !bindFormAndValidate(c, &req) {
		return
	}
	photos, signature := repairAttachments(c)

	order, err := h.svc.Update(c.Request.Context(), id, req, photos, signature)
	if err != nil {
		writeRepairError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Delete godoc
// @Summary Eliminar orden de reparación
// @Tags reparaciones
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de la orden"
// @Success 200 {object} map[string]string
// @Failure 404 {object} apierror.APIError
// @Router /api/repairs/{id} [delete]
func (h *RepairsHandler) Delete(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeRepairError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Orden eliminada"})
}

// PDF godoc
// @Summary Imprimir orden de reparación
// @Description Genera el PDF de la orden de trabajo en tamaño A5.
// @Tags reparaciones
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "ID de la orden"
// @Success 200 {file} binary
// @Failure 404 {object} apierror.APIError
// @Router /api/repairs/{id}/pdf [get]
func (h *RepairsHandler) PDF(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	pdf, err := h.svc.RenderPDF(c.Request.Context(), id)
	if err != nil {
		writeRepairError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=orden_%s.pdf", c.Param("id")))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
