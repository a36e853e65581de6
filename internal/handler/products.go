package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omicronventa13-glitch/omicron-backend/internal/apierror"
	"github.com/omicronventa13-glitch/omicron-backend/internal/dto"
	"github.com/omicronventa13-glitch/omicron-backend/internal/infra"
	"github.com/omicronventa13-glitch/omicron-backend/internal/service"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// imageFile pulls the optional upload out of a multipart request. JSON
// requests have no file and get nil back.
func imageFile(c *gin.Context) *multipart.FileHeader {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return fh
}

func writeProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, infra.ErrFileTooLarge), errors.Is(err, infra.ErrBadFileType):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, apierror.New("Error al guardar el producto"))
	}
}

// List godoc
// @Summary Listar productos
// @Description Retorna el catálogo completo, opcionalmente filtrado por categoría.
// @Tags productos
// @Produce json
// @Security BearerAuth
// @Param category query string false "Categoría exacta"
// @Success 200 {array} model.Product
// @Router /api/products [get]
func (h *ProductsHandler) List(c *gin.Context) {
	products, err := h.svc.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar productos"))
		return
	}
	c.JSON(http.StatusOK, products)
}

// Get godoc
// @Summary Consultar producto
// @Tags productos
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del producto"
// @Success 200 {object} model.Product
// @Failure 404 {object} apierror.APIError
// @Router /api/products/{id} [get]
func (h *ProductsHandler) Get(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	product, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar producto"))
		return
	}
	c.JSON(http.StatusOK, product)
}

// Create godoc
// @Summary Crear producto
// @Description Alta de producto. Acepta multipart/form-data con imagen o JSON plano.
// @Tags productos
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 201 {object} model.Product
// @Failure 400 {object} apierror.APIError
// @Router /api/products [post]
func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindFormAndValidate(c, &req) {
		return
	}

	product, err := h.svc.Create(c.Request.Context(), req, imageFile(c))
	if err != nil {
		writeProductError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// Update godoc
// @Summary Actualizar producto
// @Description Modifica un producto. La imagen solo se reemplaza cuando llega un archivo o URL nueva.
// @Tags productos
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del producto"
// @Success 200 {object} model.Product
// @Failure 404 {object} apierror.APIError
// @Router /api/products/{id} [put]
func (h *ProductsHandler) Update(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
	if !bindFormAndValidate(c, &req) {
		return
	}

	product, err := h.svc.Update(c.Request.Context(), id, req, imageFile(c))
	if err != nil {
		writeProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Delete godoc
// @Summary Eliminar producto
// @Tags productos
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del producto"
// @Success 200 {object} map[string]string
// @Failure 404 {object} apierror.APIError
// @Router /api/products/{id} [delete]
func (h *ProductsHandler) Delete(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al eliminar producto"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Producto eliminado"})
}
