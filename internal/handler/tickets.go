package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omicronventa13-glitch/omicron-backend/internal/apierror"
	"github.com/omicronventa13-glitch/omicron-backend/internal/dto"
	"github.com/omicronventa13-glitch/omicron-backend/internal/service"
)

type TicketsHandler struct{ svc service.TicketService }

func NewTicketsHandler(svc service.TicketService) *TicketsHandler {
	return &TicketsHandler{svc: svc}
}

// Create godoc
// @Summary Registrar venta
// @Description Crea un ticket de venta, genera el folio y descuenta stock de los productos vendidos.
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateTicketRequest true "Detalle de la venta"
// @Success 201 {object} model.Ticket
// @Failure 400 {object} apierror.APIError
// @Router /api/tickets [post]
func (h *TicketsHandler) Create(c *gin.Context) {
	var req dto.CreateTicketRequest
	if !bindAndValidate(c, &req) {
		return
	}

	ticket, err := h.svc.CreateTicket(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// List godoc
// @Summary Listar tickets
// @Description Retorna todos los tickets, más recientes primero.
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Ticket
// @Router /api/tickets [get]
func (h *TicketsHandler) List(c *gin.Context) {
	tickets, err := h.svc.ListTickets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar tickets"))
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// Get godoc
// @Summary Consultar ticket
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del ticket"
// @Success 200 {object} model.Ticket
// @Failure 404 {object} apierror.APIError
// @Router /api/tickets/{id} [get]
func (h *TicketsHandler) Get(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	ticket, err := h.svc.GetTicket(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar ticket"))
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// Cancel godoc
// @Summary Cancelar ticket
// @Description Marca el ticket como cancelado y devuelve el stock de los productos vendidos.
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID del ticket"
// @Success 200 {object} dto.CancelTicketResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/tickets/{id}/cancel [put]
func (h *TicketsHandler) Cancel(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}

	ticket, err := h.svc.CancelTicket(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTicketNotFound):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		case errors.Is(err, service.ErrTicketCancelled):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("Error al cancelar ticket"))
		}
		return
	}
	c.JSON(http.StatusOK, dto.CancelTicketResponse{Message: "Ticket cancelado y stock devuelto", Ticket: ticket})
}
