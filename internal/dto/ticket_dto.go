package dto

import (
	"github.com/shopspring/decimal"

	"github.com/omicronventa13-glitch/omicron-backend/internal/model"
)

// TicketItemRequest is one sale line. ProductID is the hex id of a catalog
// product; lines without it are sold free-form and skip stock reconciliation.
type TicketItemRequest struct {
	ProductID string          `json:"productId" validate:"omitempty,len=24,hexadecimal"`
	Product   string          `json:"product"   validate:"required"`
	Brand     string          `json:"brand"`
	Qty       int             `json:"qty"       validate:"required,min=1"`
	Price     decimal.Decimal `json:"price"     validate:"min=0"`
	Discount  decimal.Decimal `json:"discount"  validate:"min=0"`
	Total     decimal.Decimal `json:"total"     validate:"min=0"`
}

type CreateTicketRequest struct {
	Seller        string              `json:"seller"        validate:"required"`
	PaymentMethod string              `json:"paymentMethod" validate:"required"`
	Total         decimal.Decimal     `json:"total"         validate:"required"`
	Items         []TicketItemRequest `json:"items"         validate:"required,min=1,dive"`
}

// CancelTicketResponse mirrors the original API: a confirmation message plus
// the updated ticket.
type CancelTicketResponse struct {
	Message string        `json:"message"`
	Ticket  *model.Ticket `json:"ticket"`
}
