package model

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ticket states. Cancelled is terminal: a cancelled ticket is never deleted
// and can never be cancelled again.
const (
	TicketActive    = "active"
	TicketCancelled = "cancelled"
)

// TicketItem is a denormalized sale line. ProductID is the hex id of the
// catalog product when the line was sold from stock; it is empty for
// free-form lines, which are excluded from stock reconciliation.
type TicketItem struct {
	ProductID string          `bson:"productId,omitempty" json:"productId,omitempty"`
	Product   string          `bson:"product" json:"product"`
	Brand     string          `bson:"brand,omitempty" json:"brand,omitempty"`
	Qty       int             `bson:"qty" json:"qty"`
	Price     decimal.Decimal `bson:"price" json:"price"`
	Discount  decimal.Decimal `bson:"discount" json:"discount"`
	Total     decimal.Decimal `bson:"total" json:"total"`
}

// Ticket is a point-of-sale receipt. Folio carries a unique index.
type Ticket struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Folio         string             `bson:"folio" json:"folio"`
	Total         decimal.Decimal    `bson:"total" json:"total"`
	PaymentMethod string             `bson:"paymentMethod" json:"paymentMethod"`
	Seller        string             `bson:"seller" json:"seller"`
	Status        string             `bson:"status" json:"status"`
	Items         []TicketItem       `bson:"items" json:"items"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
