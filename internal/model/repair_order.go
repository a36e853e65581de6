package model

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Unlock methods registered when a device is received for repair.
const (
	UnlockPattern  = "pattern"
	UnlockPassword = "password"
	UnlockNone     = "none"
)

// Device describes the unit left for repair. Fields default to "N/A" when the
// intake form omits them.
type Device struct {
	Brand string `bson:"brand" json:"brand"`
	Model string `bson:"model" json:"model"`
	Color string `bson:"color" json:"color"`
}

// RepairOrder is a device-repair work order. Folio carries a unique index and
// follows the pattern REP-<timestamp>-<random>. Status is free text managed by
// the frontend ("Pendiente", "En reparación", "Entregado", ...).
type RepairOrder struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Folio        string             `bson:"folio" json:"folio"`
	ClientName   string             `bson:"clientName" json:"clientName"`
	Phone        string             `bson:"phone" json:"phone"`
	Service      string             `bson:"service" json:"service"`
	Cost         decimal.Decimal    `bson:"cost" json:"cost"`
	DownPayment  decimal.Decimal    `bson:"downPayment" json:"downPayment"`
	DeliveryDate *time.Time         `bson:"deliveryDate,omitempty" json:"deliveryDate,omitempty"`
	Comments     string             `bson:"comments,omitempty" json:"comments,omitempty"`
	Status       string             `bson:"status" json:"status"`
	Device       Device             `bson:"device" json:"device"`

	UnlockType string `bson:"unlockType" json:"unlockType"`
	UnlockCode string `bson:"unlockCode,omitempty" json:"unlockCode,omitempty"`

	EvidencePhotos  []string   `bson:"evidencePhotos" json:"evidencePhotos"`
	ClientSignature string     `bson:"clientSignature,omitempty" json:"clientSignature,omitempty"`
	ClosedAt        *time.Time `bson:"closedAt,omitempty" json:"closedAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
