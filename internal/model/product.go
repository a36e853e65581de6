package model

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categorias válidas para productos. El frontend muestra exactamente esta lista.
var ProductCategories = []string{"Fundas", "Cargadores", "Cables", "Accesorios", "Telefonia", "Computo"}

// Product is a catalog item. Stock is mutated both by direct edits and by
// ticket sale/cancellation; a sale may drive it negative (backorder).
type Product struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Model    string             `bson:"model" json:"model"`
	Brand    string             `bson:"brand" json:"brand"`
	Type     string             `bson:"type" json:"type"`
	Color    string             `bson:"color" json:"color"`
	Year     int                `bson:"year" json:"year"`
	Category string             `bson:"category" json:"category"`
	Stock    int                `bson:"stock" json:"stock"`
	Price    decimal.Decimal    `bson:"price" json:"price"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	// QrCode is indexed for scanner lookups at the register.
	QrCode    string    `bson:"qrCode,omitempty" json:"qrCode,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func ValidCategory(c string) bool {
	for _, cat := range ProductCategories {
		if cat == c {
			return true
		}
	}
	return false
}
