package dto

import "github.com/shopspring/decimal"

// Product forms arrive either as multipart (with an image file) or as plain
// JSON; gin's ShouldBind picks the binding from the Content-Type, so every
// field carries both tags.

type CreateProductRequest struct {
	Model    string          `form:"model"    json:"model"    validate:"required"`
	Brand    string          `form:"brand"    json:"brand"    validate:"required"`
	Type     string          `form:"type"     json:"type"     validate:"required"`
	Color    string          `form:"color"    json:"color"    validate:"required"`
	Year     int             `form:"year"     json:"year"     validate:"required"`
	Category string          `form:"category" json:"category" validate:"required,category"`
	Stock    int             `form:"stock"    json:"stock"    validate:"min=0"`
	Price    decimal.Decimal `form:"price"    json:"price"    validate:"required"`
	// Image is a ready-made URL; ignored when an image file is uploaded.
	Image  string `form:"image"  json:"image"  validate:"omitempty,url"`
	QrCode string `form:"qrCode" json:"qrCode"`
}

// UpdateProductRequest is a partial replacement: nil / empty fields keep the
// stored value. The image is replaced only when a new file or a non-empty URL
// is supplied.
type UpdateProductRequest struct {
	Model    string           `form:"model"    json:"model"`
	Brand    string           `form:"brand"    json:"brand"`
	Type     string           `form:"type"     json:"type"`
	Color    string           `form:"color"    json:"color"`
	Year     *int             `form:"year"     json:"year"`
	Category string           `form:"category" json:"category" validate:"omitempty,category"`
	Stock    *int             `form:"stock"    json:"stock"`
	Price    *decimal.Decimal `form:"price"    json:"price"`
	Image    string           `form:"image"    json:"image"    validate:"omitempty,url"`
	QrCode   *string          `form:"qrCode"   json:"qrCode"`
}
