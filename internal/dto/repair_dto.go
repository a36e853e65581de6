package dto

import "github.com/shopspring/decimal"

// Repair intake arrives as multipart/form-data (photos + signature travel in
// the same request). The frontend sends device sub-fields either nested
// ("device[brand]") or flattened ("brand"); both are accepted, nested wins.

type CreateRepairRequest struct {
	ClientName   string          `form:"clientName"`
	Phone        string          `form:"phone"`
	Service      string          `form:"service"`
	Cost         decimal.Decimal `form:"cost"`
	DownPayment  decimal.Decimal `form:"downPayment"`
	DeliveryDate string          `form:"deliveryDate"` // YYYY-MM-DD, optional
	Comments     string          `form:"comments"`
	Status       string          `form:"status"`

	DeviceBrand string `form:"device[brand]"`
	DeviceModel string `form:"device[model]"`
	DeviceColor string `form:"device[color]"`
	Brand       string `form:"brand"`
	Model       string `form:"model"`
	Color       string `form:"color"`

	UnlockType string `form:"unlockType" validate:"omitempty,oneof=pattern password none"`
	UnlockCode string `form:"unlockCode"`
}

// UpdateRepairRequest is the fully-enumerated update shape: only the listed
// fields can change, nothing is taken from the raw form map. New evidence
// photos replace the stored sequence wholesale.
type UpdateRepairRequest struct {
	ClientName   string           `form:"clientName"`
	Phone        string           `form:"phone"`
	Service      string           `form:"service"`
	Cost         *decimal.Decimal `form:"cost"`
	DownPayment  *decimal.Decimal `form:"downPayment"`
	DeliveryDate string           `form:"deliveryDate"`
	Comments     *string          `form:"comments"`
	Status       string           `form:"status"`

	DeviceBrand string `form:"device[brand]"`
	DeviceModel string `form:"device[model]"`
	DeviceColor string `form:"device[color]"`

	UnlockType string  `form:"unlockType" validate:"omitempty,oneof=pattern password none"`
	UnlockCode *string `form:"unlockCode"`
}
