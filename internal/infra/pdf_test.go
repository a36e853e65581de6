package infra_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omicronventa13-glitch/omicron-backend/internal/infra"
	"github.com/omicronventa13-glitch/omicron-backend/internal/model"
)

func sampleOrder() *model.RepairOrder {
	delivery := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)
	return &model.RepairOrder{
		Folio:        "REP-1757000000000-42",
		ClientName:   "Juan Pérez",
		Phone:        "5512345678",
		Service:      "Cambio de pantalla",
		Cost:         decimal.NewFromInt(1500),
		DownPayment:  decimal.NewFromInt(500),
		Status:       "Pendiente",
		Device:       model.Device{Brand: "Samsung", Model: "A52", Color: "Negro"},
		UnlockType:   model.UnlockPattern,
		UnlockCode:   "1-2-3-6-9",
		CreatedAt:    time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC),
		DeliveryDate: &delivery,
	}
}

func TestGenerateRepairPDF(t *testing.T) {
	pdf, err := infra.GenerateRepairPDF(sampleOrder())
	require.NoError(t, err)

	require.Greater(t, len(pdf), 100)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestGenerateRepairPDFWithoutUnlock(t *testing.T) {
	order := sampleOrder()
	order.UnlockType = model.UnlockNone
	order.UnlockCode = ""
	order.DeliveryDate = nil

	pdf, err := infra.GenerateRepairPDF(order)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
