package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/omicronventa13-glitch/omicron-backend/internal/dto"
	"github.com/omicronventa13-glitch/omicron-backend/internal/model"
	"github.com/omicronventa13-glitch/omicron-backend/internal/repository"
	"github.com/omicronventa13-glitch/omicron-backend/internal/service"
)

var folioPattern = regexp.MustCompile(`^T-\d{6}-\d{3}$`)

func seedProduct(t *testing.T, repo *stubProductRepo, stock int) primitive.ObjectID {
	t.Helper()
	p := &model.Product{
		Model:    "iPhone 13",
		Brand:    "Apple",
		Category: "Telefonia",
		Stock:    stock,
		Price:    decimal.NewFromInt(8500),
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p.ID
}

func ticketRequest(productID string, qty int) dto.CreateTicketRequest {
	return dto.CreateTicketRequest{
		Seller:        "Vendedor",
		PaymentMethod: "efectivo",
		Total:         decimal.NewFromInt(8500),
		Items: []dto.TicketItemRequest{
			{
				ProductID: productID,
				Product:   "iPhone 13",
				Brand:     "Apple",
				Qty:       qty,
				Price:     decimal.NewFromInt(8500),
				Total:     decimal.NewFromInt(8500),
			},
		},
	}
}

func TestCreateTicketDecrementsStock(t *testing.T) {
	tickets := newStubTicketRepo()
	products := newStubProductRepo()
	pid := seedProduct(t, products, 10)
	svc := service.NewTicketService(tickets, products)

	ticket, err := svc.CreateTicket(context.Background(), ticketRequest(pid.Hex(), 3))
	require.NoError(t, err)

	assert.Equal(t, model.TicketActive, ticket.Status)
	assert.Regexp(t, folioPattern, ticket.Folio)
	assert.False(t, ticket.ID.IsZero())

	p, err := products.FindByID(context.Background(), pid)
	require.NoError(t, err)
	assert.Equal(t, 7, p.Stock)
}

func TestCreateTicketSkipsFreeFormItems(t *testing.T) {
	tickets := newStubTicketRepo()
	products := newStubProductRepo()
	pid := seedProduct(t, products, 10)
	svc := service.NewTicketService(tickets, products)

	req := ticketRequest("", 2) // no catalog reference
	_, err := svc.CreateTicket(context.Background(), req)
	require.NoError(t, err)

	p, err := products.FindByID(context.Background(), pid)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Stock, "free-form items must not touch stock")
}

func TestCreateTicketMalformedProductRef(t *testing.T) {
	tickets := newStubTicketRepo()
	products := newStubProductRepo()
	seedProduct(t, products, 10)
	svc := service.NewTicketService(tickets, products)

	ticket, err := svc.CreateTicket(context.Background(), ticketRequest("not-an-object-id", 2))
	require.NoError(t, err, "a malformed reference is skipped, not fatal")
	assert.Equal(t, model.TicketActive, ticket.Status)
}

func TestCreateTicketRetriesFolioCollision(t *testing.T) {
	tickets := newStubTicketRepo()
	tickets.duplicateInserts = 2
	products := newStubProductRepo()
	pid := seedProduct(t, products, 5)
	svc := service.NewTicketService(tickets, products)

	ticket, err := svc.CreateTicket(context.Background(), ticketRequest(pid.Hex(), 1))
	require.NoError(t, err, "two collisions still leave one attempt")
	assert.Regexp(t, folioPattern, ticket.Folio)
}

func TestCreateTicketGivesUpAfterRepeatedCollisions(t *testing.T) {
	tickets := newStubTicketRepo()
	tickets.duplicateInserts = 3
	products := newStubProductRepo()
	pid := seedProduct(t, products, 5)
	svc := service.NewTicketService(tickets, products)

	_, err := svc.CreateTicket(context.Background(), ticketRequest(pid.Hex(), 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)

	p, findErr := products.FindByID(context.Background(), pid)
	require.NoError(t, findErr)
	assert.Equal(t, 5, p.Stock, "failed insert must not touch stock")
}

func TestCreateTicketStockFailureIsBestEffort(t *testing.T) {
	tickets := newStubTicketRepo()
	products := newStubProductRepo()
	good := seedProduct(t, products, 10)
	bad := seedProduct(t, products, 10)
	products.failAdjust[bad] = errors.New("write conflict")
	svc := service.NewTicketService(tickets, products)

	req := ticketRequest(good.Hex(), 2)
	req.Items = append(req.Items, dto.TicketItemRequest{
		ProductID: bad.Hex(),
		Product:   "Funda silicona",
		Qty:       1,
		Price:     decimal.NewFromInt(150),
		Total:     decimal.NewFromInt(150),
	})

	ticket, err := svc.CreateTicket(context.Background(), req)
	require.NoError(t, err, "a failed decrement must not fail the sale")
	assert.Equal(t, model.TicketActive, ticket.Status)

	p, err := products.FindByID(context.Background(), good)
	require.NoError(t, err)
	assert.Equal(t, 8, p.Stock, "other items still get their decrement")
}

func TestCreateTicketAllowsNegativeStock(t *testing.T) {
	tickets := newStubTicketRepo()
	products := newStubProductRepo()
	pid := seedProduct(t, products, 1)
	svc := service.NewTicketService(tickets, products)

	_, err := svc.CreateTicket(context.Background(), ticketRequest(pid.Hex(), 3))
	require.NoError(t, err)

	p, err := products.FindByID(context.Background(), pid)
	require.NoError(t, err)
	assert.Equal(t, -2, p.Stock, "overselling is allowed and visible")
}

func TestCancelTicketRestoresStock(t *testing.T) {
	tickets := newStubTicketRepo()
	products := newStubProductRepo()
	pid := seedProduct(t, products, 10)
	svc := service.NewTicketService(tickets, products)

	ticket, err := svc.CreateTicket(context.Background(), ticketRequest(pid.Hex(), 3))
	require.NoError(t, err)

	cancelled, err := svc.CancelTicket(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TicketCancelled, cancelled.Status)

	p, err := products.FindByID(context.Background(), pid)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Stock)

	stored, err := tickets.FindByID(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TicketCancelled, stored.Status)
}

func TestCancelTicketTwiceFails(t *testing.T) {
	tickets := newStubTicketRepo()
	products := newStubProductRepo()
	pid := seedProduct(t, products, 10)
	svc := service.NewTicketService(tickets, products)

	ticket, err := svc.CreateTicket(context.Background(), ticketRequest(pid.Hex(), 3))
	require.NoError(t, err)

	_, err = svc.CancelTicket(context.Background(), ticket.ID)
	require.NoError(t, err)

	_, err = svc.CancelTicket(context.Background(), ticket.ID)
	assert.ErrorIs(t, err, service.ErrTicketCancelled)

	p, err := products.FindByID(context.Background(), pid)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Stock, "a rejected second cancel must not restock again")
}

func TestCancelTicketNotFound(t *testing.T) {
	svc := service.NewTicketService(newStubTicketRepo(), newStubProductRepo())

	_, err := svc.CancelTicket(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, service.ErrTicketNotFound)
}

func TestGetTicketNotFound(t *testing.T) {
	svc := service.NewTicketService(newStubTicketRepo(), newStubProductRepo())

	_, err := svc.GetTicket(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, service.ErrTicketNotFound)
}
