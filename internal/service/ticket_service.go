package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/omicronventa13-glitch/omicron-backend/internal/dto"
	"github.com/omicronventa13-glitch/omicron-backend/internal/model"
	"github.com/omicronventa13-glitch/omicron-backend/internal/repository"
)

var (
	ErrTicketNotFound  = errors.New("Ticket no encontrado")
	ErrTicketCancelled = errors.New("El ticket ya está cancelado")
)

type TicketService interface {
	CreateTicket(ctx context.Context, req dto.CreateTicketRequest) (*model.Ticket, error)
	CancelTicket(ctx context.Context, id primitive.ObjectID) (*model.Ticket, error)
	GetTicket(ctx context.Context, id primitive.ObjectID) (*model.Ticket, error)
	ListTickets(ctx context.Context) ([]model.Ticket, error)
}

type ticketService struct {
	tickets  repository.TicketRepository
	products repository.ProductRepository
}

func NewTicketService(tickets repository.TicketRepository, products repository.ProductRepository) TicketService {
	return &ticketService{tickets: tickets, products: products}
}

// folioAttempts bounds the retry loop on folio collision. The random suffix
// makes a second collision within one millisecond already unlikely; three
// strikes means something else is wrong.
const folioAttempts = 3

// newTicketFolio builds "T-<ms suffix>-<random>". Uniqueness is not assumed
// here: it is enforced by the unique index on folio plus the insert retry.
func newTicketFolio() string {
	ms := time.Now().UnixMilli()
	return fmt.Sprintf("T-%06d-%03d", ms%1_000_000, rand.IntN(1000))
}

// ── CreateTicket ─────────────────────────────────────────────────────────────
// Contract:
//  1. persist the ticket as active under a store-unique folio;
//  2. then decrement stock per line item carrying a product reference.
//
// The stock pass is best-effort per item: a failed decrement is logged and
// does not roll back the ticket or the other items. The only atomicity is the
// store's per-document $inc (see AdjustStock).
func (s *ticketService) CreateTicket(ctx context.Context, req dto.CreateTicketRequest) (*model.Ticket, error) {
	items := make([]model.TicketItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, model.TicketItem{
			ProductID: it.ProductID,
			Product:   it.Product,
			Brand:     it.Brand,
			Qty:       it.Qty,
			Price:     it.Price,
			Discount:  it.Discount,
			Total:     it.Total,
		})
	}

	ticket := &model.Ticket{
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,
		Seller:        req.Seller,
		Status:        model.TicketActive,
		Items:         items,
		CreatedAt:     time.Now().UTC(),
	}

	var insertErr error
	for attempt := 0; attempt < folioAttempts; attempt++ {
		ticket.Folio = newTicketFolio()
		insertErr = s.tickets.Insert(ctx, ticket)
		if !errors.Is(insertErr, repository.ErrDuplicateKey) {
			break
		}
	}
	if insertErr != nil {
		return nil, insertErr
	}

	s.adjustStock(ctx, ticket, -1)
	return ticket, nil
}

// ── CancelTicket ─────────────────────────────────────────────────────────────
// Cancellation is terminal and not idempotent: a second attempt is an error
// and must not touch stock again.
func (s *ticketService) CancelTicket(ctx context.Context, id primitive.ObjectID) (*model.Ticket, error) {
	ticket, err := s.tickets.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	if ticket.Status == model.TicketCancelled {
		return nil, ErrTicketCancelled
	}

	// Restore stock first, mirroring the decrement at sale time.
	s.adjustStock(ctx, ticket, +1)

	if err := s.tickets.SetCancelled(ctx, ticket.ID); err != nil {
		return nil, err
	}
	ticket.Status = model.TicketCancelled
	return ticket, nil
}

// adjustStock applies sign*qty to every line item that references a catalog
// product. Failures are logged per item and swallowed: partial application is
// an accepted limitation of the design.
func (s *ticketService) adjustStock(ctx context.Context, ticket *model.Ticket, sign int) {
	for _, item := range ticket.Items {
		if item.ProductID == "" {
			continue
		}
		pid, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			log.Warn().Str("folio", ticket.Folio).Str("product_id", item.ProductID).
				Msg("skipping stock adjustment: malformed product reference")
			continue
		}
		if err := s.products.AdjustStock(ctx, pid, sign*item.Qty); err != nil {
			log.Warn().Err(err).Str("folio", ticket.Folio).Str("product_id", item.ProductID).
				Int("qty", sign*item.Qty).Msg("stock adjustment failed")
		}
	}
}

func (s *ticketService) GetTicket(ctx context.Context, id primitive.ObjectID) (*model.Ticket, error) {
	ticket, err := s.tickets.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTicketNotFound
	}
	return ticket, err
}

func (s *ticketService) ListTickets(ctx context.Context) ([]model.Ticket, error) {
	return s.tickets.List(ctx)
}
