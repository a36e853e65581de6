package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/omicronventa13-glitch/omicron-backend/internal/infra"
	"github.com/omicronventa13-glitch/omicron-backend/internal/model"
)

type TicketRepository interface {
	// Insert persists a ticket. Returns ErrDuplicateKey when the folio is
	// already taken; the service retries with a fresh folio.
	Insert(ctx context.Context, t *model.Ticket) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Ticket, error)
	// List returns every ticket, newest first. No pagination by contract.
	List(ctx context.Context) ([]model.Ticket, error)
	SetCancelled(ctx context.Context, id primitive.ObjectID) error
}

type ticketRepo struct{ col *mongo.Collection }

func NewTicketRepository(db *mongo.Database) TicketRepository {
	return &ticketRepo{col: db.Collection(infra.ColTickets)}
}

func (r *ticketRepo) Insert(ctx context.Context, t *model.Ticket) error {
	res, err := r.col.InsertOne(ctx, t)
	if err != nil {
		return translate(err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		t.ID = id
	}
	return nil
}

func (r *ticketRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Ticket, error) {
	var t model.Ticket
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	return &t, translate(err)
}

func (r *ticketRepo) List(ctx context.Context) ([]model.Ticket, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var tickets []model.Ticket
	if err := cur.All(ctx, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *ticketRepo) SetCancelled(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"status": model.TicketCancelled}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
