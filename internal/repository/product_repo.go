package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/omicronventa13-glitch/omicron-backend/internal/infra"
	"github.com/omicronventa13-glitch/omicron-backend/internal/model"
)

type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error)
	// List returns products, optionally filtered by category ("" = all).
	List(ctx context.Context, category string) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// AdjustStock applies a per-document atomic $inc. There is no floor
	// check: selling past zero leaves a negative stock on purpose.
	AdjustStock(ctx context.Context, id primitive.ObjectID, delta int) error
}

type productRepo struct{ col *mongo.Collection }

func NewProductRepository(db *mongo.Database) ProductRepository {
	return &productRepo{col: db.Collection(infra.ColProducts)}
}

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return translate(err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = id
	}
	return nil
}

func (r *productRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	var p model.Product
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	return &p, translate(err)
}

func (r *productRepo) List(ctx context.Context, category string) ([]model.Product, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var products []model.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepo) AdjustStock(ctx context.Context, id primitive.ObjectID, delta int) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"stock": delta}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
