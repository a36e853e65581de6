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

type RepairRepository interface {
	Insert(ctx context.Context, o *model.RepairOrder) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.RepairOrder, error)
	List(ctx context.Context) ([]model.RepairOrder, error)
	Update(ctx context.Context, o *model.RepairOrder) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type repairRepo struct{ col *mongo.Collection }

func NewRepairRepository(db *mongo.Database) RepairRepository {
	return &repairRepo{col: db.Collection(infra.ColRepairs)}
}

func (r *repairRepo) Insert(ctx context.Context, o *model.RepairOrder) error {
	res, err := r.col.InsertOne(ctx, o)
	if err != nil {
		return translate(err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		o.ID = id
	}
	return nil
}

func (r *repairRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.RepairOrder, error) {
	var o model.RepairOrder
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	return &o, translate(err)
}

func (r *repairRepo) List(ctx context.Context) ([]model.RepairOrder, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var orders []model.RepairOrder
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repairRepo) Update(ctx context.Context, o *model.RepairOrder) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": o.ID}, o)
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repairRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
