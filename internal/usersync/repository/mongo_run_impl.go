package repository

import (
	"context"
	"time"

	"usersync/internal/usersync/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRunRepository implements RunRepository using MongoDB
type MongoRunRepository struct {
	Collection *mongo.Collection
}

var _ RunRepository = (*MongoRunRepository)(nil)

func NewMongoRunRepository(db *mongo.Database, collectionName string) *MongoRunRepository {
	return &MongoRunRepository{
		Collection: db.Collection(collectionName),
	}
}

func (r *MongoRunRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "operation", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_operation_created_at"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_created_at"),
		},
	}

	_, err := r.Collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *MongoRunRepository) CreateRun(ctx context.Context, run *model.ReconcileRun) error {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	if run.ID == "" {
		run.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Collection.InsertOne(ctx, run)
	return err
}

func (r *MongoRunRepository) FindRuns(ctx context.Context, req model.GetReconcileRunsReq) ([]*model.ReconcileRun, int64, error) {
	filter := runFilter(req)

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := int64((req.Page - 1) * req.Size)

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(req.Size))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var results []*model.ReconcileRun
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

func runFilter(req model.GetReconcileRunsReq) bson.M {
	filter := bson.M{}
	if req.Operation != "" {
		filter["operation"] = req.Operation
	}
	return filter
}
