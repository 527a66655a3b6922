package mongodb

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kabarettimpro/theater-api/internal/domain/content"
	"github.com/kabarettimpro/theater-api/internal/logger"
)

// MongoOwnerRepository implements OwnerRepository backed by the owner collection
type MongoOwnerRepository struct {
	coll *mongo.Collection
	log  *log.Logger
}

func NewOwnerRepository(db *mongo.Database) *MongoOwnerRepository {
	return &MongoOwnerRepository{
		coll: db.Collection(content.Owner{}.CollectionName()),
		log:  logger.Repository("owner"),
	}
}

func (r *MongoOwnerRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *MongoOwnerRepository) Insert(ctx context.Context, owner *content.Owner) error {
	if owner.CreatedAt.IsZero() {
		owner.CreatedAt = time.Now().UTC()
	}

	res, err := r.coll.InsertOne(ctx, owner)
	if err != nil {
		r.log.Error("Failed to insert owner document", "error", err)
		return err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		owner.ID = oid
	}
	return nil
}

// All returns every owner document in natural insertion order
func (r *MongoOwnerRepository) All(ctx context.Context) ([]*content.Owner, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		r.log.Error("Failed to fetch owner documents", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var owners []*content.Owner
	if err := cursor.All(ctx, &owners); err != nil {
		r.log.Error("Failed to decode owner documents", "error", err)
		return nil, err
	}

	return owners, nil
}
