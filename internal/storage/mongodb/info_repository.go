package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kabarettimpro/theater-api/internal/domain/content"
	"github.com/kabarettimpro/theater-api/internal/logger"
)

// MongoInfoRepository implements InfoRepository backed by the info collection
type MongoInfoRepository struct {
	coll *mongo.Collection
	log  *log.Logger
}

func NewInfoRepository(db *mongo.Database) *MongoInfoRepository {
	return &MongoInfoRepository{
		coll: db.Collection(content.Info{}.CollectionName()),
		log:  logger.Repository("info"),
	}
}

func (r *MongoInfoRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *MongoInfoRepository) Insert(ctx context.Context, info *content.Info) error {
	if info.CreatedAt.IsZero() {
		info.CreatedAt = time.Now().UTC()
	}

	res, err := r.coll.InsertOne(ctx, info)
	if err != nil {
		r.log.Error("Failed to insert info document", "error", err)
		return err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		info.ID = oid
	}
	return nil
}

// Latest returns the most recently created info document
func (r *MongoInfoRepository) Latest(ctx context.Context) (*content.Info, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var info content.Info
	err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&info)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to fetch info document", "error", err)
		return nil, err
	}

	return &info, nil
}
