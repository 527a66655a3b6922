package mongodb

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kabarettimpro/theater-api/internal/domain/content"
	"github.com/kabarettimpro/theater-api/internal/logger"
)

// MongoEventRepository implements EventRepository backed by the event collection
type MongoEventRepository struct {
	coll *mongo.Collection
	log  *log.Logger
}

func NewEventRepository(db *mongo.Database) *MongoEventRepository {
	return &MongoEventRepository{
		coll: db.Collection(content.Event{}.CollectionName()),
		log:  logger.Repository("event"),
	}
}

func (r *MongoEventRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *MongoEventRepository) Insert(ctx context.Context, event *content.Event) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	res, err := r.coll.InsertOne(ctx, event)
	if err != nil {
		r.log.Error("Failed to insert event document", "error", err)
		return err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		event.ID = oid
	}
	return nil
}

// AllByDate returns every event document sorted by date ascending
func (r *MongoEventRepository) AllByDate(ctx context.Context) ([]*content.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Error("Failed to fetch event documents", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []*content.Event
	if err := cursor.All(ctx, &events); err != nil {
		r.log.Error("Failed to decode event documents", "error", err)
		return nil, err
	}

	return events, nil
}
