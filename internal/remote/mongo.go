package remote

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"recipely/internal/config"
)

type MongoClient struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoConnection(c *config.Config) (*MongoClient, error) {
	uri := c.GetMongoURI()
	clientOptions := options.Client().ApplyURI(uri)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoClient{
		Client:   client,
		Database: client.Database(c.MongoDB.Database),
	}, nil
}

func (mc *MongoClient) Close(ctx context.Context) error {
	return mc.Client.Disconnect(ctx)
}

// MongoStore implements RemoteStore over two collections: one document per
// synced record, plus a share-link lookup collection.
type MongoStore struct {
	records *mongo.Collection
	shares  *mongo.Collection
}

func NewMongoStore(mongoClient *MongoClient) *MongoStore {
	return &MongoStore{
		records: mongoClient.Database.Collection("sync_records"),
		shares:  mongoClient.Database.Collection("share_links"),
	}
}

// CreateOrUpdate upserts the record guarded by its version token. A version
// mismatch means the remote record changed underneath the caller and
// surfaces as a conflict, never as a silent overwrite.
func (s *MongoStore) CreateOrUpdate(ctx context.Context, record *Record) error {
	if record.Version == 0 {
		insert := *record
		insert.Version = 1
		_, err := s.records.InsertOne(ctx, &insert)
		if err == nil {
			record.Version = 1
			return nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return NewError(CodeConflict, fmt.Errorf("record %s already exists remotely", record.ID))
		}
		return translateMongoError(err)
	}

	filter := bson.M{"_id": record.ID, "version": record.Version}
	update := bson.M{
		"$set": bson.M{
			"type":       record.Type,
			"updated_at": record.UpdatedAt,
			"fields":     record.Fields,
		},
		"$inc": bson.M{"version": 1},
	}

	result, err := s.records.UpdateOne(ctx, filter, update)
	if err != nil {
		return translateMongoError(err)
	}
	if result.MatchedCount == 0 {
		return NewError(CodeConflict, fmt.Errorf("record %s changed remotely since version %d", record.ID, record.Version))
	}
	record.Version++
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, record *Record) error {
	// Deleting an already-deleted record is not an error: the outcome the
	// caller asked for holds either way.
	_, err := s.records.DeleteOne(ctx, bson.M{"_id": record.ID})
	if err != nil {
		return translateMongoError(err)
	}
	return nil
}

func (s *MongoStore) Fetch(ctx context.Context, predicate Predicate) ([]*Record, error) {
	filter := bson.M{}
	if predicate.Type != "" {
		filter["type"] = predicate.Type
	}
	if predicate.UserID != "" {
		filter["$or"] = bson.A{
			bson.M{"fields.from_user_id": predicate.UserID},
			bson.M{"fields.to_user_id": predicate.UserID},
			bson.M{"fields.user_id": predicate.UserID},
		}
	}

	cursor, err := s.records.Find(ctx, filter)
	if err != nil {
		return nil, translateMongoError(err)
	}
	defer cursor.Close(ctx)

	var records []*Record
	for cursor.Next(ctx) {
		var record Record
		if err := cursor.Decode(&record); err != nil {
			// A malformed document fails its own decode only; the rest of
			// the batch still comes through.
			log.Printf("skipping malformed remote record: %v", err)
			continue
		}
		records = append(records, &record)
	}
	if err := cursor.Err(); err != nil {
		return nil, translateMongoError(err)
	}

	return records, nil
}

func (s *MongoStore) FetchShareMetadata(ctx context.Context, shareURL string) (*ShareMetadata, error) {
	var metadata ShareMetadata
	err := s.shares.FindOne(ctx, bson.M{"url": shareURL}).Decode(&metadata)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrShareNotFound
	}
	if err != nil {
		return nil, translateMongoError(err)
	}
	return &metadata, nil
}

// translateMongoError maps driver failures onto the closed remote error
// enum so the operation queue can decide retriability exhaustively.
func translateMongoError(err error) error {
	if err == nil {
		return nil
	}

	if mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return NewError(CodeTimeout, err)
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		// 13 Unauthorized, 18 AuthenticationFailed
		if cmdErr.Code == 13 || cmdErr.Code == 18 {
			return NewError(CodeNotAuthenticated, err)
		}
	}

	if mongo.IsNetworkError(err) || errors.Is(err, mongo.ErrClientDisconnected) {
		return NewError(CodeNetworkUnavailable, err)
	}

	return NewError(CodeNetworkUnavailable, err)
}
