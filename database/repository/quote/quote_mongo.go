package quoteRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tradely/database"
	"tradely/models"
)

// MongoQuoteRepo implements QuoteRepository using MongoDB.
type MongoQuoteRepo struct {
	coll *mongo.Collection
}

// NewMongoQuoteRepo creates a new instance of QuoteRepository using MongoDB.
func NewMongoQuoteRepo() QuoteRepository {
	coll := database.MongoClient.Database("tradely").Collection("quotes")
	return &MongoQuoteRepo{coll: coll}
}

func (r *MongoQuoteRepo) Insert(quote *models.Quote) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, quote); err != nil {
		return fmt.Errorf("failed to insert quote %s: %w", quote.Reference, err)
	}
	return nil
}

func (r *MongoQuoteRepo) GetByReference(reference string) (*models.Quote, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var quote models.Quote
	filter := bson.M{"reference": reference}
	if err := r.coll.FindOne(ctx, filter).Decode(&quote); err != nil {
		return nil, fmt.Errorf("failed to fetch quote with reference %s: %w", reference, err)
	}
	return &quote, nil
}
