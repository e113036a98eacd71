package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tradely/database"
	"tradely/models"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	businesses *mongo.Collection
	services   *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database("tradely")
	return &MongoCatalogRepo{
		businesses: db.Collection("businesses"),
		services:   db.Collection("services"),
	}
}

func (r *MongoCatalogRepo) GetBusinessByID(id string) (*models.Business, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var business models.Business
	filter := bson.M{"id": id}
	if err := r.businesses.FindOne(ctx, filter).Decode(&business); err != nil {
		return nil, fmt.Errorf("failed to fetch business with id %s: %w", id, err)
	}
	if err := business.Validate(); err != nil {
		return nil, fmt.Errorf("business %s failed configuration validation: %w", id, err)
	}
	return &business, nil
}

func (r *MongoCatalogRepo) GetServicesByIDs(businessID string, serviceIDs []string) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"businessId": businessID, "id": bson.M{"$in": serviceIDs}}
	cursor, err := r.services.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services for business %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services for business %s: %w", businessID, err)
	}
	for i := range services {
		if err := services[i].Validate(); err != nil {
			return nil, fmt.Errorf("service failed configuration validation: %w", err)
		}
	}
	return services, nil
}
