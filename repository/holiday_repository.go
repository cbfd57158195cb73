package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/config"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/models"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/apperror"
)

type holidayRepository struct {
	collection *mongo.Collection
}

func NewHolidayRepository(db *mongo.Database) HolidayRepository {
	return &holidayRepository{collection: db.Collection(config.HolidayCollection)}
}

func (r *holidayRepository) List(ctx context.Context) ([]models.Holiday, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperror.Storage("failed to list holidays", err)
	}
	defer cursor.Close(ctx)

	var holidays []models.Holiday
	if err := cursor.All(ctx, &holidays); err != nil {
		return nil, apperror.Storage("failed to decode holidays", err)
	}
	if holidays == nil {
		holidays = []models.Holiday{}
	}
	return holidays, nil
}

func (r *holidayRepository) FindByID(ctx context.Context, id string) (*models.Holiday, error) {
	var holiday models.Holiday
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&holiday)
	if err == mongo.ErrNoDocuments {
		return nil, apperror.Newf(apperror.CodeNotFound, "holiday %s not found", id)
	}
	if err != nil {
		return nil, apperror.Storage("failed to find holiday", err)
	}
	return &holiday, nil
}

func (r *holidayRepository) Create(ctx context.Context, holiday *models.Holiday) error {
	if _, err := r.collection.InsertOne(ctx, holiday); err != nil {
		return apperror.Storage("failed to create holiday", err)
	}
	return nil
}

func (r *holidayRepository) Update(ctx context.Context, holiday *models.Holiday) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": holiday.ID}, holiday)
	if err != nil {
		return apperror.Storage("failed to update holiday", err)
	}
	if result.MatchedCount == 0 {
		return apperror.Newf(apperror.CodeNotFound, "holiday %s not found", holiday.ID)
	}
	return nil
}

func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperror.Storage("failed to delete holiday", err)
	}
	if result.DeletedCount == 0 {
		return apperror.Newf(apperror.CodeNotFound, "holiday %s not found", id)
	}
	return nil
}
