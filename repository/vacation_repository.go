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

type vacationRepository struct {
	collection *mongo.Collection
}

func NewVacationRepository(db *mongo.Database) VacationRepository {
	return &vacationRepository{collection: db.Collection(config.VacationCollection)}
}

func (r *vacationRepository) List(ctx context.Context, year int, employeeID string) ([]models.Vacation, error) {
	filter := bson.M{}
	if year != 0 {
		filter["year"] = year
	}
	if employeeID != "" {
		filter["employeeId"] = employeeID
	}

	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperror.Storage("failed to list vacations", err)
	}
	defer cursor.Close(ctx)

	var vacations []models.Vacation
	if err := cursor.All(ctx, &vacations); err != nil {
		return nil, apperror.Storage("failed to decode vacations", err)
	}
	if vacations == nil {
		vacations = []models.Vacation{}
	}
	return vacations, nil
}

func (r *vacationRepository) FindByID(ctx context.Context, id string) (*models.Vacation, error) {
	var vacation models.Vacation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&vacation)
	if err == mongo.ErrNoDocuments {
		return nil, apperror.Newf(apperror.CodeNotFound, "vacation %s not found", id)
	}
	if err != nil {
		return nil, apperror.Storage("failed to find vacation", err)
	}
	return &vacation, nil
}

func (r *vacationRepository) FindByEmployee(ctx context.Context, employeeID string) ([]models.Vacation, error) {
	return r.List(ctx, 0, employeeID)
}

func (r *vacationRepository) Create(ctx context.Context, vacation *models.Vacation) error {
	if _, err := r.collection.InsertOne(ctx, vacation); err != nil {
		return apperror.Storage("failed to create vacation", err)
	}
	return nil
}

func (r *vacationRepository) Update(ctx context.Context, vacation *models.Vacation) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": vacation.ID}, vacation)
	if err != nil {
		return apperror.Storage("failed to update vacation", err)
	}
	if result.MatchedCount == 0 {
		return apperror.Newf(apperror.CodeNotFound, "vacation %s not found", vacation.ID)
	}
	return nil
}

func (r *vacationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperror.Storage("failed to delete vacation", err)
	}
	if result.DeletedCount == 0 {
		return apperror.Newf(apperror.CodeNotFound, "vacation %s not found", id)
	}
	return nil
}
