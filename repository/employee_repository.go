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

type employeeRepository struct {
	collection *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) EmployeeRepository {
	return &employeeRepository{collection: db.Collection(config.EmployeeCollection)}
}

func (r *employeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperror.Storage("failed to list employees", err)
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, apperror.Storage("failed to decode employees", err)
	}
	if employees == nil {
		employees = []models.Employee{}
	}
	return employees, nil
}

func (r *employeeRepository) FindByID(ctx context.Context, id string) (*models.Employee, error) {
	var emp models.Employee
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&emp)
	if err == mongo.ErrNoDocuments {
		return nil, apperror.Newf(apperror.CodeNotFound, "employee %s not found", id)
	}
	if err != nil {
		return nil, apperror.Storage("failed to find employee", err)
	}
	return &emp, nil
}

func (r *employeeRepository) Create(ctx context.Context, emp *models.Employee) error {
	if _, err := r.collection.InsertOne(ctx, emp); err != nil {
		return apperror.Storage("failed to create employee", err)
	}
	return nil
}

func (r *employeeRepository) Update(ctx context.Context, emp *models.Employee) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": emp.ID}, emp)
	if err != nil {
		return apperror.Storage("failed to update employee", err)
	}
	if result.MatchedCount == 0 {
		return apperror.Newf(apperror.CodeNotFound, "employee %s not found", emp.ID)
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperror.Storage("failed to delete employee", err)
	}
	if result.DeletedCount == 0 {
		return apperror.Newf(apperror.CodeNotFound, "employee %s not found", id)
	}
	return nil
}
