package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/config"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/models"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/apperror"
)

type rotationMetaRepository struct {
	collection *mongo.Collection
}

func NewRotationMetaRepository(db *mongo.Database) RotationMetaRepository {
	return &rotationMetaRepository{collection: db.Collection(config.RotationMetaCollection)}
}

func (r *rotationMetaRepository) Find(ctx context.Context, id string) (*models.RotationMeta, error) {
	var meta models.RotationMeta
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&meta)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Storage(fmt.Sprintf("failed to find rotation meta %s", id), err)
	}
	return &meta, nil
}

func (r *rotationMetaRepository) Save(ctx context.Context, meta *models.RotationMeta) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": meta.ID}, meta, opts); err != nil {
		return apperror.Storage(fmt.Sprintf("failed to save rotation meta %s", meta.ID), err)
	}
	return nil
}
