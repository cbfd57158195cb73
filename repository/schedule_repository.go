package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/config"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/models"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/apperror"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/dateutil"
)

type scheduleRepository struct {
	collection *mongo.Collection
}

func NewScheduleRepository(db *mongo.Database) ScheduleRepository {
	return &scheduleRepository{collection: db.Collection(config.ScheduleCollection)}
}

func monthDateBounds(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return dateutil.FormatDate(first), dateutil.FormatDate(last)
}

func (r *scheduleRepository) FindByDate(ctx context.Context, date string) (*models.ScheduleEntry, error) {
	var entry models.ScheduleEntry
	err := r.collection.FindOne(ctx, bson.M{"_id": date}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Storage(fmt.Sprintf("failed to find schedule entry %s", date), err)
	}
	return &entry, nil
}

func (r *scheduleRepository) FindMonth(ctx context.Context, year int, month time.Month) ([]models.ScheduleEntry, error) {
	first, last := monthDateBounds(year, month)
	filter := bson.M{"date": bson.M{"$gte": first, "$lte": last}}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperror.Storage("failed to list schedule month", err)
	}
	defer cursor.Close(ctx)

	var entries []models.ScheduleEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, apperror.Storage("failed to decode schedule entries", err)
	}
	if entries == nil {
		entries = []models.ScheduleEntry{}
	}
	return entries, nil
}

func (r *scheduleRepository) Save(ctx context.Context, entry *models.ScheduleEntry) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": entry.ID}, entry, opts); err != nil {
		return apperror.Storage(fmt.Sprintf("failed to save schedule entry %s", entry.ID), err)
	}
	return nil
}

// ReplaceMonth swaps the whole month inside a single transaction so a
// generation run is all-or-nothing.
func (r *scheduleRepository) ReplaceMonth(ctx context.Context, year int, month time.Month, entries []models.ScheduleEntry) error {
	session, err := r.collection.Database().Client().StartSession()
	if err != nil {
		return apperror.Storage("failed to start storage session", err)
	}
	defer session.EndSession(ctx)

	first, last := monthDateBounds(year, month)
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		filter := bson.M{"date": bson.M{"$gte": first, "$lte": last}}
		if _, err := r.collection.DeleteMany(sc, filter); err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			return nil, nil
		}
		docs := make([]interface{}, len(entries))
		for i := range entries {
			docs[i] = entries[i]
		}
		if _, err := r.collection.InsertMany(sc, docs); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return apperror.Storage(fmt.Sprintf("failed to replace schedule month %s", dateutil.MonthKey(year, month)), err)
	}
	return nil
}
