package config

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names of the document store.
const (
	EmployeeCollection     = "employees"
	HolidayCollection      = "holidays"
	VacationCollection     = "vacations"
	ScheduleCollection     = "schedule"
	RotationMetaCollection = "rotationMeta"
)

// MongoConnect opens and pings the MongoDB client.
func MongoConnect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	return client, nil
}
