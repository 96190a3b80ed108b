package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/driftwalk-api/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WalkRepo handles the persistence of walk runs. Finished runs carry
// their raster cells; listing queries project the cells away because
// they dominate document size.
type WalkRepo struct {
	collection *mongo.Collection
}

// NewWalkRepo creates a new WalkRepo with the given MongoDB client, database name, and collection name.
func NewWalkRepo(client *mongo.Client, dbName, collectionName string) *WalkRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &WalkRepo{
		collection: collection,
	}
}

// Save inserts or updates a walk run in the repository.
func (w *WalkRepo) Save(run *dmn.WalkRun) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": run.ID}
	update := bson.M{
		"$set": bson.M{
			"ownerId":     run.OwnerID,
			"rows":        run.Rows,
			"cols":        run.Cols,
			"directions":  run.Directions,
			"steps":       run.Steps,
			"revisit":     run.Revisit,
			"seed":        run.Seed,
			"status":      run.Status,
			"startRow":    run.StartRow,
			"startCol":    run.StartCol,
			"finalRow":    run.FinalRow,
			"finalCol":    run.FinalCol,
			"stuckStep":   run.StuckStep,
			"cells":       run.Cells,
			"requestedAt": run.RequestedAt,
			"finishedAt":  run.FinishedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := w.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a walk run by its ID.
// Returns an error if the run is not found or if an unexpected error occurs.
func (w *WalkRepo) ByID(id uuid.UUID) (*dmn.WalkRun, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var run dmn.WalkRun
	if err := w.collection.FindOne(ctx, filter).Decode(&run); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("walk run not found")
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &run, nil
}

// ByOwner retrieves every walk run submitted by the given user, most
// recent first, without the stored raster cells.
func (w *WalkRepo) ByOwner(ownerID uuid.UUID) ([]*dmn.WalkRun, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"ownerId": ownerID}
	opts := options.Find().
		SetSort(bson.M{"requestedAt": -1}).
		SetProjection(bson.M{"cells": 0})

	cursor, err := w.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var runs []*dmn.WalkRun
	if err := cursor.All(ctx, &runs); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return runs, nil
}
