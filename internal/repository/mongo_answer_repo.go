package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"interviewai/internal/model"
)

type mongoAnswerRepo struct {
	collection *mongo.Collection
}

// NewMongoAnswerRepo stores answer records in the "answers" collection.
func NewMongoAnswerRepo(db *mongo.Database) AnswerRepo {
	return &mongoAnswerRepo{collection: db.Collection("answers")}
}

func (r *mongoAnswerRepo) Save(ctx context.Context, rec *model.AnswerRecord) error {
	if rec.EvaluatedAt.IsZero() {
		rec.EvaluatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, rec)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		rec.ID = oid.Hex()
	}
	return nil
}

func (r *mongoAnswerRepo) ListBySession(ctx context.Context, sessionID string) ([]*model.AnswerRecord, error) {
	opts := options.Find().SetSort(bson.M{"questionIndex": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"sessionId": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.AnswerRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
