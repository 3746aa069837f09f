package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"teampulse/internal/model"
)

// AnswerRepo handles MongoDB operations for check-in answers. The
// analytical engine consumes it through FetchAnswers only; answers are
// never updated or deleted once written.
type AnswerRepo interface {
	Create(ctx context.Context, answer *model.Answer) error
	CreateMany(ctx context.Context, answers []*model.Answer) error
	// FetchAnswers returns a user's answers in [start, end), ordered by
	// creation time ascending.
	FetchAnswers(ctx context.Context, userID string, start, end time.Time) ([]model.Answer, error)
	LastAnswerTime(ctx context.Context, userID string) (*time.Time, error)
}

type answerRepo struct {
	collection *mongo.Collection
}

// NewAnswerRepo creates a new answer repository
func NewAnswerRepo(db *mongo.Database) AnswerRepo {
	return &answerRepo{
		collection: db.Collection("answers"),
	}
}

func (r *answerRepo) Create(ctx context.Context, answer *model.Answer) error {
	if answer.CreatedAt.IsZero() {
		answer.CreatedAt = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, answer)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		answer.ID = oid.Hex()
	}
	return nil
}

func (r *answerRepo) CreateMany(ctx context.Context, answers []*model.Answer) error {
	if len(answers) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(answers))
	now := time.Now().UTC()
	for _, a := range answers {
		if a.CreatedAt.IsZero() {
			a.CreatedAt = now
		}
		docs = append(docs, a)
	}

	result, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return err
	}
	for i, id := range result.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok && i < len(answers) {
			answers[i].ID = oid.Hex()
		}
	}
	return nil
}

func (r *answerRepo) FetchAnswers(ctx context.Context, userID string, start, end time.Time) ([]model.Answer, error) {
	filter := bson.M{
		"userId": userID,
		"createdAt": bson.M{
			"$gte": start,
			"$lt":  end,
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var answers []model.Answer
	if err := cursor.All(ctx, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepo) LastAnswerTime(ctx context.Context, userID string) (*time.Time, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var answer model.Answer
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}, opts).Decode(&answer)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &answer.CreatedAt, nil
}
