package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/repository"
)

const exerciseLogCollectionName = "workout_history"

// mongoExerciseLogRepository implements repository.ExerciseLogRepository
type mongoExerciseLogRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseLogRepository creates the log sink backed by workout_history.
func NewMongoExerciseLogRepository(db *mongo.Database) repository.ExerciseLogRepository {
	return &mongoExerciseLogRepository{
		collection: db.Collection(exerciseLogCollectionName),
	}
}

func (r *mongoExerciseLogRepository) Append(ctx context.Context, entry *domain.ExerciseLogEntry) (string, error) {
	if entry.ID == "" {
		entry.ID = "log_" + uuid.NewString()
	}
	if _, err := r.collection.InsertOne(ctx, entry); err != nil {
		return "", err
	}
	return entry.ID, nil
}

func (r *mongoExerciseLogRepository) ListByWorkout(ctx context.Context, workoutID string) ([]domain.ExerciseLogEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "completed_at", Value: 1}})
	return r.find(ctx, bson.M{"workout_id": workoutID}, opts)
}

// MarkCompleted flips the status of every log the user wrote for the workout.
// A second call matches the same rows but modifies none.
func (r *mongoExerciseLogRepository) MarkCompleted(ctx context.Context, userID, workoutID string) (int64, error) {
	result, err := r.collection.UpdateMany(ctx,
		bson.M{"user_id": userID, "workout_id": workoutID},
		bson.M{"$set": bson.M{"workout_status": domain.WorkoutStatusCompleted}},
	)
	if err != nil {
		return 0, err
	}
	if result.MatchedCount == 0 {
		return 0, repository.ErrNotFound
	}
	return result.ModifiedCount, nil
}

func (r *mongoExerciseLogRepository) ListByUser(ctx context.Context, userID string, page, perPage int) ([]domain.ExerciseLogEntry, int64, error) {
	filter := bson.M{"user_id": userID}
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "completed_at", Value: -1}}).
		SetSkip(int64((page - 1) * perPage)).
		SetLimit(int64(perPage))
	logs, err := r.find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (r *mongoExerciseLogRepository) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]domain.ExerciseLogEntry, error) {
	filter := bson.M{"user_id": userID, "completed_at": bson.M{"$gte": since}}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "completed_at", Value: 1}}))
}

func (r *mongoExerciseLogRepository) RecentExerciseIDs(ctx context.Context, userID string, limit int) ([]string, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "completed_at", Value: -1}}).
		SetProjection(bson.M{"exercise_id": 1, "completed_at": 1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	logs, err := r.find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(logs))
	for i, e := range logs {
		ids[len(logs)-1-i] = e.ExerciseID
	}
	return ids, nil
}

func (r *mongoExerciseLogRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.ExerciseLogEntry, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	logs := []domain.ExerciseLogEntry{}
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// EnsureExerciseLogIndexes creates necessary indexes for the workout_history collection.
func EnsureExerciseLogIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "completed_at", Value: -1}},
			Options: options.Index().SetName("user_completed"),
		},
		{
			Keys:    bson.D{{Key: "workout_id", Value: 1}},
			Options: options.Index().SetName("workout"),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
