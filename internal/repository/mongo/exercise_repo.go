package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/repository"
)

const exerciseCollectionName = "dataset"

// mongoExerciseRepository implements repository.ExerciseRepository
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new Exercise repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

// exerciseQuery translates a filter into a bson query over active exercises.
func exerciseQuery(f domain.ExerciseFilter) bson.M {
	query := bson.M{"is_active": true}
	if len(f.BodyParts) > 0 {
		query["body_part"] = bson.M{"$in": f.BodyParts}
	}
	if len(f.Equipment) > 0 {
		query["equipment"] = bson.M{"$in": f.Equipment}
	}
	if f.Level != "" {
		query["level"] = f.Level
	}
	if len(f.Types) > 0 {
		query["type"] = bson.M{"$in": f.Types}
	}
	return query
}

// Find retrieves active exercises matching filter, best rated first.
func (r *mongoExerciseRepository) Find(ctx context.Context, filter domain.ExerciseFilter, limit int) ([]domain.Exercise, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "title", Value: 1}})
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, exerciseQuery(filter), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var exercises []domain.Exercise
	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// GetByID retrieves an active exercise by its ID.
func (r *mongoExerciseRepository) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	var exercise domain.Exercise
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "is_active": true}).Decode(&exercise)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// List pages through active exercises ordered by title.
func (r *mongoExerciseRepository) List(ctx context.Context, filter domain.ExerciseFilter, page, perPage int) ([]domain.Exercise, int64, error) {
	query := exerciseQuery(filter)
	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "title", Value: 1}}).
		SetSkip(int64((page - 1) * perPage)).
		SetLimit(int64(perPage))
	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	exercises := []domain.Exercise{}
	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, 0, err
	}
	return exercises, total, nil
}

// Upsert replaces the exercise with the same ID, or inserts it.
// created_at is only written on insert.
func (r *mongoExerciseRepository) Upsert(ctx context.Context, exercise *domain.Exercise) (bool, error) {
	now := time.Now().UTC()
	exercise.UpdatedAt = now

	update := bson.M{
		"$set": bson.M{
			"title":       exercise.Title,
			"description": exercise.Description,
			"type":        exercise.Type,
			"body_part":   exercise.BodyPart,
			"equipment":   exercise.Equipment,
			"level":       exercise.Level,
			"rating":      exercise.Rating,
			"rating_desc": exercise.RatingDesc,
			"met_value":   exercise.METValue,
			"is_active":   exercise.IsActive,
			"updated_at":  now,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": exercise.ID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, err
	}
	return result.UpsertedCount > 0, nil
}

// Update applies admin edits and returns the updated document.
func (r *mongoExerciseRepository) Update(ctx context.Context, id string, upd domain.ExerciseUpdate) (*domain.Exercise, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.VideoURL != nil {
		set["video_url"] = *upd.VideoURL
	}
	if upd.VideoDurationSeconds != nil {
		set["video_duration_seconds"] = *upd.VideoDurationSeconds
	}
	if upd.IsActive != nil {
		set["is_active"] = *upd.IsActive
	}

	var exercise domain.Exercise
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&exercise)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// EnsureExerciseIndexes creates necessary indexes for the dataset collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// Cascade queries: body part first, then equipment and level
			Keys: bson.D{
				{Key: "body_part", Value: 1},
				{Key: "equipment", Value: 1},
				{Key: "level", Value: 1},
			},
			Options: options.Index().SetName("selection_lookup"),
		},
		{
			Keys:    bson.D{{Key: "type", Value: 1}, {Key: "level", Value: 1}},
			Options: options.Index().SetName("type_level"),
		},
		{
			Keys:    bson.D{{Key: "title", Value: 1}},
			Options: options.Index().SetName("title"),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
