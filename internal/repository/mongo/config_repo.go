package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/repository"
)

const configCollectionName = "system_config"

// mongoConfigRepository implements repository.ConfigRepository.
// Each configuration document is keyed by its config_type.
type mongoConfigRepository struct {
	collection *mongo.Collection
}

func NewMongoConfigRepository(db *mongo.Database) repository.ConfigRepository {
	return &mongoConfigRepository{
		collection: db.Collection(configCollectionName),
	}
}

func (r *mongoConfigRepository) GetMLConfig(ctx context.Context) (*domain.MLConfig, error) {
	var cfg domain.MLConfig
	err := r.collection.FindOne(ctx, bson.M{"config_type": domain.MLConfigType}).Decode(&cfg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *mongoConfigRepository) SaveMLConfig(ctx context.Context, cfg *domain.MLConfig) error {
	cfg.ConfigType = domain.MLConfigType
	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"config_type": domain.MLConfigType},
		cfg,
		options.Replace().SetUpsert(true),
	)
	return err
}

// EnsureConfigIndexes makes config_type unique.
func EnsureConfigIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "config_type", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("config_type_unique"),
	})
	return err
}
