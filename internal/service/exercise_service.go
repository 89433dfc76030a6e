package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/repository"
	"fitgen/workout-service/internal/storage"
)

const MaxExercisesPerPage = 500

// ExercisePage is one page of the active catalog.
type ExercisePage struct {
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PerPage   int               `json:"per_page"`
	Exercises []domain.Exercise `json:"exercises"`
}

// VideoUpload describes where a client should PUT an exercise video.
type VideoUpload struct {
	UploadURL   string    `json:"upload_url"`
	ObjectKey   string    `json:"object_key"`
	ContentType string    `json:"content_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type ExerciseService interface {
	ListExercises(ctx context.Context, filter domain.ExerciseFilter, page, perPage int) (*ExercisePage, error)
	GetExercise(ctx context.Context, exerciseID string) (*domain.Exercise, error)
	UpdateExercise(ctx context.Context, exerciseID string, update domain.ExerciseUpdate) (*domain.Exercise, error)
	CreateVideoUploadURL(ctx context.Context, exerciseID, contentType string) (*VideoUpload, error)
	GetVideoURL(ctx context.Context, exerciseID string) (string, error)
}

type exerciseService struct {
	exerciseRepo  repository.ExerciseRepository
	fileStorage   storage.FileStorage // nil when no bucket is configured
	presignExpiry time.Duration
}

// NewExerciseService creates a new instance of exerciseService. fileStorage
// may be nil, in which case video operations return storage.ErrStorageDisabled.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, fileStorage storage.FileStorage, presignExpiry time.Duration) ExerciseService {
	if presignExpiry <= 0 {
		presignExpiry = storage.DefaultPresignedURLExpiry
	}
	return &exerciseService{
		exerciseRepo:  exerciseRepo,
		fileStorage:   fileStorage,
		presignExpiry: presignExpiry,
	}
}

func (s *exerciseService) ListExercises(ctx context.Context, filter domain.ExerciseFilter, page, perPage int) (*ExercisePage, error) {
	if err := validatePaging(page, perPage, MaxExercisesPerPage); err != nil {
		return nil, err
	}
	if filter.Level != "" && !filter.Level.IsValid() {
		return nil, invalid("level", fmt.Sprintf("must be one of %v", domain.Levels))
	}

	exercises, total, err := s.exerciseRepo.List(ctx, filter, page, perPage)
	if err != nil {
		return nil, err
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	return &ExercisePage{Total: total, Page: page, PerPage: perPage, Exercises: exercises}, nil
}

func (s *exerciseService) GetExercise(ctx context.Context, exerciseID string) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// UpdateExercise applies admin edits. Inactive exercises can be edited too,
// which is how they get reactivated.
func (s *exerciseService) UpdateExercise(ctx context.Context, exerciseID string, update domain.ExerciseUpdate) (*domain.Exercise, error) {
	if update.IsEmpty() {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, ErrNoUpdateFields)
	}
	if update.VideoDurationSeconds != nil && *update.VideoDurationSeconds < 0 {
		return nil, invalid("video_duration_seconds", "must not be negative")
	}

	exercise, err := s.exerciseRepo.Update(ctx, exerciseID, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	log.Infof("exercise %s updated", exerciseID)
	return exercise, nil
}

func (s *exerciseService) CreateVideoUploadURL(ctx context.Context, exerciseID, contentType string) (*VideoUpload, error) {
	if s.fileStorage == nil {
		return nil, storage.ErrStorageDisabled
	}
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	subtype, ok := strings.CutPrefix(contentType, "video/")
	subtype, _, _ = strings.Cut(subtype, ";")
	subtype = strings.TrimSpace(subtype)
	if !ok || subtype == "" {
		return nil, invalid("content_type", "must be a video/* media type")
	}
	if _, err := s.GetExercise(ctx, exerciseID); err != nil {
		return nil, err
	}

	key := storage.VideoObjectKey(exerciseID, uuid.NewString(), videoExtension(subtype))
	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, key, contentType, s.presignExpiry)
	if err != nil {
		return nil, err
	}
	return &VideoUpload{
		UploadURL:   uploadURL,
		ObjectKey:   key,
		ContentType: contentType,
		ExpiresAt:   time.Now().UTC().Add(s.presignExpiry),
	}, nil
}

// GetVideoURL returns a playable URL for the exercise video: external URLs as
// stored, bucket keys as presigned GET URLs.
func (s *exerciseService) GetVideoURL(ctx context.Context, exerciseID string) (string, error) {
	exercise, err := s.GetExercise(ctx, exerciseID)
	if err != nil {
		return "", err
	}
	if exercise.VideoURL == nil || *exercise.VideoURL == "" {
		return "", ErrVideoNotFound
	}

	ref := *exercise.VideoURL
	if storage.IsExternalURL(ref) {
		return ref, nil
	}
	if s.fileStorage == nil {
		return "", storage.ErrStorageDisabled
	}
	return s.fileStorage.GeneratePresignedDownloadURL(ctx, ref, s.presignExpiry)
}

func videoExtension(subtype string) string {
	switch subtype {
	case "quicktime":
		return "mov"
	case "x-matroska":
		return "mkv"
	case "x-msvideo":
		return "avi"
	}
	// mp4, webm, ogg, mpeg ... are their own extension
	return strings.TrimPrefix(subtype, "x-")
}
