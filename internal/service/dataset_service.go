package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"fitgen/workout-service/internal/calories"
	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/repository"
)

// maxReportedRowErrors bounds the row errors echoed back in a load result.
const maxReportedRowErrors = 20

// Accepted range of dataset ratings.
const (
	minRating = 0.0
	maxRating = 10.0
)

// Dataset columns. Any other column, like the unnamed index column of the
// public dataset export, is ignored.
const (
	colTitle      = "Title"
	colDesc       = "Desc"
	colType       = "Type"
	colBodyPart   = "BodyPart"
	colEquipment  = "Equipment"
	colLevel      = "Level"
	colRating     = "Rating"
	colRatingDesc = "RatingDesc"
)

var (
	ErrDatasetMalformed = errors.New("malformed dataset")
	ErrDatasetNotFound  = errors.New("dataset file not found")
)

// DatasetLoadResult reports the outcome of a dataset import.
type DatasetLoadResult struct {
	Total   int      `json:"total_exercises"`
	Loaded  int      `json:"loaded"`
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

type DatasetService interface {
	// LoadCSV upserts every valid row of the exercise dataset in r. Invalid
	// rows are skipped and reported; they never abort the import.
	LoadCSV(ctx context.Context, r io.Reader) (*DatasetLoadResult, error)
	// LoadFile imports the dataset at path, or the configured default path
	// when path is empty.
	LoadFile(ctx context.Context, path string) (*DatasetLoadResult, error)
}

type datasetService struct {
	exerciseRepo repository.ExerciseRepository
	defaultPath  string
}

func NewDatasetService(exerciseRepo repository.ExerciseRepository, defaultPath string) DatasetService {
	return &datasetService{exerciseRepo: exerciseRepo, defaultPath: defaultPath}
}

func (s *datasetService) LoadFile(ctx context.Context, path string) (*DatasetLoadResult, error) {
	if path == "" {
		path = s.defaultPath
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
	} else if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	log.Infof("loading exercise dataset from %s", path)
	return s.LoadCSV(ctx, f)
}

func (s *datasetService) LoadCSV(ctx context.Context, r io.Reader) (*DatasetLoadResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %w", ErrDatasetMalformed, err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	if _, ok := columns[colTitle]; !ok {
		return nil, fmt.Errorf("%w: missing %s column", ErrDatasetMalformed, colTitle)
	}

	result := &DatasetLoadResult{}
	var rowErrs error
	now := time.Now().UTC()
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result.Total++
		if err != nil {
			result.Skipped++
			rowErrs = multierr.Append(rowErrs, fmt.Errorf("line %d: %w", line, err))
			continue
		}

		exercise, err := exerciseFromRecord(record, columns, now)
		if err != nil {
			result.Skipped++
			rowErrs = multierr.Append(rowErrs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		created, err := s.exerciseRepo.Upsert(ctx, exercise)
		if err != nil {
			result.Skipped++
			rowErrs = multierr.Append(rowErrs, fmt.Errorf("line %d: store %q: %w", line, exercise.Title, err))
			continue
		}
		result.Loaded++
		if created {
			result.Created++
		}
	}

	for i, err := range multierr.Errors(rowErrs) {
		if i == maxReportedRowErrors {
			break
		}
		result.Errors = append(result.Errors, err.Error())
	}
	if rowErrs != nil {
		log.Warnf("dataset import skipped %d rows: %s", result.Skipped, rowErrs)
	}
	log.Infof("dataset import done: %d total, %d loaded (%d new), %d skipped",
		result.Total, result.Loaded, result.Created, result.Skipped)
	return result, nil
}

func exerciseFromRecord(record []string, columns map[string]int, now time.Time) (*domain.Exercise, error) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	title := field(colTitle)
	if title == "" {
		return nil, errors.New("empty title")
	}

	exerciseType := field(colType)
	if exerciseType == "" {
		exerciseType = domain.TypeStrength
	}
	level := domain.Level(field(colLevel))
	if level == "" {
		level = domain.LevelIntermediate
	}
	if !level.IsValid() {
		return nil, fmt.Errorf("unknown level %q", level)
	}

	bodyPart := field(colBodyPart)
	if bodyPart == "" {
		return nil, errors.New("missing body part")
	}
	bodyPart, ok := domain.NormalizeBodyPart(bodyPart)
	if !ok {
		return nil, fmt.Errorf("unknown body part %q", field(colBodyPart))
	}
	equipment := domain.EquipmentOther
	if raw := field(colEquipment); raw != "" {
		if equipment, ok = domain.NormalizeEquipment(raw); !ok {
			return nil, fmt.Errorf("unknown equipment %q", raw)
		}
	}

	var rating float64
	if raw := field(colRating); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("bad rating %q: %w", raw, err)
		}
		if math.IsNaN(parsed) || math.IsInf(parsed, 0) || parsed < minRating || parsed > maxRating {
			return nil, fmt.Errorf("bad rating %q: must be between 0 and 10", raw)
		}
		rating = parsed
	}

	return &domain.Exercise{
		ID:          domain.ExerciseIDFromTitle(title),
		Title:       title,
		Description: field(colDesc),
		Type:        exerciseType,
		BodyPart:    bodyPart,
		Equipment:   equipment,
		Level:       level,
		Rating:      rating,
		RatingDesc:  field(colRatingDesc),
		METValue:    calories.METValue(exerciseType, level),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
