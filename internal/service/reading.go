package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/Suriyaprakashm14/BPTracker-Backend-Project/internal/model"
	"github.com/Suriyaprakashm14/BPTracker-Backend-Project/internal/repository"
)

var (
	ErrInvalidMeasurement = errors.New("systolic and diastolic must be integers")
	ErrReadingNotFound    = errors.New("not found")
)

// ReadingService handles the blood-pressure reading lifecycle. Every
// operation acts only on readings owned by the given user; ownership is
// enforced in the repository's lookups, never as a separate permission check.
type ReadingService struct {
	repo *repository.ReadingRepository
}

// NewReadingService creates a new ReadingService.
func NewReadingService(repo *repository.ReadingRepository) *ReadingService {
	return &ReadingService{repo: repo}
}

// Submit records a new reading for the user. The measurement fields must be
// plain integers; anything else is rejected before any write happens.
// created_at is stamped here with the server's current UTC time.
func (s *ReadingService) Submit(ctx context.Context, userID int64, req model.ReadingRequest) (model.Reading, error) {
	systolic, diastolic, err := parseMeasurements(req)
	if err != nil {
		return model.Reading{}, err
	}

	reading := model.Reading{
		UserID:    userID,
		Systolic:  systolic,
		Diastolic: diastolic,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	if err := s.repo.Create(ctx, &reading); err != nil {
		return model.Reading{}, err
	}

	return reading, nil
}

// Update changes the measurement values of one of the user's readings. The
// original created_at is preserved. A reading that does not exist and a
// reading owned by somebody else both come back as ErrReadingNotFound.
func (s *ReadingService) Update(ctx context.Context, userID, readingID int64, req model.ReadingRequest) error {
	systolic, diastolic, err := parseMeasurements(req)
	if err != nil {
		return err
	}

	if err := s.repo.Update(ctx, userID, readingID, systolic, diastolic); err != nil {
		if errors.Is(err, repository.ErrReadingNotFound) {
			return ErrReadingNotFound
		}
		return err
	}

	return nil
}

// Delete removes one of the user's readings, with the same ownership-scoped
// miss semantics as Update.
func (s *ReadingService) Delete(ctx context.Context, userID, readingID int64) error {
	err := s.repo.Delete(ctx, userID, readingID)
	if errors.Is(err, repository.ErrReadingNotFound) {
		return ErrReadingNotFound
	}
	return err
}

// History returns all the user's readings, newest insertion first.
func (s *ReadingService) History(ctx context.Context, userID int64) ([]model.ReadingResponse, error) {
	readings, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return readingsToResponse(readings), nil
}

// parseMeasurements validates the two measurement fields as base-10 integers.
// json.Number carries the raw token, so "120.5" and a missing field both fail
// here rather than being silently coerced.
func parseMeasurements(req model.ReadingRequest) (systolic, diastolic int, err error) {
	systolic, err = parseMeasurement(req.Systolic)
	if err != nil {
		return 0, 0, ErrInvalidMeasurement
	}

	diastolic, err = parseMeasurement(req.Diastolic)
	if err != nil {
		return 0, 0, ErrInvalidMeasurement
	}

	return systolic, diastolic, nil
}

func parseMeasurement(n json.Number) (int, error) {
	v, err := strconv.ParseInt(n.String(), 10, 64)
	return int(v), err
}

// readingsToResponse converts a slice of Reading to a slice of ReadingResponse.
func readingsToResponse(readings []model.Reading) []model.ReadingResponse {
	result := make([]model.ReadingResponse, len(readings))
	for i, r := range readings {
		result[i] = model.ReadingResponse{
			ID:        r.ID,
			Systolic:  r.Systolic,
			Diastolic: r.Diastolic,
			CreatedAt: r.CreatedAt,
		}
	}
	return result
}
