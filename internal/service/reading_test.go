package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Suriyaprakashm14/BPTracker-Backend-Project/internal/model"
)

func measurements(systolic, diastolic string) model.ReadingRequest {
	return model.ReadingRequest{
		Systolic:  json.Number(systolic),
		Diastolic: json.Number(diastolic),
	}
}

func TestSubmitAndHistoryRoundTrip(t *testing.T) {
	_, readings, _ := newTestServices(t)
	ctx := context.Background()
	before := time.Now().UTC().Truncate(time.Second)

	reading, err := readings.Submit(ctx, 1, measurements("120", "80"))
	if err != nil {
		t.Fatalf("Submit() unexpected error: %v", err)
	}
	if reading.ID == 0 {
		t.Fatal("Submit() did not assign an id")
	}
	if reading.CreatedAt.Before(before) {
		t.Errorf("Submit() created_at %v is before request start %v", reading.CreatedAt, before)
	}

	second, err := readings.Submit(ctx, 1, measurements("118", "76"))
	if err != nil {
		t.Fatalf("Submit() unexpected error: %v", err)
	}

	history, err := readings.History(ctx, 1)
	if err != nil {
		t.Fatalf("History() unexpected error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("History() returned %d entries, want 2", len(history))
	}
	if history[0].ID != second.ID {
		t.Errorf("History() newest entry id = %d, want %d", history[0].ID, second.ID)
	}
	if history[0].Systolic != 118 || history[0].Diastolic != 76 {
		t.Errorf("History() newest entry = %d/%d, want 118/76", history[0].Systolic, history[0].Diastolic)
	}
	if history[1].Systolic != 120 || history[1].Diastolic != 80 {
		t.Errorf("History() oldest entry = %d/%d, want 120/80", history[1].Systolic, history[1].Diastolic)
	}
}

func TestSubmitInvalidMeasurements(t *testing.T) {
	_, readings, _ := newTestServices(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  model.ReadingRequest
	}{
		{"missing both", model.ReadingRequest{}},
		{"missing diastolic", model.ReadingRequest{Systolic: "120"}},
		{"fractional systolic", measurements("120.5", "80")},
		{"non-numeric diastolic", measurements("120", "abc")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := readings.Submit(ctx, 1, tc.req); !errors.Is(err, ErrInvalidMeasurement) {
				t.Errorf("Submit() error = %v, want ErrInvalidMeasurement", err)
			}
		})
	}

	// No write may have happened on any of the rejected inputs.
	history, err := readings.History(ctx, 1)
	if err != nil {
		t.Fatalf("History() unexpected error: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("History() after rejected submits returned %d entries, want 0", len(history))
	}
}

func TestUpdatePreservesCreatedAt(t *testing.T) {
	_, readings, _ := newTestServices(t)
	ctx := context.Background()

	created, err := readings.Submit(ctx, 1, measurements("120", "80"))
	if err != nil {
		t.Fatalf("Submit() unexpected error: %v", err)
	}

	if err := readings.Update(ctx, 1, created.ID, measurements("118", "76")); err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}

	history, err := readings.History(ctx, 1)
	if err != nil {
		t.Fatalf("History() unexpected error: %v", err)
	}
	if history[0].ID != created.ID {
		t.Errorf("Update() changed the reading id from %d to %d", created.ID, history[0].ID)
	}
	if history[0].Systolic != 118 || history[0].Diastolic != 76 {
		t.Errorf("Update() values = %d/%d, want 118/76", history[0].Systolic, history[0].Diastolic)
	}
	if !history[0].CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("Update() changed created_at from %v to %v", created.CreatedAt, history[0].CreatedAt)
	}
}

func TestUpdateInvalidMeasurement(t *testing.T) {
	_, readings, _ := newTestServices(t)
	ctx := context.Background()

	created, err := readings.Submit(ctx, 1, measurements("120", "80"))
	if err != nil {
		t.Fatalf("Submit() unexpected error: %v", err)
	}

	err = readings.Update(ctx, 1, created.ID, measurements("not-a-number", "80"))
	if !errors.Is(err, ErrInvalidMeasurement) {
		t.Fatalf("Update() error = %v, want ErrInvalidMeasurement", err)
	}

	history, _ := readings.History(ctx, 1)
	if history[0].Systolic != 120 {
		t.Errorf("rejected Update() modified the reading: systolic = %d", history[0].Systolic)
	}
}

func TestUpdateAndDeleteForeignReading(t *testing.T) {
	_, readings, _ := newTestServices(t)
	ctx := context.Background()

	// User 2 owns the reading; user 1 attacks it.
	created, err := readings.Submit(ctx, 2, measurements("135", "90"))
	if err != nil {
		t.Fatalf("Submit() unexpected error: %v", err)
	}

	if err := readings.Update(ctx, 1, created.ID, measurements("110", "70")); !errors.Is(err, ErrReadingNotFound) {
		t.Errorf("Update() foreign reading error = %v, want ErrReadingNotFound", err)
	}
	if err := readings.Delete(ctx, 1, created.ID); !errors.Is(err, ErrReadingNotFound) {
		t.Errorf("Delete() foreign reading error = %v, want ErrReadingNotFound", err)
	}

	// A plainly nonexistent id must be indistinguishable from the above.
	if err := readings.Update(ctx, 1, 9999, measurements("110", "70")); !errors.Is(err, ErrReadingNotFound) {
		t.Errorf("Update() unknown id error = %v, want ErrReadingNotFound", err)
	}

	history, err := readings.History(ctx, 2)
	if err != nil {
		t.Fatalf("History() unexpected error: %v", err)
	}
	if len(history) != 1 || history[0].Systolic != 135 {
		t.Error("foreign update/delete attempts disturbed the owner's reading")
	}
}

func TestDeleteRemovesFromHistory(t *testing.T) {
	_, readings, _ := newTestServices(t)
	ctx := context.Background()

	created, err := readings.Submit(ctx, 1, measurements("120", "80"))
	if err != nil {
		t.Fatalf("Submit() unexpected error: %v", err)
	}

	if err := readings.Delete(ctx, 1, created.ID); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}

	history, err := readings.History(ctx, 1)
	if err != nil {
		t.Fatalf("History() unexpected error: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("History() after delete returned %d entries, want 0", len(history))
	}
}
