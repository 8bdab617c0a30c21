package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymtrack/internal/gymtrack/charts"
	"github.com/2beens/gymtrack/internal/telemetry/metrics"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=progress_test

var ErrWorkoutExerciseNotFound = errors.New("workout exercise not found")

type progressRepo interface {
	Add(ctx context.Context, entry Entry) (*Entry, error)
	Last(ctx context.Context, ownerID, workoutExerciseID uuid.UUID) (*Entry, error)
	List(ctx context.Context, params ListParams) ([]Entry, error)
	Update(ctx context.Context, entry Entry) (*Entry, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type ownershipChecker interface {
	WorkoutExerciseOwnedBy(ctx context.Context, ownerID, id uuid.UUID) (bool, error)
}

// Recorded is an entry together with the target for the next session.
type Recorded struct {
	Entry      Entry      `json:"entry"`
	Suggestion Suggestion `json:"suggestion"`
}

type Service struct {
	repo           progressRepo
	ownership      ownershipChecker
	metricsManager *metrics.Manager
	nowFunc        func() time.Time
}

func NewService(repo progressRepo, ownership ownershipChecker, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		ownership:      ownership,
		metricsManager: metricsManager,
		nowFunc:        time.Now,
	}
}

func (s *Service) ensureOwned(ctx context.Context, ownerID, workoutExerciseID uuid.UUID) error {
	owned, err := s.ownership.WorkoutExerciseOwnedBy(ctx, ownerID, workoutExerciseID)
	if err != nil {
		return fmt.Errorf("check workout exercise owner: %w", err)
	}
	if !owned {
		return ErrWorkoutExerciseNotFound
	}
	return nil
}

// Record stores a new entry dated today and returns it with the suggestion
// for the next session, computed from the latest stored entry.
func (s *Service) Record(ctx context.Context, ownerID uuid.UUID, params RecordParams) (_ *Recorded, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.record")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := params.Validate(); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("workout_exercise.id", params.WorkoutExerciseID.String()))

	if err := s.ensureOwned(ctx, ownerID, params.WorkoutExerciseID); err != nil {
		return nil, err
	}

	now := s.nowFunc().UTC()
	rpe := params.Technique.RPE()
	added, err := s.repo.Add(ctx, Entry{
		ID:                uuid.New(),
		OwnerID:           ownerID,
		WorkoutExerciseID: params.WorkoutExerciseID,
		Date:              Today(now),
		Weight:            params.Weight,
		Reps:              params.Reps,
		Sets:              params.Sets,
		RPE:               &rpe,
		Notes:             params.Notes,
		CreatedAt:         now,
	})
	if err != nil {
		return nil, fmt.Errorf("add progress entry: %w", err)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterProgressRecorded.Inc()
	}

	last, err := s.repo.Last(ctx, ownerID, params.WorkoutExerciseID)
	if err != nil {
		return nil, fmt.Errorf("read last progress entry: %w", err)
	}
	if last.ID != added.ID {
		// an entry with the same date was stored concurrently
		log.Debugf("progress %s: last entry is %s, not the one just recorded", params.WorkoutExerciseID, last.ID)
	}

	suggestion := Suggest(*last)
	span.SetAttributes(attribute.Bool("suggestion", suggestion.HasSuggestion))
	return &Recorded{
		Entry:      *added,
		Suggestion: suggestion,
	}, nil
}

// Last returns the latest entry of the workout exercise, with the suggestion for the next session.
func (s *Service) Last(ctx context.Context, ownerID, workoutExerciseID uuid.UUID) (_ *Recorded, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.last")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	last, err := s.repo.Last(ctx, ownerID, workoutExerciseID)
	if err != nil {
		return nil, err
	}
	return &Recorded{
		Entry:      *last,
		Suggestion: Suggest(*last),
	}, nil
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID, workoutExerciseID *uuid.UUID) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.List(ctx, ListParams{
		OwnerID:           ownerID,
		WorkoutExerciseID: workoutExerciseID,
	})
}

func (s *Service) Chart(ctx context.Context, ownerID, workoutExerciseID uuid.UUID, metric ChartMetric) (_ *charts.Series, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.chart")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("metric", string(metric)))

	entries, err := s.repo.List(ctx, ListParams{
		OwnerID:           ownerID,
		WorkoutExerciseID: &workoutExerciseID,
	})
	if err != nil {
		return nil, err
	}

	series := BuildChart(entries, metric)
	return &series, nil
}

func (s *Service) Update(ctx context.Context, ownerID, id uuid.UUID, params EntryParams) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	if err := params.Validate(); err != nil {
		return nil, err
	}

	rpe := params.Technique.RPE()
	return s.repo.Update(ctx, Entry{
		ID:      id,
		OwnerID: ownerID,
		Weight:  params.Weight,
		Reps:    params.Reps,
		Sets:    params.Sets,
		RPE:     &rpe,
		Notes:   params.Notes,
	})
}

func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	return s.repo.Delete(ctx, ownerID, id)
}
