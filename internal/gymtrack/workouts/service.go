package workouts

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	CreateWorkout(ctx context.Context, workout Workout) (*Workout, error)
	AddWorkoutExercises(ctx context.Context, workoutExercises []WorkoutExercise) error
	UpdateWorkoutExercises(ctx context.Context, workoutExercises []WorkoutExercise) error
	GetWorkout(ctx context.Context, ownerID, id uuid.UUID) (*Workout, error)
	ListWorkouts(ctx context.Context, ownerID uuid.UUID) ([]Workout, error)
	UpdateWorkout(ctx context.Context, workout Workout) (*Workout, error)
	DeleteWorkout(ctx context.Context, ownerID, id uuid.UUID) error
	GetWorkoutExercise(ctx context.Context, ownerID, id uuid.UUID) (*WorkoutExercise, error)
	UpdateWorkoutExercise(ctx context.Context, ownerID uuid.UUID, we WorkoutExercise) error
	DeleteWorkoutExercises(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (int64, error)
}

// progressCleaner removes progress entries logged against workout exercises,
// which has to happen before the workout exercises themselves are deleted.
type progressCleaner interface {
	DeleteByWorkoutExercises(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (int64, error)
}

// exerciseVisibility tells which of the given catalog exercises the user may use:
// public ones and the user's own suggestions.
type exerciseVisibility interface {
	VisibleIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)
}

type Service struct {
	repo      workoutsRepo
	progress  progressCleaner
	exercises exerciseVisibility
	nowFunc   func() time.Time
}

func NewService(repo workoutsRepo, progress progressCleaner, exercises exerciseVisibility) *Service {
	return &Service{
		repo:      repo,
		progress:  progress,
		exercises: exercises,
		nowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func newWorkoutExercise(workoutID uuid.UUID, orderNumber int, params ExerciseParams, now time.Time) WorkoutExercise {
	return WorkoutExercise{
		ID:          uuid.New(),
		WorkoutID:   workoutID,
		ExerciseID:  params.ExerciseID,
		Sets:        params.Sets,
		Reps:        params.Reps,
		RestTime:    params.RestTime,
		OrderNumber: orderNumber,
		Notes:       params.Notes,
		CreatedAt:   now,
	}
}

// Create stores the workout, then all its exercises in one batch.
// If the exercises fail to store, the workout itself stays.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, params WorkoutParams) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := params.Validate(); err != nil {
		return nil, err
	}
	for i, e := range params.Exercises {
		if e.ID != nil {
			return nil, pkg.NewValidationError("exercise #%d: id not allowed on create", i+1)
		}
	}
	if err := s.checkExercisesVisible(ctx, ownerID, params.Exercises); err != nil {
		return nil, err
	}

	now := s.nowFunc()
	created, err := s.repo.CreateWorkout(ctx, Workout{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        params.Name,
		DayOfWeek:   params.DayOfWeek,
		Description: params.Description,
		IsActive:    params.active(),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}
	span.SetAttributes(attribute.String("workout.id", created.ID.String()))

	children := make([]WorkoutExercise, 0, len(params.Exercises))
	for i, e := range params.Exercises {
		children = append(children, newWorkoutExercise(created.ID, i+1, e, now))
	}
	if err := s.repo.AddWorkoutExercises(ctx, children); err != nil {
		return nil, fmt.Errorf("add exercises to workout %s: %w", created.ID, err)
	}

	log.Debugf("workout %s created with %d exercises", created.ID, len(children))
	return s.repo.GetWorkout(ctx, ownerID, created.ID)
}

func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.GetWorkout(ctx, ownerID, id)
}

// List returns the owner's workouts ordered through the week, monday first.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workouts, err := s.repo.ListWorkouts(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(workouts, func(i, j int) bool {
		return workouts[i].DayOfWeek.weekIndex() < workouts[j].DayOfWeek.weekIndex()
	})
	return workouts, nil
}

type exercisesDiff struct {
	toDelete []uuid.UUID
	toUpdate []WorkoutExercise
	toInsert []WorkoutExercise
}

// diffExercises matches the submitted list against the current children:
// entries with a known id are updated, entries without id are inserted,
// and current children missing from the list are deleted.
func diffExercises(workoutID uuid.UUID, current []WorkoutExercise, submitted []ExerciseParams, now time.Time) (exercisesDiff, error) {
	var diff exercisesDiff

	existing := make(map[uuid.UUID]WorkoutExercise, len(current))
	for _, we := range current {
		existing[we.ID] = we
	}

	kept := make(map[uuid.UUID]bool)
	for i, e := range submitted {
		if e.ID == nil {
			diff.toInsert = append(diff.toInsert, newWorkoutExercise(workoutID, i+1, e, now))
			continue
		}

		we, ok := existing[*e.ID]
		if !ok {
			return exercisesDiff{}, pkg.NewValidationError("exercise #%d: unknown workout exercise %s", i+1, e.ID)
		}
		kept[we.ID] = true
		we.ExerciseID = e.ExerciseID
		we.Sets = e.Sets
		we.Reps = e.Reps
		we.RestTime = e.RestTime
		we.OrderNumber = i + 1
		we.Notes = e.Notes
		diff.toUpdate = append(diff.toUpdate, we)
	}

	for _, we := range current {
		if !kept[we.ID] {
			diff.toDelete = append(diff.toDelete, we.ID)
		}
	}

	return diff, nil
}

// Update changes the workout fields and, when exercises are given, replaces
// the workout exercises. Steps run one after another and stop at the first failure.
func (s *Service) Update(ctx context.Context, ownerID, id uuid.UUID, params WorkoutParams) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	if err := params.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetWorkout(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	now := s.nowFunc()
	var diff exercisesDiff
	if params.Exercises != nil {
		diff, err = diffExercises(id, current.Exercises, params.Exercises, now)
		if err != nil {
			return nil, err
		}
		if err := s.checkExercisesVisible(ctx, ownerID, params.Exercises); err != nil {
			return nil, err
		}
	}

	isActive := current.IsActive
	if params.IsActive != nil {
		isActive = *params.IsActive
	}
	if _, err := s.repo.UpdateWorkout(ctx, Workout{
		ID:          id,
		OwnerID:     ownerID,
		Name:        params.Name,
		DayOfWeek:   params.DayOfWeek,
		Description: params.Description,
		IsActive:    isActive,
		UpdatedAt:   now,
	}); err != nil {
		return nil, fmt.Errorf("update workout: %w", err)
	}

	if params.Exercises != nil {
		if err := s.removeWorkoutExercises(ctx, ownerID, diff.toDelete); err != nil {
			return nil, err
		}
		if err := s.repo.UpdateWorkoutExercises(ctx, diff.toUpdate); err != nil {
			return nil, fmt.Errorf("update workout exercises: %w", err)
		}
		if err := s.repo.AddWorkoutExercises(ctx, diff.toInsert); err != nil {
			return nil, fmt.Errorf("add workout exercises: %w", err)
		}
		log.Debugf(
			"workout %s exercises: %d deleted, %d updated, %d added",
			id, len(diff.toDelete), len(diff.toUpdate), len(diff.toInsert),
		)
	}

	return s.repo.GetWorkout(ctx, ownerID, id)
}

// checkExercisesVisible rejects exercises that do not exist, and private exercises of other users.
func (s *Service) checkExercisesVisible(ctx context.Context, ownerID uuid.UUID, submitted []ExerciseParams) error {
	if len(submitted) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(submitted))
	for _, e := range submitted {
		ids = append(ids, e.ExerciseID)
	}
	visibleIDs, err := s.exercises.VisibleIDs(ctx, ownerID, ids)
	if err != nil {
		return fmt.Errorf("check exercises visibility: %w", err)
	}

	visible := make(map[uuid.UUID]bool, len(visibleIDs))
	for _, id := range visibleIDs {
		visible[id] = true
	}
	for i, e := range submitted {
		if !visible[e.ExerciseID] {
			return pkg.NewValidationError("exercise #%d references an unknown exercise", i+1)
		}
	}
	return nil
}

func (s *Service) removeWorkoutExercises(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := s.progress.DeleteByWorkoutExercises(ctx, ownerID, ids); err != nil {
		return fmt.Errorf("delete progress of workout exercises: %w", err)
	}
	if _, err := s.repo.DeleteWorkoutExercises(ctx, ownerID, ids); err != nil {
		return fmt.Errorf("delete workout exercises: %w", err)
	}
	return nil
}

// Delete removes the workout with its exercises and their progress, children first.
// The workout is not touched if deleting any of its children fails.
func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	current, err := s.repo.GetWorkout(ctx, ownerID, id)
	if err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(current.Exercises))
	for _, we := range current.Exercises {
		ids = append(ids, we.ID)
	}
	if err := s.removeWorkoutExercises(ctx, ownerID, ids); err != nil {
		return err
	}

	if err := s.repo.DeleteWorkout(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}

	log.Debugf("workout %s deleted with %d exercises", id, len(ids))
	return nil
}

func (s *Service) GetWorkoutExercise(ctx context.Context, ownerID, id uuid.UUID) (_ *WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.getWorkoutExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.GetWorkoutExercise(ctx, ownerID, id)
}

func (s *Service) UpdateWorkoutExercise(ctx context.Context, ownerID, id uuid.UUID, params WorkoutExerciseParams) (_ *WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.updateWorkoutExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	if err := params.Validate(); err != nil {
		return nil, err
	}

	we, err := s.repo.GetWorkoutExercise(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	we.Sets = params.Sets
	we.Reps = params.Reps
	we.RestTime = params.RestTime
	we.Notes = params.Notes
	if err := s.repo.UpdateWorkoutExercise(ctx, ownerID, *we); err != nil {
		return nil, err
	}
	return we, nil
}

// DeleteWorkoutExercise removes the progress logged for the workout exercise, then the row.
func (s *Service) DeleteWorkoutExercise(ctx context.Context, ownerID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.deleteWorkoutExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	if _, err := s.repo.GetWorkoutExercise(ctx, ownerID, id); err != nil {
		return err
	}
	return s.removeWorkoutExercises(ctx, ownerID, []uuid.UUID{id})
}
