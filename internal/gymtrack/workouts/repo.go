package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrWorkoutNotFound         = errors.New("workout not found")
	ErrWorkoutExerciseNotFound = errors.New("workout exercise not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const (
	workoutColumns = `id, owner_id, name, day_of_week, description, is_active, created_at, updated_at`

	workoutExerciseSelect = `SELECT we.id, we.workout_id, we.exercise_id, e.name, e.muscle_group,
		we.sets, we.reps, we.rest_time, we.order_number, we.notes, we.created_at
		FROM workout_exercise we
			JOIN exercise e ON e.id = we.exercise_id
			JOIN workout w ON w.id = we.workout_id`
)

func scanWorkout(row pgx.Row) (*Workout, error) {
	var w Workout
	if err := row.Scan(
		&w.ID, &w.OwnerID, &w.Name, &w.DayOfWeek, &w.Description, &w.IsActive, &w.CreatedAt, &w.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("scan workout: %w", err)
	}
	return &w, nil
}

func scanWorkoutExercise(row pgx.Row) (*WorkoutExercise, error) {
	var we WorkoutExercise
	if err := row.Scan(
		&we.ID, &we.WorkoutID, &we.ExerciseID, &we.ExerciseName, &we.MuscleGroup,
		&we.Sets, &we.Reps, &we.RestTime, &we.OrderNumber, &we.Notes, &we.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutExerciseNotFound
		}
		return nil, fmt.Errorf("scan workout exercise: %w", err)
	}
	return &we, nil
}

func collectWorkoutExercises(rows pgx.Rows) ([]WorkoutExercise, error) {
	defer rows.Close()

	var workoutExercises []WorkoutExercise
	for rows.Next() {
		we, err := scanWorkoutExercise(rows)
		if err != nil {
			return nil, err
		}
		workoutExercises = append(workoutExercises, *we)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return workoutExercises, nil
}

func (r *Repo) CreateWorkout(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.createWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	created, err := scanWorkout(r.db.QueryRow(
		ctx,
		`INSERT INTO workout (id, owner_id, name, day_of_week, description, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+workoutColumns,
		workout.ID, workout.OwnerID, workout.Name, workout.DayOfWeek,
		workout.Description, workout.IsActive, workout.CreatedAt, workout.UpdatedAt,
	))
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("workout.id", created.ID.String()))
	return created, nil
}

// AddWorkoutExercises inserts all children of a workout in one batch.
// A referenced exercise that does not exist is reported as a validation error.
func (r *Repo) AddWorkoutExercises(ctx context.Context, workoutExercises []WorkoutExercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addWorkoutExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout_exercises.count", len(workoutExercises)))

	if len(workoutExercises) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, we := range workoutExercises {
		batch.Queue(
			`INSERT INTO workout_exercise (id, workout_id, exercise_id, sets, reps, rest_time, order_number, notes, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			we.ID, we.WorkoutID, we.ExerciseID, we.Sets, we.Reps, we.RestTime, we.OrderNumber, we.Notes, we.CreatedAt,
		)
	}

	return r.execBatch(ctx, batch, len(workoutExercises), "insert workout exercise")
}

// UpdateWorkoutExercises updates the children in place, in one batch.
func (r *Repo) UpdateWorkoutExercises(ctx context.Context, workoutExercises []WorkoutExercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.updateWorkoutExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout_exercises.count", len(workoutExercises)))

	if len(workoutExercises) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, we := range workoutExercises {
		batch.Queue(
			`UPDATE workout_exercise
				SET exercise_id = $1, sets = $2, reps = $3, rest_time = $4, order_number = $5, notes = $6
				WHERE id = $7 AND workout_id = $8`,
			we.ExerciseID, we.Sets, we.Reps, we.RestTime, we.OrderNumber, we.Notes, we.ID, we.WorkoutID,
		)
	}

	return r.execBatch(ctx, batch, len(workoutExercises), "update workout exercise")
}

func (r *Repo) execBatch(ctx context.Context, batch *pgx.Batch, count int, action string) (err error) {
	results := r.db.SendBatch(ctx, batch)
	defer func() {
		if closeErr := results.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close batch: %w", closeErr)
		}
	}()

	for i := 0; i < count; i++ {
		if _, err := results.Exec(); err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				return pkg.NewValidationError("exercise #%d references an unknown exercise", i+1)
			}
			return fmt.Errorf("%s #%d: %w", action, i+1, err)
		}
	}
	return nil
}

func (r *Repo) GetWorkout(ctx context.Context, ownerID, id uuid.UUID) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	workout, err := scanWorkout(r.db.QueryRow(
		ctx,
		`SELECT `+workoutColumns+` FROM workout WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	))
	if err != nil {
		return nil, err
	}

	workout.Exercises, err = r.ListWorkoutExercises(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return workout, nil
}

// ListWorkouts returns all workouts of the owner, each with its exercises.
func (r *Repo) ListWorkouts(ctx context.Context, ownerID uuid.UUID) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listWorkouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", ownerID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+workoutColumns+` FROM workout WHERE owner_id = $1 ORDER BY created_at`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}

	var workouts []Workout
	byID := make(map[uuid.UUID]int)
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		byID[w.ID] = len(workouts)
		workouts = append(workouts, *w)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(workouts) == 0 {
		return workouts, nil
	}

	childRows, err := r.db.Query(
		ctx,
		workoutExerciseSelect+` WHERE w.owner_id = $1 ORDER BY we.workout_id, we.order_number`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	children, err := collectWorkoutExercises(childRows)
	if err != nil {
		return nil, err
	}
	for _, we := range children {
		if i, ok := byID[we.WorkoutID]; ok {
			workouts[i].Exercises = append(workouts[i].Exercises, we)
		}
	}

	span.SetAttributes(attribute.Int("workouts.count", len(workouts)))
	return workouts, nil
}

func (r *Repo) UpdateWorkout(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.updateWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", workout.ID.String()))

	return scanWorkout(r.db.QueryRow(
		ctx,
		`UPDATE workout SET name = $1, day_of_week = $2, description = $3, is_active = $4, updated_at = $5
			WHERE id = $6 AND owner_id = $7
		RETURNING `+workoutColumns,
		workout.Name, workout.DayOfWeek, workout.Description, workout.IsActive, workout.UpdatedAt,
		workout.ID, workout.OwnerID,
	))
}

func (r *Repo) DeleteWorkout(ctx context.Context, ownerID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func (r *Repo) ListWorkoutExercises(ctx context.Context, ownerID, workoutID uuid.UUID) (_ []WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listWorkoutExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workoutID.String()))

	rows, err := r.db.Query(
		ctx,
		workoutExerciseSelect+` WHERE we.workout_id = $1 AND w.owner_id = $2 ORDER BY we.order_number`,
		workoutID, ownerID,
	)
	if err != nil {
		return nil, err
	}
	return collectWorkoutExercises(rows)
}

func (r *Repo) GetWorkoutExercise(ctx context.Context, ownerID, id uuid.UUID) (_ *WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getWorkoutExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	return scanWorkoutExercise(r.db.QueryRow(
		ctx,
		workoutExerciseSelect+` WHERE we.id = $1 AND w.owner_id = $2`,
		id, ownerID,
	))
}

func (r *Repo) UpdateWorkoutExercise(ctx context.Context, ownerID uuid.UUID, we WorkoutExercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.updateWorkoutExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", we.ID.String()))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_exercise SET sets = $1, reps = $2, rest_time = $3, notes = $4
			WHERE id = $5
				AND workout_id IN (SELECT id FROM workout WHERE owner_id = $6)`,
		we.Sets, we.Reps, we.RestTime, we.Notes, we.ID, ownerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutExerciseNotFound
	}
	return nil
}

// DeleteWorkoutExercises removes the given children of the owner's workouts.
// Their progress entries must be deleted before.
func (r *Repo) DeleteWorkoutExercises(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteWorkoutExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout_exercises.count", len(ids)))

	if len(ids) == 0 {
		return 0, nil
	}

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_exercise
			WHERE id = ANY($1)
				AND workout_id IN (SELECT id FROM workout WHERE owner_id = $2)`,
		ids, ownerID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// WorkoutExerciseOwnedBy reports whether the workout exercise belongs to a workout of the owner.
func (r *Repo) WorkoutExerciseOwnedBy(ctx context.Context, ownerID, id uuid.UUID) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.workoutExerciseOwnedBy")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var owned bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (
			SELECT 1 FROM workout_exercise we
				JOIN workout w ON w.id = we.workout_id
			WHERE we.id = $1 AND w.owner_id = $2
		)`,
		id, ownerID,
	).Scan(&owned); err != nil {
		return false, err
	}
	return owned, nil
}
