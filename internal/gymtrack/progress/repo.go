package progress

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

var ErrEntryNotFound = errors.New("progress entry not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

type ListParams struct {
	OwnerID           uuid.UUID
	WorkoutExerciseID *uuid.UUID
	// Limit 0 means no limit
	Limit int
}

const entryColumns = `id, owner_id, workout_exercise_id, date, weight, reps, sets, rpe, notes, created_at`

func scanEntry(row pgx.Row) (*Entry, error) {
	var e Entry
	if err := row.Scan(
		&e.ID, &e.OwnerID, &e.WorkoutExerciseID, &e.Date, &e.Weight, &e.Reps, &e.Sets, &e.RPE, &e.Notes, &e.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("scan progress entry: %w", err)
	}
	e.setTechniqueFromRPE()
	return &e, nil
}

func (r *Repo) Add(ctx context.Context, entry Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	added, err := scanEntry(r.db.QueryRow(
		ctx,
		`INSERT INTO progress (id, owner_id, workout_exercise_id, date, weight, reps, sets, rpe, notes, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+entryColumns,
		entry.ID, entry.OwnerID, entry.WorkoutExerciseID, entry.Date, entry.Weight,
		entry.Reps, entry.Sets, entry.RPE, entry.Notes, entry.CreatedAt,
	))
	if err != nil {
		if pkg.IsCheckViolationError(err) {
			return nil, pkg.NewValidationError("progress entry values out of range")
		}
		return nil, err
	}

	span.SetAttributes(attribute.String("progress.id", added.ID.String()))
	return added, nil
}

// Last returns the most recent entry for the workout exercise, by date and then by creation time.
func (r *Repo) Last(ctx context.Context, ownerID, workoutExerciseID uuid.UUID) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.last")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout_exercise.id", workoutExerciseID.String()))

	return scanEntry(r.db.QueryRow(
		ctx,
		`SELECT `+entryColumns+` FROM progress
			WHERE owner_id = $1 AND workout_exercise_id = $2
			ORDER BY date DESC, created_at DESC
			LIMIT 1`,
		ownerID, workoutExerciseID,
	))
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var limit *int
	if params.Limit > 0 {
		limit = &params.Limit
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+entryColumns+` FROM progress
			WHERE owner_id = $1 AND ($2::uuid IS NULL OR workout_exercise_id = $2)
			ORDER BY date DESC, created_at DESC
			LIMIT $3`,
		params.OwnerID, params.WorkoutExerciseID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("entries.count", len(entries)))
	return entries, nil
}

func (r *Repo) Update(ctx context.Context, entry Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", entry.ID.String()))

	return scanEntry(r.db.QueryRow(
		ctx,
		`UPDATE progress SET weight = $1, reps = $2, sets = $3, rpe = $4, notes = $5
			WHERE id = $6 AND owner_id = $7
		RETURNING `+entryColumns,
		entry.Weight, entry.Reps, entry.Sets, entry.RPE, entry.Notes, entry.ID, entry.OwnerID,
	))
}

func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	tag, err := r.db.Exec(ctx, `DELETE FROM progress WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// DeleteByWorkoutExercises removes all entries logged against the given workout exercises.
func (r *Repo) DeleteByWorkoutExercises(ctx context.Context, ownerID uuid.UUID, workoutExerciseIDs []uuid.UUID) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.deleteByWorkoutExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout_exercises.count", len(workoutExerciseIDs)))

	if len(workoutExerciseIDs) == 0 {
		return 0, nil
	}

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM progress WHERE owner_id = $1 AND workout_exercise_id = ANY($2)`,
		ownerID, workoutExerciseIDs,
	)
	if err != nil {
		return 0, err
	}

	span.SetAttributes(attribute.Int64("deleted", tag.RowsAffected()))
	return tag.RowsAffected(), nil
}
