package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymtrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrExerciseNotFound   = errors.New("exercise not found")
	ErrModerationRejected = errors.New("moderation not applied")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const exerciseColumns = `id, name, description, muscle_group, is_public, status, owner_id, created_at`

func scanExercise(row pgx.Row) (*Exercise, error) {
	var e Exercise
	if err := row.Scan(
		&e.ID, &e.Name, &e.Description, &e.MuscleGroup, &e.IsPublic, &e.Status, &e.OwnerID, &e.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("scan exercise: %w", err)
	}
	return &e, nil
}

func collectExercises(rows pgx.Rows) ([]Exercise, error) {
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	added, err := scanExercise(r.db.QueryRow(
		ctx,
		`INSERT INTO exercise (id, name, description, muscle_group, is_public, status, owner_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+exerciseColumns,
		exercise.ID, exercise.Name, exercise.Description, exercise.MuscleGroup,
		exercise.IsPublic, exercise.Status, exercise.OwnerID, exercise.CreatedAt,
	))
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("exercise.id", added.ID.String()))
	return added, nil
}

// AddBatch inserts all exercises in a single round trip.
func (r *Repo) AddBatch(ctx context.Context, exercises []Exercise) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.addBatch")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercises.count", len(exercises)))

	if len(exercises) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, e := range exercises {
		batch.Queue(
			`INSERT INTO exercise (id, name, description, muscle_group, is_public, status, owner_id, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			e.ID, e.Name, e.Description, e.MuscleGroup, e.IsPublic, e.Status, e.OwnerID, e.CreatedAt,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer func() {
		if closeErr := results.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close batch: %w", closeErr)
		}
	}()

	inserted := 0
	for range exercises {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("insert exercise %d: %w", inserted, err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

func (r *Repo) Get(ctx context.Context, id uuid.UUID) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	return scanExercise(r.db.QueryRow(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercise WHERE id = $1`,
		id,
	))
}

// ListPublic returns the approved, public catalog, optionally filtered by muscle group.
func (r *Repo) ListPublic(ctx context.Context, group *MuscleGroup) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.listPublic")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercise
			WHERE is_public AND ($1::text IS NULL OR muscle_group = $1)
			ORDER BY muscle_group, name`,
		group,
	)
	if err != nil {
		return nil, err
	}
	return collectExercises(rows)
}

// ListPrivate returns the non-public exercises the user suggested.
func (r *Repo) ListPrivate(ctx context.Context, ownerID uuid.UUID, group *MuscleGroup) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.listPrivate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", ownerID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercise
			WHERE NOT is_public AND owner_id = $1 AND ($2::text IS NULL OR muscle_group = $2)
			ORDER BY muscle_group, name`,
		ownerID, group,
	)
	if err != nil {
		return nil, err
	}
	return collectExercises(rows)
}

// VisibleIDs filters the given ids down to the exercises the user can see:
// the public catalog plus the user's own suggestions.
func (r *Repo) VisibleIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (_ []uuid.UUID, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.visibleIDs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", ownerID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT id FROM exercise WHERE id = ANY($1) AND (is_public OR owner_id = $2)`,
		ids, ownerID,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

func (r *Repo) ListByStatus(ctx context.Context, status Status) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.listByStatus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("status", string(status)))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercise WHERE status = $1 ORDER BY created_at`,
		status,
	)
	if err != nil {
		return nil, err
	}
	return collectExercises(rows)
}

// Moderate moves a pending exercise into the given status. The update is
// guarded in SQL as well: it only applies to pending rows, and only when the
// acting profile is an administrator.
func (r *Repo) Moderate(ctx context.Context, id, adminID uuid.UUID, status Status, isPublic bool) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.moderate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("id", id.String()),
		attribute.String("status", string(status)),
	)

	moderated, err := scanExercise(r.db.QueryRow(
		ctx,
		`UPDATE exercise SET status = $1, is_public = $2
			WHERE id = $3
				AND status = 'pending'
				AND EXISTS (SELECT 1 FROM profile WHERE id = $4 AND is_admin)
		RETURNING `+exerciseColumns,
		status, isPublic, id, adminID,
	))
	if errors.Is(err, ErrExerciseNotFound) {
		return nil, ErrModerationRejected
	}
	return moderated, err
}

func (r *Repo) Count(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM exercise`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
