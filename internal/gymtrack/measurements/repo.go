package measurements

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

var ErrMeasurementNotFound = errors.New("measurement not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const measurementColumns = `id, owner_id, date, weight, height, chest, waist, hips,
	biceps_left, biceps_right, thigh_left, thigh_right, calf_left, calf_right, shoulders,
	notes, created_at`

func scanMeasurement(row pgx.Row) (*Measurement, error) {
	var m Measurement
	if err := row.Scan(
		&m.ID, &m.OwnerID, &m.Date, &m.Weight, &m.Height, &m.Chest, &m.Waist, &m.Hips,
		&m.BicepsLeft, &m.BicepsRight, &m.ThighLeft, &m.ThighRight, &m.CalfLeft, &m.CalfRight, &m.Shoulders,
		&m.Notes, &m.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMeasurementNotFound
		}
		return nil, fmt.Errorf("scan measurement: %w", err)
	}
	return &m, nil
}

func (r *Repo) Add(ctx context.Context, m Measurement) (_ *Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return scanMeasurement(r.db.QueryRow(
		ctx,
		`INSERT INTO body_measurement (`+measurementColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING `+measurementColumns,
		m.ID, m.OwnerID, m.Date, m.Weight, m.Height, m.Chest, m.Waist, m.Hips,
		m.BicepsLeft, m.BicepsRight, m.ThighLeft, m.ThighRight, m.CalfLeft, m.CalfRight, m.Shoulders,
		m.Notes, m.CreatedAt,
	))
}

// List returns the owner's measurements, newest first.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID) (_ []Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner.id", ownerID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+measurementColumns+` FROM body_measurement
			WHERE owner_id = $1
			ORDER BY date DESC, created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var measurements []Measurement
	for rows.Next() {
		m, err := scanMeasurement(rows)
		if err != nil {
			return nil, err
		}
		measurements = append(measurements, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("measurements.count", len(measurements)))
	return measurements, nil
}

func (r *Repo) Update(ctx context.Context, m Measurement) (_ *Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", m.ID.String()))

	return scanMeasurement(r.db.QueryRow(
		ctx,
		`UPDATE body_measurement SET
				date = $1, weight = $2, height = $3, chest = $4, waist = $5, hips = $6,
				biceps_left = $7, biceps_right = $8, thigh_left = $9, thigh_right = $10,
				calf_left = $11, calf_right = $12, shoulders = $13, notes = $14
			WHERE id = $15 AND owner_id = $16
		RETURNING `+measurementColumns,
		m.Date, m.Weight, m.Height, m.Chest, m.Waist, m.Hips,
		m.BicepsLeft, m.BicepsRight, m.ThighLeft, m.ThighRight,
		m.CalfLeft, m.CalfRight, m.Shoulders, m.Notes,
		m.ID, m.OwnerID,
	))
}

func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	tag, err := r.db.Exec(ctx, `DELETE FROM body_measurement WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMeasurementNotFound
	}
	return nil
}
