package measurements

import (
	"context"
	"time"

	"github.com/2beens/gymtrack/internal/gymtrack/charts"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=measurements_test

type measurementsRepo interface {
	Add(ctx context.Context, m Measurement) (*Measurement, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]Measurement, error)
	Update(ctx context.Context, m Measurement) (*Measurement, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type Service struct {
	repo    measurementsRepo
	nowFunc func() time.Time
}

func NewService(repo measurementsRepo) *Service {
	return &Service{
		repo:    repo,
		nowFunc: time.Now,
	}
}

func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, params Params) (_ *Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.measurements.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	now := s.nowFunc().UTC()
	date, err := params.Validate(now)
	if err != nil {
		return nil, err
	}

	return s.repo.Add(ctx, Measurement{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Date:      date,
		Values:    params.Values,
		Notes:     params.Notes,
		CreatedAt: now,
	})
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID) (_ []Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.measurements.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.List(ctx, ownerID)
}

func (s *Service) Update(ctx context.Context, ownerID, id uuid.UUID, params Params) (_ *Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.measurements.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	date, err := params.Validate(s.nowFunc())
	if err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, Measurement{
		ID:      id,
		OwnerID: ownerID,
		Date:    date,
		Values:  params.Values,
		Notes:   params.Notes,
	})
}

func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.measurements.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	return s.repo.Delete(ctx, ownerID, id)
}

// Chart returns the series of one measured field, oldest first,
// leaving out the measurements where the field was not taken.
func (s *Service) Chart(ctx context.Context, ownerID uuid.UUID, field Field) (_ *charts.Series, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.measurements.chart")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("field", string(field)))

	measurements, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	series := BuildChart(measurements, field)
	return &series, nil
}

func BuildChart(measurements []Measurement, field Field) charts.Series {
	points := make([]charts.Point, 0, len(measurements))
	for _, m := range measurements {
		v := m.Get(field)
		if v == nil {
			continue
		}
		points = append(points, charts.Point{
			Date:  m.Date,
			Value: *v,
		})
	}
	return charts.Build(fieldLabels[field], points)
}
