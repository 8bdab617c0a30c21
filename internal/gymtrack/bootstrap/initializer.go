package bootstrap

import (
	"context"
	"fmt"

	"github.com/2beens/gymtrack/internal/gymtrack/exercises"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=initializer_mocks_test.go -package=bootstrap_test

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type adminPromoter interface {
	PromoteAdmins(ctx context.Context, emails []string) (int64, error)
}

type catalogSeeder interface {
	Count(ctx context.Context) (int, error)
	AddBatch(ctx context.Context, exercises []exercises.Exercise) (int, error)
}

type catalogCache interface {
	Invalidate()
}

type Result struct {
	SchemaStatements int   `json:"schema_statements"`
	AdminsPromoted   int64 `json:"admins_promoted"`
	ExercisesSeeded  int   `json:"exercises_seeded"`
}

// Initializer prepares the database: schema, admin flags and the default exercise catalog.
// Running it again on an initialized database changes nothing.
type Initializer struct {
	db          execer
	admins      adminPromoter
	catalog     catalogSeeder
	cache       catalogCache
	adminEmails []string
}

func NewInitializer(
	db execer,
	admins adminPromoter,
	catalog catalogSeeder,
	cache catalogCache,
	adminEmails []string,
) *Initializer {
	return &Initializer{
		db:          db,
		admins:      admins,
		catalog:     catalog,
		cache:       cache,
		adminEmails: adminEmails,
	}
}

func (i *Initializer) Init(ctx context.Context) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bootstrap.init")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	result := &Result{}
	if result.SchemaStatements, err = i.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	if result.AdminsPromoted, err = i.admins.PromoteAdmins(ctx, i.adminEmails); err != nil {
		return nil, fmt.Errorf("promote admins: %w", err)
	}

	if result.ExercisesSeeded, err = i.SeedCatalog(ctx); err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int64("admins.promoted", result.AdminsPromoted),
		attribute.Int("exercises.seeded", result.ExercisesSeeded),
	)
	log.Infof(
		"database initialized: %d schema statements, %d admins promoted, %d exercises seeded",
		result.SchemaStatements, result.AdminsPromoted, result.ExercisesSeeded,
	)
	return result, nil
}

// EnsureSchema runs all schema statements in order, stopping at the first failure.
func (i *Initializer) EnsureSchema(ctx context.Context) (int, error) {
	for n, stmt := range schemaStatements {
		if _, err := i.db.Exec(ctx, stmt); err != nil {
			return n, fmt.Errorf("schema statement #%d: %w", n+1, err)
		}
	}
	return len(schemaStatements), nil
}

// SeedCatalog inserts the default exercises, only when there are no exercises yet.
func (i *Initializer) SeedCatalog(ctx context.Context) (int, error) {
	count, err := i.catalog.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count exercises: %w", err)
	}
	if count > 0 {
		log.Debugf("exercise catalog has %d exercises, not seeding", count)
		return 0, nil
	}

	seeded, err := i.catalog.AddBatch(ctx, exercises.DefaultCatalog())
	if err != nil {
		return seeded, fmt.Errorf("seed exercises: %w", err)
	}
	i.cache.Invalidate()
	return seeded, nil
}
