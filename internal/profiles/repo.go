package profiles

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
	ErrProfileNotFound = errors.New("profile not found")
	ErrEmailTaken      = errors.New("email already registered")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const profileColumns = `id, email, name, password_hash, is_admin, created_at`

func scanProfile(row pgx.Row) (*Profile, error) {
	var p Profile
	if err := row.Scan(&p.ID, &p.Email, &p.Name, &p.PasswordHash, &p.IsAdmin, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	return &p, nil
}

func (r *Repo) Add(ctx context.Context, profile Profile) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(
		ctx,
		`INSERT INTO profile (id, email, name, password_hash, is_admin, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+profileColumns,
		profile.ID, profile.Email, profile.Name, profile.PasswordHash, profile.IsAdmin, profile.CreatedAt,
	)
	added, err := scanProfile(row)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	span.SetAttributes(attribute.String("profile.id", added.ID.String()))
	return added, nil
}

func (r *Repo) Get(ctx context.Context, id uuid.UUID) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	return scanProfile(r.db.QueryRow(
		ctx,
		`SELECT `+profileColumns+` FROM profile WHERE id = $1`,
		id,
	))
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return scanProfile(r.db.QueryRow(
		ctx,
		`SELECT `+profileColumns+` FROM profile WHERE email = $1`,
		email,
	))
}

func (r *Repo) UpdateName(ctx context.Context, id uuid.UUID, name string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.updateName")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	return scanProfile(r.db.QueryRow(
		ctx,
		`UPDATE profile SET name = $1 WHERE id = $2 RETURNING `+profileColumns,
		name, id,
	))
}

// IsAdmin reports whether the profile is flagged as administrator.
// Unknown profiles are not admins.
func (r *Repo) IsAdmin(ctx context.Context, id uuid.UUID) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.isAdmin")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var isAdmin bool
	err = r.db.QueryRow(ctx, `SELECT is_admin FROM profile WHERE id = $1`, id).Scan(&isAdmin)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return isAdmin, nil
}

// PromoteAdmins sets the admin flag on existing profiles with the given emails.
func (r *Repo) PromoteAdmins(ctx context.Context, emails []string) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.promoteAdmins")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(emails) == 0 {
		return 0, nil
	}

	normalized := make([]string, 0, len(emails))
	for _, email := range emails {
		normalized = append(normalized, normalizeEmail(email))
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE profile SET is_admin = true WHERE email = ANY($1) AND NOT is_admin`,
		normalized,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
