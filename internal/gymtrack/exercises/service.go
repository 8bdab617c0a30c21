package exercises

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/gymtrack/internal/telemetry/metrics"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=exercises_test

var ErrNotAdmin = errors.New("admin privileges required")

type exercisesRepo interface {
	Add(ctx context.Context, exercise Exercise) (*Exercise, error)
	Get(ctx context.Context, id uuid.UUID) (*Exercise, error)
	ListPublic(ctx context.Context, group *MuscleGroup) ([]Exercise, error)
	ListPrivate(ctx context.Context, ownerID uuid.UUID, group *MuscleGroup) ([]Exercise, error)
	ListByStatus(ctx context.Context, status Status) ([]Exercise, error)
	Moderate(ctx context.Context, id, adminID uuid.UUID, status Status, isPublic bool) (*Exercise, error)
}

type adminChecker interface {
	IsAdmin(ctx context.Context, id uuid.UUID) (bool, error)
}

type Service struct {
	repo           exercisesRepo
	admins         adminChecker
	catalogCache   *CatalogCache
	metricsManager *metrics.Manager
}

func NewService(
	repo exercisesRepo,
	admins adminChecker,
	catalogCache *CatalogCache,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		admins:         admins,
		catalogCache:   catalogCache,
		metricsManager: metricsManager,
	}
}

func (s *Service) publicCatalog(ctx context.Context, group *MuscleGroup) ([]Exercise, error) {
	generation := s.catalogCache.Generation()
	if cached, found := s.catalogCache.Get(group); found {
		return cached, nil
	}

	public, err := s.repo.ListPublic(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("list public exercises: %w", err)
	}
	s.catalogCache.Set(generation, group, public)
	return public, nil
}

// List returns all exercises visible to the user: the public catalog plus the
// user's own suggestions that are not (yet) public.
func (s *Service) List(ctx context.Context, userID uuid.UUID, group *MuscleGroup) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	public, err := s.publicCatalog(ctx, group)
	if err != nil {
		return nil, err
	}

	private, err := s.repo.ListPrivate(ctx, userID, group)
	if err != nil {
		return nil, fmt.Errorf("list private exercises: %w", err)
	}

	visible := make([]Exercise, 0, len(public)+len(private))
	visible = append(visible, public...)
	visible = append(visible, private...)
	sort.SliceStable(visible, func(i, j int) bool {
		if visible[i].MuscleGroup != visible[j].MuscleGroup {
			return visible[i].MuscleGroup < visible[j].MuscleGroup
		}
		return visible[i].Name < visible[j].Name
	})

	span.SetAttributes(attribute.Int("exercises.count", len(visible)))
	return visible, nil
}

// Get returns the exercise only if it is visible to the user.
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercise, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exercise.VisibleTo(userID) {
		return nil, ErrExerciseNotFound
	}
	return exercise, nil
}

// Suggest stores a new private exercise, waiting for moderation.
func (s *Service) Suggest(ctx context.Context, userID uuid.UUID, params SuggestParams) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.suggest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	group, err := params.Validate()
	if err != nil {
		return nil, err
	}

	owner := userID
	suggested, err := s.repo.Add(ctx, Exercise{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(params.Name),
		Description: strings.TrimSpace(params.Description),
		MuscleGroup: group,
		IsPublic:    false,
		Status:      StatusPending,
		OwnerID:     &owner,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterExercisesSuggested.Inc()
	}
	log.Debugf("exercise suggested [%s] by %s", suggested.Name, userID)
	return suggested, nil
}

func (s *Service) ensureAdmin(ctx context.Context, userID uuid.UUID) error {
	isAdmin, err := s.admins.IsAdmin(ctx, userID)
	if err != nil {
		return fmt.Errorf("check admin: %w", err)
	}
	if !isAdmin {
		return ErrNotAdmin
	}
	return nil
}

func (s *Service) ListPending(ctx context.Context, userID uuid.UUID) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.listPending")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.ensureAdmin(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListByStatus(ctx, StatusPending)
}

func (s *Service) Approve(ctx context.Context, userID, id uuid.UUID) (*Exercise, error) {
	return s.moderate(ctx, userID, id, DecisionApprove)
}

func (s *Service) Reject(ctx context.Context, userID, id uuid.UUID) (*Exercise, error) {
	return s.moderate(ctx, userID, id, DecisionReject)
}

func (s *Service) moderate(ctx context.Context, userID, id uuid.UUID, decision Decision) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.moderate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("id", id.String()),
		attribute.String("decision", string(decision)),
	)

	if err := s.ensureAdmin(ctx, userID); err != nil {
		return nil, err
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	status, isPublic, err := Transition(current.Status, decision)
	if err != nil {
		return nil, err
	}

	moderated, err := s.repo.Moderate(ctx, id, userID, status, isPublic)
	if errors.Is(err, ErrModerationRejected) {
		// moderated concurrently, or the admin flag was revoked meanwhile
		return nil, fmt.Errorf("%w: %s", ErrTerminalStatus, err)
	}
	if err != nil {
		return nil, err
	}

	if isPublic {
		s.catalogCache.Invalidate()
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterModerationDecisions.With(prometheus.Labels{"decision": string(status)}).Inc()
	}
	log.Infof("exercise %s moderated by %s: %s", id, userID, status)

	return moderated, nil
}
