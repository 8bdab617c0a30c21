package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymtrack/internal/telemetry/metrics"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=profiles_test

var ErrInvalidCredentials = errors.New("invalid credentials")

type profilesRepo interface {
	Add(ctx context.Context, profile Profile) (*Profile, error)
	Get(ctx context.Context, id uuid.UUID) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*Profile, error)
}

type sessionService interface {
	Login(ctx context.Context, userID string, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type SessionResponse struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}

type Service struct {
	repo           profilesRepo
	sessions       sessionService
	metricsManager *metrics.Manager

	// ability to inject password hashing funcs (bcrypt is slow in unit tests)
	HashPasswordFunc  func(password string) (string, error)
	CheckPasswordFunc func(password, hash string) bool
}

func NewService(
	repo profilesRepo,
	sessions sessionService,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:              repo,
		sessions:          sessions,
		metricsManager:    metricsManager,
		HashPasswordFunc:  pkg.HashPassword,
		CheckPasswordFunc: pkg.CheckPasswordHash,
	}
}

func (s *Service) Signup(ctx context.Context, params SignupParams) (_ *SessionResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profiles.signup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	params.Email = normalizeEmail(params.Email)
	params.Name = strings.TrimSpace(params.Name)
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if params.Name == "" {
		params.Name = defaultName(params.Email)
	}

	passwordHash, err := s.HashPasswordFunc(params.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// admin flag is never granted here, only promoted on existing profiles by the initializer
	profile, err := s.repo.Add(ctx, Profile{
		ID:           uuid.New(),
		Email:        params.Email,
		Name:         params.Name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	log.Debugf("new profile signed up: %s", profile.ID)

	token, err := s.sessions.Login(ctx, profile.ID.String(), time.Now())
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &SessionResponse{
		Token:   token,
		Profile: *profile,
	}, nil
}

func (s *Service) Login(ctx context.Context, params LoginParams) (_ *SessionResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profiles.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
		s.countLogin(err)
	}()

	if err := params.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.repo.GetByEmail(ctx, normalizeEmail(params.Email))
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.CheckPasswordFunc(params.Password, profile.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.sessions.Login(ctx, profile.ID.String(), time.Now())
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &SessionResponse{
		Token:   token,
		Profile: *profile,
	}, nil
}

func (s *Service) countLogin(err error) {
	if s.metricsManager == nil {
		return
	}
	result := "ok"
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		result = "invalid_credentials"
	case err != nil:
		result = "error"
	}
	s.metricsManager.CounterLogins.With(prometheus.Labels{"result": result}).Inc()
}

func (s *Service) Logout(ctx context.Context, token string) (bool, error) {
	return s.sessions.Logout(ctx, token)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) UpdateName(ctx context.Context, id uuid.UUID, name string) (*Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pkg.NewValidationError("name is required")
	}
	if len(name) > 100 {
		return nil, pkg.NewValidationError("name too long")
	}
	return s.repo.UpdateName(ctx, id, name)
}
