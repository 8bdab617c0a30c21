package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/gymtrack/internal/auth"
	"github.com/2beens/gymtrack/internal/middleware"
	"github.com/2beens/gymtrack/internal/telemetry/metrics"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profiles_test

type profilesService interface {
	Signup(ctx context.Context, params SignupParams) (*SessionResponse, error)
	Login(ctx context.Context, params LoginParams) (*SessionResponse, error)
	Logout(ctx context.Context, token string) (bool, error)
	Get(ctx context.Context, id uuid.UUID) (*Profile, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*Profile, error)
}

type UpdateProfileRequest struct {
	Name string `json:"name"`
}

type LogoutResponse struct {
	LoggedOut bool `json:"logged_out"`
}

type Handler struct {
	service profilesService
}

func NewHandler(service profilesService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	loginRateLimitPerMin int,
) {
	authRouter := mainRouter.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/signup", handler.HandleSignup).Methods("POST", "OPTIONS").Name("signup")
	authRouter.HandleFunc("/login", handler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	authRouter.HandleFunc("/logout", handler.HandleLogout).Methods("GET", "OPTIONS").Name("logout")
	// rate limit the signup and login endpoints to prevent credential stuffing
	authRouter.Use(middleware.RateLimit(rateLimiter, metricsManager, "auth", loginRateLimitPerMin))

	mainRouter.HandleFunc("/profile", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	mainRouter.HandleFunc("/profile", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-profile")
}

func writeServiceError(w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, pkg.ErrValidation):
		pkg.WriteJSONError(w, http.StatusBadRequest, pkg.ValidationMessage(err))
	case errors.Is(err, ErrInvalidCredentials):
		pkg.WriteJSONError(w, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, ErrEmailTaken):
		pkg.WriteJSONError(w, http.StatusConflict, "email already registered")
	case errors.Is(err, ErrProfileNotFound):
		pkg.WriteJSONError(w, http.StatusNotFound, "profile not found")
	default:
		log.Errorf("%s: %s", action, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, action+" failed")
	}
}

func (handler *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.signup")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid content type")
		return
	}

	var params SignupParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("signup, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid signup request")
		return
	}

	resp, err := handler.service.Signup(ctx, params)
	if err != nil {
		writeServiceError(w, "signup", err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, resp)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.login")
	defer span.End()

	if !pkg.IsJSONRequest(r) {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid content type")
		return
	}

	var params LoginParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("login, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid login request")
		return
	}

	resp, err := handler.service.Login(ctx, params)
	if err != nil {
		writeServiceError(w, "login", err)
		return
	}

	pkg.WriteJSONResponseOK(w, resp)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.logout")
	defer span.End()

	token := middleware.BearerToken(r)
	if token == "" {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "missing session token")
		return
	}

	loggedOut, err := handler.service.Logout(ctx, token)
	if err != nil {
		writeServiceError(w, "logout", err)
		return
	}

	pkg.WriteJSONResponseOK(w, LogoutResponse{LoggedOut: loggedOut})
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.get")
	defer span.End()

	userID, err := auth.OwnerID(ctx)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "no session")
		return
	}

	profile, err := handler.service.Get(ctx, userID)
	if err != nil {
		writeServiceError(w, "get profile", err)
		return
	}

	pkg.WriteJSONResponseOK(w, profile)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.update")
	defer span.End()

	userID, err := auth.OwnerID(ctx)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "no session")
		return
	}

	if !pkg.IsJSONRequest(r) {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid content type")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid update profile request")
		return
	}

	profile, err := handler.service.UpdateName(ctx, userID, req.Name)
	if err != nil {
		writeServiceError(w, "update profile", err)
		return
	}

	pkg.WriteJSONResponseOK(w, profile)
}
