package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/gymtrack/internal/auth"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type exercisesService interface {
	List(ctx context.Context, userID uuid.UUID, group *MuscleGroup) ([]Exercise, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*Exercise, error)
	Suggest(ctx context.Context, userID uuid.UUID, params SuggestParams) (*Exercise, error)
	ListPending(ctx context.Context, userID uuid.UUID) ([]Exercise, error)
	Approve(ctx context.Context, userID, id uuid.UUID) (*Exercise, error)
	Reject(ctx context.Context, userID, id uuid.UUID) (*Exercise, error)
}

type ListResponse struct {
	Exercises []Exercise `json:"exercises"`
	Total     int        `json:"total"`
}

type Handler struct {
	service exercisesService
}

func NewHandler(service exercisesService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/exercises", handler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/muscle-groups", handler.HandleMuscleGroups).Methods("GET", "OPTIONS").Name("muscle-groups")
	r.HandleFunc("/exercises/pending", handler.HandleListPending).Methods("GET", "OPTIONS").Name("pending-exercises")
	r.HandleFunc("/exercises/suggest", handler.HandleSuggest).Methods("POST", "OPTIONS").Name("suggest-exercise")
	r.HandleFunc("/exercises/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/exercises/{id}/approve", handler.HandleApprove).Methods("POST", "OPTIONS").Name("approve-exercise")
	r.HandleFunc("/exercises/{id}/reject", handler.HandleReject).Methods("POST", "OPTIONS").Name("reject-exercise")
}

func writeServiceError(w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, pkg.ErrValidation):
		pkg.WriteJSONError(w, http.StatusBadRequest, pkg.ValidationMessage(err))
	case errors.Is(err, ErrExerciseNotFound):
		pkg.WriteJSONError(w, http.StatusNotFound, "exercise not found")
	case errors.Is(err, ErrNotAdmin):
		pkg.WriteJSONError(w, http.StatusForbidden, "admin privileges required")
	case errors.Is(err, ErrTerminalStatus):
		pkg.WriteJSONError(w, http.StatusConflict, "exercise already moderated")
	default:
		log.Errorf("%s: %s", action, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, action+" failed")
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid exercise id")
		return uuid.Nil, false
	}
	return id, true
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	userID, err := auth.OwnerID(ctx)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "no session")
		return
	}

	var group *MuscleGroup
	if groupParam := r.URL.Query().Get("group"); groupParam != "" {
		g, err := ParseMuscleGroup(groupParam)
		if err != nil {
			writeServiceError(w, "list exercises", err)
			return
		}
		group = &g
	}

	exercises, err := handler.service.List(ctx, userID, group)
	if err != nil {
		writeServiceError(w, "list exercises", err)
		return
	}

	if exercises == nil {
		exercises = []Exercise{}
	}
	pkg.WriteJSONResponseOK(w, ListResponse{
		Exercises: exercises,
		Total:     len(exercises),
	})
}

func (handler *Handler) HandleMuscleGroups(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSONResponseOK(w, MuscleGroups())
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	userID, err := auth.OwnerID(ctx)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "no session")
		return
	}
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	exercise, err := handler.service.Get(ctx, userID, id)
	if err != nil {
		writeServiceError(w, "get exercise", err)
		return
	}

	pkg.WriteJSONResponseOK(w, exercise)
}

func (handler *Handler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.suggest")
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

	var params SuggestParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("suggest exercise, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid suggest exercise request")
		return
	}

	suggested, err := handler.service.Suggest(ctx, userID, params)
	if err != nil {
		writeServiceError(w, "suggest exercise", err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, suggested)
}

func (handler *Handler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.listPending")
	defer span.End()

	userID, err := auth.OwnerID(ctx)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "no session")
		return
	}

	pending, err := handler.service.ListPending(ctx, userID)
	if err != nil {
		writeServiceError(w, "list pending exercises", err)
		return
	}

	if pending == nil {
		pending = []Exercise{}
	}
	pkg.WriteJSONResponseOK(w, ListResponse{
		Exercises: pending,
		Total:     len(pending),
	})
}

func (handler *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	handler.handleModeration(w, r, DecisionApprove)
}

func (handler *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	handler.handleModeration(w, r, DecisionReject)
}

func (handler *Handler) handleModeration(w http.ResponseWriter, r *http.Request, decision Decision) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises."+string(decision))
	defer span.End()

	userID, err := auth.OwnerID(ctx)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "no session")
		return
	}
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var moderated *Exercise
	if decision == DecisionApprove {
		moderated, err = handler.service.Approve(ctx, userID, id)
	} else {
		moderated, err = handler.service.Reject(ctx, userID, id)
	}
	if err != nil {
		writeServiceError(w, string(decision)+" exercise", err)
		return
	}

	pkg.WriteJSONResponseOK(w, moderated)
}
