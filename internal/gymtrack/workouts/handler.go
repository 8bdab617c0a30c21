package workouts

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	Create(ctx context.Context, ownerID uuid.UUID, params WorkoutParams) (*Workout, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*Workout, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]Workout, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, params WorkoutParams) (*Workout, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	GetWorkoutExercise(ctx context.Context, ownerID, id uuid.UUID) (*WorkoutExercise, error)
	UpdateWorkoutExercise(ctx context.Context, ownerID, id uuid.UUID, params WorkoutExerciseParams) (*WorkoutExercise, error)
	DeleteWorkoutExercise(ctx context.Context, ownerID, id uuid.UUID) error
}

type Handler struct {
	service workoutsService
}

func NewHandler(service workoutsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workouts", handler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts", handler.HandleCreate).Methods("POST", "OPTIONS").Name("create-workout")
	r.HandleFunc("/workouts/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/workouts/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	r.HandleFunc("/workouts/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")

	r.HandleFunc("/workout-exercises/{id}", handler.HandleGetWorkoutExercise).Methods("GET", "OPTIONS").Name("get-workout-exercise")
	r.HandleFunc("/workout-exercises/{id}", handler.HandleUpdateWorkoutExercise).Methods("PUT", "OPTIONS").Name("update-workout-exercise")
	r.HandleFunc("/workout-exercises/{id}", handler.HandleDeleteWorkoutExercise).Methods("DELETE", "OPTIONS").Name("delete-workout-exercise")
}

func writeServiceError(w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, pkg.ErrValidation):
		pkg.WriteJSONError(w, http.StatusBadRequest, pkg.ValidationMessage(err))
	case errors.Is(err, ErrWorkoutNotFound):
		pkg.WriteJSONError(w, http.StatusNotFound, "workout not found")
	case errors.Is(err, ErrWorkoutExerciseNotFound):
		pkg.WriteJSONError(w, http.StatusNotFound, "workout exercise not found")
	default:
		log.Errorf("%s: %s", action, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, action+" failed")
	}
}

// ownerAndID resolves the session owner and the {id} path var, writing the error response if any fails.
func ownerAndID(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	ownerID, err := auth.OwnerID(r.Context())
	if err != nil {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "no session")
		return uuid.Nil, uuid.Nil, false
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, uuid.Nil, false
	}
	return ownerID, id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, what string) bool {
	if !pkg.IsJSONRequest(r) {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid content type")
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Tracef("%s, unmarshal json params: %s", what, err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid "+what+" request")
		return false
	}
	return true
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "no session")
		return
	}

	workouts, err := handler.service.List(ctx, ownerID)
	if err != nil {
		writeServiceError(w, "list workouts", err)
		return
	}

	if workouts == nil {
		workouts = []Workout{}
	}
	pkg.WriteJSONResponseOK(w, workouts)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "no session")
		return
	}

	var params WorkoutParams
	if !decodeJSON(w, r, &params, "create workout") {
		return
	}

	created, err := handler.service.Create(ctx, ownerID, params)
	if err != nil {
		writeServiceError(w, "create workout", err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, created)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	ownerID, id, ok := ownerAndID(w, r)
	if !ok {
		return
	}

	workout, err := handler.service.Get(ctx, ownerID, id)
	if err != nil {
		writeServiceError(w, "get workout", err)
		return
	}

	pkg.WriteJSONResponseOK(w, workout)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	ownerID, id, ok := ownerAndID(w, r)
	if !ok {
		return
	}

	var params WorkoutParams
	if !decodeJSON(w, r, &params, "update workout") {
		return
	}

	updated, err := handler.service.Update(ctx, ownerID, id, params)
	if err != nil {
		writeServiceError(w, "update workout", err)
		return
	}

	pkg.WriteJSONResponseOK(w, updated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	ownerID, id, ok := ownerAndID(w, r)
	if !ok {
		return
	}

	if err := handler.service.Delete(ctx, ownerID, id); err != nil {
		writeServiceError(w, "delete workout", err)
		return
	}

	pkg.WriteJSONResponseOK(w, map[string]string{"deleted": id.String()})
}

func (handler *Handler) HandleGetWorkoutExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.getWorkoutExercise")
	defer span.End()

	ownerID, id, ok := ownerAndID(w, r)
	if !ok {
		return
	}

	we, err := handler.service.GetWorkoutExercise(ctx, ownerID, id)
	if err != nil {
		writeServiceError(w, "get workout exercise", err)
		return
	}

	pkg.WriteJSONResponseOK(w, we)
}

func (handler *Handler) HandleUpdateWorkoutExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.updateWorkoutExercise")
	defer span.End()

	ownerID, id, ok := ownerAndID(w, r)
	if !ok {
		return
	}

	var params WorkoutExerciseParams
	if !decodeJSON(w, r, &params, "update workout exercise") {
		return
	}

	we, err := handler.service.UpdateWorkoutExercise(ctx, ownerID, id, params)
	if err != nil {
		writeServiceError(w, "update workout exercise", err)
		return
	}

	pkg.WriteJSONResponseOK(w, we)
}

func (handler *Handler) HandleDeleteWorkoutExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deleteWorkoutExercise")
	defer span.End()

	ownerID, id, ok := ownerAndID(w, r)
	if !ok {
		return
	}

	if err := handler.service.DeleteWorkoutExercise(ctx, ownerID, id); err != nil {
		writeServiceError(w, "delete workout exercise", err)
		return
	}

	pkg.WriteJSONResponseOK(w, map[string]string{"deleted": id.String()})
}
