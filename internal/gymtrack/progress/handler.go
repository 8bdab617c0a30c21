package progress

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/gymtrack/internal/auth"
	"github.com/2beens/gymtrack/internal/gymtrack/charts"
	"github.com/2beens/gymtrack/internal/telemetry/tracing"
	"github.com/2beens/gymtrack/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type progressService interface {
	Record(ctx context.Context, ownerID uuid.UUID, params RecordParams) (*Recorded, error)
	Last(ctx context.Context, ownerID, workoutExerciseID uuid.UUID) (*Recorded, error)
	List(ctx context.Context, ownerID uuid.UUID, workoutExerciseID *uuid.UUID) ([]Entry, error)
	Chart(ctx context.Context, ownerID, workoutExerciseID uuid.UUID, metric ChartMetric) (*charts.Series, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, params EntryParams) (*Entry, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type Handler struct {
	service progressService
}

func NewHandler(service progressService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/progress", handler.HandleList).Methods("GET", "OPTIONS").Name("list-progress")
	r.HandleFunc("/progress", handler.HandleRecord).Methods("POST", "OPTIONS").Name("record-progress")
	r.HandleFunc("/progress/last", handler.HandleLast).Methods("GET", "OPTIONS").Name("last-progress")
	r.HandleFunc("/progress/chart", handler.HandleChart).Methods("GET", "OPTIONS").Name("progress-chart")
	r.HandleFunc("/progress/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-progress")
	r.HandleFunc("/progress/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-progress")
}

func writeServiceError(w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, pkg.ErrValidation):
		pkg.WriteJSONError(w, http.StatusBadRequest, pkg.ValidationMessage(err))
	case errors.Is(err, ErrEntryNotFound):
		pkg.WriteJSONError(w, http.StatusNotFound, "progress entry not found")
	case errors.Is(err, ErrWorkoutExerciseNotFound):
		pkg.WriteJSONError(w, http.StatusNotFound, "workout exercise not found")
	default:
		log.Errorf("%s: %s", action, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, action+" failed")
	}
}

// workoutExerciseParam reads the workout_exercise_id query param; nil when absent.
func workoutExerciseParam(r *http.Request, required bool) (*uuid.UUID, error) {
	raw := r.URL.Query().Get("workout_exercise_id")
	if raw == "" {
		if required {
			return nil, pkg.NewValidationError("workout_exercise_id is required")
		}
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, pkg.NewValidationError("invalid workout_exercise_id")
	}
	return &id, nil
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.list")
	defer span.End()

	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "no session")
		return
	}

	workoutExerciseID, err := workoutExerciseParam(r, false)
	if err != nil {
		writeServiceError(w, "list progress", err)
		return
	}

	entries, err := handler.service.List(ctx, ownerID, workoutExerciseID)
	if err != nil {
		writeServiceError(w, "list progress", err)
		return
	}

	if entries == nil {
		entries = []Entry{}
	}
	pkg.WriteJSONResponseOK(w, entries)
}

func (handler *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.record")
	defer span.End()

	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "no session")
		return
	}

	if !pkg.IsJSONRequest(r) {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid content type")
		return
	}

	var params RecordParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("record progress, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid record progress request")
		return
	}

	recorded, err := handler.service.Record(ctx, ownerID, params)
	if err != nil {
		writeServiceError(w, "record progress", err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, recorded)
}

func (handler *Handler) HandleLast(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.last")
	defer span.End()

	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "no session")
		return
	}

	workoutExerciseID, err := workoutExerciseParam(r, true)
	if err != nil {
		writeServiceError(w, "last progress", err)
		return
	}

	last, err := handler.service.Last(ctx, ownerID, *workoutExerciseID)
	if err != nil {
		writeServiceError(w, "last progress", err)
		return
	}

	pkg.WriteJSONResponseOK(w, last)
}

func (handler *Handler) HandleChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.chart")
	defer span.End()

	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "no session")
		return
	}

	workoutExerciseID, err := workoutExerciseParam(r, true)
	if err != nil {
		writeServiceError(w, "progress chart", err)
		return
	}
	metric, err := ParseChartMetric(r.URL.Query().Get("metric"))
	if err != nil {
		writeServiceError(w, "progress chart", err)
		return
	}

	series, err := handler.service.Chart(ctx, ownerID, *workoutExerciseID, metric)
	if err != nil {
		writeServiceError(w, "progress chart", err)
		return
	}

	pkg.WriteJSONResponseOK(w, series)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.update")
	defer span.End()

	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "no session")
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid progress id")
		return
	}

	if !pkg.IsJSONRequest(r) {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid content type")
		return
	}

	var params EntryParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("update progress, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid update progress request")
		return
	}

	updated, err := handler.service.Update(ctx, ownerID, id, params)
	if err != nil {
		writeServiceError(w, "update progress", err)
		return
	}

	pkg.WriteJSONResponseOK(w, updated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.delete")
	defer span.End()

	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "no session")
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid progress id")
		return
	}

	if err := handler.service.Delete(ctx, ownerID, id); err != nil {
		writeServiceError(w, "delete progress", err)
		return
	}

	pkg.WriteJSONResponseOK(w, map[string]string{"deleted": id.String()})
}
