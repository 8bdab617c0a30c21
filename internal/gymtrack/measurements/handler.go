package measurements

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=measurements_test

type measurementsService interface {
	Create(ctx context.Context, ownerID uuid.UUID, params Params) (*Measurement, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]Measurement, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, params Params) (*Measurement, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	Chart(ctx context.Context, ownerID uuid.UUID, field Field) (*charts.Series, error)
}

type Handler struct {
	service measurementsService
}

func NewHandler(service measurementsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/measurements", handler.HandleList).Methods("GET", "OPTIONS").Name("list-measurements")
	r.HandleFunc("/measurements", handler.HandleCreate).Methods("POST", "OPTIONS").Name("create-measurement")
	r.HandleFunc("/measurements/chart", handler.HandleChart).Methods("GET", "OPTIONS").Name("measurements-chart")
	r.HandleFunc("/measurements/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-measurement")
	r.HandleFunc("/measurements/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-measurement")
}

func writeServiceError(w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, pkg.ErrValidation):
		pkg.WriteJSONError(w, http.StatusBadRequest, pkg.ValidationMessage(err))
	case errors.Is(err, ErrMeasurementNotFound):
		pkg.WriteJSONError(w, http.StatusNotFound, "measurement not found")
	default:
		log.Errorf("%s: %s", action, err)
		pkg.WriteJSONError(w, http.StatusInternalServerError, action+" failed")
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.list")
	defer span.End()

	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "no session")
		return
	}

	measurements, err := handler.service.List(ctx, ownerID)
	if err != nil {
		writeServiceError(w, "list measurements", err)
		return
	}

	if measurements == nil {
		measurements = []Measurement{}
	}
	pkg.WriteJSONResponseOK(w, measurements)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.create")
	defer span.End()

	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "no session")
		return
	}

	params, ok := decodeParams(w, r, "create measurement")
	if !ok {
		return
	}

	created, err := handler.service.Create(ctx, ownerID, params)
	if err != nil {
		writeServiceError(w, "create measurement", err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, created)
}

func decodeParams(w http.ResponseWriter, r *http.Request, action string) (Params, bool) {
	var params Params
	if !pkg.IsJSONRequest(r) {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid content type")
		return params, false
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("%s, unmarshal json params: %s", action, err)
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid "+action+" request")
		return params, false
	}
	return params, true
}

func (handler *Handler) HandleChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.chart")
	defer span.End()

	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "no session")
		return
	}

	field, err := ParseField(r.URL.Query().Get("field"))
	if err != nil {
		writeServiceError(w, "measurements chart", err)
		return
	}

	series, err := handler.service.Chart(ctx, ownerID, field)
	if err != nil {
		writeServiceError(w, "measurements chart", err)
		return
	}

	pkg.WriteJSONResponseOK(w, series)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.update")
	defer span.End()

	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "no session")
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid measurement id")
		return
	}

	params, ok := decodeParams(w, r, "update measurement")
	if !ok {
		return
	}

	updated, err := handler.service.Update(ctx, ownerID, id, params)
	if err != nil {
		writeServiceError(w, "update measurement", err)
		return
	}

	pkg.WriteJSONResponseOK(w, updated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.delete")
	defer span.End()

	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusUnauthorized, "no session")
		return
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, "invalid measurement id")
		return
	}

	if err := handler.service.Delete(ctx, ownerID, id); err != nil {
		writeServiceError(w, "delete measurement", err)
		return
	}

	pkg.WriteJSONResponseOK(w, map[string]string{"deleted": id.String()})
}
